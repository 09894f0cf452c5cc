package persistent

import (
	"context"
	"time"

	"vidtube/services/api/internal/entity"
	"vidtube/services/api/internal/model"

	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	Exists(ctx context.Context, key entity.SubscriptionKey) (bool, error)
	Create(ctx context.Context, key entity.SubscriptionKey) error
	Delete(ctx context.Context, key entity.SubscriptionKey) error
	ListSubscribers(ctx context.Context, channelID entity.UserID, page entity.PageRequest) ([]*entity.Channel, int64, error)
	ListSubscribedChannels(ctx context.Context, subscriberID entity.UserID, page entity.PageRequest) ([]*entity.Channel, int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Exists(ctx context.Context, key entity.SubscriptionKey) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ? AND channel_id = ?", string(key.SubscriberID), string(key.ChannelID)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *subscriptionRepository) Create(ctx context.Context, key entity.SubscriptionKey) error {
	return translateError(r.db.WithContext(ctx).Create(ToSubscriptionModel(key)).Error)
}

func (r *subscriptionRepository) Delete(ctx context.Context, key entity.SubscriptionKey) error {
	return r.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", string(key.SubscriberID), string(key.ChannelID)).
		Delete(&model.SubscriptionModel{}).Error
}

const channelColumns = "u.id, u.username, u.full_name, u.avatar_url, s.created_at AS subscribed_at"

type channelRow struct {
	ID           string
	Username     string
	FullName     string
	AvatarURL    string
	SubscribedAt time.Time
}

func (r *subscriptionRepository) ListSubscribers(ctx context.Context, channelID entity.UserID, page entity.PageRequest) ([]*entity.Channel, int64, error) {
	q := r.db.WithContext(ctx).Table("subscriptions AS s").
		Joins("JOIN users AS u ON u.id = s.subscriber_id").
		Where("s.channel_id = ?", string(channelID))
	return r.listChannels(q, page)
}

func (r *subscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID entity.UserID, page entity.PageRequest) ([]*entity.Channel, int64, error) {
	q := r.db.WithContext(ctx).Table("subscriptions AS s").
		Joins("JOIN users AS u ON u.id = s.channel_id").
		Where("s.subscriber_id = ?", string(subscriberID))
	return r.listChannels(q, page)
}

func (r *subscriptionRepository) listChannels(q *gorm.DB, page entity.PageRequest) ([]*entity.Channel, int64, error) {
	var rows []channelRow
	total, err := paginate(q, channelColumns, "s.created_at ASC, s.id ASC", page, &rows)
	if err != nil {
		return nil, 0, err
	}

	channels := make([]*entity.Channel, len(rows))
	for i, row := range rows {
		channels[i] = &entity.Channel{
			ID:           entity.UserID(row.ID),
			Username:     row.Username,
			FullName:     row.FullName,
			AvatarURL:    row.AvatarURL,
			SubscribedAt: row.SubscribedAt,
		}
	}
	return channels, total, nil
}
