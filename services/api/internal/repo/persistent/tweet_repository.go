package persistent

import (
	"context"
	"time"

	"vidtube/services/api/internal/entity"
	"vidtube/services/api/internal/model"

	"gorm.io/gorm"
)

type TweetRepository interface {
	Create(ctx context.Context, tweet *entity.Tweet) error
	GetByID(ctx context.Context, id string) (*entity.Tweet, error)
	Update(ctx context.Context, tweet *entity.Tweet) error
	Delete(ctx context.Context, tweet *entity.Tweet) error
	ListByOwner(ctx context.Context, ownerID entity.UserID, page entity.PageRequest) ([]*entity.Tweet, int64, error)
}

type tweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	tweetModel := ToTweetModel(tweet)
	if err := r.db.WithContext(ctx).Create(tweetModel).Error; err != nil {
		return translateError(err)
	}
	*tweet = *ToTweetEntity(tweetModel)
	return nil
}

func (r *tweetRepository) GetByID(ctx context.Context, id string) (*entity.Tweet, error) {
	var tweetModel model.TweetModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tweetModel).Error; err != nil {
		return nil, translateError(err)
	}
	return ToTweetEntity(&tweetModel), nil
}

func (r *tweetRepository) Update(ctx context.Context, tweet *entity.Tweet) error {
	now := time.Now()
	tx := r.db.WithContext(ctx).Model(&model.TweetModel{}).
		Where("id = ? AND version = ?", tweet.ID, tweet.Version).
		Updates(map[string]interface{}{
			"content":    tweet.Content,
			"version":    gorm.Expr("version + 1"),
			"updated_at": now,
		})
	if err := casResult(tx); err != nil {
		return err
	}
	tweet.Version++
	tweet.UpdatedAt = now
	return nil
}

func (r *tweetRepository) Delete(ctx context.Context, tweet *entity.Tweet) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND version = ?", tweet.ID, tweet.Version).
		Delete(&model.TweetModel{})
	return casResult(tx)
}

func (r *tweetRepository) ListByOwner(ctx context.Context, ownerID entity.UserID, page entity.PageRequest) ([]*entity.Tweet, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.TweetModel{}).Where("owner_id = ?", string(ownerID))

	var tweetModels []model.TweetModel
	total, err := paginate(q, "", "created_at ASC, id ASC", page, &tweetModels)
	if err != nil {
		return nil, 0, err
	}

	tweets := make([]*entity.Tweet, len(tweetModels))
	for i := range tweetModels {
		tweets[i] = ToTweetEntity(&tweetModels[i])
	}
	return tweets, total, nil
}
