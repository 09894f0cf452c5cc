package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LikeModel struct {
	ID         string `gorm:"type:uuid;primary_key"`
	LikerID    string `gorm:"type:uuid;not null;uniqueIndex:idx_likes_liker_target"`
	TargetType string `gorm:"type:varchar(16);not null;uniqueIndex:idx_likes_liker_target"`
	TargetID   string `gorm:"type:uuid;not null;uniqueIndex:idx_likes_liker_target"`
	CreatedAt  time.Time
}

func (LikeModel) TableName() string {
	return "likes"
}

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

type SubscriptionModel struct {
	ID           string `gorm:"type:uuid;primary_key"`
	SubscriberID string `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_subscriber_channel"`
	ChannelID    string `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_subscriber_channel"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
