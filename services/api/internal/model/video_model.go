package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoModel struct {
	ID           string  `gorm:"type:uuid;primary_key"`
	OwnerID      string  `gorm:"type:uuid;not null;index"`
	Title        string  `gorm:"type:varchar(255);not null"`
	Description  string  `gorm:"type:text;not null;default:''"`
	VideoURL     string  `gorm:"type:varchar(500);not null"`
	ThumbnailURL string  `gorm:"type:varchar(500);not null"`
	Duration     float64 `gorm:"not null;default:0"`
	Views        int64   `gorm:"not null;default:0"`
	IsPublished  bool    `gorm:"not null;default:true"`
	Version      int     `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (VideoModel) TableName() string {
	return "videos"
}

func (v *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	if v.Version == 0 {
		v.Version = 1
	}
	return nil
}
