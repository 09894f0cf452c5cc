package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type PlaylistModel struct {
	ID          string         `gorm:"type:uuid;primary_key"`
	OwnerID     string         `gorm:"type:uuid;not null;uniqueIndex:idx_playlists_owner_name"`
	Name        string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_playlists_owner_name"`
	Description string         `gorm:"type:text;not null;default:''"`
	VideoIDs    pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Version     int            `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PlaylistModel) TableName() string {
	return "playlists"
}

func (p *PlaylistModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Version == 0 {
		p.Version = 1
	}
	if p.VideoIDs == nil {
		p.VideoIDs = pq.StringArray{}
	}
	return nil
}
