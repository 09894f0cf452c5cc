package entity

import "time"

type Tweet struct {
	ID        string    `json:"id"`
	OwnerID   UserID    `json:"owner"`
	Content   string    `json:"content"`
	Version   int       `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t *Tweet) Owner() UserID { return t.OwnerID }
