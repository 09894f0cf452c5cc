package entity

import "time"

type User struct {
	ID           UserID    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	AvatarURL    string    `json:"avatarUrl"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Channel is the public view of a user as listed among subscribers or subscriptions.
type Channel struct {
	ID           UserID    `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"fullName"`
	AvatarURL    string    `json:"avatarUrl"`
	SubscribedAt time.Time `json:"subscribedAt"`
}
