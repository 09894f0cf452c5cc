package entity

import "time"

type Playlist struct {
	ID          string    `json:"id"`
	OwnerID     UserID    `json:"owner"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	VideoIDs    []string  `json:"videos"`
	Version     int       `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p *Playlist) Owner() UserID { return p.OwnerID }

func (p *Playlist) Contains(videoID string) bool {
	for _, id := range p.VideoIDs {
		if id == videoID {
			return true
		}
	}
	return false
}

// PlaylistDetail is a playlist with its member videos resolved, in playlist order.
// Members deleted since they were added are skipped.
type PlaylistDetail struct {
	*Playlist
	Videos []*Video `json:"videoDetails"`
}
