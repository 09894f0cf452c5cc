package entity

import "time"

type Video struct {
	ID           string    `json:"id"`
	OwnerID      UserID    `json:"owner"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"videoFile"`
	ThumbnailURL string    `json:"thumbnail"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	IsPublished  bool      `json:"isPublished"`
	Version      int       `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (v *Video) Owner() UserID { return v.OwnerID }

// VisibleTo reports whether viewer may see the video. Drafts are visible to their owner only.
func (v *Video) VisibleTo(viewer UserID) bool {
	return v.IsPublished || v.OwnerID.Equal(viewer)
}

type VideoSortField string

const (
	SortByCreatedAt VideoSortField = "createdAt"
	SortByViews     VideoSortField = "views"
	SortByDuration  VideoSortField = "duration"
	SortByTitle     VideoSortField = "title"
)

func (f VideoSortField) Valid() bool {
	switch f {
	case SortByCreatedAt, SortByViews, SortByDuration, SortByTitle:
		return true
	}
	return false
}

// VideoFilter selects videos for listing. Zero values mean "no constraint".
type VideoFilter struct {
	OwnerID       UserID
	Query         string
	PublishedOnly bool
	SortBy        VideoSortField
	Descending    bool
}
