package persistent

import (
	"vidtube/services/api/internal/entity"
	"vidtube/services/api/internal/model"

	"github.com/lib/pq"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}
	return &entity.User{
		ID:           entity.UserID(m.ID),
		Username:     m.Username,
		Email:        m.Email,
		FullName:     m.FullName,
		AvatarURL:    m.AvatarURL,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}
	return &model.UserModel{
		ID:           string(e.ID),
		Username:     e.Username,
		Email:        e.Email,
		FullName:     e.FullName,
		AvatarURL:    e.AvatarURL,
		PasswordHash: e.PasswordHash,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}
	return &entity.Video{
		ID:           m.ID,
		OwnerID:      entity.UserID(m.OwnerID),
		Title:        m.Title,
		Description:  m.Description,
		VideoURL:     m.VideoURL,
		ThumbnailURL: m.ThumbnailURL,
		Duration:     m.Duration,
		Views:        m.Views,
		IsPublished:  m.IsPublished,
		Version:      m.Version,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToVideoModel(e *entity.Video) *model.VideoModel {
	if e == nil {
		return nil
	}
	return &model.VideoModel{
		ID:           e.ID,
		OwnerID:      string(e.OwnerID),
		Title:        e.Title,
		Description:  e.Description,
		VideoURL:     e.VideoURL,
		ThumbnailURL: e.ThumbnailURL,
		Duration:     e.Duration,
		Views:        e.Views,
		IsPublished:  e.IsPublished,
		Version:      e.Version,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToVideoEntities(models []model.VideoModel) []*entity.Video {
	videos := make([]*entity.Video, len(models))
	for i := range models {
		videos[i] = ToVideoEntity(&models[i])
	}
	return videos
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}
	return &entity.Comment{
		ID:        m.ID,
		VideoID:   m.VideoID,
		OwnerID:   entity.UserID(m.OwnerID),
		Content:   m.Content,
		Version:   m.Version,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}
	return &model.CommentModel{
		ID:        e.ID,
		VideoID:   e.VideoID,
		OwnerID:   string(e.OwnerID),
		Content:   e.Content,
		Version:   e.Version,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToTweetEntity(m *model.TweetModel) *entity.Tweet {
	if m == nil {
		return nil
	}
	return &entity.Tweet{
		ID:        m.ID,
		OwnerID:   entity.UserID(m.OwnerID),
		Content:   m.Content,
		Version:   m.Version,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToTweetModel(e *entity.Tweet) *model.TweetModel {
	if e == nil {
		return nil
	}
	return &model.TweetModel{
		ID:        e.ID,
		OwnerID:   string(e.OwnerID),
		Content:   e.Content,
		Version:   e.Version,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToPlaylistEntity(m *model.PlaylistModel) *entity.Playlist {
	if m == nil {
		return nil
	}
	videoIDs := make([]string, len(m.VideoIDs))
	copy(videoIDs, m.VideoIDs)
	return &entity.Playlist{
		ID:          m.ID,
		OwnerID:     entity.UserID(m.OwnerID),
		Name:        m.Name,
		Description: m.Description,
		VideoIDs:    videoIDs,
		Version:     m.Version,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToPlaylistModel(e *entity.Playlist) *model.PlaylistModel {
	if e == nil {
		return nil
	}
	videoIDs := pq.StringArray{}
	videoIDs = append(videoIDs, e.VideoIDs...)
	return &model.PlaylistModel{
		ID:          e.ID,
		OwnerID:     string(e.OwnerID),
		Name:        e.Name,
		Description: e.Description,
		VideoIDs:    videoIDs,
		Version:     e.Version,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToLikeModel(key entity.LikeKey) *model.LikeModel {
	return &model.LikeModel{
		LikerID:    string(key.LikerID),
		TargetType: string(key.Target.Kind()),
		TargetID:   key.Target.ID(),
	}
}

func ToSubscriptionModel(key entity.SubscriptionKey) *model.SubscriptionModel {
	return &model.SubscriptionModel{
		SubscriberID: string(key.SubscriberID),
		ChannelID:    string(key.ChannelID),
	}
}
