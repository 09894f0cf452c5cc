package persistent

import (
	"context"
	"time"

	"vidtube/services/api/internal/entity"
	"vidtube/services/api/internal/model"

	"gorm.io/gorm"
)

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *entity.Playlist) error
	GetByID(ctx context.Context, id string) (*entity.Playlist, error)
	Update(ctx context.Context, playlist *entity.Playlist) error
	Delete(ctx context.Context, playlist *entity.Playlist) error
	ListByOwner(ctx context.Context, ownerID entity.UserID, page entity.PageRequest) ([]*entity.Playlist, int64, error)
	// AddVideo appends videoID unless it is already a member. It reports whether the
	// playlist changed.
	AddVideo(ctx context.Context, playlistID, videoID string) (bool, error)
	// RemoveVideo drops videoID and reports whether it was a member.
	RemoveVideo(ctx context.Context, playlistID, videoID string) (bool, error)
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	playlistModel := ToPlaylistModel(playlist)
	if err := r.db.WithContext(ctx).Create(playlistModel).Error; err != nil {
		return translateError(err)
	}
	*playlist = *ToPlaylistEntity(playlistModel)
	return nil
}

func (r *playlistRepository) GetByID(ctx context.Context, id string) (*entity.Playlist, error) {
	var playlistModel model.PlaylistModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&playlistModel).Error; err != nil {
		return nil, translateError(err)
	}
	return ToPlaylistEntity(&playlistModel), nil
}

func (r *playlistRepository) Update(ctx context.Context, playlist *entity.Playlist) error {
	now := time.Now()
	tx := r.db.WithContext(ctx).Model(&model.PlaylistModel{}).
		Where("id = ? AND version = ?", playlist.ID, playlist.Version).
		Updates(map[string]interface{}{
			"name":        playlist.Name,
			"description": playlist.Description,
			"version":     gorm.Expr("version + 1"),
			"updated_at":  now,
		})
	if err := casResult(tx); err != nil {
		return err
	}
	playlist.Version++
	playlist.UpdatedAt = now
	return nil
}

func (r *playlistRepository) Delete(ctx context.Context, playlist *entity.Playlist) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND version = ?", playlist.ID, playlist.Version).
		Delete(&model.PlaylistModel{})
	return casResult(tx)
}

func (r *playlistRepository) ListByOwner(ctx context.Context, ownerID entity.UserID, page entity.PageRequest) ([]*entity.Playlist, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.PlaylistModel{}).Where("owner_id = ?", string(ownerID))

	var playlistModels []model.PlaylistModel
	total, err := paginate(q, "", "created_at ASC, id ASC", page, &playlistModels)
	if err != nil {
		return nil, 0, err
	}

	playlists := make([]*entity.Playlist, len(playlistModels))
	for i := range playlistModels {
		playlists[i] = ToPlaylistEntity(&playlistModels[i])
	}
	return playlists, total, nil
}

func (r *playlistRepository) AddVideo(ctx context.Context, playlistID, videoID string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&model.PlaylistModel{}).
		Where("id = ? AND NOT (? = ANY(video_ids))", playlistID, videoID).
		Updates(map[string]interface{}{
			"video_ids":  gorm.Expr("array_append(video_ids, ?)", videoID),
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return false, translateError(tx.Error)
	}
	return tx.RowsAffected > 0, nil
}

func (r *playlistRepository) RemoveVideo(ctx context.Context, playlistID, videoID string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&model.PlaylistModel{}).
		Where("id = ? AND ? = ANY(video_ids)", playlistID, videoID).
		Updates(map[string]interface{}{
			"video_ids":  gorm.Expr("array_remove(video_ids, ?)", videoID),
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return false, translateError(tx.Error)
	}
	return tx.RowsAffected > 0, nil
}
