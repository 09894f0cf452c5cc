package usecase

import (
	"context"
	"errors"
	"strings"

	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"
	"vidtube/services/api/internal/entity"
	"vidtube/services/api/internal/repo/persistent"
)

// UpdatePlaylistInput leaves nil fields untouched.
type UpdatePlaylistInput struct {
	Name        *string
	Description *string
}

type PlaylistUseCase interface {
	Create(ctx context.Context, actor entity.UserID, name, description string) (*entity.Playlist, error)
	Get(ctx context.Context, actor entity.UserID, playlistID string) (*entity.PlaylistDetail, error)
	ListByUser(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Playlist], error)
	Update(ctx context.Context, actor entity.UserID, playlistID string, in UpdatePlaylistInput) (*entity.Playlist, error)
	Delete(ctx context.Context, actor entity.UserID, playlistID string) error
	AddVideo(ctx context.Context, actor entity.UserID, playlistID, videoID string) (bool, error)
	RemoveVideo(ctx context.Context, actor entity.UserID, playlistID, videoID string) (bool, error)
}

type playlistUseCase struct {
	playlistRepo persistent.PlaylistRepository
	videoRepo    persistent.VideoRepository
	userRepo     persistent.UserRepository
	playlists    ownedResource[*entity.Playlist]
	logger       *logger.Logger
}

func NewPlaylistUseCase(
	playlistRepo persistent.PlaylistRepository,
	videoRepo persistent.VideoRepository,
	userRepo persistent.UserRepository,
	logger *logger.Logger,
) PlaylistUseCase {
	return &playlistUseCase{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		userRepo:     userRepo,
		playlists:    ownedResource[*entity.Playlist]{kind: "playlist", plural: "playlists", get: playlistRepo.GetByID},
		logger:       logger,
	}
}

func (uc *playlistUseCase) Create(ctx context.Context, actor entity.UserID, name, description string) (*entity.Playlist, error) {
	name, err := requireText("Name", name)
	if err != nil {
		return nil, err
	}

	playlist := &entity.Playlist{
		OwnerID:     actor,
		Name:        name,
		Description: strings.TrimSpace(description),
		VideoIDs:    []string{},
	}
	if err := uc.playlistRepo.Create(ctx, playlist); err != nil {
		if errors.Is(err, entity.ErrDuplicate) {
			return nil, apperr.Conflict("Playlist with this name already exists")
		}
		return nil, apperr.Internal(err, "failed to create playlist")
	}
	return playlist, nil
}

// Get returns the playlist with the member videos the actor can see, in playlist order.
func (uc *playlistUseCase) Get(ctx context.Context, actor entity.UserID, playlistID string) (*entity.PlaylistDetail, error) {
	playlistID, err := validateID("playlist", playlistID)
	if err != nil {
		return nil, err
	}

	playlist, err := uc.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, apperr.NotFound("Playlist not found")
		}
		return nil, apperr.Internal(err, "failed to fetch playlist")
	}

	videos, err := uc.videoRepo.GetByIDs(ctx, playlist.VideoIDs)
	if err != nil {
		return nil, apperr.Internal(err, "failed to fetch playlist videos")
	}

	byID := make(map[string]*entity.Video, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
	}
	ordered := make([]*entity.Video, 0, len(playlist.VideoIDs))
	for _, id := range playlist.VideoIDs {
		if v, ok := byID[id]; ok && v.VisibleTo(actor) {
			ordered = append(ordered, v)
		}
	}

	return &entity.PlaylistDetail{Playlist: playlist, Videos: ordered}, nil
}

func (uc *playlistUseCase) ListByUser(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Playlist], error) {
	owner, err := requireUser(ctx, uc.userRepo, entity.UserID(userID))
	if err != nil {
		return nil, err
	}

	playlists, total, err := uc.playlistRepo.ListByOwner(ctx, owner, page)
	if err != nil {
		return nil, apperr.Internal(err, "failed to fetch playlists")
	}
	return entity.NewPage(playlists, total, page), nil
}

func (uc *playlistUseCase) Update(ctx context.Context, actor entity.UserID, playlistID string, in UpdatePlaylistInput) (*entity.Playlist, error) {
	if in.Name == nil && in.Description == nil {
		return nil, apperr.InvalidArgument("Nothing to update")
	}

	return uc.playlists.mutate(ctx, playlistID, actor, "update",
		func(p *entity.Playlist) error {
			if in.Name != nil {
				name, err := requireText("Name", *in.Name)
				if err != nil {
					return err
				}
				p.Name = name
			}
			if in.Description != nil {
				p.Description = strings.TrimSpace(*in.Description)
			}
			return nil
		},
		func(ctx context.Context, p *entity.Playlist) error {
			err := uc.playlistRepo.Update(ctx, p)
			if errors.Is(err, entity.ErrDuplicate) {
				return apperr.Conflict("Playlist with this name already exists")
			}
			return err
		},
	)
}

func (uc *playlistUseCase) Delete(ctx context.Context, actor entity.UserID, playlistID string) error {
	_, err := uc.playlists.mutate(ctx, playlistID, actor, "delete", nil, uc.playlistRepo.Delete)
	return err
}

// AddVideo is idempotent: adding a member again succeeds without a second entry.
func (uc *playlistUseCase) AddVideo(ctx context.Context, actor entity.UserID, playlistID, videoID string) (bool, error) {
	playlist, err := uc.playlists.load(ctx, playlistID, actor, "modify")
	if err != nil {
		return false, err
	}
	video, err := requireVideo(ctx, uc.videoRepo, videoID, actor)
	if err != nil {
		return false, err
	}

	if playlist.Contains(video.ID) {
		return true, nil
	}
	if _, err := uc.playlistRepo.AddVideo(ctx, playlist.ID, video.ID); err != nil {
		return false, apperr.Internal(err, "failed to add video to playlist")
	}
	return true, nil
}

// RemoveVideo fails InvalidState when the video is not a member.
func (uc *playlistUseCase) RemoveVideo(ctx context.Context, actor entity.UserID, playlistID, videoID string) (bool, error) {
	playlist, err := uc.playlists.load(ctx, playlistID, actor, "modify")
	if err != nil {
		return false, err
	}
	videoID, err = validateID("video", videoID)
	if err != nil {
		return false, err
	}
	if !playlist.Contains(videoID) {
		// members are removable even after their video is deleted
		exists, err := uc.videoRepo.Exists(ctx, videoID)
		if err != nil {
			return false, apperr.Internal(err, "failed to fetch video")
		}
		if !exists {
			return false, apperr.NotFound("Video not found")
		}
	}

	removed, err := uc.playlistRepo.RemoveVideo(ctx, playlist.ID, videoID)
	if err != nil {
		return false, apperr.Internal(err, "failed to remove video from playlist")
	}
	if !removed {
		return false, apperr.InvalidState("Video is not in the playlist")
	}
	return false, nil
}
