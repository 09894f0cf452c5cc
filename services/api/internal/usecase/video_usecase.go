package usecase

import (
	"context"
	"strings"

	"vidtube/pkg/apperr"
	"vidtube/pkg/blob"
	"vidtube/pkg/logger"
	"vidtube/pkg/queue"
	"vidtube/services/api/internal/entity"
	"vidtube/services/api/internal/repo/cache"
	"vidtube/services/api/internal/repo/persistent"
)

const (
	videoFolder     = "videos"
	thumbnailFolder = "thumbnails"
)

type PublishVideoInput struct {
	Title       string
	Description string
	Video       *FileUpload
	Thumbnail   *FileUpload
}

// UpdateVideoInput leaves nil fields untouched.
type UpdateVideoInput struct {
	Title       *string
	Description *string
	Thumbnail   *FileUpload
}

type VideoQuery struct {
	Page     entity.PageRequest
	Query    string
	SortBy   string
	SortType string
	UserID   string
}

type VideoUseCase interface {
	Publish(ctx context.Context, actor entity.UserID, in PublishVideoInput) (*entity.Video, error)
	GetByID(ctx context.Context, actor entity.UserID, videoID string) (*entity.Video, error)
	List(ctx context.Context, q VideoQuery) (*entity.Page[*entity.Video], error)
	Update(ctx context.Context, actor entity.UserID, videoID string, in UpdateVideoInput) (*entity.Video, error)
	Delete(ctx context.Context, actor entity.UserID, videoID string) error
	TogglePublish(ctx context.Context, actor entity.UserID, videoID string) (bool, error)
	RecordView(ctx context.Context, actor entity.UserID, videoID string) (bool, error)
}

type videoUseCase struct {
	videoRepo   persistent.VideoRepository
	uploader    MediaUploader
	viewTracker cache.ViewTracker
	videos      ownedResource[*entity.Video]
	publisher   EventPublisher
	logger      *logger.Logger
}

func NewVideoUseCase(
	videoRepo persistent.VideoRepository,
	uploader MediaUploader,
	viewTracker cache.ViewTracker,
	publisher EventPublisher,
	logger *logger.Logger,
) VideoUseCase {
	return &videoUseCase{
		videoRepo:   videoRepo,
		uploader:    uploader,
		viewTracker: viewTracker,
		videos:      ownedResource[*entity.Video]{kind: "video", plural: "videos", get: videoRepo.GetByID},
		publisher:   publisher,
		logger:      logger,
	}
}

// Publish uploads the video and then the thumbnail before creating the record.
// Both parts are checked up front so a missing thumbnail never costs an upload.
// If the thumbnail upload fails the video blob is left behind.
func (uc *videoUseCase) Publish(ctx context.Context, actor entity.UserID, in PublishVideoInput) (*entity.Video, error) {
	title, err := requireText("Title", in.Title)
	if err != nil {
		return nil, err
	}
	if in.Video == nil || in.Video.LocalPath == "" {
		return nil, apperr.InvalidArgument("Video file is required")
	}
	if in.Thumbnail == nil || in.Thumbnail.LocalPath == "" {
		return nil, apperr.InvalidArgument("Thumbnail file is required")
	}

	videoFile, err := uc.uploader.Upload(ctx, in.Video.LocalPath, videoFolder, in.Video.ContentType)
	if err != nil {
		return nil, apperr.Internal(err, "Unable to upload the video")
	}

	thumbnail, err := uc.uploader.Upload(ctx, in.Thumbnail.LocalPath, thumbnailFolder, in.Thumbnail.ContentType)
	if err != nil {
		uc.logger.Warn("Thumbnail upload failed, video blob %s is orphaned", videoFile.Key)
		return nil, apperr.Internal(err, "Unable to upload the thumbnail")
	}

	video := &entity.Video{
		OwnerID:      actor,
		Title:        title,
		Description:  strings.TrimSpace(in.Description),
		VideoURL:     videoFile.URL,
		ThumbnailURL: thumbnail.URL,
		Duration:     videoFile.Duration,
		IsPublished:  true,
	}
	if err := uc.videoRepo.Create(ctx, video); err != nil {
		return nil, apperr.Internal(err, "Unable to publish the video")
	}

	publishEvent(ctx, uc.publisher, uc.logger, queue.Event{
		Type:        queue.EventVideoPublished,
		ActorID:     actor.String(),
		RecipientID: actor.String(),
		TargetID:    video.ID,
		Priority:    5,
	})
	return video, nil
}

func (uc *videoUseCase) GetByID(ctx context.Context, actor entity.UserID, videoID string) (*entity.Video, error) {
	return requireVideo(ctx, uc.videoRepo, videoID, actor)
}

// List returns published videos. A userID narrows the listing to one channel.
func (uc *videoUseCase) List(ctx context.Context, q VideoQuery) (*entity.Page[*entity.Video], error) {
	filter := entity.VideoFilter{
		Query:         strings.TrimSpace(q.Query),
		PublishedOnly: true,
	}

	if q.UserID != "" {
		ownerID, err := validateID("user", q.UserID)
		if err != nil {
			return nil, err
		}
		filter.OwnerID = entity.UserID(ownerID)
	}

	if q.SortBy != "" {
		field := entity.VideoSortField(q.SortBy)
		if !field.Valid() {
			return nil, apperr.InvalidArgument("sortBy must be one of createdAt, views, duration, title")
		}
		filter.SortBy = field
	}

	switch strings.ToLower(q.SortType) {
	case "", "asc":
	case "desc":
		filter.Descending = true
	default:
		return nil, apperr.InvalidArgument("sortType must be asc or desc")
	}

	videos, total, err := uc.videoRepo.List(ctx, filter, q.Page)
	if err != nil {
		return nil, apperr.Internal(err, "failed to fetch videos")
	}
	return entity.NewPage(videos, total, q.Page), nil
}

// Update applies the patch with a version check. A replacement thumbnail is
// uploaded first; the superseded blob is removed once the write lands, and the
// new one is removed if the write fails.
func (uc *videoUseCase) Update(ctx context.Context, actor entity.UserID, videoID string, in UpdateVideoInput) (*entity.Video, error) {
	if in.Title == nil && in.Description == nil && in.Thumbnail == nil {
		return nil, apperr.InvalidArgument("Nothing to update")
	}

	var (
		uploaded      *blob.Result
		previousThumb string
	)
	video, err := uc.videos.mutate(ctx, videoID, actor, "update",
		func(v *entity.Video) error {
			if in.Title != nil {
				title, err := requireText("Title", *in.Title)
				if err != nil {
					return err
				}
				v.Title = title
			}
			if in.Description != nil {
				v.Description = strings.TrimSpace(*in.Description)
			}
			if in.Thumbnail != nil {
				thumbnail, err := uc.uploader.Upload(ctx, in.Thumbnail.LocalPath, thumbnailFolder, in.Thumbnail.ContentType)
				if err != nil {
					return apperr.Internal(err, "error while uploading the thumbnail")
				}
				uploaded, previousThumb = thumbnail, v.ThumbnailURL
				v.ThumbnailURL = thumbnail.URL
			}
			return nil
		},
		uc.videoRepo.Update,
	)
	if err != nil {
		if uploaded != nil {
			uc.discardBlob(ctx, uploaded.Key)
		}
		return nil, err
	}

	if uploaded != nil {
		if key, ok := blob.KeyFromURL(previousThumb, thumbnailFolder); ok {
			uc.discardBlob(ctx, key)
		}
	}
	return video, nil
}

func (uc *videoUseCase) discardBlob(ctx context.Context, key string) {
	if err := uc.uploader.Delete(ctx, key); err != nil {
		uc.logger.Warn("Failed to delete blob %s, it is orphaned: %v", key, err)
	}
}

// Delete removes the video record only. Comments, likes and playlist entries
// pointing at it are left in place.
func (uc *videoUseCase) Delete(ctx context.Context, actor entity.UserID, videoID string) error {
	_, err := uc.videos.mutate(ctx, videoID, actor, "delete", nil, uc.videoRepo.Delete)
	return err
}

func (uc *videoUseCase) TogglePublish(ctx context.Context, actor entity.UserID, videoID string) (bool, error) {
	video, err := uc.videos.mutate(ctx, videoID, actor, "publish",
		func(v *entity.Video) error {
			v.IsPublished = !v.IsPublished
			return nil
		},
		uc.videoRepo.Update,
	)
	if err != nil {
		return false, err
	}
	return video.IsPublished, nil
}

// RecordView counts one view per viewer and reports whether this call counted.
func (uc *videoUseCase) RecordView(ctx context.Context, actor entity.UserID, videoID string) (bool, error) {
	video, err := requireVideo(ctx, uc.videoRepo, videoID, actor)
	if err != nil {
		return false, err
	}

	first, err := uc.viewTracker.MarkViewed(ctx, video.ID, actor)
	if err != nil {
		return false, apperr.Internal(err, "failed to track view")
	}
	if !first {
		return false, nil
	}

	if err := uc.videoRepo.IncrementViews(ctx, video.ID); err != nil {
		uc.viewTracker.Forget(ctx, video.ID, actor)
		return false, apperr.Internal(err, "failed to increment views")
	}
	return true, nil
}
