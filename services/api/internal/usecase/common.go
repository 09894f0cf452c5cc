package usecase

import (
	"context"
	"errors"
	"strings"

	"vidtube/pkg/apperr"
	"vidtube/pkg/blob"
	"vidtube/pkg/logger"
	"vidtube/pkg/queue"
	"vidtube/services/api/internal/entity"

	"github.com/google/uuid"
)

// EventPublisher delivers activity events. Publishing is best effort.
type EventPublisher interface {
	Publish(ctx context.Context, event queue.Event) error
}

// MediaUploader moves a staged upload into blob storage and removes blobs
// that are no longer referenced.
type MediaUploader interface {
	Upload(ctx context.Context, localPath, folder, contentType string) (*blob.Result, error)
	Delete(ctx context.Context, key string) error
}

// FileUpload is a multipart part already staged on local disk.
type FileUpload struct {
	LocalPath   string
	ContentType string
}

func publishEvent(ctx context.Context, publisher EventPublisher, log *logger.Logger, event queue.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.Warn("Failed to publish %s event: %v", event.Type, err)
	}
}

// validateID returns the canonical lower-case form of id. uuid.Parse accepts
// upper-case, braced and urn:uuid: spellings; callers must use the returned value.
func validateID(kind, id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", apperr.InvalidArgument("%s id is required", kind)
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", apperr.InvalidArgument("Invalid %s id", kind)
	}
	return parsed.String(), nil
}

func validateUserID(kind string, id entity.UserID) (entity.UserID, error) {
	canonical, err := validateID(kind, string(id))
	return entity.UserID(canonical), err
}

func requireText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", apperr.InvalidArgument("%s is required", field)
	}
	return value, nil
}

// requireUser fails NotFound unless id names an existing account. It returns
// the canonical id.
func requireUser(ctx context.Context, users userLookup, id entity.UserID) (entity.UserID, error) {
	id, err := validateUserID("user", id)
	if err != nil {
		return "", err
	}
	exists, err := users.Exists(ctx, id)
	if err != nil {
		return "", apperr.Internal(err, "failed to fetch user")
	}
	if !exists {
		return "", apperr.NotFound("User not found")
	}
	return id, nil
}

type userLookup interface {
	Exists(ctx context.Context, id entity.UserID) (bool, error)
}

// requireVideo loads a video the actor is allowed to see.
func requireVideo(ctx context.Context, videos videoLookup, id string, actor entity.UserID) (*entity.Video, error) {
	id, err := validateID("video", id)
	if err != nil {
		return nil, err
	}
	video, err := videos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, apperr.NotFound("Video not found")
		}
		return nil, apperr.Internal(err, "failed to fetch video")
	}
	if !video.VisibleTo(actor) {
		return nil, apperr.NotFound("Video not found")
	}
	return video, nil
}

type videoLookup interface {
	GetByID(ctx context.Context, id string) (*entity.Video, error)
}
