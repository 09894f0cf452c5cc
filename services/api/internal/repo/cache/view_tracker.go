package cache

import (
	"context"
	"fmt"
	"time"

	"vidtube/services/api/internal/entity"

	"github.com/redis/go-redis/v9"
)

const viewMarkerTTL = 365 * 24 * time.Hour

type ViewTracker interface {
	// MarkViewed reports true the first time viewer is seen for videoID.
	MarkViewed(ctx context.Context, videoID string, viewer entity.UserID) (bool, error)
	// Forget drops the marker so a failed counter update can be retried.
	Forget(ctx context.Context, videoID string, viewer entity.UserID)
}

type viewTracker struct {
	redisClient *redis.Client
}

// NewViewTracker returns a tracker backed by redis. Without redis every view counts.
func NewViewTracker(redisClient *redis.Client) ViewTracker {
	return &viewTracker{redisClient: redisClient}
}

func ViewKey(videoID string, viewer entity.UserID) string {
	return fmt.Sprintf("video_viewed:%s:%s", videoID, viewer)
}

func (t *viewTracker) MarkViewed(ctx context.Context, videoID string, viewer entity.UserID) (bool, error) {
	if t.redisClient == nil {
		return true, nil
	}
	set, err := t.redisClient.SetNX(ctx, ViewKey(videoID, viewer), "1", viewMarkerTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to track view: %w", err)
	}
	return set, nil
}

func (t *viewTracker) Forget(ctx context.Context, videoID string, viewer entity.UserID) {
	if t.redisClient != nil {
		t.redisClient.Del(ctx, ViewKey(videoID, viewer))
	}
}
