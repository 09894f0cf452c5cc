package persistent

import (
	"context"
	"database/sql"

	"vidtube/services/api/internal/entity"

	"gorm.io/gorm"
)

type DashboardRepository interface {
	ChannelStats(ctx context.Context, ownerID entity.UserID) (*entity.ChannelStats, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// Subscribers are counted per channel and likes across every video the owner has,
// so an owner without videos still reports their subscriber count.
const channelStatsQuery = `
SELECT
	(SELECT COUNT(*) FROM videos WHERE owner_id = @owner) AS total_videos,
	(SELECT COALESCE(SUM(views), 0) FROM videos WHERE owner_id = @owner) AS total_views,
	(SELECT COUNT(*) FROM subscriptions WHERE channel_id = @owner) AS total_subscribers,
	(SELECT COUNT(*) FROM likes AS l
		JOIN videos AS v ON v.id = l.target_id
		WHERE l.target_type = @kind AND v.owner_id = @owner) AS total_likes`

func (r *dashboardRepository) ChannelStats(ctx context.Context, ownerID entity.UserID) (*entity.ChannelStats, error) {
	var stats entity.ChannelStats
	err := r.db.WithContext(ctx).Raw(channelStatsQuery,
		sql.Named("owner", string(ownerID)),
		sql.Named("kind", string(entity.LikeTargetVideo)),
	).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
