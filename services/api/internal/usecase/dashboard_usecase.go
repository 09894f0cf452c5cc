package usecase

import (
	"context"

	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"
	"vidtube/services/api/internal/entity"
	"vidtube/services/api/internal/repo/persistent"
)

type DashboardUseCase interface {
	Stats(ctx context.Context, actor entity.UserID) (*entity.ChannelStats, error)
	Videos(ctx context.Context, actor entity.UserID, page entity.PageRequest) (*entity.Page[*entity.Video], error)
}

type dashboardUseCase struct {
	dashboardRepo persistent.DashboardRepository
	videoRepo     persistent.VideoRepository
	logger        *logger.Logger
}

func NewDashboardUseCase(dashboardRepo persistent.DashboardRepository, videoRepo persistent.VideoRepository, logger *logger.Logger) DashboardUseCase {
	return &dashboardUseCase{
		dashboardRepo: dashboardRepo,
		videoRepo:     videoRepo,
		logger:        logger,
	}
}

func (uc *dashboardUseCase) Stats(ctx context.Context, actor entity.UserID) (*entity.ChannelStats, error) {
	stats, err := uc.dashboardRepo.ChannelStats(ctx, actor)
	if err != nil {
		return nil, apperr.Internal(err, "failed to fetch channel stats")
	}
	if stats == nil {
		stats = &entity.ChannelStats{}
	}
	return stats, nil
}

// Videos lists every video of the actor's channel, drafts included.
func (uc *dashboardUseCase) Videos(ctx context.Context, actor entity.UserID, page entity.PageRequest) (*entity.Page[*entity.Video], error) {
	filter := entity.VideoFilter{OwnerID: actor, SortBy: entity.SortByCreatedAt, Descending: true}

	videos, total, err := uc.videoRepo.List(ctx, filter, page)
	if err != nil {
		return nil, apperr.Internal(err, "failed to fetch channel videos")
	}
	return entity.NewPage(videos, total, page), nil
}
