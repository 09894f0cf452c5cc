package persistent

import (
	"context"
	"time"

	"vidtube/services/api/internal/entity"
	"vidtube/services/api/internal/model"

	"gorm.io/gorm"
)

type VideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error
	GetByID(ctx context.Context, id string) (*entity.Video, error)
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Video, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter entity.VideoFilter, page entity.PageRequest) ([]*entity.Video, int64, error)
	// Update writes the mutable fields if video.Version is still current and bumps it.
	Update(ctx context.Context, video *entity.Video) error
	Delete(ctx context.Context, video *entity.Video) error
	IncrementViews(ctx context.Context, id string) error
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if err := r.db.WithContext(ctx).Create(videoModel).Error; err != nil {
		return translateError(err)
	}
	*video = *ToVideoEntity(videoModel)
	return nil
}

func (r *videoRepository) GetByID(ctx context.Context, id string) (*entity.Video, error) {
	var videoModel model.VideoModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, translateError(err)
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Video, error) {
	if len(ids) == 0 {
		return []*entity.Video{}, nil
	}
	var videoModels []model.VideoModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&videoModels).Error; err != nil {
		return nil, err
	}
	return ToVideoEntities(videoModels), nil
}

func (r *videoRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.VideoModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *videoRepository) List(ctx context.Context, filter entity.VideoFilter, page entity.PageRequest) ([]*entity.Video, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.VideoModel{})
	if filter.PublishedOnly {
		q = q.Where("videos.is_published = ?", true)
	}
	if filter.OwnerID != "" {
		q = q.Where("videos.owner_id = ?", string(filter.OwnerID))
	}
	if filter.Query != "" {
		pattern := containsPattern(filter.Query)
		q = q.Where("(videos.title ILIKE ? OR videos.description ILIKE ?)", pattern, pattern)
	}

	var videoModels []model.VideoModel
	total, err := paginate(q, "", videoOrder("videos", filter), page, &videoModels)
	if err != nil {
		return nil, 0, err
	}
	return ToVideoEntities(videoModels), total, nil
}

func (r *videoRepository) Update(ctx context.Context, video *entity.Video) error {
	now := time.Now()
	tx := r.db.WithContext(ctx).Model(&model.VideoModel{}).
		Where("id = ? AND version = ?", video.ID, video.Version).
		Updates(map[string]interface{}{
			"title":         video.Title,
			"description":   video.Description,
			"thumbnail_url": video.ThumbnailURL,
			"is_published":  video.IsPublished,
			"version":       gorm.Expr("version + 1"),
			"updated_at":    now,
		})
	if err := casResult(tx); err != nil {
		return err
	}
	video.Version++
	video.UpdatedAt = now
	return nil
}

func (r *videoRepository) Delete(ctx context.Context, video *entity.Video) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND version = ?", video.ID, video.Version).
		Delete(&model.VideoModel{})
	return casResult(tx)
}

func (r *videoRepository) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&model.VideoModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
