package persistent

import (
	"context"

	"vidtube/services/api/internal/entity"
	"vidtube/services/api/internal/model"

	"gorm.io/gorm"
)

type LikeRepository interface {
	Exists(ctx context.Context, key entity.LikeKey) (bool, error)
	Create(ctx context.Context, key entity.LikeKey) error
	Delete(ctx context.Context, key entity.LikeKey) error
	// ListLikedVideos returns videos liked by likerID that the liker can still see.
	ListLikedVideos(ctx context.Context, likerID entity.UserID, page entity.PageRequest) ([]*entity.Video, int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) byKey(ctx context.Context, key entity.LikeKey) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("liker_id = ? AND target_type = ? AND target_id = ?",
			string(key.LikerID), string(key.Target.Kind()), key.Target.ID())
}

func (r *likeRepository) Exists(ctx context.Context, key entity.LikeKey) (bool, error) {
	var count int64
	if err := r.byKey(ctx, key).Model(&model.LikeModel{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *likeRepository) Create(ctx context.Context, key entity.LikeKey) error {
	return translateError(r.db.WithContext(ctx).Create(ToLikeModel(key)).Error)
}

func (r *likeRepository) Delete(ctx context.Context, key entity.LikeKey) error {
	return r.byKey(ctx, key).Delete(&model.LikeModel{}).Error
}

func (r *likeRepository) ListLikedVideos(ctx context.Context, likerID entity.UserID, page entity.PageRequest) ([]*entity.Video, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.VideoModel{}).
		Joins("JOIN likes AS l ON l.target_id = videos.id AND l.target_type = ?", string(entity.LikeTargetVideo)).
		Where("l.liker_id = ?", string(likerID)).
		Where("(videos.is_published = ? OR videos.owner_id = ?)", true, string(likerID))

	var videoModels []model.VideoModel
	total, err := paginate(q, "videos.*", "l.created_at ASC, videos.id ASC", page, &videoModels)
	if err != nil {
		return nil, 0, err
	}
	return ToVideoEntities(videoModels), total, nil
}
