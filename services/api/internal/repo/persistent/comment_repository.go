package persistent

import (
	"context"
	"time"

	"vidtube/services/api/internal/entity"
	"vidtube/services/api/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	Update(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, comment *entity.Comment) error
	ListByVideo(ctx context.Context, videoID string, page entity.PageRequest) ([]*entity.Comment, int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.WithContext(ctx).Create(commentModel).Error; err != nil {
		return translateError(err)
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&commentModel).Error; err != nil {
		return nil, translateError(err)
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	now := time.Now()
	tx := r.db.WithContext(ctx).Model(&model.CommentModel{}).
		Where("id = ? AND version = ?", comment.ID, comment.Version).
		Updates(map[string]interface{}{
			"content":    comment.Content,
			"version":    gorm.Expr("version + 1"),
			"updated_at": now,
		})
	if err := casResult(tx); err != nil {
		return err
	}
	comment.Version++
	comment.UpdatedAt = now
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, comment *entity.Comment) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND version = ?", comment.ID, comment.Version).
		Delete(&model.CommentModel{})
	return casResult(tx)
}

func (r *commentRepository) ListByVideo(ctx context.Context, videoID string, page entity.PageRequest) ([]*entity.Comment, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.CommentModel{}).Where("video_id = ?", videoID)

	var commentModels []model.CommentModel
	total, err := paginate(q, "", "created_at ASC, id ASC", page, &commentModels)
	if err != nil {
		return nil, 0, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, total, nil
}
