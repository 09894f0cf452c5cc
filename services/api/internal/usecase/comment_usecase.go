package usecase

import (
	"context"

	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"
	"vidtube/pkg/queue"
	"vidtube/services/api/internal/entity"
	"vidtube/services/api/internal/repo/persistent"
)

type CommentUseCase interface {
	List(ctx context.Context, actor entity.UserID, videoID string, page entity.PageRequest) (*entity.Page[*entity.Comment], error)
	Add(ctx context.Context, actor entity.UserID, videoID, content string) (*entity.Comment, error)
	Update(ctx context.Context, actor entity.UserID, commentID, content string) (*entity.Comment, error)
	Delete(ctx context.Context, actor entity.UserID, commentID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	videoRepo   persistent.VideoRepository
	comments    ownedResource[*entity.Comment]
	publisher   EventPublisher
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	videoRepo persistent.VideoRepository,
	publisher EventPublisher,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		comments:    ownedResource[*entity.Comment]{kind: "comment", plural: "comments", get: commentRepo.GetByID},
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *commentUseCase) List(ctx context.Context, actor entity.UserID, videoID string, page entity.PageRequest) (*entity.Page[*entity.Comment], error) {
	video, err := requireVideo(ctx, uc.videoRepo, videoID, actor)
	if err != nil {
		return nil, err
	}

	comments, total, err := uc.commentRepo.ListByVideo(ctx, video.ID, page)
	if err != nil {
		return nil, apperr.Internal(err, "failed to fetch comments")
	}
	return entity.NewPage(comments, total, page), nil
}

func (uc *commentUseCase) Add(ctx context.Context, actor entity.UserID, videoID, content string) (*entity.Comment, error) {
	content, err := requireText("Content", content)
	if err != nil {
		return nil, err
	}

	video, err := requireVideo(ctx, uc.videoRepo, videoID, actor)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{VideoID: video.ID, OwnerID: actor, Content: content}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, apperr.Internal(err, "failed to add comment")
	}

	if !video.OwnerID.Equal(actor) {
		publishEvent(ctx, uc.publisher, uc.logger, queue.Event{
			Type:        queue.EventCommentAdded,
			ActorID:     actor.String(),
			RecipientID: video.OwnerID.String(),
			TargetID:    video.ID,
			Priority:    2,
		})
	}
	return comment, nil
}

func (uc *commentUseCase) Update(ctx context.Context, actor entity.UserID, commentID, content string) (*entity.Comment, error) {
	return uc.comments.mutate(ctx, commentID, actor, "update",
		func(c *entity.Comment) error {
			text, err := requireText("Content", content)
			if err != nil {
				return err
			}
			c.Content = text
			return nil
		},
		uc.commentRepo.Update,
	)
}

func (uc *commentUseCase) Delete(ctx context.Context, actor entity.UserID, commentID string) error {
	_, err := uc.comments.mutate(ctx, commentID, actor, "delete", nil, uc.commentRepo.Delete)
	return err
}
