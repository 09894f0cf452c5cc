package usecase

import (
	"context"
	"errors"

	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"
	"vidtube/pkg/queue"
	"vidtube/services/api/internal/entity"
	"vidtube/services/api/internal/repo/persistent"
)

type LikeUseCase interface {
	ToggleVideoLike(ctx context.Context, actor entity.UserID, videoID string) (bool, error)
	ToggleCommentLike(ctx context.Context, actor entity.UserID, commentID string) (bool, error)
	ToggleTweetLike(ctx context.Context, actor entity.UserID, tweetID string) (bool, error)
	ListLikedVideos(ctx context.Context, actor entity.UserID, page entity.PageRequest) (*entity.Page[*entity.Video], error)
}

type likeUseCase struct {
	likeRepo    persistent.LikeRepository
	videoRepo   persistent.VideoRepository
	commentRepo persistent.CommentRepository
	tweetRepo   persistent.TweetRepository
	publisher   EventPublisher
	logger      *logger.Logger
}

func NewLikeUseCase(
	likeRepo persistent.LikeRepository,
	videoRepo persistent.VideoRepository,
	commentRepo persistent.CommentRepository,
	tweetRepo persistent.TweetRepository,
	publisher EventPublisher,
	logger *logger.Logger,
) LikeUseCase {
	return &likeUseCase{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *likeUseCase) ToggleVideoLike(ctx context.Context, actor entity.UserID, videoID string) (bool, error) {
	video, err := requireVideo(ctx, uc.videoRepo, videoID, actor)
	if err != nil {
		return false, err
	}
	return uc.toggle(ctx, actor, entity.VideoTarget(video.ID), video.OwnerID)
}

func (uc *likeUseCase) ToggleCommentLike(ctx context.Context, actor entity.UserID, commentID string) (bool, error) {
	commentID, err := validateID("comment", commentID)
	if err != nil {
		return false, err
	}
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return false, lookupError(err, "comment")
	}
	return uc.toggle(ctx, actor, entity.CommentTarget(comment.ID), comment.OwnerID)
}

func (uc *likeUseCase) ToggleTweetLike(ctx context.Context, actor entity.UserID, tweetID string) (bool, error) {
	tweetID, err := validateID("tweet", tweetID)
	if err != nil {
		return false, err
	}
	tweet, err := uc.tweetRepo.GetByID(ctx, tweetID)
	if err != nil {
		return false, lookupError(err, "tweet")
	}
	return uc.toggle(ctx, actor, entity.TweetTarget(tweet.ID), tweet.OwnerID)
}

func (uc *likeUseCase) toggle(ctx context.Context, actor entity.UserID, target entity.LikeTarget, owner entity.UserID) (bool, error) {
	liked, err := toggleRelation[entity.LikeKey](ctx, uc.likeRepo, entity.LikeKey{LikerID: actor, Target: target}, "like")
	if err != nil {
		return false, err
	}

	if liked && !owner.Equal(actor) {
		publishEvent(ctx, uc.publisher, uc.logger, queue.Event{
			Type:        queue.EventLiked,
			ActorID:     actor.String(),
			RecipientID: owner.String(),
			TargetID:    target.ID(),
			Priority:    3,
		})
	}
	return liked, nil
}

func (uc *likeUseCase) ListLikedVideos(ctx context.Context, actor entity.UserID, page entity.PageRequest) (*entity.Page[*entity.Video], error) {
	videos, total, err := uc.likeRepo.ListLikedVideos(ctx, actor, page)
	if err != nil {
		return nil, apperr.Internal(err, "failed to fetch liked videos")
	}
	return entity.NewPage(videos, total, page), nil
}

func lookupError(err error, kind string) error {
	if errors.Is(err, entity.ErrNotFound) {
		return apperr.NotFound("%s not found", capitalize(kind))
	}
	return apperr.Internal(err, "failed to fetch "+kind)
}
