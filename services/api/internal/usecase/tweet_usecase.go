package usecase

import (
	"context"

	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"
	"vidtube/services/api/internal/entity"
	"vidtube/services/api/internal/repo/persistent"
)

type TweetUseCase interface {
	Create(ctx context.Context, actor entity.UserID, content string) (*entity.Tweet, error)
	ListByUser(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Tweet], error)
	Update(ctx context.Context, actor entity.UserID, tweetID, content string) (*entity.Tweet, error)
	Delete(ctx context.Context, actor entity.UserID, tweetID string) error
}

type tweetUseCase struct {
	tweetRepo persistent.TweetRepository
	userRepo  persistent.UserRepository
	tweets    ownedResource[*entity.Tweet]
	logger    *logger.Logger
}

func NewTweetUseCase(tweetRepo persistent.TweetRepository, userRepo persistent.UserRepository, logger *logger.Logger) TweetUseCase {
	return &tweetUseCase{
		tweetRepo: tweetRepo,
		userRepo:  userRepo,
		tweets:    ownedResource[*entity.Tweet]{kind: "tweet", plural: "tweets", get: tweetRepo.GetByID},
		logger:    logger,
	}
}

func (uc *tweetUseCase) Create(ctx context.Context, actor entity.UserID, content string) (*entity.Tweet, error) {
	content, err := requireText("Content", content)
	if err != nil {
		return nil, err
	}

	tweet := &entity.Tweet{OwnerID: actor, Content: content}
	if err := uc.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, apperr.Internal(err, "failed to create tweet")
	}
	return tweet, nil
}

func (uc *tweetUseCase) ListByUser(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Tweet], error) {
	owner, err := requireUser(ctx, uc.userRepo, entity.UserID(userID))
	if err != nil {
		return nil, err
	}

	tweets, total, err := uc.tweetRepo.ListByOwner(ctx, owner, page)
	if err != nil {
		return nil, apperr.Internal(err, "failed to fetch tweets")
	}
	return entity.NewPage(tweets, total, page), nil
}

func (uc *tweetUseCase) Update(ctx context.Context, actor entity.UserID, tweetID, content string) (*entity.Tweet, error) {
	return uc.tweets.mutate(ctx, tweetID, actor, "update",
		func(t *entity.Tweet) error {
			text, err := requireText("Content", content)
			if err != nil {
				return err
			}
			t.Content = text
			return nil
		},
		uc.tweetRepo.Update,
	)
}

func (uc *tweetUseCase) Delete(ctx context.Context, actor entity.UserID, tweetID string) error {
	_, err := uc.tweets.mutate(ctx, tweetID, actor, "delete", nil, uc.tweetRepo.Delete)
	return err
}
