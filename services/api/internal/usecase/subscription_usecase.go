package usecase

import (
	"context"

	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"
	"vidtube/pkg/queue"
	"vidtube/services/api/internal/entity"
	"vidtube/services/api/internal/repo/persistent"
)

type SubscriptionUseCase interface {
	Toggle(ctx context.Context, actor entity.UserID, channelID string) (bool, error)
	ListSubscribers(ctx context.Context, channelID string, page entity.PageRequest) (*entity.Page[*entity.Channel], error)
	ListSubscribedChannels(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Channel], error)
}

type subscriptionUseCase struct {
	subscriptionRepo persistent.SubscriptionRepository
	userRepo         persistent.UserRepository
	publisher        EventPublisher
	logger           *logger.Logger
}

func NewSubscriptionUseCase(
	subscriptionRepo persistent.SubscriptionRepository,
	userRepo persistent.UserRepository,
	publisher EventPublisher,
	logger *logger.Logger,
) SubscriptionUseCase {
	return &subscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		publisher:        publisher,
		logger:           logger,
	}
}

func (uc *subscriptionUseCase) Toggle(ctx context.Context, actor entity.UserID, channelID string) (bool, error) {
	channel, err := validateUserID("channel", entity.UserID(channelID))
	if err != nil {
		return false, err
	}
	key := entity.SubscriptionKey{SubscriberID: actor, ChannelID: channel}
	if key.SelfReferential() {
		return false, apperr.InvalidArgument("You cannot subscribe to your own channel")
	}

	exists, err := uc.userRepo.Exists(ctx, key.ChannelID)
	if err != nil {
		return false, apperr.Internal(err, "failed to fetch channel")
	}
	if !exists {
		return false, apperr.NotFound("Channel not found")
	}

	subscribed, err := toggleRelation[entity.SubscriptionKey](ctx, uc.subscriptionRepo, key, "subscription")
	if err != nil {
		return false, err
	}

	if subscribed {
		publishEvent(ctx, uc.publisher, uc.logger, queue.Event{
			Type:        queue.EventSubscribed,
			ActorID:     actor.String(),
			RecipientID: key.ChannelID.String(),
			TargetID:    key.ChannelID.String(),
			Priority:    4,
		})
	}
	return subscribed, nil
}

func (uc *subscriptionUseCase) ListSubscribers(ctx context.Context, channelID string, page entity.PageRequest) (*entity.Page[*entity.Channel], error) {
	channel, err := requireUser(ctx, uc.userRepo, entity.UserID(channelID))
	if err != nil {
		return nil, err
	}

	subscribers, total, err := uc.subscriptionRepo.ListSubscribers(ctx, channel, page)
	if err != nil {
		return nil, apperr.Internal(err, "failed to fetch subscribers")
	}
	return entity.NewPage(subscribers, total, page), nil
}

func (uc *subscriptionUseCase) ListSubscribedChannels(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Channel], error) {
	subscriber, err := requireUser(ctx, uc.userRepo, entity.UserID(userID))
	if err != nil {
		return nil, err
	}

	channels, total, err := uc.subscriptionRepo.ListSubscribedChannels(ctx, subscriber, page)
	if err != nil {
		return nil, apperr.Internal(err, "failed to fetch subscribed channels")
	}
	return entity.NewPage(channels, total, page), nil
}
