package http

import (
	"net/http"

	"vidtube/pkg/logger"
	"vidtube/pkg/response"
	"vidtube/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionUseCase usecase.SubscriptionUseCase
	logger              *logger.Logger
}

func NewSubscriptionHandler(subscriptionUseCase usecase.SubscriptionUseCase, logger *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUseCase: subscriptionUseCase,
		logger:              logger,
	}
}

// ToggleSubscription godoc
// @Summary      Subscribe to or unsubscribe from a channel
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelId path string true "Channel (user) ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /channels/{channelId}/subscribe [post]
func (h *SubscriptionHandler) ToggleSubscription(c *gin.Context) {
	subscribed, err := h.subscriptionUseCase.Toggle(c.Request.Context(), actorID(c), c.Param("channelId"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	message := "Unsubscribed successfully"
	if subscribed {
		message = "Subscribed successfully"
	}
	response.JSON(c, http.StatusOK, gin.H{"isSubscribed": subscribed}, message)
}

// ListSubscribers godoc
// @Summary      List subscribers of a channel
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelId path string true "Channel (user) ID"
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size (max 100)" default(10)
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /channels/{channelId}/subscribers [get]
func (h *SubscriptionHandler) ListSubscribers(c *gin.Context) {
	subscribers, err := h.subscriptionUseCase.ListSubscribers(c.Request.Context(), c.Param("channelId"), pageRequest(c))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, http.StatusOK, subscribers, "Subscribers fetched successfully")
}

// ListSubscribedChannels godoc
// @Summary      List channels a user subscribes to
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size (max 100)" default(10)
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /users/{userId}/subscriptions [get]
func (h *SubscriptionHandler) ListSubscribedChannels(c *gin.Context) {
	channels, err := h.subscriptionUseCase.ListSubscribedChannels(c.Request.Context(), c.Param("userId"), pageRequest(c))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, http.StatusOK, channels, "Subscribed channels fetched successfully")
}
