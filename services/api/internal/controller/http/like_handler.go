package http

import (
	"context"
	"net/http"

	"vidtube/pkg/logger"
	"vidtube/pkg/response"
	"vidtube/services/api/internal/entity"
	"vidtube/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
	logger      *logger.Logger
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase, logger *logger.Logger) *LikeHandler {
	return &LikeHandler{
		likeUseCase: likeUseCase,
		logger:      logger,
	}
}

type toggleFunc func(ctx context.Context, actor entity.UserID, id string) (bool, error)

func (h *LikeHandler) toggle(c *gin.Context, param string, fn toggleFunc) {
	liked, err := fn(c.Request.Context(), actorID(c), c.Param(param))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	message := "Unliked successfully"
	if liked {
		message = "Liked successfully"
	}
	response.JSON(c, http.StatusOK, gin.H{"isLiked": liked}, message)
}

// ToggleVideoLike godoc
// @Summary      Like or unlike a video
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /videos/{videoId}/like [post]
func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	h.toggle(c, "videoId", h.likeUseCase.ToggleVideoLike)
}

// ToggleCommentLike godoc
// @Summary      Like or unlike a comment
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /comments/{commentId}/like [post]
func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	h.toggle(c, "commentId", h.likeUseCase.ToggleCommentLike)
}

// ToggleTweetLike godoc
// @Summary      Like or unlike a tweet
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId path string true "Tweet ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /tweets/{tweetId}/like [post]
func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	h.toggle(c, "tweetId", h.likeUseCase.ToggleTweetLike)
}

// ListLikedVideos godoc
// @Summary      List videos liked by the caller
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size (max 100)" default(10)
// @Success      200  {object}  response.Envelope
// @Router       /likes/videos [get]
func (h *LikeHandler) ListLikedVideos(c *gin.Context) {
	videos, err := h.likeUseCase.ListLikedVideos(c.Request.Context(), actorID(c), pageRequest(c))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, http.StatusOK, videos, "Liked videos fetched successfully")
}
