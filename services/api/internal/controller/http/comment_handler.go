package http

import (
	"net/http"

	"vidtube/pkg/logger"
	"vidtube/pkg/response"
	"vidtube/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

type ContentRequest struct {
	Content string `json:"content"`
}

// ListComments godoc
// @Summary      List comments of a video
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size (max 100)" default(10)
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /videos/{videoId}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.commentUseCase.List(c.Request.Context(), actorID(c), c.Param("videoId"), pageRequest(c))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, http.StatusOK, comments, "Comments fetched successfully")
}

// AddComment godoc
// @Summary      Comment on a video
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Param        request body ContentRequest true "Comment"
// @Success      201  {object}  response.Envelope{data=entity.Comment}
// @Failure      404  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /videos/{videoId}/comments [post]
func (h *CommentHandler) AddComment(c *gin.Context) {
	var req ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, h.logger, bindError(err))
		return
	}

	comment, err := h.commentUseCase.Add(c.Request.Context(), actorID(c), c.Param("videoId"), req.Content)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, http.StatusCreated, comment, "Comment added successfully")
}

// UpdateComment godoc
// @Summary      Edit a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Param        request body ContentRequest true "New content"
// @Success      200  {object}  response.Envelope{data=entity.Comment}
// @Failure      403  {object}  response.Envelope
// @Router       /comments/{commentId} [patch]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, h.logger, bindError(err))
		return
	}

	comment, err := h.commentUseCase.Update(c.Request.Context(), actorID(c), c.Param("commentId"), req.Content)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, http.StatusOK, comment, "Comment updated successfully")
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Router       /comments/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.commentUseCase.Delete(c.Request.Context(), actorID(c), c.Param("commentId")); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"isDeleted": true}, "Comment deleted successfully")
}
