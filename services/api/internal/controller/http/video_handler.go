package http

import (
	"net/http"

	"vidtube/pkg/logger"
	"vidtube/pkg/response"
	"vidtube/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	uploadDir    string
	logger       *logger.Logger
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, uploadDir string, logger *logger.Logger) *VideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
		uploadDir:    uploadDir,
		logger:       logger,
	}
}

type PublishVideoRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

type UpdateVideoRequest struct {
	Title       *string `form:"title" json:"title"`
	Description *string `form:"description" json:"description"`
}

// PublishVideo godoc
// @Summary      Publish a video
// @Description  Uploads the video and its thumbnail, then creates a published video owned by the caller
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Video title"
// @Param        description formData string false "Video description"
// @Param        videoFile formData file true "Video file"
// @Param        thumbnail formData file true "Thumbnail image"
// @Success      201  {object}  response.Envelope{data=entity.Video}
// @Failure      422  {object}  response.Envelope
// @Failure      500  {object}  response.Envelope
// @Router       /videos [post]
func (h *VideoHandler) PublishVideo(c *gin.Context) {
	var req PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, h.logger, bindError(err))
		return
	}

	videoFile, cleanupVideo, err := stageUpload(c, h.uploadDir, "videoFile", "video/mp4")
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	defer cleanupVideo()

	thumbnail, cleanupThumbnail, err := stageUpload(c, h.uploadDir, "thumbnail", "image/jpeg")
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	defer cleanupThumbnail()

	video, err := h.videoUseCase.Publish(c.Request.Context(), actorID(c), usecase.PublishVideoInput{
		Title:       req.Title,
		Description: req.Description,
		Video:       videoFile,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}

	response.JSON(c, http.StatusCreated, video, "Video published successfully")
}

// ListVideos godoc
// @Summary      List published videos
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size (max 100)" default(10)
// @Param        query query string false "Search in title and description"
// @Param        sortBy query string false "Sort field" Enums(createdAt, views, duration, title)
// @Param        sortType query string false "Sort direction" Enums(asc, desc)
// @Param        userId query string false "Only videos of this channel"
// @Success      200  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /videos [get]
func (h *VideoHandler) ListVideos(c *gin.Context) {
	videos, err := h.videoUseCase.List(c.Request.Context(), usecase.VideoQuery{
		Page:     pageRequest(c),
		Query:    c.Query("query"),
		SortBy:   c.Query("sortBy"),
		SortType: c.Query("sortType"),
		UserID:   c.Query("userId"),
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, http.StatusOK, videos, "Videos fetched successfully")
}

// GetVideo godoc
// @Summary      Get a video
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  response.Envelope{data=entity.Video}
// @Failure      404  {object}  response.Envelope
// @Router       /videos/{videoId} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	video, err := h.videoUseCase.GetByID(c.Request.Context(), actorID(c), c.Param("videoId"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, http.StatusOK, video, "Video fetched successfully")
}

// UpdateVideo godoc
// @Summary      Update a video
// @Description  Updates title, description or thumbnail. Only the owner may update.
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Param        title formData string false "New title"
// @Param        description formData string false "New description"
// @Param        thumbnail formData file false "New thumbnail"
// @Success      200  {object}  response.Envelope{data=entity.Video}
// @Failure      403  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /videos/{videoId} [patch]
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	var req UpdateVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, h.logger, bindError(err))
		return
	}

	thumbnail, cleanup, err := stageUpload(c, h.uploadDir, "thumbnail", "image/jpeg")
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	defer cleanup()

	video, err := h.videoUseCase.Update(c.Request.Context(), actorID(c), c.Param("videoId"), usecase.UpdateVideoInput{
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, http.StatusOK, video, "Video updated successfully")
}

// DeleteVideo godoc
// @Summary      Delete a video
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Router       /videos/{videoId} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	if err := h.videoUseCase.Delete(c.Request.Context(), actorID(c), c.Param("videoId")); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"isDeleted": true}, "Video deleted successfully")
}

// TogglePublish godoc
// @Summary      Toggle publish status
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Router       /videos/{videoId}/publish [patch]
func (h *VideoHandler) TogglePublish(c *gin.Context) {
	published, err := h.videoUseCase.TogglePublish(c.Request.Context(), actorID(c), c.Param("videoId"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"isPublished": published}, "Publish status toggled successfully")
}

// RecordView godoc
// @Summary      Record a view
// @Description  Counts at most one view per user and video
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /videos/{videoId}/view [post]
func (h *VideoHandler) RecordView(c *gin.Context) {
	counted, err := h.videoUseCase.RecordView(c.Request.Context(), actorID(c), c.Param("videoId"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"counted": counted}, "View recorded")
}
