package http

import (
	"net/http"

	"vidtube/pkg/logger"
	"vidtube/pkg/response"
	"vidtube/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUseCase usecase.DashboardUseCase
	logger           *logger.Logger
}

func NewDashboardHandler(dashboardUseCase usecase.DashboardUseCase, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
		logger:           logger,
	}
}

// GetStats godoc
// @Summary      Channel statistics of the caller
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=entity.ChannelStats}
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardUseCase.Stats(c.Request.Context(), actorID(c))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, "Channel stats fetched successfully")
}

// GetVideos godoc
// @Summary      Every video of the caller's channel
// @Description  Includes unpublished videos, newest first
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size (max 100)" default(10)
// @Success      200  {object}  response.Envelope
// @Router       /dashboard/videos [get]
func (h *DashboardHandler) GetVideos(c *gin.Context) {
	videos, err := h.dashboardUseCase.Videos(c.Request.Context(), actorID(c), pageRequest(c))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, http.StatusOK, videos, "Channel videos fetched successfully")
}
