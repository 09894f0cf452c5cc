package http

import (
	"net/http"

	"vidtube/pkg/response"

	"github.com/gin-gonic/gin"
)

// Healthcheck godoc
// @Summary      Healthcheck
// @Description  Reports that the server is up
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /health [get]
func Healthcheck(c *gin.Context) {
	response.JSON(c, http.StatusOK, nil, "server is healthy")
}
