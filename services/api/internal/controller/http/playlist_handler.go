package http

import (
	"net/http"

	"vidtube/pkg/logger"
	"vidtube/pkg/response"
	"vidtube/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	playlistUseCase usecase.PlaylistUseCase
	logger          *logger.Logger
}

func NewPlaylistHandler(playlistUseCase usecase.PlaylistUseCase, logger *logger.Logger) *PlaylistHandler {
	return &PlaylistHandler{
		playlistUseCase: playlistUseCase,
		logger:          logger,
	}
}

type CreatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdatePlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CreatePlaylist godoc
// @Summary      Create a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePlaylistRequest true "Playlist"
// @Success      201  {object}  response.Envelope{data=entity.Playlist}
// @Failure      409  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /playlists [post]
func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	var req CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, h.logger, bindError(err))
		return
	}

	playlist, err := h.playlistUseCase.Create(c.Request.Context(), actorID(c), req.Name, req.Description)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, http.StatusCreated, playlist, "Playlist created successfully")
}

// GetPlaylist godoc
// @Summary      Get a playlist with its videos
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Success      200  {object}  response.Envelope{data=entity.PlaylistDetail}
// @Failure      404  {object}  response.Envelope
// @Router       /playlists/{playlistId} [get]
func (h *PlaylistHandler) GetPlaylist(c *gin.Context) {
	playlist, err := h.playlistUseCase.Get(c.Request.Context(), actorID(c), c.Param("playlistId"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, http.StatusOK, playlist, "Playlist fetched successfully")
}

// ListUserPlaylists godoc
// @Summary      List playlists of a user
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size (max 100)" default(10)
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /users/{userId}/playlists [get]
func (h *PlaylistHandler) ListUserPlaylists(c *gin.Context) {
	playlists, err := h.playlistUseCase.ListByUser(c.Request.Context(), c.Param("userId"), pageRequest(c))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, http.StatusOK, playlists, "Playlists fetched successfully")
}

// UpdatePlaylist godoc
// @Summary      Rename or describe a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Param        request body UpdatePlaylistRequest true "Fields to change"
// @Success      200  {object}  response.Envelope{data=entity.Playlist}
// @Failure      403  {object}  response.Envelope
// @Failure      409  {object}  response.Envelope
// @Router       /playlists/{playlistId} [patch]
func (h *PlaylistHandler) UpdatePlaylist(c *gin.Context) {
	var req UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, h.logger, bindError(err))
		return
	}

	playlist, err := h.playlistUseCase.Update(c.Request.Context(), actorID(c), c.Param("playlistId"), usecase.UpdatePlaylistInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, http.StatusOK, playlist, "Playlist updated successfully")
}

// DeletePlaylist godoc
// @Summary      Delete a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Router       /playlists/{playlistId} [delete]
func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	if err := h.playlistUseCase.Delete(c.Request.Context(), actorID(c), c.Param("playlistId")); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"isDeleted": true}, "Playlist deleted successfully")
}

// AddVideo godoc
// @Summary      Add a video to a playlist
// @Description  Adding a video that is already in the playlist succeeds without duplicating it
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /playlists/{playlistId}/videos/{videoId} [post]
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	member, err := h.playlistUseCase.AddVideo(c.Request.Context(), actorID(c), c.Param("playlistId"), c.Param("videoId"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"isMember": member}, "Video added to playlist")
}

// RemoveVideo godoc
// @Summary      Remove a video from a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Router       /playlists/{playlistId}/videos/{videoId} [delete]
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	member, err := h.playlistUseCase.RemoveVideo(c.Request.Context(), actorID(c), c.Param("playlistId"), c.Param("videoId"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"isMember": member}, "Video removed from playlist")
}
