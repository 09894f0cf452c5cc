package http

import (
	"bytes"
	"net/http"
	"testing"

	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"
	"vidtube/services/api/internal/entity"
	"vidtube/services/api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testPlaylistID = "00000000-0000-0000-0000-000000000050"

func playlistRouter(mockUseCase *MockPlaylistUseCase, user entity.UserID) http.Handler {
	handler := NewPlaylistHandler(mockUseCase, logger.NewNop())
	router := setupTestRouter()
	router.POST("/playlists", asUser(user, handler.CreatePlaylist))
	router.PATCH("/playlists/:playlistId", asUser(user, handler.UpdatePlaylist))
	router.POST("/playlists/:playlistId/videos/:videoId", asUser(user, handler.AddVideo))
	router.DELETE("/playlists/:playlistId/videos/:videoId", asUser(user, handler.RemoveVideo))
	return router
}

func TestAddVideoToPlaylist(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	router := playlistRouter(mockUseCase, testUserID)

	mockUseCase.On("AddVideo", mock.Anything, testUserID, testPlaylistID, testVideoID).Return(true, nil)

	req, _ := http.NewRequest("POST", "/playlists/"+testPlaylistID+"/videos/"+testVideoID, nil)
	w := perform(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, dataMap(t, decode(t, w))["isMember"])
}

func TestRemoveVideoFromPlaylist(t *testing.T) {
	tests := []struct {
		name    string
		result  bool
		err     error
		status  int
		message string
	}{
		{"member", false, nil, http.StatusOK, "Video removed from playlist"},
		{"not a member", false, apperr.InvalidState("Video is not in the playlist"), http.StatusBadRequest, "Video is not in the playlist"},
		{"not the owner", false, apperr.Forbidden("You can only modify your own playlists"), http.StatusForbidden, "You can only modify your own playlists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := new(MockPlaylistUseCase)
			router := playlistRouter(mockUseCase, testUserID)
			mockUseCase.On("RemoveVideo", mock.Anything, testUserID, testPlaylistID, testVideoID).Return(tt.result, tt.err)

			req, _ := http.NewRequest("DELETE", "/playlists/"+testPlaylistID+"/videos/"+testVideoID, nil)
			w := perform(router, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, decode(t, w).Message)
		})
	}
}

func TestCreatePlaylist_Duplicate(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	router := playlistRouter(mockUseCase, testUserID)
	mockUseCase.On("Create", mock.Anything, testUserID, "Favourites", "").
		Return(nil, apperr.Conflict("Playlist with this name already exists"))

	req, _ := http.NewRequest("POST", "/playlists", bytes.NewBufferString(`{"name":"Favourites"}`))
	req.Header.Set("Content-Type", "application/json")
	w := perform(router, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdatePlaylist_PartialBody(t *testing.T) {
	mockUseCase := new(MockPlaylistUseCase)
	router := playlistRouter(mockUseCase, testUserID)
	mockUseCase.On("Update", mock.Anything, testUserID, testPlaylistID, mock.MatchedBy(func(in usecase.UpdatePlaylistInput) bool {
		return in.Name == nil && in.Description != nil && *in.Description == "road trip"
	})).Return(&entity.Playlist{ID: testPlaylistID, Name: "Drive", Description: "road trip"}, nil)

	req, _ := http.NewRequest("PATCH", "/playlists/"+testPlaylistID, bytes.NewBufferString(`{"description":"road trip"}`))
	req.Header.Set("Content-Type", "application/json")
	w := perform(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataMap(t, decode(t, w))
	assert.Equal(t, "Drive", data["name"])
	mockUseCase.AssertExpectations(t)
}
