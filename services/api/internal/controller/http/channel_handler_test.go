package http

import (
	"net/http"
	"testing"

	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"
	"vidtube/services/api/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestToggleSubscription(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.NewNop())
	router := setupTestRouter()
	router.POST("/channels/:channelId/subscribe", asUser(testUserID, handler.ToggleSubscription))

	mockUseCase.On("Toggle", mock.Anything, testUserID, otherUserID.String()).Return(true, nil)
	mockUseCase.On("Toggle", mock.Anything, testUserID, testUserID.String()).
		Return(false, apperr.InvalidArgument("You cannot subscribe to your own channel"))

	req, _ := http.NewRequest("POST", "/channels/"+otherUserID.String()+"/subscribe", nil)
	w := perform(router, req)
	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.Equal(t, "Subscribed successfully", env.Message)
	assert.Equal(t, true, dataMap(t, env)["isSubscribed"])

	req, _ = http.NewRequest("POST", "/channels/"+testUserID.String()+"/subscribe", nil)
	w = perform(router, req)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "You cannot subscribe to your own channel", decode(t, w).Message)
}

func TestListSubscribers(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.NewNop())
	router := setupTestRouter()
	router.GET("/channels/:channelId/subscribers", asUser(testUserID, handler.ListSubscribers))
	router.GET("/users/:userId/subscriptions", asUser(testUserID, handler.ListSubscribedChannels))

	page := entity.NewPageRequest(1, 10)
	mockUseCase.On("ListSubscribers", mock.Anything, otherUserID.String(), page).
		Return(entity.NewPage([]*entity.Channel{{ID: testUserID, Username: "alice"}}, 1, page), nil)
	mockUseCase.On("ListSubscribedChannels", mock.Anything, otherUserID.String(), page).
		Return(nil, apperr.NotFound("User not found"))

	req, _ := http.NewRequest("GET", "/channels/"+otherUserID.String()+"/subscribers", nil)
	w := perform(router, req)
	assert.Equal(t, http.StatusOK, w.Code)
	items := dataMap(t, decode(t, w))["items"].([]interface{})
	assert.Equal(t, "alice", items[0].(map[string]interface{})["username"])

	req, _ = http.NewRequest("GET", "/users/"+otherUserID.String()+"/subscriptions", nil)
	w = perform(router, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardStats_ZeroVideos(t *testing.T) {
	mockUseCase := new(MockDashboardUseCase)
	handler := NewDashboardHandler(mockUseCase, logger.NewNop())
	router := setupTestRouter()
	router.GET("/dashboard/stats", asUser(testUserID, handler.GetStats))

	mockUseCase.On("Stats", mock.Anything, testUserID).Return(&entity.ChannelStats{}, nil)

	req, _ := http.NewRequest("GET", "/dashboard/stats", nil)
	w := perform(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{
		"totalVideos":      float64(0),
		"totalViews":       float64(0),
		"totalSubscribers": float64(0),
		"totalLikes":       float64(0),
	}, dataMap(t, decode(t, w)))
}

func TestDashboardVideos(t *testing.T) {
	mockUseCase := new(MockDashboardUseCase)
	handler := NewDashboardHandler(mockUseCase, logger.NewNop())
	router := setupTestRouter()
	router.GET("/dashboard/videos", asUser(testUserID, handler.GetVideos))

	page := entity.NewPageRequest(1, 10)
	mockUseCase.On("Videos", mock.Anything, testUserID, page).
		Return(entity.NewPage([]*entity.Video{{ID: testVideoID, IsPublished: false}}, 1, page), nil)

	req, _ := http.NewRequest("GET", "/dashboard/videos", nil)
	w := perform(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataMap(t, decode(t, w))["items"], 1)
}

func TestHealthcheck(t *testing.T) {
	router := setupTestRouter()
	router.GET("/health", Healthcheck)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := perform(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "server is healthy", env.Message)
}
