package http

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"testing"

	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"
	"vidtube/services/api/internal/entity"
	"vidtube/services/api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	for field, contentType := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+field+`.bin"`)
		if contentType != "" {
			h.Set("Content-Type", contentType)
		}
		part, err := writer.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte("payload"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestPublishVideo(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	uploadDir := t.TempDir()
	handler := NewVideoHandler(mockUseCase, uploadDir, logger.NewNop())

	router := setupTestRouter()
	router.POST("/videos", asUser(testUserID, handler.PublishVideo))

	video := &entity.Video{ID: testVideoID, OwnerID: testUserID, Title: "Intro", IsPublished: true}
	var staged usecase.PublishVideoInput
	mockUseCase.On("Publish", mock.Anything, testUserID, mock.AnythingOfType("usecase.PublishVideoInput")).
		Run(func(args mock.Arguments) {
			staged = args.Get(2).(usecase.PublishVideoInput)
			_, err := os.Stat(staged.Video.LocalPath)
			assert.NoError(t, err, "video must be staged before the use case runs")
		}).
		Return(video, nil)

	body, contentType := multipartBody(t,
		map[string]string{"title": "Intro", "description": "hello"},
		map[string]string{"videoFile": "", "thumbnail": "image/png"},
	)
	req, _ := http.NewRequest("POST", "/videos", body)
	req.Header.Set("Content-Type", contentType)

	w := perform(router, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := decode(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "Video published successfully", env.Message)
	assert.Equal(t, "Intro", dataMap(t, env)["title"])

	assert.Equal(t, "Intro", staged.Title)
	assert.Equal(t, "video/mp4", staged.Video.ContentType)
	assert.Equal(t, "image/png", staged.Thumbnail.ContentType)

	_, err := os.Stat(staged.Video.LocalPath)
	assert.True(t, os.IsNotExist(err), "staged files are removed after the request")
	mockUseCase.AssertExpectations(t)
}

func TestPublishVideo_MissingThumbnail(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, t.TempDir(), logger.NewNop())

	router := setupTestRouter()
	router.POST("/videos", asUser(testUserID, handler.PublishVideo))

	mockUseCase.On("Publish", mock.Anything, testUserID, mock.MatchedBy(func(in usecase.PublishVideoInput) bool {
		return in.Video != nil && in.Thumbnail == nil
	})).Return(nil, apperr.InvalidArgument("Thumbnail file is required"))

	body, contentType := multipartBody(t, map[string]string{"title": "Intro"}, map[string]string{"videoFile": "video/mp4"})
	req, _ := http.NewRequest("POST", "/videos", body)
	req.Header.Set("Content-Type", contentType)

	w := perform(router, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "Thumbnail file is required", env.Message)
	mockUseCase.AssertExpectations(t)
}

func TestListVideos(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, t.TempDir(), logger.NewNop())

	router := setupTestRouter()
	router.GET("/videos", asUser(testUserID, handler.ListVideos))

	query := usecase.VideoQuery{
		Page:     entity.NewPageRequest(2, 100),
		Query:    "cats",
		SortBy:   "views",
		SortType: "desc",
	}
	page := entity.NewPage([]*entity.Video{}, 150, query.Page)
	mockUseCase.On("List", mock.Anything, query).Return(page, nil)

	req, _ := http.NewRequest("GET", "/videos?page=2&limit=500&query=cats&sortBy=views&sortType=desc", nil)
	w := perform(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataMap(t, decode(t, w))
	assert.Equal(t, float64(150), data["totalCount"])
	assert.Equal(t, float64(100), data["limit"])
	assert.Equal(t, false, data["hasNextPage"])
	mockUseCase.AssertExpectations(t)
}

func TestDeleteVideo_Forbidden(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, t.TempDir(), logger.NewNop())

	router := setupTestRouter()
	router.DELETE("/videos/:videoId", asUser(otherUserID, handler.DeleteVideo))

	mockUseCase.On("Delete", mock.Anything, otherUserID, testVideoID).
		Return(apperr.Forbidden("You can only delete your own videos"))

	req, _ := http.NewRequest("DELETE", "/videos/"+testVideoID, nil)
	w := perform(router, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You can only delete your own videos", decode(t, w).Message)
}

func TestUpdateVideo_JSON(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, t.TempDir(), logger.NewNop())

	router := setupTestRouter()
	router.PATCH("/videos/:videoId", asUser(testUserID, handler.UpdateVideo))

	mockUseCase.On("Update", mock.Anything, testUserID, testVideoID, mock.MatchedBy(func(in usecase.UpdateVideoInput) bool {
		return in.Title != nil && *in.Title == "Renamed" && in.Description == nil && in.Thumbnail == nil
	})).Return(&entity.Video{ID: testVideoID, Title: "Renamed"}, nil)

	req, _ := http.NewRequest("PATCH", "/videos/"+testVideoID, bytes.NewBufferString(`{"title":"Renamed"}`))
	req.Header.Set("Content-Type", "application/json")
	w := perform(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Renamed", dataMap(t, decode(t, w))["title"])
	mockUseCase.AssertExpectations(t)
}

func TestTogglePublish(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, t.TempDir(), logger.NewNop())

	router := setupTestRouter()
	router.PATCH("/videos/:videoId/publish", asUser(testUserID, handler.TogglePublish))

	mockUseCase.On("TogglePublish", mock.Anything, testUserID, testVideoID).Return(false, nil)

	req, _ := http.NewRequest("PATCH", "/videos/"+testVideoID+"/publish", nil)
	w := perform(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, dataMap(t, decode(t, w))["isPublished"])
}

func TestRecordView_NotFound(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, t.TempDir(), logger.NewNop())

	router := setupTestRouter()
	router.POST("/videos/:videoId/view", asUser(testUserID, handler.RecordView))

	mockUseCase.On("RecordView", mock.Anything, testUserID, testVideoID).Return(false, apperr.NotFound("Video not found"))

	req, _ := http.NewRequest("POST", "/videos/"+testVideoID+"/view", nil)
	w := perform(router, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Video not found", decode(t, w).Message)
}
