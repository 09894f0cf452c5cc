package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidtube/pkg/middleware"
	"vidtube/services/api/internal/entity"
	"vidtube/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  entity.UserID = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	otherUserID entity.UserID = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
	testVideoID               = "00000000-0000-0000-0000-000000000007"
)

// MockVideoUseCase is a mock implementation of usecase.VideoUseCase
type MockVideoUseCase struct {
	mock.Mock
}

func (m *MockVideoUseCase) Publish(ctx context.Context, actor entity.UserID, in usecase.PublishVideoInput) (*entity.Video, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) GetByID(ctx context.Context, actor entity.UserID, videoID string) (*entity.Video, error) {
	args := m.Called(ctx, actor, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) List(ctx context.Context, q usecase.VideoQuery) (*entity.Page[*entity.Video], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page[*entity.Video]), args.Error(1)
}

func (m *MockVideoUseCase) Update(ctx context.Context, actor entity.UserID, videoID string, in usecase.UpdateVideoInput) (*entity.Video, error) {
	args := m.Called(ctx, actor, videoID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) Delete(ctx context.Context, actor entity.UserID, videoID string) error {
	return m.Called(ctx, actor, videoID).Error(0)
}

func (m *MockVideoUseCase) TogglePublish(ctx context.Context, actor entity.UserID, videoID string) (bool, error) {
	args := m.Called(ctx, actor, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVideoUseCase) RecordView(ctx context.Context, actor entity.UserID, videoID string) (bool, error) {
	args := m.Called(ctx, actor, videoID)
	return args.Bool(0), args.Error(1)
}

// MockLikeUseCase is a mock implementation of usecase.LikeUseCase
type MockLikeUseCase struct {
	mock.Mock
}

func (m *MockLikeUseCase) ToggleVideoLike(ctx context.Context, actor entity.UserID, videoID string) (bool, error) {
	args := m.Called(ctx, actor, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeUseCase) ToggleCommentLike(ctx context.Context, actor entity.UserID, commentID string) (bool, error) {
	args := m.Called(ctx, actor, commentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeUseCase) ToggleTweetLike(ctx context.Context, actor entity.UserID, tweetID string) (bool, error) {
	args := m.Called(ctx, actor, tweetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeUseCase) ListLikedVideos(ctx context.Context, actor entity.UserID, page entity.PageRequest) (*entity.Page[*entity.Video], error) {
	args := m.Called(ctx, actor, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page[*entity.Video]), args.Error(1)
}

// MockTweetUseCase is a mock implementation of usecase.TweetUseCase
type MockTweetUseCase struct {
	mock.Mock
}

func (m *MockTweetUseCase) Create(ctx context.Context, actor entity.UserID, content string) (*entity.Tweet, error) {
	args := m.Called(ctx, actor, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tweet), args.Error(1)
}

func (m *MockTweetUseCase) ListByUser(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Tweet], error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page[*entity.Tweet]), args.Error(1)
}

func (m *MockTweetUseCase) Update(ctx context.Context, actor entity.UserID, tweetID, content string) (*entity.Tweet, error) {
	args := m.Called(ctx, actor, tweetID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tweet), args.Error(1)
}

func (m *MockTweetUseCase) Delete(ctx context.Context, actor entity.UserID, tweetID string) error {
	return m.Called(ctx, actor, tweetID).Error(0)
}

// MockCommentUseCase is a mock implementation of usecase.CommentUseCase
type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) List(ctx context.Context, actor entity.UserID, videoID string, page entity.PageRequest) (*entity.Page[*entity.Comment], error) {
	args := m.Called(ctx, actor, videoID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page[*entity.Comment]), args.Error(1)
}

func (m *MockCommentUseCase) Add(ctx context.Context, actor entity.UserID, videoID, content string) (*entity.Comment, error) {
	args := m.Called(ctx, actor, videoID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) Update(ctx context.Context, actor entity.UserID, commentID, content string) (*entity.Comment, error) {
	args := m.Called(ctx, actor, commentID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) Delete(ctx context.Context, actor entity.UserID, commentID string) error {
	return m.Called(ctx, actor, commentID).Error(0)
}

// MockPlaylistUseCase is a mock implementation of usecase.PlaylistUseCase
type MockPlaylistUseCase struct {
	mock.Mock
}

func (m *MockPlaylistUseCase) Create(ctx context.Context, actor entity.UserID, name, description string) (*entity.Playlist, error) {
	args := m.Called(ctx, actor, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistUseCase) Get(ctx context.Context, actor entity.UserID, playlistID string) (*entity.PlaylistDetail, error) {
	args := m.Called(ctx, actor, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlaylistDetail), args.Error(1)
}

func (m *MockPlaylistUseCase) ListByUser(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Playlist], error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page[*entity.Playlist]), args.Error(1)
}

func (m *MockPlaylistUseCase) Update(ctx context.Context, actor entity.UserID, playlistID string, in usecase.UpdatePlaylistInput) (*entity.Playlist, error) {
	args := m.Called(ctx, actor, playlistID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistUseCase) Delete(ctx context.Context, actor entity.UserID, playlistID string) error {
	return m.Called(ctx, actor, playlistID).Error(0)
}

func (m *MockPlaylistUseCase) AddVideo(ctx context.Context, actor entity.UserID, playlistID, videoID string) (bool, error) {
	args := m.Called(ctx, actor, playlistID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaylistUseCase) RemoveVideo(ctx context.Context, actor entity.UserID, playlistID, videoID string) (bool, error) {
	args := m.Called(ctx, actor, playlistID, videoID)
	return args.Bool(0), args.Error(1)
}

// MockSubscriptionUseCase is a mock implementation of usecase.SubscriptionUseCase
type MockSubscriptionUseCase struct {
	mock.Mock
}

func (m *MockSubscriptionUseCase) Toggle(ctx context.Context, actor entity.UserID, channelID string) (bool, error) {
	args := m.Called(ctx, actor, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionUseCase) ListSubscribers(ctx context.Context, channelID string, page entity.PageRequest) (*entity.Page[*entity.Channel], error) {
	args := m.Called(ctx, channelID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page[*entity.Channel]), args.Error(1)
}

func (m *MockSubscriptionUseCase) ListSubscribedChannels(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Channel], error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page[*entity.Channel]), args.Error(1)
}

// MockDashboardUseCase is a mock implementation of usecase.DashboardUseCase
type MockDashboardUseCase struct {
	mock.Mock
}

func (m *MockDashboardUseCase) Stats(ctx context.Context, actor entity.UserID) (*entity.ChannelStats, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChannelStats), args.Error(1)
}

func (m *MockDashboardUseCase) Videos(ctx context.Context, actor entity.UserID, page entity.PageRequest) (*entity.Page[*entity.Video], error) {
	args := m.Called(ctx, actor, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Page[*entity.Video]), args.Error(1)
}

// MockAuthUseCase is a mock implementation of usecase.AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, string, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var (
	_ usecase.VideoUseCase        = (*MockVideoUseCase)(nil)
	_ usecase.LikeUseCase         = (*MockLikeUseCase)(nil)
	_ usecase.TweetUseCase        = (*MockTweetUseCase)(nil)
	_ usecase.CommentUseCase      = (*MockCommentUseCase)(nil)
	_ usecase.PlaylistUseCase     = (*MockPlaylistUseCase)(nil)
	_ usecase.SubscriptionUseCase = (*MockSubscriptionUseCase)(nil)
	_ usecase.DashboardUseCase    = (*MockDashboardUseCase)(nil)
	_ usecase.AuthUseCase         = (*MockAuthUseCase)(nil)
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// asUser wraps handler the way AuthMiddleware would for user.
func asUser(user entity.UserID, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, user.String())
		handler(c)
	}
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Equal(t, w.Code, env.StatusCode)
	return env
}

func dataMap(t *testing.T, env envelope) map[string]interface{} {
	t.Helper()
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data
}

func perform(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
