package usecase

import (
	"context"
	"sync"

	"vidtube/pkg/blob"
	"vidtube/pkg/queue"
	"vidtube/services/api/internal/entity"
	"vidtube/services/api/internal/repo/cache"
	"vidtube/services/api/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	if user.ID == "" {
		user.ID = "11111111-1111-1111-1111-111111111111"
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id entity.UserID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id entity.UserID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockVideoRepository is a mock implementation of persistent.VideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(ctx context.Context, video *entity.Video) error {
	args := m.Called(ctx, video)
	if video.ID == "" {
		video.ID = "22222222-2222-2222-2222-222222222222"
	}
	return args.Error(0)
}

func (m *MockVideoRepository) GetByID(ctx context.Context, id string) (*entity.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Video, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockVideoRepository) List(ctx context.Context, filter entity.VideoFilter, page entity.PageRequest) ([]*entity.Video, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Video), args.Get(1).(int64), args.Error(2)
}

func (m *MockVideoRepository) Update(ctx context.Context, video *entity.Video) error {
	return m.Called(ctx, video).Error(0)
}

func (m *MockVideoRepository) Delete(ctx context.Context, video *entity.Video) error {
	return m.Called(ctx, video).Error(0)
}

func (m *MockVideoRepository) IncrementViews(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockCommentRepository is a mock implementation of persistent.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	args := m.Called(ctx, comment)
	if comment.ID == "" {
		comment.ID = "33333333-3333-3333-3333-333333333333"
	}
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, comment *entity.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepository) ListByVideo(ctx context.Context, videoID string, page entity.PageRequest) ([]*entity.Comment, int64, error) {
	args := m.Called(ctx, videoID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Comment), args.Get(1).(int64), args.Error(2)
}

// MockDashboardRepository is a mock implementation of persistent.DashboardRepository
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) ChannelStats(ctx context.Context, ownerID entity.UserID) (*entity.ChannelStats, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChannelStats), args.Error(1)
}

// MockSubscriptionRepository is a mock implementation of persistent.SubscriptionRepository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Exists(ctx context.Context, key entity.SubscriptionKey) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, key entity.SubscriptionKey) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockSubscriptionRepository) Delete(ctx context.Context, key entity.SubscriptionKey) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockSubscriptionRepository) ListSubscribers(ctx context.Context, channelID entity.UserID, page entity.PageRequest) ([]*entity.Channel, int64, error) {
	args := m.Called(ctx, channelID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Channel), args.Get(1).(int64), args.Error(2)
}

func (m *MockSubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID entity.UserID, page entity.PageRequest) ([]*entity.Channel, int64, error) {
	args := m.Called(ctx, subscriberID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Channel), args.Get(1).(int64), args.Error(2)
}

// MockUploader is a mock implementation of MediaUploader
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, localPath, folder, contentType string) (*blob.Result, error) {
	args := m.Called(ctx, localPath, folder, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blob.Result), args.Error(1)
}

func (m *MockUploader) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// MockViewTracker is a mock implementation of cache.ViewTracker
type MockViewTracker struct {
	mock.Mock
}

func (m *MockViewTracker) MarkViewed(ctx context.Context, videoID string, viewer entity.UserID) (bool, error) {
	args := m.Called(ctx, videoID, viewer)
	return args.Bool(0), args.Error(1)
}

func (m *MockViewTracker) Forget(ctx context.Context, videoID string, viewer entity.UserID) {
	m.Called(ctx, videoID, viewer)
}

// MockPublisher is a mock implementation of EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event queue.Event) error {
	return m.Called(ctx, event).Error(0)
}

// MockTokenIssuer is a mock implementation of TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID, username string) (string, error) {
	args := m.Called(userID, username)
	return args.String(0), args.Error(1)
}

var (
	_ persistent.UserRepository         = (*MockUserRepository)(nil)
	_ persistent.VideoRepository        = (*MockVideoRepository)(nil)
	_ persistent.CommentRepository      = (*MockCommentRepository)(nil)
	_ persistent.DashboardRepository    = (*MockDashboardRepository)(nil)
	_ persistent.SubscriptionRepository = (*MockSubscriptionRepository)(nil)
	_ MediaUploader                     = (*MockUploader)(nil)
	_ cache.ViewTracker                 = (*MockViewTracker)(nil)
	_ EventPublisher                    = (*MockPublisher)(nil)
	_ TokenIssuer                       = (*MockTokenIssuer)(nil)
)

// memRelations is an in-memory relationStore that enforces uniqueness like the
// storage index does.
type memRelations[K comparable] struct {
	mu   sync.Mutex
	rows map[K]struct{}
}

func newMemRelations[K comparable]() *memRelations[K] {
	return &memRelations[K]{rows: make(map[K]struct{})}
}

func (s *memRelations[K]) Exists(ctx context.Context, key K) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.rows[key]
	return ok, nil
}

func (s *memRelations[K]) Create(ctx context.Context, key K) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[key]; ok {
		return entity.ErrDuplicate
	}
	s.rows[key] = struct{}{}
	return nil
}

func (s *memRelations[K]) Delete(ctx context.Context, key K) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, key)
	return nil
}

func (s *memRelations[K]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

// memLikeRepository backs like tests with real toggle state.
type memLikeRepository struct {
	*memRelations[entity.LikeKey]
}

func (r *memLikeRepository) ListLikedVideos(ctx context.Context, likerID entity.UserID, page entity.PageRequest) ([]*entity.Video, int64, error) {
	return nil, 0, nil
}

// memTweetRepository stores tweets in memory with version checks.
type memTweetRepository struct {
	mu     sync.Mutex
	nextID int
	tweets map[string]entity.Tweet
}

func newMemTweetRepository() *memTweetRepository {
	return &memTweetRepository{tweets: make(map[string]entity.Tweet)}
}

func (r *memTweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	tweet.ID = testUUID(r.nextID)
	tweet.Version = 1
	r.tweets[tweet.ID] = *tweet
	return nil
}

func (r *memTweetRepository) GetByID(ctx context.Context, id string) (*entity.Tweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tweets[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &t, nil
}

func (r *memTweetRepository) Update(ctx context.Context, tweet *entity.Tweet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.tweets[tweet.ID]
	if !ok || stored.Version != tweet.Version {
		return entity.ErrStaleVersion
	}
	tweet.Version++
	r.tweets[tweet.ID] = *tweet
	return nil
}

func (r *memTweetRepository) Delete(ctx context.Context, tweet *entity.Tweet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.tweets[tweet.ID]
	if !ok || stored.Version != tweet.Version {
		return entity.ErrStaleVersion
	}
	delete(r.tweets, tweet.ID)
	return nil
}

func (r *memTweetRepository) ListByOwner(ctx context.Context, ownerID entity.UserID, page entity.PageRequest) ([]*entity.Tweet, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.Tweet
	for i := 1; i <= r.nextID; i++ {
		if t, ok := r.tweets[testUUID(i)]; ok && t.OwnerID.Equal(ownerID) {
			tc := t
			all = append(all, &tc)
		}
	}
	total := int64(len(all))
	start := page.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + page.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

// memPlaylistRepository keeps playlists in memory.
type memPlaylistRepository struct {
	mu        sync.Mutex
	playlists map[string]entity.Playlist
}

func newMemPlaylistRepository(playlists ...entity.Playlist) *memPlaylistRepository {
	r := &memPlaylistRepository{playlists: make(map[string]entity.Playlist)}
	for _, p := range playlists {
		if p.Version == 0 {
			p.Version = 1
		}
		r.playlists[p.ID] = p
	}
	return r
}

func (r *memPlaylistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.playlists {
		if p.OwnerID.Equal(playlist.OwnerID) && p.Name == playlist.Name {
			return entity.ErrDuplicate
		}
	}
	playlist.ID = testUUID(len(r.playlists) + 100)
	playlist.Version = 1
	r.playlists[playlist.ID] = *playlist
	return nil
}

func (r *memPlaylistRepository) GetByID(ctx context.Context, id string) (*entity.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.playlists[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	p.VideoIDs = append([]string(nil), p.VideoIDs...)
	return &p, nil
}

func (r *memPlaylistRepository) Update(ctx context.Context, playlist *entity.Playlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.playlists[playlist.ID]
	if !ok || stored.Version != playlist.Version {
		return entity.ErrStaleVersion
	}
	for id, p := range r.playlists {
		if id != playlist.ID && p.OwnerID.Equal(playlist.OwnerID) && p.Name == playlist.Name {
			return entity.ErrDuplicate
		}
	}
	stored.Name = playlist.Name
	stored.Description = playlist.Description
	stored.Version++
	r.playlists[playlist.ID] = stored
	playlist.Version = stored.Version
	return nil
}

func (r *memPlaylistRepository) Delete(ctx context.Context, playlist *entity.Playlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.playlists[playlist.ID]
	if !ok || stored.Version != playlist.Version {
		return entity.ErrStaleVersion
	}
	delete(r.playlists, playlist.ID)
	return nil
}

func (r *memPlaylistRepository) ListByOwner(ctx context.Context, ownerID entity.UserID, page entity.PageRequest) ([]*entity.Playlist, int64, error) {
	return nil, 0, nil
}

func (r *memPlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.playlists[playlistID]
	if !ok || p.Contains(videoID) {
		return false, nil
	}
	p.VideoIDs = append(p.VideoIDs, videoID)
	p.Version++
	r.playlists[playlistID] = p
	return true, nil
}

func (r *memPlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.playlists[playlistID]
	if !ok || !p.Contains(videoID) {
		return false, nil
	}
	kept := p.VideoIDs[:0:0]
	for _, id := range p.VideoIDs {
		if id != videoID {
			kept = append(kept, id)
		}
	}
	p.VideoIDs = kept
	p.Version++
	r.playlists[playlistID] = p
	return true, nil
}

var (
	_ persistent.LikeRepository     = (*memLikeRepository)(nil)
	_ persistent.TweetRepository    = (*memTweetRepository)(nil)
	_ persistent.PlaylistRepository = (*memPlaylistRepository)(nil)
)
