package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"vidtube/pkg/blob"
	"vidtube/pkg/config"
	"vidtube/pkg/database"
	"vidtube/pkg/logger"
	"vidtube/pkg/media"
	"vidtube/services/api/internal/entity"
	"vidtube/services/api/internal/model"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Public sample clips; the seed only stores their URLs.
var sampleVideos = []string{
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
}

type seeder struct {
	db         *gorm.DB
	uploader   *blob.Uploader
	httpClient *http.Client
	stageDir   string
	logger     *logger.Logger
}

func main() {
	var videosPerUser int
	flag.IntVar(&videosPerUser, "videos", 2, "Videos to create per seeded user")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	defer log.Sync()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	ctx := context.Background()
	store, err := blob.NewStore(ctx, cfg)
	if err != nil {
		log.Error("Failed to create blob store: %v", err)
		panic(err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Error("Failed to create upload dir: %v", err)
		panic(err)
	}

	s := &seeder{
		db:         db,
		uploader:   blob.NewUploader(store, media.NewFFProbe(30*time.Second), log),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		stageDir:   cfg.UploadDir,
		logger:     log,
	}

	if err := s.run(ctx, videosPerUser); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func (s *seeder) run(ctx context.Context, videosPerUser int) error {
	testUsers := []struct {
		email    string
		username string
		fullName string
	}{
		{"alice@test.com", "alice", "Alice Archer"},
		{"bob@test.com", "bob", "Bob Baker"},
		{"charlie@test.com", "charlie", "Charlie Cole"},
		{"diana@test.com", "diana", "Diana Drake"},
	}

	userIDs := make([]string, 0, len(testUsers))
	videoIDs := make(map[string][]string)

	for _, u := range testUsers {
		var existing model.UserModel
		if err := s.db.Where("email = ? OR username = ?", u.email, u.username).First(&existing).Error; err == nil {
			s.logger.Info("User %s already exists, skipping", u.username)
			userIDs = append(userIDs, existing.ID)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := &model.UserModel{
			Email:        u.email,
			Username:     u.username,
			FullName:     u.fullName,
			PasswordHash: string(hash),
		}
		if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
			s.logger.Error("Failed to create user %s: %v", u.username, err)
			continue
		}
		s.logger.Info("Created user: %s (%s)", user.Username, user.Email)
		userIDs = append(userIDs, user.ID)

		for i := 0; i < videosPerUser; i++ {
			id, err := s.createVideo(ctx, user.ID, user.Username, i)
			if err != nil {
				s.logger.Error("Failed to create video %d for user %s: %v", i+1, user.Username, err)
				continue
			}
			videoIDs[user.ID] = append(videoIDs[user.ID], id)
			time.Sleep(200 * time.Millisecond)
		}

		tweet := &model.TweetModel{
			OwnerID: user.ID,
			Content: fmt.Sprintf("Hello from %s, new uploads every week!", user.Username),
		}
		if err := s.db.WithContext(ctx).Create(tweet).Error; err != nil {
			s.logger.Error("Failed to create tweet for %s: %v", user.Username, err)
		}

		if len(videoIDs[user.ID]) > 0 {
			playlist := &model.PlaylistModel{
				OwnerID:     user.ID,
				Name:        "Favourites",
				Description: fmt.Sprintf("Picked by %s", user.Username),
				VideoIDs:    pq.StringArray(videoIDs[user.ID]),
			}
			if err := s.db.WithContext(ctx).Create(playlist).Error; err != nil {
				s.logger.Error("Failed to create playlist for %s: %v", user.Username, err)
			}
		}
	}

	s.seedRelations(ctx, userIDs, videoIDs)
	return nil
}

// seedRelations subscribes every user to each later user and likes their videos.
func (s *seeder) seedRelations(ctx context.Context, userIDs []string, videoIDs map[string][]string) {
	for i := 0; i < len(userIDs); i++ {
		for j := i + 1; j < len(userIDs); j++ {
			subscriberID, channelID := userIDs[i], userIDs[j]

			var existing model.SubscriptionModel
			if err := s.db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).First(&existing).Error; err == nil {
				continue
			}

			sub := &model.SubscriptionModel{SubscriberID: subscriberID, ChannelID: channelID}
			if err := s.db.WithContext(ctx).Create(sub).Error; err != nil {
				s.logger.Error("Failed to create subscription: %v", err)
				continue
			}

			for _, videoID := range videoIDs[channelID] {
				like := &model.LikeModel{
					LikerID:    subscriberID,
					TargetType: string(entity.LikeTargetVideo),
					TargetID:   videoID,
				}
				if err := s.db.WithContext(ctx).Create(like).Error; err != nil {
					s.logger.Warn("Failed to create like: %v", err)
				}
			}
		}
	}
	s.logger.Info("Created test subscriptions and likes")
}

func (s *seeder) createVideo(ctx context.Context, userID, username string, index int) (string, error) {
	thumbURL, err := s.uploadThumbnail(ctx, username, index)
	if err != nil {
		return "", err
	}

	video := &model.VideoModel{
		OwnerID:      userID,
		Title:        fmt.Sprintf("Video #%d by %s", index+1, username),
		Description:  "A sample upload created by the seeder",
		VideoURL:     sampleVideos[index%len(sampleVideos)],
		ThumbnailURL: thumbURL,
		Duration:     float64(60 + 15*index),
		IsPublished:  index%3 != 2,
	}
	// Select("*") so a false IsPublished is written instead of the column default
	if err := s.db.WithContext(ctx).Select("*").Create(video).Error; err != nil {
		return "", fmt.Errorf("failed to create video: %w", err)
	}

	s.logger.Info("Created video: %s", video.Title)
	return video.ID, nil
}

// uploadThumbnail downloads a cat picture and pushes it through the regular
// upload path so the thumbnail lands in the configured store.
func (s *seeder) uploadThumbnail(ctx context.Context, username string, index int) (string, error) {
	url := "https://cataas.com/cat"
	if index%2 == 0 {
		url += fmt.Sprintf("/says/%s", username)
	}

	s.logger.Info("Fetching thumbnail from %s", url)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch thumbnail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cataas API returned status %d", resp.StatusCode)
	}

	path := filepath.Join(s.stageDir, fmt.Sprintf("seed_%s_%d.jpg", username, index))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to stage thumbnail: %w", err)
	}
	n, err := io.Copy(file, resp.Body)
	file.Close()
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to read thumbnail: %w", err)
	}
	if n == 0 {
		os.Remove(path)
		return "", fmt.Errorf("received empty image data")
	}

	result, err := s.uploader.Upload(ctx, path, "thumbnails", "image/jpeg")
	if err != nil {
		return "", err
	}
	s.logger.Info("Thumbnail uploaded: %s", result.URL)
	return result.URL, nil
}
