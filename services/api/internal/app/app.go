package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vidtube/pkg/blob"
	"vidtube/pkg/cache"
	"vidtube/pkg/config"
	"vidtube/pkg/database"
	"vidtube/pkg/jwt"
	"vidtube/pkg/logger"
	"vidtube/pkg/media"
	"vidtube/pkg/middleware"
	"vidtube/pkg/queue"
	apiHTTP "vidtube/services/api/internal/controller/http"
	viewcache "vidtube/services/api/internal/repo/cache"
	"vidtube/services/api/internal/repo/persistent"
	"vidtube/services/api/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "vidtube/services/api/docs" // Swagger docs
)

const probeTimeout = 30 * time.Second

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	blobStore   blob.Store
	queueClient *queue.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config, log *logger.Logger) (*App, error) {
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without rate limiting and view dedup)", err)
		redisClient = nil
	}

	blobStore, err := blob.NewStore(context.Background(), cfg)
	if err != nil {
		log.Error("Failed to create %s blob store: %v", cfg.BlobDriver, err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		blobStore:   blobStore,
		queueClient: queueClient,
		jwtService:  jwt.NewService(cfg.JWTSecret, cfg.JWTTTL),
	}, nil
}

// router wires repositories, use cases and handlers onto a gin engine.
func (a *App) router() *gin.Engine {
	// Initialize repositories
	userRepo := persistent.NewUserRepository(a.db)
	videoRepo := persistent.NewVideoRepository(a.db)
	commentRepo := persistent.NewCommentRepository(a.db)
	tweetRepo := persistent.NewTweetRepository(a.db)
	playlistRepo := persistent.NewPlaylistRepository(a.db)
	likeRepo := persistent.NewLikeRepository(a.db)
	subscriptionRepo := persistent.NewSubscriptionRepository(a.db)
	dashboardRepo := persistent.NewDashboardRepository(a.db)
	viewTracker := viewcache.NewViewTracker(a.redisClient)

	// a nil *queue.Client must not become a non-nil interface
	var publisher usecase.EventPublisher
	if a.queueClient != nil {
		publisher = a.queueClient
	}
	uploader := blob.NewUploader(a.blobStore, media.NewFFProbe(probeTimeout), a.log)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, a.log)
	videoUseCase := usecase.NewVideoUseCase(videoRepo, uploader, viewTracker, publisher, a.log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, videoRepo, publisher, a.log)
	tweetUseCase := usecase.NewTweetUseCase(tweetRepo, userRepo, a.log)
	playlistUseCase := usecase.NewPlaylistUseCase(playlistRepo, videoRepo, userRepo, a.log)
	likeUseCase := usecase.NewLikeUseCase(likeRepo, videoRepo, commentRepo, tweetRepo, publisher, a.log)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(subscriptionRepo, userRepo, publisher, a.log)
	dashboardUseCase := usecase.NewDashboardUseCase(dashboardRepo, videoRepo, a.log)

	// Initialize HTTP handlers
	authHandler := apiHTTP.NewAuthHandler(authUseCase, a.log)
	videoHandler := apiHTTP.NewVideoHandler(videoUseCase, a.cfg.UploadDir, a.log)
	commentHandler := apiHTTP.NewCommentHandler(commentUseCase, a.log)
	tweetHandler := apiHTTP.NewTweetHandler(tweetUseCase, a.log)
	playlistHandler := apiHTTP.NewPlaylistHandler(playlistUseCase, a.log)
	likeHandler := apiHTTP.NewLikeHandler(likeUseCase, a.log)
	subscriptionHandler := apiHTTP.NewSubscriptionHandler(subscriptionUseCase, a.log)
	dashboardHandler := apiHTTP.NewDashboardHandler(dashboardUseCase, a.log)

	if !a.cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", apiHTTP.Healthcheck)

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimitPerMinute, time.Minute))
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	api := v1.Group("")
	api.Use(middleware.AuthMiddleware(a.jwtService))
	api.Use(middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimitPerMinute, time.Minute))
	{
		api.GET("/users/me", authHandler.CurrentUser)
		api.GET("/users/:userId", authHandler.GetUser)
		api.GET("/users/:userId/tweets", tweetHandler.ListUserTweets)
		api.GET("/users/:userId/playlists", playlistHandler.ListUserPlaylists)
		api.GET("/users/:userId/subscriptions", subscriptionHandler.ListSubscribedChannels)

		api.POST("/videos", videoHandler.PublishVideo)
		api.GET("/videos", videoHandler.ListVideos)
		api.GET("/videos/:videoId", videoHandler.GetVideo)
		api.PATCH("/videos/:videoId", videoHandler.UpdateVideo)
		api.DELETE("/videos/:videoId", videoHandler.DeleteVideo)
		api.PATCH("/videos/:videoId/publish", videoHandler.TogglePublish)
		api.POST("/videos/:videoId/view", videoHandler.RecordView)
		api.POST("/videos/:videoId/like", likeHandler.ToggleVideoLike)
		api.GET("/videos/:videoId/comments", commentHandler.ListComments)
		api.POST("/videos/:videoId/comments", commentHandler.AddComment)

		api.PATCH("/comments/:commentId", commentHandler.UpdateComment)
		api.DELETE("/comments/:commentId", commentHandler.DeleteComment)
		api.POST("/comments/:commentId/like", likeHandler.ToggleCommentLike)

		api.POST("/tweets", tweetHandler.CreateTweet)
		api.PATCH("/tweets/:tweetId", tweetHandler.UpdateTweet)
		api.DELETE("/tweets/:tweetId", tweetHandler.DeleteTweet)
		api.POST("/tweets/:tweetId/like", likeHandler.ToggleTweetLike)

		api.GET("/likes/videos", likeHandler.ListLikedVideos)

		api.POST("/channels/:channelId/subscribe", subscriptionHandler.ToggleSubscription)
		api.GET("/channels/:channelId/subscribers", subscriptionHandler.ListSubscribers)

		api.POST("/playlists", playlistHandler.CreatePlaylist)
		api.GET("/playlists/:playlistId", playlistHandler.GetPlaylist)
		api.PATCH("/playlists/:playlistId", playlistHandler.UpdatePlaylist)
		api.DELETE("/playlists/:playlistId", playlistHandler.DeletePlaylist)
		api.POST("/playlists/:playlistId/videos/:videoId", playlistHandler.AddVideo)
		api.DELETE("/playlists/:playlistId/videos/:videoId", playlistHandler.RemoveVideo)

		api.GET("/dashboard/stats", dashboardHandler.GetStats)
		api.GET("/dashboard/videos", dashboardHandler.GetVideos)
	}

	return r
}

func (a *App) Run() error {
	if err := os.MkdirAll(a.cfg.UploadDir, 0o755); err != nil {
		return err
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: a.router(),
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("API service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down API service...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			return err
		}
	}

	// Close database connection
	if sqlDB, err := a.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	a.log.Info("API service exited")
	return nil
}
