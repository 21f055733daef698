package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"social-vault/pkg/cache"
	"social-vault/pkg/config"
	"social-vault/pkg/database"
	"social-vault/pkg/jwt"
	"social-vault/pkg/logger"
	"social-vault/pkg/middleware"
	"social-vault/pkg/s3"
	contentHTTP "social-vault/services/content/internal/controller/http"
	"social-vault/services/content/internal/repo"
	"social-vault/services/content/internal/repo/document"
	"social-vault/services/content/internal/repo/memory"
	"social-vault/services/content/internal/repo/persistent"
	"social-vault/services/content/internal/usecase"
	"social-vault/services/content/migrations"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"gorm.io/gorm"

	_ "social-vault/services/content/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	store       repo.Store
	db          *gorm.DB
	mongoClient *mongo.Client
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	seeder      *usecase.Seeder
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.NewWithLevel(cfg.LogLevel)
	a := &App{cfg: cfg, log: log}

	if err := a.openStore(); err != nil {
		log.Error("Failed to open %s store: %v", cfg.StoreDriver, err)
		return nil, err
	}

	// Redis only backs rate limiting, so the service runs without it
	if cfg.RedisHost != "" {
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Warn("Failed to connect to redis: %v (continuing without rate limiting)", err)
		} else {
			a.redisClient = redisClient
		}
	}

	if cfg.S3BucketName != "" {
		s3Client, err := s3.NewClient(cfg)
		if err != nil {
			log.Error("Failed to create S3 client: %v", err)
			return nil, err
		}
		a.s3Client = s3Client
	}

	if cfg.JWTSecret != "" {
		a.jwtService = jwt.NewService(cfg.JWTSecret)
	}

	a.seeder = usecase.NewSeeder(a.store, log.With("component", "seeder"), cfg.StoreTimeout)
	return a, nil
}

func (a *App) openStore() error {
	switch a.cfg.StoreDriver {
	case config.StoreDriverPostgres:
		db, err := database.NewPostgresDB(a.cfg)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err := migrations.Up(sqlDB); err != nil {
			return err
		}
		a.db = db
		a.store = persistent.NewContentRepository(db)
	case config.StoreDriverMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 2*a.cfg.StoreTimeout)
		defer cancel()
		client, mongoDB, err := database.NewMongoDB(ctx, a.cfg)
		if err != nil {
			return err
		}
		if err := document.EnsureIndexes(ctx, mongoDB); err != nil {
			_ = client.Disconnect(context.Background())
			return err
		}
		a.mongoClient = client
		a.store = document.NewContentRepository(mongoDB)
	case config.StoreDriverMemory:
		a.store = memory.NewStore()
	default:
		return fmt.Errorf("unknown store driver %q", a.cfg.StoreDriver)
	}
	return nil
}

// Router builds the gin engine with every route mounted.
func (a *App) Router() *gin.Engine {
	var signer usecase.MediaSigner
	if a.s3Client != nil {
		signer = a.s3Client
	}

	// Initialize use cases
	feedUseCase := usecase.NewFeedUseCase(a.store, a.seeder, usecase.FreeTierPolicy{}, signer, a.log, a.cfg)

	// Initialize HTTP handlers
	contentHandler := contentHTTP.NewContentHandler(feedUseCase, a.log, a.cfg.FeedDefaultLimit)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(a.log))

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(a.cfg.CORSOrigins) == 0 || (len(a.cfg.CORSOrigins) == 1 && a.cfg.CORSOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = a.cfg.CORSOrigins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.OptionalAuthMiddleware(a.jwtService))
	if a.redisClient != nil {
		api.Use(middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimitPerMinute, time.Minute, a.log))
	}

	{
		api.GET("/", contentHandler.Root)
		api.GET("/content", contentHandler.ListContent)
		api.GET("/content/:id", contentHandler.GetContent)
		api.GET("/creators", contentHandler.ListCreators)
		api.GET("/creators/:id/content", contentHandler.GetCreatorContent)
	}

	return r
}

func (a *App) Run() error {
	// A failed startup seed is retried on the first feed request
	if err := a.seeder.EnsureSeeded(context.Background()); err != nil {
		a.log.Warn("Startup seeding failed: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Content service starting on port %s (store: %s)", a.cfg.ServerPort, a.cfg.StoreDriver)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down content service...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var shutdownErr error
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			shutdownErr = err
		}
	}

	// Close database connection
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.log.Error("Error closing database: %v", err)
			}
		}
	}

	if a.mongoClient != nil {
		if err := a.mongoClient.Disconnect(ctx); err != nil {
			a.log.Error("Error closing MongoDB: %v", err)
		}
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	a.log.Info("Content service exited")
	return shutdownErr
}

// Seeder exposes the bootstrapper for the seed command.
func (a *App) Seeder() *usecase.Seeder {
	return a.seeder
}

// Store exposes the configured entity store.
func (a *App) Store() repo.Store {
	return a.store
}
