package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"yatra/internal/config"
	"yatra/internal/handlers"
	"yatra/internal/middleware"
	"yatra/internal/repositories/mongodb"
	"yatra/internal/services"
	"yatra/pkg/cache"
	"yatra/pkg/database"
	"yatra/pkg/email"
	"yatra/pkg/logger"
	"yatra/pkg/payment"
	"yatra/pkg/storage"
	"yatra/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logFormat := "text"
	if cfg.App.Environment == "production" {
		logFormat = "json"
	}
	log, err := logger.NewLogger(&logger.Config{
		Level:      logger.LogLevel(cfg.App.LogLevel),
		Format:     logFormat,
		Output:     "stdout",
		TimeFormat: time.RFC3339,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer db.Close()

	if err := database.NewMigrator(db.Database).Up(); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	// The cache is optional; the repositories fall back to Mongo when it is
	// absent.
	var cacheService mongodb.CacheService
	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		log.WithError(err).Warn("redis unavailable, continuing without cache")
	} else {
		cacheService = redisCache
		defer redisCache.Close()
	}

	store, err := newStorageProvider(cfg.Storage)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize storage")
	}

	mailer := email.NewSMTPMailer(
		cfg.SMTP.Host, cfg.SMTP.Port,
		cfg.SMTP.Username, cfg.SMTP.Password,
		cfg.SMTP.FromEmail, cfg.SMTP.FromName,
	)

	gateway := payment.NewKhaltiClient(cfg.Khalti.BaseURL, cfg.Khalti.SecretKey, cfg.Khalti.Timeout)

	userRepo := mongodb.NewUserRepository(db.Database)
	profileRepo := mongodb.NewProfileRepository(db.Database)
	vehicleRepo := mongodb.NewVehicleRepository(db.Database, cacheService)
	feedbackRepo := mongodb.NewFeedbackRepository(db.Database)
	notificationRepo := mongodb.NewNotificationRepository(db.Database)
	paymentRepo := mongodb.NewPaymentRepository(db.Database)

	authService := services.NewAuthService(userRepo, mailer, cfg.Security, log)
	profileService := services.NewProfileService(profileRepo, userRepo, store, log)
	vehicleService := services.NewVehicleService(vehicleRepo, feedbackRepo, store, log)
	feedbackService := services.NewFeedbackService(feedbackRepo, vehicleRepo)
	notificationService := services.NewNotificationService(notificationRepo, userRepo, log)
	paymentService := services.NewPaymentService(paymentRepo, vehicleRepo, notificationRepo, gateway, mailer, log)
	adminService := services.NewAdminService(vehicleRepo, notificationRepo, log)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))

	if cfg.Storage.Provider == "local" {
		router.Static("/media", cfg.Storage.Local.BasePath)
	}

	routes.Setup(router, &routes.Handlers{
		Auth:         handlers.NewAuthHandler(authService, log),
		Profile:      handlers.NewProfileHandler(profileService, log),
		Vehicle:      handlers.NewVehicleHandler(vehicleService, log),
		Feedback:     handlers.NewFeedbackHandler(feedbackService, log),
		Notification: handlers.NewNotificationHandler(notificationService, log),
		Payment:      handlers.NewPaymentHandler(paymentService, log),
		Admin:        handlers.NewAdminHandler(adminService, log),
	}, cfg.Security.JWTSecret)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.App.Port).Info("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}

	log.Info("server stopped")
}

func newStorageProvider(cfg *config.StorageConfig) (storage.StorageProvider, error) {
	switch cfg.Provider {
	case "s3":
		return storage.NewAWSS3Storage(cfg.S3.Region, cfg.S3.Bucket)
	default:
		return storage.NewLocalStorage(cfg.Local.BasePath, cfg.Local.BaseURL)
	}
}
