package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"firstcab/internal/config"
	"firstcab/internal/handlers"
	"firstcab/internal/middleware"
	"firstcab/internal/repositories/mongodb"
	"firstcab/internal/services"
	"firstcab/internal/store"
	"firstcab/internal/utils"
	"firstcab/pkg/cache"
	"firstcab/pkg/database"
	"firstcab/pkg/logger"
	"firstcab/pkg/maps"
	"firstcab/pkg/oauth"
	"firstcab/pkg/payment"
	"firstcab/pkg/push"
	"firstcab/pkg/storage"
	"firstcab/routes"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func indexSpecs() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		utils.CollectionUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		utils.CollectionPayments: {
			{Keys: bson.D{{Key: "razorpay_order_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		utils.CollectionBookings: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		utils.CollectionPricing: {
			{Keys: bson.D{{Key: "trip_type", Value: 1}, {Key: "created_at", Value: 1}}},
		},
		utils.CollectionRoutes: {
			{Keys: bson.D{{Key: "from", Value: 1}, {Key: "to", Value: 1}}},
		},
		utils.CollectionNotifications: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// MongoDB
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureIndexes(indexCtx, indexSpecs()); err != nil {
		appLogger.WithError(err).Warn("Index bootstrap failed, continuing without")
	}
	cancelIndexes()

	// Redis cache. Optional: repositories degrade to direct reads without it.
	var cacheService services.CacheService
	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Warn("Redis unavailable, running without cache")
	} else {
		defer redisCache.Close()
		cacheService = services.NewCacheService(redisCache, appLogger, "firstcab", 10*time.Minute)
	}

	// Repositories
	userRepo := mongodb.NewUserRepository(db.Database, cacheService)
	routeRepo := mongodb.NewRouteRepository(db.Database, cacheService)
	pricingRepo := mongodb.NewPricingRepository(db.Database, cacheService)
	bookingRepo := mongodb.NewBookingRepository(db.Database, cacheService)
	paymentRepo := mongodb.NewPaymentRepository(db.Database, cacheService)
	notificationRepo := mongodb.NewNotificationRepository(db.Database, cacheService)

	// External providers
	gateway := payment.NewRazorpayGateway(cfg.Payment.Razorpay.KeyID, cfg.Payment.Razorpay.KeySecret, cfg.Payment.Razorpay.WebhookSecret)
	oauthProvider := oauth.NewGoogleProvider(cfg.OAuth.Google.ClientID, cfg.OAuth.Google.ClientSecret, cfg.OAuth.Google.RedirectURL)

	var pushProvider push.Sender
	if cfg.Notification.PushEnabled && cfg.Notification.FCMCredentials != "" {
		pushProvider, err = push.NewFCMSender(cfg.Notification.FCMCredentials)
		if err != nil {
			appLogger.WithError(err).Warn("FCM unavailable, push notifications disabled")
		}
	}

	var storageProvider storage.Uploader
	switch cfg.Storage.Provider {
	case "aws":
		storageProvider, err = storage.NewS3Uploader(cfg.Storage.AWS.Region, cfg.Storage.AWS.Bucket, cfg.Storage.AWS.CDNDomain)
	default:
		storageProvider, err = storage.NewDiskUploader(cfg.Storage.Local.BasePath, cfg.Storage.Local.BaseURL)
	}
	if err != nil {
		appLogger.Fatalf("Failed to initialize storage: %v", err)
	}

	var estimator maps.DistanceEstimator
	if cfg.Maps.Enabled && cfg.Maps.GoogleAPIKey != "" {
		estimator, err = maps.NewGoogleMapsProvider(cfg.Maps.GoogleAPIKey)
		if err != nil {
			appLogger.WithError(err).Warn("Maps provider unavailable, route autofill disabled")
		}
	}

	// Application state store
	appStore := store.New()

	// Services
	authService := services.NewAuthService(userRepo, oauthProvider, cfg.Security, appLogger)
	userService := services.NewUserService(userRepo, appStore, appLogger)
	routeService := services.NewRouteService(routeRepo, estimator, storageProvider, appStore, appLogger)
	pricingService := services.NewPricingService(pricingRepo, routeRepo, appStore, appLogger)
	bookingService := services.NewBookingService(bookingRepo, appStore, appLogger)
	notificationService := services.NewNotificationService(notificationRepo, pushProvider, cfg.Notification, appLogger)
	paymentService := services.NewPaymentService(paymentRepo, bookingService, notificationService, gateway, cfg.Payment, appStore, appLogger)

	// The auth subscription is the store's only standing listener.
	go func() {
		for event := range authService.Subscribe() {
			switch event.Type {
			case services.AuthEventSignIn:
				appStore.SignIn(event.User)
			case services.AuthEventSignOut:
				appStore.SignOut()
			}
		}
	}()

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	routeHandler := handlers.NewRouteHandler(routeService)
	pricingHandler := handlers.NewPricingHandler(pricingService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, userService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	adminHandler := handlers.NewAdminHandler(appStore, bookingService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(appLogger))

	jwtSecret := cfg.Security.JWTSecret

	v1 := router.Group("/api/v1")
	{
		routes.SetupAuthRoutes(v1, authHandler, jwtSecret)
		routes.SetupRouteRoutes(v1, routeHandler, jwtSecret)
		routes.SetupPricingRoutes(v1, pricingHandler, jwtSecret)
		routes.SetupBookingRoutes(v1, bookingHandler, jwtSecret)
		routes.SetupPaymentRoutes(v1, paymentHandler, jwtSecret)
		routes.SetupUserRoutes(v1, userHandler, notificationHandler, jwtSecret)
		routes.SetupAdminRoutes(v1, adminHandler, jwtSecret)
	}

	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		if err := db.Ping(); err != nil {
			status = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  status,
			"app":     utils.AppName,
			"version": cfg.App.Version,
		})
	})

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port),
		Handler: router,
	}

	go func() {
		appLogger.Infof("Starting %s on %s", utils.AppName, server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("Forced shutdown: %v", err)
	}
}
