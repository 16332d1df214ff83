package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alienic/internal/config"
	"alienic/internal/database"
	"alienic/internal/middleware"
	"alienic/internal/modules/auth"
	"alienic/internal/modules/catalog"
	"alienic/internal/modules/category"
	"alienic/internal/modules/collection"
	"alienic/internal/modules/contact"
	"alienic/internal/modules/notification"
	"alienic/internal/modules/order"
	"alienic/internal/modules/product"
	"alienic/internal/modules/stats"
	"alienic/internal/modules/testimonial"
	"alienic/internal/modules/upload"
	"alienic/internal/pkg/jwt"
	"alienic/internal/pkg/logger"
	"alienic/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger.Setup(cfg.AppEnv)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	tokens := jwt.New(cfg.JWTSecret, cfg.JWTTTL)

	adminRepo := repository.NewAdminUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	messageRepo := repository.NewContactMessageRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	public := router.Group("/api")
	admin := router.Group("/api/admin", middleware.JWTAuth(tokens))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth.NewHandler(auth.NewService(adminRepo, tokens)).RegisterRoutes(public, admin)
	catalog.NewHandler(catalog.NewService(productRepo, collectionRepo, testimonialRepo)).RegisterRoutes(public)
	contact.NewHandler(contact.NewService(messageRepo)).RegisterRoutes(public, admin)
	testimonial.NewHandler(testimonial.NewService(testimonialRepo, productRepo)).RegisterRoutes(public, admin)
	notification.NewHandler(notification.NewService(notificationRepo, messageRepo, testimonialRepo)).RegisterRoutes(admin)
	product.NewHandler(product.NewService(productRepo)).RegisterRoutes(admin)
	category.NewHandler(category.NewService(categoryRepo, productRepo)).RegisterRoutes(public, admin)
	collection.NewHandler(collection.NewService(collectionRepo)).RegisterRoutes(admin)
	order.NewHandler(order.NewService(orderRepo, productRepo)).RegisterRoutes(admin)
	stats.NewHandler(stats.NewService(productRepo, orderRepo, messageRepo, testimonialRepo, notificationRepo)).RegisterRoutes(admin)
	upload.NewHandler(cfg.UploadDir).RegisterRoutes(router, admin)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Str("env", cfg.AppEnv).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
