package main

import (
	"context"
	"gin-videoapi/constants"
	"gin-videoapi/controllers"
	"gin-videoapi/infra"
	"gin-videoapi/logger"
	"gin-videoapi/middlewares"
	"gin-videoapi/repositories"
	"gin-videoapi/services"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, tokenDB *gorm.DB, cfg *infra.Config, registry *prometheus.Registry) *gin.Engine {
	authRepository := repositories.NewAuthRepository(db)
	tokenRepository := repositories.NewTokenRepository(tokenDB)
	authService := services.NewAuthService(authRepository, tokenRepository, []byte(cfg.JWTSecretKey), cfg.BcryptCost)
	authController := controllers.NewAuthController(authService)

	userService := services.NewUserService(authRepository)
	userController := controllers.NewUserController(userService)

	videoRepository := repositories.NewVideoRepository(db)
	videoService := services.NewVideoService(videoRepository)
	videoController := controllers.NewVideoController(videoService)

	healthController := controllers.NewHealthController(db)
	metrics := middlewares.NewMetrics(registry)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(metrics.Middleware())
	r.Use(cors.Default())

	requireAccess := middlewares.AuthMiddleware(authService, constants.TokenTypeAccess)
	requireRefresh := middlewares.AuthMiddleware(authService, constants.TokenTypeRefresh)

	r.GET("/health", healthController.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	r.POST("/registration", authController.Signup)
	r.POST("/login", authController.Login)
	r.POST("/logout/access", requireAccess, authController.LogoutAccess)
	r.POST("/logout/refresh", requireRefresh, authController.LogoutRefresh)
	r.POST("/token/refresh", requireRefresh, authController.RefreshToken)

	r.GET("/users", userController.FindAll)
	r.DELETE("/users", userController.DeleteAll)

	videoRouter := r.Group("/video")
	videoRouterWithAuth := r.Group("/video", requireAccess)

	videoRouter.GET("/:id", videoController.FindById)
	videoRouterWithAuth.POST("/:id", videoController.Create)
	videoRouterWithAuth.PATCH("/:id", videoController.Update)
	videoRouter.DELETE("/:id", videoController.Delete)

	return r
}

func initDB(cfg *infra.Config) (*gorm.DB, *gorm.DB) {
	db, err := infra.SetupDB(cfg.DB, cfg.Env)
	if err != nil {
		logger.Log.Fatal("Failed to setup database", zap.Error(err))
	}

	tokenDB, err := infra.SetupTokenDB(cfg.TokenDBPath, db)
	if err != nil {
		logger.Log.Fatal("Failed to setup token database", zap.Error(err))
	}

	if cfg.AutoMigrate {
		if err := infra.Migrate(db, tokenDB); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Log.Info("Database migrated")
	}

	return db, tokenDB
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Log.Warn("Failed to close database", zap.Error(err))
	}
}

func main() {
	envErr := infra.Initialize()

	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogFile, cfg.IsProd()); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	if envErr != nil {
		logger.Log.Info("No .env file found; using environment variables", zap.Error(envErr))
	}

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, tokenDB := initDB(cfg)
	defer closeDB(db)
	if tokenDB != db {
		defer closeDB(tokenDB)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := setupRouter(db, tokenDB, cfg, registry)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Log.Info("Starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
		return
	}
	logger.Log.Info("Server exited")
}
