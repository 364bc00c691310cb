package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"joonbee_backend/internal/auth"
	"joonbee_backend/internal/config"
	"joonbee_backend/internal/database"
	"joonbee_backend/internal/handlers"
	"joonbee_backend/internal/logger"
	"joonbee_backend/internal/metrics"
	"joonbee_backend/internal/middleware"
	"joonbee_backend/internal/oauth"
	"joonbee_backend/internal/repositories"
	"joonbee_backend/internal/routes"
	"joonbee_backend/internal/services"
	"joonbee_backend/internal/taxonomy"
	"joonbee_backend/internal/validator"
	"joonbee_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// RunAPI starts the content API server.
func RunAPI() {
	cfg, db := bootstrap()

	router := SetupAPIRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("API server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// RunAuth starts the identity server.
func RunAuth() {
	cfg, db := bootstrap()

	router := SetupAuthRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.AuthServer.Host, cfg.AuthServer.Port)
	logger.Info("auth server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// bootstrap loads config, initializes logging, opens the database and runs
// migrations with the category seed.
func bootstrap() (*config.Config, *gorm.DB) {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	logger.Info("database connected")

	if err := database.Migrate(db); err != nil {
		logger.Fatal("migration failed", "error", err)
	}

	return cfg, db
}

// SetupAPIRouter wires repositories, services and handlers for the content
// API.
func SetupAPIRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	router := newRouter(cfg, collector)

	tokens := auth.NewTokenService(cfg.Token.Key)

	categoryRepo := repositories.NewCategoryRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	interviewRepo := repositories.NewInterviewRepository(db)
	likeRepo := repositories.NewLikeRepository(db)
	cartRepo := repositories.NewCartRepository(db)

	taxonomyValidator := taxonomy.NewValidator(categoryRepo)

	categoryService := services.NewCategoryService(categoryRepo)
	questionService := services.NewQuestionService(questionRepo, categoryRepo, memberRepo, taxonomyValidator)
	interviewService := services.NewInterviewService(interviewRepo, likeRepo, memberRepo, taxonomyValidator)
	memberService := services.NewMemberService(memberRepo, interviewRepo, likeRepo, cartRepo)
	cartService := services.NewCartService(cartRepo, questionRepo, categoryRepo, memberRepo, taxonomyValidator)

	base := handlers.NewBaseHandler(validator.New())
	apiHandlers := &routes.APIHandlers{
		Category:  handlers.NewCategoryHandler(base, categoryService),
		Question:  handlers.NewQuestionHandler(base, questionService, tokens),
		Interview: handlers.NewInterviewHandler(base, interviewService, tokens),
		Member:    handlers.NewMemberHandler(base, memberService, tokens),
		Cart:      handlers.NewCartHandler(base, cartService, tokens),
	}

	routes.RegisterAPIRoutes(router, apiHandlers, registry)
	return router
}

// SetupAuthRouter wires the identity server.
func SetupAuthRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	router := newRouter(cfg, collector)

	tokens := auth.NewTokenService(cfg.Token.Key)
	memberRepo := repositories.NewMemberRepository(db)

	providers := oauth.NewRegistry(
		oauth.NewKakaoProvider(cfg.OAuth.Kakao),
		oauth.NewNaverProvider(cfg.OAuth.Naver),
		oauth.NewGoogleProvider(cfg.OAuth.Google),
	)
	identityService := services.NewIdentityService(providers, tokens, memberRepo)

	limiter := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())

	base := handlers.NewBaseHandler(validator.New())
	authHandler := handlers.NewAuthHandler(base, identityService, limiter)

	routes.RegisterAuthRoutes(router, authHandler, registry)
	return router
}

func newRouter(cfg *config.Config, collector *metrics.Collector) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware(collector))
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigin))
	return router
}

// RunBatch starts the interval job runner and blocks until SIGINT/SIGTERM.
func RunBatch() {
	cfg, db := bootstrap()

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	interval := time.Duration(cfg.Batch.IntervalSeconds) * time.Second
	worker := workers.NewBatchWorker(interval, workers.ContentStatsJob(db), collector)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("batch runner starting", "interval", interval)
	worker.Start(ctx)
}
