package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"persona-matcher/internal/config"
	"persona-matcher/internal/db"
	apihttp "persona-matcher/internal/http"
	"persona-matcher/internal/matcher"
	"persona-matcher/internal/quiz"
	"persona-matcher/internal/repository"
	"persona-matcher/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	productRepo := repository.NewPgProductRepository(pool)
	catalogSvc := service.NewCatalogService(logger, productRepo)
	if err := catalogSvc.Reload(ctx); err != nil {
		logger.Fatal("catalog load", zap.Error(err))
	}

	matcherCfg := matcher.DefaultConfig()
	matcherCfg.FuzzyThemes = cfg.FuzzyThemes
	matcherCfg.Limit = cfg.ResultLimit
	recommendSvc := service.NewRecommendationService(logger, catalogSvc, productRepo, matcherCfg)

	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	sessionStore := quiz.NewMemorySessionStore(sessionTTL)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory sessions", zap.Error(err))
		} else {
			sessionStore = quiz.NewRedisSessionStore(redisClient, sessionTTL)
		}
		cancel()
	}

	engine := quiz.NewEngine(sessionStore, quiz.DefaultBank(), nil)
	quizSvc := service.NewQuizService(logger, engine, sessionTTL, time.Duration(cfg.SessionSweepMinutes)*time.Minute)
	quizSvc.StartSweeper(ctx)

	recommendHandler := apihttp.NewRecommendHandler(logger, recommendSvc)
	quizHandler := apihttp.NewQuizHandler(logger, quizSvc)
	router := apihttp.NewRouter(logger, recommendHandler, quizHandler, func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return db.Ping(pingCtx, pool)
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
