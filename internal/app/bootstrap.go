package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/database/migration"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/routes"
	"jobboard/internal/embedding"
	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/matching"
	"jobboard/internal/observability"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber *fiber.App

	db database.DB
}

// Bootstrap connects the dependencies and returns the app plus its cleanup
// function. The embedding backend is NOT loaded here: it initializes lazily
// on the first scoring call that needs it.
func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	if err := migration.Run(ctx, db.SQLDB(), "migrations"); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	redisCache := cache.NewRedis(logger)

	var load func(ctx context.Context) (embedding.Backend, error)
	if strings.TrimSpace(cfg.Embedding.GeminiAPIKey) != "" {
		apiKey, model := cfg.Embedding.GeminiAPIKey, cfg.Embedding.Model
		load = func(ctx context.Context) (embedding.Backend, error) {
			return embedding.NewGemini(ctx, apiKey, model)
		}
	}
	backend := embedding.NewLazy(load, logger)

	scorer := matching.NewScorer(backend, logger)

	metrics, err := observability.NewMatchMetrics()
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("init metrics: %w", err)
	}

	jobs := repository.NewPostgresJobRepository(db)
	profiles := repository.NewPostgresProfileRepository(db)
	interactions := repository.NewPostgresInteractionRepository(db)
	users := repository.NewPostgresUserRepository(db)

	jwtSvc := jwt.NewHMACService(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL)

	matchUC := usecase.NewMatchUsecase(jobs, profiles, interactions, scorer, redisCache,
		logger, metrics, cfg.Matching.CandidatePoolSize, cfg.Matching.CacheTTL)
	interactionUC := usecase.NewInteractionUsecase(jobs, interactions, redisCache, logger)
	jobListUC := usecase.NewJobListUsecase(jobs)
	authUC := usecase.NewAuthUsecase(users, jwtSvc)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())

	routes.Register(f, routes.Deps{
		Health: handler.NewHealthHandler(db),
		Auth:   handler.NewAuthHandler(authUC),
		Jobs:   handler.NewJobsHandler(jobListUC, interactionUC),
		Match:  handler.NewMatchHandler(matchUC),
		AuthMW: middleware.NewAuthMiddleware(jwtSvc),
	})

	app := &App{Fiber: f, db: db}
	cleanup := func() error {
		return db.Close()
	}
	return app, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
