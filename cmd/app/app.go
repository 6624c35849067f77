package app

import (
	"context"
	"fmt"
	"murmur/internal/config"
	"murmur/internal/database"
	handlers "murmur/internal/handler"
	"murmur/internal/metrics"
	"murmur/internal/middleware"
	"murmur/internal/repository"
	"murmur/internal/service"
	"murmur/internal/storage"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

type App struct {
	DB       database.MethodsDB
	Services *service.Service
	Handler  http.Handler
}

// New connects the database and object storage and builds the HTTP handler.
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*App, error) {
	// connection DB
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(ctx, cfg)
	if err != nil {
		db.CloseDB()
		return nil, fmt.Errorf("не удалось инициализировать MinIO: %w", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg, minioClient, logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db.DB.DB, cfg.DB.DbNAME),
	)
	m := metrics.New(reg)

	h := handlers.NewHandlers(services, db, cfg, m, logger)

	router := mux.NewRouter()
	router.Use(
		middleware.MetricsMiddleware(m),
		mux.MiddlewareFunc(middleware.TimeoutMiddleware(cfg.RequestTimeout)),
	)
	h.RegisterRoutes(router, middleware.AuthMiddleware(services.Auth), reg)

	handler := middleware.Chain(
		router,
		middleware.LoggingMiddleware(logger, cfg.SlowRequestThreshold),
		middleware.CORSMiddleware(cfg.CORSAllowedOrigin),
	)

	return &App{
		DB:       db,
		Services: services,
		Handler:  handler,
	}, nil
}

func (a *App) Close() error {
	return a.DB.CloseDB()
}
