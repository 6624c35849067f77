package handlers

import (
	"context"
	"murmur/internal/config"
	"murmur/internal/metrics"
	"murmur/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Handlers struct {
	AuthService         service.AuthService
	UserService         service.UserService
	PostService         service.PostService
	FeedService         service.FeedService
	GraphService        service.GraphService
	NotificationService service.NotificationService
	StatsService        service.StatsService
	DB                  HealthChecker
	Cfg                 *config.Config
	Metrics             *metrics.Metrics
	Logger              *logrus.Logger
	Validate            *validator.Validate
}

func NewHandlers(services *service.Service, db HealthChecker, cfg *config.Config, m *metrics.Metrics, logger *logrus.Logger) *Handlers {
	return &Handlers{
		AuthService:         services.Auth,
		UserService:         services.User,
		PostService:         services.Post,
		FeedService:         services.Feed,
		GraphService:        services.Graph,
		NotificationService: services.Notification,
		StatsService:        services.Stats,
		DB:                  db,
		Cfg:                 cfg,
		Metrics:             m,
		Logger:              logger,
		Validate:            validator.New(validator.WithRequiredStructEnabled()),
	}
}
