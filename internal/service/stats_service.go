package service

import (
	"context"
	"murmur/internal/models"
	"murmur/internal/repository"
)

type StatsService interface {
	GetStats(ctx context.Context) (*models.Stats, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetStats(ctx context.Context) (*models.Stats, error) {
	return s.statsRepo.GetStats(ctx)
}
