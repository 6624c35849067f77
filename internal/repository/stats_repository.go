package repository

import (
	"context"
	"fmt"
	"murmur/internal/models"

	"github.com/jmoiron/sqlx"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetStats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats

	err := sqlx.GetContext(ctx, conn(ctx, r.db), &stats, `
			SELECT
				(SELECT COUNT(*) FROM users) AS users,
				(SELECT COUNT(*) FROM posts) AS posts,
				(SELECT COUNT(*) FROM follows) AS follows,
				(SELECT COUNT(*) FROM likes) AS likes,
				(SELECT COUNT(*) FROM notifications) AS notifications
		`)

	if err != nil {
		return nil, fmt.Errorf("ошибка при подсчёте статистики базы данных: %w", err)
	}

	return &stats, nil
}
