package repository

import (
	"context"
	"fmt"
	"murmur/internal/models"

	"github.com/jmoiron/sqlx"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

// Follow inserts the edge unless it already exists. The boolean reports
// whether a new edge was created.
func (r *followRepository) Follow(ctx context.Context, followerID, followeeID int64) (bool, error) {
	query := `
		INSERT INTO follows (follower_id, followee_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, followee_id) DO NOTHING
	`

	result, err := conn(ctx, r.db).ExecContext(ctx, query, followerID, followeeID)
	if err != nil {
		return false, fmt.Errorf("ошибка при создании подписки: %w", err)
	}

	return affected(result)
}

func (r *followRepository) Unfollow(ctx context.Context, followerID, followeeID int64) (bool, error) {
	query := `DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`

	result, err := conn(ctx, r.db).ExecContext(ctx, query, followerID, followeeID)
	if err != nil {
		return false, fmt.Errorf("ошибка при удалении подписки: %w", err)
	}

	return affected(result)
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2)`

	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &exists, query, followerID, followeeID); err != nil {
		return false, fmt.Errorf("ошибка при проверке подписки: %w", err)
	}

	return exists, nil
}

func (r *followRepository) GetFollowing(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	query := `
		SELECT u.id, u.username, u.avatar_url
		FROM follows f
		JOIN users u ON u.id = f.followee_id
		WHERE f.follower_id = $1
		ORDER BY f.created_at DESC
	`

	users := []models.UserSummary{}
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &users, query, userID); err != nil {
		return nil, fmt.Errorf("ошибка при получении подписок: %w", err)
	}

	return users, nil
}

func (r *followRepository) GetFollowers(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	query := `
		SELECT u.id, u.username, u.avatar_url
		FROM follows f
		JOIN users u ON u.id = f.follower_id
		WHERE f.followee_id = $1
		ORDER BY f.created_at DESC
	`

	users := []models.UserSummary{}
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &users, query, userID); err != nil {
		return nil, fmt.Errorf("ошибка при получении подписчиков: %w", err)
	}

	return users, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, userID int64) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM follows WHERE followee_id = $1`

	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &count, query, userID); err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте подписчиков: %w", err)
	}

	return count, nil
}

func (r *followRepository) CountFollowing(ctx context.Context, userID int64) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM follows WHERE follower_id = $1`

	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &count, query, userID); err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте подписок: %w", err)
	}

	return count, nil
}
