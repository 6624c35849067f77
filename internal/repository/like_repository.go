package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Like(ctx context.Context, userID, postID int64) (bool, error) {
	query := `
		INSERT INTO likes (user_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, post_id) DO NOTHING
	`

	result, err := conn(ctx, r.db).ExecContext(ctx, query, userID, postID)
	if err != nil {
		return false, fmt.Errorf("ошибка при добавлении лайка: %w", err)
	}

	return affected(result)
}

func (r *likeRepository) Unlike(ctx context.Context, userID, postID int64) (bool, error) {
	query := `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`

	result, err := conn(ctx, r.db).ExecContext(ctx, query, userID, postID)
	if err != nil {
		return false, fmt.Errorf("ошибка при удалении лайка: %w", err)
	}

	return affected(result)
}

func (r *likeRepository) DeleteByPostID(ctx context.Context, postID int64) error {
	query := `DELETE FROM likes WHERE post_id = $1`

	if _, err := conn(ctx, r.db).ExecContext(ctx, query, postID); err != nil {
		return fmt.Errorf("ошибка при удалении лайков поста: %w", err)
	}

	return nil
}

func affected(result sql.Result) (bool, error) {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке измененных строк: %w", err)
	}

	return rowsAffected > 0, nil
}
