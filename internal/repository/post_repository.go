package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"murmur/internal/models"

	"github.com/jmoiron/sqlx"
)

type FeedScope int

const (
	ScopeGlobal FeedScope = iota
	ScopeHome
	ScopeAuthor
)

// FeedFilter selects the author set of a feed query. UserID is the viewer
// for ScopeHome and the author for ScopeAuthor.
type FeedFilter struct {
	Scope  FeedScope
	UserID int64
}

func GlobalFeed() FeedFilter {
	return FeedFilter{Scope: ScopeGlobal}
}

func HomeFeed(viewerID int64) FeedFilter {
	return FeedFilter{Scope: ScopeHome, UserID: viewerID}
}

func AuthorFeed(authorID int64) FeedFilter {
	return FeedFilter{Scope: ScopeAuthor, UserID: authorID}
}

// where renders the filter with its placeholder numbered from pos.
func (f FeedFilter) where(pos int) (string, []any) {
	switch f.Scope {
	case ScopeHome:
		// followees are resolved inside the query, so membership is always fresh
		clause := fmt.Sprintf(
			"(p.author_id = $%[1]d OR p.author_id IN (SELECT f.followee_id FROM follows f WHERE f.follower_id = $%[1]d))",
			pos,
		)
		return clause, []any{f.UserID}
	case ScopeAuthor:
		return fmt.Sprintf("p.author_id = $%d", pos), []any{f.UserID}
	default:
		return "TRUE", nil
	}
}

// feedSelect expects the viewer id as $1.
const feedSelect = `
	SELECT
		p.id, p.text, p.created_at, p.updated_at,
		u.id AS "author.id", u.username AS "author.username", u.avatar_url AS "author.avatar_url",
		(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS like_count,
		EXISTS (SELECT 1 FROM likes ml WHERE ml.post_id = p.id AND ml.user_id = $1) AS is_liked_by_me
	FROM posts p
	JOIN users u ON u.id = p.author_id
`

const feedOrder = ` ORDER BY p.created_at DESC, p.id DESC`

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (author_id, text)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := conn(ctx, r.db).QueryRowxContext(ctx, query, post.AuthorID, post.Text).
		Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	query := `SELECT id, author_id, text, created_at, updated_at FROM posts WHERE id = $1`

	var post models.Post
	err := sqlx.GetContext(ctx, conn(ctx, r.db), &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: пост с ID %d не найден", ErrNotFound, postID)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) Exists(ctx context.Context, postID int64) (bool, error) {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`

	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &exists, query, postID); err != nil {
		return false, fmt.Errorf("ошибка при проверке поста: %w", err)
	}

	return exists, nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID int64) error {
	query := `DELETE FROM posts WHERE id = $1`

	result, err := conn(ctx, r.db).ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: пост с ID %d не найден", ErrNotFound, postID)
	}

	return nil
}

// GetByAuthorID returns every post of the author, newest first, merged with
// like aggregates for viewerID.
func (r *PostRepositoryImpl) GetByAuthorID(ctx context.Context, authorID, viewerID int64) ([]models.FeedPost, error) {
	where, filterArgs := AuthorFeed(authorID).where(2)
	query := feedSelect + ` WHERE ` + where + feedOrder

	posts := []models.FeedPost{}
	args := append([]any{viewerID}, filterArgs...)
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &posts, query, args...); err != nil {
		return nil, fmt.Errorf("ошибка при получении постов пользователя: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) CountFeed(ctx context.Context, filter FeedFilter) (int, error) {
	where, args := filter.where(1)
	query := `SELECT COUNT(*) FROM posts p WHERE ` + where

	var total int
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &total, query, args...); err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов: %w", err)
	}

	return total, nil
}

func (r *PostRepositoryImpl) GetFeed(ctx context.Context, filter FeedFilter, viewerID int64, limit, offset int) ([]models.FeedPost, error) {
	args := []any{viewerID}
	where, filterArgs := filter.where(len(args) + 1)
	args = append(args, filterArgs...)

	query := feedSelect + ` WHERE ` + where + feedOrder +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	posts := []models.FeedPost{}
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &posts, query, args...); err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) GetFeedPost(ctx context.Context, postID, viewerID int64) (*models.FeedPost, error) {
	query := feedSelect + ` WHERE p.id = $2`

	var post models.FeedPost
	err := sqlx.GetContext(ctx, conn(ctx, r.db), &post, query, viewerID, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: пост с ID %d не найден", ErrNotFound, postID)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}
