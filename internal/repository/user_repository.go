package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"murmur/internal/models"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

const uniqueViolation = "23505"

const userColumns = `id, username, email, avatar_url, created_at, updated_at`

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	// create password hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err = conn(ctx, r.db).QueryRowxContext(ctx, query, user.Username, user.Email, string(hashedPassword)).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: имя пользователя или email заняты", ErrConflict)
		}
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	err := sqlx.GetContext(ctx, conn(ctx, r.db), &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: пользователь с ID %d не найден", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetSummaryByID(ctx context.Context, userID int64) (*models.UserSummary, error) {
	var summary models.UserSummary

	query := `SELECT id, username, avatar_url FROM users WHERE id = $1`

	err := sqlx.GetContext(ctx, conn(ctx, r.db), &summary, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: пользователь с ID %d не найден", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &summary, nil
}

func (r *userRepository) GetUserByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	var user models.User

	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $2 LIMIT 1`

	err := sqlx.GetContext(ctx, conn(ctx, r.db), &user, query, username, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: пользователь %s не найден", ErrNotFound, username)
		}
		return nil, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}

	return &user, nil
}

func (r *userRepository) Exists(ctx context.Context, userID int64) (bool, error) {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &exists, query, userID); err != nil {
		return false, fmt.Errorf("ошибка при проверке пользователя: %w", err)
	}

	return exists, nil
}

// VerifyPassword is the only place that reads password_hash.
func (r *userRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	var row struct {
		models.User
		PasswordHash string `db:"password_hash"`
	}

	query := `SELECT ` + userColumns + `, password_hash FROM users WHERE email = $1`

	err := sqlx.GetContext(ctx, conn(ctx, r.db), &row, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: пользователь с email %s не найден", ErrNotFound, email)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по email: %w", err)
	}

	// checking that the password hash is the same
	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}

	user := row.User
	return &user, nil
}

func (r *userRepository) SearchByUsername(ctx context.Context, query string, limit int) ([]models.UserSummary, error) {
	users := []models.UserSummary{}

	sqlQuery := `
		SELECT id, username, avatar_url FROM users
		WHERE username ILIKE '%' || $1 || '%'
		ORDER BY username
		LIMIT $2
	`

	err := sqlx.SelectContext(ctx, conn(ctx, r.db), &users, sqlQuery, escapeLike(query), limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске пользователей: %w", err)
	}

	return users, nil
}

func (r *userRepository) UpdateAvatar(ctx context.Context, userID int64, avatarURL string) error {
	query := `UPDATE users SET avatar_url = $1, updated_at = NOW() WHERE id = $2`

	result, err := conn(ctx, r.db).ExecContext(ctx, query, avatarURL, userID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении аватара: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: пользователь с ID %d не найден", ErrNotFound, userID)
	}

	return nil
}

func (r *userRepository) UpdateRefreshToken(ctx context.Context, userID int64, refreshToken string, expiryTime time.Time) error {
	query := `
		UPDATE users
		SET refresh_token = $1, refresh_token_expiry_time = $2
		WHERE id = $3
	`

	_, err := conn(ctx, r.db).ExecContext(ctx, query, refreshToken, expiryTime, userID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении refresh token: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error) {
	var user models.User

	query := `
		SELECT ` + userColumns + ` FROM users
		WHERE refresh_token = $1
		AND refresh_token_expiry_time > CURRENT_TIMESTAMP
	`

	err := sqlx.GetContext(ctx, conn(ctx, r.db), &user, query, refreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: недействительный или просроченный refresh token", ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по refresh token: %w", err)
	}

	return &user, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
