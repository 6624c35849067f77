package repository

import (
	"context"
	"fmt"
	"murmur/internal/models"

	"github.com/jmoiron/sqlx"
)

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// CreateForFollowers writes one unread notification for every current
// follower of senderID in a single statement and returns how many were made.
func (r *notificationRepository) CreateForFollowers(ctx context.Context, senderID, postID int64, kind models.NotificationKind) (int64, error) {
	query := `
		INSERT INTO notifications (recipient_id, sender_id, kind, post_id, is_read)
		SELECT f.follower_id, $1, $2, $3, FALSE
		FROM follows f
		WHERE f.followee_id = $1
	`

	result, err := conn(ctx, r.db).ExecContext(ctx, query, senderID, string(kind), postID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при создании уведомлений: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("ошибка при проверке созданных уведомлений: %w", err)
	}

	return count, nil
}

func (r *notificationRepository) GetByRecipient(ctx context.Context, recipientID int64, limit int) ([]models.Notification, error) {
	query := `
		SELECT
			n.id, n.recipient_id, n.kind, n.post_id, n.is_read, n.created_at,
			s.id AS "sender.id", s.username AS "sender.username", s.avatar_url AS "sender.avatar_url",
			p.text AS post_text
		FROM notifications n
		JOIN users s ON s.id = n.sender_id
		LEFT JOIN posts p ON p.id = n.post_id
		WHERE n.recipient_id = $1
		ORDER BY n.created_at DESC, n.id DESC
		LIMIT $2
	`

	notifications := []models.Notification{}
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &notifications, query, recipientID, limit); err != nil {
		return nil, fmt.Errorf("ошибка при получении уведомлений: %w", err)
	}

	return notifications, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipientID int64) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND is_read = FALSE`

	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &count, query, recipientID); err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте непрочитанных уведомлений: %w", err)
	}

	return count, nil
}

// MarkRead only touches the row if it belongs to recipientID.
func (r *notificationRepository) MarkRead(ctx context.Context, notificationID, recipientID int64) (bool, error) {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND recipient_id = $2`

	result, err := conn(ctx, r.db).ExecContext(ctx, query, notificationID, recipientID)
	if err != nil {
		return false, fmt.Errorf("ошибка при обновлении уведомления: %w", err)
	}

	return affected(result)
}

func (r *notificationRepository) DetachPost(ctx context.Context, postID int64) error {
	query := `UPDATE notifications SET post_id = NULL WHERE post_id = $1`

	if _, err := conn(ctx, r.db).ExecContext(ctx, query, postID); err != nil {
		return fmt.Errorf("ошибка при отвязке уведомлений от поста: %w", err)
	}

	return nil
}
