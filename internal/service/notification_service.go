package service

import (
	"context"
	"fmt"
	"murmur/internal/models"
	"murmur/internal/repository"
)

// NotificationsLimit is how many notifications GetForUser returns.
const NotificationsLimit = 20

type NotificationService interface {
	FanOutNewPost(ctx context.Context, post *models.Post) (int64, error)
	GetForUser(ctx context.Context, userID int64) (*models.NotificationList, error)
	MarkRead(ctx context.Context, notificationID, userID int64) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

// FanOutNewPost notifies the author's followers as of this moment. Run it
// with the same context as the post insert to keep both in one transaction.
func (s *notificationService) FanOutNewPost(ctx context.Context, post *models.Post) (int64, error) {
	count, err := s.notificationRepo.CreateForFollowers(ctx, post.AuthorID, post.ID, models.NotificationNewPost)
	if err != nil {
		return 0, fmt.Errorf("ошибка рассылки уведомлений: %w", err)
	}

	return count, nil
}

func (s *notificationService) GetForUser(ctx context.Context, userID int64) (*models.NotificationList, error) {
	notifications, err := s.notificationRepo.GetByRecipient(ctx, userID, NotificationsLimit)
	if err != nil {
		return nil, err
	}

	// unread count is not capped by the page size
	unreadCount, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.NotificationList{
		Notifications: notifications,
		UnreadCount:   unreadCount,
	}, nil
}

// MarkRead is a no-op when the notification does not belong to userID.
func (s *notificationService) MarkRead(ctx context.Context, notificationID, userID int64) error {
	_, err := s.notificationRepo.MarkRead(ctx, notificationID, userID)
	return err
}
