package repository

import (
	"context"
	"errors"
	"murmur/internal/models"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound        = errors.New("запись не найдена")
	ErrConflict        = errors.New("запись уже существует")
	ErrInvalidPassword = errors.New("неверный пароль")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetSummaryByID(ctx context.Context, userID int64) (*models.UserSummary, error)
	GetUserByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
	Exists(ctx context.Context, userID int64) (bool, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	SearchByUsername(ctx context.Context, query string, limit int) ([]models.UserSummary, error)
	UpdateAvatar(ctx context.Context, userID int64, avatarURL string) error
	UpdateRefreshToken(ctx context.Context, userID int64, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	Exists(ctx context.Context, postID int64) (bool, error)
	Delete(ctx context.Context, postID int64) error
	GetByAuthorID(ctx context.Context, authorID, viewerID int64) ([]models.FeedPost, error)
	CountFeed(ctx context.Context, filter FeedFilter) (int, error)
	GetFeed(ctx context.Context, filter FeedFilter, viewerID int64, limit, offset int) ([]models.FeedPost, error)
	GetFeedPost(ctx context.Context, postID, viewerID int64) (*models.FeedPost, error)
}

type FollowRepository interface {
	Follow(ctx context.Context, followerID, followeeID int64) (bool, error)
	Unfollow(ctx context.Context, followerID, followeeID int64) (bool, error)
	IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error)
	GetFollowing(ctx context.Context, userID int64) ([]models.UserSummary, error)
	GetFollowers(ctx context.Context, userID int64) ([]models.UserSummary, error)
	CountFollowers(ctx context.Context, userID int64) (int, error)
	CountFollowing(ctx context.Context, userID int64) (int, error)
}

type LikeRepository interface {
	Like(ctx context.Context, userID, postID int64) (bool, error)
	Unlike(ctx context.Context, userID, postID int64) (bool, error)
	DeleteByPostID(ctx context.Context, postID int64) error
}

type NotificationRepository interface {
	CreateForFollowers(ctx context.Context, senderID, postID int64, kind models.NotificationKind) (int64, error)
	GetByRecipient(ctx context.Context, recipientID int64, limit int) ([]models.Notification, error)
	CountUnread(ctx context.Context, recipientID int64) (int, error)
	MarkRead(ctx context.Context, notificationID, recipientID int64) (bool, error)
	DetachPost(ctx context.Context, postID int64) error
}

type StatsRepository interface {
	GetStats(ctx context.Context) (*models.Stats, error)
}

type Repository struct {
	User         UserRepository
	Post         PostRepository
	Follow       FollowRepository
	Like         LikeRepository
	Notification NotificationRepository
	Stats        StatsRepository
	Tx           TxManager
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:         NewUserRepository(db),
		Post:         NewPostRepository(db),
		Follow:       NewFollowRepository(db),
		Like:         NewLikeRepository(db),
		Notification: NewNotificationRepository(db),
		Stats:        NewStatsRepository(db),
		Tx:           NewTxManager(db),
	}
}
