package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"murmur/internal/models"
	"murmur/internal/repository"
	"murmur/internal/storage"
	"strings"

	"github.com/sirupsen/logrus"
)

// SearchLimit caps user search results.
const SearchLimit = 10

type UserService interface {
	GetCurrentUser(ctx context.Context, userID int64) (*models.User, error)
	GetProfile(ctx context.Context, profileID, viewerID int64) (*models.Profile, error)
	SearchUsers(ctx context.Context, query string) ([]models.UserSummary, error)
	UpdateAvatar(ctx context.Context, userID int64, contentType string, file io.Reader, size int64) (*models.User, error)
}

type userService struct {
	repo    *repository.Repository
	storage storage.Storage
	log     *logrus.Logger
}

func NewUserService(repo *repository.Repository, storage storage.Storage, logger *logrus.Logger) UserService {
	return &userService{
		repo:    repo,
		storage: storage,
		log:     logger,
	}
}

func (s *userService) GetCurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.repo.User.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("пользователь с ID %d не найден", userID)
		}
		return nil, err
	}

	return user, nil
}

// GetProfile assembles the profile from one snapshot. The viewer has to
// exist even though profiles are public.
func (s *userService) GetProfile(ctx context.Context, profileID, viewerID int64) (*models.Profile, error) {
	var profile *models.Profile

	err := s.repo.Tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		user, err := s.repo.User.GetUserByID(ctx, profileID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return notFound("пользователь с ID %d не найден", profileID)
			}
			return err
		}

		viewerExists, err := s.repo.User.Exists(ctx, viewerID)
		if err != nil {
			return err
		}
		if !viewerExists {
			return notFound("пользователь с ID %d не найден", viewerID)
		}

		posts, err := s.repo.Post.GetByAuthorID(ctx, profileID, viewerID)
		if err != nil {
			return err
		}

		followers, err := s.repo.Follow.CountFollowers(ctx, profileID)
		if err != nil {
			return err
		}

		following, err := s.repo.Follow.CountFollowing(ctx, profileID)
		if err != nil {
			return err
		}

		isFollowing, err := s.repo.Follow.IsFollowing(ctx, viewerID, profileID)
		if err != nil {
			return err
		}

		profile = &models.Profile{
			UserSummary: models.UserSummary{
				ID:        user.ID,
				Username:  user.Username,
				AvatarURL: user.AvatarURL,
			},
			CreatedAt:      user.CreatedAt,
			Posts:          posts,
			FollowerCount:  followers,
			FollowingCount: following,
			IsFollowing:    isFollowing,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *userService) SearchUsers(ctx context.Context, query string) ([]models.UserSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.UserSummary{}, nil
	}

	return s.repo.User.SearchByUsername(ctx, query, SearchLimit)
}

// UpdateAvatar uploads the new image first and only then points the user at
// it. The previous object is removed on a best-effort basis.
func (s *userService) UpdateAvatar(ctx context.Context, userID int64, contentType string, file io.Reader, size int64) (*models.User, error) {
	user, err := s.GetCurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	oldURL := user.AvatarURL

	objectName, avatarURL, err := s.storage.UploadAvatar(ctx, userID, contentType, file, size)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки аватара в MinIO: %w", err)
	}

	if err := s.repo.User.UpdateAvatar(ctx, userID, avatarURL); err != nil {
		if delErr := s.storage.DeleteObject(ctx, objectName); delErr != nil {
			s.log.WithError(delErr).WithField("object", objectName).Warn("не удалось удалить загруженный аватар")
		}
		return nil, fmt.Errorf("ошибка сохранения аватара в БД: %w", err)
	}

	if oldURL != nil {
		if oldObject, ok := s.storage.ObjectNameFromURL(*oldURL); ok {
			if err := s.storage.DeleteObject(ctx, oldObject); err != nil {
				s.log.WithError(err).WithField("object", oldObject).Warn("не удалось удалить старый аватар")
			}
		}
	}

	user.AvatarURL = &avatarURL
	return user, nil
}
