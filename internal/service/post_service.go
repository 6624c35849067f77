package service

import (
	"context"
	"errors"
	"murmur/internal/models"
	"murmur/internal/repository"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// MaxPostLength is counted in characters, not bytes.
const MaxPostLength = 280

type PostService interface {
	CreatePost(ctx context.Context, authorID int64, text string) (*models.FeedPost, error)
	DeletePost(ctx context.Context, postID, requesterID int64) error
}

type postService struct {
	repo          *repository.Repository
	notifications NotificationService
	log           *logrus.Logger
}

func NewPostService(repo *repository.Repository, notifications NotificationService, logger *logrus.Logger) PostService {
	return &postService{
		repo:          repo,
		notifications: notifications,
		log:           logger,
	}
}

// CreatePost stores the post and notifies the author's current followers in
// one transaction: either both happen or neither does.
func (p *postService) CreatePost(ctx context.Context, authorID int64, text string) (*models.FeedPost, error) {
	text, err := validatePostText(text)
	if err != nil {
		return nil, err
	}

	author, err := p.repo.User.GetSummaryByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("пользователь с ID %d не найден", authorID)
		}
		return nil, err
	}

	post := &models.Post{
		AuthorID: authorID,
		Text:     text,
	}

	var notified int64
	err = p.repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := p.repo.Post.Create(ctx, post); err != nil {
			return err
		}

		notified, err = p.notifications.FanOutNewPost(ctx, post)
		return err
	})
	if err != nil {
		return nil, err
	}

	p.log.WithFields(logrus.Fields{
		"post":     post.ID,
		"author":   authorID,
		"notified": notified,
	}).Info("пост создан")

	return &models.FeedPost{
		ID:          post.ID,
		Text:        post.Text,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
		Author:      *author,
		LikeCount:   0,
		IsLikedByMe: false,
	}, nil
}

// DeletePost removes the post with its likes. Notifications that pointed to
// it are kept with an empty post reference.
func (p *postService) DeletePost(ctx context.Context, postID, requesterID int64) error {
	post, err := p.repo.Post.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("пост с ID %d не найден", postID)
		}
		return err
	}

	if post.AuthorID != requesterID {
		return forbidden("нельзя удалить чужой пост")
	}

	err = p.repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := p.repo.Notification.DetachPost(ctx, postID); err != nil {
			return err
		}
		if err := p.repo.Like.DeleteByPostID(ctx, postID); err != nil {
			return err
		}
		return p.repo.Post.Delete(ctx, postID)
	})
	if err != nil {
		// deleted concurrently
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("пост с ID %d не найден", postID)
		}
		return err
	}

	p.log.WithFields(logrus.Fields{
		"post":   postID,
		"author": requesterID,
	}).Info("пост удален")

	return nil
}

func validatePostText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", invalid("текст поста не может быть пустым")
	}
	if utf8.RuneCountInString(text) > MaxPostLength {
		return "", invalid("текст поста не должен превышать %d символов", MaxPostLength)
	}
	return text, nil
}
