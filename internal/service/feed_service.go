package service

import (
	"context"
	"errors"
	"murmur/internal/models"
	"murmur/internal/repository"
)

type FeedService interface {
	GetHomeTimeline(ctx context.Context, viewerID int64, page models.PageRequest) (*models.FeedPage, error)
	GetGlobalFeed(ctx context.Context, viewerID int64, page models.PageRequest) (*models.FeedPage, error)
	GetPost(ctx context.Context, postID, viewerID int64) (*models.FeedPost, error)
}

type feedService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	tx       repository.TxManager
}

func NewFeedService(postRepo repository.PostRepository, userRepo repository.UserRepository, tx repository.TxManager) FeedService {
	return &feedService{
		postRepo: postRepo,
		userRepo: userRepo,
		tx:       tx,
	}
}

// GetHomeTimeline returns posts by the viewer and everyone the viewer follows.
func (s *feedService) GetHomeTimeline(ctx context.Context, viewerID int64, page models.PageRequest) (*models.FeedPage, error) {
	if err := validatePage(page); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.Exists(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, notFound("пользователь с ID %d не найден", viewerID)
	}

	return s.getPage(ctx, repository.HomeFeed(viewerID), viewerID, page)
}

func (s *feedService) GetGlobalFeed(ctx context.Context, viewerID int64, page models.PageRequest) (*models.FeedPage, error) {
	if err := validatePage(page); err != nil {
		return nil, err
	}

	return s.getPage(ctx, repository.GlobalFeed(), viewerID, page)
}

func (s *feedService) GetPost(ctx context.Context, postID, viewerID int64) (*models.FeedPost, error) {
	post, err := s.postRepo.GetFeedPost(ctx, postID, viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("пост с ID %d не найден", postID)
		}
		return nil, err
	}

	return post, nil
}

// getPage counts and fetches inside one snapshot so total, last_page and
// data always agree.
func (s *feedService) getPage(ctx context.Context, filter repository.FeedFilter, viewerID int64, page models.PageRequest) (*models.FeedPage, error) {
	result := &models.FeedPage{
		Data: []models.FeedPost{},
		Page: page.Page,
	}

	err := s.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		total, err := s.postRepo.CountFeed(ctx, filter)
		if err != nil {
			return err
		}

		result.Total = total
		result.LastPage = page.LastPage(total)

		// past the last page
		if page.Offset() >= total {
			return nil
		}

		posts, err := s.postRepo.GetFeed(ctx, filter, viewerID, page.Limit, page.Offset())
		if err != nil {
			return err
		}

		result.Data = posts
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func validatePage(page models.PageRequest) error {
	if page.Page < 1 {
		return invalid("номер страницы должен быть не меньше 1")
	}
	if page.Limit < 1 {
		return invalid("размер страницы должен быть не меньше 1")
	}
	return nil
}
