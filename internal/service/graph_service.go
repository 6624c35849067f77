package service

import (
	"context"
	"murmur/internal/models"
	"murmur/internal/repository"

	"github.com/sirupsen/logrus"
)

type GraphService interface {
	Follow(ctx context.Context, followerID, followeeID int64) error
	Unfollow(ctx context.Context, followerID, followeeID int64) error
	Like(ctx context.Context, userID, postID int64) error
	Unlike(ctx context.Context, userID, postID int64) error
	GetFollowing(ctx context.Context, userID int64) ([]models.UserSummary, error)
	GetFollowers(ctx context.Context, userID int64) ([]models.UserSummary, error)
}

type graphService struct {
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
	likeRepo   repository.LikeRepository
	log        *logrus.Logger
}

func NewGraphService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	followRepo repository.FollowRepository,
	likeRepo repository.LikeRepository,
	logger *logrus.Logger,
) GraphService {
	return &graphService{
		userRepo:   userRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
		likeRepo:   likeRepo,
		log:        logger,
	}
}

// Follow is idempotent: following someone twice leaves a single edge.
func (s *graphService) Follow(ctx context.Context, followerID, followeeID int64) error {
	if followerID == followeeID {
		return invalid("нельзя подписаться на самого себя")
	}

	if err := s.requireUser(ctx, followerID); err != nil {
		return err
	}
	if err := s.requireUser(ctx, followeeID); err != nil {
		return err
	}

	created, err := s.followRepo.Follow(ctx, followerID, followeeID)
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"follower": followerID,
		"followee": followeeID,
		"created":  created,
	}).Debug("follow")

	return nil
}

func (s *graphService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	if err := s.requireUser(ctx, followerID); err != nil {
		return err
	}

	_, err := s.followRepo.Unfollow(ctx, followerID, followeeID)
	return err
}

func (s *graphService) Like(ctx context.Context, userID, postID int64) error {
	if err := s.requirePost(ctx, postID); err != nil {
		return err
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}

	created, err := s.likeRepo.Like(ctx, userID, postID)
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"user":    userID,
		"post":    postID,
		"created": created,
	}).Debug("like")

	return nil
}

func (s *graphService) Unlike(ctx context.Context, userID, postID int64) error {
	if err := s.requirePost(ctx, postID); err != nil {
		return err
	}

	_, err := s.likeRepo.Unlike(ctx, userID, postID)
	return err
}

func (s *graphService) GetFollowing(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	return s.followRepo.GetFollowing(ctx, userID)
}

func (s *graphService) GetFollowers(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	return s.followRepo.GetFollowers(ctx, userID)
}

func (s *graphService) requireUser(ctx context.Context, userID int64) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return notFound("пользователь с ID %d не найден", userID)
	}
	return nil
}

func (s *graphService) requirePost(ctx context.Context, postID int64) error {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return err
	}
	if !exists {
		return notFound("пост с ID %d не найден", postID)
	}
	return nil
}
