package service

import (
	"murmur/internal/config"
	"murmur/internal/repository"
	"murmur/internal/storage"

	"github.com/sirupsen/logrus"
)

type Service struct {
	Auth         AuthService
	User         UserService
	Post         PostService
	Feed         FeedService
	Graph        GraphService
	Notification NotificationService
	Stats        StatsService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, logger *logrus.Logger) *Service {
	notifications := NewNotificationService(rep.Notification)

	return &Service{
		Auth:         NewAuthService(rep.User, cfg),
		User:         NewUserService(rep, storage, logger),
		Post:         NewPostService(rep, notifications, logger),
		Feed:         NewFeedService(rep.Post, rep.User, rep.Tx),
		Graph:        NewGraphService(rep.User, rep.Post, rep.Follow, rep.Like, logger),
		Notification: notifications,
		Stats:        NewStatsService(rep.Stats),
	}
}
