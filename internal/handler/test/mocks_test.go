package test

import (
	"context"
	"io"
	"murmur/internal/models"
	"murmur/internal/service"

	"github.com/stretchr/testify/mock"
)

const mockCtx = mock.Anything

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req service.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) ParseAccessToken(tokenString string) (int64, error) {
	args := m.Called(tokenString)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetCurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetProfile(ctx context.Context, profileID, viewerID int64) (*models.Profile, error) {
	args := m.Called(ctx, profileID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockUserService) SearchUsers(ctx context.Context, query string) ([]models.UserSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserSummary), args.Error(1)
}

func (m *MockUserService) UpdateAvatar(ctx context.Context, userID int64, contentType string, file io.Reader, size int64) (*models.User, error) {
	args := m.Called(ctx, userID, contentType, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, authorID int64, text string) (*models.FeedPost, error) {
	args := m.Called(ctx, authorID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FeedPost), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, postID, requesterID int64) error {
	args := m.Called(ctx, postID, requesterID)
	return args.Error(0)
}

type MockFeedService struct {
	mock.Mock
}

func (m *MockFeedService) GetHomeTimeline(ctx context.Context, viewerID int64, page models.PageRequest) (*models.FeedPage, error) {
	args := m.Called(ctx, viewerID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FeedPage), args.Error(1)
}

func (m *MockFeedService) GetGlobalFeed(ctx context.Context, viewerID int64, page models.PageRequest) (*models.FeedPage, error) {
	args := m.Called(ctx, viewerID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FeedPage), args.Error(1)
}

func (m *MockFeedService) GetPost(ctx context.Context, postID, viewerID int64) (*models.FeedPost, error) {
	args := m.Called(ctx, postID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FeedPost), args.Error(1)
}

type MockGraphService struct {
	mock.Mock
}

func (m *MockGraphService) Follow(ctx context.Context, followerID, followeeID int64) error {
	return m.Called(ctx, followerID, followeeID).Error(0)
}

func (m *MockGraphService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	return m.Called(ctx, followerID, followeeID).Error(0)
}

func (m *MockGraphService) Like(ctx context.Context, userID, postID int64) error {
	return m.Called(ctx, userID, postID).Error(0)
}

func (m *MockGraphService) Unlike(ctx context.Context, userID, postID int64) error {
	return m.Called(ctx, userID, postID).Error(0)
}

func (m *MockGraphService) GetFollowing(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserSummary), args.Error(1)
}

func (m *MockGraphService) GetFollowers(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserSummary), args.Error(1)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) FanOutNewPost(ctx context.Context, post *models.Post) (int64, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) GetForUser(ctx context.Context, userID int64) (*models.NotificationList, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NotificationList), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, notificationID, userID int64) error {
	return m.Called(ctx, notificationID, userID).Error(0)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetStats(ctx context.Context) (*models.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stats), args.Error(1)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) HealthCheck(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
