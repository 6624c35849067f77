package service

import (
	"context"
	"fmt"
	"murmur/internal/config"
	"murmur/internal/database"
	"murmur/internal/models"
	"murmur/internal/repository"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupPostgres runs the real migrations against MURMUR_TEST_DSN and wipes
// every table. The database it points at is destroyed.
func setupPostgres(t *testing.T) *Service {
	t.Helper()

	dsn := os.Getenv("MURMUR_TEST_DSN")
	if dsn == "" {
		t.Skip("MURMUR_TEST_DSN не задан, пропускаем тесты с PostgreSQL")
	}

	conn, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	logger, _ := test.NewNullLogger()
	db := database.New(conn, logger)
	require.NoError(t, db.RunMigrations())

	_, err = conn.Exec(`TRUNCATE notifications, likes, follows, posts, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecretKey:         "test-secret",
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: time.Hour,
	}

	return NewService(repository.NewRepository(conn), cfg, nil, logger)
}

func registerUsers(t *testing.T, svc *Service, names ...string) []int64 {
	t.Helper()

	ids := make([]int64, 0, len(names))
	for _, name := range names {
		user, err := svc.Auth.Register(context.Background(), RegisterRequest{
			Username: name,
			Email:    fmt.Sprintf("%s@example.com", name),
			Password: "password123",
		})
		require.NoError(t, err)
		ids = append(ids, user.ID)
	}
	return ids
}

func feedTexts(page *models.FeedPage) []string {
	texts := make([]string, 0, len(page.Data))
	for _, post := range page.Data {
		texts = append(texts, post.Text)
	}
	return texts
}

func TestPostgres_PostWithoutFollowers(t *testing.T) {
	svc := setupPostgres(t)
	ctx := context.Background()
	ids := registerUsers(t, svc, "u1", "u2")
	u1, u2 := ids[0], ids[1]
	firstPage := models.PageRequest{Page: 1, Limit: 10}

	post, err := svc.Post.CreatePost(ctx, u1, "hello")
	require.NoError(t, err)
	assert.Equal(t, 0, post.LikeCount)
	assert.False(t, post.IsLikedByMe)

	global, err := svc.Feed.GetGlobalFeed(ctx, u2, firstPage)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, feedTexts(global))

	home, err := svc.Feed.GetHomeTimeline(ctx, u2, firstPage)
	require.NoError(t, err)
	assert.Empty(t, home.Data)
	assert.Equal(t, 0, home.Total)

	notifications, err := svc.Notification.GetForUser(ctx, u2)
	require.NoError(t, err)
	assert.Empty(t, notifications.Notifications)

	beyond, err := svc.Feed.GetGlobalFeed(ctx, u2, models.PageRequest{Page: 5, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, beyond.Data)
	assert.Equal(t, global.Total, beyond.Total)
	assert.Equal(t, global.LastPage, beyond.LastPage)
}

func TestPostgres_FollowAndFanOut(t *testing.T) {
	svc := setupPostgres(t)
	ctx := context.Background()
	ids := registerUsers(t, svc, "u1", "u2", "u3", "u4")
	u1, u2, u3, u4 := ids[0], ids[1], ids[2], ids[3]
	firstPage := models.PageRequest{Page: 1, Limit: 10}

	_, err := svc.Post.CreatePost(ctx, u4, "stranger")
	require.NoError(t, err)

	// a repeated follow leaves one edge
	require.NoError(t, svc.Graph.Follow(ctx, u2, u1))
	require.NoError(t, svc.Graph.Follow(ctx, u2, u1))
	require.NoError(t, svc.Graph.Follow(ctx, u3, u1))

	following, err := svc.Graph.GetFollowing(ctx, u2)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, u1, following[0].ID)

	_, err = svc.Post.CreatePost(ctx, u1, "hello")
	require.NoError(t, err)
	world, err := svc.Post.CreatePost(ctx, u1, "world")
	require.NoError(t, err)

	home, err := svc.Feed.GetHomeTimeline(ctx, u2, firstPage)
	require.NoError(t, err)
	assert.Equal(t, []string{"world", "hello"}, feedTexts(home))
	assert.NotContains(t, feedTexts(home), "stranger")

	for _, follower := range []int64{u2, u3} {
		list, err := svc.Notification.GetForUser(ctx, follower)
		require.NoError(t, err)
		require.Len(t, list.Notifications, 2)
		assert.Equal(t, 2, list.UnreadCount)
		assert.Equal(t, u1, list.Notifications[0].Sender.ID)
		assert.False(t, list.Notifications[0].IsRead)
	}

	authorList, err := svc.Notification.GetForUser(ctx, u1)
	require.NoError(t, err)
	assert.Empty(t, authorList.Notifications)

	// deleting the post keeps the notification but detaches it
	require.NoError(t, svc.Post.DeletePost(ctx, world.ID, u1))

	list, err := svc.Notification.GetForUser(ctx, u2)
	require.NoError(t, err)
	require.Len(t, list.Notifications, 2)
	assert.Nil(t, list.Notifications[0].PostID)
	assert.Nil(t, list.Notifications[0].PostText)

	global, err := svc.Feed.GetGlobalFeed(ctx, u2, firstPage)
	require.NoError(t, err)
	assert.NotContains(t, feedTexts(global), "world")

	// marking a foreign notification changes nothing
	require.NoError(t, svc.Notification.MarkRead(ctx, list.Notifications[0].ID, u3))
	list, err = svc.Notification.GetForUser(ctx, u2)
	require.NoError(t, err)
	assert.Equal(t, 2, list.UnreadCount)

	require.NoError(t, svc.Notification.MarkRead(ctx, list.Notifications[0].ID, u2))
	list, err = svc.Notification.GetForUser(ctx, u2)
	require.NoError(t, err)
	assert.Equal(t, 1, list.UnreadCount)
}

func TestPostgres_LikeAndUnlike(t *testing.T) {
	svc := setupPostgres(t)
	ctx := context.Background()
	ids := registerUsers(t, svc, "u1", "u2", "u3")
	u1, u2, u3 := ids[0], ids[1], ids[2]

	post, err := svc.Post.CreatePost(ctx, u1, "hello")
	require.NoError(t, err)

	require.NoError(t, svc.Graph.Like(ctx, u2, post.ID))
	require.NoError(t, svc.Graph.Like(ctx, u2, post.ID))

	forLiker, err := svc.Feed.GetPost(ctx, post.ID, u2)
	require.NoError(t, err)
	assert.Equal(t, 1, forLiker.LikeCount)
	assert.True(t, forLiker.IsLikedByMe)

	forOther, err := svc.Feed.GetPost(ctx, post.ID, u3)
	require.NoError(t, err)
	assert.Equal(t, 1, forOther.LikeCount)
	assert.False(t, forOther.IsLikedByMe)

	require.NoError(t, svc.Graph.Unlike(ctx, u2, post.ID))
	require.NoError(t, svc.Graph.Unlike(ctx, u2, post.ID))

	after, err := svc.Feed.GetPost(ctx, post.ID, u2)
	require.NoError(t, err)
	assert.Equal(t, 0, after.LikeCount)
	assert.False(t, after.IsLikedByMe)

	profile, err := svc.User.GetProfile(ctx, u1, u2)
	require.NoError(t, err)
	require.Len(t, profile.Posts, 1)
	assert.Equal(t, 0, profile.FollowerCount)
	assert.False(t, profile.IsFollowing)
}
