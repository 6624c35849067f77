package models

import (
	"time"
)

// User is the account record as seen by its owner. The credential hash is
// never part of this type; it is only read by the login path.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	AvatarURL *string   `json:"avatarUrl" db:"avatar_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// UserSummary is the public projection of a user.
type UserSummary struct {
	ID        int64   `json:"id" db:"id"`
	Username  string  `json:"username" db:"username"`
	AvatarURL *string `json:"avatarUrl" db:"avatar_url"`
}

type Post struct {
	ID        int64     `json:"id" db:"id"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// FeedPost is a post merged with its like aggregates for a given viewer.
type FeedPost struct {
	ID          int64       `json:"id" db:"id"`
	Text        string      `json:"text" db:"text"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`
	Author      UserSummary `json:"user" db:"author"`
	LikeCount   int         `json:"likeCount" db:"like_count"`
	IsLikedByMe bool        `json:"isLikedByMe" db:"is_liked_by_me"`
}

type FeedPage struct {
	Data     []FeedPost `json:"data"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	LastPage int        `json:"last_page"`
}

type PageRequest struct {
	Page  int
	Limit int
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// LastPage returns ceil(total / limit).
func (p PageRequest) LastPage(total int) int {
	return (total + p.Limit - 1) / p.Limit
}

type Profile struct {
	UserSummary
	CreatedAt      time.Time  `json:"createdAt"`
	Posts          []FeedPost `json:"posts"`
	FollowerCount  int        `json:"followerCount"`
	FollowingCount int        `json:"followingCount"`
	IsFollowing    bool       `json:"isFollowing"`
}

type NotificationKind string

const (
	NotificationNewPost NotificationKind = "new_post"
)

type Notification struct {
	ID          int64            `json:"id" db:"id"`
	RecipientID int64            `json:"recipientId" db:"recipient_id"`
	Sender      UserSummary      `json:"sender" db:"sender"`
	Kind        NotificationKind `json:"kind" db:"kind"`
	PostID      *int64           `json:"postId" db:"post_id"`
	PostText    *string          `json:"postText" db:"post_text"`
	IsRead      bool             `json:"isRead" db:"is_read"`
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`
}

type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unreadCount"`
}

type Stats struct {
	Users         int `json:"users" db:"users"`
	Posts         int `json:"posts" db:"posts"`
	Follows       int `json:"follows" db:"follows"`
	Likes         int `json:"likes" db:"likes"`
	Notifications int `json:"notifications" db:"notifications"`
}
