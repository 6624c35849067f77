package handlers

import (
	"context"
	"net/http"
)

type contextKey string

// UserIDKey holds the authenticated viewer id (int64).
const UserIDKey contextKey = "userID"

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// ViewerID returns the id put into the request context by the auth middleware.
func ViewerID(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value(UserIDKey).(int64)
	return userID, ok && userID > 0
}
