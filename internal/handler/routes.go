package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes mounts the public routes on r and everything else on an
// /api subrouter guarded by auth.
func (h *Handlers) RegisterRoutes(r *mux.Router, auth mux.MiddlewareFunc, gatherer prometheus.Gatherer) {
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/stats", h.Stats).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// public auth endpoints go before the guarded subrouter
	r.HandleFunc("/api/auth/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/refresh-token", h.RefreshToken).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth)

	api.HandleFunc("/me", h.GetCurrentUser).Methods(http.MethodGet)
	api.HandleFunc("/me/avatar", h.UpdateAvatar).Methods(http.MethodPut)
	api.HandleFunc("/me/posts", h.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/me/posts/{id}", h.DeletePost).Methods(http.MethodDelete)

	api.HandleFunc("/posts/timeline", h.GetTimeline).Methods(http.MethodGet)
	api.HandleFunc("/posts", h.GetPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", h.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}/like", h.LikePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}/like", h.UnlikePost).Methods(http.MethodDelete)

	api.HandleFunc("/users/search", h.SearchUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", h.GetProfile).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/follow", h.Follow).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}/follow", h.Unfollow).Methods(http.MethodDelete)
	api.HandleFunc("/users/{id}/following", h.GetFollowing).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/followers", h.GetFollowers).Methods(http.MethodGet)

	api.HandleFunc("/notifications", h.GetNotifications).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", h.MarkNotificationRead).Methods(http.MethodPost)
}
