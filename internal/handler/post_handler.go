package handlers

import (
	"encoding/json"
	"net/http"
)

type CreatePostRequest struct {
	Text string `json:"text" validate:"required"`
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	authorID, ok := ViewerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	// length and emptiness after trim are checked by the service
	post, err := h.PostService.CreatePost(r.Context(), authorID, req.Text)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.Metrics.PostsCreated.Inc()
	WriteJSON(w, post, http.StatusCreated)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := ViewerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), postID, requesterID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.Metrics.PostsDeleted.Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) GetTimeline(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := ViewerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	page, err := parsePage(r)
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.FeedService.GetHomeTimeline(r.Context(), viewerID, page)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, result, http.StatusOK)
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := ViewerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	page, err := parsePage(r)
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.FeedService.GetGlobalFeed(r.Context(), viewerID, page)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, result, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := ViewerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.FeedService.GetPost(r.Context(), postID, viewerID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := ViewerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.GraphService.Like(r.Context(), userID, postID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.Metrics.Likes.Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) UnlikePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := ViewerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.GraphService.Unlike(r.Context(), userID, postID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.Metrics.Unlikes.Inc()
	w.WriteHeader(http.StatusNoContent)
}
