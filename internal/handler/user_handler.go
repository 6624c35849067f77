package handlers

import (
	"errors"
	"fmt"
	"io"
	"murmur/internal/storage"
	"net/http"
)

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := ViewerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	user, err := h.UserService.GetCurrentUser(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, user, http.StatusOK)
}

func (h *Handlers) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := ViewerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	// setting the size limit from the config
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			WriteError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "Ошибка при обработке файла", http.StatusBadRequest)
		}
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// neither the declared type nor the file name is trusted, sniff the content
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		WriteError(w, "Не удалось прочитать файл", http.StatusBadRequest)
		return
	}
	contentType := http.DetectContentType(head[:n])
	if _, ok := storage.AvatarExtension(contentType); !ok {
		WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		WriteError(w, "Не удалось прочитать файл", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.UpdateAvatar(r.Context(), userID, contentType, file, header.Size)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, user, http.StatusOK)
}

func (h *Handlers) SearchUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.SearchUsers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, users, http.StatusOK)
}

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := ViewerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	profileID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := h.UserService.GetProfile(r.Context(), profileID, viewerID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, profile, http.StatusOK)
}

func (h *Handlers) Follow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := ViewerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	followeeID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.GraphService.Follow(r.Context(), followerID, followeeID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.Metrics.Follows.Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) Unfollow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := ViewerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	followeeID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.GraphService.Unfollow(r.Context(), followerID, followeeID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.Metrics.Unfollows.Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) GetFollowing(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	users, err := h.GraphService.GetFollowing(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, users, http.StatusOK)
}

func (h *Handlers) GetFollowers(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	users, err := h.GraphService.GetFollowers(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, users, http.StatusOK)
}
