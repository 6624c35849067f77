package handlers

import (
	"net/http"
)

func (h *Handlers) GetNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := ViewerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	list, err := h.NotificationService.GetForUser(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, list, http.StatusOK)
}

// MarkNotificationRead answers 204 even when the notification belongs to
// someone else; nothing is changed in that case.
func (h *Handlers) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := ViewerID(r)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	notificationID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.NotificationService.MarkRead(r.Context(), notificationID, userID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.Metrics.Notifications.Inc()
	w.WriteHeader(http.StatusNoContent)
}
