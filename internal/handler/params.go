package handlers

import (
	"fmt"
	"murmur/internal/models"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// parsePage reads page and limit from the query string.
func parsePage(r *http.Request) (models.PageRequest, error) {
	page, err := queryInt(r, "page", defaultPage)
	if err != nil {
		return models.PageRequest{}, err
	}

	limit, err := queryInt(r, "limit", defaultLimit)
	if err != nil {
		return models.PageRequest{}, err
	}
	if limit > maxLimit {
		return models.PageRequest{}, fmt.Errorf("параметр limit не должен превышать %d", maxLimit)
	}

	return models.PageRequest{Page: page, Limit: limit}, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, fmt.Errorf("параметр %s должен быть положительным целым числом", name)
	}

	return value, nil
}

// pathID reads a positive integer path variable.
func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("неверный ID: %q", raw)
	}

	return id, nil
}
