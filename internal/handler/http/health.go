package http

import (
	"net/http"

	"github.com/aognev/go-notes-api/internal/utils"
)

// root serves the liveness banner on "/".
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"message": "Notes App API",
		"docs":    "/docs",
	}, http.StatusOK)
}

// health serves the health probe on "/health".
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "healthy"}, http.StatusOK)
}
