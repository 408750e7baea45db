package waitlist

import (
	"encoding/json"
	"errors"
	"net/http"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	var req JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	entry, err := h.service.Join(&req)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": vErr.Message})
		case errors.Is(err, ErrDuplicateEmail):
			writeJSON(w, http.StatusConflict, map[string]string{"error": "This email is already on the waitlist"})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to join waitlist. Please try again."})
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Successfully joined the waitlist",
		"data": map[string]interface{}{
			"id":        entry.ID,
			"email":     entry.Email,
			"user_type": entry.UserType,
		},
	})
}

// Lookup answers whether an email is already signed up. Admin only.
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Email parameter required"})
		return
	}

	entry, err := h.service.Lookup(email)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]bool{"exists": false})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"exists":    true,
		"user_type": entry.UserType,
		"joined_at": entry.CreatedAt,
	})
}
