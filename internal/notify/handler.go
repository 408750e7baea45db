package notify

import (
	"encoding/json"
	"net/http"
)

// Handler exposes the notification flows as webhooks so admin tooling can
// re-send a welcome email or re-sync a profile without touching the database.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func decodeEntry(w http.ResponseWriter, r *http.Request) (*entryPayload, bool) {
	var payload entryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return nil, false
	}
	if payload.Email == "" {
		http.Error(w, "Email is required", http.StatusBadRequest)
		return nil, false
	}
	return &payload, true
}

func (h *Handler) SendWaitlistWelcome(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeEntry(w, r)
	if !ok {
		return
	}

	if err := h.service.SendWelcome(r.Context(), payload.toEntry()); err != nil {
		http.Error(w, "Failed to send email", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func (h *Handler) AdminWaitlistNotification(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeEntry(w, r)
	if !ok {
		return
	}

	if err := h.service.SendAdminNotification(r.Context(), payload.toEntry()); err != nil {
		http.Error(w, "Failed to send email", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func (h *Handler) KlaviyoSync(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeEntry(w, r)
	if !ok {
		return
	}

	if err := h.service.SyncToKlaviyo(r.Context(), payload.toEntry()); err != nil {
		http.Error(w, "Failed to sync to Klaviyo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
