package demo

import (
	"encoding/json"
	"log"
	"net"
	"net/http"

	"redseal-waitlist/internal/models"
)

type Handler struct {
	service *Service
	limiter UsageLimiter
}

func NewHandler(service *Service, limiter UsageLimiter) *Handler {
	return &Handler{service: service, limiter: limiter}
}

type demoRequest struct {
	Messages []models.Message `json:"messages"`
	Trade    string           `json:"trade"`
}

// clientID identifies a demo visitor: the browser-generated header when
// present, the remote address otherwise.
func clientID(r *http.Request) string {
	if id := r.Header.Get("X-Demo-Client"); id != "" {
		return id
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// encodeTextFrame frames one token fragment in the data-stream format the
// frontend expects: a "0:"-prefixed JSON string per line.
func encodeTextFrame(text string) []byte {
	data, _ := json.Marshal(text)
	frame := make([]byte, 0, len(data)+3)
	frame = append(frame, '0', ':')
	frame = append(frame, data...)
	frame = append(frame, '\n')
	return frame
}

func writeError(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// Chat streams an assistant reply as incremental text frames.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req demoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	id := clientID(r)
	usage, limited := h.limiter.Check(id)
	if limited {
		writeError(w, http.StatusPaymentRequired, map[string]interface{}{
			"error":         "Demo limit reached. Sign up to keep chatting!",
			"error_code":    "LIMIT_EXCEEDED",
			"current_usage": usage,
			"limit":         h.limiter.Limit(),
		})
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, map[string]string{"error": "Streaming unsupported"})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")

	full, err := h.service.StreamChat(r.Context(), req.Messages, req.Trade, func(chunk string) {
		w.Write(encodeTextFrame(chunk))
		flusher.Flush()
	})
	if err != nil {
		log.Printf("[Demo Chat] Error: %v", err)
		if full == "" {
			// Nothing streamed yet, so the status line is still ours to set.
			writeError(w, http.StatusInternalServerError, map[string]string{"error": "Failed to generate response"})
		}
		return
	}

	h.limiter.Record(id)
}

// Quiz generates questions from the posted transcript.
func (h *Handler) Quiz(w http.ResponseWriter, r *http.Request) {
	var req demoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	questions, err := h.service.GenerateQuiz(r.Context(), req.Messages, req.Trade)
	if err != nil {
		log.Printf("[Demo Quiz] Error: %v", err)
		writeError(w, http.StatusInternalServerError, map[string]string{"error": "Failed to generate quiz questions"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":   true,
		"questions": questions,
	})
}
