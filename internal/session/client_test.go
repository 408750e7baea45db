package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redseal-waitlist/internal/models"
)

func TestStreamChatDecodesFrames(t *testing.T) {
	var gotClient string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/demo/chat", r.URL.Path)
		gotClient = r.Header.Get("X-Demo-Client")

		var req struct {
			Messages []models.Message `json:"messages"`
			Trade    string           `json:"trade"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Plumber", req.Trade)
		require.Len(t, req.Messages, 1)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("0:\"Hello\"\n"))
		w.Write([]byte("0:\" there!\"\n"))
		w.Write([]byte("d:{\"finishReason\":\"stop\"}\n")) // metadata frame, skipped
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	var chunks []string
	full, err := client.StreamChat(context.Background(), []models.Message{{Role: "user", Content: "hi"}}, "Plumber", func(chunk string) {
		chunks = append(chunks, chunk)
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello there!", full)
	assert.Equal(t, []string{"Hello", " there!"}, chunks)
	assert.NotEmpty(t, gotClient, "client id header identifies the usage counter")
}

func TestStreamChatLimitResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		json.NewEncoder(w).Encode(map[string]string{"error_code": "LIMIT_EXCEEDED"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.StreamChat(context.Background(), nil, "", nil)
	assert.ErrorIs(t, err, ErrLimitReached)
}

func TestStreamChatServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.StreamChat(context.Background(), nil, "", nil)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrLimitReached)
}

func TestDecodeTextFrame(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
		ok   bool
	}{
		{name: "json string", line: `0:"Hello\nworld"`, want: "Hello\nworld", ok: true},
		{name: "empty payload", line: `0:""`, want: "", ok: true},
		{name: "metadata frame", line: `d:{"finishReason":"stop"}`, ok: false},
		{name: "blank line", line: "", ok: false},
		{name: "unescaped legacy payload", line: `0:"plain`, want: "plain", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodeTextFrame(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateQuiz(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/demo/quiz", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":   true,
			"questions": makeQuestions(3),
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	questions, err := client.GenerateQuiz(context.Background(), nil, "Plumber")
	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Equal(t, "A", questions[0].CorrectAnswer)
}

func TestGenerateQuizRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{}`},
		{name: "success false", status: http.StatusOK, body: `{"success":false,"questions":[]}`},
		{name: "no questions", status: http.StatusOK, body: `{"success":true,"questions":[]}`},
		{name: "malformed json", status: http.StatusOK, body: `{"success":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL).GenerateQuiz(context.Background(), nil, "")
			assert.Error(t, err)
		})
	}
}
