package session

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"redseal-waitlist/internal/models"
)

// Client talks to the demo endpoints over HTTP. It implements both
// ChatStreamer and QuizGenerator, so a Session can be composed entirely
// from one of these.
type Client struct {
	baseURL    string
	clientID   string
	httpClient *http.Client
}

// NewClient builds a client for a server base URL like "http://localhost:8080".
// The generated client id makes the server-side usage counter stick to this
// client rather than its IP.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		clientID:   uuid.NewString(),
		httpClient: &http.Client{},
	}
}

type demoRequest struct {
	Messages []models.Message `json:"messages"`
	Trade    string           `json:"trade"`
}

func (c *Client) post(ctx context.Context, path string, messages []models.Message, topic string) (*http.Response, error) {
	body, err := json.Marshal(demoRequest{Messages: messages, Trade: topic})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Demo-Client", c.clientID)

	return c.httpClient.Do(req)
}

// StreamChat posts the transcript and decodes the framed token stream,
// invoking onChunk as each fragment arrives. A 402 surfaces as
// ErrLimitReached.
func (c *Client) StreamChat(ctx context.Context, messages []models.Message, topic string, onChunk func(string)) (string, error) {
	resp, err := c.post(ctx, "/api/demo/chat", messages, topic)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusPaymentRequired {
		return "", ErrLimitReached
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat request failed with status %d", resp.StatusCode)
	}

	var full strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		text, ok := decodeTextFrame(scanner.Text())
		if !ok {
			continue
		}
		full.WriteString(text)
		if onChunk != nil {
			onChunk(text)
		}
	}
	if err := scanner.Err(); err != nil {
		return full.String(), err
	}

	return full.String(), nil
}

// decodeTextFrame parses one "0:"-prefixed data-stream line. Lines with
// other prefixes (metadata frames) are skipped.
func decodeTextFrame(line string) (string, bool) {
	if !strings.HasPrefix(line, "0:") {
		return "", false
	}
	var text string
	if err := json.Unmarshal([]byte(line[2:]), &text); err != nil {
		// Tolerate unescaped payloads from older server builds.
		return strings.Trim(line[2:], `"`), true
	}
	return text, true
}

// GenerateQuiz posts the transcript to the quiz endpoint.
func (c *Client) GenerateQuiz(ctx context.Context, messages []models.Message, topic string) ([]models.QuizQuestion, error) {
	resp, err := c.post(ctx, "/api/demo/quiz", messages, topic)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quiz request failed with status %d", resp.StatusCode)
	}

	var payload struct {
		Success   bool                  `json:"success"`
		Questions []models.QuizQuestion `json:"questions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if !payload.Success || len(payload.Questions) == 0 {
		return nil, fmt.Errorf("invalid quiz response")
	}

	return payload.Questions, nil
}
