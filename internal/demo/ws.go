package demo

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"redseal-waitlist/internal/models"
	"redseal-waitlist/internal/session"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins. Adjust this in production!
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandler serves the live demo: one websocket connection holds one
// session.Session, so transcript, counter, and quiz live server-side for the
// duration of the connection.
type WSHandler struct {
	service  *Service
	limiter  UsageLimiter
	quizMode string
}

func NewWSHandler(service *Service, limiter UsageLimiter, quizMode string) *WSHandler {
	return &WSHandler{service: service, limiter: limiter, quizMode: quizMode}
}

type wsClientMessage struct {
	Type   string `json:"type"`
	Text   string `json:"text,omitempty"`
	Answer string `json:"answer,omitempty"`
	Topic  string `json:"topic,omitempty"`
}

type wsServerMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// wsConn serializes writes; tokens stream from the read loop while pings
// come from their own goroutine.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsConn) send(msgType string, data interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(wsServerMessage{Type: msgType, Data: data}); err != nil {
		log.Printf("Error writing websocket message: %v", err)
	}
}

func (c *wsConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

// gatedStreamer enforces the usage limit around the LLM call, mapping the
// gate to session.ErrLimitReached the way the HTTP endpoint maps it to 402.
type gatedStreamer struct {
	service  *Service
	limiter  UsageLimiter
	clientID string
}

func (g *gatedStreamer) StreamChat(ctx context.Context, messages []models.Message, topic string, onChunk func(string)) (string, error) {
	if _, limited := g.limiter.Check(g.clientID); limited {
		return "", session.ErrLimitReached
	}

	full, err := g.service.StreamChat(ctx, messages, topic, onChunk)
	if err != nil {
		return full, err
	}

	g.limiter.Record(g.clientID)
	return full, nil
}

func (h *WSHandler) newOrchestrator() session.Orchestrator {
	if h.quizMode == "session" {
		return session.NewRecordingOrchestrator(h.service)
	}
	return session.NewLocalOrchestrator(h.service)
}

func (h *WSHandler) HandleDemo(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading websocket: %v", err)
		return
	}
	defer conn.Close()

	clientID := r.URL.Query().Get("client_id")
	if clientID == "" {
		clientID = uuid.NewString()
	}

	wc := &wsConn{conn: conn}
	streamer := &gatedStreamer{service: h.service, limiter: h.limiter, clientID: clientID}
	sess := session.New(streamer, h.newOrchestrator(), h.limiter.Limit())
	sess.SelectTopic(r.URL.Query().Get("trade"))

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := wc.ping(); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	log.Printf("Demo session opened for client %s", clientID)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Demo session read error: %v", err)
			}
			return
		}

		var msg wsClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			wc.send("error", "invalid message")
			continue
		}

		h.dispatch(r.Context(), wc, sess, &msg)
	}
}

func (h *WSHandler) dispatch(ctx context.Context, wc *wsConn, sess *session.Session, msg *wsClientMessage) {
	switch msg.Type {
	case "select_topic":
		sess.SelectTopic(msg.Topic)
		wc.send("reset", map[string]string{"topic": msg.Topic})

	case "chat":
		err := sess.Send(ctx, msg.Text, func(chunk string) {
			wc.send("token", chunk)
		})
		if errors.Is(err, session.ErrLimitReached) {
			wc.send("limit", map[string]int{"limit": h.limiter.Limit()})
			return
		}
		messages := sess.Messages()
		if len(messages) > 0 {
			wc.send("message", messages[len(messages)-1])
		}
		if err == nil && sess.LimitReached() {
			wc.send("limit", map[string]int{"limit": h.limiter.Limit()})
		}

	case "start_quiz":
		if err := sess.StartQuiz(ctx); err != nil {
			wc.send("error", "Failed to generate quiz. Try again after chatting a bit more.")
			return
		}
		quiz := sess.Quiz().Quiz()
		wc.send("quiz", map[string]interface{}{
			"question": quiz.CurrentQuestion(),
			"index":    quiz.Current,
			"total":    len(quiz.Questions),
		})

	case "answer":
		feedback := sess.Quiz().SubmitAnswer(msg.Answer)
		if feedback == nil {
			wc.send("error", "No question to answer")
			return
		}
		wc.send("feedback", feedback)

	case "next":
		sess.Quiz().Next()
		quiz := sess.Quiz().Quiz()
		if quiz == nil {
			return
		}
		if quiz.Status == session.StatusCompleted {
			wc.send("quiz_end", map[string]int{"score": quiz.Score})
			return
		}
		wc.send("question", map[string]interface{}{
			"question": quiz.CurrentQuestion(),
			"index":    quiz.Current,
			"total":    len(quiz.Questions),
		})

	case "reset_quiz":
		sess.Quiz().Reset()
		wc.send("reset", nil)

	default:
		wc.send("error", "unknown message type")
	}
}
