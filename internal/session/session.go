package session

import (
	"context"
	"errors"

	"redseal-waitlist/internal/models"
)

var (
	// ErrLimitReached signals the usage gate: the demo allowance is spent
	// and the session only offers the signup call-to-action from here on.
	ErrLimitReached = errors.New("demo limit reached")
	// ErrBusy rejects a send while another one is streaming.
	ErrBusy = errors.New("a chat request is already in flight")
	// ErrQuizUnavailable rejects StartQuiz outside its guard conditions.
	ErrQuizUnavailable = errors.New("quiz cannot be started right now")
)

// fallbackReply is appended to the transcript when a chat request fails.
const fallbackReply = "Sorry, something went wrong. Please try again!"

// ChatStreamer runs one chat completion over a transcript, invoking onChunk
// per token fragment, and returns the full reply. ErrLimitReached means the
// usage gate tripped instead of a reply.
type ChatStreamer interface {
	StreamChat(ctx context.Context, messages []models.Message, topic string, onChunk func(string)) (string, error)
}

// Session is the demo container: one transcript, one interaction counter,
// and at most one quiz, all scoped to the selected topic. It is
// single-goroutine state, driven by one event source at a time.
type Session struct {
	chat ChatStreamer
	quiz Orchestrator

	topic        string
	messages     []models.Message
	interactions int
	limit        int
	limitReached bool
	streaming    bool
}

// New builds a session. limit is the number of completed exchanges allowed
// before the local gate trips; 0 disables the local gate (the server may
// still answer with ErrLimitReached).
func New(chat ChatStreamer, quiz Orchestrator, limit int) *Session {
	return &Session{
		chat:  chat,
		quiz:  quiz,
		limit: limit,
	}
}

// SelectTopic is the explicit topic-change transition: transcript, counter,
// gate, and quiz are reset together.
func (s *Session) SelectTopic(topic string) {
	s.topic = topic
	s.messages = nil
	s.interactions = 0
	s.limitReached = false
	s.streaming = false
	s.quiz.Reset()
}

// Send appends the user message, streams the reply, and appends the
// assistant message when the stream completes. On ErrLimitReached the turn
// is rolled back and the gate set; on any other failure a fallback reply is
// appended and the user can resend.
func (s *Session) Send(ctx context.Context, text string, onChunk func(string)) error {
	if s.streaming {
		return ErrBusy
	}
	if s.limitReached {
		return ErrLimitReached
	}

	s.streaming = true
	defer func() { s.streaming = false }()

	s.messages = append(s.messages, models.Message{Role: "user", Content: text})

	full, err := s.chat.StreamChat(ctx, s.Messages(), s.topic, onChunk)
	if errors.Is(err, ErrLimitReached) {
		s.messages = s.messages[:len(s.messages)-1]
		s.limitReached = true
		return ErrLimitReached
	}
	if err != nil {
		s.messages = append(s.messages, models.Message{Role: "assistant", Content: fallbackReply})
		return err
	}

	if full != "" {
		s.messages = append(s.messages, models.Message{Role: "assistant", Content: full})
		s.interactions++
		if s.limit > 0 && s.interactions >= s.limit {
			s.limitReached = true
		}
	}
	return nil
}

// CanStartQuiz gates quiz generation: at least one assistant reply, no
// active or generating quiz, and no chat request in flight.
func (s *Session) CanStartQuiz() bool {
	if s.streaming || s.limitReached {
		return false
	}
	if s.quiz.Quiz() != nil || s.quiz.Generating() {
		return false
	}
	for _, m := range s.messages {
		if m.Role == "assistant" && m.Content != fallbackReply {
			return true
		}
	}
	return false
}

// StartQuiz hands a transcript snapshot to the orchestrator.
func (s *Session) StartQuiz(ctx context.Context) error {
	if !s.CanStartQuiz() {
		return ErrQuizUnavailable
	}
	return s.quiz.Start(ctx, s.Messages(), s.topic)
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []models.Message {
	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) Topic() string {
	return s.topic
}

func (s *Session) Interactions() int {
	return s.interactions
}

func (s *Session) LimitReached() bool {
	return s.limitReached
}

// Quiz exposes the orchestrator for answer/next/reset actions.
func (s *Session) Quiz() Orchestrator {
	return s.quiz
}
