// Package session holds the demo state machinery: the chat/quiz session
// container, the quiz orchestrators, and HTTP clients for the demo endpoints.
// A Session is single-goroutine state; callers serialize access the same way
// a UI event loop would.
package session

import (
	"context"
	"errors"
	"math"

	"redseal-waitlist/internal/models"
)

// Status of a quiz session. Transitions are monotonic:
// loading -> in_progress -> completed.
type Status string

const (
	StatusLoading    Status = "loading"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

var (
	// ErrGenerationInFlight rejects a second Start while one is running.
	ErrGenerationInFlight = errors.New("quiz generation already in progress")
	// ErrEmptyQuiz marks a generation call that returned no usable questions.
	ErrEmptyQuiz = errors.New("quiz generation returned no questions")
)

// QuizSession tracks progression through one generated question set.
type QuizSession struct {
	Questions []models.QuizQuestion `json:"questions"`
	Current   int                   `json:"current_question"`
	Status    Status                `json:"status"`
	Score     int                   `json:"score"`
}

// CurrentQuestion returns the question at the current index, or nil when the
// index is out of range.
func (q *QuizSession) CurrentQuestion() *models.QuizQuestion {
	if q == nil || q.Current < 0 || q.Current >= len(q.Questions) {
		return nil
	}
	return &q.Questions[q.Current]
}

// QuizGenerator produces questions from a transcript snapshot.
type QuizGenerator interface {
	GenerateQuiz(ctx context.Context, messages []models.Message, topic string) ([]models.QuizQuestion, error)
}

// Orchestrator drives one quiz at a time: generation, answer scoring, and
// progression. NewLocalOrchestrator scores purely from the generated
// questions; NewRecordingOrchestrator additionally keeps an answer log and
// rescales the score from it.
type Orchestrator interface {
	// Start generates questions and opens a session at question zero.
	// On any failure the session is cleared so the caller can retry.
	Start(ctx context.Context, messages []models.Message, topic string) error
	// Quiz returns the active session, nil when there is none.
	Quiz() *QuizSession
	// Feedback returns the pending answer feedback, nil once Next is called.
	Feedback() *models.AnswerFeedback
	// Generating reports whether a Start call is in flight.
	Generating() bool
	// SubmitAnswer scores a letter against the current question. Returns nil
	// when there is no in-progress session or current question; never
	// mutates state in that case.
	SubmitAnswer(answer string) *models.AnswerFeedback
	// Next clears feedback and advances, completing the session at the end.
	// No-op without an active session.
	Next()
	// Reset unconditionally clears session and feedback.
	Reset()
}

// LocalOrchestrator scores answers locally with round(100/N) points per
// correct question. The per-question rounding is kept as-is, so a perfect
// 3-question run totals 99, not 100.
type LocalOrchestrator struct {
	generator  QuizGenerator
	quiz       *QuizSession
	feedback   *models.AnswerFeedback
	generating bool
}

func NewLocalOrchestrator(generator QuizGenerator) *LocalOrchestrator {
	return &LocalOrchestrator{generator: generator}
}

func (o *LocalOrchestrator) Start(ctx context.Context, messages []models.Message, topic string) error {
	if o.generating {
		return ErrGenerationInFlight
	}

	o.generating = true
	o.feedback = nil
	o.quiz = &QuizSession{Status: StatusLoading}

	questions, err := o.generator.GenerateQuiz(ctx, messages, topic)
	o.generating = false

	if err != nil {
		o.quiz = nil
		return err
	}
	if len(questions) == 0 {
		o.quiz = nil
		return ErrEmptyQuiz
	}

	o.quiz = &QuizSession{
		Questions: questions,
		Current:   0,
		Status:    StatusInProgress,
		Score:     0,
	}
	return nil
}

func (o *LocalOrchestrator) Quiz() *QuizSession {
	return o.quiz
}

func (o *LocalOrchestrator) Feedback() *models.AnswerFeedback {
	return o.feedback
}

func (o *LocalOrchestrator) Generating() bool {
	return o.generating
}

func (o *LocalOrchestrator) SubmitAnswer(answer string) *models.AnswerFeedback {
	if o.quiz == nil || o.quiz.Status != StatusInProgress {
		return nil
	}
	question := o.quiz.CurrentQuestion()
	if question == nil {
		return nil
	}

	isCorrect := answer == question.CorrectAnswer
	points := int(math.Round(100 / float64(len(o.quiz.Questions))))
	if isCorrect {
		o.quiz.Score += points
	}

	feedback := buildFeedback(question, isCorrect, models.QuizProgress{
		Answered: o.quiz.Current + 1,
		Total:    len(o.quiz.Questions),
		Score:    o.quiz.Score,
	})
	o.feedback = feedback
	return feedback
}

func (o *LocalOrchestrator) Next() {
	o.feedback = nil
	if o.quiz == nil {
		return
	}

	next := o.quiz.Current + 1
	if next >= len(o.quiz.Questions) {
		o.quiz.Status = StatusCompleted
		return
	}
	o.quiz.Current = next
}

func (o *LocalOrchestrator) Reset() {
	o.quiz = nil
	o.feedback = nil
	o.generating = false
}

// buildFeedback fills the explanation fallbacks shared by both orchestrators.
func buildFeedback(question *models.QuizQuestion, isCorrect bool, progress models.QuizProgress) *models.AnswerFeedback {
	explanation := question.Explanation
	if explanation == "" {
		if isCorrect {
			explanation = "Correct! Great job."
		} else {
			explanation = "The correct answer was " + question.CorrectAnswer + "."
		}
	}

	return &models.AnswerFeedback{
		IsCorrect:     isCorrect,
		Explanation:   explanation,
		CorrectAnswer: question.CorrectAnswer,
		Progress:      progress,
	}
}
