package session

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"redseal-waitlist/internal/models"
)

// AnswerRecord is one logged answer in a recording session.
type AnswerRecord struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
	IsCorrect  bool   `json:"is_correct"`
	TimeSpent  int    `json:"time_spent_seconds"`
}

// RecordingOrchestrator is the session-backed variant: besides the
// progression the local orchestrator does, it keeps a per-question answer
// log with timing and rescales the cumulative score from the log as
// round(correct/total*100), so a perfect run is exactly 100.
type RecordingOrchestrator struct {
	id         string
	generator  QuizGenerator
	quiz       *QuizSession
	feedback   *models.AnswerFeedback
	generating bool

	answers       []AnswerRecord
	questionStart time.Time
	now           func() time.Time
}

func NewRecordingOrchestrator(generator QuizGenerator) *RecordingOrchestrator {
	return &RecordingOrchestrator{
		generator: generator,
		now:       time.Now,
	}
}

// ID identifies the current quiz attempt; empty when no quiz is active.
func (o *RecordingOrchestrator) ID() string {
	return o.id
}

// Answers returns the log of submitted answers for the current attempt.
func (o *RecordingOrchestrator) Answers() []AnswerRecord {
	out := make([]AnswerRecord, len(o.answers))
	copy(out, o.answers)
	return out
}

func (o *RecordingOrchestrator) Start(ctx context.Context, messages []models.Message, topic string) error {
	if o.generating {
		return ErrGenerationInFlight
	}

	o.generating = true
	o.feedback = nil
	o.answers = nil
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

	o.id = uuid.NewString()
	o.quiz = &QuizSession{
		Questions: questions,
		Current:   0,
		Status:    StatusInProgress,
		Score:     0,
	}
	o.questionStart = o.now()
	return nil
}

func (o *RecordingOrchestrator) Quiz() *QuizSession {
	return o.quiz
}

func (o *RecordingOrchestrator) Feedback() *models.AnswerFeedback {
	return o.feedback
}

func (o *RecordingOrchestrator) Generating() bool {
	return o.generating
}

func (o *RecordingOrchestrator) SubmitAnswer(answer string) *models.AnswerFeedback {
	if o.quiz == nil || o.quiz.Status != StatusInProgress {
		return nil
	}
	question := o.quiz.CurrentQuestion()
	if question == nil {
		return nil
	}

	isCorrect := answer == question.CorrectAnswer
	timeSpent := int(math.Round(o.now().Sub(o.questionStart).Seconds()))

	o.answers = append(o.answers, AnswerRecord{
		QuestionID: question.ID,
		Answer:     answer,
		IsCorrect:  isCorrect,
		TimeSpent:  timeSpent,
	})

	correct := 0
	for _, a := range o.answers {
		if a.IsCorrect {
			correct++
		}
	}
	o.quiz.Score = int(math.Round(float64(correct) / float64(len(o.quiz.Questions)) * 100))

	feedback := buildFeedback(question, isCorrect, models.QuizProgress{
		Answered: len(o.answers),
		Total:    len(o.quiz.Questions),
		Score:    o.quiz.Score,
	})
	o.feedback = feedback
	return feedback
}

func (o *RecordingOrchestrator) Next() {
	o.feedback = nil
	if o.quiz == nil {
		return
	}
	o.questionStart = o.now()

	next := o.quiz.Current + 1
	if next >= len(o.quiz.Questions) {
		o.quiz.Status = StatusCompleted
		return
	}
	o.quiz.Current = next
}

func (o *RecordingOrchestrator) Reset() {
	o.id = ""
	o.quiz = nil
	o.feedback = nil
	o.generating = false
	o.answers = nil
}
