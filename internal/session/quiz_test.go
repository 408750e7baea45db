package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redseal-waitlist/internal/models"
)

// fakeGenerator returns canned questions or an error.
type fakeGenerator struct {
	questions []models.QuizQuestion
	err       error
	calls     int
}

func (g *fakeGenerator) GenerateQuiz(ctx context.Context, messages []models.Message, topic string) ([]models.QuizQuestion, error) {
	g.calls++
	return g.questions, g.err
}

func makeQuestions(n int) []models.QuizQuestion {
	questions := make([]models.QuizQuestion, n)
	for i := range questions {
		questions[i] = models.QuizQuestion{
			ID:            fmt.Sprintf("q-%d", i),
			QuestionText:  fmt.Sprintf("Question %d?", i+1),
			ChoiceA:       "first",
			ChoiceB:       "second",
			ChoiceC:       "third",
			ChoiceD:       "fourth",
			CorrectAnswer: "A",
			Explanation:   "Because A.",
		}
	}
	return questions
}

func startLocal(t *testing.T, n int) *LocalOrchestrator {
	t.Helper()
	o := NewLocalOrchestrator(&fakeGenerator{questions: makeQuestions(n)})
	require.NoError(t, o.Start(context.Background(), nil, "Plumber"))
	require.Equal(t, StatusInProgress, o.Quiz().Status)
	return o
}

func TestLocalOrchestratorStart(t *testing.T) {
	o := startLocal(t, 3)

	quiz := o.Quiz()
	assert.Len(t, quiz.Questions, 3)
	assert.Equal(t, 0, quiz.Current)
	assert.Equal(t, 0, quiz.Score)
	assert.False(t, o.Generating())
	assert.Nil(t, o.Feedback())
}

func TestStartFailureClearsSession(t *testing.T) {
	t.Run("generator error", func(t *testing.T) {
		o := NewLocalOrchestrator(&fakeGenerator{err: errors.New("model unavailable")})
		err := o.Start(context.Background(), nil, "")
		assert.Error(t, err)
		assert.Nil(t, o.Quiz())
	})

	t.Run("empty question list", func(t *testing.T) {
		o := NewLocalOrchestrator(&fakeGenerator{})
		err := o.Start(context.Background(), nil, "")
		assert.ErrorIs(t, err, ErrEmptyQuiz)
		assert.Nil(t, o.Quiz())
	})
}

func TestSubmitAnswerScoring(t *testing.T) {
	o := startLocal(t, 3)

	// Q1 correct: round(100/3) = 33 points.
	feedback := o.SubmitAnswer("A")
	require.NotNil(t, feedback)
	assert.True(t, feedback.IsCorrect)
	assert.Equal(t, 33, feedback.Progress.Score)
	assert.Equal(t, 1, feedback.Progress.Answered)
	assert.Equal(t, 3, feedback.Progress.Total)

	o.Next()
	assert.Nil(t, o.Feedback(), "next clears feedback")
	assert.Equal(t, 1, o.Quiz().Current)

	// Q2 wrong: score unchanged.
	feedback = o.SubmitAnswer("B")
	require.NotNil(t, feedback)
	assert.False(t, feedback.IsCorrect)
	assert.Equal(t, "A", feedback.CorrectAnswer)
	assert.Equal(t, 33, o.Quiz().Score)

	o.Next()

	// Q3 correct: 33+33 = 66. The per-question rounding shortfall is
	// intentional; a perfect 3-question run scores 99, not 100.
	feedback = o.SubmitAnswer("A")
	require.NotNil(t, feedback)
	assert.Equal(t, 66, o.Quiz().Score)
}

func TestPerfectRunRounding(t *testing.T) {
	// N=3 leaves a rounding shortfall; N=5 divides evenly.
	tests := []struct {
		n    int
		want int
	}{
		{n: 3, want: 99},
		{n: 5, want: 100},
	}

	for _, tt := range tests {
		o := startLocal(t, tt.n)
		for i := 0; i < tt.n; i++ {
			require.NotNil(t, o.SubmitAnswer("A"))
			o.Next()
		}
		assert.Equal(t, tt.want, o.Quiz().Score, "N=%d", tt.n)
		assert.Equal(t, StatusCompleted, o.Quiz().Status)
	}
}

func TestSubmitAnswerInvalidStates(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		o := NewLocalOrchestrator(&fakeGenerator{})
		assert.Nil(t, o.SubmitAnswer("A"))
	})

	t.Run("completed session", func(t *testing.T) {
		o := startLocal(t, 3)
		for i := 0; i < 3; i++ {
			o.SubmitAnswer("A")
			o.Next()
		}
		require.Equal(t, StatusCompleted, o.Quiz().Status)

		score := o.Quiz().Score
		assert.Nil(t, o.SubmitAnswer("A"))
		assert.Equal(t, score, o.Quiz().Score, "score never mutates outside in_progress")
	})

	t.Run("after reset", func(t *testing.T) {
		o := startLocal(t, 3)
		o.Reset()
		assert.Nil(t, o.Quiz())
		assert.Nil(t, o.SubmitAnswer("A"))
	})
}

func TestNextStopsAtEnd(t *testing.T) {
	o := startLocal(t, 3)

	o.Next()
	o.Next()
	assert.Equal(t, 2, o.Quiz().Current)
	assert.Equal(t, StatusInProgress, o.Quiz().Status)

	o.Next()
	assert.Equal(t, StatusCompleted, o.Quiz().Status)
	assert.Equal(t, 2, o.Quiz().Current, "index never passes the last question")

	// Further calls stay put.
	o.Next()
	assert.Equal(t, 2, o.Quiz().Current)
	assert.Equal(t, StatusCompleted, o.Quiz().Status)
}

func TestNextWithoutSessionIsNoop(t *testing.T) {
	o := NewLocalOrchestrator(&fakeGenerator{})
	o.Next() // must not panic
	assert.Nil(t, o.Quiz())
}

func TestFeedbackExplanationFallbacks(t *testing.T) {
	questions := makeQuestions(3)
	for i := range questions {
		questions[i].Explanation = ""
	}
	o := NewLocalOrchestrator(&fakeGenerator{questions: questions})
	require.NoError(t, o.Start(context.Background(), nil, ""))

	feedback := o.SubmitAnswer("A")
	require.NotNil(t, feedback)
	assert.Equal(t, "Correct! Great job.", feedback.Explanation)

	o.Next()
	feedback = o.SubmitAnswer("C")
	require.NotNil(t, feedback)
	assert.Equal(t, "The correct answer was A.", feedback.Explanation)
}
