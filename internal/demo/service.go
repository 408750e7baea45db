package demo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"redseal-waitlist/internal/models"
)

// Config selects the models and question count for the demo endpoints.
type Config struct {
	APIKey        string
	BaseURL       string
	ChatModel     string
	QuizModel     string
	QuestionCount int
}

// Service talks to Gemini through its OpenAI-compatible endpoint for both
// the streaming chat and the structured quiz generation.
type Service struct {
	client        *openai.Client
	chatModel     string
	quizModel     string
	questionCount int
}

func NewService(cfg Config) *Service {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	questionCount := cfg.QuestionCount
	if questionCount <= 0 {
		questionCount = 3
	}

	return &Service{
		client:        openai.NewClientWithConfig(clientCfg),
		chatModel:     cfg.ChatModel,
		quizModel:     cfg.QuizModel,
		questionCount: questionCount,
	}
}

func toOpenAIMessages(system string, messages []models.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	out = append(out, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: system,
	})
	for _, m := range messages {
		out = append(out, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	return out
}

// StreamChat runs one completion over the transcript, invoking onChunk for
// every token fragment, and returns the full assistant reply.
func (s *Service) StreamChat(ctx context.Context, messages []models.Message, trade string, onChunk func(string)) (string, error) {
	if len(messages) > 0 {
		last := messages[len(messages)-1].Content
		if len(last) > 100 {
			last = last[:100]
		}
		log.Printf("[Demo Chat] Trade: %s, Query: %s...", trade, last)
	}

	stream, err := s.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:       s.chatModel,
		Messages:    toOpenAIMessages(buildChatSystemPrompt(trade), messages),
		Temperature: 0.5,
	})
	if err != nil {
		return "", err
	}
	defer stream.Close()

	var full strings.Builder
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return full.String(), err
		}
		if len(resp.Choices) == 0 {
			continue
		}
		delta := resp.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		full.WriteString(delta)
		if onChunk != nil {
			onChunk(delta)
		}
	}

	return full.String(), nil
}

// GenerateQuiz produces exactly QuestionCount questions from the transcript.
func (s *Service) GenerateQuiz(ctx context.Context, messages []models.Message, trade string) ([]models.QuizQuestion, error) {
	log.Printf("[Demo Quiz] Generating %d quiz questions for trade: %s", s.questionCount, trade)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.quizModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildQuizPrompt(messages, trade, s.questionCount),
			},
		},
		Temperature: 0.7,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("empty completion response")
	}

	questions, err := parseQuizPayload([]byte(resp.Choices[0].Message.Content), s.questionCount)
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	for i := range questions {
		questions[i].ID = fmt.Sprintf("demo-%d-%d", now, i)
		questions[i].BlockName = "Demo Quiz"
	}
	return questions, nil
}

// parseQuizPayload validates the model output: exactly n questions, four
// non-empty choices each, correct answer a letter A-D.
func parseQuizPayload(data []byte, n int) ([]models.QuizQuestion, error) {
	var payload struct {
		Questions []models.QuizQuestion `json:"questions"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse quiz payload: %w", err)
	}

	if len(payload.Questions) != n {
		return nil, fmt.Errorf("expected %d questions, got %d", n, len(payload.Questions))
	}

	for i, q := range payload.Questions {
		if q.QuestionText == "" {
			return nil, fmt.Errorf("question %d has empty text", i+1)
		}
		if q.ChoiceA == "" || q.ChoiceB == "" || q.ChoiceC == "" || q.ChoiceD == "" {
			return nil, fmt.Errorf("question %d is missing a choice", i+1)
		}
		switch q.CorrectAnswer {
		case "A", "B", "C", "D":
		default:
			return nil, fmt.Errorf("question %d has invalid correct answer %q", i+1, q.CorrectAnswer)
		}
	}

	return payload.Questions, nil
}
