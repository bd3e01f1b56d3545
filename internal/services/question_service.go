package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/llm"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/models"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/prompts"
)

// QuestionService turns LLM output into interview questions and answer
// scores. The provider may be nil (no API key configured); generation then
// fails with ErrAIUnavailable and scoring is skipped by callers.
type QuestionService struct {
	provider llm.Provider
	prompts  prompts.PromptProvider
	logger   *zap.Logger
}

func NewQuestionService(provider llm.Provider, pm prompts.PromptProvider, logger *zap.Logger) *QuestionService {
	return &QuestionService{
		provider: provider,
		prompts:  pm,
		logger:   logger,
	}
}

func (s *QuestionService) Enabled() bool {
	return s.provider != nil
}

// GenerateQuestions asks the provider for count questions on a topic and
// parses the reply into question records.
func (s *QuestionService) GenerateQuestions(ctx context.Context, topic string, difficulty models.Difficulty, count int) ([]models.Question, error) {
	if !s.Enabled() {
		return nil, ErrAIUnavailable
	}

	prompt, err := s.prompts.BuildPrompt("question_generation", "default", map[string]interface{}{
		"Topic":      topic,
		"Difficulty": string(difficulty),
		"Count":      count,
	})
	if err != nil {
		return nil, fmt.Errorf("build generation prompt: %w", err)
	}

	requestID := uuid.New().String()
	text, err := s.provider.GenerateContent(ctx, prompt, requestID)
	if err != nil {
		return nil, err
	}

	lines := ParseQuestionLines(text)
	if len(lines) < count {
		return nil, fmt.Errorf("model returned %d questions, want %d", len(lines), count)
	}
	lines = lines[:count]

	s.logger.Info("Questions generated",
		zap.String("request_id", requestID),
		zap.String("provider", s.provider.GetProviderName()),
		zap.String("topic", topic),
		zap.Int("count", count))

	questions := make([]models.Question, 0, count)
	for _, line := range lines {
		questions = append(questions, models.Question{
			ID:   uuid.New().String(),
			Text: line,
		})
	}
	return questions, nil
}

// EvaluateAnswer scores a submitted answer 0..10 with short feedback.
func (s *QuestionService) EvaluateAnswer(ctx context.Context, questionText, answerText string) (int, string, error) {
	if !s.Enabled() {
		return 0, "", ErrAIUnavailable
	}

	prompt, err := s.prompts.BuildPrompt("answer_evaluation", "default", map[string]interface{}{
		"Question": questionText,
		"Answer":   answerText,
	})
	if err != nil {
		return 0, "", fmt.Errorf("build evaluation prompt: %w", err)
	}

	requestID := uuid.New().String()
	text, err := s.provider.GenerateContent(ctx, prompt, requestID)
	if err != nil {
		return 0, "", err
	}

	score, feedback, err := ParseScore(text)
	if err != nil {
		return 0, "", fmt.Errorf("parse evaluation reply: %w", err)
	}
	return score, feedback, nil
}

var (
	listPrefixRe = regexp.MustCompile(`^\s*(?:\d+[\.\)]|[-*])\s*`)
	scoreRe      = regexp.MustCompile(`(?i)score:\s*(\d+)`)
)

// ParseQuestionLines extracts one question per non-empty line, stripping
// "1." / "1)" / "-" / "*" list markers.
func ParseQuestionLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = listPrefixRe.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// ParseScore reads a "SCORE: <n>" marker and returns the remainder as
// feedback. Scores above 10 clamp to 10.
func ParseScore(text string) (int, string, error) {
	m := scoreRe.FindStringSubmatchIndex(text)
	if m == nil {
		return 0, "", fmt.Errorf("no score marker in reply")
	}

	raw := text[m[2]:m[3]]
	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, "", fmt.Errorf("bad score %q: %w", raw, err)
	}
	if score > 10 {
		score = 10
	}

	feedback := strings.TrimSpace(text[m[1]:])
	return score, feedback, nil
}
