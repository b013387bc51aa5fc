package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/hirekit/hirekit/internal/similarity"
	"github.com/hirekit/hirekit/internal/utils"
	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Judge asks Gemini whether two requirement phrases mean the same thing.
type Judge struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

func NewJudge(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Judge {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Judge{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (j *Judge) JudgeEquivalence(ctx context.Context, a, b string) (similarity.Judgment, error) {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return similarity.Judgment{}, fmt.Errorf("both phrases are required")
	}

	prompt := buildPrompt(a, b)

	j.logger.Debug("gemini equivalence request",
		zap.String("phrase_a", a),
		zap.String("phrase_b", b),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
	)

	raw, err := j.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return similarity.Judgment{}, err
	}

	j.logger.Debug("gemini equivalence response",
		zap.String("phrase_a", a),
		zap.String("phrase_b", b),
		zap.String("response_preview", utils.TruncateForLog(raw, j.maxLogLen)),
	)

	return parseResponse(raw)
}

func buildPrompt(a, b string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Phrase A: {{PHRASE_A}}\nPhrase B: {{PHRASE_B}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{PHRASE_A}}", a)
	prompt = strings.ReplaceAll(prompt, "{{PHRASE_B}}", b)
	return prompt
}

func parseResponse(raw string) (similarity.Judgment, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = extractJSON(cleaned)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return similarity.Judgment{}, fmt.Errorf("parse gemini response: %w", err)
	}

	equivalent := coerceBool(data["equivalent"])
	confidence := coerceFloat(data["confidence"])

	if math.IsNaN(confidence) {
		confidence = 0
	}
	confidence = math.Max(0, math.Min(1, confidence))

	return similarity.Judgment{
		Equivalent: equivalent,
		Confidence: confidence,
	}, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceBool(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		lower := strings.ToLower(strings.TrimSpace(val))
		return lower == "true" || lower == "yes"
	case float64:
		return val != 0
	default:
		return false
	}
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
