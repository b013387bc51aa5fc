// Package extraction turns raw resume and job description text into the
// structured records the engine consumes, using a model provider for the
// natural-language understanding part.
package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/hirekit/hirekit/internal/profile"
	"github.com/hirekit/hirekit/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed candidate_prompt.md
var candidatePromptTemplate string

//go:embed requirements_prompt.md
var requirementsPromptTemplate string

const (
	defaultMaxRetries = 3
	defaultRetryDelay = 2 * time.Second

	// maxResumeRunes bounds how much raw resume text goes into one prompt.
	maxResumeRunes = 4000
)

// Extractor produces structured records from raw text. Provider failures are
// retried with a fixed delay before the error is surfaced.
type Extractor struct {
	generator  contentGenerator
	logger     *zap.Logger
	maxRetries int
	retryDelay time.Duration
}

func NewExtractor(generator contentGenerator, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}

	return &Extractor{
		generator:  generator,
		logger:     log,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
	}
}

// CandidateProfile extracts a structured candidate record from raw resume
// text. The returned record is normalized and ready for scoring.
func (e *Extractor) CandidateProfile(ctx context.Context, rawText string) (*profile.Candidate, error) {
	rawText = truncateRunes(strings.TrimSpace(rawText), maxResumeRunes)
	if rawText == "" {
		return nil, fmt.Errorf("resume text must not be empty")
	}

	prompt := strings.ReplaceAll(candidatePromptTemplate, "{{RESUME_TEXT}}", rawText)

	raw, err := e.generateWithRetry(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("extract candidate profile: %w", err)
	}

	var candidate profile.Candidate
	if err := decodeRecord(raw, &candidate); err != nil {
		return nil, fmt.Errorf("decode candidate profile: %w", err)
	}

	candidate.Normalize()
	return &candidate, nil
}

// JobRequirements extracts a structured requirements record from job
// description text.
func (e *Extractor) JobRequirements(ctx context.Context, jdText string) (*profile.JobRequirements, error) {
	jdText = strings.TrimSpace(jdText)
	if jdText == "" {
		return nil, fmt.Errorf("job description text must not be empty")
	}

	prompt := strings.ReplaceAll(requirementsPromptTemplate, "{{JD_TEXT}}", jdText)

	raw, err := e.generateWithRetry(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("extract job requirements: %w", err)
	}

	var requirements profile.JobRequirements
	if err := decodeRecord(raw, &requirements); err != nil {
		return nil, fmt.Errorf("decode job requirements: %w", err)
	}

	requirements.Normalize()
	return &requirements, nil
}

func (e *Extractor) generateWithRetry(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= e.maxRetries; attempt++ {
		raw, err := e.generator.GenerateContent(ctx, prompt)
		if err == nil {
			return raw, nil
		}

		lastErr = err
		e.logger.Debug("extraction attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", e.maxRetries),
			zap.Error(err),
		)

		if attempt < e.maxRetries {
			if waitErr := utils.WaitFor(ctx, e.retryDelay); waitErr != nil {
				return "", waitErr
			}
		}
	}

	return "", fmt.Errorf("giving up after %d attempts: %w", e.maxRetries, lastErr)
}

// decodeRecord parses the provider response into the target record. Decoding
// is deliberately weakly typed: providers occasionally return numbers as
// strings or booleans as "yes"/"no".
func decodeRecord(raw string, target any) error {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return fmt.Errorf("parse provider response: %w", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return fmt.Errorf("build decoder: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("decode provider response: %w", err)
	}

	return nil
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

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
