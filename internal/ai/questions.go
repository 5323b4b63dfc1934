package ai

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/hiringpartner/hiring-partner/internal/utils"
	"go.uber.org/zap"
)

//go:embed prompts/technical.md
var technicalTemplate string

//go:embed prompts/coding.md
var codingTemplate string

const defaultMaxLogLength = 200

// Questions turns a declared tech stack into interview question lists. Both
// operations always return at least one element: on generation failure a
// visible error marker is substituted, so the conversation can proceed.
//
// The generated block is split into lines with no further structure. The
// boundary between one question and the next is whatever the generator
// produced; this weak contract is deliberate.
type Questions struct {
	generator Generator
	logger    *zap.Logger
	maxLogLen int
}

func NewQuestions(generator Generator, logger *zap.Logger) *Questions {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Questions{
		generator: generator,
		logger:    logger,
		maxLogLen: defaultMaxLogLength,
	}
}

// TechnicalQuestions generates screening questions for the given tech stack.
func (q *Questions) TechnicalQuestions(ctx context.Context, techStack string) []string {
	return q.generate(ctx, "technical", technicalTemplate, techStack)
}

// CodingQuestions generates coding exercises for the given tech stack.
func (q *Questions) CodingQuestions(ctx context.Context, techStack string) []string {
	return q.generate(ctx, "coding", codingTemplate, techStack)
}

func (q *Questions) generate(ctx context.Context, kind, template, techStack string) []string {
	prompt := strings.ReplaceAll(template, "{{TECH_STACK}}", techStack)

	q.logger.Debug("question generation request",
		zap.String("kind", kind),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, q.maxLogLen)),
	)

	raw, err := q.generator.GenerateContent(ctx, prompt)
	if err != nil {
		q.logger.Warn("question generation failed, substituting error marker",
			zap.String("kind", kind),
			zap.Error(err),
		)
		return []string{fmt.Sprintf("(!) %s question generation failed: %v", kind, err)}
	}

	q.logger.Debug("question generation response",
		zap.String("kind", kind),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, q.maxLogLen)),
	)

	lines := splitLines(raw)
	if len(lines) == 0 {
		return []string{fmt.Sprintf("(!) %s question generation returned no content", kind)}
	}

	return lines
}

func splitLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
