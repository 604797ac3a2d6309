// Package captcha provides challenge solvers for portal forms.
package captcha

import (
	"context"

	"github.com/custodia-labs/ecourts-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ecourts-cli/internal/logger"
)

// DefaultAnswer is returned by the static solver unless overridden.
const DefaultAnswer = "12345"

var _ driven.CaptchaSolver = (*Static)(nil)

// Static answers every challenge with a fixed string. It stands in until an
// OCR or human-in-the-loop solver is plugged in.
type Static struct {
	answer string
}

// NewStatic returns a solver that always answers with answer, or
// DefaultAnswer when answer is empty.
func NewStatic(answer string) *Static {
	if answer == "" {
		answer = DefaultAnswer
	}
	return &Static{answer: answer}
}

// Solve returns the fixed answer without inspecting the page.
func (s *Static) Solve(ctx context.Context, _ driven.Browser, imageSelector string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	logger.Debug("captcha %s answered with static solver", imageSelector)
	return s.answer, nil
}
