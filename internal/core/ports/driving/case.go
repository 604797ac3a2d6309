package driving

import (
	"context"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
)

// CaseService retrieves case status from the portal.
// Live failures are absorbed: a well-formed request always yields a result,
// falling back to the synthetic dataset. Only domain.ErrValidation is returned.
type CaseService interface {
	// SearchByIdentifier looks up a case by CNR, optionally checking whether
	// it is listed today and/or tomorrow.
	SearchByIdentifier(ctx context.Context, id domain.CaseIdentifier, checkToday, checkTomorrow bool) (*domain.CaseResult, error)

	// SearchByDetails looks up a case by type, number and year.
	SearchByDetails(ctx context.Context, q domain.DetailsQuery) (*domain.CaseResult, error)
}
