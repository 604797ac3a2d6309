package driving

import (
	"context"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
)

// CauseListService serves daily cause lists and the jurisdiction catalogue.
type CauseListService interface {
	// CauseList returns the docket for key on date (DD/MM/YYYY, "" for today).
	CauseList(ctx context.Context, key domain.SelectorKey, date string) (*domain.CauseList, error)

	// Jurisdictions returns the known states, districts and court complexes.
	Jurisdictions() []domain.Jurisdiction
}
