package driven

import (
	"time"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
)

// DatasetProvider serves deterministic synthetic records.
// It never fails and every returned value is a fresh copy owned by the caller.
type DatasetProvider interface {
	// CauseList returns the entries for key. Unknown keys resolve to the
	// default court complex.
	CauseList(key domain.SelectorKey, date string, now time.Time) domain.CauseList

	// CaseByIdentifier returns the record for id, with listings for the
	// requested days relative to now.
	CaseByIdentifier(id domain.CaseIdentifier, today, tomorrow bool, now time.Time) domain.CaseResult

	// CaseByDetails returns the record for a type/number/year query.
	CaseByDetails(q domain.DetailsQuery) domain.CaseResult

	// Listings returns the listings for id on the requested days.
	Listings(id domain.CaseIdentifier, today, tomorrow bool, now time.Time) []domain.Listing

	// Jurisdictions returns the state, district and court complex catalogue.
	Jurisdictions() []domain.Jurisdiction
}
