package services

import (
	"context"
	"time"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
	"github.com/custodia-labs/ecourts-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ecourts-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ecourts-cli/internal/logger"
)

// Ensure CauseListService implements the interface.
var _ driving.CauseListService = (*CauseListService)(nil)

// LiveSource identifies portal results in cause list metadata.
const LiveSource = domain.SourcePortal

// Form locators for the cause list page.
var (
	stateSelectors    = []string{`select[name="sess_state_code"]`, `#sess_state_code`}
	districtSelectors = []string{`select[name="sess_dist_code"]`, `#sess_dist_code`}
	complexSelectors  = []string{`select[name="court_complex_code"]`, `#court_complex_code`}
	listDateSelectors = []string{`input[name="causelist_date"]`, `#causelist_date`}
	causeListSubmit   = []string{`input[type="submit"]`, `//button[contains(., 'Civil')]`, `//button[contains(., 'Criminal')]`}
)

// CauseListService serves daily cause lists.
type CauseListService struct {
	portal  *Portal
	dataset driven.DatasetProvider
}

// NewCauseListService creates a cause list service.
func NewCauseListService(portal *Portal, dataset driven.DatasetProvider) *CauseListService {
	return &CauseListService{portal: portal, dataset: dataset}
}

// CauseList returns the docket for key on date. Empty key fields take the
// default court complex; an empty date means today.
func (s *CauseListService) CauseList(ctx context.Context, key domain.SelectorKey, date string) (*domain.CauseList, error) {
	now := s.portal.Now()
	date, err := domain.ParseListDate(date, now)
	if err != nil {
		return nil, err
	}
	key = key.WithDefaults()

	logger.Section("Cause List")
	r := s.fetch(ctx, key, date, now)
	s.portal.observe(domain.OpFetchCauseList, r.path)

	list := r.value
	return &list, nil
}

func (s *CauseListService) fetch(ctx context.Context, key domain.SelectorKey, date string, now time.Time) retrieval[domain.CauseList] {
	rows, err := s.liveRows(ctx, key, date)
	if err != nil {
		logger.Warn("live cause list for %s failed, using synthetic dataset: %v", key, err)
		return fallback(s.dataset.CauseList(key, date, now), err)
	}

	return live(domain.CauseList{
		Metadata: domain.CauseListMetadata{
			Source:     LiveSource,
			FetchedAt:  now.Format(time.RFC3339),
			State:      key.State,
			District:   key.District,
			Complex:    key.Complex,
			Date:       date,
			TotalCases: len(rows),
		},
		Cases: rows,
	})
}

func (s *CauseListService) liveRows(ctx context.Context, key domain.SelectorKey, date string) ([]domain.CauseListEntry, error) {
	pg, err := s.portal.open(ctx, s.portal.Settings().CauseListURL())
	if err != nil {
		return nil, err
	}
	defer pg.close()

	// Options carry portal codes as values, so selects are matched by label.
	selects := []struct {
		what       string
		strategies []string
		text       string
	}{
		{"state select", stateSelectors, key.State},
		{"district select", districtSelectors, key.District},
		{"court complex select", complexSelectors, key.Complex},
	}
	for _, st := range selects {
		if err := pg.choose(ctx, st.what, st.strategies, st.text); err != nil {
			return nil, err
		}
	}
	if err := pg.fill(ctx, "cause list date", listDateSelectors, date); err != nil {
		return nil, err
	}
	pg.solveCaptcha(ctx)
	if err := pg.submit(ctx, causeListSubmit); err != nil {
		return nil, err
	}
	return pg.rows(ctx)
}

// Jurisdictions returns the known states, districts and court complexes.
func (s *CauseListService) Jurisdictions() []domain.Jurisdiction {
	return s.dataset.Jurisdictions()
}
