package services

import (
	"context"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
	"github.com/custodia-labs/ecourts-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ecourts-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ecourts-cli/internal/logger"
)

// Ensure CaseService implements the interface.
var _ driving.CaseService = (*CaseService)(nil)

// Form locators for case searches.
var (
	cnrInputSelectors   = []string{`input[name="cnr_number"]`, `input[placeholder*="CNR"]`, `#cnr_number`}
	cnrSubmitSelectors  = []string{`input[type="submit"][value="Search"]`, `//button[contains(., 'Search')]`}
	partySelectors      = []string{`input[name="party_name"]`, `input[placeholder*="Petitioner"]`}
	yearSelectors       = []string{`input[name="case_year"]`, `input[placeholder*="Year"]`}
	caseNumberSelectors = []string{`input[name="case_no"]`, `#case_no`, `input[placeholder*="Case Number"]`}
	caseTypeSelectors   = []string{`select[name="case_type"]`, `#case_type`}
	detailsSubmit       = []string{`input[value="Go"]`, `//button[contains(., 'Go')]`}
)

// CaseService retrieves case status, live when possible and from the
// synthetic dataset otherwise.
type CaseService struct {
	portal  *Portal
	dataset driven.DatasetProvider
}

// NewCaseService creates a case service.
func NewCaseService(portal *Portal, dataset driven.DatasetProvider) *CaseService {
	return &CaseService{portal: portal, dataset: dataset}
}

// SearchByIdentifier looks up a case by CNR.
func (s *CaseService) SearchByIdentifier(
	ctx context.Context,
	id domain.CaseIdentifier,
	checkToday, checkTomorrow bool,
) (*domain.CaseResult, error) {
	id, err := domain.ParseCaseIdentifier(string(id))
	if err != nil {
		return nil, err
	}

	logger.Section("CNR Search")
	r := s.byIdentifier(ctx, id, checkToday, checkTomorrow)
	s.portal.observe(domain.OpSearchCNR, r.path)

	result := r.value
	return &result, nil
}

func (s *CaseService) byIdentifier(
	ctx context.Context,
	id domain.CaseIdentifier,
	today, tomorrow bool,
) retrieval[domain.CaseResult] {
	now := s.portal.Now()

	record, err := s.liveIdentifier(ctx, id)
	if err != nil {
		logger.Warn("live CNR search for %s failed, using synthetic dataset: %v", id, err)
		return fallback(s.dataset.CaseByIdentifier(id, today, tomorrow, now), err)
	}

	result := domain.CaseResult{Details: record}
	if today || tomorrow {
		result.Listings = s.dataset.Listings(id, today, tomorrow, now)
	}
	logger.Info("live CNR search for %s returned %d fields", id, len(record))
	return live(result)
}

func (s *CaseService) liveIdentifier(ctx context.Context, id domain.CaseIdentifier) (domain.CaseRecord, error) {
	pg, err := s.portal.open(ctx, s.portal.Settings().CNRSearchURL())
	if err != nil {
		return nil, err
	}
	defer pg.close()

	if err := pg.fill(ctx, "CNR input", cnrInputSelectors, id.String()); err != nil {
		return nil, err
	}
	pg.solveCaptcha(ctx)
	if err := pg.submit(ctx, cnrSubmitSelectors); err != nil {
		return nil, err
	}
	return pg.fields(ctx)
}

// SearchByDetails looks up a case by type, number and year.
func (s *CaseService) SearchByDetails(ctx context.Context, q domain.DetailsQuery) (*domain.CaseResult, error) {
	q = q.Normalize()
	if err := q.Validate(); err != nil {
		return nil, err
	}

	logger.Section("Case Details Search")
	r := s.byDetails(ctx, q)
	s.portal.observe(domain.OpSearchCase, r.path)

	result := r.value
	return &result, nil
}

func (s *CaseService) byDetails(ctx context.Context, q domain.DetailsQuery) retrieval[domain.CaseResult] {
	record, err := s.liveDetails(ctx, q)
	if err != nil {
		logger.Warn("live case search for %s failed, using synthetic dataset: %v", q.CaseNumberLabel(), err)
		return fallback(s.dataset.CaseByDetails(q), err)
	}
	return live(domain.CaseResult{Details: record})
}

func (s *CaseService) liveDetails(ctx context.Context, q domain.DetailsQuery) (domain.CaseRecord, error) {
	pg, err := s.portal.open(ctx, s.portal.Settings().CaseStatusURL())
	if err != nil {
		return nil, err
	}
	defer pg.close()

	if q.PartyName != "" {
		if err := pg.fill(ctx, "party name input", partySelectors, q.PartyName); err != nil {
			return nil, err
		}
	}
	if err := pg.fill(ctx, "case year input", yearSelectors, q.CaseYear); err != nil {
		return nil, err
	}
	if err := pg.fill(ctx, "case number input", caseNumberSelectors, q.CaseNumber); err != nil {
		return nil, err
	}
	if err := pg.choose(ctx, "case type select", caseTypeSelectors, q.CaseType); err != nil {
		return nil, err
	}
	pg.solveCaptcha(ctx)
	if err := pg.submit(ctx, detailsSubmit); err != nil {
		return nil, err
	}
	return pg.fields(ctx)
}
