package dataset

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
	"github.com/custodia-labs/ecourts-cli/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.DatasetProvider = (*Provider)(nil)

// Source identifies synthetic results in cause list metadata.
const Source = domain.SourceSynthetic

//go:embed dataset.yaml
var datasetYAML []byte

type document struct {
	Default    domain.SelectorKey    `yaml:"default"`
	Fill       fillLists             `yaml:"fill"`
	CauseLists []causeListDoc        `yaml:"cause_lists"`
	Courts     []domain.Jurisdiction `yaml:"jurisdictions"`
}

type fillLists struct {
	Purpose   []string `yaml:"purpose"`
	CourtName []string `yaml:"court_name"`
	Remarks   []string `yaml:"remarks"`
}

type causeListDoc struct {
	State    string              `yaml:"state"`
	District string              `yaml:"district"`
	Complex  string              `yaml:"complex"`
	Cases    []map[string]string `yaml:"cases"`
}

// table is the parsed, immutable form of the document.
type table struct {
	defaultKey string
	lists      map[string][]domain.CauseListEntry
	fill       fillLists
	courts     []domain.Jurisdiction
}

// Provider implements driven.DatasetProvider over the embedded dataset.
// It is safe for concurrent use.
type Provider struct {
	once  sync.Once
	table *table
}

// New creates a provider. The dataset is parsed on first use.
func New() *Provider {
	return &Provider{}
}

func (p *Provider) data() *table {
	p.once.Do(func() {
		t, err := parse(datasetYAML)
		if err != nil {
			panic(fmt.Sprintf("load dataset.yaml: %v", err))
		}
		p.table = t
	})
	return p.table
}

func parse(raw []byte) (*table, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	t := &table{
		defaultKey: doc.Default.LookupKey(),
		lists:      make(map[string][]domain.CauseListEntry, len(doc.CauseLists)),
		fill:       doc.Fill,
		courts:     doc.Courts,
	}
	for _, cl := range doc.CauseLists {
		key := domain.SelectorKey{State: cl.State, District: cl.District, Complex: cl.Complex}
		entries := make([]domain.CauseListEntry, 0, len(cl.Cases))
		for _, c := range cl.Cases {
			entries = append(entries, domain.CauseListEntry(c))
		}
		t.lists[key.LookupKey()] = entries
	}

	if _, ok := t.lists[t.defaultKey]; !ok {
		return nil, fmt.Errorf("default key %s has no cause list", doc.Default)
	}
	if len(t.fill.Purpose) == 0 || len(t.fill.CourtName) == 0 || len(t.fill.Remarks) == 0 {
		return nil, fmt.Errorf("fill lists must not be empty")
	}
	return t, nil
}

// CauseList returns the entries stored for key, or those of the default
// court complex when key is unknown. Missing purpose, court_name and
// remarks are filled by position from fixed cyclic lists.
func (p *Provider) CauseList(key domain.SelectorKey, date string, now time.Time) domain.CauseList {
	t := p.data()

	stored, ok := t.lists[key.LookupKey()]
	if !ok {
		stored = t.lists[t.defaultKey]
	}

	cases := make([]domain.CauseListEntry, len(stored))
	for i, e := range stored {
		entry := e.Clone()
		fillMissing(entry, domain.ColumnPurpose, t.fill.Purpose, i)
		fillMissing(entry, domain.ColumnCourtName, t.fill.CourtName, i)
		fillMissing(entry, domain.ColumnRemarks, t.fill.Remarks, i)
		cases[i] = entry
	}

	return domain.CauseList{
		Metadata: domain.CauseListMetadata{
			Source:     Source,
			FetchedAt:  now.Format(time.RFC3339),
			State:      key.State,
			District:   key.District,
			Complex:    key.Complex,
			Date:       date,
			TotalCases: len(cases),
		},
		Cases: cases,
	}
}

func fillMissing(e domain.CauseListEntry, col string, values []string, i int) {
	if _, ok := e[col]; !ok {
		e[col] = values[i%len(values)]
	}
}

// Jurisdictions returns a copy of the state, district and complex catalogue.
func (p *Provider) Jurisdictions() []domain.Jurisdiction {
	src := p.data().courts
	out := make([]domain.Jurisdiction, len(src))
	for i, j := range src {
		districts := make([]domain.District, len(j.Districts))
		for k, d := range j.Districts {
			districts[k] = domain.District{
				Name:      d.Name,
				Complexes: append([]string(nil), d.Complexes...),
			}
		}
		out[i] = domain.Jurisdiction{State: j.State, Districts: districts}
	}
	return out
}

// Fixed fields of synthetic case records.
const (
	fallbackFilingDate  = "15/10/2025"
	fallbackNextHearing = "20/10/2025"
	fallbackJudge       = "Hon'ble Sh. Rajesh Kumar"
	fallbackStatus      = "Pending"
)

// CaseByIdentifier returns the synthetic record for id.
func (p *Provider) CaseByIdentifier(id domain.CaseIdentifier, today, tomorrow bool, now time.Time) domain.CaseResult {
	return domain.CaseResult{
		Details: domain.CaseRecord{
			"CNR Number":   id.String(),
			"Case Number":  fmt.Sprintf("CRL.M.C. %s/2025", id.Suffix(4)),
			"Case Type":    "Criminal",
			"Filing Date":  fallbackFilingDate,
			"Status":       fallbackStatus,
			"Court":        "District Court, New Delhi",
			"Judge":        fallbackJudge,
			"Next Hearing": fallbackNextHearing,
			"Party Names":  "Ram Kumar vs State of Delhi",
		},
		Listings: p.Listings(id, today, tomorrow, now),
	}
}

// Listings returns at most one listing for today and one for the next
// calendar day, in that order.
func (p *Provider) Listings(_ domain.CaseIdentifier, today, tomorrow bool, now time.Time) []domain.Listing {
	var listings []domain.Listing
	if today {
		listings = append(listings, domain.Listing{
			Date:      now.Format(domain.DateLayout),
			SerialNo:  "5",
			CourtName: "Court No. 1 - District Judge",
			Purpose:   "For Arguments",
		})
	}
	if tomorrow {
		listings = append(listings, domain.Listing{
			Date:      now.AddDate(0, 0, 1).Format(domain.DateLayout),
			SerialNo:  "3",
			CourtName: "Court No. 2 - Additional Sessions Judge",
			Purpose:   "For Evidence",
		})
	}
	return listings
}

// CaseByDetails returns the synthetic record for a type/number/year query.
func (p *Provider) CaseByDetails(q domain.DetailsQuery) domain.CaseResult {
	party := strings.TrimSpace(q.PartyName)
	if party == "" {
		party = "Not specified"
	}
	return domain.CaseResult{
		Details: domain.CaseRecord{
			"Case Number":  q.CaseNumberLabel(),
			"Case Type":    q.CaseType,
			"Filing Date":  "15/10/" + q.CaseYear,
			"Status":       fallbackStatus,
			"Next Hearing": fallbackNextHearing,
			"Court":        "District Court",
			"Judge":        fallbackJudge,
			"Party Names":  party,
		},
	}
}
