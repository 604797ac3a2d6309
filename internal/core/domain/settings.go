package domain

import "time"

// DefaultBaseURL is the eCourts services portal.
const DefaultBaseURL = "https://services.ecourts.gov.in/ecourtindia_v6/"

// DefaultUserAgent is sent by the browser when no user agent is configured.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// ScraperSettings controls live retrieval against the portal.
type ScraperSettings struct {
	// BaseURL is the portal root; entry points are derived from it.
	BaseURL string

	// Live enables browser retrieval. When false every request is served
	// from the synthetic dataset.
	Live bool

	// Headless runs the browser without a window.
	Headless bool

	// ElementTimeout bounds the wait for each input locator strategy.
	ElementTimeout time.Duration

	// ResultTimeout bounds the wait for the results table after submit.
	ResultTimeout time.Duration

	// RequestsPerSecond throttles page navigations across all sessions.
	RequestsPerSecond float64

	// UserAgent overrides the browser user agent.
	UserAgent string
}

// CNRSearchURL is the identifier-search entry point.
func (s ScraperSettings) CNRSearchURL() string {
	return s.BaseURL + "?p=home/index"
}

// CaseStatusURL is the case-details search entry point.
func (s ScraperSettings) CaseStatusURL() string {
	return s.BaseURL + "?p=casestatus/index"
}

// CauseListURL is the cause list entry point.
func (s ScraperSettings) CauseListURL() string {
	return s.BaseURL + "?p=cause_list/index"
}

// APISettings controls the HTTP API.
type APISettings struct {
	// Addr is the listen address.
	Addr string

	// CNRTimeout bounds the wait for CNR searches.
	CNRTimeout time.Duration

	// CaseTimeout bounds the wait for case-details searches.
	CaseTimeout time.Duration

	// CauseListTimeout bounds the wait for cause list fetches.
	CauseListTimeout time.Duration
}

// OutputSettings controls exported files.
type OutputSettings struct {
	// Dir is the directory results are written to.
	Dir string
}

// LoggingSettings controls diagnostics.
type LoggingSettings struct {
	// Verbose enables debug output on stderr.
	Verbose bool
}

// Settings holds all application settings.
type Settings struct {
	Scraper ScraperSettings
	API     APISettings
	Output  OutputSettings
	Logging LoggingSettings
}

// DefaultSettings returns sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		Scraper: ScraperSettings{
			BaseURL:           DefaultBaseURL,
			Live:              true,
			Headless:          true,
			ElementTimeout:    10 * time.Second,
			ResultTimeout:     15 * time.Second,
			RequestsPerSecond: 1,
			UserAgent:         DefaultUserAgent,
		},
		API: APISettings{
			Addr:             ":5000",
			CNRTimeout:       10 * time.Second,
			CaseTimeout:      10 * time.Second,
			CauseListTimeout: 15 * time.Second,
		},
		Output: OutputSettings{
			Dir: "downloads",
		},
	}
}
