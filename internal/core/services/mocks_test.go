package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
	"github.com/custodia-labs/ecourts-cli/internal/core/ports/driven"
)

// --- Mock implementations shared by service tests ---

// mockBrowser implements driven.Browser over a scripted page.
// Selectors listed in present are both visible and existing.
type mockBrowser struct {
	mu        sync.Mutex
	present   map[string]bool
	html      string
	navErr    error
	resultErr error // returned when waiting for the results table
	values    map[string]string
	options   map[string][]string // option labels per select; nil accepts any
	hang      string              // method that blocks until its ctx ends
	waits     []time.Duration // timeouts passed to WaitVisible
	clicked   []string
	visited   []string
	closed    bool
}

func newMockBrowser(html string, present ...string) *mockBrowser {
	b := &mockBrowser{
		present: make(map[string]bool),
		html:    html,
		values:  make(map[string]string),
	}
	for _, sel := range present {
		b.present[sel] = true
	}
	return b
}

func (m *mockBrowser) Navigate(_ context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visited = append(m.visited, url)
	return m.navErr
}

func (m *mockBrowser) WaitVisible(_ context.Context, selector string, timeout time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.waits = append(m.waits, timeout)
	if selector == resultSelector {
		if m.resultErr != nil {
			return m.resultErr
		}
		return nil
	}
	if m.present[selector] {
		return nil
	}
	return domain.ErrTimeout
}

// block waits for ctx when method is the one configured to hang.
func (m *mockBrowser) block(ctx context.Context, method string) error {
	if m.hang != method {
		return nil
	}
	<-ctx.Done()
	return ctx.Err()
}

func (m *mockBrowser) Exists(ctx context.Context, selector string) (bool, error) {
	if err := m.block(ctx, "Exists"); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.present[selector], nil
}

func (m *mockBrowser) SetValue(ctx context.Context, selector, value string) error {
	if err := m.block(ctx, "SetValue"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[selector] = value
	return nil
}

func (m *mockBrowser) SelectByText(ctx context.Context, selector, text string) error {
	if err := m.block(ctx, "SelectByText"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if labels, ok := m.options[selector]; ok {
		found := false
		for _, l := range labels {
			if strings.EqualFold(strings.TrimSpace(l), strings.TrimSpace(text)) {
				found = true
			}
		}
		if !found {
			return domain.ErrElementNotFound
		}
	}
	m.values[selector] = text
	return nil
}

func (m *mockBrowser) Click(ctx context.Context, selector string) error {
	if err := m.block(ctx, "Click"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clicked = append(m.clicked, selector)
	return nil
}

func (m *mockBrowser) HTML(ctx context.Context) (string, error) {
	if err := m.block(ctx, "HTML"); err != nil {
		return "", err
	}
	return m.html, nil
}

func (m *mockBrowser) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// mockBrowserFactory hands out browsers built by newPage.
type mockBrowserFactory struct {
	mu       sync.Mutex
	newPage  func() *mockBrowser
	err      error
	browsers []*mockBrowser
}

func (f *mockBrowserFactory) NewBrowser(_ context.Context) (driven.Browser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	b := f.newPage()
	f.browsers = append(f.browsers, b)
	return b, nil
}

func (f *mockBrowserFactory) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.browsers)
}

// mockCaptcha implements driven.CaptchaSolver.
type mockCaptcha struct {
	answer string
	calls  int
}

func (m *mockCaptcha) Solve(_ context.Context, _ driven.Browser, _ string) (string, error) {
	m.calls++
	return m.answer, nil
}

// mockExporter implements driven.Exporter.
type mockExporter struct {
	mu    sync.Mutex
	ok    bool
	bases []string
}

func (m *mockExporter) Export(_ any, base string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bases = append(m.bases, base)
	return m.ok
}

// liveSettings returns settings with live retrieval on and short waits.
func liveSettings() domain.ScraperSettings {
	s := domain.DefaultSettings().Scraper
	s.BaseURL = "https://portal.test/"
	s.ElementTimeout = 30 * time.Millisecond
	s.ResultTimeout = 50 * time.Millisecond
	s.RequestsPerSecond = 0
	return s
}

var fixedNow = time.Date(2025, 10, 17, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }
