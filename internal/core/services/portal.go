package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
	"github.com/custodia-labs/ecourts-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ecourts-cli/internal/extract"
	"github.com/custodia-labs/ecourts-cli/internal/logger"
)

// Path records which source produced a result.
type Path int

const (
	// PathLive means the result was read from the portal.
	PathLive Path = iota
	// PathFallback means the result came from the synthetic dataset.
	PathFallback
)

// String returns "live" or "fallback".
func (p Path) String() string {
	if p == PathLive {
		return "live"
	}
	return "fallback"
}

// retrieval is the outcome of one retrieval: the value and the path that
// produced it. cause is set only on PathFallback.
type retrieval[T any] struct {
	path  Path
	value T
	cause error
}

func live[T any](v T) retrieval[T] {
	return retrieval[T]{path: PathLive, value: v}
}

func fallback[T any](v T, cause error) retrieval[T] {
	return retrieval[T]{path: PathFallback, value: v, cause: cause}
}

// Observer is notified of every completed retrieval.
type Observer func(op domain.OperationKind, path Path)

// Locator strategies, tried in order.
var (
	captchaImageSelectors = []string{`img[src*="captcha"]`, `#captcha_image`}
	captchaInputSelectors = []string{`input[name="captcha"]`, `input[placeholder*="Captcha"]`, `#captcha`}
)

// resultSelector signals that results have rendered.
const resultSelector = "table"

// Portal holds what live retrieval sessions share: scraper settings, the
// browser factory, the captcha solver and a navigation rate limiter.
// It is safe for concurrent use; each session gets its own browser.
type Portal struct {
	browsers driven.BrowserFactory
	captcha  driven.CaptchaSolver
	limiter  *rate.Limiter
	now      func() time.Time

	mu       sync.RWMutex
	settings domain.ScraperSettings
	observer Observer
}

// NewPortal creates a portal. browsers and captcha may be nil; without a
// browser factory every retrieval falls back to the synthetic dataset.
func NewPortal(settings domain.ScraperSettings, browsers driven.BrowserFactory, captcha driven.CaptchaSolver) *Portal {
	return &Portal{
		browsers: browsers,
		captcha:  captcha,
		limiter:  rate.NewLimiter(limitFor(settings.RequestsPerSecond), 1),
		now:      time.Now,
		settings: settings,
	}
}

func limitFor(rps float64) rate.Limit {
	if rps <= 0 {
		return rate.Inf
	}
	return rate.Limit(rps)
}

// Configure replaces the scraper settings. Sessions already open keep the
// settings they started with.
func (p *Portal) Configure(settings domain.ScraperSettings) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.settings = settings
	p.limiter.SetLimit(limitFor(settings.RequestsPerSecond))
}

// Settings returns the current scraper settings.
func (p *Portal) Settings() domain.ScraperSettings {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.settings
}

// SetObserver registers fn to be told about each retrieval's path.
func (p *Portal) SetObserver(fn Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observer = fn
}

// Now returns the current time from the portal's clock.
func (p *Portal) Now() time.Time {
	return p.now()
}

func (p *Portal) observe(op domain.OperationKind, path Path) {
	p.mu.RLock()
	fn := p.observer
	p.mu.RUnlock()
	if fn != nil {
		fn(op, path)
	}
}

// open starts a browser session on url.
func (p *Portal) open(ctx context.Context, url string) (*page, error) {
	settings := p.Settings()
	if !settings.Live {
		return nil, domain.ErrLiveDisabled
	}
	if p.browsers == nil {
		return nil, fmt.Errorf("%w: no browser available", domain.ErrLiveDisabled)
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	b, err := p.browsers.NewBrowser(ctx)
	if err != nil {
		return nil, fmt.Errorf("start browser: %w", err)
	}

	logger.Debug("navigate %s", url)
	navCtx, cancel := context.WithTimeout(ctx, settings.ResultTimeout)
	defer cancel()
	if err := b.Navigate(navCtx, url); err != nil {
		_ = b.Close()
		if errors.Is(navCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("navigate %s: %w", url, domain.ErrTimeout)
		}
		return nil, fmt.Errorf("navigate %s: %w", url, err)
	}

	return &page{browser: b, settings: settings, captcha: p.captcha}, nil
}

// page is one open portal form.
type page struct {
	browser  driven.Browser
	settings domain.ScraperSettings
	captcha  driven.CaptchaSolver
}

func (pg *page) close() {
	if err := pg.browser.Close(); err != nil {
		logger.Debug("close browser: %v", err)
	}
}

// minStepTimeout is the smallest bound given to any browser call, so tiny
// configured timeouts never turn into unbounded waits.
const minStepTimeout = time.Millisecond

func atLeastStep(d time.Duration) time.Duration {
	return max(d, minStepTimeout)
}

// step bounds one browser call by the element timeout. Tasks run on a
// context without deadline, so every call on the live path goes through
// step, locate or the result wait.
func (pg *page) step(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, atLeastStep(pg.settings.ElementTimeout))
}

// locate returns the first strategy that matches a visible element. Each
// strategy gets an equal share of the element timeout.
func (pg *page) locate(ctx context.Context, what string, strategies []string) (string, error) {
	share := atLeastStep(pg.settings.ElementTimeout / time.Duration(len(strategies)))
	for _, sel := range strategies {
		if err := pg.browser.WaitVisible(ctx, sel, share); err == nil {
			logger.Debug("%s found by %s", what, sel)
			return sel, nil
		}
	}
	return "", fmt.Errorf("%w: %s", domain.ErrElementNotFound, what)
}

// fill locates an input and sets its value.
func (pg *page) fill(ctx context.Context, what string, strategies []string, value string) error {
	sel, err := pg.locate(ctx, what, strategies)
	if err != nil {
		return err
	}
	stepCtx, cancel := pg.step(ctx)
	defer cancel()
	if err := pg.browser.SetValue(stepCtx, sel, value); err != nil {
		return fmt.Errorf("set %s: %w", what, err)
	}
	return nil
}

// choose locates a select element and picks the option labelled text.
func (pg *page) choose(ctx context.Context, what string, strategies []string, text string) error {
	sel, err := pg.locate(ctx, what, strategies)
	if err != nil {
		return err
	}
	stepCtx, cancel := pg.step(ctx)
	defer cancel()
	if err := pg.browser.SelectByText(stepCtx, sel, text); err != nil {
		return fmt.Errorf("choose %s %q: %w", what, text, err)
	}
	return nil
}

// first returns the first strategy matching any element, without waiting.
func (pg *page) first(ctx context.Context, strategies []string) (string, bool) {
	for _, sel := range strategies {
		if pg.exists(ctx, sel) {
			return sel, true
		}
	}
	return "", false
}

func (pg *page) exists(ctx context.Context, sel string) bool {
	stepCtx, cancel := pg.step(ctx)
	defer cancel()
	ok, err := pg.browser.Exists(stepCtx, sel)
	return err == nil && ok
}

// solveCaptcha answers a challenge when one is shown. A missing challenge,
// solver or answer field is not an error.
func (pg *page) solveCaptcha(ctx context.Context) {
	img, ok := pg.first(ctx, captchaImageSelectors)
	if !ok {
		logger.Debug("no captcha on page")
		return
	}
	if pg.captcha == nil {
		logger.Debug("captcha present but no solver configured")
		return
	}
	input, ok := pg.first(ctx, captchaInputSelectors)
	if !ok {
		logger.Debug("captcha image without input field")
		return
	}
	stepCtx, cancel := pg.step(ctx)
	defer cancel()
	answer, err := pg.captcha.Solve(stepCtx, pg.browser, img)
	if err != nil {
		logger.Warn("captcha solver: %v", err)
		return
	}
	if err := pg.browser.SetValue(stepCtx, input, answer); err != nil {
		logger.Warn("enter captcha: %v", err)
	}
}

// submit clicks the first matching button and waits for results.
func (pg *page) submit(ctx context.Context, strategies []string) error {
	sel, ok := pg.first(ctx, strategies)
	if !ok {
		return fmt.Errorf("%w: submit button", domain.ErrElementNotFound)
	}
	if err := pg.click(ctx, sel); err != nil {
		return fmt.Errorf("click %s: %w", sel, err)
	}
	if err := pg.browser.WaitVisible(ctx, resultSelector, atLeastStep(pg.settings.ResultTimeout)); err != nil {
		return fmt.Errorf("wait for results: %w", domain.ErrTimeout)
	}
	return nil
}

func (pg *page) click(ctx context.Context, sel string) error {
	stepCtx, cancel := pg.step(ctx)
	defer cancel()
	return pg.browser.Click(stepCtx, sel)
}

func (pg *page) html(ctx context.Context) (string, error) {
	stepCtx, cancel := pg.step(ctx)
	defer cancel()
	return pg.browser.HTML(stepCtx)
}

// fields parses the result page into a case record.
func (pg *page) fields(ctx context.Context) (domain.CaseRecord, error) {
	html, err := pg.html(ctx)
	if err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}
	record, err := extract.Fields(html)
	if err != nil {
		return nil, err
	}
	if len(record) == 0 {
		return nil, domain.ErrNoResults
	}
	return record, nil
}

// rows parses the result page into cause list entries.
func (pg *page) rows(ctx context.Context) ([]domain.CauseListEntry, error) {
	html, err := pg.html(ctx)
	if err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}
	rows, err := extract.Rows(html)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNoResults
	}
	return rows, nil
}
