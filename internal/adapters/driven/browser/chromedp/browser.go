// Package chromedp drives a headless Chrome through the DevTools protocol
// for live portal retrieval.
package chromedp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
	"github.com/custodia-labs/ecourts-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ecourts-cli/internal/logger"
)

// Ensure the adapters implement the interfaces.
var (
	_ driven.BrowserFactory = (*Factory)(nil)
	_ driven.Browser        = (*Browser)(nil)
)

// SettingsFunc returns the scraper settings to launch a browser with.
type SettingsFunc func() domain.ScraperSettings

// Factory launches one Chrome process per browser.
type Factory struct {
	settings SettingsFunc
	execPath string
}

// NewFactory creates a factory that reads settings at each launch.
// execPath may be empty to let chromedp locate Chrome.
func NewFactory(settings SettingsFunc, execPath string) *Factory {
	return &Factory{settings: settings, execPath: execPath}
}

// allocatorOptions builds the Chrome command line.
func allocatorOptions(s domain.ScraperSettings, execPath string) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", s.Headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.WindowSize(1920, 1080),
	)
	if s.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(s.UserAgent))
	}
	if execPath != "" {
		opts = append(opts, chromedp.ExecPath(execPath))
	}
	return opts
}

// NewBrowser starts Chrome and opens a tab. The browser lives until Close,
// independent of ctx.
func (f *Factory) NewBrowser(ctx context.Context) (driven.Browser, error) {
	s := f.settings()

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.WithoutCancel(ctx), allocatorOptions(s, f.execPath)...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(logger.Debug))

	// The first Run launches the process; it must not carry a deadline.
	if err := chromedp.Run(tabCtx); err != nil {
		tabCancel()
		allocCancel()
		return nil, fmt.Errorf("launch chrome: %w", err)
	}

	logger.Debug("chrome started (headless=%t)", s.Headless)
	return &Browser{
		ctx:    tabCtx,
		cancel: func() { tabCancel(); allocCancel() },
		step:   bound(s.ElementTimeout),
		nav:    bound(s.ResultTimeout),
	}, nil
}

// minTimeout is the smallest bound applied to a browser call.
const minTimeout = time.Millisecond

// bound turns a configured timeout into a usable call bound.
func bound(d time.Duration) time.Duration {
	return max(d, minTimeout)
}

// Browser is one Chrome tab.
type Browser struct {
	ctx    context.Context
	cancel context.CancelFunc

	// step bounds calls made without an explicit timeout; nav bounds Navigate.
	step time.Duration
	nav  time.Duration
}

// run executes actions on the tab. It is bounded by timeout, or by the step
// timeout when timeout is not positive, and stopped early if ctx ends.
func (b *Browser) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	if timeout <= 0 {
		timeout = b.step
	}
	runCtx, cancel := context.WithTimeout(b.ctx, bound(timeout))
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	err := chromedp.Run(runCtx, actions...)
	if err != nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return domain.ErrTimeout
	}
	return err
}

// Navigate loads url and waits for the body.
func (b *Browser) Navigate(ctx context.Context, url string) error {
	return b.run(ctx, b.nav,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
}

// WaitVisible waits for selector, CSS or XPath, to become visible.
func (b *Browser) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	return b.run(ctx, timeout, chromedp.WaitVisible(selector, chromedp.BySearch))
}

// Exists reports whether selector matches any node right now.
func (b *Browser) Exists(ctx context.Context, selector string) (bool, error) {
	var nodes []*cdp.Node
	if err := b.run(ctx, 0, chromedp.Nodes(selector, &nodes, chromedp.BySearch, chromedp.AtLeast(0))); err != nil {
		return false, err
	}
	return len(nodes) > 0, nil
}

// SetValue sets the value of an input or select.
func (b *Browser) SetValue(ctx context.Context, selector, value string) error {
	return b.run(ctx, 0, chromedp.SetValue(selector, value, chromedp.BySearch))
}

// selectByTextJS runs with the select element as this.
const selectByTextJS = `function(text) {
	const want = text.trim().toLowerCase();
	for (const o of this.options) {
		if (o.text.trim().toLowerCase() === want) {
			this.value = o.value;
			this.dispatchEvent(new Event("change", {bubbles: true}));
			return true;
		}
	}
	return false;
}`

// SelectByText chooses the option whose visible text matches text. The
// portal's option values are codes, so names cannot go through SetValue.
func (b *Browser) SelectByText(ctx context.Context, selector, text string) error {
	var matched bool
	pick := chromedp.QueryAfter(selector, func(ctx context.Context, _ runtime.ExecutionContextID, nodes ...*cdp.Node) error {
		if len(nodes) == 0 {
			return fmt.Errorf("%w: %s", domain.ErrElementNotFound, selector)
		}
		return chromedp.CallFunctionOnNode(ctx, nodes[0], selectByTextJS, &matched, text)
	}, chromedp.BySearch)
	if err := b.run(ctx, 0, pick); err != nil {
		return err
	}
	if !matched {
		return fmt.Errorf("%w: option %q in %s", domain.ErrElementNotFound, text, selector)
	}
	return nil
}

// Click clicks the first visible match of selector.
func (b *Browser) Click(ctx context.Context, selector string) error {
	return b.run(ctx, 0, chromedp.Click(selector, chromedp.BySearch, chromedp.NodeVisible))
}

// HTML returns the document's outer HTML.
func (b *Browser) HTML(ctx context.Context) (string, error) {
	var html string
	if err := b.run(ctx, 0, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return html, nil
}

// Close terminates the tab and the Chrome process.
func (b *Browser) Close() error {
	b.cancel()
	return nil
}
