package driven

import (
	"context"
	"time"
)

// Browser drives a single page of the portal.
// Selectors may be CSS or XPath. A Browser is owned by one retrieval and is
// not safe for concurrent use.
type Browser interface {
	// Navigate loads url and waits for the document to be ready.
	Navigate(ctx context.Context, url string) error

	// WaitVisible blocks until selector matches a visible element or timeout
	// elapses. Returns domain.ErrTimeout on expiry.
	WaitVisible(ctx context.Context, selector string, timeout time.Duration) error

	// Exists reports whether selector currently matches any element.
	// It does not wait.
	Exists(ctx context.Context, selector string) (bool, error)

	// SetValue replaces the value of the matched input or select element.
	SetValue(ctx context.Context, selector, value string) error

	// SelectByText chooses the option of the matched select element whose
	// visible text equals text, ignoring case and surrounding space.
	// Returns domain.ErrElementNotFound when no option matches.
	SelectByText(ctx context.Context, selector, text string) error

	// Click clicks the first element matching selector.
	Click(ctx context.Context, selector string) error

	// HTML returns the outer HTML of the current document.
	HTML(ctx context.Context) (string, error)

	// Close releases the page and its browser process.
	Close() error
}

// BrowserFactory creates browsers. Each call yields an independent browser.
type BrowserFactory interface {
	NewBrowser(ctx context.Context) (Browser, error)
}
