package driven

import "context"

// CaptchaSolver answers a challenge image shown on a portal form.
type CaptchaSolver interface {
	// Solve returns the text to enter for the challenge rendered by
	// imageSelector on the current page.
	Solve(ctx context.Context, b Browser, imageSelector string) (string, error)
}
