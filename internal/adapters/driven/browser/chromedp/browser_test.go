package chromedp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
)

func TestAllocatorOptions(t *testing.T) {
	s := domain.DefaultSettings().Scraper
	base := len(allocatorOptions(domain.ScraperSettings{}, ""))

	assert.Equal(t, base+1, len(allocatorOptions(s, "")), "user agent adds an option")
	assert.Equal(t, base+2, len(allocatorOptions(s, "/usr/bin/chromium")), "exec path adds an option")
}

func TestNewFactory_ReadsSettingsPerLaunch(t *testing.T) {
	calls := 0
	f := NewFactory(func() domain.ScraperSettings {
		calls++
		return domain.ScraperSettings{}
	}, "")

	assert.NotNil(t, f)
	assert.Zero(t, calls)
}

func TestBound(t *testing.T) {
	assert.Equal(t, minTimeout, bound(0))
	assert.Equal(t, minTimeout, bound(2*time.Nanosecond))
	assert.Equal(t, 10*time.Second, bound(10*time.Second))
}
