package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
)

func TestPath_String(t *testing.T) {
	assert.Equal(t, "live", PathLive.String())
	assert.Equal(t, "fallback", PathFallback.String())
}

func TestPortal_ConfigureUpdatesLimiter(t *testing.T) {
	p := NewPortal(liveSettings(), nil, nil)
	assert.Equal(t, rate.Inf, p.limiter.Limit())

	s := liveSettings()
	s.RequestsPerSecond = 2
	p.Configure(s)

	assert.Equal(t, rate.Limit(2), p.limiter.Limit())
	assert.InDelta(t, 2.0, p.Settings().RequestsPerSecond, 1e-9)
}

func TestPortal_OpenRespectsLiveSwitch(t *testing.T) {
	settings := liveSettings()
	settings.Live = false
	factory := &mockBrowserFactory{newPage: cnrPage}
	p := newTestPortal(settings, factory, nil)

	_, err := p.open(context.Background(), "https://portal.test/")

	assert.ErrorIs(t, err, domain.ErrLiveDisabled)
	assert.Zero(t, factory.count())
}

func TestPortal_OpenThrottlesNavigation(t *testing.T) {
	settings := liveSettings()
	settings.RequestsPerSecond = 20
	factory := &mockBrowserFactory{newPage: cnrPage}
	p := newTestPortal(settings, factory, nil)

	start := time.Now()
	for i := 0; i < 3; i++ {
		pg, err := p.open(context.Background(), "https://portal.test/")
		require.NoError(t, err)
		pg.close()
	}

	// Burst of one: the second and third navigations each wait ~50ms.
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
}

func TestPage_SolveCaptchaWithoutSolver(t *testing.T) {
	b := cnrPage()
	pg := &page{browser: b, settings: liveSettings()}

	pg.solveCaptcha(context.Background())

	assert.Empty(t, b.values)
}

func TestPage_LocateClampsTinyTimeouts(t *testing.T) {
	b := cnrPage()
	s := liveSettings()
	s.ElementTimeout = 2 * time.Nanosecond
	pg := &page{browser: b, settings: s}

	_, err := pg.locate(context.Background(), "CNR input", cnrInputSelectors)

	require.NoError(t, err)
	require.NotEmpty(t, b.waits)
	for _, w := range b.waits {
		assert.GreaterOrEqual(t, w, minStepTimeout)
	}
}

func TestPage_SubmitClampsResultTimeout(t *testing.T) {
	b := cnrPage()
	s := liveSettings()
	s.ResultTimeout = 0
	pg := &page{browser: b, settings: s}

	require.NoError(t, pg.submit(context.Background(), cnrSubmitSelectors))

	require.Len(t, b.waits, 1)
	assert.Equal(t, minStepTimeout, b.waits[0])
}

func TestPage_StepIsBounded(t *testing.T) {
	s := liveSettings()
	s.ElementTimeout = 0
	pg := &page{settings: s}

	ctx, cancel := pg.step(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(minStepTimeout), deadline, time.Second)
}
