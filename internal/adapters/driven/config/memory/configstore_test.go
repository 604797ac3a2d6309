package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_Seeded(t *testing.T) {
	store := NewConfigStore(map[string]any{
		"scraper.live":                false,
		"scraper.result_timeout":      "20s",
		"scraper.requests_per_second": 2.5,
	})

	v, ok := store.Get("scraper.live")
	require.True(t, ok)
	assert.Equal(t, false, v)
	assert.Equal(t, 20*time.Second, store.GetDuration("scraper.result_timeout"))
	assert.InDelta(t, 2.5, store.GetFloat("scraper.requests_per_second"), 1e-9)
}

func TestConfigStore_SetAndKeys(t *testing.T) {
	store := NewConfigStore(nil)

	require.NoError(t, store.Set("output.dir", "out"))
	require.NoError(t, store.Set("api.addr", ":8080"))

	assert.Equal(t, "out", store.GetString("output.dir"))
	assert.Equal(t, []string{"api.addr", "output.dir"}, store.Keys())
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
}

func TestConfigStore_MissingKeys(t *testing.T) {
	store := NewConfigStore(nil)

	assert.Equal(t, "", store.GetString("nope"))
	assert.Equal(t, 0, store.GetInt("nope"))
	assert.False(t, store.GetBool("nope"))
	assert.Zero(t, store.GetDuration("nope"))
}
