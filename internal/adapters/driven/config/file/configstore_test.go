package file

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
	assert.Empty(t, store.Keys())
}

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "ecourts")

	_, err := NewConfigStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigStore_ReadsTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[scraper]
base_url = "https://portal.test/"
live = false
result_timeout = "20s"
requests_per_second = 0.5

[api]
addr = ":8080"
cnr_timeout = 12
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "https://portal.test/", store.GetString("scraper.base_url"))
	assert.False(t, store.GetBool("scraper.live"))
	_, exists := store.Get("scraper.live")
	assert.True(t, exists)
	assert.Equal(t, 20*time.Second, store.GetDuration("scraper.result_timeout"))
	assert.InDelta(t, 0.5, store.GetFloat("scraper.requests_per_second"), 1e-9)
	assert.Equal(t, ":8080", store.GetString("api.addr"))
	assert.Equal(t, 12*time.Second, store.GetDuration("api.cnr_timeout"))
	assert.Equal(t, 12, store.GetInt("api.cnr_timeout"))
}

func TestConfigStore_PersistsAsTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("scraper.live", false))
	require.NoError(t, store.Set("output.dir", "/tmp/out"))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[scraper]")
	assert.Contains(t, string(raw), "[output]")

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.False(t, reopened.GetBool("scraper.live"))
	assert.Equal(t, "/tmp/out", reopened.GetString("output.dir"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save())

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestNewConfigStore_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("[scraper\nlive ="), 0600))

	_, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Set("output.dir", "downloads")
		}()
		go func() {
			defer wg.Done()
			_ = store.GetString("output.dir")
		}()
	}
	wg.Wait()
}

func TestNestMap(t *testing.T) {
	nested := nestMap(map[string]any{"a.b": 1, "a.c": "x", "d": true})

	assert.Equal(t, map[string]any{
		"a": map[string]any{"b": 1, "c": "x"},
		"d": true,
	}, nested)
	assert.Equal(t, map[string]any{"a.b": 1, "a.c": "x", "d": true}, flattenMap(nested, ""))
}

func TestConfigStore_WatchReloads(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- store.Watch(ctx, func() { changed <- struct{}{} })
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(store.Path(), []byte("[scraper]\nlive = false\n"), 0600))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("expected change notification")
	}
	assert.Eventually(t, func() bool {
		_, exists := store.Get("scraper.live")
		return exists
	}, 5*time.Second, 20*time.Millisecond)
	assert.False(t, store.GetBool("scraper.live"))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
