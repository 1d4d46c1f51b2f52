package watcher_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/bento/internal/adapters/watcher"
	"go.trai.ch/bento/internal/core/ports"
)

func TestWatcher_ReportsWritesInSubdirectories(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "1.0")
	require.NoError(t, os.MkdirAll(sub, 0o750))
	target := filepath.Join(sub, "amp-accordion.css")
	require.NoError(t, os.WriteFile(target, []byte(".a{}"), 0o600))

	w, err := watcher.NewFactory(nil).NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	require.NoError(t, w.Start(t.Context(), root, filepath.Join(root, "missing")))

	events := make(chan ports.WatchEvent, 16)
	go func() {
		for ev := range w.Events() {
			events <- ev
		}
	}()

	require.NoError(t, os.WriteFile(target, []byte(".a{color:red}"), 0o600))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Path == target && ev.Operation == ports.OpWrite {
				return
			}
		case <-deadline:
			t.Fatal("no write event received")
		}
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w, err := watcher.NewWatcher(nil)
	require.NoError(t, err)
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
