package cli

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcherReportsSettledChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: a\n"), 0o644))

	fw, err := newFileWatcher(path, 50*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	var changes atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- fw.run(ctx, func(context.Context) { changes.Add(1) })
	}()

	// Neighbouring files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, changes.Load())

	require.NoError(t, os.WriteFile(path, []byte("title: b\n"), 0o644))
	require.Eventually(t, func() bool { return changes.Load() == 1 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestNewFileWatcherMissingDir(t *testing.T) {
	_, err := newFileWatcher(filepath.Join(t.TempDir(), "nope", "deck.yaml"), time.Millisecond)
	assert.Error(t, err)
}

func TestBuildWatchNeedsScript(t *testing.T) {
	_, _, err := execute(t, "build", "--watch", "-o", filepath.Join(t.TempDir(), "d.pptx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch")
}
