package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/7D-codes/lifeos-core/internal/workspace"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func startWatcher(t *testing.T) (*Watcher, *workspace.Workspace) {
	t.Helper()
	ws := workspace.New(t.TempDir(), nil)
	w, err := New(ws, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(w.Stop)
	return w, ws
}

func waitForEvent(t *testing.T, w *Watcher, path string) Event {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-w.Events():
			if !ok {
				t.Fatal("event channel closed before expected event")
			}
			if ev.Path == path {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event on %s", path)
		}
	}
}

func TestWatcher_TaskRecordChange(t *testing.T) {
	w, ws := startWatcher(t)

	path := filepath.Join(ws.TasksDir(), "t1.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":"t1"}`), 0644))

	ev := waitForEvent(t, w, path)
	assert.Equal(t, "create", ev.Op)

	stats := w.GetStats()
	assert.GreaterOrEqual(t, stats.Created, 1)
}

func TestWatcher_DebouncesRapidWrites(t *testing.T) {
	w, ws := startWatcher(t)

	path := filepath.Join(ws.DailyDir(), "2026-03-17.md")
	require.NoError(t, os.WriteFile(path, []byte("- [ ] a\n"), 0644))
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("- [ ] edited\n"), 0644))
		time.Sleep(10 * time.Millisecond)
	}

	waitForEvent(t, w, path)

	// The burst settled into at most one pending event; nothing further for
	// this path should arrive once the channel goes quiet.
	select {
	case ev, ok := <-w.Events():
		if ok && ev.Path == path {
			t.Errorf("unexpected second event for %s (%s)", ev.Path, ev.Op)
		}
	case <-time.After(1 * time.Second):
	}
}

func TestWatcher_IgnoresUninterestingFiles(t *testing.T) {
	w, ws := startWatcher(t)

	ignored := filepath.Join(ws.TasksDir(), "temp.swp")
	require.NoError(t, os.WriteFile(ignored, []byte("x"), 0644))

	watched := filepath.Join(ws.FactsDir(), "f1.json")
	require.NoError(t, os.WriteFile(watched, []byte(`{"id":"f1"}`), 0644))

	ev := waitForEvent(t, w, watched)
	assert.Equal(t, "create", ev.Op)
}

func TestWatcher_StopClosesEventChannel(t *testing.T) {
	ws := workspace.New(t.TempDir(), nil)
	w, err := New(ws, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())

	w.Stop()

	_, ok := <-w.Events()
	assert.False(t, ok)

	// Stop again is a no-op.
	w.Stop()
}
