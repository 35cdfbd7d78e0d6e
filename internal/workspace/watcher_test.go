package workspace

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherRescansAfterWrite(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "first.md", "---\ntitle: First\nagency: Labor\n---\n")

	w, err := NewWatcher(dir, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Stop()

	writeDoc(t, dir, "second.md", "---\ntitle: Second\nagency: Labor\n---\n")

	select {
	case evt := <-w.Events():
		require.NoError(t, evt.Err)
		assert.Len(t, evt.Documents, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("no workspace event after write")
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(dir, 100*time.Millisecond)
	require.NoError(t, err)
	defer w.Stop()

	for i := 0; i < 5; i++ {
		writeDoc(t, dir, "burst.md", "---\ntitle: Burst\n---\n")
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case evt := <-w.Events():
		require.NoError(t, evt.Err)
		assert.Len(t, evt.Documents, 1)
	case <-time.After(5 * time.Second):
		t.Fatal("no workspace event after burst")
	}

	// The burst should have collapsed into one pending rescan, maybe two if a
	// write straddled the debounce window, but the channel drains quickly.
	drained := 0
	for {
		select {
		case <-w.Events():
			drained++
		case <-time.After(300 * time.Millisecond):
			assert.LessOrEqual(t, drained, 1)
			return
		}
	}
}

func TestWatcherPicksUpNewSubdirectories(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(dir, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Stop()

	sub := filepath.Join(dir, "archive")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	writeDoc(t, dir, "archive/old.md", "---\ntitle: Old\n---\n")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case evt := <-w.Events():
			if len(evt.Documents) == 1 {
				return
			}
		case <-deadline:
			t.Fatal("document in new subdirectory never appeared")
		}
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(dir, 50*time.Millisecond)
	require.NoError(t, err)
	w.Stop()

	select {
	case _, ok := <-w.Events():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("events channel did not close after Stop")
	}
}
