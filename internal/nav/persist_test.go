package nav

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSaveLoadStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "nav.json")
	tree := New(sampleForest())
	tree.Toggle("a")
	tree.SaveState(path)

	restored := New(sampleForest())
	restored.LoadState(path)
	if got := restored.ExpandedIDs(); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("expected expansion restored, got %v", got)
	}
}

func TestLoadStateMissingFileKeepsDefaults(t *testing.T) {
	tree := New(sampleForest())
	tree.LoadState(filepath.Join(t.TempDir(), "absent.json"))
	if got := tree.ExpandedIDs(); len(got) != 0 {
		t.Fatalf("expected empty expansion set, got %v", got)
	}
}

func TestLoadStateCorruptFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nav.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	tree := New(sampleForest())
	tree.Toggle("a")
	tree.LoadState(path)
	if got := tree.ExpandedIDs(); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("expected state untouched by corrupt file, got %v", got)
	}
}

func TestLoadStateVersionMismatchIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nav.json")
	if err := os.WriteFile(path, []byte(`{"version":99,"expanded":["a"]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	tree := New(sampleForest())
	tree.LoadState(path)
	if got := tree.ExpandedIDs(); len(got) != 0 {
		t.Fatalf("expected mismatched version ignored, got %v", got)
	}
}

func TestSaveStateEmptyPathIsNoop(t *testing.T) {
	tree := New(sampleForest())
	tree.SaveState("")
}
