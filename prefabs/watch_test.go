package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestRelevant(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"yaml write", fsnotify.Event{Name: "prefabs/game.yaml", Op: fsnotify.Write}, true},
		{"yml create", fsnotify.Event{Name: "prefabs/game.YML", Op: fsnotify.Create}, true},
		{"script rename", fsnotify.Event{Name: "prefabs/scripts/enemy_wave.tengo", Op: fsnotify.Rename}, true},
		{"chmod only", fsnotify.Event{Name: "prefabs/game.yaml", Op: fsnotify.Chmod}, false},
		{"editor swap file", fsnotify.Event{Name: "prefabs/.game.yaml.swp", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relevant(tt.event); got != tt.want {
				t.Errorf("relevant(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestWatcherChanged(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if w.Changed(nil) {
		t.Fatal("Changed before any edit")
	}

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, GameFile), []byte("name: x\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !w.Changed(func(err error) { t.Errorf("watch error: %v", err) }) {
		if time.Now().After(deadline) {
			t.Fatal("no change reported for a yaml edit")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
