package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	if w.debounce != 100*time.Millisecond {
		t.Errorf("default debounce = %v, want 100ms", w.debounce)
	}
}

func TestNew_WithOptions(t *testing.T) {
	w, err := New(WithDebounce(50 * time.Millisecond))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	if w.debounce != 50*time.Millisecond {
		t.Errorf("debounce = %v, want 50ms", w.debounce)
	}
}

func TestOperation_String(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpWrite, "write"},
		{OpCreate, "create"},
		{OpRemove, "remove"},
		{OpRename, "rename"},
		{Operation(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestWatcher_WatchUnwatch(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a.toml")
	b := filepath.Join(tmpDir, "b.toml")

	w, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	if err := w.Watch(a); err != nil {
		t.Fatalf("Watch(a) error = %v", err)
	}
	if err := w.Watch(b); err != nil {
		t.Fatalf("Watch(b) error = %v", err)
	}
	if err := w.Watch(a); err != nil {
		t.Errorf("second Watch(a) error = %v", err)
	}
	if got := w.WatchedFiles(); len(got) != 2 {
		t.Errorf("WatchedFiles() = %v, want 2 files", got)
	}
	if w.dirs[tmpDir] != 2 {
		t.Errorf("directory refcount = %d, want 2", w.dirs[tmpDir])
	}

	if err := w.Unwatch(a); err != nil {
		t.Errorf("Unwatch(a) error = %v", err)
	}
	if err := w.Unwatch(a); err != ErrNotWatching {
		t.Errorf("second Unwatch(a) error = %v, want ErrNotWatching", err)
	}
	if err := w.Unwatch(b); err != nil {
		t.Errorf("Unwatch(b) error = %v", err)
	}
	if len(w.dirs) != 0 {
		t.Errorf("dirs = %v, want empty", w.dirs)
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	if err := w.Watch(filepath.Join(t.TempDir(), "nope", "keys.toml")); err == nil {
		t.Error("Watch() in a missing directory should fail")
	}
}

func TestWatcher_Closed(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := w.Watch("x.toml"); err != ErrWatcherClosed {
		t.Errorf("Watch() after Close = %v, want ErrWatcherClosed", err)
	}
}

func TestWatcher_DetectsWritesDebounced(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "keys.toml")
	other := filepath.Join(tmpDir, "other.toml")
	if err := os.WriteFile(path, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(WithDebounce(50 * time.Millisecond))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	var mu sync.Mutex
	var events []Event
	w.OnChange(func(ev Event) {
		mu.Lock()
		events = append(events, ev)
		mu.Unlock()
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte{byte('a' + i)}, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(other, []byte("ignored"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		n := len(events)
		mu.Unlock()
		if n > 0 || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	// Allow a stray second batch to arrive before counting.
	time.Sleep(150 * time.Millisecond)

	cancel()
	if err := <-done; err != context.Canceled {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(events) == 0 {
		t.Fatal("no change event delivered")
	}
	if len(events) > 2 {
		t.Errorf("got %d events for one burst of writes, want debounced delivery", len(events))
	}
	for _, ev := range events {
		if ev.Path != path {
			t.Errorf("event for unwatched path %q", ev.Path)
		}
	}
}

func TestWatcher_RunStopsOnClose(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- w.Run(context.Background()) }()

	_ = w.Close()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after Close")
	}
}
