package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harrison/repoaudit/internal/ignore"
)

func TestRun_FiresOnChange(t *testing.T) {
	dir := t.TempDir()

	changed := make(chan struct{}, 8)
	done := make(chan struct{})
	errCh := make(chan error, 1)

	go func() {
		errCh <- Run(dir, ignore.Default(), 50*time.Millisecond, done, func() {
			changed <- struct{}{}
		})
	}()

	// Give the watcher a moment to register.
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "new.ts"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("onChange not invoked after file creation")
	}

	close(done)
	if err := <-errCh; err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestRun_StopsWhenDone(t *testing.T) {
	dir := t.TempDir()

	done := make(chan struct{})
	errCh := make(chan error, 1)
	go func() {
		errCh <- Run(dir, ignore.Default(), time.Second, done, func() {})
	}()

	close(done)
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after done closed")
	}
}
