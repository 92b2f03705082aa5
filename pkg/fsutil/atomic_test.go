package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/yaklabco/mdspan/pkg/fsutil"
)

func readBack(t *testing.T, path string) string {
	t.Helper()

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	return string(got)
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes and overwrites", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.json")
		ctx := context.Background()

		if err := fsutil.WriteAtomic(ctx, path, []byte("one"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}
		if err := fsutil.WriteAtomic(ctx, path, []byte("two"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}
		if got := readBack(t, path); got != "two" {
			t.Errorf("content = %q, want %q", got, "two")
		}

		if runtime.GOOS != "windows" {
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("stat: %v", err)
			}
			if info.Mode().Perm() != fsutil.DefaultFileMode {
				t.Errorf("mode = %v, want %v", info.Mode().Perm(), fsutil.DefaultFileMode)
			}
		}
	})

	t.Run("leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := fsutil.WriteAtomic(context.Background(), filepath.Join(dir, "a.md"), []byte("x"), 0o600); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("read dir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("expected only the target file, got %d entries", len(entries))
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nope", "a.md")
		if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0); err == nil {
			t.Fatal("expected error for missing directory")
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := filepath.Join(t.TempDir(), "a.md")
		if err := fsutil.WriteAtomic(ctx, path, []byte("x"), 0); !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("file should not exist after cancelled write")
		}
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.json")
	ctx := context.Background()

	steps := []struct {
		content string
		written bool
	}{
		{"first", true},
		{"first", false},
		{"second", true},
	}
	for idx, step := range steps {
		written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte(step.content), 0)
		if err != nil {
			t.Fatalf("step %d: error = %v", idx, err)
		}
		if written != step.written {
			t.Errorf("step %d: written = %v, want %v", idx, written, step.written)
		}
	}
	if got := readBack(t, path); got != "second" {
		t.Errorf("content = %q, want %q", got, "second")
	}
}

func TestWriteNew(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".mdspan.yml")
	ctx := context.Background()

	if err := fsutil.WriteNew(ctx, path, []byte("a"), 0, false); err != nil {
		t.Fatalf("WriteNew() error = %v", err)
	}
	if err := fsutil.WriteNew(ctx, path, []byte("b"), 0, false); !errors.Is(err, fsutil.ErrExists) {
		t.Fatalf("error = %v, want ErrExists", err)
	}
	if got := readBack(t, path); got != "a" {
		t.Errorf("content = %q, want %q", got, "a")
	}
	if err := fsutil.WriteNew(ctx, path, []byte("b"), 0, true); err != nil {
		t.Fatalf("WriteNew(overwrite) error = %v", err)
	}
	if got := readBack(t, path); got != "b" {
		t.Errorf("content = %q, want %q", got, "b")
	}
}
