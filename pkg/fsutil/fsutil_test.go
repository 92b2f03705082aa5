package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/mdspan/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		if err := os.WriteFile(path, []byte("# hi"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		got, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != "# hi" {
			t.Errorf("content = %q, want %q", got, "# hi")
		}
	})

	t.Run("classifies failures", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		big := filepath.Join(dir, "big.md")
		if err := os.WriteFile(big, []byte(strings.Repeat("x", fsutil.MaxFileSize+1)), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		tests := []struct {
			name string
			path string
			want error
		}{
			{"missing", filepath.Join(dir, "missing.md"), fsutil.ErrNotFound},
			{"directory", dir, fsutil.ErrIsDirectory},
			{"too large", big, fsutil.ErrTooLarge},
		}
		for _, tc := range tests {
			_, err := fsutil.ReadFile(context.Background(), tc.path)
			if !errors.Is(err, tc.want) {
				t.Errorf("%s: error = %v, want %v", tc.name, err, tc.want)
			}
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := fsutil.ReadFile(ctx, "whatever.md"); !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}
