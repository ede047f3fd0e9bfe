package inspector

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sa6mwa/mkfeed/internal/app/ports"
)

func TestDurationErrors(t *testing.T) {
	dir := t.TempDir()
	mov := filepath.Join(dir, "media.mov")
	if err := os.WriteFile(mov, []byte("not really a movie"), 0644); err != nil {
		t.Fatal(err)
	}
	unknown := filepath.Join(dir, "media.xyz")
	if err := os.WriteFile(unknown, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	tables := []struct {
		name string
		path string
		want error
	}{
		{
			name: "unknown extension",
			path: unknown,
			want: ports.ErrUnsupportedFormat,
		},
		{
			name: "container without a duration reader",
			path: mov,
			want: ports.ErrUnsupportedFormat,
		},
		{
			name: "missing mp3",
			path: filepath.Join(dir, "void", "media.mp3"),
			want: ports.ErrNotFound,
		},
		{
			name: "missing m4a",
			path: filepath.Join(dir, "void", "media.m4a"),
			want: ports.ErrNotFound,
		},
	}

	i := New()
	for _, table := range tables {
		_, err := i.Duration(context.Background(), table.path)
		if err == nil {
			t.Errorf("%s: Duration returned no error", table.name)
			continue
		}
		if !errors.Is(err, table.want) {
			t.Errorf("%s: error %v does not match %v", table.name, err, table.want)
		}
	}
}
