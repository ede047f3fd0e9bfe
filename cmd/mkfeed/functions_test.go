package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sa6mwa/mkfeed/internal/app/model"
	"github.com/sa6mwa/mkfeed/internal/app/ports"
)

type stubInspector struct {
	d   time.Duration
	err error
}

func (s *stubInspector) Duration(ctx context.Context, path string) (time.Duration, error) {
	return s.d, s.err
}

func TestValidateSpec(t *testing.T) {
	tables := []struct {
		name      string
		baseURL   string
		bucket    string
		uploading bool
		wantErr   bool
	}{
		{"complete", "https://feeds.example.com/", "my-bucket", true, false},
		{"no upload needs no bucket", "https://feeds.example.com/", "", false, false},
		{"empty baseURL", "", "my-bucket", false, true},
		{"uploading without bucket", "https://feeds.example.com/", "", true, true},
	}
	for _, table := range tables {
		spec := &model.FeedSpec{}
		spec.Config.BaseURL = table.baseURL
		spec.Config.Aws.Bucket = table.bucket
		err := validateSpec(spec, "feedspec.yaml", table.uploading)
		if gotErr := err != nil; gotErr != table.wantErr {
			t.Errorf("validateSpec %s was incorrect, got: %v, want error: %t", table.name, err, table.wantErr)
		}
	}
}

func TestValidateRendered(t *testing.T) {
	tables := []struct {
		name     string
		document string
		wantErr  bool
	}{
		{"complete", `<rss version="2.0"><channel><title>T</title><item><title>i</title></item></channel></rss>`, false},
		{"not xml", `{"rss": true}`, true},
		{"no channel title", `<rss version="2.0"><channel><item><title>i</title></item></channel></rss>`, true},
		{"no items", `<rss version="2.0"><channel><title>T</title></channel></rss>`, true},
	}
	for _, table := range tables {
		err := validateRendered([]byte(table.document))
		if gotErr := err != nil; gotErr != table.wantErr {
			t.Errorf("validateRendered %s was incorrect, got: %v, want error: %t", table.name, err, table.wantErr)
		}
	}
}

func TestInspectLine(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	mp3 := filepath.Join(dir, "media.mp3")
	if err := os.WriteFile(mp3, make([]byte, 2048), 0644); err != nil {
		t.Fatal(err)
	}
	line, err := inspectLine(ctx, &stubInspector{d: 2*time.Hour + 3*time.Minute + 4*time.Second}, mp3, false)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"duration 02:03:04", "size 2.0 KiB", "type audio/mpeg", "detected application/octet-stream"} {
		if !strings.Contains(line, want) {
			t.Errorf("inspect line was incorrect, got: %s, want substring: %s", line, want)
		}
	}

	mov := filepath.Join(dir, "media.mov")
	if err := os.WriteFile(mov, make([]byte, 1024), 0644); err != nil {
		t.Fatal(err)
	}
	line, err = inspectLine(ctx, &stubInspector{err: ports.ErrUnsupportedFormat}, mov, true)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"duration unknown", "size 1.0 KiB", "type video/quicktime"} {
		if !strings.Contains(line, want) {
			t.Errorf("inspect line was incorrect, got: %s, want substring: %s", line, want)
		}
	}

	if _, err := inspectLine(ctx, &stubInspector{}, filepath.Join(dir, "missing.mp3"), false); err == nil {
		t.Error("inspectLine on a missing file should fail")
	}
}
