package ports

import (
	"context"
	"time"
)

// ForInspecting reads playback metadata out of a media container on
// local disk.
type ForInspecting interface {
	// Duration returns the playback duration of the media file at
	// path, truncated to whole seconds. Returns ports.ErrNotFound
	// (wrapped) if path does not exist and ports.ErrUnsupportedFormat
	// (wrapped) if the file extension is not a supported container
	// type. ctx should/could hold an slog.Logger set with the logger
	// adapter package.
	Duration(ctx context.Context, path string) (time.Duration, error)
}
