// inspector implements the ports.ForInspecting interface by reading
// the container metadata of recorded media files.
package inspector

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/alfg/mp4"
	"github.com/sa6mwa/mkfeed/internal/app/model"
	"github.com/sa6mwa/mkfeed/internal/app/ports"
	"github.com/sa6mwa/mkfeed/internal/infra/adapters/logger"
	"github.com/sa6mwa/mp3duration"
)

type forInspecting struct{}

func New() ports.ForInspecting {
	return &forInspecting{}
}

// Duration derives the playback duration of the media file at path
// from its container metadata, truncated to whole seconds. The
// reader is selected by file extension through model.MediaFormats.
func (p *forInspecting) Duration(ctx context.Context, path string) (time.Duration, error) {
	l := logger.FromContext(ctx)
	format, ok := model.FormatFor(path)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ports.ErrUnsupportedFormat, filepath.Ext(path))
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("%w: %s", ports.ErrNotFound, path)
		}
		return 0, err
	}
	var d time.Duration
	var err error
	switch format.Reader {
	case model.ReaderMP3:
		d, err = mp3Duration(path)
	case model.ReaderMP4:
		d, err = mp4Duration(path)
	default:
		return 0, fmt.Errorf("%w: no duration reader for %s, the program record needs a precomputed duration",
			ports.ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return 0, err
	}
	d = d.Truncate(time.Second)
	l.Debug("Derived media duration", "file", path, "duration", mp3duration.FormatDuration(d))
	return d, nil
}

func mp3Duration(path string) (time.Duration, error) {
	di, err := mp3duration.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return di.TimeDuration, nil
}

// mp4Duration reads the mvhd box of an ISO base media file. The box
// stores the duration in timescale units, not milliseconds, so it is
// divided by the timescale to get seconds.
func mp4Duration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return 0, err
	}
	v, err := mp4.OpenFromReader(f, fi.Size())
	if err != nil {
		return 0, err
	}
	if v == nil || v.Moov == nil || v.Moov.Mvhd == nil {
		return 0, fmt.Errorf("%s does not contain a moov mvhd box (maybe not an mp4?)", path)
	}
	if v.Moov.Mvhd.Timescale == 0 {
		return 0, fmt.Errorf("%s has a zero timescale in its mvhd box", path)
	}
	seconds := float64(v.Moov.Mvhd.Duration) / float64(v.Moov.Mvhd.Timescale)
	return time.Duration(seconds * float64(time.Second)), nil
}
