package feeder

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/sa6mwa/mkfeed/internal/app/model"
	"github.com/sa6mwa/mkfeed/internal/app/ports"
)

// mediaPrefix is the URL path all enclosures are served under,
// relative to the base URL.
const mediaPrefix = "media/"

// ResolveEnclosure derives the publishable enclosure for the media
// file at path: the URL (path made relative to mediaRoot, each
// segment percent-encoded, joined under "media/" onto baseURL with
// standard reference resolution), the length (file size in bytes)
// and the MIME type (extension table plus the program's is-video
// flag).
func ResolveEnclosure(path string, isVideo bool, baseURL, mediaRoot string) (model.Enclosure, error) {
	u, err := enclosureURL(path, baseURL, mediaRoot)
	if err != nil {
		return model.Enclosure{}, err
	}
	length, err := enclosureLength(path)
	if err != nil {
		return model.Enclosure{}, err
	}
	contentType, err := enclosureType(path, isVideo)
	if err != nil {
		return model.Enclosure{}, err
	}
	return model.Enclosure{URL: u, Length: length, Type: contentType}, nil
}

func enclosureURL(path, baseURL, mediaRoot string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("unable to parse base URL %q: %w", baseURL, err)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	absRoot, err := filepath.Abs(mediaRoot)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return "", fmt.Errorf("%s is not relative to media root %s: %w", path, mediaRoot, err)
	}
	segments := strings.Split(filepath.ToSlash(rel), "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	ref, err := url.Parse(mediaPrefix + strings.Join(segments, "/"))
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}

func enclosureLength(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("%w: %s", ports.ErrNotFound, path)
		}
		return 0, err
	}
	return fi.Size(), nil
}

func enclosureType(path string, isVideo bool) (string, error) {
	format, ok := model.FormatFor(path)
	if !ok {
		return "", fmt.Errorf("%w: %s", ports.ErrUnsupportedFormat, filepath.Ext(path))
	}
	return format.MIME(isVideo), nil
}
