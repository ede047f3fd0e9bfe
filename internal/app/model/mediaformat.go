package model

import (
	"path/filepath"
	"strings"
)

// MediaReader selects the metadata reader used to derive playback
// duration for a container extension.
type MediaReader int

const (
	// ReaderNone marks containers the inspector cannot read; episodes
	// stored in them need a precomputed duration from the recorder.
	ReaderNone MediaReader = iota
	// ReaderMP3 reads MPEG audio frames.
	ReaderMP3
	// ReaderMP4 reads the mvhd box of an ISO base media file. The
	// legacy .m4a audio container is the same format and shares this
	// reader.
	ReaderMP4
)

// MediaFormat describes how one container extension is read and
// published. AudioMIME and VideoMIME differ only for containers that
// can carry either kind of track.
type MediaFormat struct {
	Reader    MediaReader
	AudioMIME string
	VideoMIME string
}

// MIME returns the enclosure content type for the format given the
// program's is-video flag.
func (f MediaFormat) MIME(isVideo bool) string {
	if isVideo {
		return f.VideoMIME
	}
	return f.AudioMIME
}

// MediaFormats is the supported container set keyed by lowercased
// file extension including the dot. All format dispatch goes through
// this table by extension; file content is never sniffed.
var MediaFormats = map[string]MediaFormat{
	".mp3": {Reader: ReaderMP3, AudioMIME: "audio/mpeg", VideoMIME: "audio/mpeg"},
	".m4a": {Reader: ReaderMP4, AudioMIME: "audio/x-m4a", VideoMIME: "audio/x-m4a"},
	".mp4": {Reader: ReaderMP4, AudioMIME: "audio/x-m4a", VideoMIME: "video/mp4"},
	".mov": {Reader: ReaderNone, AudioMIME: "video/quicktime", VideoMIME: "video/quicktime"},
}

// FormatFor looks up the media format for path by its extension.
func FormatFor(path string) (MediaFormat, bool) {
	f, ok := MediaFormats[strings.ToLower(filepath.Ext(path))]
	return f, ok
}
