package ports

import "errors"

var (
	// ports.ErrNotFound is returned when a media file or an episode's
	// media directory does not exist on local disk. Adapters should
	// wrap errors from their storage backend into this sentinel so
	// callers can test with errors.Is.
	ErrNotFound error = errors.New("no such file or directory")
	// ports.ErrUnsupportedFormat is returned when a media file
	// extension is not in the supported container set. Dispatch is by
	// extension only, never by sniffing content.
	ErrUnsupportedFormat error = errors.New("not a supported file type")
	// ports.ErrInvalidArgument is returned for unusable caller input,
	// such as an unknown sort key.
	ErrInvalidArgument error = errors.New("invalid argument")
	// ports.ErrMapping wraps any error raised while building a single
	// episode's feed item. The underlying cause is wrapped alongside
	// it, so errors.Is matches both.
	ErrMapping error = errors.New("unable to map program to feed item")
)
