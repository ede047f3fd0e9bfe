package model

// Program is one recorded radio program as exported by the recorder.
// Read-only input; the feed assembly never mutates it.
type Program struct {
	// PlatformID and StationID form the first two directory levels
	// under the media root where the recording's media file lives.
	PlatformID string `yaml:"platformId"`
	StationID  string `yaml:"stationId"`
	// EpisodeID is the broadcaster's own episode number. Some
	// platforms assign these monotonically, which makes them usable
	// as a sort key. Not to be confused with the stored recording's
	// identifier (ProgramPair.ID).
	EpisodeID int64 `yaml:"episodeId"`
	// Name is the show name, EpisodeName the title of the single
	// broadcast.
	Name        string      `yaml:"name"`
	EpisodeName string      `yaml:"episodeName"`
	Datetime    ProgramTime `yaml:"datetime"`
	// Duration is the precomputed playback duration in seconds as
	// reported by the recorder. Zero means unknown and the media file
	// is inspected instead.
	Duration    int64  `yaml:"duration,omitempty"`
	Description string `yaml:"description,omitempty"`
	// Information is the broadcaster's long-form program notes, used
	// as fallback when Description is empty.
	Information string `yaml:"information,omitempty"`
	Copyright   string `yaml:"copyright,omitempty"`
	URL         string `yaml:"url,omitempty"`
	ImageURL    string `yaml:"imageUrl,omitempty"`
	IsVideo     bool   `yaml:"isVideo,omitempty"`
}

// ProgramPair couples a recorded program with the identifier it was
// stored under. The ID is the persisted, externally visible identity
// of the recording; it becomes the feed item guid and must never
// change for a stored record.
type ProgramPair struct {
	ID      string  `yaml:"id"`
	Program Program `yaml:"program"`
}
