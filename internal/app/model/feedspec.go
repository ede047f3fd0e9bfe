package model

// FeedSpec is the aggregate the command line tool consumes: runtime
// configuration, an optional authored channel, and the recorded
// programs to publish.
type FeedSpec struct {
	Config Config `yaml:"config"`
	// Channel, when present, is used as-is instead of deriving the
	// channel tags from a program record.
	Channel  *PodcastChannel `yaml:"channel,omitempty"`
	Programs []ProgramPair   `yaml:"programs"`
}

type Config struct {
	// BaseURL is the public URL the feed and media are served under.
	// The trailing slash matters: enclosure URLs are resolved against
	// it with standard URL reference resolution.
	BaseURL string `yaml:"baseURL"`
	// MediaRoot is the recorder's output directory, laid out as
	// <mediaRoot>/<platformId>/<stationId>/<id>/media.<ext>.
	MediaRoot string `yaml:"mediaRoot"`
	// Output is the file the rendered document is written to.
	Output string `yaml:"output,omitempty"`
	// SortBy selects the item order: "datetime", "episode_id" or
	// empty to let the assembler pick per its station policy.
	SortBy     string `yaml:"sortBy,omitempty"`
	FromOldest bool   `yaml:"fromOldest,omitempty"`
	// KeepDuplicates disables duplicate suppression; duplicates are
	// removed by default.
	KeepDuplicates bool      `yaml:"keepDuplicates,omitempty"`
	Aws            AwsConfig `yaml:"aws,omitempty"`
}

// This is only for the configuration, not implementing AWS handler
// logic.
type AwsConfig struct {
	Profile string `yaml:"profile,omitempty"`
	Region  string `yaml:"region,omitempty"`
	// Bucket is where the rendered feed document is published.
	Bucket       string `yaml:"bucket,omitempty"`
	StorageClass string `yaml:"storageClass,omitempty"`
}

// GetStorageClass returns the configured storage class for the
// publish bucket, defaulting to STANDARD.
func (a *AwsConfig) GetStorageClass() string {
	if a.StorageClass == "" {
		return "STANDARD"
	}
	return a.StorageClass
}
