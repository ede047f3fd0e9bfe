package model

// RadikoLink is the radiko portal URL, rendered as the link of items
// and channels whose source program carried no URL of its own.
const RadikoLink = "https://radiko.jp/"

// PodcastItem carries the tags of one feed item. Title, Enclosure
// and GUID are required; every other field is omitted from the
// rendered document when unset. One instance is built per surviving
// input pair and handed to the document builder in final order.
type PodcastItem struct {
	Title     string
	Enclosure Enclosure
	// GUID is the stored recording's identifier, rendered with
	// isPermaLink="false".
	GUID              string
	PubDate           ProgramTime
	Description       string
	Duration          ItunesDuration
	Link              string
	ItunesImage       string
	ItunesExplicit    bool
	ItunesTitle       string
	ItunesEpisode     int64
	ItunesSeason      int64
	ItunesEpisodeType EpisodeType
	// PodcastTranscript is carried but not rendered.
	// TODO: render a podcast:transcript tag once recordings carry
	// transcript data.
	PodcastTranscript string
	ItunesBlock       bool
}

// LinkOrDefault returns the item link, or the radiko portal when the
// source program carried none.
func (i *PodcastItem) LinkOrDefault() string {
	if i.Link == "" {
		return RadikoLink
	}
	return i.Link
}

// PodcastChannel carries the show-level tags; at most one per feed.
// Title and Description are required. The yaml tags allow a fully
// authored channel to be supplied in the feed spec file instead of
// deriving one from a program record.
type PodcastChannel struct {
	Title            string          `yaml:"title"`
	Description      string          `yaml:"description"`
	ItunesImage      string          `yaml:"image,omitempty"`
	Language         string          `yaml:"language,omitempty"`
	ItunesCategory   *ItunesCategory `yaml:"category,omitempty"`
	ItunesExplicit   bool            `yaml:"explicit,omitempty"`
	ItunesAuthor     string          `yaml:"author,omitempty"`
	Link             string          `yaml:"link,omitempty"`
	ItunesTitle      string          `yaml:"itunesTitle,omitempty"`
	ItunesType       ItunesType      `yaml:"type,omitempty"`
	Copyright        string          `yaml:"copyright,omitempty"`
	ItunesNewFeedURL string          `yaml:"newFeedURL,omitempty"`
	ItunesBlock      bool            `yaml:"block,omitempty"`
	ItunesComplete   bool            `yaml:"complete,omitempty"`
}

// LanguageOrDefault returns the channel language code, defaulting to
// Japanese.
func (c *PodcastChannel) LanguageOrDefault() string {
	if c.Language == "" {
		return "ja"
	}
	return c.Language
}

// LinkOrDefault returns the channel link, or the radiko portal when
// the source program carried none.
func (c *PodcastChannel) LinkOrDefault() string {
	if c.Link == "" {
		return RadikoLink
	}
	return c.Link
}

// Enclosure is the media-file reference attached to a feed item,
// pointing listeners to the downloadable audio or video. Produced
// once per episode and immutable thereafter.
type Enclosure struct {
	URL    string
	Length int64
	Type   string
}
