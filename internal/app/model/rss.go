package model

import "encoding/xml"

// ItunesNamespace is the xmlns URI of the itunes podcast tags.
const ItunesNamespace = "http://www.itunes.com/dtds/podcast-1.0.dtd"

// Rss mirrors the rendered podcast document for re-parsing: the
// builder adapter's tests and the generate command's completeness
// check unmarshal the rendered XML into it. Namespaced fields are
// declared before their plain twins so unmarshalling routes
// itunes:title and title to the right field.
type Rss struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel struct {
		ItunesTitle   string `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd title"`
		Title         string `xml:"title"`
		Description   string `xml:"description"`
		Link          string `xml:"link"`
		Language      string `xml:"language"`
		Generator     string `xml:"generator"`
		LastBuildDate string `xml:"lastBuildDate"`
		Copyright     string `xml:"copyright"`
		Author        string `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd author"`
		Explicit      string `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd explicit"`
		Type          string `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd type"`
		NewFeedURL    string `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd new-feed-url"`
		Block         string `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd block"`
		Complete      string `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd complete"`
		Image         struct {
			Href string `xml:"href,attr"`
		} `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd image"`
		Category struct {
			Text        string `xml:"text,attr"`
			Subcategory struct {
				Text string `xml:"text,attr"`
			} `xml:"category"`
		} `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd category"`
		Item []RssItem `xml:"item"`
	} `xml:"channel"`
}

type RssItem struct {
	ItunesTitle string `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd title"`
	Title       string `xml:"title"`
	Guid        struct {
		Text        string `xml:",chardata"`
		IsPermaLink string `xml:"isPermaLink,attr"`
	} `xml:"guid"`
	Link        string `xml:"link"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description"`
	Enclosure   struct {
		URL    string `xml:"url,attr"`
		Length int64  `xml:"length,attr"`
		Type   string `xml:"type,attr"`
	} `xml:"enclosure"`
	Duration    string `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd duration"`
	Episode     string `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd episode"`
	Season      string `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd season"`
	EpisodeType string `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd episodeType"`
	Explicit    string `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd explicit"`
	Block       string `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd block"`
	Image       struct {
		Href string `xml:"href,attr"`
	} `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd image"`
}
