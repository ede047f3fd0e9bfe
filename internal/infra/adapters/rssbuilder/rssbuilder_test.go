package rssbuilder

import (
	"bytes"
	"context"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/sa6mwa/mkfeed/internal/app/model"
)

func programTime(year int, month time.Month, day, hour int) model.ProgramTime {
	return model.ProgramTime{Time: time.Date(year, month, day, hour, 0, 0, 0, time.UTC)}
}

func TestWriteRSS(t *testing.T) {
	ctx := context.Background()
	b := New()

	channel := &model.PodcastChannel{
		Title:        `R&D <Show> "quoted"`,
		Description:  "Weekly **show** recorded off air.",
		ItunesAuthor: "TBS",
		Copyright:    "(c) TBS RADIO",
		ItunesCategory: &model.ItunesCategory{
			Category:    "Leisure",
			Subcategory: "Animation & Manga",
		},
	}
	if err := b.SetChannel(ctx, channel); err != nil {
		t.Fatalf("SetChannel returned error: %v", err)
	}
	if err := b.SetChannelArtwork(ctx, "https://img.example.com/cover.jpg?a=1&b=2"); err != nil {
		t.Fatalf("SetChannelArtwork returned error: %v", err)
	}

	first := &model.PodcastItem{
		Title: "Episode <202>",
		Enclosure: model.Enclosure{
			URL:    "https://feeds.example.com/media/radiko/TBS/rec-new/media.m4a",
			Length: 4096,
			Type:   "audio/x-m4a",
		},
		GUID:        "rec-new",
		PubDate:     programTime(2024, 5, 8, 21),
		Description: "About R&D <tags> inside",
		Duration:    model.ItunesDuration{Duration: 1754 * time.Second},
		Link:        "https://radiko.jp/share/202",
	}
	if err := b.AddItem(ctx, first); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}
	if err := b.SetItemArtwork(ctx, "https://img.example.com/202.jpg"); err != nil {
		t.Fatalf("SetItemArtwork returned error: %v", err)
	}

	second := &model.PodcastItem{
		Title: "Episode 201",
		Enclosure: model.Enclosure{
			URL:    "https://feeds.example.com/media/radiko/TBS/rec-old/media.mp3",
			Length: 2048,
			Type:   "audio/mpeg",
		},
		GUID:              "rec-old",
		PubDate:           programTime(2024, 5, 1, 21),
		Duration:          model.ItunesDuration{Duration: 2*time.Hour + 3*time.Minute + 4*time.Second},
		ItunesTitle:       "Alt title 201",
		ItunesEpisode:     201,
		ItunesSeason:      2,
		ItunesEpisodeType: model.EpisodeTrailer,
		ItunesExplicit:    true,
		ItunesBlock:       true,
	}
	if err := b.AddItem(ctx, second); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := b.WriteRSS(ctx, &buf); err != nil {
		t.Fatalf("WriteRSS returned error: %v", err)
	}

	var rss model.Rss
	if err := xml.Unmarshal(buf.Bytes(), &rss); err != nil {
		t.Fatalf("rendered document is not parseable: %v\n%s", err, buf.String())
	}

	if got, want := rss.Version, "2.0"; got != want {
		t.Errorf("rss version was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := rss.Channel.Title, channel.Title; got != want {
		t.Errorf("channel title was incorrect, got: %s, want: %s", got, want)
	}
	if !strings.Contains(rss.Channel.Description, "<strong>show</strong>") {
		t.Errorf("channel description was not rendered as html, got: %s", rss.Channel.Description)
	}
	if got, want := rss.Channel.Link, model.RadikoLink; got != want {
		t.Errorf("channel link default was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := rss.Channel.Language, "ja"; got != want {
		t.Errorf("channel language default was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := rss.Channel.Generator, Generator; got != want {
		t.Errorf("generator was incorrect, got: %s, want: %s", got, want)
	}
	if _, err := time.Parse(time.RFC1123Z, rss.Channel.LastBuildDate); err != nil {
		t.Errorf("lastBuildDate %q is not RFC1123Z: %v", rss.Channel.LastBuildDate, err)
	}
	if got, want := rss.Channel.Explicit, "no"; got != want {
		t.Errorf("channel explicit was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := rss.Channel.Type, "episodic"; got != want {
		t.Errorf("channel type was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := rss.Channel.Author, "TBS"; got != want {
		t.Errorf("channel author was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := rss.Channel.Image.Href, "https://img.example.com/cover.jpg?a=1&b=2"; got != want {
		t.Errorf("channel image was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := rss.Channel.Category.Text, "Leisure"; got != want {
		t.Errorf("category was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := rss.Channel.Category.Subcategory.Text, "Animation & Manga"; got != want {
		t.Errorf("subcategory was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := rss.Channel.Block, ""; got != want {
		t.Errorf("channel block should be absent, got: %s", got)
	}
	if got, want := rss.Channel.Complete, ""; got != want {
		t.Errorf("channel complete should be absent, got: %s", got)
	}

	if len(rss.Channel.Item) != 2 {
		t.Fatalf("item count was incorrect, got: %d, want: 2", len(rss.Channel.Item))
	}
	one, two := rss.Channel.Item[0], rss.Channel.Item[1]
	if got, want := one.Title, "Episode <202>"; got != want {
		t.Errorf("first item title was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := one.Guid.Text, "rec-new"; got != want {
		t.Errorf("first item guid was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := one.Guid.IsPermaLink, "false"; got != want {
		t.Errorf("guid isPermaLink was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := one.PubDate, "Wed, 08 May 2024 21:00:00 +0900"; got != want {
		t.Errorf("pubDate was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := one.Description, "About R&D <tags> inside"; got != want {
		t.Errorf("item description was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := one.Enclosure.URL, first.Enclosure.URL; got != want {
		t.Errorf("enclosure url was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := one.Enclosure.Length, int64(4096); got != want {
		t.Errorf("enclosure length was incorrect, got: %d, want: %d", got, want)
	}
	if got, want := one.Enclosure.Type, "audio/x-m4a"; got != want {
		t.Errorf("enclosure type was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := one.Duration, "00:29:14"; got != want {
		t.Errorf("duration was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := one.Link, "https://radiko.jp/share/202"; got != want {
		t.Errorf("item link was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := one.Image.Href, "https://img.example.com/202.jpg"; got != want {
		t.Errorf("item image was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := one.EpisodeType, "full"; got != want {
		t.Errorf("default episode type was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := one.Explicit, "no"; got != want {
		t.Errorf("item explicit was incorrect, got: %s, want: %s", got, want)
	}
	if one.Episode != "" || one.Season != "" || one.Block != "" {
		t.Errorf("optional item tags should be absent, got: %+v", one)
	}

	if got, want := two.Guid.Text, "rec-old"; got != want {
		t.Errorf("second item guid was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := two.Link, model.RadikoLink; got != want {
		t.Errorf("item link default was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := two.Duration, "02:03:04"; got != want {
		t.Errorf("duration was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := two.ItunesTitle, "Alt title 201"; got != want {
		t.Errorf("itunes title was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := two.Episode, "201"; got != want {
		t.Errorf("episode number was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := two.Season, "2"; got != want {
		t.Errorf("season was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := two.EpisodeType, "trailer"; got != want {
		t.Errorf("episode type was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := two.Explicit, "yes"; got != want {
		t.Errorf("item explicit was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := two.Block, "Yes"; got != want {
		t.Errorf("item block was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := two.Description, ""; got != want {
		t.Errorf("empty description should be absent, got: %s", got)
	}
}

func TestWriteRSSChannelBlockAndComplete(t *testing.T) {
	ctx := context.Background()
	b := New()
	channel := &model.PodcastChannel{
		Title:          "Show",
		Description:    "About the show",
		ItunesBlock:    true,
		ItunesComplete: true,
		ItunesType:     model.Serial,
		Language:       "en",
		Link:           "https://shows.example.com/",
	}
	if err := b.SetChannel(ctx, channel); err != nil {
		t.Fatalf("SetChannel returned error: %v", err)
	}
	var buf bytes.Buffer
	if err := b.WriteRSS(ctx, &buf); err != nil {
		t.Fatalf("WriteRSS returned error: %v", err)
	}
	var rss model.Rss
	if err := xml.Unmarshal(buf.Bytes(), &rss); err != nil {
		t.Fatalf("rendered document is not parseable: %v", err)
	}
	if got, want := rss.Channel.Block, "Yes"; got != want {
		t.Errorf("channel block was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := rss.Channel.Complete, "Yes"; got != want {
		t.Errorf("channel complete was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := rss.Channel.Type, "serial"; got != want {
		t.Errorf("channel type was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := rss.Channel.Language, "en"; got != want {
		t.Errorf("channel language was incorrect, got: %s, want: %s", got, want)
	}
	if got, want := rss.Channel.Link, "https://shows.example.com/"; got != want {
		t.Errorf("channel link was incorrect, got: %s, want: %s", got, want)
	}
	if len(rss.Channel.Item) != 0 {
		t.Errorf("item count was incorrect, got: %d, want: 0", len(rss.Channel.Item))
	}
}

func TestBuilderOrdering(t *testing.T) {
	ctx := context.Background()
	b := New()

	if err := b.SetChannelArtwork(ctx, "https://img.example.com/cover.jpg"); err == nil {
		t.Error("SetChannelArtwork before SetChannel returned no error")
	}
	if err := b.SetItemArtwork(ctx, "https://img.example.com/item.jpg"); err == nil {
		t.Error("SetItemArtwork before AddItem returned no error")
	}
	var buf bytes.Buffer
	if err := b.WriteRSS(ctx, &buf); err == nil {
		t.Error("WriteRSS without channel returned no error")
	}
	if err := b.SetChannel(ctx, nil); err == nil {
		t.Error("SetChannel with nil channel returned no error")
	}
	if err := b.SetChannel(ctx, &model.PodcastChannel{Title: "No description"}); err == nil {
		t.Error("SetChannel without description returned no error")
	}
	if err := b.AddItem(ctx, nil); err == nil {
		t.Error("AddItem with nil item returned no error")
	}
	if err := b.AddItem(ctx, &model.PodcastItem{Title: "No guid", Enclosure: model.Enclosure{URL: "https://x"}}); err == nil {
		t.Error("AddItem without guid returned no error")
	}
	if err := b.AddItem(ctx, &model.PodcastItem{Title: "No enclosure", GUID: "rec-1"}); err == nil {
		t.Error("AddItem without enclosure returned no error")
	}
}
