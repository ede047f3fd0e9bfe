// Package feeder assembles recorded radio programs into a podcast
// feed document: it selects a sort key, sorts and deduplicates the
// programs, derives the channel tags, maps every surviving program
// to a feed item and hands everything to a document builder in final
// order.
package feeder

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/sa6mwa/mkfeed/internal/app/model"
	"github.com/sa6mwa/mkfeed/internal/app/ports"
)

// Sort keys accepted by Assemble.
const (
	SortByDatetime  = "datetime"
	SortByEpisodeID = "episode_id"
)

// Stations known to assign monotonically increasing episode ids. A
// feed built from a single such station sorts by episode id.
var episodeIDStations = []string{"onsen.ag", "hibiki-radio.jp"}

// Assembler builds podcast feeds for media stored under one media
// root and published under one base URL.
type Assembler struct {
	baseURL   string
	mediaRoot string
	inspector ports.ForInspecting
	logger    *slog.Logger
}

type Option func(*Assembler)

// WithLogger injects the structured logger used for assembly
// progress and failure reporting. Without it the process default
// logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(a *Assembler) {
		if l != nil {
			a.logger = l
		}
	}
}

// New returns an Assembler for media under mediaRoot published at
// baseURL. The inspector derives playback durations for programs
// the recorder stored without one.
func New(baseURL, mediaRoot string, inspector ports.ForInspecting, options ...Option) *Assembler {
	a := &Assembler{
		baseURL:   baseURL,
		mediaRoot: mediaRoot,
		inspector: inspector,
		logger:    slog.Default(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Options control a single Assemble pass.
type Options struct {
	// SortBy is "datetime", "episode_id", or empty to let the station
	// policy choose.
	SortBy string
	// FromOldest orders ascending instead of the default descending.
	FromOldest bool
	// RemoveDuplicates suppresses adjacent duplicates after sorting.
	RemoveDuplicates bool
	// Channel is used as-is when non-nil instead of deriving the
	// channel tags from the most recent program.
	Channel *model.PodcastChannel
}

// Assemble sorts, deduplicates and maps pairs into builder. The item
// order in the document equals the post-sort, post-dedup sequence.
// Any failure while mapping a single program aborts the whole run;
// the offending program and the cause are logged and the error is
// returned wrapped in ports.ErrMapping. No partial feed is usable
// after an error.
func (a *Assembler) Assemble(ctx context.Context, pairs []model.ProgramPair, builder ports.ForBuilding, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	if len(pairs) == 0 {
		return fmt.Errorf("%w: no programs to assemble", ports.ErrInvalidArgument)
	}
	sortBy := opts.SortBy
	switch sortBy {
	case SortByDatetime, SortByEpisodeID:
	case "":
		sortBy = chooseSortBy(pairs)
		a.logger.Debug("selected sort key", "sortBy", sortBy)
	default:
		return fmt.Errorf("%w: %q is not a supported sort key, select %q or %q",
			ports.ErrInvalidArgument, opts.SortBy, SortByDatetime, SortByEpisodeID)
	}

	sorted := make([]model.ProgramPair, len(pairs))
	copy(sorted, pairs)
	sortPairs(sorted, sortBy, opts.FromOldest)

	if opts.RemoveDuplicates {
		var removed int
		sorted, removed = dedupPairs(sorted)
		if removed > 0 {
			a.logger.Info(fmt.Sprintf("found and removed %d duplicates", removed))
		}
	}

	channel := opts.Channel
	if channel == nil {
		mostRecent := &sorted[0].Program
		if opts.FromOldest {
			mostRecent = &sorted[len(sorted)-1].Program
		}
		channel = channelFromProgram(mostRecent)
	}
	if err := builder.SetChannel(ctx, channel); err != nil {
		return err
	}
	if channel.ItunesImage != "" {
		if err := builder.SetChannelArtwork(ctx, channel.ItunesImage); err != nil {
			return err
		}
	}

	for i := range sorted {
		pair := &sorted[i]
		if err := a.appendItem(ctx, builder, &pair.Program, pair.ID); err != nil {
			err = fmt.Errorf("%w: %w", ports.ErrMapping, err)
			a.logger.Error("unable to assemble feed item", "error", err, "program", pair.Program)
			return err
		}
	}
	return nil
}

func (a *Assembler) appendItem(ctx context.Context, builder ports.ForBuilding, p *model.Program, id string) error {
	item, err := a.itemFromProgram(ctx, p, id)
	if err != nil {
		return err
	}
	if err := builder.AddItem(ctx, item); err != nil {
		return err
	}
	if item.ItunesImage != "" {
		return builder.SetItemArtwork(ctx, item.ItunesImage)
	}
	return nil
}

// chooseSortBy picks the sort key for a program set: mixed stations
// sort by datetime (episode ids are not comparable across stations),
// a single allow-listed station sorts by its monotonic episode ids,
// anything else by datetime.
func chooseSortBy(pairs []model.ProgramPair) string {
	stations := make(map[string]struct{})
	for i := range pairs {
		stations[pairs[i].Program.StationID] = struct{}{}
	}
	if len(stations) > 1 {
		return SortByDatetime
	}
	if slices.Contains(episodeIDStations, pairs[0].Program.StationID) {
		return SortByEpisodeID
	}
	return SortByDatetime
}

// sortPairs stable-sorts pairs on the chosen key, newest first
// unless fromOldest. Equal keys keep their input order.
func sortPairs(pairs []model.ProgramPair, sortBy string, fromOldest bool) {
	sort.SliceStable(pairs, func(i, j int) bool {
		switch sortBy {
		case SortByEpisodeID:
			if fromOldest {
				return pairs[i].Program.EpisodeID < pairs[j].Program.EpisodeID
			}
			return pairs[i].Program.EpisodeID > pairs[j].Program.EpisodeID
		default:
			if fromOldest {
				return pairs[i].Program.Datetime.Time.Before(pairs[j].Program.Datetime.Time)
			}
			return pairs[i].Program.Datetime.Time.After(pairs[j].Program.Datetime.Time)
		}
	})
}

// dedupPairs walks the sorted sequence once and keeps an element
// only when its datetime AND its episode id both differ from the
// immediately preceding element's values. The previous values follow
// every element, kept or dropped. Returns the kept elements and the
// number removed.
func dedupPairs(pairs []model.ProgramPair) ([]model.ProgramPair, int) {
	kept := make([]model.ProgramPair, 0, len(pairs))
	var prevDatetime time.Time
	var prevEpisodeID int64
	for i := range pairs {
		p := &pairs[i].Program
		if i == 0 || (!p.Datetime.Time.Equal(prevDatetime) && p.EpisodeID != prevEpisodeID) {
			kept = append(kept, pairs[i])
		}
		prevDatetime = p.Datetime.Time
		prevEpisodeID = p.EpisodeID
	}
	return kept, len(pairs) - len(kept)
}

// channelFromProgram derives the show-level tags from one program
// record. Fields the record does not carry keep their zero value so
// the builder omits the tags.
func channelFromProgram(p *model.Program) *model.PodcastChannel {
	return &model.PodcastChannel{
		Title:        p.Name,
		Description:  descriptionOf(p),
		ItunesImage:  p.ImageURL,
		ItunesAuthor: p.StationID,
		Link:         p.URL,
		Copyright:    p.Copyright,
	}
}

// descriptionOf falls back to the broadcaster's program notes when a
// program carries no description.
func descriptionOf(p *model.Program) string {
	if p.Description != "" {
		return p.Description
	}
	return p.Information
}

// itemFromProgram maps one recorded program and its stored
// identifier to a feed item. The guid is the stored identifier, not
// the broadcaster's episode id, so regenerating the feed never
// changes an item's identity.
func (a *Assembler) itemFromProgram(ctx context.Context, p *model.Program, id string) (*model.PodcastItem, error) {
	mediaPath, err := a.findMedia(p, id)
	if err != nil {
		return nil, err
	}
	enclosure, err := ResolveEnclosure(mediaPath, p.IsVideo, a.baseURL, a.mediaRoot)
	if err != nil {
		return nil, err
	}
	duration := time.Duration(p.Duration) * time.Second
	if p.Duration <= 0 {
		if a.inspector == nil {
			return nil, fmt.Errorf("no media inspector configured, unable to derive duration of %s", mediaPath)
		}
		duration, err = a.inspector.Duration(ctx, mediaPath)
		if err != nil {
			return nil, err
		}
	}
	return &model.PodcastItem{
		Title:       p.EpisodeName,
		Enclosure:   enclosure,
		GUID:        id,
		PubDate:     p.Datetime,
		Description: descriptionOf(p),
		Duration:    model.ItunesDuration{Duration: duration},
		Link:        p.URL,
		ItunesImage: p.ImageURL,
	}, nil
}

// findMedia returns the path of the program's media file: the
// lexicographically first entry in the episode directory whose name
// stem is "media" with any extension (os.ReadDir returns entries in
// filename order, which makes the pick deterministic).
func (a *Assembler) findMedia(p *model.Program, id string) (string, error) {
	dir := filepath.Join(a.mediaRoot, p.PlatformID, p.StationID, id)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ports.ErrNotFound, dir)
		}
		return "", err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext != "" && strings.TrimSuffix(name, ext) == "media" {
			return filepath.Join(dir, name), nil
		}
	}
	return "", fmt.Errorf("%w: no media file in %s", ports.ErrNotFound, dir)
}
