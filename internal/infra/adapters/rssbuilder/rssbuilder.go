// rssbuilder implements the ports.ForBuilding interface. It collects
// a channel and feed items and renders them as an RSS 2.0 document
// with itunes podcast tags through an embedded text template.
package rssbuilder

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/sa6mwa/mkfeed/internal/app/model"
	"github.com/sa6mwa/mkfeed/internal/app/ports"
	"github.com/sa6mwa/mkfeed/internal/infra/adapters/logger"
)

//go:embed template.rss
var rssTemplate string

// Generator is rendered as the feed's generator tag.
const Generator = "mkfeed"

var ErrNilPointer = errors.New("nil pointer error")

// channelData and itemData pair the collected records with the
// artwork set through the dedicated artwork operations. The template
// renders artwork only from these fields, never from the records.
type channelData struct {
	*model.PodcastChannel
	Artwork string
}

type itemData struct {
	*model.PodcastItem
	Artwork string
}

type document struct {
	Channel   *channelData
	Items     []*itemData
	Generator string
}

// forBuilding implements the ports.ForBuilding port (interface).
type forBuilding struct {
	channel *channelData
	items   []*itemData
}

func New() ports.ForBuilding {
	return &forBuilding{}
}

func (p *forBuilding) SetChannel(_ context.Context, channel *model.PodcastChannel) error {
	if channel == nil {
		return ErrNilPointer
	}
	if channel.Title == "" {
		return errors.New("channel title must not be empty")
	}
	if channel.Description == "" {
		return errors.New("channel description must not be empty")
	}
	p.channel = &channelData{PodcastChannel: channel}
	return nil
}

func (p *forBuilding) SetChannelArtwork(_ context.Context, href string) error {
	if p.channel == nil {
		return errors.New("no channel to attach artwork to")
	}
	p.channel.Artwork = href
	return nil
}

func (p *forBuilding) AddItem(_ context.Context, item *model.PodcastItem) error {
	if item == nil {
		return ErrNilPointer
	}
	if item.Title == "" {
		return errors.New("item title must not be empty")
	}
	if item.GUID == "" {
		return fmt.Errorf("item %q has no guid", item.Title)
	}
	if item.Enclosure.URL == "" {
		return fmt.Errorf("item %q has no enclosure URL", item.Title)
	}
	p.items = append(p.items, &itemData{PodcastItem: item})
	return nil
}

func (p *forBuilding) SetItemArtwork(_ context.Context, href string) error {
	if len(p.items) == 0 {
		return errors.New("no item to attach artwork to")
	}
	p.items[len(p.items)-1].Artwork = href
	return nil
}

// WriteRSS renders the collected channel and items to w. The items
// are rendered in the order they were added.
func (p *forBuilding) WriteRSS(ctx context.Context, w io.Writer) error {
	l := logger.FromContext(ctx)
	if p.channel == nil {
		return errors.New("no channel set, unable to render feed")
	}
	t, err := template.New("template.rss").Funcs(mkFuncMap()).Parse(rssTemplate)
	if err != nil {
		return err
	}
	if err := t.Execute(w, document{
		Channel:   p.channel,
		Items:     p.items,
		Generator: Generator,
	}); err != nil {
		return err
	}
	l.Debug("Rendered feed document", "items", len(p.items))
	return nil
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func mkFuncMap() template.FuncMap {
	return template.FuncMap{
		"escape": func(s string) string {
			return xmlEscaper.Replace(s)
		},
		// cdata splits any "]]>" so s can be embedded in a CDATA
		// section.
		"cdata": func(s string) string {
			return strings.ReplaceAll(s, "]]>", "]]]]><![CDATA[>")
		},
		"markdown": func(s string) string {
			return MarkdownToHTML(s)
		},
		"yesno": func(v bool) string {
			if v {
				return "yes"
			}
			return "no"
		},
		"timeNow": func() time.Time {
			return time.Now()
		},
	}
}
