package ports

import (
	"context"
	"io"

	"github.com/sa6mwa/mkfeed/internal/app/model"
)

// ForBuilding assembles an in-memory podcast RSS document from one
// channel tag set and any number of item tag sets. Items appear in
// the rendered document in AddItem call order; implementations must
// never re-sort them. Channel and item artwork is set through the
// dedicated artwork operations, not through the record fields, so an
// implementation never has to reach into library internals for the
// itunes image tag.
type ForBuilding interface {
	// SetChannel populates the channel-level tags. Replaces any
	// previously set channel.
	SetChannel(ctx context.Context, channel *model.PodcastChannel) error
	// SetChannelArtwork sets the channel itunes image href.
	SetChannelArtwork(ctx context.Context, href string) error
	// AddItem appends one episode's tags to the document.
	AddItem(ctx context.Context, item *model.PodcastItem) error
	// SetItemArtwork sets the itunes image href on the most recently
	// added item. Returns an error when no item has been added.
	SetItemArtwork(ctx context.Context, href string) error
	// WriteRSS renders the document as RSS 2.0 with the itunes
	// namespace to w.
	WriteRSS(ctx context.Context, w io.Writer) error
}
