package ports

import (
	"context"

	"github.com/sa6mwa/mkfeed/internal/app/model"
)

type ForConfiguring interface {
	Load(ctx context.Context) (*model.FeedSpec, error)
	Save(ctx context.Context, spec *model.FeedSpec) error
}
