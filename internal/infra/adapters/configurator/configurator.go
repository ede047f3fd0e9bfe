// configurator is an adapter for loading and saving the main
// aggregate constituting the feed: runtime configuration, an
// optional authored channel, and the recorded programs. It
// implements the ports.ForConfiguring interface.
package configurator

import (
	"context"
	"fmt"
	"os"

	"github.com/sa6mwa/mkfeed/internal/app/model"
	"github.com/sa6mwa/mkfeed/internal/app/ports"
	"gopkg.in/yaml.v3"
)

var defaultSpecfile string = "feedspec.yaml"

// DefaultOutput is the rendered document filename used when the spec
// file does not name one.
const DefaultOutput = "podcast.rss"

// configurator.New returns a local file-based configurator that
// satisfies the ports.ForConfiguring port interface.
func New(feedYamlFilename string) ports.ForConfiguring {
	if feedYamlFilename == "" {
		feedYamlFilename = defaultSpecfile
	}
	return &forConfiguring{
		specFile: feedYamlFilename,
	}
}

// Implements the ports.ForConfiguring interface.
type forConfiguring struct {
	specFile string
}

func (c *forConfiguring) Load(ctx context.Context) (*model.FeedSpec, error) {
	f, err := os.Open(c.specFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var spec model.FeedSpec
	if err := yaml.NewDecoder(f).Decode(&spec); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", c.specFile, err)
	}
	// Set defaults
	if spec.Config.Output == "" {
		spec.Config.Output = DefaultOutput
	}
	if spec.Config.MediaRoot == "" {
		spec.Config.MediaRoot = "."
	}
	return &spec, nil
}

func (c *forConfiguring) Save(ctx context.Context, spec *model.FeedSpec) error {
	f, err := os.Create(c.specFile)
	if err != nil {
		return fmt.Errorf("unable to re-write %s: %w", c.specFile, err)
	}
	defer f.Close()
	if err := yaml.NewEncoder(f).Encode(spec); err != nil {
		return fmt.Errorf("unable to marshall yaml: %w", err)
	}
	return nil
}
