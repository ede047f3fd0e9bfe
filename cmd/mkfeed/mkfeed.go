package main

import (
	"fmt"
	"os"
	"path"

	"github.com/sa6mwa/mkfeed/internal/app/feeder"
	"github.com/sa6mwa/mkfeed/internal/app/ports"
	"github.com/sa6mwa/mkfeed/internal/infra/adapters/asker"
	"github.com/sa6mwa/mkfeed/internal/infra/adapters/configurator"
	"github.com/sa6mwa/mkfeed/internal/infra/adapters/inspector"
	"github.com/sa6mwa/mkfeed/internal/infra/adapters/logger"
	"github.com/sa6mwa/mkfeed/internal/infra/adapters/rssbuilder"
	"github.com/sa6mwa/mkfeed/internal/infra/adapters/uploader"
	"github.com/urfave/cli/v2"
)

const (
	defaultSpec string = "feedspec.yaml"
)

func main() {
	app := &cli.App{
		Name:      "mkfeed",
		Usage:     "Tool to assemble a podcast rss feed from recorded radio programs and publish it to Amazon S3.",
		Copyright: "Copyright SA6MWA 2023 sa6mwa@gmail.com, https://github.com/sa6mwa/mkfeed",
		Commands: []*cli.Command{
			{
				Name:    "generate",
				Aliases: []string{"gen", "g"},
				Usage:   "Assemble the programs in the feed spec and render the rss feed document",
				Action:  generate,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "spec",
						Aliases: []string{"s"},
						Value:   defaultSpec,
						Usage:   "Feed specification file with config, channel overrides and program records",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "File to write the rendered feed to, overrides the output key in the spec file",
					},
					&cli.StringFlag{
						Name:  "sort-by",
						Usage: fmt.Sprintf("Sort programs by %q or %q before assembly, the default is chosen per station", feeder.SortByDatetime, feeder.SortByEpisodeID),
					},
					&cli.BoolFlag{
						Name:  "from-oldest",
						Usage: "Order the feed from the oldest program instead of the newest",
					},
					&cli.BoolFlag{
						Name:  "keep-duplicates",
						Usage: "Keep adjacent duplicate recordings instead of suppressing them",
					},
					&cli.BoolFlag{
						Name:    "upload",
						Aliases: []string{"u"},
						Usage:   "Upload the rendered feed to the configured S3 bucket",
					},
					&cli.BoolFlag{
						Name:    "rewrite-spec",
						Aliases: []string{"w"},
						Usage:   "Re-write the spec file in normalized form after a successful generate",
					},
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Force, do not ask if to proceed with an action, just do it",
					},
					&cli.BoolFlag{
						Name:    "dry-run",
						Aliases: []string{"n"},
						Usage:   "Answer no to every question and print the feed to stdout instead of writing or uploading anything",
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "Enable debug logging",
					},
				},
			},
			{
				Name:    "inspect",
				Aliases: []string{"i"},
				Usage:   "Print duration, size and content type of media files",
				Action:  inspect,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "video",
						Usage: "Resolve mp4 containers as video when deriving the enclosure content type",
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "Enable debug logging",
					},
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		logger.DefaultLogger().Error(fmt.Sprintf("ERROR: %v", err))
		os.Exit(1)
	}
}

func generate(c *cli.Context) error {
	specFile := c.String("spec")
	dryRun := c.Bool("dry-run")
	l := logger.NewLogger(c.Bool("verbose"))
	ctx := logger.WithLogger(c.Context, l)

	cfg := configurator.New(specFile)
	spec, err := cfg.Load(ctx)
	if err != nil {
		return err
	}
	if err := validateSpec(spec, specFile, c.Bool("upload")); err != nil {
		return err
	}

	output := spec.Config.Output
	if c.IsSet("output") {
		output = c.String("output")
	}
	sortBy := spec.Config.SortBy
	if c.IsSet("sort-by") {
		sortBy = c.String("sort-by")
	}
	opts := &feeder.Options{
		SortBy:           sortBy,
		FromOldest:       spec.Config.FromOldest || c.Bool("from-oldest"),
		RemoveDuplicates: !(spec.Config.KeepDuplicates || c.Bool("keep-duplicates")),
		Channel:          spec.Channel,
	}

	if c.Bool("upload") {
		l.Info(fmt.Sprintf("About to generate %s and upload it to S3 bucket %s", output, spec.Config.Aws.Bucket))
	} else {
		l.Info(fmt.Sprintf("About to generate %s", output))
	}

	assembler := feeder.New(spec.Config.BaseURL, spec.Config.MediaRoot, inspector.New(), feeder.WithLogger(l))
	builder := rssbuilder.New()
	if err := assembler.Assemble(ctx, spec.Programs, builder, opts); err != nil {
		return err
	}
	document, err := renderFeed(ctx, builder)
	if err != nil {
		return err
	}

	if dryRun {
		if _, err := os.Stdout.Write(document); err != nil {
			return err
		}
	} else {
		if err := os.WriteFile(output, document, 0644); err != nil {
			return fmt.Errorf("unable to write %s: %w", output, err)
		}
		l.Info(fmt.Sprintf("Successfully generated %s", output))
	}

	ask := asker.New(dryRun, c.Bool("force"))

	if c.Bool("upload") {
		if dryRun {
			l.Info(fmt.Sprintf("Would diff and upload %s to s3://%s", output, path.Join(spec.Config.Aws.Bucket, path.Base(output))))
		} else {
			upl := uploader.New(spec.Config.Aws)
			if err := upl.Diff(ctx, spec.Config.Aws.Bucket, path.Base(output), output); err != nil {
				return err
			}
			if ask.Ask(ctx, "Upload new %s?", output) {
				if err := upl.Upload(ctx, &ports.ForUploadingRequest{
					Store:        spec.Config.Aws.Bucket,
					To:           path.Base(output),
					From:         output,
					ContentType:  "text/xml",
					StorageClass: spec.Config.Aws.GetStorageClass(),
				}); err != nil {
					return err
				}
			}
		}
	}

	if c.Bool("rewrite-spec") && !dryRun {
		if ask.Ask(ctx, "Re-write %s in normalized form?", specFile) {
			if err := cfg.Save(ctx, spec); err != nil {
				return err
			}
			l.Info(fmt.Sprintf("Re-wrote %s", specFile))
		}
	}
	return nil
}

func inspect(c *cli.Context) error {
	if c.Args().Len() == 0 {
		return fmt.Errorf("you need to specify at least one media file as argument(s) to this command")
	}
	l := logger.NewLogger(c.Bool("verbose"))
	ctx := logger.WithLogger(c.Context, l)
	insp := inspector.New()
	for _, file := range c.Args().Slice() {
		line, err := inspectLine(ctx, insp, file, c.Bool("video"))
		if err != nil {
			return err
		}
		fmt.Println(line)
	}
	return nil
}
