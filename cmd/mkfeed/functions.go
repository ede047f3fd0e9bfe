package main

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sa6mwa/mkfeed/internal/app/humanreadable"
	"github.com/sa6mwa/mkfeed/internal/app/model"
	"github.com/sa6mwa/mkfeed/internal/app/ports"
	"github.com/sa6mwa/mp3duration"
)

// validateSpec catches configuration mistakes before any work is
// done. The assembler and builder validate the channel and programs
// themselves.
func validateSpec(spec *model.FeedSpec, specFile string, uploading bool) error {
	if spec.Config.BaseURL == "" {
		return fmt.Errorf("baseURL must not be empty in %s", specFile)
	}
	if uploading && spec.Config.Aws.Bucket == "" {
		return fmt.Errorf("aws bucket must not be empty in %s when uploading", specFile)
	}
	return nil
}

// renderFeed renders the assembled feed into memory and re-parses it
// as a completeness check before anything is written to disk or S3.
func renderFeed(ctx context.Context, builder ports.ForBuilding) ([]byte, error) {
	var buf bytes.Buffer
	if err := builder.WriteRSS(ctx, &buf); err != nil {
		return nil, err
	}
	if err := validateRendered(buf.Bytes()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func validateRendered(document []byte) error {
	var rss model.Rss
	if err := xml.Unmarshal(document, &rss); err != nil {
		return fmt.Errorf("rendered feed is not well-formed xml: %w", err)
	}
	if rss.Channel.Title == "" {
		return errors.New("rendered feed has no channel title")
	}
	if len(rss.Channel.Item) == 0 {
		return errors.New("rendered feed has no items")
	}
	return nil
}

// inspectLine summarizes one media file the way the feed would
// publish it. Containers without a duration reader are reported with
// an unknown duration instead of failing the whole run.
func inspectLine(ctx context.Context, insp ports.ForInspecting, file string, isVideo bool) (string, error) {
	fi, err := os.Stat(file)
	if err != nil {
		return "", err
	}
	duration := "unknown"
	d, err := insp.Duration(ctx, file)
	switch {
	case err == nil:
		duration = mp3duration.FormatDuration(d)
	case errors.Is(err, ports.ErrUnsupportedFormat):
	default:
		return "", err
	}
	declared := "unknown"
	if format, ok := model.FormatFor(file); ok {
		declared = format.MIME(isVideo)
	}
	mimetype.SetLimit(1024 * 1024)
	mtype, err := mimetype.DetectFile(file)
	if err != nil {
		return "", fmt.Errorf("unable to detect content type of %s: %w", file, err)
	}
	return fmt.Sprintf("%s: duration %s, size %s, type %s, detected %s", file, duration, humanreadable.IEC(fi.Size()), declared, mtype.String()), nil
}
