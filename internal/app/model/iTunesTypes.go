package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/sa6mwa/mp3duration"
)

// JST is the fixed UTC+9 offset publish dates are rendered in. A
// fixed zone avoids depending on the host's tzdata for Asia/Tokyo.
var JST = time.FixedZone("JST", 9*60*60)

// ProgramTime is the timestamp attached to a recorded program. The
// recorder exports naive local timestamps ("2006-01-02 15:04:05")
// while other sources use RFC 3339; both parse.
type ProgramTime struct {
	time.Time
}

// Custom unmarshal function accepting the recorder's timestamp forms.
func (t *ProgramTime) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var buf string
	err := unmarshal(&buf)
	if err != nil {
		return err
	}

	timeString := strings.TrimSpace(buf)
	if timeString == "" {
		t.Time = time.Time{}
		return nil
	}
	var newt time.Time
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		newt, err = time.Parse(layout, timeString)
		if err == nil {
			t.Time = newt
			return nil
		}
	}
	return fmt.Errorf("unmarshal error: %q is not a recognized datetime (want RFC 3339 or 2006-01-02 15:04:05)", timeString)
}

func (t ProgramTime) MarshalYAML() (interface{}, error) {
	if t.IsZero() {
		return "", nil
	}
	return t.Format(time.RFC3339), nil
}

// String returns the timestamp as an RFC1123Z publish date restamped
// in Japan Standard Time: the wall-clock fields are kept exactly as
// the recorder captured them and only the offset is replaced, no
// matter what zone the timestamp was parsed with.
func (t ProgramTime) String() string {
	jst := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, JST)
	return jst.Format(time.RFC1123Z)
}

// The Apple RSS has a specific duration format.
type ItunesDuration struct {
	time.Duration
}

// Format duration according to the itunes podcast specification
// (HH:MM:SS).
func (d ItunesDuration) MarshalYAML() (interface{}, error) {
	return mp3duration.FormatDuration(d.Duration), nil
}

// Return duration as string in itunes duration HH:MM:SS format.
func (d ItunesDuration) String() string {
	return mp3duration.FormatDuration(d.Duration)
}

// EpisodeType is the itunes:episodeType tag value set. The set is
// closed; the zero value renders as EpisodeFull.
type EpisodeType string

const (
	EpisodeFull    EpisodeType = "full"
	EpisodeTrailer EpisodeType = "trailer"
	EpisodeBonus   EpisodeType = "bonus"
)

func (t *EpisodeType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var buf string
	if err := unmarshal(&buf); err != nil {
		return err
	}
	switch v := EpisodeType(strings.ToLower(strings.TrimSpace(buf))); v {
	case "":
		*t = EpisodeFull
	case EpisodeFull, EpisodeTrailer, EpisodeBonus:
		*t = v
	default:
		return fmt.Errorf("unmarshal error: %q is not an episode type (want full, trailer or bonus)", buf)
	}
	return nil
}

func (t EpisodeType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (t EpisodeType) String() string {
	if t == "" {
		return string(EpisodeFull)
	}
	return string(t)
}

// ItunesType is the itunes:type tag value set. The set is closed;
// the zero value renders as Episodic.
type ItunesType string

const (
	Episodic ItunesType = "episodic"
	Serial   ItunesType = "serial"
)

func (t *ItunesType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var buf string
	if err := unmarshal(&buf); err != nil {
		return err
	}
	switch v := ItunesType(strings.ToLower(strings.TrimSpace(buf))); v {
	case "":
		*t = Episodic
	case Episodic, Serial:
		*t = v
	default:
		return fmt.Errorf("unmarshal error: %q is not a feed type (want episodic or serial)", buf)
	}
	return nil
}

func (t ItunesType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (t ItunesType) String() string {
	if t == "" {
		return string(Episodic)
	}
	return string(t)
}
