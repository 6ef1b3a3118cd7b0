package quality

import (
	"context"
	"log/slog"
	"path/filepath"

	"reshelve/internal/logging"
	"reshelve/internal/media/probe"
)

// Prober inspects a media container and reports its track attributes.
type Prober interface {
	Inspect(ctx context.Context, path string) (probe.Report, error)
}

// Classifier derives quality profiles from file names, falling back to a
// container probe when the name alone is too sparse.
type Classifier struct {
	prober Prober
	logger *slog.Logger
}

// NewClassifier constructs a Classifier. prober may be nil, in which case the
// probe fallback is skipped and classification relies on names alone.
func NewClassifier(prober Prober, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Classifier{prober: prober, logger: logger.With(logging.String(logging.FieldComponent, "quality"))}
}

// ClassifyName extracts a profile from a bare file or directory name.
func (c *Classifier) ClassifyName(name string) Profile {
	p := Profile{
		Resolution:    firstMatch(name, resolutionRules),
		VideoCodec:    firstMatch(name, videoCodecRules),
		AudioCodec:    firstMatch(name, audioCodecRules),
		AudioChannels: firstMatch(name, audioChannelRules),
		Source:        firstMatch(name, sourceRules),
		Tags:          allMatches(name, qualityTagRules),
		ReleaseGroup:  releaseGroup(name),
	}
	if platform := firstMatch(name, platformRules); platform != "" {
		if p.Source != "" {
			p.Source = platform + " " + p.Source
		} else {
			p.Source = platform
		}
	}
	return p
}

// ClassifyProbe derives a profile from the container itself. Any probe
// failure is logged and yields an empty profile; the caller never sees an
// error from this path.
func (c *Classifier) ClassifyProbe(ctx context.Context, path string) Profile {
	if c.prober == nil {
		return Profile{}
	}
	report, err := c.prober.Inspect(ctx, path)
	if err != nil {
		c.logger.Warn("container probe failed", logging.String(logging.FieldPath, path), logging.Error(err))
		return Profile{}
	}
	if report.IsZero() {
		c.logger.Debug("probe found no usable streams", logging.String(logging.FieldPath, path))
		return Profile{}
	}
	return FromProbe(report)
}

// Classify combines the name and probe paths. The name result wins when it
// already carries at least two of resolution, video codec, and source;
// otherwise the probe fills in the gaps field by field.
func (c *Classifier) Classify(ctx context.Context, path string) Profile {
	fromName := c.ClassifyName(filepath.Base(path))
	if fromName.Complete() {
		return fromName
	}
	return fromName.Merge(c.ClassifyProbe(ctx, path))
}

// FromProbe maps a probe report onto the same normalized vocabulary the name
// rules produce.
func FromProbe(report probe.Report) Profile {
	var p Profile
	switch {
	case report.VideoHeight >= 2160:
		p.Resolution = "4K"
	case report.VideoHeight >= 1080:
		p.Resolution = "1080p"
	case report.VideoHeight >= 720:
		p.Resolution = "720p"
	case report.VideoHeight >= 480:
		p.Resolution = "480p"
	}
	if report.VideoCodec != "" {
		p.VideoCodec = NormalizeVideoCodec(report.VideoCodec)
	}
	p.AudioCodec = report.AudioCodec
	switch report.AudioChannels {
	case 8:
		p.AudioChannels = "7.1"
	case 6:
		p.AudioChannels = "5.1"
	case 2:
		p.AudioChannels = "2.0"
	case 1:
		p.AudioChannels = "Mono"
	}
	return p
}
