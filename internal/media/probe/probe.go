// Package probe shells out to ffprobe and condenses its JSON output into the
// track-level facts the quality classifier needs.
package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Report carries the first video and audio track attributes of a container.
// A zero Report means the file could not be probed.
type Report struct {
	VideoHeight   int
	VideoCodec    string
	AudioCodec    string
	AudioChannels int
}

// IsZero reports whether the probe produced no usable track information.
func (r Report) IsZero() bool {
	return r == Report{}
}

type ffprobeOutput struct {
	Streams []stream `json:"streams"`
}

type stream struct {
	CodecName string `json:"codec_name"`
	CodecType string `json:"codec_type"`
	Height    int    `json:"height"`
	Channels  int    `json:"channels"`
}

// Inspector runs ffprobe against media files.
type Inspector struct {
	binary string
}

// NewInspector returns an Inspector using the provided ffprobe binary name.
func NewInspector(binary string) *Inspector {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	return &Inspector{binary: binary}
}

// Inspect executes ffprobe and extracts the first video and audio track.
func (i *Inspector) Inspect(ctx context.Context, path string) (Report, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Report{}, errors.New("probe inspect: empty path")
	}

	cmd := exec.CommandContext(ctx, i.binary, "-v", "error", "-hide_banner", "-show_streams", "-of", "json", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Report{}, fmt.Errorf("probe inspect: %w: %s", err, strings.TrimSpace(string(output)))
	}

	var parsed ffprobeOutput
	if err := json.Unmarshal(output, &parsed); err != nil {
		return Report{}, fmt.Errorf("probe parse: %w", err)
	}

	var report Report
	for _, s := range parsed.Streams {
		switch {
		case strings.EqualFold(s.CodecType, "video") && report.VideoCodec == "" && report.VideoHeight == 0:
			report.VideoHeight = s.Height
			report.VideoCodec = s.CodecName
		case strings.EqualFold(s.CodecType, "audio") && report.AudioCodec == "" && report.AudioChannels == 0:
			report.AudioCodec = s.CodecName
			report.AudioChannels = s.Channels
		}
	}
	return report, nil
}
