package quality

import "strings"

// Format renders a profile into the bracketed quality string appended to
// renamed files, e.g. "[BluRay-1080p][h264]-GROUP". Construction order is
// fixed: source/resolution, audio, video codec, release group.
func Format(p Profile) string {
	var parts []string

	switch {
	case p.Source != "" && p.Resolution != "":
		sourcePart := p.Source + "-" + p.Resolution
		if len(p.Tags) > 0 {
			sourcePart += " " + strings.Join(p.Tags, " ")
		}
		parts = append(parts, "["+sourcePart+"]")
	case p.Source != "":
		parts = append(parts, "["+p.Source+"]")
	case p.Resolution != "":
		parts = append(parts, "["+p.Resolution+"]")
	}

	// An Atmos codec that already appears in the tags would print twice, so
	// the audio bracket keeps only the channel layout in that case.
	switch {
	case p.AudioCodec != "" && p.AudioChannels != "":
		if strings.EqualFold(p.AudioCodec, "Atmos") && containsFold(p.Tags, "Atmos") {
			parts = append(parts, "["+p.AudioChannels+"]")
		} else {
			parts = append(parts, "["+p.AudioCodec+" "+p.AudioChannels+"]")
		}
	case p.AudioCodec != "" && !strings.EqualFold(p.AudioCodec, "Atmos"):
		parts = append(parts, "["+p.AudioCodec+"]")
	case p.AudioCodec == "Atmos" && !containsFold(p.Tags, "Atmos"):
		parts = append(parts, "["+p.AudioCodec+"]")
	}

	if p.VideoCodec != "" {
		parts = append(parts, "["+p.VideoCodec+"]")
	}
	if p.ReleaseGroup != "" {
		parts = append(parts, "-"+p.ReleaseGroup)
	}

	return strings.Join(parts, "")
}

func containsFold(values []string, target string) bool {
	for _, value := range values {
		if strings.EqualFold(value, target) {
			return true
		}
	}
	return false
}
