package quality

// Profile is the normalized bundle of technical attributes for one file.
// Profiles are value types; producers hand them out by value and never
// mutate them afterwards.
type Profile struct {
	Resolution    string
	VideoCodec    string
	AudioCodec    string
	AudioChannels string
	Source        string
	Tags          []string
	ReleaseGroup  string
}

// Merge combines two profiles field by field, preferring the receiver's
// value whenever it is set. Tags and ReleaseGroup always come from the
// receiver; the probe path has no equivalent for either.
func (p Profile) Merge(other Profile) Profile {
	merged := Profile{
		Resolution:    firstNonEmpty(p.Resolution, other.Resolution),
		VideoCodec:    firstNonEmpty(p.VideoCodec, other.VideoCodec),
		AudioCodec:    firstNonEmpty(p.AudioCodec, other.AudioCodec),
		AudioChannels: firstNonEmpty(p.AudioChannels, other.AudioChannels),
		Source:        firstNonEmpty(p.Source, other.Source),
		ReleaseGroup:  p.ReleaseGroup,
	}
	merged.Tags = append(merged.Tags, p.Tags...)
	return merged
}

// Complete reports whether at least two of resolution, video codec, and
// source are populated. Profiles that pass are trusted without probing.
func (p Profile) Complete() bool {
	count := 0
	for _, field := range []string{p.Resolution, p.VideoCodec, p.Source} {
		if field != "" {
			count++
		}
	}
	return count >= 2
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
