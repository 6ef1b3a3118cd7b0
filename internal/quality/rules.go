package quality

import (
	"regexp"
	"strings"
)

// rule pairs a matcher with an optional normalizer. Single-value categories
// take the first rule that matches; the tag category collects every match in
// rule order.
type rule struct {
	pattern   *regexp.Regexp
	normalize func(string) string
}

var resolutionRules = []rule{
	{pattern: regexp.MustCompile(`(?i)\b(2160p|4K)\b`), normalize: func(string) string { return "4K" }},
	{pattern: regexp.MustCompile(`(?i)\b(1080p)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(720p)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(480p)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(360p)\b`)},
}

var videoCodecRules = []rule{
	{pattern: regexp.MustCompile(`(?i)\b(h264|x264|AVC)\b`), normalize: NormalizeVideoCodec},
	{pattern: regexp.MustCompile(`(?i)\b(h265|x265|HEVC)\b`), normalize: NormalizeVideoCodec},
	{pattern: regexp.MustCompile(`(?i)\b(XviD)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(DivX)\b`)},
}

// The bare Dolby Digital token is anchored on both sides so it never fires
// inside DDP or a DD5.1-style channel token. DDP is listed first and wins
// for Dolby Digital Plus names like DDP5.1.
var audioCodecRules = []rule{
	{pattern: regexp.MustCompile(`(?i)\b(DTS-HD|DTS-X|DTS)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(TrueHD|Atmos)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(EAC3|E-AC-3)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(AC3|AC-3)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(AAC)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(MP3)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(FLAC)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(DDP)`)},
	{pattern: regexp.MustCompile(`(?i)\b(DD)\b`)},
}

// Compound DDP5.1/DD5.1 tokens capture only the channel layout; the codec
// prefix belongs to the codec category.
var audioChannelRules = []rule{
	{pattern: regexp.MustCompile(`(?i)\b(7\.1|7\.0)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(5\.1|5\.0)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(2\.1|2\.0)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(Stereo)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(Mono)\b`)},
	{pattern: regexp.MustCompile(`(?i)DDP(5\.1|7\.1|2\.0)`)},
	{pattern: regexp.MustCompile(`(?i)DD(5\.1|7\.1|2\.0)`)},
}

var sourceRules = []rule{
	{pattern: regexp.MustCompile(`(?i)\b(WEBDL|WEB-DL|WEB\.DL)\b`), normalize: normalizeSource},
	{pattern: regexp.MustCompile(`(?i)\b(WEBRip|WEB-Rip|WEB\.Rip)\b`), normalize: normalizeSource},
	{pattern: regexp.MustCompile(`(?i)\b(WEB)\b`), normalize: normalizeSource},
	{pattern: regexp.MustCompile(`(?i)\b(BluRay|Blu-Ray|BDRip|BD)\b`), normalize: normalizeSource},
	{pattern: regexp.MustCompile(`(?i)\b(HDTV|HDTVRip)\b`), normalize: normalizeSource},
	{pattern: regexp.MustCompile(`(?i)\b(DVDRip|DVD)\b`), normalize: normalizeSource},
	{pattern: regexp.MustCompile(`(?i)\b(CAM|TS|TC)\b`), normalize: normalizeSource},
	{pattern: regexp.MustCompile(`(?i)\b(HDRIP)\b`), normalize: normalizeSource},
}

var qualityTagRules = []rule{
	{pattern: regexp.MustCompile(`(?i)\b(Proper)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(Repack)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(Extended)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(Director'?s?\.?Cut)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(Uncut)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(Internal)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(HDR10|HDR|DV|Dolby\.?Vision)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(Atmos)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(IMAX)\b`)},
}

var platformRules = []rule{
	{pattern: regexp.MustCompile(`(?i)\b(AMZN|Amazon)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(NF|Netflix)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(HULU)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(HBO|Max)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(DSNP|Disney)\b`)},
	{pattern: regexp.MustCompile(`(?i)\b(ATVP|AppleTV)\b`)},
}

var (
	trailingGroupPattern = regexp.MustCompile(`-([A-Za-z0-9]+)(?:\.[A-Za-z0-9]+)?$`)
	bracketedTokenPattern = regexp.MustCompile(`\[([A-Za-z][A-Za-z0-9]*)\]`)
	qualityTokenPattern   = regexp.MustCompile(`(?i)^(2160p|1080p|720p|480p|360p|4K|WEBDL|WEBRip|WEB|BluRay|BDRip|BD|HDTV|DVD|h264|x264|h265|x265|HEVC|AVC|XviD|DivX|DTS(?:-HD|-X)?|TrueHD|EAC3|AC3|AAC|MP3|FLAC|DDP?|\d+\.\d+)$`)
)

// firstMatch applies rules in order and returns the first normalized hit.
func firstMatch(name string, rules []rule) string {
	for _, r := range rules {
		match := r.pattern.FindStringSubmatch(name)
		if match == nil {
			continue
		}
		value := match[0]
		if len(match) > 1 && match[1] != "" {
			value = match[1]
		}
		if r.normalize != nil {
			value = r.normalize(value)
		}
		return value
	}
	return ""
}

// allMatches collects every hit across all rules, in rule order.
func allMatches(name string, rules []rule) []string {
	var results []string
	for _, r := range rules {
		for _, match := range r.pattern.FindAllStringSubmatch(name, -1) {
			value := match[0]
			if len(match) > 1 && match[1] != "" {
				value = match[1]
			}
			if r.normalize != nil {
				value = r.normalize(value)
			}
			results = append(results, value)
		}
	}
	return results
}

// releaseGroup prefers a trailing -Group suffix and otherwise accepts the
// first bracketed token that is not itself a quality, resolution, or codec
// token.
func releaseGroup(name string) string {
	if match := trailingGroupPattern.FindStringSubmatch(name); match != nil {
		return match[1]
	}
	for _, match := range bracketedTokenPattern.FindAllStringSubmatch(name, -1) {
		if !qualityTokenPattern.MatchString(match[1]) {
			return match[1]
		}
	}
	return ""
}

// NormalizeVideoCodec folds the common encoder aliases into h264/h265 and
// leaves everything else untouched.
func NormalizeVideoCodec(codec string) string {
	switch strings.ToLower(codec) {
	case "h264", "x264", "avc":
		return "h264"
	case "h265", "x265", "hevc":
		return "h265"
	}
	return codec
}

func normalizeSource(source string) string {
	lower := strings.ToLower(source)
	switch {
	case strings.Contains(lower, "webdl"), strings.Contains(lower, "web-dl"):
		return "WEBDL"
	case strings.Contains(lower, "webrip"):
		return "WEBRip"
	case strings.Contains(lower, "bluray"), strings.Contains(lower, "blu-ray"):
		return "BluRay"
	case strings.Contains(lower, "hdtv"):
		return "HDTV"
	case strings.Contains(lower, "dvd"):
		return "DVD"
	}
	return strings.ToUpper(source)
}
