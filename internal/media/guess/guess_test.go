package guess

import "testing"

func TestFromFilename(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected Guess
	}{
		{
			name:  "full episode release",
			input: "Supernatural (2005) - S01E01 - Pilot [AMZN WEBDL-1080p Proper][EAC3 2.0][h264]-Kitsune.mkv",
			expected: Guess{
				Title: "Supernatural", Year: 2005, Season: 1, Episode: 1,
				EpisodeTitle: "Pilot", Kind: KindShow,
			},
		},
		{
			name:     "dotted episode",
			input:    "breaking.bad.s05e14.ozymandias.mkv",
			expected: Guess{Title: "breaking bad", Season: 5, Episode: 14, EpisodeTitle: "ozymandias", Kind: KindShow},
		},
		{
			name:     "cross notation",
			input:    "The Wire 3x08.avi",
			expected: Guess{Title: "The Wire", Season: 3, Episode: 8, Kind: KindShow},
		},
		{
			name:     "verbose season episode",
			input:    "Show Season 2 Episode 11.mp4",
			expected: Guess{Title: "Show", Season: 2, Episode: 11, Kind: KindShow},
		},
		{
			name:     "movie with year",
			input:    "Heat.1995.1080p.BluRay.x264-GRP.mkv",
			expected: Guess{Title: "Heat", Year: 1995, Kind: KindMovie},
		},
		{
			name:     "bare name",
			input:    "home_video.mkv",
			expected: Guess{Title: "home video", Kind: KindUnknown},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FromFilename(tc.input)
			if got != tc.expected {
				t.Errorf("FromFilename(%q) = %+v, want %+v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestFromFilenameResolutionIsNotAYear(t *testing.T) {
	got := FromFilename("concert.1080p.mkv")
	if got.Year != 0 {
		t.Errorf("year = %d, want none for a resolution token", got.Year)
	}
}
