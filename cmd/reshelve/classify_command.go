package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reshelve/internal/config"
	"reshelve/internal/media/probe"
	"reshelve/internal/quality"
)

type classifyOutput struct {
	Path          string   `json:"path"`
	Resolution    string   `json:"resolution,omitempty"`
	Source        string   `json:"source,omitempty"`
	VideoCodec    string   `json:"video_codec,omitempty"`
	AudioCodec    string   `json:"audio_codec,omitempty"`
	AudioChannels string   `json:"audio_channels,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	ReleaseGroup  string   `json:"release_group,omitempty"`
	QualityString string   `json:"quality_string"`
}

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var withProbe bool

	cmd := &cobra.Command{
		Use:   "classify <file>",
		Short: "Show the quality profile extracted from a media file name",
		Long: `Parse a release name into its quality attributes and print them along with
the formatted quality string. With --probe the container itself is inspected
via ffprobe to fill in attributes the name does not carry.

Examples:
  reshelve classify Show.S01E01.1080p.WEB-DL.DDP5.1.H.264-NTb.mkv
  reshelve classify --probe /library/incoming/episode.mkv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			var prober quality.Prober
			if withProbe {
				prober = probe.NewInspector(cfg.FFprobeBinary())
			}
			classifier := quality.NewClassifier(prober, logger)

			path := args[0]
			var profile quality.Profile
			if withProbe {
				expanded, err := config.ExpandPath(path)
				if err != nil {
					return err
				}
				path = expanded
				profile = classifier.Classify(cmd.Context(), path)
			} else {
				profile = classifier.ClassifyName(path)
			}

			if jsonOut {
				return writeJSON(cmd, classifyOutput{
					Path:          path,
					Resolution:    profile.Resolution,
					Source:        profile.Source,
					VideoCodec:    profile.VideoCodec,
					AudioCodec:    profile.AudioCodec,
					AudioChannels: profile.AudioChannels,
					Tags:          profile.Tags,
					ReleaseGroup:  profile.ReleaseGroup,
					QualityString: quality.Format(profile),
				})
			}

			out := cmd.OutOrStdout()
			rows := [][]string{
				{"Resolution", profile.Resolution},
				{"Source", profile.Source},
				{"Video codec", profile.VideoCodec},
				{"Audio codec", profile.AudioCodec},
				{"Audio channels", profile.AudioChannels},
				{"Tags", strings.Join(profile.Tags, ", ")},
				{"Release group", profile.ReleaseGroup},
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Attribute", "Value"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			))
			fmt.Fprintf(out, "Quality string: %s\n", quality.Format(profile))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the profile as JSON")
	cmd.Flags().BoolVar(&withProbe, "probe", false, "Inspect the container with ffprobe as a fallback")
	return cmd
}
