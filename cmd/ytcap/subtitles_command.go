package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/famomatic/ytcap/client"
)

func newSubtitlesCommand(ctx *commandContext) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "subtitles <video-id-or-url>",
		Short: "Fetch caption cues for a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(ctx.clientConfig())
			cues, err := c.GetSubtitles(cmd.Context(), args[0], ctx.v.GetString("lang"))
			if err != nil {
				return err
			}

			if output != "" {
				transcript := client.TranscriptFromCues(cues)
				return client.WriteTranscript(output, transcript, client.ResolveSubtitleOutputFormat(format))
			}

			switch format {
			case "", "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(cues)
			case "text":
				for _, cue := range cues {
					fmt.Fprintln(cmd.OutOrStdout(), cue.Text)
				}
				return nil
			default:
				return errors.New("subtitle formats other than json/text require --output")
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, text, srt, vtt)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write subtitles to a file instead of stdout")
	return cmd
}
