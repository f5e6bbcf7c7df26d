package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/famomatic/ytcap/client"
)

func newTracksCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tracks <video-id-or-url>",
		Short: "List the caption tracks a video advertises",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(ctx.clientConfig())
			tracks, err := c.ListTracks(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(tracks)
		},
	}
}
