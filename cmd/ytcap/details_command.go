package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/famomatic/ytcap/client"
)

func newDetailsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "details <video-id-or-url>",
		Short: "Fetch video metadata and captions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(ctx.clientConfig())
			details, err := c.GetVideoDetails(cmd.Context(), args[0], ctx.v.GetString("lang"))
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(details)
		},
	}
}
