package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/famomatic/ytcap/internal/innertube"
)

type profileInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

func newClientsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clients",
		Short: "List the impersonation profiles in their default trial order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var infos []profileInfo
			for _, p := range innertube.NewRegistry().All() {
				infos = append(infos, profileInfo{ID: p.ID, Name: p.Name, Version: p.Version})
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(infos)
		},
	}
}
