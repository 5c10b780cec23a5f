package cmd

import (
	"encoding/json"
	"os"

	"artclip/pkg/clipboard"

	"github.com/spf13/cobra"
)

var clipboardServeCmd = &cobra.Command{
	Use:    "__clipboard-serve",
	Hidden: true,
	Short:  "Internal: serve clipboard content over Wayland (do not call directly)",
	RunE: func(cmd *cobra.Command, args []string) error {
		var formats clipboard.Formats
		if err := json.NewDecoder(os.Stdin).Decode(&formats); err != nil {
			return err
		}
		return clipboard.Serve(formats)
	},
}
