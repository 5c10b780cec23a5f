package cmd

import "github.com/spf13/cobra"

func RegisterCommands(root *cobra.Command) {
	root.AddCommand(versionCmd)
	root.AddCommand(clipboardServeCmd)

	root.AddCommand(fetchCmd)
	root.AddCommand(listCmd)
	root.AddCommand(copyCmd)
	root.AddCommand(renderCmd)
	root.AddCommand(formatsCmd)
	root.AddCommand(configCmd)

	configCmd.AddCommand(
		configShowCmd,
		configPathCmd,
		configSetThemeCmd,
		configAccountsCmd,
	)

	configAccountsCmd.AddCommand(
		configAccountsListCmd,
		configAccountsAddCmd,
		configAccountsRemoveCmd,
		configAccountsUseCmd,
	)
}
