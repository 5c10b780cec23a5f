package cmd

import (
	"fmt"
	"strings"

	"artclip/pkg/completions"
	"artclip/pkg/config"
	"artclip/pkg/errors"
	"artclip/pkg/render"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage artclip configuration and accounts",
	Long:  `Manage artclip configuration: theme, date format, cache location, and the accounts articles are attributed to.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		account := cfg.ResolveAccount()

		fmt.Println("Current Configuration:")
		fmt.Println("======================")
		fmt.Printf("Theme: %s", cfg.Theme.Name)
		if cfg.Theme.Dir != "" {
			fmt.Printf(" (theme dir: %s)", cfg.Theme.Dir)
		}
		fmt.Println()
		fmt.Printf("Built-in themes: %s\n", strings.Join(render.BuiltinThemes(), ", "))
		fmt.Printf("Date format: %s\n", cfg.Export.DateFormat)
		fmt.Printf("Cache: %s (keep %d days)\n", cfg.Cache.Path, cfg.Cache.Days)
		fmt.Println()
		fmt.Printf("Account: %s (%s)\n", account.Name, account.ID)

		if len(cfg.Accounts) > 0 {
			fmt.Println()
			fmt.Println("Configured Accounts:")
			for _, a := range cfg.Accounts {
				marker := ""
				if cfg.IsAccountActive(a.Name) {
					marker = " (active)"
				} else if a.Default {
					marker = " (default)"
				}
				fmt.Printf("  - %s%s\n", a.Name, marker)
			}
		}

		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configSetThemeCmd = &cobra.Command{
	Use:               "set-theme <name>",
	Short:             "Set the HTML rendering theme",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completions.CompleteThemes,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		// Loading validates the theme exists before persisting it.
		if _, err := render.New(args[0], cfg.Theme.Dir); err != nil {
			return err
		}

		cfg.Theme.Name = args[0]
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Theme set to '%s'\n", args[0])
		return nil
	},
}

var configAccountsCmd = &cobra.Command{
	Use:     "accounts",
	Aliases: []string{"account"},
	Short:   "Manage accounts",
	Long:    `List, add, remove, and switch between accounts. The active account's ID is embedded in the internal clipboard format.`,
}

var configAccountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if len(cfg.Accounts) == 0 {
			fmt.Println("No accounts configured; the implicit 'local' account is used.")
			fmt.Println("Use 'artclip config accounts add <name>' to create one.")
			return nil
		}

		fmt.Println("Accounts:")
		for _, a := range cfg.Accounts {
			marker := ""
			if cfg.IsAccountActive(a.Name) {
				marker = " *active*"
			}
			fmt.Printf("  %s%s\n", a.Name, marker)
			fmt.Printf("    ID: %s\n", a.ID)
		}
		return nil
	},
}

var accountsAddDefault bool

var configAccountsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if err := cfg.AddAccount(config.Account{Name: args[0], Default: accountsAddDefault}); err != nil {
			return errors.ValidationError(err.Error())
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Account '%s' added\n", args[0])
		return nil
	},
}

var configAccountsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if err := cfg.RemoveAccount(args[0]); err != nil {
			return errors.ValidationError(err.Error())
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Account '%s' removed\n", args[0])
		return nil
	},
}

var configAccountsUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the active account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if err := cfg.SetActiveAccount(args[0]); err != nil {
			return errors.ValidationError(err.Error())
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Active account set to '%s'\n", args[0])
		return nil
	},
}

func init() {
	configAccountsAddCmd.Flags().BoolVar(&accountsAddDefault, "default", false, "Mark the account as default")
}
