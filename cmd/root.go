package cmd

import (
	"fmt"
	"os"

	"artclip/pkg/errors"
	"artclip/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	Version   string
	BuildTime string
	GitCommit string
)

var outputFormat string
var logLevel string

var rootCmd = &cobra.Command{
	Use:   "artclip",
	Short: "Copy feed articles to the clipboard in multiple formats",
	Long: `artclip fetches feed articles and exports them to the system clipboard
as several simultaneous representations: a structured article record, an
application-internal record, plain text, themed HTML, and the article URL.
Articles are cached locally in SQLite so exports work offline.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Set log level: explicit flag takes precedence over env var
		level := logLevel
		if !cmd.Flags().Changed("log-level") {
			if envLevel := os.Getenv("ARTCLIP_LOG_LEVEL"); envLevel != "" {
				level = envLevel
			}
		}
		logger.SetLevel(level)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		ver := Version
		if ver == "" {
			ver = "dev"
		}
		bt := BuildTime
		if bt == "" {
			bt = "unknown"
		}
		gc := GitCommit
		if gc == "" {
			gc = "unknown"
		}

		fmt.Printf("artclip version %s\n", ver)
		fmt.Printf("Built: %s\n", bt)
		fmt.Printf("Git commit: %s\n", gc)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitCode := errors.HandleReturn(err)
		os.Exit(int(exitCode))
	}
}

func init() {
	RegisterCommands(rootCmd)

	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "table", "Output format (table, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error, fatal)")
}
