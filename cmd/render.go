package cmd

import (
	"fmt"
	"os"

	"artclip/pkg/completions"
	"artclip/pkg/config"
	"artclip/pkg/errors"
	"artclip/pkg/export"

	"github.com/spf13/cobra"
)

var (
	renderFile   string
	renderFormat string
)

var renderCmd = &cobra.Command{
	Use:   "render [article-id]",
	Short: "Print one representation of an article to stdout",
	Example: `  # Plain text rendering
  artclip render 5f9d0d60-... --format text/plain

  # Themed HTML
  artclip render 5f9d0d60-... --format text/html

  # The structured record
  artclip render 5f9d0d60-... --format application/x-artclip-article+json`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completions.CompleteArticleIDs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		id := ""
		if len(args) > 0 {
			id = args[0]
		}
		article, err := loadArticle(cfg, id, renderFile)
		if err != nil {
			return err
		}

		exporter, err := newExporter(cfg, article)
		if err != nil {
			return err
		}

		data, ok := exporter.Render(export.Format(renderFormat))
		if !ok {
			return errors.ValidationError(fmt.Sprintf("unsupported format '%s'", renderFormat))
		}

		os.Stdout.Write(data)
		fmt.Println()
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderFile, "file", "", "Read the article from a JSON file instead of the cache")
	renderCmd.Flags().StringVar(&renderFormat, "format", string(export.FormatText), "Format identifier to render")
	renderCmd.RegisterFlagCompletionFunc("format", completions.CompleteFormats) //nolint:errcheck
}
