package cmd

import (
	"fmt"

	"artclip/pkg/clipboard"
	"artclip/pkg/completions"
	"artclip/pkg/config"
	"artclip/pkg/errors"
	"artclip/pkg/export"

	"github.com/spf13/cobra"
)

var (
	copyFile     string
	copyInternal bool
	copyFormat   string
)

var copyCmd = &cobra.Command{
	Use:   "copy [article-id]",
	Short: "Copy an article to the clipboard in every supported format",
	Long: `Export an article to the system clipboard. All supported formats are
offered at once (structured record, plain text, HTML, and the article URL
when it has one), so the pasting application picks the richest one it
understands. The internal record format carries the account identifier and
is only offered with --internal.`,
	Example: `  # Copy a cached article
  artclip copy 5f9d0d60-...

  # Copy an article from a JSON file
  artclip copy --file article.json

  # Restrict to a single format
  artclip copy 5f9d0d60-... --format text/plain

  # Include the application-internal record format
  artclip copy 5f9d0d60-... --internal`,
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
		article, err := loadArticle(cfg, id, copyFile)
		if err != nil {
			return err
		}

		exporter, err := newExporter(cfg, article)
		if err != nil {
			return err
		}

		formats := make(clipboard.Formats)
		offered := 0
		for _, f := range exporter.Formats() {
			if f == export.FormatInternalArticle && !copyInternal {
				continue
			}
			if copyFormat != "" && string(f) != copyFormat {
				continue
			}
			data, ok := exporter.Render(f)
			if !ok {
				continue
			}
			formats[string(f)] = data
			offered++
		}
		if offered == 0 {
			return errors.ValidationError(fmt.Sprintf("format '%s' is not supported for this article", copyFormat))
		}

		if err := clipboard.Write(formats, exporter.PlainText()); err != nil {
			return errors.ClipboardError(err)
		}

		fmt.Printf("✓ Copied %q to the clipboard (%d format(s))\n", truncate(article.Title, 50), offered)
		return nil
	},
}

func init() {
	copyCmd.Flags().StringVar(&copyFile, "file", "", "Read the article from a JSON file instead of the cache")
	copyCmd.Flags().BoolVar(&copyInternal, "internal", false, "Also offer the application-internal record format")
	copyCmd.Flags().StringVar(&copyFormat, "format", "", "Restrict the export to one format identifier")
	copyCmd.RegisterFlagCompletionFunc("format", completions.CompleteFormats) //nolint:errcheck
}
