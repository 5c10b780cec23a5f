package cmd

import (
	"fmt"

	"artclip/pkg/completions"
	"artclip/pkg/config"

	"github.com/spf13/cobra"
)

var formatsFile string

var formatsCmd = &cobra.Command{
	Use:   "formats [article-id]",
	Short: "List the clipboard formats supported for an article",
	Long: `List the format identifiers an article can be exported as. The URL
format only appears when the article has a canonical or external link.`,
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
		article, err := loadArticle(cfg, id, formatsFile)
		if err != nil {
			return err
		}

		exporter, err := newExporter(cfg, article)
		if err != nil {
			return err
		}

		formats := exporter.Formats()
		writer := NewOutputWriter(outputFormat)
		if writer.IsStructured() {
			return writer.Write(formats)
		}

		for _, f := range formats {
			fmt.Println(f)
		}
		return nil
	},
}

func init() {
	formatsCmd.Flags().StringVar(&formatsFile, "file", "", "Read the article from a JSON file instead of the cache")
}
