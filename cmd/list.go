package cmd

import (
	"fmt"

	"artclip/pkg/cache"
	"artclip/pkg/config"
	"artclip/pkg/errors"
	"artclip/pkg/filter"

	"github.com/spf13/cobra"
)

var (
	listFilter    string
	listMatchMode string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached articles",
	Long:  `List articles in the local cache, optionally filtered by title or feed name.`,
	Example: `  # List everything cached
  artclip list

  # Filter by title or feed name
  artclip list --filter golang

  # Regex filter
  artclip list --filter '^Release' --match-mode regex`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		store, err := cache.Open(cfg.Cache.Path)
		if err != nil {
			return errors.CacheError(err)
		}
		defer store.Close()

		entries, err := store.ListEntries()
		if err != nil {
			return errors.CacheError(err)
		}

		if listFilter != "" {
			mode, err := filter.ParseMode(listMatchMode)
			if err != nil {
				return errors.ValidationError(err.Error())
			}
			f, err := filter.NewStringFilter(listFilter, mode)
			if err != nil {
				return errors.ValidationError(err.Error())
			}
			entries = filter.FilterEntries(entries, f)
		}

		writer := NewOutputWriter(outputFormat)
		if writer.IsStructured() {
			return writer.Write(entries)
		}

		if len(entries) == 0 {
			fmt.Println("No cached articles.")
			fmt.Println("Use 'artclip fetch <feed-url>' to fetch some.")
			return nil
		}

		fmt.Printf("%-36s  %-16s  %-18s  %s\n", "ID", "DATE", "FEED", "TITLE")
		for _, e := range entries {
			date := "-"
			if e.DatePublished.Valid {
				date = FormatTimestamp(e.DatePublished.Time)
			}
			fmt.Printf("%-36s  %-16s  %-18s  %s\n",
				e.ID, date, truncate(e.FeedName, 18), truncate(e.Title, 50))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "", "Filter by title or feed name")
	listCmd.Flags().StringVar(&listMatchMode, "match-mode", "contains", "Filter mode (exact, contains, regex, fuzzy)")
}
