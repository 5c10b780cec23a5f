package cmd

import (
	"context"
	"fmt"
	"time"

	"artclip/pkg/cache"
	"artclip/pkg/config"
	"artclip/pkg/errors"
	"artclip/pkg/feed"
	"artclip/pkg/logger"
	"artclip/pkg/progress"

	"github.com/spf13/cobra"
)

var fetchTimeout time.Duration

var fetchCmd = &cobra.Command{
	Use:   "fetch <feed-url>",
	Short: "Fetch a feed and cache its articles",
	Long:  `Fetch an RSS/Atom/JSON feed, map its items to articles, and store them in the local cache.`,
	Example: `  # Fetch a feed
  artclip fetch https://example.org/feed.xml

  # Fetch and show the cached articles as JSON
  artclip fetch https://example.org/feed.xml --output json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		feedURL := args[0]

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		account := cfg.ResolveAccount()

		ctx, cancel := context.WithTimeout(cmd.Context(), fetchTimeout)
		defer cancel()

		spinner := progress.NewSpinner("Fetching " + feedURL)
		spinner.Start()
		meta, articles, err := feed.NewFetcher(account.ID).Fetch(ctx, feedURL)
		spinner.Stop()
		if err != nil {
			return err
		}

		store, err := cache.OpenWithConfig(cfg.Cache.Path, cache.Config{
			ArticlesTTL: time.Duration(cfg.Cache.Days) * 24 * time.Hour,
		})
		if err != nil {
			return errors.CacheError(err)
		}
		defer store.Close()

		if err := store.SaveArticles(articles); err != nil {
			return errors.CacheError(err)
		}
		if purged, err := store.Purge(); err == nil && purged > 0 {
			logger.Debug().Int64("purged", purged).Msg("expired cached articles removed")
		}

		logger.Info().
			Str("feed", meta.Name).
			Int("articles", len(articles)).
			Msg("feed fetched")

		writer := NewOutputWriter(outputFormat)
		if writer.IsStructured() {
			return writer.Write(articles)
		}

		fmt.Printf("Fetched %d article(s) from %s\n\n", len(articles), meta.Name)
		for _, a := range articles {
			fmt.Printf("  %s  %s\n", a.ID, truncate(a.Title, 60))
		}
		fmt.Println("\nUse 'artclip copy <article-id>' to export one to the clipboard.")
		return nil
	},
}

func init() {
	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 30*time.Second, "Feed fetch timeout (e.g., 30s, 1m)")
}
