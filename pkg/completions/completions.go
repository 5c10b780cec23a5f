package completions

import (
	"fmt"

	"artclip/pkg/cache"
	"artclip/pkg/config"
	"artclip/pkg/export"
	"artclip/pkg/render"

	"github.com/spf13/cobra"
)

// CompleteFormats completes export format identifiers.
func CompleteFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	formats := []export.Format{
		export.FormatArticle,
		export.FormatInternalArticle,
		export.FormatURL,
		export.FormatText,
		export.FormatHTML,
	}
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		out = append(out, string(f))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// CompleteThemes completes built-in theme names.
func CompleteThemes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return render.BuiltinThemes(), cobra.ShellCompDirectiveNoFileComp
}

// CompleteArticleIDs completes IDs of cached articles, annotated with
// their titles.
func CompleteArticleIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	store, err := cache.Open(cfg.Cache.Path)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	defer store.Close()

	entries, err := store.ListEntries()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, fmt.Sprintf("%s\t%s", e.ID, e.Title))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
