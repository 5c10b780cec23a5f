package cmd

import (
	"encoding/json"
	"os"

	"artclip/pkg/cache"
	"artclip/pkg/config"
	"artclip/pkg/errors"
	"artclip/pkg/export"
	"artclip/pkg/model"
	"artclip/pkg/render"
)

// loadArticle resolves the article to export: from a JSON file when
// filePath is set, otherwise from the cache by ID.
func loadArticle(cfg *config.Config, id, filePath string) (*model.Article, error) {
	if filePath != "" {
		return articleFromFile(filePath)
	}

	if id == "" {
		return nil, errors.ValidationError("an article ID or --file is required")
	}

	store, err := cache.Open(cfg.Cache.Path)
	if err != nil {
		return nil, errors.CacheError(err)
	}
	defer store.Close()

	article, err := store.GetArticle(id)
	if err != nil {
		return nil, errors.CacheError(err)
	}
	if article == nil {
		return nil, errors.ArticleNotFoundError(id)
	}
	return article, nil
}

func articleFromFile(path string) (*model.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewWithError(errors.ExitCodeFileOperation, "failed to read article file", err)
	}

	var article model.Article
	if err := json.Unmarshal(data, &article); err != nil {
		return nil, errors.NewWithError(errors.ExitCodeValidation, "failed to parse article file", err)
	}
	return &article, nil
}

// newExporter builds the exporter for an article using the configured
// theme and date format.
func newExporter(cfg *config.Config, article *model.Article) (*export.Exporter, error) {
	renderer, err := render.New(cfg.Theme.Name, cfg.Theme.Dir,
		render.WithDateFormat(cfg.Export.DateFormat))
	if err != nil {
		return nil, err
	}

	exporter := export.New(article, renderer)
	exporter.DateFormat = cfg.Export.DateFormat
	return exporter, nil
}
