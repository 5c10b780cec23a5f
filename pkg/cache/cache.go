// Package cache stores fetched articles in a local SQLite database so
// they can be exported without refetching the feed.
package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"artclip/pkg/model"

	_ "github.com/mattn/go-sqlite3"
)

const selectArticleColumns = `SELECT
		id,
		account_id,
		feed_url,
		feed_name,
		title,
		link,
		date_published,
		full_json,
		cached_at
	FROM articles`

// Config controls retention of cached articles.
type Config struct {
	ArticlesTTL time.Duration
}

var DefaultConfig = Config{
	ArticlesTTL: 7 * 24 * time.Hour,
}

// Store is a SQLite-backed article cache.
type Store struct {
	db     *sql.DB
	config Config
}

// Entry is one cached article row. FullJSON holds the complete article;
// the remaining columns exist for listing and filtering without
// unmarshalling every row.
type Entry struct {
	ID            string
	AccountID     string
	FeedURL       string
	FeedName      string
	Title         string
	Link          string
	DatePublished sql.NullTime
	FullJSON      string
	CachedAt      time.Time
}

// Open opens (creating if needed) the article cache at dbPath.
func Open(dbPath string) (*Store, error) {
	return OpenWithConfig(dbPath, DefaultConfig)
}

func OpenWithConfig(dbPath string, config Config) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, config: config}
	if err := s.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return s, nil
}

func (s *Store) init() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS articles (
			id TEXT PRIMARY KEY,
			account_id TEXT NOT NULL,
			feed_url TEXT NOT NULL,
			feed_name TEXT,
			title TEXT,
			link TEXT,
			date_published DATETIME,
			full_json TEXT NOT NULL,
			cached_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_feed_url ON articles(feed_url)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_cached_at ON articles(cached_at)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute schema query: %w", err)
		}
	}

	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveArticles upserts the given articles.
func (s *Store) SaveArticles(articles []model.Article) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO articles
		(id, account_id, feed_url, feed_name, title, link, date_published, full_json, cached_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i := range articles {
		a := &articles[i]

		fullJSON, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("failed to marshal article %s: %w", a.ID, err)
		}

		feedName := ""
		if a.Feed != nil {
			feedName = a.Feed.Name
		}

		var published interface{}
		if a.DatePublished != nil {
			published = a.DatePublished.UTC()
		}

		if _, err := stmt.Exec(a.ID, a.AccountID, a.FeedURL, feedName,
			a.Title, a.Link, published, string(fullJSON)); err != nil {
			return fmt.Errorf("failed to save article %s: %w", a.ID, err)
		}
	}

	return tx.Commit()
}

// GetArticle returns the cached article with the given ID, or nil when
// it is not cached.
func (s *Store) GetArticle(id string) (*model.Article, error) {
	row := s.db.QueryRow(selectArticleColumns+` WHERE id = ?`, id)

	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query article: %w", err)
	}

	var a model.Article
	if err := json.Unmarshal([]byte(entry.FullJSON), &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal article %s: %w", id, err)
	}
	return &a, nil
}

// ListEntries returns cached article rows, newest publication first.
func (s *Store) ListEntries() ([]Entry, error) {
	rows, err := s.db.Query(selectArticleColumns + ` ORDER BY date_published DESC, cached_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// RemoveArticle deletes one cached article. Removing an absent article
// is not an error.
func (s *Store) RemoveArticle(id string) error {
	_, err := s.db.Exec(`DELETE FROM articles WHERE id = ?`, id)
	return err
}

// Purge removes articles older than the configured TTL and returns how
// many were deleted.
func (s *Store) Purge() (int64, error) {
	cutoff := time.Now().Add(-s.config.ArticlesTTL)
	res, err := s.db.Exec(`DELETE FROM articles WHERE cached_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to purge articles: %w", err)
	}
	return res.RowsAffected()
}

// Count returns the number of cached articles.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM articles`).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var entry Entry
	err := row.Scan(
		&entry.ID,
		&entry.AccountID,
		&entry.FeedURL,
		&entry.FeedName,
		&entry.Title,
		&entry.Link,
		&entry.DatePublished,
		&entry.FullJSON,
		&entry.CachedAt,
	)
	return entry, err
}
