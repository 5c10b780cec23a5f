package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Feed X</title>
    <link>https://x.test/</link>
    <description>Example feed</description>
    <item>
      <title>Hello</title>
      <link>https://x.test/a</link>
      <guid>guid-a</guid>
      <description>summary of hello</description>
      <author>ann@x.test (Ann)</author>
      <pubDate>Mon, 01 Jan 2024 12:00:00 GMT</pubDate>
    </item>
    <item>
      <title>No GUID</title>
      <link>https://x.test/b</link>
      <description>second item</description>
    </item>
  </channel>
</rss>`

func serveFeed(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(body)) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch(t *testing.T) {
	srv := serveFeed(t, sampleRSS)

	meta, articles, err := NewFetcher("acct1").Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}

	if meta.Name != "Feed X" {
		t.Errorf("meta.Name = %q, want Feed X", meta.Name)
	}
	if meta.HomePageLink != "https://x.test/" {
		t.Errorf("meta.HomePageLink = %q", meta.HomePageLink)
	}
	if meta.URL != srv.URL {
		t.Errorf("meta.URL = %q, want %q", meta.URL, srv.URL)
	}

	if len(articles) != 2 {
		t.Fatalf("len(articles) = %d, want 2", len(articles))
	}

	a := articles[0]
	if a.Title != "Hello" {
		t.Errorf("Title = %q", a.Title)
	}
	if a.UniqueID != "guid-a" {
		t.Errorf("UniqueID = %q, want guid-a", a.UniqueID)
	}
	if a.Link != "https://x.test/a" {
		t.Errorf("Link = %q", a.Link)
	}
	if a.Summary != "summary of hello" {
		t.Errorf("Summary = %q", a.Summary)
	}
	if a.AccountID != "acct1" {
		t.Errorf("AccountID = %q", a.AccountID)
	}
	if a.DatePublished == nil {
		t.Error("DatePublished = nil, want parsed date")
	}
	if a.DateArrived.IsZero() {
		t.Error("DateArrived is zero")
	}
	if a.Feed == nil || a.Feed.Name != "Feed X" {
		t.Errorf("Feed = %+v", a.Feed)
	}
	if len(a.Authors) != 1 || a.Authors[0].Name == "" {
		t.Errorf("Authors = %+v", a.Authors)
	}

	// Item without a GUID falls back to its link for identity.
	if articles[1].UniqueID != "https://x.test/b" {
		t.Errorf("UniqueID fallback = %q, want the link", articles[1].UniqueID)
	}
}

func TestFetch_StableArticleIDs(t *testing.T) {
	srv := serveFeed(t, sampleRSS)

	fetcher := NewFetcher("acct1")
	_, first, err := fetcher.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	_, second, err := fetcher.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}

	if first[0].ID == "" {
		t.Fatal("article ID empty")
	}
	if first[0].ID != second[0].ID {
		t.Errorf("article ID changed between fetches: %q vs %q", first[0].ID, second[0].ID)
	}
	if first[0].ID == first[1].ID {
		t.Error("distinct items share an ID")
	}
}

func TestFetch_DifferentAccountsDifferentIDs(t *testing.T) {
	srv := serveFeed(t, sampleRSS)

	_, a, err := NewFetcher("acct1").Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	_, b, err := NewFetcher("acct2").Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}

	if a[0].ID == b[0].ID {
		t.Error("articles from different accounts share an ID")
	}
}

func TestFetch_BadFeed(t *testing.T) {
	srv := serveFeed(t, "not a feed")

	_, _, err := NewFetcher("acct1").Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Error("Fetch() with invalid feed body, want error")
	}
}
