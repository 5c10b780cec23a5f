package model

import (
	"testing"
	"time"
)

func TestPreferredLink(t *testing.T) {
	tests := []struct {
		name    string
		article Article
		want    string
	}{
		{
			name:    "canonical link wins",
			article: Article{Link: "https://x.test/a", ExternalLink: "https://x.test/ext"},
			want:    "https://x.test/a",
		},
		{
			name:    "external link fallback",
			article: Article{ExternalLink: "https://x.test/ext"},
			want:    "https://x.test/ext",
		},
		{
			name:    "no links",
			article: Article{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.article.PreferredLink(); got != tt.want {
				t.Errorf("PreferredLink() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLogicalDatePublished(t *testing.T) {
	published := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	modified := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)
	arrived := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		article Article
		want    time.Time
	}{
		{
			name:    "published wins",
			article: Article{DatePublished: &published, DateModified: &modified, DateArrived: arrived},
			want:    published,
		},
		{
			name:    "modified fallback",
			article: Article{DateModified: &modified, DateArrived: arrived},
			want:    modified,
		},
		{
			name:    "arrived fallback",
			article: Article{DateArrived: arrived},
			want:    arrived,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.article.LogicalDatePublished(); !got.Equal(tt.want) {
				t.Errorf("LogicalDatePublished() = %v, want %v", got, tt.want)
			}
		})
	}
}
