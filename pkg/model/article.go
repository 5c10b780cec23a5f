package model

import "time"

// Article is one entry of a feed, consumed read-only by the exporter.
// Optional string fields use the empty string as absence; optional
// dates are nil pointers.
type Article struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id,omitempty"`
	WebFeedID string `json:"web_feed_id,omitempty"`
	FeedURL   string `json:"feed_url,omitempty"`
	UniqueID  string `json:"unique_id"`

	Title       string `json:"title,omitempty"`
	ContentHTML string `json:"content_html,omitempty"`
	ContentText string `json:"content_text,omitempty"`
	Summary     string `json:"summary,omitempty"`

	Link         string `json:"link,omitempty"`
	ExternalLink string `json:"external_link,omitempty"`
	ImageLink    string `json:"image_link,omitempty"`

	DatePublished *time.Time `json:"date_published,omitempty"`
	DateModified  *time.Time `json:"date_modified,omitempty"`
	DateArrived   time.Time  `json:"date_arrived"`

	Read    bool `json:"read,omitempty"`
	Starred bool `json:"starred,omitempty"`

	Authors []Author `json:"authors,omitempty"`

	// Feed is the owning feed's display metadata, nil when the article
	// is not associated with a feed.
	Feed *Feed `json:"feed,omitempty"`
}

// Author of an article. All fields optional.
type Author struct {
	Name         string `json:"name,omitempty"`
	Link         string `json:"link,omitempty"`
	AvatarLink   string `json:"avatar_link,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
}

// Feed is the display metadata of the feed an article belongs to.
type Feed struct {
	Name         string `json:"name,omitempty"`
	HomePageLink string `json:"home_page_link,omitempty"`
	URL          string `json:"url"`
}

// PreferredLink returns the canonical link, falling back to the
// external link. Empty when the article has neither.
func (a *Article) PreferredLink() string {
	if a.Link != "" {
		return a.Link
	}
	return a.ExternalLink
}

// LogicalDatePublished returns the best available date for display:
// published, else modified, else the arrival date.
func (a *Article) LogicalDatePublished() time.Time {
	if a.DatePublished != nil {
		return *a.DatePublished
	}
	if a.DateModified != nil {
		return *a.DateModified
	}
	return a.DateArrived
}
