package export

import "time"

// AuthorRecord is the structured serialization of one author. All keys
// are optional and omitted when absent.
type AuthorRecord struct {
	Name         string `json:"name,omitempty"`
	URL          string `json:"url,omitempty"`
	AvatarURL    string `json:"avatarURL,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
}

// ExportRecord is the public structured serialization of an article.
// The JSON keys are a stable wire contract; absent fields are omitted
// entirely rather than serialized as empty strings, so a round trip
// preserves which fields the source article actually had.
type ExportRecord struct {
	ArticleID     string         `json:"articleID"`
	UniqueID      string         `json:"uniqueID"`
	FeedURL       string         `json:"feedURL,omitempty"`
	WebFeedID     string         `json:"webFeedID,omitempty"`
	Title         string         `json:"title,omitempty"`
	ContentHTML   string         `json:"contentHTML,omitempty"`
	ContentText   string         `json:"contentText,omitempty"`
	URL           string         `json:"url,omitempty"`
	ExternalURL   string         `json:"externalURL,omitempty"`
	Summary       string         `json:"summary,omitempty"`
	ImageURL      string         `json:"imageURL,omitempty"`
	DatePublished *time.Time     `json:"datePublished,omitempty"`
	DateModified  *time.Time     `json:"dateModified,omitempty"`
	DateArrived   *time.Time     `json:"dateArrived,omitempty"`
	Authors       []AuthorRecord `json:"authors,omitempty"`
}

// InternalExportRecord is an ExportRecord plus the owning account
// identifier. The account ID is only meaningful to another instance of
// this application, so this record is never offered to other programs.
type InternalExportRecord struct {
	ExportRecord
	AccountID string `json:"accountID,omitempty"`
}

// Record builds the public export record from the current article
// state.
func (e *Exporter) Record() ExportRecord {
	a := e.article

	rec := ExportRecord{
		ArticleID:     a.ID,
		UniqueID:      a.UniqueID,
		FeedURL:       a.FeedURL,
		WebFeedID:     a.WebFeedID,
		Title:         a.Title,
		ContentHTML:   a.ContentHTML,
		ContentText:   a.ContentText,
		URL:           a.Link,
		ExternalURL:   a.ExternalLink,
		Summary:       a.Summary,
		ImageURL:      a.ImageLink,
		DatePublished: a.DatePublished,
		DateModified:  a.DateModified,
	}
	if !a.DateArrived.IsZero() {
		arrived := a.DateArrived
		rec.DateArrived = &arrived
	}

	// Authors stay absent, not empty, when the article has none.
	if len(a.Authors) > 0 {
		rec.Authors = make([]AuthorRecord, 0, len(a.Authors))
		for _, author := range a.Authors {
			rec.Authors = append(rec.Authors, AuthorRecord{
				Name:         author.Name,
				URL:          author.Link,
				AvatarURL:    author.AvatarLink,
				EmailAddress: author.EmailAddress,
			})
		}
	}

	return rec
}

// InternalRecord builds the internal export record: the public record
// with the account identifier added.
func (e *Exporter) InternalRecord() InternalExportRecord {
	return InternalExportRecord{
		ExportRecord: e.Record(),
		AccountID:    e.article.AccountID,
	}
}
