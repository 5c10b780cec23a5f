// Package export maps one article onto the set of clipboard
// representations offered for it: a structured record, an
// application-internal record, plain text, HTML, and the article URL.
// Every operation is total; absent data yields absent fields, never an
// error.
package export

import (
	"encoding/json"
	"sync"

	"artclip/pkg/model"
)

// Format identifies one clipboard representation. The identifiers are
// MIME types, matching what a Wayland/X11 clipboard owner advertises.
type Format string

const (
	// FormatArticle is the public structured record, safe to hand to
	// other applications.
	FormatArticle Format = "application/x-artclip-article+json"
	// FormatInternalArticle carries the account identifier on top of
	// FormatArticle. Only another artclip process can make sense of it,
	// so callers offer it solely for intra-application transfers.
	FormatInternalArticle Format = "application/x-artclip-internal-article+json"
	FormatURL             Format = "text/uri-list"
	FormatText            Format = "text/plain"
	FormatHTML            Format = "text/html"
)

const htmlCharsetPrefix = `<meta charset="utf-8">`

// Renderer supplies the two rendering collaborators the exporter
// delegates to: themed HTML for the html format and HTML-to-text
// conversion for the plain text body fallback.
type Renderer interface {
	ArticleHTML(a *model.Article) string
	HTMLText(html string) string
}

// Exporter derives clipboard representations from a single article. The
// article is treated as immutable; each call derives a fresh value
// except for the HTML rendering, which is computed once per instance.
type Exporter struct {
	article  *model.Article
	renderer Renderer

	// DateFormat is the layout of the plain text "Date:" line.
	DateFormat string

	htmlOnce sync.Once
	html     string
}

// New returns an exporter over article using renderer.
func New(article *model.Article, renderer Renderer) *Exporter {
	return &Exporter{
		article:    article,
		renderer:   renderer,
		DateFormat: "Jan 2, 2006 3:04 PM",
	}
}

// Formats returns the representations available for the article. The
// structured record formats come first so consumers probing in order
// find the native format before the generic ones. The URL format is
// offered only when the article has a preferred link.
func (e *Exporter) Formats() []Format {
	formats := []Format{FormatArticle, FormatInternalArticle}
	if e.article.PreferredLink() != "" {
		formats = append(formats, FormatURL)
	}
	return append(formats, FormatText, FormatHTML)
}

// Render produces the bytes for one format. The second return is false
// for formats this exporter does not support, which callers treat as
// "do not offer", not as an error.
func (e *Exporter) Render(format Format) ([]byte, bool) {
	switch format {
	case FormatArticle:
		data, err := json.Marshal(e.Record())
		if err != nil {
			return nil, false
		}
		return data, true
	case FormatInternalArticle:
		data, err := json.Marshal(e.InternalRecord())
		if err != nil {
			return nil, false
		}
		return data, true
	case FormatURL:
		return []byte(e.URL()), true
	case FormatText:
		return []byte(e.PlainText()), true
	case FormatHTML:
		return []byte(e.HTML()), true
	default:
		return nil, false
	}
}

// HTML returns the themed rendering of the article prefixed with an
// explicit UTF-8 charset declaration. The rendering is a pure function
// of the article and theme, so it is computed once and reused.
func (e *Exporter) HTML() string {
	e.htmlOnce.Do(func() {
		e.html = htmlCharsetPrefix + "\n" + e.renderer.ArticleHTML(e.article)
	})
	return e.html
}

// URL returns the article's preferred link. When the article has no
// link this returns "" as a defensive default; Formats() already
// withholds FormatURL in that case, so correct callers never reach the
// empty branch.
func (e *Exporter) URL() string {
	return e.article.PreferredLink()
}
