// Package render turns articles into themed HTML and converts HTML
// bodies to plain text. It backs the html and text clipboard formats.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"artclip/pkg/errors"
	"artclip/pkg/model"
)

//go:embed themes/*.tmpl
var builtinThemes embed.FS

// Renderer renders article bodies with a named theme. A Renderer is
// immutable after construction and safe for concurrent use.
type Renderer struct {
	tmpl       *template.Template
	theme      string
	dateFormat string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDateFormat sets the display format for article dates.
func WithDateFormat(layout string) Option {
	return func(r *Renderer) {
		r.dateFormat = layout
	}
}

// New loads the named theme. User templates in themeDir take precedence
// over the built-in themes; themeDir may be empty.
func New(theme, themeDir string, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		theme:      theme,
		dateFormat: "Jan 2, 2006 3:04 PM",
	}
	for _, opt := range opts {
		opt(r)
	}

	src, err := themeSource(theme, themeDir)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(theme).Parse(src)
	if err != nil {
		return nil, errors.NewWithError(errors.ExitCodeValidation,
			fmt.Sprintf("theme '%s' failed to parse", theme), err)
	}
	r.tmpl = tmpl

	return r, nil
}

// Theme returns the name of the loaded theme.
func (r *Renderer) Theme() string {
	return r.theme
}

// articleData is the template input. Body is pre-selected HTML; the
// remaining fields are already display-formatted.
type articleData struct {
	Title     string
	Body      template.HTML
	Link      string
	ImageLink string
	Date      string
	Authors   []model.Author
	FeedName  string
}

// ArticleHTML renders the article body with the loaded theme. It is
// total: template failures degrade to an unthemed fallback rather than
// erroring, since clipboard export must always produce a value.
func (r *Renderer) ArticleHTML(a *model.Article) string {
	data := articleData{
		Title:     a.Title,
		Body:      bodyHTML(a),
		Link:      a.PreferredLink(),
		ImageLink: a.ImageLink,
		Date:      r.formatDate(a.LogicalDatePublished()),
		Authors:   a.Authors,
	}
	if a.Feed != nil {
		data.FeedName = a.Feed.Name
	}

	var b strings.Builder
	if err := r.tmpl.Execute(&b, data); err != nil {
		return fallbackHTML(data)
	}
	return b.String()
}

func (r *Renderer) formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(r.dateFormat)
}

// bodyHTML picks the best HTML body: content HTML, else the summary,
// else the plain text content escaped into paragraphs.
func bodyHTML(a *model.Article) template.HTML {
	if a.ContentHTML != "" {
		return template.HTML(a.ContentHTML)
	}
	if a.Summary != "" {
		return template.HTML("<p>" + template.HTMLEscapeString(a.Summary) + "</p>")
	}
	if a.ContentText != "" {
		return template.HTML("<p>" + template.HTMLEscapeString(a.ContentText) + "</p>")
	}
	return ""
}

func fallbackHTML(data articleData) string {
	var b strings.Builder
	if data.Title != "" {
		b.WriteString("<h1>")
		b.WriteString(template.HTMLEscapeString(data.Title))
		b.WriteString("</h1>\n")
	}
	b.WriteString(string(data.Body))
	return b.String()
}

// BuiltinThemes lists the names of the embedded themes.
func BuiltinThemes() []string {
	entries, err := builtinThemes.ReadDir("themes")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".tmpl"))
	}
	sort.Strings(names)
	return names
}

// themeSource resolves a theme name to template text, preferring a user
// template file over the built-in of the same name.
func themeSource(theme, themeDir string) (string, error) {
	if themeDir != "" {
		path := filepath.Join(themeDir, theme+".tmpl")
		if data, err := os.ReadFile(path); err == nil {
			return string(data), nil
		}
	}

	data, err := builtinThemes.ReadFile("themes/" + theme + ".tmpl")
	if err != nil {
		return "", errors.ThemeNotFoundError(theme)
	}
	return string(data), nil
}
