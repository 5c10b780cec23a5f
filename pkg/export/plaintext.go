package export

import "strings"

// PlainText assembles the text representation: title, body, link
// lines, a date line, and the feed block, in that order. Present
// sections are separated by one blank line; absent sections are skipped
// without leaving a placeholder or doubled separator.
func (e *Exporter) PlainText() string {
	a := e.article

	var b strings.Builder
	section := func(s string) {
		if s != "" {
			b.WriteString(s)
			b.WriteString("\n\n")
		}
	}

	section(a.Title)
	section(e.bodyText())
	if a.Link != "" {
		section("URL: " + a.Link)
	}
	if a.ExternalLink != "" {
		section("External URL: " + a.ExternalLink)
	}
	section("Date: " + a.LogicalDatePublished().Format(e.DateFormat))

	if f := a.Feed; f != nil {
		b.WriteString("Feed: " + f.Name + "\n")
		if f.HomePageLink != "" {
			b.WriteString("Home page: " + f.HomePageLink + "\n")
		}
		b.WriteString("URL: " + f.URL)
	}

	return strings.TrimRight(b.String(), "\n")
}

// bodyText picks the body for the text representation: the plain text
// content, else the summary, else the HTML content converted to text.
func (e *Exporter) bodyText() string {
	a := e.article
	if a.ContentText != "" {
		return a.ContentText
	}
	if a.Summary != "" {
		return a.Summary
	}
	if a.ContentHTML != "" {
		return e.renderer.HTMLText(a.ContentHTML)
	}
	return ""
}
