package render

import (
	"strings"
	"sync"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
)

var textConverter = sync.OnceValue(func() *converter.Converter {
	return converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
})

// HTMLText converts an HTML fragment to readable plain text. The
// conversion is best-effort: on failure the input is returned with tags
// left in place rather than losing the content.
func (r *Renderer) HTMLText(html string) string {
	if html == "" {
		return ""
	}
	text, err := textConverter().ConvertString(html)
	if err != nil {
		return strings.TrimSpace(html)
	}
	return strings.TrimSpace(text)
}
