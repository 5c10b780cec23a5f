package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"artclip/pkg/model"
)

func TestNew_UnknownTheme(t *testing.T) {
	if _, err := New("no-such-theme", ""); err == nil {
		t.Error("New() with unknown theme, want error")
	}
}

func TestBuiltinThemes(t *testing.T) {
	themes := BuiltinThemes()

	for _, want := range []string{"default", "minimal"} {
		found := false
		for _, name := range themes {
			if name == want {
				found = true
			}
		}
		if !found {
			t.Errorf("BuiltinThemes() = %v, missing %q", themes, want)
		}
	}
}

func TestArticleHTML_Default(t *testing.T) {
	r, err := New("default", "", WithDateFormat("2006-01-02"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	published := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := model.Article{
		Title:         "Hello",
		ContentHTML:   "<p>World</p>",
		Link:          "https://x.test/a",
		DatePublished: &published,
		Authors:       []model.Author{{Name: "Ann"}},
		Feed:          &model.Feed{Name: "Feed X", URL: "https://x.test/feed"},
	}

	html := r.ArticleHTML(&a)

	for _, want := range []string{
		"Hello",
		"<p>World</p>",
		`href="https://x.test/a"`,
		"2024-01-01",
		"Ann",
		"Feed X",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("ArticleHTML() missing %q:\n%s", want, html)
		}
	}
}

func TestArticleHTML_EscapesTextFallback(t *testing.T) {
	r, err := New("minimal", "")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	a := model.Article{ContentText: "a < b & c"}
	html := r.ArticleHTML(&a)

	if strings.Contains(html, "a < b") {
		t.Errorf("ArticleHTML() left text unescaped:\n%s", html)
	}
	if !strings.Contains(html, "a &lt; b") {
		t.Errorf("ArticleHTML() = %q, want escaped text body", html)
	}
}

func TestArticleHTML_SummaryFallback(t *testing.T) {
	r, err := New("minimal", "")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	a := model.Article{Summary: "just a summary"}
	if html := r.ArticleHTML(&a); !strings.Contains(html, "just a summary") {
		t.Errorf("ArticleHTML() = %q, want summary body", html)
	}
}

func TestThemeDir_Precedence(t *testing.T) {
	dir := t.TempDir()
	custom := `CUSTOM:{{.Title}}`
	if err := os.WriteFile(filepath.Join(dir, "default.tmpl"), []byte(custom), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	r, err := New("default", dir)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	html := r.ArticleHTML(&model.Article{Title: "Hello"})
	if !strings.HasPrefix(html, "CUSTOM:Hello") {
		t.Errorf("ArticleHTML() = %q, want custom theme output", html)
	}
}

func TestHTMLText(t *testing.T) {
	r, err := New("minimal", "")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "empty",
			html: "",
			want: nil,
		},
		{
			name: "paragraphs",
			html: "<p>first</p><p>second</p>",
			want: []string{"first", "second"},
		},
		{
			name: "links keep text",
			html: `<p>see <a href="https://x.test">the site</a></p>`,
			want: []string{"the site"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.HTMLText(tt.html)
			if tt.html == "" && got != "" {
				t.Errorf("HTMLText(\"\") = %q, want empty", got)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("HTMLText(%q) = %q, missing %q", tt.html, got, want)
				}
			}
			if strings.Contains(got, "<p>") {
				t.Errorf("HTMLText(%q) = %q, tags not stripped", tt.html, got)
			}
		})
	}
}
