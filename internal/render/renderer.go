package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/MrSnakeDoc/quill/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets/style.css
var stylesheet []byte

// SiteMeta describes the site for page chrome and the feed.
type SiteMeta struct {
	Title       string
	URL         string // canonical base URL, no trailing slash
	Description string
}

// Renderer turns articles into HTML pages.
// Markdown goes through goldmark and the result is sanitized before it is
// trusted as template.HTML.
type Renderer struct {
	site   SiteMeta
	md     goldmark.Markdown
	policy *bluemonday.Policy
	tmpl   *template.Template
	wpm    int
}

// New builds a renderer with all page templates parsed.
func New(site SiteMeta, wordsPerMinute int) (*Renderer, error) {
	r := &Renderer{
		site:   site,
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: bluemonday.UGCPolicy(),
		wpm:    wordsPerMinute,
	}

	funcs := template.FuncMap{
		"slug": domain.Slugify,
		"readtime": func(body string) int {
			return domain.EstimateReadingTime(body, r.wpm)
		},
		"date": func(t time.Time) string {
			return t.Format("January 2, 2006")
		},
		"isodate": func(t time.Time) string {
			return t.Format("2006-01-02")
		},
	}

	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	r.tmpl = tmpl

	return r, nil
}

// Markdown converts an article body to sanitized HTML.
func (r *Renderer) Markdown(body string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}

// Stylesheet returns the embedded site stylesheet.
func (r *Renderer) Stylesheet() []byte {
	return stylesheet
}

type basePage struct {
	Site       SiteMeta
	PageTitle  string
	Categories []domain.Category
}

func (r *Renderer) base(pageTitle string) basePage {
	return basePage{
		Site:       r.site,
		PageTitle:  pageTitle,
		Categories: domain.Categories(),
	}
}

type homePage struct {
	basePage
	Featured []*domain.Article
	Articles []*domain.Article
}

// Home renders the landing page: featured articles on top, the full
// recency-ordered list below.
func (r *Renderer) Home(w io.Writer, featured, articles []*domain.Article) error {
	return r.tmpl.ExecuteTemplate(w, "home.html", homePage{
		basePage: r.base(r.site.Title),
		Featured: featured,
		Articles: articles,
	})
}

type articlePage struct {
	basePage
	Article     *domain.Article
	Body        template.HTML
	ReadingTime int
	Related     []*domain.Article
}

// Article renders a single article page with its related list.
func (r *Renderer) Article(w io.Writer, a *domain.Article, related []*domain.Article) error {
	body, err := r.Markdown(a.Body)
	if err != nil {
		return err
	}
	return r.tmpl.ExecuteTemplate(w, "article.html", articlePage{
		basePage:    r.base(a.Title),
		Article:     a,
		Body:        body,
		ReadingTime: domain.EstimateReadingTime(a.Body, r.wpm),
		Related:     related,
	})
}

type listPage struct {
	basePage
	Heading  string
	Articles []*domain.Article
}

// Category renders the article list for one category.
func (r *Renderer) Category(w io.Writer, category domain.Category, articles []*domain.Article) error {
	return r.tmpl.ExecuteTemplate(w, "list.html", listPage{
		basePage: r.base(string(category)),
		Heading:  string(category),
		Articles: articles,
	})
}

// Tag renders the article list for one tag (canonical display form).
func (r *Renderer) Tag(w io.Writer, tag string, articles []*domain.Article) error {
	return r.tmpl.ExecuteTemplate(w, "list.html", listPage{
		basePage: r.base(tag),
		Heading:  tag,
		Articles: articles,
	})
}

type tagIndexPage struct {
	basePage
	Tags []string
}

// TagIndex renders the listing of all canonical tags.
func (r *Renderer) TagIndex(w io.Writer, tags []string) error {
	return r.tmpl.ExecuteTemplate(w, "tags.html", tagIndexPage{
		basePage: r.base("tags"),
		Tags:     tags,
	})
}
