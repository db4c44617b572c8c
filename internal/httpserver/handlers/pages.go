package handlers

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/quill/internal/domain"
	"github.com/MrSnakeDoc/quill/internal/httpserver/deps"
	"github.com/MrSnakeDoc/quill/internal/index"
	"github.com/MrSnakeDoc/quill/internal/logger"
)

// servePage writes a rendered page, going through the page cache when one is
// configured. Cache failures are logged and ignored; rendering always wins.
func servePage(d deps.Deps, w http.ResponseWriter, r *http.Request, render func(w *bytes.Buffer) error) {
	ctx := r.Context()
	path := r.URL.Path
	generation := d.Index.Generation()

	if d.Cache.Enabled() {
		cached, err := d.Cache.GetPage(ctx, generation, path)
		if err != nil {
			d.Logger.Warn("page cache read failed",
				logger.String("path", path),
				logger.Error(err))
		} else if cached != "" {
			d.Logger.Debug("page cache hit", logger.String("path", path))
			writeHTML(w, []byte(cached))
			return
		}
	}

	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		d.Logger.Error("failed to render page",
			logger.String("path", path),
			logger.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if d.Cache.Enabled() {
		if err := d.Cache.SetPage(ctx, generation, path, buf.String()); err != nil {
			d.Logger.Warn("page cache write failed",
				logger.String("path", path),
				logger.Error(err))
		}
	}

	writeHTML(w, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

// Home serves the landing page.
func Home(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := d.Index.Snapshot()
		servePage(d, w, r, func(buf *bytes.Buffer) error {
			return d.Renderer.Home(buf, snapshot.Featured(d.FeaturedLimit), snapshot.All())
		})
	}
}

// Article serves one article page with its related list.
func Article(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := d.Index.Snapshot()

		article, ok := snapshot.ByID(chi.URLParam(r, "slug"))
		if !ok {
			http.NotFound(w, r)
			return
		}

		related := domain.RankRelated(article, snapshot.All(), d.RelatedLimit, d.Weights)

		servePage(d, w, r, func(buf *bytes.Buffer) error {
			return d.Renderer.Article(buf, article, related)
		})
	}
}

// Category serves the article list for one category.
// An unknown category value is a 404; a known category with no articles
// renders an empty list.
func Category(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := domain.ParseCategory(chi.URLParam(r, "category"))
		if err != nil {
			http.NotFound(w, r)
			return
		}

		snapshot := d.Index.Snapshot()
		servePage(d, w, r, func(buf *bytes.Buffer) error {
			return d.Renderer.Category(buf, category, snapshot.ByCategory(category))
		})
	}
}

// TagIndex serves the listing of all canonical tags.
func TagIndex(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := d.Index.Snapshot()
		servePage(d, w, r, func(buf *bytes.Buffer) error {
			return d.Renderer.TagIndex(buf, snapshot.Tags())
		})
	}
}

// Tag serves the article list for one tag slug.
func Tag(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := d.Index.Snapshot()

		display, ok := findTagBySlug(snapshot, chi.URLParam(r, "slug"))
		if !ok {
			http.NotFound(w, r)
			return
		}

		servePage(d, w, r, func(buf *bytes.Buffer) error {
			return d.Renderer.Tag(buf, display, snapshot.ByTag(display))
		})
	}
}

// findTagBySlug resolves a URL slug back to the canonical display form.
func findTagBySlug(snapshot *index.Snapshot, slug string) (string, bool) {
	if slug == "" {
		return "", false
	}
	for _, display := range snapshot.Tags() {
		if domain.Slugify(display) == slug {
			return display, true
		}
	}
	return "", false
}

// Stylesheet serves the embedded site stylesheet.
func Stylesheet(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write(d.Renderer.Stylesheet())
	}
}
