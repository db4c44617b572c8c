package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/quill/internal/httpserver/deps"
	"github.com/MrSnakeDoc/quill/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/quill/internal/httpserver/mw"
)

func init() { Register(registerPages) }

func registerPages(r chi.Router, d deps.Deps) {
	pages := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))

	pages.Get("/", handlers.Home(d))
	pages.Get("/articles/{slug}", handlers.Article(d))
	pages.Get("/categories/{category}", handlers.Category(d))
	pages.Get("/tags", handlers.TagIndex(d))
	pages.Get("/tags/{slug}", handlers.Tag(d))
	pages.Get("/static/style.css", handlers.Stylesheet(d))
}
