package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/quill/internal/httpserver/deps"
	"github.com/MrSnakeDoc/quill/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/quill/internal/httpserver/mw"
)

func init() { Register(registerFeed) }

func registerFeed(r chi.Router, d deps.Deps) {
	r.With(mw.EnforceHost(d.AllowedHosts, d.Logger)).Get("/feed.xml", handlers.Feed(d))
}
