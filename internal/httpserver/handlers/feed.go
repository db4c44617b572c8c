package handlers

import (
	"bytes"
	"net/http"

	"github.com/MrSnakeDoc/quill/internal/feed"
	"github.com/MrSnakeDoc/quill/internal/httpserver/deps"
	"github.com/MrSnakeDoc/quill/internal/logger"
)

// Feed serves the RSS feed built from the current snapshot head.
func Feed(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		generation := d.Index.Generation()

		if d.Cache.Enabled() {
			cached, err := d.Cache.GetPage(ctx, generation, r.URL.Path)
			if err == nil && cached != "" {
				writeRSS(w, []byte(cached))
				return
			}
		}

		rss, err := feed.BuildRSS(d.Site, d.Index.Snapshot().All(), d.FeedLimit, d.TimeNow())
		if err != nil {
			d.Logger.Error("failed to build feed", logger.Error(err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		if d.Cache.Enabled() {
			if err := d.Cache.SetPage(ctx, generation, r.URL.Path, rss); err != nil {
				d.Logger.Warn("feed cache write failed", logger.Error(err))
			}
		}

		writeRSS(w, []byte(rss))
	}
}

func writeRSS(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	_, _ = w.Write(bytes.TrimSpace(body))
}
