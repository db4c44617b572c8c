package handlers

import (
	"context"
	"net/http"
	"time"

	"encoding/json"

	"github.com/MrSnakeDoc/quill/internal/httpserver/deps"
)

type componentStatus struct {
	OK             bool   `json:"ok"`
	ArticlesLoaded *int   `json:"articles_loaded,omitempty"`
	LastReload     string `json:"last_reload,omitempty"`
	Mode           string `json:"mode,omitempty"`
	Impact         string `json:"impact,omitempty"`
	Error          string `json:"error,omitempty"`
}

type infraResponse struct {
	ServingMode string                     `json:"serving_mode"`
	Components  map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		articleCount := d.Index.Snapshot().Len()
		lastReload := d.Index.LastReload()
		lastReloadStr := "never"
		if !lastReload.IsZero() {
			lastReloadStr = lastReload.Format("2006-01-02 15:04:05")
		}

		cacheStatus := checkCache(d)

		components := map[string]componentStatus{
			"content": {
				OK:             articleCount > 0,
				ArticlesLoaded: &articleCount,
				LastReload:     lastReloadStr,
			},
			"cache": cacheStatus,
		}

		response := infraResponse{
			ServingMode: determineServingMode(components),
			Components:  components,
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

func determineServingMode(components map[string]componentStatus) string {
	if content, exists := components["content"]; exists {
		if !content.OK || (content.ArticlesLoaded != nil && *content.ArticlesLoaded == 0) {
			return "empty" // No articles loaded
		}
	}

	// Cache down is non-critical: pages render on every request instead
	if cache, exists := components["cache"]; exists && !cache.OK {
		return "uncached"
	}

	return "cached"
}

func checkCache(d deps.Deps) componentStatus {
	if !d.Cache.Enabled() {
		return componentStatus{
			OK:     false,
			Mode:   "disabled",
			Impact: "pages-rendered-per-request",
			Error:  "cache not configured",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.Cache.Ping(ctx); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "pages-rendered-per-request",
			Error:  "timeout",
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "pages-served-from-cache",
		Error:  "none",
	}
}
