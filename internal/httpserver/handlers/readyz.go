package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/quill/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready    bool `json:"ready"`
	Articles int  `json:"articles"`
}

// Readyz reports ready once the initial content load has completed.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ready := !d.Index.LastReload().IsZero()

		w.Header().Set("Content-Type", "application/json")
		if ready {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		_ = json.NewEncoder(w).Encode(readyzResponse{
			Ready:    ready,
			Articles: d.Index.Snapshot().Len(),
		})
	}
}
