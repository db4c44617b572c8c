package index

import (
	"sort"

	"github.com/MrSnakeDoc/quill/internal/domain"
)

// Snapshot is an immutable, ordered view over one build's worth of articles.
//
// Construction filters drafts and fixes the canonical order (publishedAt
// descending, ingestion order on ties). Every query is a pure read; nothing
// mutates a snapshot after NewSnapshot returns, which makes it safe to share
// across concurrent request handlers.
type Snapshot struct {
	articles []*domain.Article          // published, sorted
	byID     map[string]*domain.Article // ID -> article
}

// NewSnapshot builds a snapshot from loaded articles.
// Drafts never enter the snapshot. The input order is the ingestion order
// and serves as the deterministic tie-break for equal publish timestamps.
func NewSnapshot(articles []*domain.Article) *Snapshot {
	published := make([]*domain.Article, 0, len(articles))
	for _, a := range articles {
		if a == nil || a.Draft {
			continue
		}
		published = append(published, a)
	}

	// Stable keeps ingestion order among equal timestamps, so reruns on the
	// same input always yield the same sequence.
	sort.SliceStable(published, func(i, j int) bool {
		return published[i].PublishedAt.After(published[j].PublishedAt)
	})

	byID := make(map[string]*domain.Article, len(published))
	for _, a := range published {
		byID[a.ID] = a
	}

	return &Snapshot{
		articles: published,
		byID:     byID,
	}
}

// All returns every published article, most recent first.
func (s *Snapshot) All() []*domain.Article {
	out := make([]*domain.Article, len(s.articles))
	copy(out, s.articles)
	return out
}

// Featured returns up to limit featured articles, preserving All()'s order.
func (s *Snapshot) Featured(limit int) []*domain.Article {
	if limit <= 0 {
		return nil
	}
	out := make([]*domain.Article, 0, limit)
	for _, a := range s.articles {
		if !a.Featured {
			continue
		}
		out = append(out, a)
		if len(out) == limit {
			break
		}
	}
	return out
}

// ByCategory returns published articles matching the category exactly,
// preserving All()'s order. An unmatched category yields an empty slice,
// not an error.
func (s *Snapshot) ByCategory(category domain.Category) []*domain.Article {
	var out []*domain.Article
	for _, a := range s.articles {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// ByTag returns published articles carrying the queried tag, preserving
// All()'s order. Matching is normalized-key equality: "Docker", "docker"
// and " DOCKER " all match the query "docker".
func (s *Snapshot) ByTag(tag string) []*domain.Article {
	key := domain.NormalizeTag(tag)
	if key == "" {
		return nil
	}

	var out []*domain.Article
	for _, a := range s.articles {
		for _, t := range a.Tags {
			if domain.NormalizeTag(t) == key {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

// ByID retrieves a published article by its ID.
func (s *Snapshot) ByID(id string) (*domain.Article, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Tags returns the canonical display form of every tag in the snapshot,
// sorted case-insensitively.
func (s *Snapshot) Tags() []string {
	return domain.CollectCanonicalTags(s.articles)
}

// Len returns the number of published articles.
func (s *Snapshot) Len() int {
	return len(s.articles)
}
