package content

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MrSnakeDoc/quill/internal/domain"
)

// ValidationError reports a malformed article at the loader boundary,
// naming the offending record so the defect is visible immediately instead
// of surfacing later as a silently mis-sorted page.
type ValidationError struct {
	ID     string // article ID (file-derived slug)
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid article %q: field %s: %s", e.ID, e.Field, e.Reason)
}

// Mapper converts raw article files to domain.Article entities.
// Validation happens here, once, at the boundary; everything downstream
// trusts the resulting values.
type Mapper struct {
	defaultAuthor string
}

// NewMapper creates a new mapper instance
func NewMapper(defaultAuthor string) *Mapper {
	return &Mapper{
		defaultAuthor: defaultAuthor,
	}
}

// MapArticles converts parsed article files to []*domain.Article,
// preserving the loader's file order as the corpus ingestion order.
func (m *Mapper) MapArticles(raws []RawArticle) ([]*domain.Article, error) {
	articles := make([]*domain.Article, 0, len(raws))
	seen := make(map[string]string, len(raws)) // ID -> path, for duplicate detection

	for _, raw := range raws {
		article, err := m.mapArticle(raw)
		if err != nil {
			return nil, err
		}

		if prev, dup := seen[article.ID]; dup {
			return nil, &ValidationError{
				ID:     article.ID,
				Field:  "id",
				Reason: fmt.Sprintf("duplicate slug (also derived from %s)", prev),
			}
		}
		seen[article.ID] = raw.Path

		articles = append(articles, article)
	}

	return articles, nil
}

// mapArticle validates and converts a single raw article.
func (m *Mapper) mapArticle(raw RawArticle) (*domain.Article, error) {
	id := slugFromPath(raw.Path)
	if id == "" {
		return nil, &ValidationError{ID: raw.Path, Field: "id", Reason: "filename yields an empty slug"}
	}

	if strings.TrimSpace(raw.Meta.Title) == "" {
		return nil, &ValidationError{ID: id, Field: "title", Reason: "required"}
	}
	if raw.Meta.Date.IsZero() {
		return nil, &ValidationError{ID: id, Field: "date", Reason: "required"}
	}

	category, err := domain.ParseCategory(raw.Meta.Category)
	if err != nil {
		return nil, &ValidationError{ID: id, Field: "category", Reason: err.Error()}
	}

	author := strings.TrimSpace(raw.Meta.Author)
	if author == "" {
		author = m.defaultAuthor
	}

	return &domain.Article{
		ID:          id,
		Title:       strings.TrimSpace(raw.Meta.Title),
		Description: strings.TrimSpace(raw.Meta.Description),
		Author:      author,
		Category:    category,
		Tags:        raw.Meta.Tags,
		PublishedAt: raw.Meta.Date,
		UpdatedAt:   raw.Meta.Updated,
		Featured:    raw.Meta.Featured,
		Draft:       raw.Meta.Draft,
		Body:        raw.Body,
	}, nil
}

// slugFromPath derives the article ID from its filename.
// "docker/compose-networking.md" -> "compose-networking"
func slugFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return domain.Slugify(base)
}
