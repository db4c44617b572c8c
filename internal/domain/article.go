package domain

import (
	"fmt"
	"time"
)

// Category is the closed set of article categories.
// Anything read from front matter must pass through ParseCategory
// at the loader boundary; the rest of the code trusts the value.
type Category string

const (
	CategoryDocker          Category = "docker"
	CategoryLinux           Category = "linux"
	CategoryServerConfig    Category = "server-config"
	CategoryDevops          Category = "devops"
	CategorySecurity        Category = "security"
	CategoryTroubleshooting Category = "troubleshooting"
)

// Categories returns all known categories in display order.
func Categories() []Category {
	return []Category{
		CategoryDocker,
		CategoryLinux,
		CategoryServerConfig,
		CategoryDevops,
		CategorySecurity,
		CategoryTroubleshooting,
	}
}

// ParseCategory validates a raw category string against the closed set.
func ParseCategory(raw string) (Category, error) {
	c := Category(raw)
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", raw)
}

// Article represents one loaded article.
//
// It is NOT tied to any file format; the content loader maps front
// matter into this structure once per build and nothing mutates it
// afterwards. An Article is uniquely identified by its ID (the slug
// derived from its source filename).
type Article struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier.
	// Derived from the source filename (slugified).
	ID string

	// ─────────────────────────────
	// Presentation metadata
	// ─────────────────────────────

	// Title is the display title of the article.
	Title string

	// Description is a short summary used on listing pages and in the feed.
	Description string

	// Author is the display author, defaulting to the configured fallback.
	Author string

	// ─────────────────────────────
	// Classification
	// ─────────────────────────────

	// Category is one value from the closed category set.
	Category Category

	// Tags are free-text labels in front-matter order.
	// Duplicates are permitted input; scoring and canonicalization
	// fold them by normalized key.
	Tags []string

	// ─────────────────────────────
	// Timestamps
	// ─────────────────────────────

	// PublishedAt orders articles (most recent first). Required.
	PublishedAt time.Time

	// UpdatedAt is the optional last-edit timestamp (zero if never edited).
	UpdatedAt time.Time

	// ─────────────────────────────
	// Flags
	// ─────────────────────────────

	// Featured marks an article for the highlighted section of the home page.
	Featured bool

	// Draft excludes an article from every derived view.
	Draft bool

	// ─────────────────────────────
	// Content
	// ─────────────────────────────

	// Body is the raw Markdown body.
	Body string
}
