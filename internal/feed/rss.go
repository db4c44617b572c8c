package feed

import (
	"fmt"
	"time"

	"github.com/gorilla/feeds"

	"github.com/MrSnakeDoc/quill/internal/domain"
)

// Site describes the feed channel.
type Site struct {
	Title       string
	URL         string // canonical base URL, no trailing slash
	Description string
}

// BuildRSS serializes the most recent articles into an RSS 2.0 document.
// The input is expected in the index's canonical order (most recent first);
// the feed preserves it and truncates to limit.
func BuildRSS(site Site, articles []*domain.Article, limit int, now time.Time) (string, error) {
	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}

	f := &feeds.Feed{
		Title:       site.Title,
		Link:        &feeds.Link{Href: site.URL},
		Description: site.Description,
		Created:     now,
	}

	if len(articles) > 0 {
		f.Updated = articles[0].PublishedAt
	}

	for _, a := range articles {
		item := &feeds.Item{
			Id:          fmt.Sprintf("%s/articles/%s", site.URL, a.ID),
			Title:       a.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/articles/%s", site.URL, a.ID)},
			Description: a.Description,
			Author:      &feeds.Author{Name: a.Author},
			Created:     a.PublishedAt,
			Updated:     a.UpdatedAt,
		}
		f.Items = append(f.Items, item)
	}

	rss, err := f.ToRss()
	if err != nil {
		return "", fmt.Errorf("failed to build rss feed: %w", err)
	}
	return rss, nil
}
