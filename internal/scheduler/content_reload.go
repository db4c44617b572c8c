package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/quill/internal/index"
	"github.com/MrSnakeDoc/quill/internal/logger"
	"github.com/MrSnakeDoc/quill/internal/sources/content"
	redisstore "github.com/MrSnakeDoc/quill/internal/store/redis"
)

// ContentReloader handles periodic reloading of the article corpus.
// Each reload rebuilds the snapshot from scratch; there is no incremental
// update path.
type ContentReloader struct {
	loader        *content.Loader
	mapper        *content.Mapper
	store         *index.Store
	cache         *redisstore.PageCache
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewContentReloader creates a new content reloader
func NewContentReloader(
	contentDir string,
	defaultAuthor string,
	store *index.Store,
	cache *redisstore.PageCache,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *ContentReloader {
	return &ContentReloader{
		loader:        content.NewLoader(contentDir),
		mapper:        content.NewMapper(defaultAuthor),
		store:         store,
		cache:         cache,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the corpus immediately, then begins the periodic reload loop.
func (cr *ContentReloader) Start(ctx context.Context) error {
	// Load immediately on start
	if err := cr.Reload(ctx); err != nil {
		return fmt.Errorf("initial content load failed: %w", err)
	}

	// Start periodic reload
	ticker := time.NewTicker(cr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload content",
						logger.Error(err))
				}
			case <-cr.manualTrigger:
				cr.logger.Info("manual reload triggered")
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload content",
						logger.Error(err))
				}
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (cr *ContentReloader) Stop() {
	close(cr.stopCh)
}

// Reload rescans the content directory and swaps in a fresh snapshot.
// A malformed article aborts the whole reload; the previous snapshot stays
// live, so a bad commit never takes the site down.
func (cr *ContentReloader) Reload(ctx context.Context) error {
	cr.logger.Info("reloading articles from content directory")

	raws, err := cr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load articles: %w", err)
	}

	articles, err := cr.mapper.MapArticles(raws)
	if err != nil {
		return fmt.Errorf("failed to map articles: %w", err)
	}

	snapshot := index.NewSnapshot(articles)
	cr.store.Replace(snapshot)

	cr.logger.Info("article snapshot replaced",
		logger.Int("files", len(raws)),
		logger.Int("published", snapshot.Len()),
		logger.Int("drafts", len(articles)-snapshot.Len()),
		logger.Uint64("generation", cr.store.Generation()))

	// Drop stale rendered pages (best effort)
	if cr.cache.Enabled() {
		if err := cr.cache.Flush(ctx); err != nil {
			cr.logger.Warn("failed to flush page cache",
				logger.Error(err))
			// Don't fail - generation-scoped keys expire on their own
		}
	}

	return nil
}
