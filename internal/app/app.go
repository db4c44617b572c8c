package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/quill/internal/config"
	"github.com/MrSnakeDoc/quill/internal/domain"
	"github.com/MrSnakeDoc/quill/internal/feed"
	"github.com/MrSnakeDoc/quill/internal/httpserver"
	"github.com/MrSnakeDoc/quill/internal/httpserver/deps"
	"github.com/MrSnakeDoc/quill/internal/index"
	"github.com/MrSnakeDoc/quill/internal/logger"
	"github.com/MrSnakeDoc/quill/internal/redis"
	"github.com/MrSnakeDoc/quill/internal/render"
	"github.com/MrSnakeDoc/quill/internal/scheduler"
	redisstore "github.com/MrSnakeDoc/quill/internal/store/redis"
	"github.com/MrSnakeDoc/quill/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	store       *index.Store
	reloader    *scheduler.ContentReloader
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Redis is optional: no address means no page cache, pages render
	// on every request. A configured-but-unreachable Redis is a warning,
	// not a startup failure.
	var redisClient *goredis.Client
	if cfg.RedisAddr != "" {
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Warnf("Page cache disabled, Redis unavailable: %v", err)
		} else {
			loggerClient.Info("Redis page cache initialized")
			redisClient = client
		}
	} else {
		loggerClient.Info("Redis not configured, page cache disabled")
	}

	cache := redisstore.NewPageCache(redisClient, cfg.PageCacheTTL)

	// Initialize article store
	store := index.NewStore()

	// Build the renderer - template errors are fatal at startup
	renderer, err := render.New(render.SiteMeta{
		Title:       cfg.SiteTitle,
		URL:         cfg.SiteURL,
		Description: cfg.SiteDescription,
	}, cfg.WordsPerMinute)
	if err != nil {
		loggerClient.Errorf("Failed to build renderer: %v", err)
		os.Exit(1)
	}

	// Create manual reload trigger channel
	reloadTrigger := make(chan struct{}, 1)

	// Initialize content reloader
	reloader := scheduler.NewContentReloader(
		cfg.ContentDir,
		cfg.DefaultAuthor,
		store,
		cache,
		loggerClient,
		cfg.ReloadInterval,
		reloadTrigger,
	)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		TimeNow:      time.Now,
		AllowedHosts: cfg.AllowedHosts,
		Index:        store,
		Renderer:     renderer,
		Cache:        cache,
		RedisClient:  redisClient,
		Site: feed.Site{
			Title:       cfg.SiteTitle,
			URL:         cfg.SiteURL,
			Description: cfg.SiteDescription,
		},
		FeedLimit:     cfg.FeedLimit,
		RelatedLimit:  cfg.RelatedLimit,
		FeaturedLimit: cfg.FeaturedLimit,
		Weights: domain.Weights{
			Category: cfg.CategoryWeight,
			Tag:      cfg.TagWeight,
		},
		ReloadTrigger: reloadTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		store:       store,
		reloader:    reloader,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Quill v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Quill %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start content reloader (loads articles and starts periodic rescan)
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start content reloader: %w", err)
	}
	a.logger.Info("content reloader started",
		logger.Duration("interval", a.cfg.ReloadInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	// Stop reloader
	a.reloader.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Quill stopped cleanly")
	return nil
}
