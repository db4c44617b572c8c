package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/quill/internal/domain"
	"github.com/MrSnakeDoc/quill/internal/feed"
	"github.com/MrSnakeDoc/quill/internal/index"
	"github.com/MrSnakeDoc/quill/internal/logger"
	"github.com/MrSnakeDoc/quill/internal/render"
	redisstore "github.com/MrSnakeDoc/quill/internal/store/redis"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time       // for testing, defaults to time.Now
	AllowedHosts  []string               // Host headers allowed to access the server
	Index         *index.Store           // Current article snapshot holder
	Renderer      *render.Renderer       // HTML page renderer
	Cache         *redisstore.PageCache  // Rendered page cache (disabled when Redis is not configured)
	RedisClient   *redis.Client          // Redis client connection (nil when cache disabled)
	Site          feed.Site              // Site identity for the RSS feed
	FeedLimit     int                    // Max items in the RSS feed
	RelatedLimit  int                    // Related articles shown per post
	FeaturedLimit int                    // Featured articles on the home page
	Weights       domain.Weights         // Relevance scoring policy
	ReloadTrigger chan struct{}          // Channel to trigger manual content reload
}
