package config

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		PublicURL string `env:"APP_PUBLIC_URL" env-default:"http://localhost:8080"`
		SentryUrl string `env:"SENTRY_URL"`
		LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
		// TrustedProxy makes the server take the client address from
		// X-Forwarded-For. Only set it behind a proxy that overwrites the header.
		TrustedProxy bool `env:"APP_TRUSTED_PROXY" env-default:"false"`
	}
	Content struct {
		Env         string        `env:"CONTENT_ENV" env-default:"production"`
		BaseURL     string        `env:"CONTENT_BASE_URL"`
		LocalURL    string        `env:"CONTENT_LOCAL_URL" env-default:"http://127.0.0.1:8000"`
		LiveURL     string        `env:"CONTENT_LIVE_URL" env-default:"https://ayo.newstropy.online"`
		Timeout     time.Duration `env:"CONTENT_TIMEOUT" env-default:"15s"`
		Placeholder string        `env:"MEDIA_PLACEHOLDER" env-default:"/static/images/Breakingnews.png"`
	}
	Story struct {
		ImageDwell       time.Duration `env:"STORY_IMAGE_DWELL" env-default:"7s"`
		MaxVideoDuration time.Duration `env:"STORY_MAX_VIDEO_DURATION" env-default:"120s"`
		TickInterval     time.Duration `env:"STORY_TICK_INTERVAL" env-default:"100ms"`
		MetadataTimeout  time.Duration `env:"STORY_METADATA_TIMEOUT" env-default:"10s"`
		SessionTTL       time.Duration `env:"STORY_SESSION_TTL" env-default:"15m"`
		ReapInterval     time.Duration `env:"STORY_REAP_INTERVAL" env-default:"1m"`
		SortByRecency    bool          `env:"STORY_SORT_BY_RECENCY" env-default:"false"`
	}
	Auth struct {
		Requests int           `env:"AUTH_RATE_REQUESTS" env-default:"5"`
		Per      time.Duration `env:"AUTH_RATE_PER" env-default:"1m"`
		Burst    int           `env:"AUTH_RATE_BURST" env-default:"3"`
		Idle     time.Duration `env:"AUTH_RATE_IDLE" env-default:"10m"`
		Sweep    time.Duration `env:"AUTH_RATE_SWEEP" env-default:"1m"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

// ContentBaseURL returns the content API origin. An explicit CONTENT_BASE_URL
// wins; otherwise CONTENT_ENV picks between the local and live origins.
func (c *Config) ContentBaseURL() string {
	if c.Content.BaseURL != "" {
		return strings.TrimRight(c.Content.BaseURL, "/")
	}
	if strings.EqualFold(c.Content.Env, EnvDevelopment) {
		return strings.TrimRight(c.Content.LocalURL, "/")
	}
	return strings.TrimRight(c.Content.LiveURL, "/")
}

// PlaceholderURL returns the absolute fallback image URL.
func (c *Config) PlaceholderURL() string {
	p := c.Content.Placeholder
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	return c.ContentBaseURL() + "/" + strings.TrimLeft(p, "/")
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.App.Env, EnvDevelopment)
}
