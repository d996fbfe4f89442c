package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"

	"github.com/orgball2608/newsportal/internal/account"
	"github.com/orgball2608/newsportal/internal/content"
	"github.com/orgball2608/newsportal/internal/content/contentimpl"
	"github.com/orgball2608/newsportal/internal/media"
	"github.com/orgball2608/newsportal/internal/rails"
	"github.com/orgball2608/newsportal/internal/story"
	"github.com/orgball2608/newsportal/internal/web"
	"github.com/orgball2608/newsportal/pkg/config"
	"github.com/orgball2608/newsportal/pkg/logger"
	"github.com/orgball2608/newsportal/pkg/ratelimit"
)

const shutdownTimeout = 10 * time.Second

// Core is what every front end needs: configuration, logging and the
// content API client.
var Core = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		NewResolver,
		StoryConfig,
	),
	fx.Provide(
		fx.Annotate(
			contentimpl.New,
			fx.As(new(content.Client)),
		),
	),
)

// Module serves the portal over HTTP.
var Module = fx.Options(
	Core,
	fx.Provide(
		media.NewRenderer,
		NewRails,
		account.NewService,
		NewRegistry,
		fx.Annotate(
			NewLimiter,
			fx.As(fx.Self(), new(ratelimit.Limiter)),
		),
		web.New,
	),
	fx.Invoke(runReaper),
	fx.Invoke(runLimiterSweep),
	fx.Invoke(run),
)

func NewResolver(cfg *config.Config) media.Resolver {
	return media.NewResolver(cfg.ContentBaseURL(), cfg.PlaceholderURL())
}

func StoryConfig(cfg *config.Config) story.Config {
	return story.Config{
		ImageDwell:       cfg.Story.ImageDwell,
		MaxVideoDuration: cfg.Story.MaxVideoDuration,
		TickInterval:     cfg.Story.TickInterval,
		MetadataTimeout:  cfg.Story.MetadataTimeout,
	}
}

func NewRails(lc fx.Lifecycle, client content.Client, log logger.Logger) (*rails.Service, error) {
	svc, err := rails.NewService(client, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(svc.Release))
	return svc, nil
}

func NewRegistry(lc fx.Lifecycle, cfg *config.Config, storyCfg story.Config, log logger.Logger) *story.Registry {
	r := story.NewRegistry(story.RegistryOpts{
		Config: storyCfg,
		TTL:    cfg.Story.SessionTTL,
		Clock:  clockwork.NewRealClock(),
		Logger: log,
	})
	lc.Append(fx.StopHook(r.Shutdown))
	return r
}

func NewLimiter(cfg *config.Config) *ratelimit.InMemoryLimiter {
	return ratelimit.NewInMemoryLimiter(cfg.Auth.Requests, cfg.Auth.Per, cfg.Auth.Burst)
}

func runReaper(lc fx.Lifecycle, cfg *config.Config, registry *story.Registry, log logger.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return story.ScheduleReaper(ctx, registry, cfg.Story.ReapInterval, clockwork.NewRealClock(), log)
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func runLimiterSweep(lc fx.Lifecycle, cfg *config.Config, limiter *ratelimit.InMemoryLimiter, log logger.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return ratelimit.ScheduleSweep(ctx, limiter, cfg.Auth.Sweep, cfg.Auth.Idle, clockwork.NewRealClock(), log)
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, srv *web.Server, registry *story.Registry) {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}
	// Closing the players ends their event streams, which Shutdown would
	// otherwise wait on.
	httpServer.RegisterOnShutdown(registry.Shutdown)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port), "content_api", cfg.ContentBaseURL())
			go func() {
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()
			log.Info("Shutting down server")
			return httpServer.Shutdown(ctx)
		},
	})
}
