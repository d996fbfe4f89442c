package rails

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/multierr"

	"github.com/orgball2608/newsportal/internal/content"
	"github.com/orgball2608/newsportal/internal/domain"
	"github.com/orgball2608/newsportal/pkg/logger"
)

const poolSize = 6

// HomeQuery selects the page of every paginated home rail.
type HomeQuery struct {
	Slide         int
	LatestPage    int
	ExclusivePage int
	GlobalPage    int
	TrendingPage  int
	Tab           string
}

type Home struct {
	Hero       Hero
	Latest     Latest
	Featured   []FeaturedColumn
	Global     ListPage
	SportsTech SportsTech
	Trending   ListPage
}

// Service fetches and shapes the content rails.
type Service struct {
	client content.Client
	logger logger.Logger
	pool   *ants.Pool
}

func NewService(client content.Client, log logger.Logger) (*Service, error) {
	pool, err := ants.NewPool(poolSize, ants.WithPreAlloc(true))
	if err != nil {
		return nil, fmt.Errorf("failed to create rail pool: %w", err)
	}
	return &Service{
		client: client,
		logger: log.WithComponent("Rails"),
		pool:   pool,
	}, nil
}

// Release stops the worker pool.
func (s *Service) Release() {
	s.pool.Release()
}

// Home fetches every home rail concurrently. A failing rail is left empty
// and does not affect the others; failures are logged together.
func (s *Service) Home(ctx context.Context, q HomeQuery) Home {
	home := Home{
		Hero:       BuildHero(nil, 0),
		Latest:     BuildLatest(domain.LatestNews{}, 1, 1),
		Featured:   BuildFeatured(nil),
		Global:     BuildGlobal(nil, 1),
		SportsTech: BuildSportsTech(domain.SportsTech{}, q.Tab),
		Trending:   BuildTrending(nil, 1),
	}

	var (
		mu   sync.Mutex
		errs error
		wg   sync.WaitGroup
	)

	tasks := map[string]func() error{
		"hero": func() error {
			posts, err := s.client.HeroPosts(ctx)
			if err != nil {
				return err
			}
			h := BuildHero(posts, q.Slide)
			mu.Lock()
			home.Hero = h
			mu.Unlock()
			return nil
		},
		"latest": func() error {
			l, err := s.client.LatestNews(ctx)
			if err != nil {
				return err
			}
			v := BuildLatest(l, q.LatestPage, q.ExclusivePage)
			mu.Lock()
			home.Latest = v
			mu.Unlock()
			return nil
		},
		"featured": func() error {
			f, err := s.client.FeaturedCategories(ctx)
			if err != nil {
				return err
			}
			v := BuildFeatured(f)
			mu.Lock()
			home.Featured = v
			mu.Unlock()
			return nil
		},
		"global": func() error {
			posts, err := s.client.GlobalNews(ctx)
			if err != nil {
				return err
			}
			v := BuildGlobal(posts, q.GlobalPage)
			mu.Lock()
			home.Global = v
			mu.Unlock()
			return nil
		},
		"sports_tech": func() error {
			st, err := s.client.SportsTech(ctx)
			if err != nil {
				return err
			}
			v := BuildSportsTech(st, q.Tab)
			mu.Lock()
			home.SportsTech = v
			mu.Unlock()
			return nil
		},
		"trending": func() error {
			posts, err := s.client.Trending(ctx)
			if err != nil {
				return err
			}
			v := BuildTrending(posts, q.TrendingPage)
			mu.Lock()
			home.Trending = v
			mu.Unlock()
			return nil
		},
	}

	for name, task := range tasks {
		wg.Add(1)
		rail, run := name, task

		err := s.pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			if err := run(); err != nil {
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", rail, err))
				mu.Unlock()
			}
		})
		if err != nil {
			wg.Done()
			mu.Lock()
			errs = multierr.Append(errs, fmt.Errorf("%s: submit: %w", rail, err))
			mu.Unlock()
		}
	}

	wg.Wait()

	if errs != nil && ctx.Err() == nil {
		s.logger.Warn("Some home rails failed",
			"failed", len(multierr.Errors(errs)), "error", errs)
	}
	return home
}

// Category fetches one category page.
func (s *Service) Category(ctx context.Context, slug string, page int) (CategoryView, error) {
	p, err := s.client.Category(ctx, slug)
	if err != nil {
		return CategoryView{}, err
	}
	return BuildCategory(p, page), nil
}
