package content

import (
	"context"

	"github.com/orgball2608/newsportal/internal/domain"
)

// Session carries the content API's CSRF token and cookies between the
// registration steps of one visitor.
type Session struct {
	CSRFToken string            `json:"csrf_token,omitempty"`
	Cookies   map[string]string `json:"cookies,omitempty"`
}

//go:generate go run go.uber.org/mock/mockgen -source=content.go -destination=mocks/mock.go

type Client interface {
	Stories(ctx context.Context) ([]domain.Story, error)
	Navigation(ctx context.Context) (domain.Navigation, error)
	HeroPosts(ctx context.Context) ([]domain.Post, error)
	LatestNews(ctx context.Context) (domain.LatestNews, error)
	FeaturedCategories(ctx context.Context) (domain.FeaturedCategories, error)
	GlobalNews(ctx context.Context) ([]domain.Post, error)
	SportsTech(ctx context.Context) (domain.SportsTech, error)
	Trending(ctx context.Context) ([]domain.Post, error)
	Category(ctx context.Context, slug string) (domain.CategoryPage, error)
	Post(ctx context.Context, slug string) (domain.PostDetail, error)

	Interests(ctx context.Context) ([]domain.Interest, error)
	RegisterStepOne(ctx context.Context, reg domain.Registration) (Session, error)
	RegisterStepTwo(ctx context.Context, sess Session, profile domain.Profile) error
	SignIn(ctx context.Context, creds domain.Credentials) (domain.SignInResult, error)
	MyNews(ctx context.Context, userID string) ([]domain.TimelineItem, error)
}
