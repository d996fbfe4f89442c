package contentimpl

import (
	"context"
	"fmt"

	"github.com/orgball2608/newsportal/internal/domain"
	"github.com/orgball2608/newsportal/internal/media"
	"github.com/orgball2608/newsportal/pkg/errors"
)

func (c *ClientImpl) Stories(ctx context.Context) ([]domain.Story, error) {
	var stories []domain.Story
	if err := c.getJSON(ctx, "/story/", &stories); err != nil {
		return nil, fmt.Errorf("get stories: %w", err)
	}
	for i := range stories {
		stories[i] = media.NormalizeStory(stories[i])
	}
	return stories, nil
}

func (c *ClientImpl) Navigation(ctx context.Context) (domain.Navigation, error) {
	var nav domain.Navigation
	if err := c.getJSON(ctx, "/header", &nav); err != nil {
		return domain.Navigation{}, fmt.Errorf("get navigation: %w", err)
	}
	return nav, nil
}

func (c *ClientImpl) HeroPosts(ctx context.Context) ([]domain.Post, error) {
	var resp struct {
		Posts []domain.Post `json:"hero_posts"`
	}
	if err := c.getJSON(ctx, "/hero-posts/", &resp); err != nil {
		return nil, fmt.Errorf("get hero posts: %w", err)
	}
	return media.NormalizePosts(resp.Posts), nil
}

func (c *ClientImpl) LatestNews(ctx context.Context) (domain.LatestNews, error) {
	var latest domain.LatestNews
	if err := c.getJSON(ctx, "/main-exclusive/", &latest); err != nil {
		return domain.LatestNews{}, fmt.Errorf("get latest news: %w", err)
	}
	if latest.Main != nil {
		main := media.NormalizePost(*latest.Main)
		latest.Main = &main
	}
	latest.NonExclusive = media.NormalizePosts(latest.NonExclusive)
	latest.Exclusive = media.NormalizePosts(latest.Exclusive)
	return latest, nil
}

func (c *ClientImpl) FeaturedCategories(ctx context.Context) (domain.FeaturedCategories, error) {
	var featured domain.FeaturedCategories
	if err := c.getJSON(ctx, "/featured-categories/", &featured); err != nil {
		return nil, fmt.Errorf("get featured categories: %w", err)
	}
	for name, posts := range featured {
		featured[name] = media.NormalizePosts(posts)
	}
	return featured, nil
}

func (c *ClientImpl) GlobalNews(ctx context.Context) ([]domain.Post, error) {
	var resp struct {
		Posts []domain.Post `json:"global_news_posts"`
	}
	if err := c.getJSON(ctx, "/global-news/", &resp); err != nil {
		return nil, fmt.Errorf("get global news: %w", err)
	}
	return media.NormalizePosts(resp.Posts), nil
}

func (c *ClientImpl) SportsTech(ctx context.Context) (domain.SportsTech, error) {
	var st domain.SportsTech
	if err := c.getJSON(ctx, "/sports-tech/", &st); err != nil {
		return domain.SportsTech{}, fmt.Errorf("get sports and tech: %w", err)
	}
	st.Sports = media.NormalizePosts(st.Sports)
	st.Tech = media.NormalizePosts(st.Tech)
	return st, nil
}

func (c *ClientImpl) Trending(ctx context.Context) ([]domain.Post, error) {
	var resp struct {
		Posts []domain.Post `json:"recent_trends"`
	}
	if err := c.getJSON(ctx, "/trends/", &resp); err != nil {
		return nil, fmt.Errorf("get trends: %w", err)
	}
	return media.NormalizePosts(resp.Posts), nil
}

func (c *ClientImpl) Category(ctx context.Context, slug string) (domain.CategoryPage, error) {
	var page domain.CategoryPage
	if err := c.getJSON(ctx, "/category/"+escape(slug)+"/", &page); err != nil {
		return domain.CategoryPage{}, fmt.Errorf("get category %q: %w", slug, err)
	}
	if page.Category.Slug == "" {
		page.Category.Slug = slug
	}
	page.Posts = media.NormalizePosts(page.Posts)
	return page, nil
}

func (c *ClientImpl) Post(ctx context.Context, slug string) (domain.PostDetail, error) {
	var detail domain.PostDetail
	if err := c.getJSON(ctx, "/news/"+escape(slug)+"/", &detail); err != nil {
		return domain.PostDetail{}, fmt.Errorf("get post %q: %w", slug, err)
	}
	if detail.Post.ID == 0 && detail.Post.Title == "" {
		return domain.PostDetail{}, errors.WrapWithCode(errors.ErrNotFound, "post_not_found", "Post not found.")
	}
	detail.Post = media.NormalizePost(detail.Post)
	return detail, nil
}
