package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orgball2608/newsportal/internal/domain"
	"github.com/orgball2608/newsportal/internal/media"
)

var resolver = media.NewResolver("https://cdn.x", "https://cdn.x/static/images/Breakingnews.png")

func TestForPostFallsBackToPost(t *testing.T) {
	d := domain.PostDetail{Post: domain.Post{
		Title:   "Budget passes",
		Content: "<p>The <b>budget</b> passed today.</p>",
		Media: domain.MediaList{
			{URL: "/v.mp4", Type: domain.MediaVideo},
			{URL: "/img/a.png", Type: domain.MediaImage},
		},
	}}

	m := ForPost(d, "https://portal.x/news/budget", resolver)

	assert.Equal(t, "Budget passes", m.Title)
	assert.Equal(t, "The budget passed today.", m.Description)
	assert.Equal(t, "https://cdn.x/img/a.png", m.Image)
	assert.Equal(t, "https://portal.x/news/budget", m.URL)
	assert.Equal(t, "article", m.Type)
	assert.Equal(t, 1200, m.ImageWidth())
	assert.Equal(t, 630, m.ImageHeight())
	assert.Equal(t, "summary_large_image", m.TwitterCard())
}

func TestForPostPrefersPayload(t *testing.T) {
	d := domain.PostDetail{
		Post: domain.Post{Title: "Budget passes"},
		SEO: &domain.SEOPayload{
			Title:       "Budget 2025",
			Description: "What changes",
			ImageURL:    "https://img.y/og.png",
			URL:         "https://portal.x/news/budget-2025",
		},
	}

	m := ForPost(d, "https://portal.x/news/budget", resolver)

	assert.Equal(t, "Budget 2025", m.Title)
	assert.Equal(t, "What changes", m.Description)
	assert.Equal(t, "https://img.y/og.png", m.Image)
	assert.Equal(t, "https://portal.x/news/budget-2025", m.URL)
}

func TestForPostWithoutMediaUsesPlaceholder(t *testing.T) {
	m := ForPost(domain.PostDetail{}, "", resolver)
	assert.Equal(t, resolver.Placeholder(), m.Image)
	assert.Equal(t, SiteName, m.Title)
}

func TestShare(t *testing.T) {
	s := Share("Rates & bonds", "https://portal.x/news/rates")

	assert.Equal(t, "https://twitter.com/intent/tweet?text=Rates%20%26%20bonds&url=https%3A%2F%2Fportal.x%2Fnews%2Frates", s.Twitter)
	assert.Equal(t, "https://www.facebook.com/sharer/sharer.php?u=https%3A%2F%2Fportal.x%2Fnews%2Frates&quote=Rates%20%26%20bonds", s.Facebook)
	assert.Contains(t, s.LinkedIn, "shareArticle?url=https%3A%2F%2Fportal.x%2Fnews%2Frates&title=Rates%20%26%20bonds")
	assert.Equal(t, "https://api.whatsapp.com/send?text=Rates%20%26%20bonds%20https%3A%2F%2Fportal.x%2Fnews%2Frates", s.WhatsApp)
	assert.Equal(t, "Rates & bonds\nhttps://portal.x/news/rates", s.CopyText)
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "https://portal.x/news/a", Canonical("https://portal.x/", "/news/a"))
}
