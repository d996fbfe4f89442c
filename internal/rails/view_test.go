package rails

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgball2608/newsportal/internal/domain"
)

func posts(n int) []domain.Post {
	out := make([]domain.Post, n)
	for i := range out {
		out[i] = domain.Post{ID: i + 1, Title: "Post", Slug: "post-" + string(rune('a'+i))}
	}
	return out
}

func TestNewCard(t *testing.T) {
	p := domain.Post{
		ID:       1,
		Title:    strings.Repeat("x", 90),
		Slug:     "budget-2025",
		Date:     time.Date(2025, time.March, 5, 13, 30, 0, 0, time.UTC),
		Category: &domain.CategoryRef{Name: "Business"},
	}

	c := NewCard(p, 80)
	assert.Equal(t, strings.Repeat("x", 80)+"...", c.Title)
	assert.Equal(t, p.Title, c.FullTitle)
	assert.Equal(t, "/news/budget-2025", c.Href)
	assert.Equal(t, "March 05, 2025, 02:30 PM", c.Date)
	assert.Equal(t, "Business", c.Category)
}

func TestBuildHero(t *testing.T) {
	assert.False(t, BuildHero(nil, 0).Visible())

	h := BuildHero(posts(3), 4)
	assert.True(t, h.Visible())
	assert.True(t, h.Rotates())
	assert.Equal(t, 1, h.Current)
	assert.Equal(t, 5*time.Second, h.Rotate)

	assert.Equal(t, 2, BuildHero(posts(3), -1).Current)
	assert.False(t, BuildHero(posts(1), 0).Rotates())
}

func TestBuildLatest(t *testing.T) {
	main := domain.Post{Title: "Main", Content: "<p>" + strings.Repeat("word ", 60) + "</p>"}
	l := BuildLatest(domain.LatestNews{Main: &main, NonExclusive: posts(7), Exclusive: nil}, 2, 1)

	require.NotNil(t, l.Main)
	assert.Len(t, []rune(l.Main.Excerpt), 163)
	assert.Len(t, l.NonExclusive.Cards, 2)
	assert.True(t, l.NonExclusive.Pager.HasPrev())
	assert.False(t, l.NonExclusive.Pager.HasNext())
	assert.Empty(t, l.Exclusive.Cards)
	assert.Equal(t, "No exclusive news available", l.Exclusive.Empty)
}

func TestBuildFeatured(t *testing.T) {
	cols := BuildFeatured(domain.FeaturedCategories{
		"Business": posts(3),
		"Health":   posts(1),
		"Sports":   posts(2),
	})

	require.Len(t, cols, 4)
	assert.Equal(t, []string{"Business", "Entertainment", "Health", "Energy"},
		[]string{cols[0].Name, cols[1].Name, cols[2].Name, cols[3].Name})
	assert.Equal(t, "/category/business", cols[0].Href)
	assert.NotNil(t, cols[0].Lead)
	assert.NotNil(t, cols[0].Second)
	assert.Nil(t, cols[1].Lead)
	assert.NotNil(t, cols[2].Lead)
	assert.Nil(t, cols[2].Second)
}

func TestBuildSportsTech(t *testing.T) {
	st := domain.SportsTech{Sports: posts(3), Tech: posts(1)}

	sports := BuildSportsTech(st, "")
	assert.Equal(t, TabSports, sports.Tab)
	require.NotNil(t, sports.Lead)
	assert.Len(t, sports.Rest, 2)

	tech := BuildSportsTech(st, TabTech)
	assert.Equal(t, TabTech, tech.Tab)
	assert.Empty(t, tech.Rest)

	empty := BuildSportsTech(domain.SportsTech{}, TabTech)
	assert.Nil(t, empty.Lead)
	assert.Equal(t, "No tech news available", empty.Empty)
}

func TestBuildCategory(t *testing.T) {
	page := domain.CategoryPage{
		Category:      domain.Category{Name: "Sports", Slug: "sports"},
		Subcategories: []domain.CategoryRef{{Name: "Football", Slug: "football"}, {Name: "Sports", Slug: "sports"}, {Name: "Table Tennis"}},
		Posts:         posts(14),
	}

	v := BuildCategory(page, 2)
	assert.Len(t, v.Featured, 3)
	assert.Len(t, v.Grid.Cards, 3)
	assert.Equal(t, 2, v.Grid.Pager.Pages())
	assert.Equal(t, "/category/sports", v.Breadcrumb[1].Href)

	require.Len(t, v.Subcategories, 3)
	assert.False(t, v.Subcategories[0].Active)
	assert.True(t, v.Subcategories[1].Active)
	assert.Equal(t, "/category/table-tennis", v.Subcategories[2].Href)

	few := BuildCategory(domain.CategoryPage{Posts: posts(2)}, 1)
	assert.Len(t, few.Featured, 2)
	assert.Empty(t, few.Grid.Cards)
}

func TestListPagesAreSized(t *testing.T) {
	assert.Len(t, BuildGlobal(posts(10), 1).Cards, 4)
	assert.Equal(t, 3, BuildGlobal(posts(10), 1).Pager.Pages())
	assert.Len(t, BuildTrending(posts(10), 2).Cards, 5)
}
