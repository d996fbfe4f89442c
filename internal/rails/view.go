package rails

import (
	"time"

	"github.com/gosimple/slug"

	"github.com/orgball2608/newsportal/internal/domain"
	"github.com/orgball2608/newsportal/pkg/formatter"
)

const (
	HeroRotation = 5 * time.Second

	LatestPageSize   = 5
	GlobalPageSize   = 4
	TrendingPageSize = 5
	CategoryGridSize = 8
	CategoryFeatured = 3

	mainTitleMax      = 80
	listTitleMax      = 75
	exclusiveTitleMax = 80
	excerptMax        = 160
)

// FeaturedNames are the categories shown in the featured block, in order.
var FeaturedNames = []string{"Business", "Entertainment", "Health", "Energy"}

// Card is a post prepared for display.
type Card struct {
	ID        int
	Title     string
	FullTitle string
	Slug      string
	Href      string
	Date      string
	Excerpt   string
	Media     domain.MediaList
	Category  string
}

func NewCard(p domain.Post, titleMax int) Card {
	c := Card{
		ID:        p.ID,
		Title:     formatter.Truncate(p.Title, titleMax),
		FullTitle: p.Title,
		Slug:      p.Slug,
		Href:      PostHref(p.Slug),
		Date:      formatter.FormatDate(p.Date),
		Media:     p.Media,
	}
	if p.Category != nil {
		c.Category = p.Category.Name
	}
	return c
}

func cards(posts []domain.Post, titleMax int) []Card {
	out := make([]Card, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewCard(p, titleMax))
	}
	return out
}

func PostHref(postSlug string) string {
	if postSlug == "" {
		return "/"
	}
	return "/news/" + postSlug
}

// CategoryHref links a category by its display name or slug.
func CategoryHref(name string) string {
	return "/category/" + slug.Make(name)
}

// ListPage is one page of a paginated rail.
type ListPage struct {
	Cards []Card
	Pager Pager
	// Param is the query parameter that selects the page.
	Param string
	Empty string
}

func newListPage(posts []domain.Post, titleMax, size, page int, param, empty string) ListPage {
	pager := NewPager(len(posts), size, page)
	return ListPage{
		Cards: cards(Page(posts, pager), titleMax),
		Pager: pager,
		Param: param,
		Empty: empty,
	}
}

type Hero struct {
	Slides  []Card
	Current int
	Rotate  time.Duration
}

// Visible is false when there is nothing to show; the hero is then omitted.
func (h Hero) Visible() bool {
	return len(h.Slides) > 0
}

// Rotates reports whether the slides auto-advance.
func (h Hero) Rotates() bool {
	return len(h.Slides) > 1
}

func BuildHero(posts []domain.Post, slide int) Hero {
	h := Hero{Slides: cards(posts, 0), Rotate: HeroRotation}
	if n := len(h.Slides); n > 0 {
		h.Current = ((slide % n) + n) % n
	}
	return h
}

type Latest struct {
	Main         *Card
	NonExclusive ListPage
	Exclusive    ListPage
	Empty        string
}

func BuildLatest(l domain.LatestNews, page, exclusivePage int) Latest {
	out := Latest{
		NonExclusive: newListPage(l.NonExclusive, listTitleMax, LatestPageSize, page, "latest", "No news available"),
		Exclusive:    newListPage(l.Exclusive, exclusiveTitleMax, LatestPageSize, exclusivePage, "exclusive", "No exclusive news available"),
		Empty:        "No main news available",
	}
	if l.Main != nil {
		c := NewCard(*l.Main, mainTitleMax)
		c.Excerpt = formatter.Excerpt(l.Main.Content, excerptMax)
		out.Main = &c
	}
	return out
}

type FeaturedColumn struct {
	Name   string
	Href   string
	Lead   *Card
	Second *Card
}

func BuildFeatured(f domain.FeaturedCategories) []FeaturedColumn {
	out := make([]FeaturedColumn, 0, len(FeaturedNames))
	for _, name := range FeaturedNames {
		col := FeaturedColumn{Name: name, Href: CategoryHref(name)}
		posts := f[name]
		if len(posts) > 0 {
			c := NewCard(posts[0], 0)
			col.Lead = &c
		}
		if len(posts) > 1 {
			c := NewCard(posts[1], 0)
			col.Second = &c
		}
		out = append(out, col)
	}
	return out
}

func BuildGlobal(posts []domain.Post, page int) ListPage {
	return newListPage(posts, 0, GlobalPageSize, page, "global", "No global news available")
}

func BuildTrending(posts []domain.Post, page int) ListPage {
	return newListPage(posts, mainTitleMax, TrendingPageSize, page, "trending", "No trending posts available")
}

const (
	TabSports = "sports"
	TabTech   = "tech"
)

type SportsTech struct {
	Tab   string
	Lead  *Card
	Rest  []Card
	Empty string
}

func BuildSportsTech(st domain.SportsTech, tab string) SportsTech {
	out := SportsTech{Tab: TabSports, Empty: "No sports news available"}
	posts := st.Sports
	if tab == TabTech {
		out.Tab = TabTech
		out.Empty = "No tech news available"
		posts = st.Tech
	}
	if len(posts) == 0 {
		return out
	}
	lead := NewCard(posts[0], 0)
	out.Lead = &lead
	out.Rest = cards(posts[1:], 0)
	return out
}

type Crumb struct {
	Name string
	Href string
}

type SubLink struct {
	Name   string
	Href   string
	Active bool
}

type CategoryView struct {
	Name          string
	Slug          string
	Description   string
	Breadcrumb    []Crumb
	Subcategories []SubLink
	Featured      []Card
	Grid          ListPage
}

// BuildCategory shows the first posts as featured and pages the rest.
func BuildCategory(p domain.CategoryPage, page int) CategoryView {
	v := CategoryView{
		Name:        p.Category.Name,
		Slug:        p.Category.Slug,
		Description: p.Category.Description,
		Breadcrumb: []Crumb{
			{Name: "Home", Href: "/"},
			{Name: p.Category.Name, Href: "/category/" + p.Category.Slug},
		},
	}
	for _, sub := range p.Subcategories {
		s := sub.Slug
		if s == "" {
			s = slug.Make(sub.Name)
		}
		v.Subcategories = append(v.Subcategories, SubLink{
			Name:   sub.Name,
			Href:   "/category/" + s,
			Active: s == p.Category.Slug,
		})
	}

	n := min(CategoryFeatured, len(p.Posts))
	v.Featured = cards(p.Posts[:n], 0)
	v.Grid = newListPage(p.Posts[n:], 0, CategoryGridSize, page, "page", "No posts in this category yet")
	return v
}
