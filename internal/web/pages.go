package web

import (
	"context"
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/orgball2608/newsportal/internal/domain"
	"github.com/orgball2608/newsportal/internal/rails"
	"github.com/orgball2608/newsportal/internal/seo"
	"github.com/orgball2608/newsportal/internal/story"
	"github.com/orgball2608/newsportal/pkg/errors"
)

const navPrimary = 5

type NavLink struct {
	Name string
	Href string
}

type Nav struct {
	Primary []NavLink
	More    []NavLink
}

// BuildNav shows the first categories inline and the rest under "More".
func BuildNav(n domain.Navigation) Nav {
	var nav Nav
	for i, name := range n.Categories {
		link := NavLink{Name: name, Href: rails.CategoryHref(name)}
		if i < navPrimary {
			nav.Primary = append(nav.Primary, link)
		} else {
			nav.More = append(nav.More, link)
		}
	}
	return nav
}

// Shell is the data every page layout needs.
type Shell struct {
	Meta     seo.Meta
	Nav      Nav
	Stories  []story.Thumbnail
	SignedIn bool
	Year     int
	Query    url.Values
}

type page struct {
	Shell
	Body any
}

// loadShell fetches the navigation and the stories rail. Failures leave the
// affected part empty.
func (s *Server) loadShell(ctx context.Context, r *http.Request) *Shell {
	sh := &Shell{
		SignedIn: userID(r) != "",
		Year:     time.Now().Year(),
		Query:    r.URL.Query(),
	}

	var g errgroup.Group
	g.Go(func() error {
		nav, err := s.content.Navigation(ctx)
		if err != nil {
			s.logger.Warn("Failed to load navigation", "error", err)
			return nil
		}
		sh.Nav = BuildNav(nav)
		return nil
	})
	g.Go(func() error {
		stories, err := s.content.Stories(ctx)
		if err != nil {
			s.logger.Warn("Failed to load stories", "error", err)
			return nil
		}
		sh.Stories = story.NewRail(stories, s.cfg.Story.SortByRecency).Thumbnails()
		return nil
	})
	_ = g.Wait()
	return sh
}

// withShell runs body concurrently with the shell fetches.
func (s *Server) withShell(r *http.Request, body func(ctx context.Context) error) (*Shell, error) {
	ctx := r.Context()
	var (
		g     errgroup.Group
		shell *Shell
	)
	g.Go(func() error {
		shell = s.loadShell(ctx, r)
		return nil
	})
	g.Go(func() error {
		return body(ctx)
	})
	err := g.Wait()
	return shell, err
}

func (s *Server) canonical(r *http.Request) string {
	return seo.Canonical(s.cfg.App.PublicURL, r.URL.Path)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	q := rails.HomeQuery{
		Slide:         queryInt(r, "slide", 0),
		LatestPage:    queryInt(r, "latest", 1),
		ExclusivePage: queryInt(r, "exclusive", 1),
		GlobalPage:    queryInt(r, "global", 1),
		TrendingPage:  queryInt(r, "trending", 1),
		Tab:           r.URL.Query().Get("tab"),
	}

	var home rails.Home
	shell, _ := s.withShell(r, func(ctx context.Context) error {
		home = s.rails.Home(ctx, q)
		return nil
	})
	shell.Meta = seo.Page("", "", s.canonical(r), s.resolver)

	s.render(w, http.StatusOK, "home", page{Shell: *shell, Body: home})
}

type GalleryView struct {
	Items   domain.MediaList
	Current int
	Count   int
}

func (g GalleryView) Item() domain.MediaList {
	if g.Count == 0 {
		return nil
	}
	return g.Items[g.Current : g.Current+1]
}

func (g GalleryView) HasPrev() bool { return g.Current > 0 }
func (g GalleryView) HasNext() bool { return g.Current < g.Count-1 }
func (g GalleryView) Position() int { return g.Current + 1 }

type PostView struct {
	Card       rails.Card
	Content    template.HTML
	Advert     template.HTML
	Gallery    GalleryView
	Share      seo.ShareLinks
	Breadcrumb []rails.Crumb
}

// BuildPost shapes a post detail. Content and advert come from the CMS and
// are trusted HTML.
func BuildPost(d domain.PostDetail, pageURL string, mediaIndex int) PostView {
	v := PostView{
		Card:    rails.NewCard(d.Post, 0),
		Content: template.HTML(d.Post.Content),
		Advert:  template.HTML(strings.ReplaceAll(d.Advert, "\n", "<br>")),
		Share:   seo.Share(d.Post.Title, pageURL),
		Breadcrumb: []rails.Crumb{
			{Name: "Home", Href: "/"},
		},
	}
	if c := d.Post.Category; c != nil && c.Name != "" {
		href := rails.CategoryHref(c.Name)
		if c.Slug != "" {
			href = "/category/" + c.Slug
		}
		v.Breadcrumb = append(v.Breadcrumb, rails.Crumb{Name: c.Name, Href: href})
	}

	n := len(d.Post.Media)
	v.Gallery = GalleryView{Items: d.Post.Media, Count: n}
	if n > 0 {
		v.Gallery.Current = min(max(mediaIndex, 0), n-1)
	}
	return v
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	var detail domain.PostDetail
	shell, err := s.withShell(r, func(ctx context.Context) error {
		var err error
		detail, err = s.content.Post(ctx, slug)
		return err
	})
	if err != nil {
		s.renderError(w, r, shell, err, "Post not found.")
		return
	}

	canonical := s.canonical(r)
	shell.Meta = seo.ForPost(detail, canonical, s.resolver)
	view := BuildPost(detail, shell.Meta.URL, queryInt(r, "media", 0))

	s.render(w, http.StatusOK, "post", page{Shell: *shell, Body: view})
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	var view rails.CategoryView
	shell, err := s.withShell(r, func(ctx context.Context) error {
		var err error
		view, err = s.rails.Category(ctx, slug, queryInt(r, "page", 1))
		return err
	})
	if err != nil {
		s.renderError(w, r, shell, err, "Category not found.")
		return
	}

	shell.Meta = seo.Page(view.Name, view.Description, s.canonical(r), s.resolver)
	s.render(w, http.StatusOK, "category", page{Shell: *shell, Body: view})
}

type errorView struct {
	Status  int
	Message string
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, shell *Shell, err error, notFound string) {
	if r.Context().Err() != nil {
		return
	}
	status := errors.HTTPStatus(err)
	msg := "Something went wrong. Please try again later."
	switch {
	case errors.IsNotFound(err):
		msg = notFound
	default:
		s.logger.Error("Failed to load page", "path", r.URL.Path, "error", err)
	}

	if shell == nil {
		shell = &Shell{Query: r.URL.Query()}
	}
	shell.Meta = seo.Page(msg, "", s.canonical(r), s.resolver)
	s.render(w, status, "error", page{Shell: *shell, Body: errorView{Status: status, Message: msg}})
}
