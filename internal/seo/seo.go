package seo

import (
	"net/url"
	"strings"

	"github.com/orgball2608/newsportal/internal/domain"
	"github.com/orgball2608/newsportal/internal/media"
	"github.com/orgball2608/newsportal/pkg/formatter"
)

const (
	SiteName    = "Newstropy"
	ImageWidth  = 1200
	ImageHeight = 630
	TwitterCard = "summary_large_image"

	descriptionMax = 160
)

// Meta is the set of head tags rendered for a page.
type Meta struct {
	Title       string
	Description string
	Image       string
	URL         string
	Type        string
}

func (m Meta) ImageWidth() int     { return ImageWidth }
func (m Meta) ImageHeight() int    { return ImageHeight }
func (m Meta) TwitterCard() string { return TwitterCard }

// Page builds the tags of a non-article page.
func Page(title, description, canonical string, resolver media.Resolver) Meta {
	if title == "" {
		title = SiteName
	} else {
		title = title + " | " + SiteName
	}
	if description == "" {
		description = "Breaking news, exclusives and stories from " + SiteName + "."
	}
	return Meta{
		Title:       title,
		Description: description,
		Image:       resolver.Placeholder(),
		URL:         canonical,
		Type:        "website",
	}
}

// ForPost prefers the SEO payload sent with the post and falls back to the
// post's own title, text and first image.
func ForPost(d domain.PostDetail, canonical string, resolver media.Resolver) Meta {
	m := Meta{
		Title:       d.Post.Title,
		Description: formatter.Excerpt(d.Post.Content, descriptionMax),
		URL:         canonical,
		Type:        "article",
	}
	m.Image = resolver.Placeholder()
	for _, item := range d.Post.Media {
		if !item.IsVideo() {
			m.Image = resolver.Resolve(item.URL)
			break
		}
	}

	if s := d.SEO; s != nil {
		if s.Title != "" {
			m.Title = s.Title
		}
		if s.Description != "" {
			m.Description = s.Description
		}
		if s.ImageURL != "" {
			m.Image = resolver.Resolve(s.ImageURL)
		}
		if s.URL != "" {
			m.URL = s.URL
		}
	}
	if m.Title == "" {
		m.Title = SiteName
	}
	return m
}

// ShareLinks are the targets of the share menu on a post.
type ShareLinks struct {
	Twitter  string
	Facebook string
	LinkedIn string
	WhatsApp string
	// CopyText is what the copy button puts on the clipboard.
	CopyText string
}

func Share(title, pageURL string) ShareLinks {
	t, u := encode(title), encode(pageURL)
	return ShareLinks{
		Twitter:  "https://twitter.com/intent/tweet?text=" + t + "&url=" + u,
		Facebook: "https://www.facebook.com/sharer/sharer.php?u=" + u + "&quote=" + t,
		LinkedIn: "https://www.linkedin.com/shareArticle?url=" + u + "&title=" + t,
		WhatsApp: "https://api.whatsapp.com/send?text=" + encode(title+" "+pageURL),
		CopyText: title + "\n" + pageURL,
	}
}

// Canonical joins the public origin and a request path.
func Canonical(publicURL, path string) string {
	return strings.TrimRight(publicURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// encode escapes s like a URI component, spaces as %20.
func encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
