// Package article turns a post into terminal-friendly Markdown.
package article

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/orgball2608/newsportal/internal/domain"
	"github.com/orgball2608/newsportal/internal/media"
	"github.com/orgball2608/newsportal/pkg/formatter"
)

const DefaultWidth = 80

// Markdown converts d to a Markdown document: title, metadata line, lead
// media links, the body and the advert. Relative links in the body are
// resolved against the media origin.
func Markdown(d domain.PostDetail, resolver media.Resolver) (string, error) {
	body, err := htmltomarkdown.ConvertString(d.Post.Content, converter.WithDomain(resolver.Base()))
	if err != nil {
		return "", fmt.Errorf("convert to markdown: %w", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", d.Post.Title)

	var meta []string
	if c := d.Post.Category; c != nil && c.Name != "" {
		meta = append(meta, "**"+c.Name+"**")
	}
	if date := formatter.FormatDate(d.Post.Date); date != "" {
		meta = append(meta, "_"+date+"_")
	}
	if len(meta) > 0 {
		sb.WriteString(strings.Join(meta, " · ") + "\n\n")
	}

	for i, m := range d.Post.Media {
		label := "Image"
		if m.IsVideo() {
			label = "Video"
		}
		fmt.Fprintf(&sb, "- [%s %d of %d](%s)\n", label, i+1, len(d.Post.Media), resolver.Resolve(m.URL))
	}
	if len(d.Post.Media) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString(strings.TrimSpace(body))
	sb.WriteString("\n")

	if advert := strings.TrimSpace(d.Advert); advert != "" {
		sb.WriteString("\n---\n\n")
		for _, line := range strings.Split(advert, "\n") {
			sb.WriteString("> " + line + "\n")
		}
	}
	return sb.String(), nil
}

// Render lays the Markdown out for a terminal of the given width. An empty
// style picks one from the terminal background.
func Render(markdown, style string, width int) (string, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	opt := glamour.WithAutoStyle()
	if style != "" {
		opt = glamour.WithStandardStyle(style)
	}

	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	return r.Render(markdown)
}

// Plain renders without colors, for pipes and tests.
func Plain(markdown string, width int) (string, error) {
	return Render(markdown, styles.NoTTYStyle, width)
}
