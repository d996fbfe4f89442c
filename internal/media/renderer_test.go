package media

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orgball2608/newsportal/internal/domain"
)

func newTestRenderer() *Renderer {
	return NewRenderer(NewResolver("https://cdn.x", "https://cdn.x/static/images/Breakingnews.png"))
}

func TestRenderImage(t *testing.T) {
	out := string(newTestRenderer().Render(domain.MediaList{{URL: "/a.png", Type: domain.MediaImage}}, "w-full", "/news/a"))

	assert.Contains(t, out, `<img src="https://cdn.x/a.png"`)
	assert.Contains(t, out, `class="w-full"`)
	assert.Contains(t, out, `data-href="/news/a"`)
	assert.Contains(t, out, "onerror=")
	assert.NotContains(t, out, "<video")
}

func TestRenderVideoUsesFirstUnitOnly(t *testing.T) {
	items := domain.MediaList{
		{URL: "/clip.mp4", Type: domain.MediaVideo},
		{URL: "/second.png", Type: domain.MediaImage},
	}
	out := string(newTestRenderer().Render(items, "hero", ""))

	assert.Contains(t, out, `<video`)
	assert.Contains(t, out, `src="https://cdn.x/clip.mp4" type="video/mp4"`)
	assert.Contains(t, out, ControlClass)
	assert.Contains(t, out, `aria-label="Play video"`)
	assert.NotContains(t, out, "second.png")
	assert.NotContains(t, out, "data-href")
}

func TestRenderEmptyUsesPlaceholder(t *testing.T) {
	out := string(newTestRenderer().Render(nil, "card", ""))
	assert.Contains(t, out, `src="https://cdn.x/static/images/Breakingnews.png"`)
	assert.Contains(t, out, `alt="Default News"`)
}
