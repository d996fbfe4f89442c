package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/orgball2608/newsportal/pkg/config"
)

func TestModuleGraph(t *testing.T) {
	require.NoError(t, fx.ValidateApp(Module))
	require.NoError(t, fx.ValidateApp(Core, fx.Invoke(NewResolver)))
}

func TestStoryConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Story.ImageDwell = 5_000_000_000
	cfg.Story.MetadataTimeout = 0

	sc := StoryConfig(cfg)
	assert.Equal(t, cfg.Story.ImageDwell, sc.ImageDwell)
	assert.Zero(t, sc.MetadataTimeout)
}

func TestNewResolver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Content.BaseURL = "https://api.test/"
	cfg.Content.Placeholder = "/static/images/Breakingnews.png"

	r := NewResolver(cfg)
	assert.Equal(t, "https://api.test/media/a.jpg", r.Resolve("media/a.jpg"))
	assert.Equal(t, "https://api.test/static/images/Breakingnews.png", r.Placeholder())
}
