package story

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/orgball2608/newsportal/internal/domain"
)

func TestThumbnailFor(t *testing.T) {
	tests := []struct {
		name      string
		story     domain.Story
		wantMedia string
		wantVideo bool
	}{
		{
			name:      "image first",
			story:     domain.Story{MediaFiles: []domain.MediaItem{{Media: "/a.png", Type: domain.MediaImage}}},
			wantMedia: "/a.png",
		},
		{
			name: "video first falls back to first image",
			story: domain.Story{MediaFiles: []domain.MediaItem{
				{Media: "/a.mp4", Type: domain.MediaVideo},
				{Media: "/b.mp4", Type: domain.MediaVideo},
				{Media: "/c.jpg", Type: domain.MediaImage},
			}},
			wantMedia: "/c.jpg",
			wantVideo: true,
		},
		{
			name:      "video only uses placeholder",
			story:     domain.Story{MediaFiles: []domain.MediaItem{{Media: "/a.mp4", Type: domain.MediaVideo}}},
			wantMedia: "",
			wantVideo: true,
		},
		{
			name:  "no media",
			story: domain.Story{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := ThumbnailFor(tt.story)
			assert.Equal(t, tt.wantMedia, th.Media)
			assert.Equal(t, tt.wantVideo, th.IsVideo)
		})
	}
}

func TestThumbnailCaption(t *testing.T) {
	th := ThumbnailFor(domain.Story{ID: 4, Title: "Lagos traffic update this morning"})
	assert.Equal(t, "Lagos traffic update...", th.Caption)
	assert.Equal(t, 4, th.StoryID)
}

func TestRailOrder(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	stories := []domain.Story{
		{ID: 1, CreatedAt: base},
		{ID: 2, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 3, CreatedAt: base.Add(time.Hour)},
		{ID: 4, CreatedAt: base.Add(2 * time.Hour)},
	}

	ids := func(r *Rail) []int {
		var out []int
		for _, s := range r.Stories() {
			out = append(out, s.ID)
		}
		return out
	}

	assert.Equal(t, []int{1, 2, 3, 4}, ids(NewRail(stories, false)))
	assert.Equal(t, []int{2, 4, 3, 1}, ids(NewRail(stories, true)))
	assert.Equal(t, 1, stories[0].ID, "input is not reordered")

	s, ok := NewRail(stories, false).Find(3)
	assert.True(t, ok)
	assert.Equal(t, 3, s.ID)
	_, ok = NewRail(stories, false).Find(99)
	assert.False(t, ok)
}

func TestScrollState(t *testing.T) {
	s := ScrollState{Offset: 0, Viewport: 500, Content: 900}
	assert.False(t, s.CanScrollLeft())
	assert.True(t, s.CanScrollRight())

	s = s.ScrollBy(ScrollStep)
	assert.Equal(t, 200, s.Offset)
	assert.True(t, s.CanScrollLeft())

	s = s.ScrollBy(ScrollStep).ScrollBy(ScrollStep)
	assert.Equal(t, 400, s.Offset)
	assert.False(t, s.CanScrollRight())

	s = s.ScrollBy(-1000)
	assert.Equal(t, 0, s.Offset)

	narrow := ScrollState{Viewport: 900, Content: 500}.ScrollBy(ScrollStep)
	assert.Equal(t, 0, narrow.Offset)
	assert.False(t, narrow.CanScrollRight())
}
