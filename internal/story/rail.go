package story

import (
	"slices"

	"github.com/orgball2608/newsportal/internal/domain"
	"github.com/orgball2608/newsportal/pkg/formatter"
)

const (
	// ScrollStep is how far one press of a rail arrow scrolls, in pixels.
	ScrollStep = 200

	captionWords = 3
)

// Thumbnail is one entry of the stories carousel.
type Thumbnail struct {
	StoryID int
	Title   string
	Caption string
	// Media is the path shown as the thumbnail. It is empty when the story
	// has no image to show; resolving it then yields the placeholder.
	Media   string
	IsVideo bool
}

// Rail holds the stories list fetched at mount.
type Rail struct {
	stories []domain.Story
}

// NewRail keeps the server order unless byRecency is set, in which case the
// newest story comes first. Ties keep their server order.
func NewRail(stories []domain.Story, byRecency bool) *Rail {
	list := slices.Clone(stories)
	if byRecency {
		slices.SortStableFunc(list, func(a, b domain.Story) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
	return &Rail{stories: list}
}

func (r *Rail) Len() int {
	return len(r.stories)
}

func (r *Rail) Stories() []domain.Story {
	return r.stories
}

// Find returns the story with the given id.
func (r *Rail) Find(id int) (domain.Story, bool) {
	for _, s := range r.stories {
		if s.ID == id {
			return s, true
		}
	}
	return domain.Story{}, false
}

func (r *Rail) Thumbnails() []Thumbnail {
	out := make([]Thumbnail, 0, len(r.stories))
	for _, s := range r.stories {
		out = append(out, ThumbnailFor(s))
	}
	return out
}

// ThumbnailFor picks the thumbnail media of s. A story that starts with a
// video shows its first image instead, since frames cannot be grabbed
// server side.
func ThumbnailFor(s domain.Story) Thumbnail {
	t := Thumbnail{
		StoryID: s.ID,
		Title:   s.Title,
		Caption: formatter.TruncateWords(s.Title, captionWords),
	}
	if s.Len() == 0 {
		return t
	}

	first := s.MediaFiles[0]
	t.IsVideo = first.IsVideo()
	if !t.IsVideo {
		t.Media = first.Media
		return t
	}
	for _, item := range s.MediaFiles[1:] {
		if !item.IsVideo() {
			t.Media = item.Media
			break
		}
	}
	return t
}

// ScrollState mirrors the horizontal scroll position of the rail.
type ScrollState struct {
	Offset   int
	Viewport int
	Content  int
}

func (s ScrollState) CanScrollLeft() bool {
	return s.Offset > 0
}

func (s ScrollState) CanScrollRight() bool {
	return s.Offset+s.Viewport < s.Content
}

// ScrollBy moves the offset by delta, clamped to the scrollable range.
func (s ScrollState) ScrollBy(delta int) ScrollState {
	limit := max(s.Content-s.Viewport, 0)
	s.Offset = min(max(s.Offset+delta, 0), limit)
	return s
}
