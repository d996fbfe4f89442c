package domain

import "time"

// Story is an ordered set of ephemeral media items shown in the stories
// carousel. Immutable once fetched.
type Story struct {
	ID         int         `json:"id"`
	Title      string      `json:"title"`
	MediaFiles []MediaItem `json:"media_files"`
	CreatedAt  time.Time   `json:"created_at"`
}

type MediaItem struct {
	ID      int       `json:"id"`
	Media   string    `json:"media"`
	Caption string    `json:"caption"`
	Type    MediaKind `json:"type"`
}

func (m MediaItem) IsVideo() bool {
	return m.Type == MediaVideo
}

// Len is the number of media items in the story.
func (s Story) Len() int {
	return len(s.MediaFiles)
}
