package domain

import (
	"encoding/json"
	"strings"
)

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// ParseMediaKind reads an explicit type field. Anything that is not "video"
// (case-insensitive) is an image; empty input yields "".
func ParseMediaKind(s string) MediaKind {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return ""
	case strings.EqualFold(s, string(MediaVideo)):
		return MediaVideo
	default:
		return MediaImage
	}
}

func (k *MediaKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*k = ParseMediaKind(s)
	return nil
}

// Media is a card media unit attached to a post.
type Media struct {
	URL     string    `json:"media_url"`
	Type    MediaKind `json:"type"`
	Caption string    `json:"caption"`
}

func (m Media) IsVideo() bool {
	return m.Type == MediaVideo
}

// MediaList accepts either a single media object or an array of them.
type MediaList []Media

func (l *MediaList) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	switch {
	case trimmed == "null" || trimmed == "":
		*l = nil
		return nil
	case strings.HasPrefix(trimmed, "["):
		var items []Media
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*l = items
		return nil
	default:
		var item Media
		if err := json.Unmarshal(b, &item); err != nil {
			return err
		}
		*l = MediaList{item}
		return nil
	}
}

// First returns the first media unit, if any.
func (l MediaList) First() (Media, bool) {
	if len(l) == 0 {
		return Media{}, false
	}
	return l[0], true
}
