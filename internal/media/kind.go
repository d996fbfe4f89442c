package media

import (
	"net/url"
	"path"
	"strings"

	"github.com/h2non/filetype"

	"github.com/orgball2608/newsportal/internal/domain"
)

// InferKind sniffs the media kind from the file extension of rawURL.
// Extensions registered as video in the filetype matcher table (mp4, webm,
// mov, ...) are videos; everything else is an image.
func InferKind(rawURL string) domain.MediaKind {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(p)), ".")
	if ext == "" {
		return domain.MediaImage
	}
	if filetype.GetType(ext).MIME.Type == "video" {
		return domain.MediaVideo
	}
	return domain.MediaImage
}

// Subtype is the MIME subtype used for a <source type="video/..."> attribute.
func Subtype(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(p)), ".")
	if ext == "" {
		return "mp4"
	}
	return ext
}

// NormalizeStory fills in missing media kinds. The explicit type field always
// wins; the extension is only consulted when it is absent.
func NormalizeStory(s domain.Story) domain.Story {
	items := make([]domain.MediaItem, len(s.MediaFiles))
	for i, item := range s.MediaFiles {
		if item.Type == "" {
			item.Type = InferKind(item.Media)
		}
		items[i] = item
	}
	s.MediaFiles = items
	return s
}

// NormalizeMedia is NormalizeStory for card media.
func NormalizeMedia(list domain.MediaList) domain.MediaList {
	if list == nil {
		return nil
	}
	out := make(domain.MediaList, len(list))
	for i, m := range list {
		if m.Type == "" {
			m.Type = InferKind(m.URL)
		}
		out[i] = m
	}
	return out
}

// NormalizePost applies NormalizeMedia to a post.
func NormalizePost(p domain.Post) domain.Post {
	p.Media = NormalizeMedia(p.Media)
	return p
}

// NormalizePosts applies NormalizePost to every post.
func NormalizePosts(posts []domain.Post) []domain.Post {
	if posts == nil {
		return nil
	}
	out := make([]domain.Post, len(posts))
	for i, p := range posts {
		out[i] = NormalizePost(p)
	}
	return out
}
