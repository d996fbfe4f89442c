package story

import (
	"errors"
	"math"
	"time"

	"github.com/orgball2608/newsportal/internal/domain"
)

var (
	ErrEmptyStory = errors.New("story has no media items")
	ErrNotOpen    = errors.New("story session is not open")
)

type Config struct {
	ImageDwell       time.Duration
	MaxVideoDuration time.Duration
	TickInterval     time.Duration
	// MetadataTimeout is how long a video may play without reporting its
	// duration before the image dwell is used instead. Zero waits forever.
	MetadataTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		ImageDwell:       7 * time.Second,
		MaxVideoDuration: 120 * time.Second,
		TickInterval:     100 * time.Millisecond,
		MetadataTimeout:  10 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ImageDwell <= 0 {
		c.ImageDwell = d.ImageDwell
	}
	if c.MaxVideoDuration <= 0 {
		c.MaxVideoDuration = d.MaxVideoDuration
	}
	if c.TickInterval <= 0 {
		c.TickInterval = d.TickInterval
	}
	if c.MetadataTimeout < 0 {
		c.MetadataTimeout = 0
	}
	return c
}

// MediaController controls the media element showing the current item.
type MediaController interface {
	Pause(item domain.MediaItem)
}

type nopMedia struct{}

func (nopMedia) Pause(domain.MediaItem) {}

// Session is the playback state machine for one viewer. It is not safe for
// concurrent use; Player serializes access to it.
type Session struct {
	cfg   Config
	lock  ScrollLock
	media MediaController

	story    domain.Story
	open     bool
	index    int
	elapsed  time.Duration
	duration time.Duration
	playing  bool
	awaiting bool
	waited   time.Duration
	release  func()
}

func NewSession(cfg Config, lock ScrollLock, media MediaController) *Session {
	if lock == nil {
		lock = NewPageLock()
	}
	if media == nil {
		media = nopMedia{}
	}
	return &Session{
		cfg:   cfg.withDefaults(),
		lock:  lock,
		media: media,
	}
}

// Open starts playback of st from its first item. An already open session is
// closed first.
func (s *Session) Open(st domain.Story) error {
	if st.Len() == 0 {
		return ErrEmptyStory
	}
	s.Close()

	s.story = st
	s.open = true
	s.playing = true
	s.release = s.lock.Acquire()
	s.land(0)
	return nil
}

// Advance moves to the next item, or closes the session after the last one.
func (s *Session) Advance() {
	if !s.open {
		return
	}
	if s.index < s.story.Len()-1 {
		s.land(s.index + 1)
		return
	}
	s.Close()
}

// Retreat moves to the previous item. On the first item it restarts the
// item's timers instead; a video keeps its reported duration.
func (s *Session) Retreat() {
	if !s.open {
		return
	}
	if s.index == 0 {
		s.elapsed = 0
		s.waited = 0
		return
	}
	s.land(s.index - 1)
}

func (s *Session) TogglePlayPause() {
	if !s.open {
		return
	}
	s.playing = !s.playing
}

// Close pauses the current video, releases the scroll lock and resets the
// position. Closing a closed session does nothing.
func (s *Session) Close() {
	if !s.open {
		return
	}
	if item := s.current(); item.IsVideo() {
		s.media.Pause(item)
	}

	s.open = false
	s.playing = false
	s.index = 0
	s.elapsed = 0
	s.duration = 0
	s.awaiting = false
	s.waited = 0
	s.story = domain.Story{}

	if s.release != nil {
		s.release()
		s.release = nil
	}
}

// ReportVideoDuration sets the duration of the current video item, capped at
// MaxVideoDuration. It reports whether the value was accepted.
func (s *Session) ReportVideoDuration(seconds float64) bool {
	if !s.open || !s.current().IsVideo() {
		return false
	}
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return false
	}

	d := s.cfg.MaxVideoDuration
	if seconds < d.Seconds() {
		d = time.Duration(seconds * float64(time.Second))
	}
	s.duration = d
	s.awaiting = false
	return true
}

// VideoEnded advances when the current video finished playing.
func (s *Session) VideoEnded() {
	if !s.open || !s.current().IsVideo() {
		return
	}
	s.Advance()
}

// Tick accounts for one timer period and reports whether it moved the
// session to another item or closed it.
func (s *Session) Tick() bool {
	if !s.open || !s.playing {
		return false
	}

	if s.awaiting {
		s.waited += s.cfg.TickInterval
		if s.cfg.MetadataTimeout > 0 && s.waited >= s.cfg.MetadataTimeout {
			s.awaiting = false
			s.duration = s.cfg.ImageDwell
		}
		return false
	}

	s.elapsed += s.cfg.TickInterval
	if s.elapsed < s.duration {
		return false
	}
	s.elapsed = s.duration
	s.Advance()
	return true
}

func (s *Session) IsOpen() bool {
	return s.open
}

func (s *Session) Index() int {
	return s.index
}

// Progress is the fill of the current item's bar, 0 to 100.
func (s *Session) Progress() float64 {
	if !s.open || s.duration <= 0 {
		return 0
	}
	if s.elapsed >= s.duration {
		return 100
	}
	return float64(s.elapsed) / float64(s.duration) * 100
}

func (s *Session) State() State {
	st := State{
		Open:             s.open,
		Index:            s.index,
		Progress:         s.Progress(),
		Playing:          s.playing,
		AwaitingMetadata: s.awaiting,
		Duration:         s.duration,
	}
	if !s.open {
		return st
	}

	st.StoryID = s.story.ID
	st.Title = s.story.Title
	st.Count = s.story.Len()
	st.Item = s.current()
	st.Bars = make([]float64, st.Count)
	for i := range st.Bars {
		switch {
		case i < s.index:
			st.Bars[i] = 100
		case i == s.index:
			st.Bars[i] = st.Progress
		}
	}
	return st
}

func (s *Session) current() domain.MediaItem {
	if !s.open || s.index >= s.story.Len() {
		return domain.MediaItem{}
	}
	return s.story.MediaFiles[s.index]
}

// land makes i the current item with an empty bar. Images get the fixed
// dwell; videos wait for their duration to be reported.
func (s *Session) land(i int) {
	s.index = i
	s.elapsed = 0
	s.waited = 0
	if s.story.MediaFiles[i].IsVideo() {
		s.duration = 0
		s.awaiting = true
		return
	}
	s.duration = s.cfg.ImageDwell
	s.awaiting = false
}
