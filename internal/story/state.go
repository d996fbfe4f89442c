package story

import (
	"time"

	"github.com/orgball2608/newsportal/internal/domain"
)

// State is a snapshot of a session for rendering.
type State struct {
	Open             bool             `json:"open"`
	StoryID          int              `json:"story_id,omitempty"`
	Title            string           `json:"title,omitempty"`
	Index            int              `json:"index"`
	Count            int              `json:"count"`
	Progress         float64          `json:"progress"`
	Playing          bool             `json:"playing"`
	AwaitingMetadata bool             `json:"awaiting_metadata"`
	Duration         time.Duration    `json:"duration_ns"`
	Bars             []float64        `json:"bars,omitempty"`
	Item             domain.MediaItem `json:"item"`
}

type EventKind string

const (
	EventState  EventKind = "state"
	EventPause  EventKind = "pause"
	EventClosed EventKind = "closed"
)

type Event struct {
	Kind  EventKind `json:"kind"`
	State State     `json:"state"`
}
