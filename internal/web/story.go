package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/orgball2608/newsportal/internal/story"
	"github.com/orgball2608/newsportal/pkg/errors"
)

const sseKeepAlive = 15 * time.Second

// stateView is a story state with the current item's URL resolved for the
// browser.
type stateView struct {
	story.State
	MediaURL string `json:"media_url,omitempty"`
	IsVideo  bool   `json:"is_video"`
}

func (s *Server) view(st story.State) stateView {
	v := stateView{State: st}
	if st.Open {
		v.MediaURL = s.resolver.Resolve(st.Item.Media)
		v.IsVideo = st.Item.IsVideo()
	}
	return v
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("Failed to write response", "error", err)
	}
}

func (s *Server) writeJSONError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) player(w http.ResponseWriter, r *http.Request) (uuid.UUID, *story.Player, bool) {
	id, err := uuid.Parse(r.PathValue("sid"))
	if err != nil {
		s.writeJSONError(w, http.StatusNotFound, "Unknown story session")
		return uuid.Nil, nil, false
	}
	p, ok := s.registry.Get(id)
	if !ok {
		s.writeJSONError(w, http.StatusNotFound, "Unknown story session")
		return uuid.Nil, nil, false
	}
	return id, p, true
}

func (s *Server) handleStoryOpen(w http.ResponseWriter, r *http.Request) {
	storyID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.writeJSONError(w, http.StatusNotFound, "Story not found")
		return
	}

	stories, err := s.content.Stories(r.Context())
	if err != nil {
		s.logger.Error("Failed to load stories", "error", err)
		s.writeJSONError(w, errors.HTTPStatus(err), "Stories are unavailable right now")
		return
	}
	st, ok := story.NewRail(stories, s.cfg.Story.SortByRecency).Find(storyID)
	if !ok {
		s.writeJSONError(w, http.StatusNotFound, "Story not found")
		return
	}

	id, p, err := s.registry.Start(st)
	if errors.Is(err, story.ErrEmptyStory) {
		s.writeJSONError(w, http.StatusUnprocessableEntity, "Story has no media")
		return
	}
	if err != nil {
		s.logger.Error("Failed to open story", "story_id", storyID, "error", err)
		s.writeJSONError(w, http.StatusInternalServerError, "Could not open story")
		return
	}

	s.writeJSON(w, http.StatusCreated, struct {
		SessionID uuid.UUID `json:"session_id"`
		State     stateView `json:"state"`
	}{id, s.view(p.State())})
}

func (s *Server) handleStoryState(w http.ResponseWriter, r *http.Request) {
	_, p, ok := s.player(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, s.view(p.State()))
}

// handleStoryEvents streams player events as server-sent events until the
// session closes or the client goes away. The stream is the viewer's
// lifetime: when it ends the player is closed and forgotten.
func (s *Server) handleStoryEvents(w http.ResponseWriter, r *http.Request) {
	id, p, ok := s.player(w, r)
	if !ok {
		return
	}
	defer s.registry.Close(id)

	rc := http.NewResponseController(w)
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	send := func(ev story.Event) error {
		b, err := json.Marshal(s.view(ev.State))
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Kind, b); err != nil {
			return err
		}
		return rc.Flush()
	}

	st := p.State()
	initial := story.Event{Kind: story.EventState, State: st}
	if !st.Open {
		initial.Kind = story.EventClosed
	}
	if err := send(initial); err != nil || !st.Open {
		return
	}

	keepAlive := time.NewTicker(sseKeepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		case ev := <-p.Events():
			if err := send(ev); err != nil {
				s.logger.Debug("Event stream ended", "error", err)
				return
			}
			if ev.Kind == story.EventClosed {
				return
			}
		}
	}
}

func (s *Server) handleStoryAction(w http.ResponseWriter, r *http.Request) {
	id, p, ok := s.player(w, r)
	if !ok {
		return
	}

	var (
		st  story.State
		err error
	)
	switch r.PathValue("action") {
	case "next":
		st, err = p.Next()
	case "prev":
		st, err = p.Prev()
	case "toggle":
		st, err = p.Toggle()
	case "ended":
		st, err = p.VideoEnded()
	case "duration":
		seconds, perr := strconv.ParseFloat(r.FormValue("seconds"), 64)
		if perr != nil {
			s.writeJSONError(w, http.StatusBadRequest, "seconds must be a number")
			return
		}
		st, err = p.ReportDuration(seconds)
	case "close":
		s.registry.Close(id)
		st = p.State()
	default:
		s.writeJSONError(w, http.StatusNotFound, "Unknown action")
		return
	}

	if errors.Is(err, story.ErrNotOpen) {
		s.writeJSONError(w, http.StatusConflict, "Story session is closed")
		return
	}
	s.writeJSON(w, http.StatusOK, s.view(st))
}
