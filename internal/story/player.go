package story

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/orgball2608/newsportal/internal/domain"
)

const eventBuffer = 16

// Player binds a Session to a ticker goroutine. The ticker runs only while
// the session is open and is stopped, not paused, whenever it closes.
type Player struct {
	cfg   Config
	clock clockwork.Clock
	lock  ScrollLock

	mu         sync.Mutex
	session    *Session
	cancel     context.CancelFunc
	lastActive time.Time

	wg     sync.WaitGroup
	events chan Event
}

func NewPlayer(cfg Config, clock clockwork.Clock, lock ScrollLock) *Player {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if lock == nil {
		lock = NewPageLock()
	}
	p := &Player{
		cfg:        cfg.withDefaults(),
		clock:      clock,
		lock:       lock,
		events:     make(chan Event, eventBuffer),
		lastActive: clock.Now(),
	}
	p.session = NewSession(p.cfg, lock, p)
	return p
}

// Events delivers state changes. Slow readers lose the oldest events.
func (p *Player) Events() <-chan Event {
	return p.events
}

// Open starts st and arms the ticker. The ticker goroutine lives until the
// session closes or ctx is cancelled.
func (p *Player) Open(ctx context.Context, st domain.Story) error {
	if st.Len() == 0 {
		return ErrEmptyStory
	}
	p.stop()

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.session.Open(st); err != nil {
		return err
	}
	p.lastActive = p.clock.Now()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	ticker := p.clock.NewTicker(p.cfg.TickInterval)
	p.wg.Add(1)
	go p.run(runCtx, ticker)

	p.publish(Event{Kind: EventState, State: p.session.State()})
	return nil
}

func (p *Player) Next() (State, error) {
	return p.do((*Session).Advance)
}

func (p *Player) Prev() (State, error) {
	return p.do((*Session).Retreat)
}

func (p *Player) Toggle() (State, error) {
	return p.do((*Session).TogglePlayPause)
}

func (p *Player) VideoEnded() (State, error) {
	return p.do((*Session).VideoEnded)
}

func (p *Player) ReportDuration(seconds float64) (State, error) {
	return p.do(func(s *Session) {
		s.ReportVideoDuration(seconds)
	})
}

// Close pauses playback, closes the session and waits for the ticker
// goroutine to exit. It is safe to call on a closed player.
func (p *Player) Close() {
	p.mu.Lock()
	wasOpen := p.session.IsOpen()
	p.session.Close()
	if wasOpen {
		p.publish(Event{Kind: EventClosed, State: p.session.State()})
	}
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session.State()
}

func (p *Player) IsOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session.IsOpen()
}

// LastActive is the time of the last open or command.
func (p *Player) LastActive() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastActive
}

// Pause implements MediaController. The browser pauses its video element
// when it receives the event, before the closed event that follows it.
func (p *Player) Pause(item domain.MediaItem) {
	st := p.session.State()
	st.Item = item
	p.publish(Event{Kind: EventPause, State: st})
}

func (p *Player) do(fn func(*Session)) (State, error) {
	p.mu.Lock()
	if !p.session.IsOpen() {
		st := p.session.State()
		p.mu.Unlock()
		return st, ErrNotOpen
	}

	fn(p.session)
	p.lastActive = p.clock.Now()
	st := p.session.State()

	var cancel context.CancelFunc
	if st.Open {
		p.publish(Event{Kind: EventState, State: st})
	} else {
		p.publish(Event{Kind: EventClosed, State: st})
		cancel = p.cancel
		p.cancel = nil
	}
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		p.wg.Wait()
	}
	return st, nil
}

func (p *Player) run(ctx context.Context, ticker clockwork.Ticker) {
	defer p.wg.Done()
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
		}

		p.mu.Lock()
		if ctx.Err() != nil {
			p.mu.Unlock()
			return
		}
		p.session.Tick()
		st := p.session.State()
		if st.Open {
			p.publish(Event{Kind: EventState, State: st})
			p.mu.Unlock()
			continue
		}

		p.publish(Event{Kind: EventClosed, State: st})
		cancel := p.cancel
		p.cancel = nil
		p.mu.Unlock()
		if cancel != nil {
			cancel()
		}
		return
	}
}

// stop cancels a running ticker without closing the session.
func (p *Player) stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

// publish must be called with p.mu held.
func (p *Player) publish(ev Event) {
	for {
		select {
		case p.events <- ev:
			return
		default:
		}
		select {
		case <-p.events:
		default:
		}
	}
}
