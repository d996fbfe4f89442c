package story

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/orgball2608/newsportal/internal/domain"
	"github.com/orgball2608/newsportal/pkg/logger"
)

type RegistryOpts struct {
	Config Config
	TTL    time.Duration
	Clock  clockwork.Clock
	Logger logger.Logger
}

// Registry keeps the players driven by browser viewers.
type Registry struct {
	cfg    Config
	ttl    time.Duration
	clock  clockwork.Clock
	logger logger.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	players map[uuid.UUID]*Player
}

func NewRegistry(opts RegistryOpts) *Registry {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.TTL <= 0 {
		opts.TTL = 15 * time.Minute
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Registry{
		cfg:     opts.Config,
		ttl:     opts.TTL,
		clock:   opts.Clock,
		logger:  opts.Logger.WithComponent("StoryRegistry"),
		ctx:     ctx,
		cancel:  cancel,
		players: make(map[uuid.UUID]*Player),
	}
}

// Start opens st in a new player and returns its id. Players outlive the
// request that created them; they stop when closed, reaped or on Shutdown.
func (r *Registry) Start(st domain.Story) (uuid.UUID, *Player, error) {
	p := NewPlayer(r.cfg, r.clock, nil)
	if err := p.Open(r.ctx, st); err != nil {
		return uuid.Nil, nil, err
	}

	id := uuid.New()
	r.mu.Lock()
	r.players[id] = p
	r.mu.Unlock()

	r.logger.Info("Story session opened", "session_id", id, "story_id", st.ID, "items", st.Len())
	return id, p, nil
}

func (r *Registry) Get(id uuid.UUID) (*Player, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[id]
	return p, ok
}

// Close closes and forgets the player. It reports whether id was known.
func (r *Registry) Close(id uuid.UUID) bool {
	r.mu.Lock()
	p, ok := r.players[id]
	delete(r.players, id)
	r.mu.Unlock()

	if !ok {
		return false
	}
	p.Close()
	r.logger.Info("Story session closed", "session_id", id)
	return true
}

// Reap drops players that have closed or sat idle longer than the TTL.
func (r *Registry) Reap() int {
	now := r.clock.Now()

	r.mu.Lock()
	var stale []*Player
	for id, p := range r.players {
		if p.IsOpen() && now.Sub(p.LastActive()) < r.ttl {
			continue
		}
		stale = append(stale, p)
		delete(r.players, id)
	}
	r.mu.Unlock()

	for _, p := range stale {
		p.Close()
	}
	if len(stale) > 0 {
		r.logger.Info("Reaped story sessions", "count", len(stale))
	}
	return len(stale)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}

// Shutdown closes every player.
func (r *Registry) Shutdown() {
	r.cancel()

	r.mu.Lock()
	players := r.players
	r.players = make(map[uuid.UUID]*Player)
	r.mu.Unlock()

	for _, p := range players {
		p.Close()
	}
}
