package animator

import (
	"context"
	"sync"
	"time"

	"campus-map-api/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultInterval is the time between two camera moves.
const DefaultInterval = 500 * time.Millisecond

// State is the playback state of the animator.
type State string

const (
	StateIdle    State = "idle"
	StatePlaying State = "playing"
)

// Outcome is how the most recent session ended.
type Outcome string

const (
	OutcomeNone      Outcome = "none"
	OutcomeComplete  Outcome = "complete"
	OutcomeCancelled Outcome = "cancelled"
)

// Status is a snapshot of the animator.
type Status struct {
	SessionID   string  `json:"session_id,omitempty"`
	State       State   `json:"state"`
	LastOutcome Outcome `json:"last_outcome"`
	Cursor      int     `json:"cursor"`
	Total       int     `json:"total"`
}

// Sink receives camera moves. MoveCamera must not block and must not call back into the Animator.
type Sink interface {
	MoveCamera(ctx context.Context, move models.CameraMove)
}

// Option configures an Animator.
type Option func(*Animator)

// WithInterval sets the time between camera moves.
func WithInterval(d time.Duration) Option {
	return func(a *Animator) {
		if d > 0 {
			a.interval = d
		}
	}
}

// WithTicker replaces the ticker factory.
func WithTicker(f TickerFunc) Option {
	return func(a *Animator) {
		if f != nil {
			a.newTicker = f
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Animator) {
		a.logger = l.With().Str("component", "animator").Logger()
	}
}

// Animator plays a route back as one camera move per tick.
// At most one session is active, and it is the only holder of a ticker.
type Animator struct {
	sink      Sink
	interval  time.Duration
	newTicker TickerFunc
	logger    zerolog.Logger

	// control serializes Start and Cancel so a superseded session is always torn down first.
	control sync.Mutex

	mu      sync.Mutex
	session *session
	last    Status
}

type session struct {
	id     string
	route  models.Route
	cursor int
	ticker Ticker
	done   chan struct{}
	exited chan struct{}
}

// New creates an idle Animator emitting to sink.
func New(sink Sink, opts ...Option) *Animator {
	a := &Animator{
		sink:      sink,
		interval:  DefaultInterval,
		newTicker: NewTimeTicker,
		logger:    zerolog.Nop(),
		last:      Status{State: StateIdle, LastOutcome: OutcomeNone},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start begins playback of route, cancelling any active session first.
// An empty route is a no-op: nothing is cancelled and false is returned.
func (a *Animator) Start(ctx context.Context, route models.Route) (string, bool) {
	if route.Empty() {
		return "", false
	}

	a.control.Lock()
	defer a.control.Unlock()

	a.cancelActive()

	s := &session{
		id:     uuid.NewString(),
		route:  route.Clone(),
		ticker: a.newTicker(a.interval),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}

	a.mu.Lock()
	a.session = s
	a.mu.Unlock()

	a.logger.Info().
		Str("session_id", s.id).
		Int("points", len(s.route.Coordinates)).
		Dur("interval", a.interval).
		Msg("playback started")

	go a.run(ctx, s)

	return s.id, true
}

// Cancel stops the active session and releases its ticker. No camera move is emitted
// after Cancel returns. It reports whether a session was active.
func (a *Animator) Cancel() bool {
	a.control.Lock()
	defer a.control.Unlock()
	return a.cancelActive()
}

// Status returns the current playback status.
func (a *Animator) Status() Status {
	a.mu.Lock()
	defer a.mu.Unlock()
	if s := a.session; s != nil {
		return Status{
			SessionID:   s.id,
			State:       StatePlaying,
			LastOutcome: a.last.LastOutcome,
			Cursor:      s.cursor,
			Total:       len(s.route.Coordinates),
		}
	}
	return a.last
}

// cancelActive must be called with control held.
func (a *Animator) cancelActive() bool {
	a.mu.Lock()
	s := a.session
	a.mu.Unlock()
	if s == nil {
		return false
	}

	close(s.done)
	<-s.exited

	return a.finish(s, OutcomeCancelled)
}

func (a *Animator) run(ctx context.Context, s *session) {
	defer close(s.exited)
	defer s.ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ctx.Done():
			a.finish(s, OutcomeCancelled)
			return
		case <-s.ticker.C():
			select {
			case <-s.done:
				return
			default:
			}

			move, ok := a.advance(s)
			if !ok {
				a.finish(s, OutcomeComplete)
				return
			}
			a.logger.Debug().Str("session_id", s.id).Int("index", move.Index).Msg("camera move")
			a.sink.MoveCamera(ctx, move)
		}
	}
}

func (a *Animator) advance(s *session) (models.CameraMove, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	total := len(s.route.Coordinates)
	if s.cursor >= total {
		return models.CameraMove{}, false
	}

	move := models.CameraMove{
		SessionID:  s.id,
		Index:      s.cursor,
		Total:      total,
		Coordinate: s.route.Coordinates[s.cursor],
		DurationMS: a.interval.Milliseconds(),
	}
	s.cursor++
	return move, true
}

// finish moves s to a resting state unless it was already superseded or finished.
func (a *Animator) finish(s *session, outcome Outcome) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session != s {
		return false
	}

	a.session = nil
	a.last = Status{
		SessionID:   s.id,
		State:       StateIdle,
		LastOutcome: outcome,
		Cursor:      s.cursor,
		Total:       len(s.route.Coordinates),
	}

	a.logger.Info().
		Str("session_id", s.id).
		Str("outcome", string(outcome)).
		Int("cursor", s.cursor).
		Msg("playback finished")

	return true
}
