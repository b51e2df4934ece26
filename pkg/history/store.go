package history

import (
	"fmt"
	"log"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/robfig/cron/v3"
)

const (
	DefaultWindow        = 5
	DefaultMaxSessions   = 1000
	DefaultIdleTTL       = 24 * time.Hour
	DefaultSweepSchedule = "@every 10m"
)

// Turn is one exchange within a chat session
type Turn struct {
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// Options configures the bounds of a Store
type Options struct {
	MaxSessions   int           `yaml:"max_sessions"`   // Least recently used sessions are evicted past this count
	IdleTTL       time.Duration `yaml:"idle_ttl"`       // Sessions untouched for this long are swept; 0 disables sweeping
	SweepSchedule string        `yaml:"sweep_schedule"` // Cron schedule for the idle sweep
}

// conversation is the append-only turn log of a single session
type conversation struct {
	mu       sync.Mutex
	turns    []Turn
	lastUsed time.Time
}

// Store keeps chat history in memory, bounded by session count and idle time
type Store struct {
	mu       sync.Mutex
	sessions *lru.Cache[string, *conversation]
	idleTTL  time.Duration
	cron     *cron.Cron
	now      func() time.Time
}

// NewStore creates a history store. Call Start to begin idle sweeping
func NewStore(opts Options) (*Store, error) {
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultMaxSessions
	}
	if opts.SweepSchedule == "" {
		opts.SweepSchedule = DefaultSweepSchedule
	}

	sessions, err := lru.NewWithEvict(opts.MaxSessions, func(key string, _ *conversation) {
		log.Printf("[HISTORY]: Dropped session %s", key)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}

	s := &Store{
		sessions: sessions,
		idleTTL:  opts.IdleTTL,
		cron:     cron.New(),
		now:      time.Now,
	}

	if s.idleTTL > 0 {
		if _, err := s.cron.AddFunc(opts.SweepSchedule, func() { s.SweepIdle() }); err != nil {
			return nil, fmt.Errorf("invalid sweep schedule %q: %w", opts.SweepSchedule, err)
		}
	}

	return s, nil
}

// Start begins the background idle sweep
func (s *Store) Start() {
	s.cron.Start()
}

// Stop halts the idle sweep and waits for a running sweep to finish
func (s *Store) Stop() {
	<-s.cron.Stop().Done()
}

// conversation returns the log for key, creating it on first use
func (s *Store) conversation(key string) *conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.conversationLocked(key)
}

// conversationLocked is conversation for callers already holding s.mu
func (s *Store) conversationLocked(key string) *conversation {
	if conv, ok := s.sessions.Get(key); ok {
		return conv
	}

	conv := &conversation{lastUsed: s.now()}
	s.sessions.Add(key, conv)
	return conv
}

// GetOrCreate returns a copy of every turn stored for key
func (s *Store) GetOrCreate(key string) []Turn {
	conv := s.conversation(key)

	conv.mu.Lock()
	defer conv.mu.Unlock()

	conv.lastUsed = s.now()
	return append([]Turn(nil), conv.turns...)
}

// Append records a turn at the end of the session's history. The store lock
// is held until the turn is written so an eviction cannot orphan it
func (s *Store) Append(key, message, response string) Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.conversationLocked(key)

	conv.mu.Lock()
	defer conv.mu.Unlock()

	turn := Turn{
		Message:   message,
		Response:  response,
		CreatedAt: s.now(),
	}
	conv.turns = append(conv.turns, turn)
	conv.lastUsed = turn.CreatedAt

	return turn
}

// Recent returns the last limit turns of a session in original order. A
// non-positive limit uses DefaultWindow
func (s *Store) Recent(key string, limit int) []Turn {
	if limit <= 0 {
		limit = DefaultWindow
	}

	conv := s.conversation(key)

	conv.mu.Lock()
	defer conv.mu.Unlock()

	conv.lastUsed = s.now()
	start := max(len(conv.turns)-limit, 0)
	return append([]Turn(nil), conv.turns[start:]...)
}

// Len returns the number of sessions currently held
func (s *Store) Len() int {
	return s.sessions.Len()
}

// SweepIdle removes sessions unused for longer than the idle TTL and returns
// how many were removed
func (s *Store) SweepIdle() int {
	if s.idleTTL <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.idleTTL)
	removed := 0

	for _, key := range s.sessions.Keys() {
		conv, ok := s.sessions.Peek(key)
		if !ok {
			continue
		}

		conv.mu.Lock()
		idle := conv.lastUsed.Before(cutoff)
		conv.mu.Unlock()

		if idle && s.sessions.Remove(key) {
			removed++
		}
	}

	if removed > 0 {
		log.Printf("[HISTORY]: Swept %d idle sessions, %d remaining", removed, s.sessions.Len())
	}

	return removed
}
