package httpadapter

import (
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"svw.info/sudoku-play/internal/domain"
)

// registry holds live sessions in memory. Puzzles are ephemeral: nothing is
// persisted, and sessions die with the process.
type registry struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	counter  atomic.Int64
}

func newRegistry() *registry {
	return &registry{sessions: make(map[string]*domain.Session)}
}

func (r *registry) add(s *domain.Session) string {
	id := strconv.FormatInt(time.Now().UnixNano(), 10) + "-" + strconv.FormatInt(r.counter.Add(1), 10)
	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()
	return id
}

// with runs fn on the session while holding the registry lock, so two
// requests cannot mutate the same session concurrently. The engine itself
// assumes one caller per session; this serializes HTTP callers.
func (r *registry) with(id string, fn func(*domain.Session) error) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return false, nil
	}
	return true, fn(s)
}
