package widget

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrStoreFull is returned by Create once the session cap is reached.
var ErrStoreFull = errors.New("too many widget sessions")

// Store keeps the live widgets of all sessions in memory.
type Store struct {
	mu          sync.RWMutex
	widgets     map[string]*Widget
	layout      Layout
	maxSessions int // <= 0 means unbounded
	logger      *logrus.Logger
}

func NewStore(layout Layout, maxSessions int, logger *logrus.Logger) *Store {
	return &Store{
		widgets:     make(map[string]*Widget),
		layout:      layout,
		maxSessions: maxSessions,
		logger:      logger,
	}
}

// Create starts a new session.
func (s *Store) Create() (*Widget, error) {
	w, err := New(s.layout, s.logger)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.maxSessions > 0 && len(s.widgets) >= s.maxSessions {
		s.mu.Unlock()
		s.logger.WithField("sessions", s.maxSessions).Warn("widget session cap reached")
		return nil, ErrStoreFull
	}
	s.widgets[w.ID()] = w
	s.mu.Unlock()

	s.logger.WithField("widget", w.ID()).Info("widget session created")
	return w, nil
}

func (s *Store) Get(id string) (*Widget, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.widgets[id]
	return w, ok
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.widgets[id]; !ok {
		return false
	}
	delete(s.widgets, id)
	return true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.widgets)
}

// Sweep drops widgets idle for longer than maxIdle and returns how many.
func (s *Store) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, w := range s.widgets {
		if w.LastActive().Before(cutoff) {
			delete(s.widgets, id)
			removed++
		}
	}
	return removed
}

// RunSweeper sweeps every interval until ctx is done.
func (s *Store) RunSweeper(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := s.Sweep(maxIdle); n > 0 {
				s.logger.WithField("removed", n).Info("idle widget sessions swept")
			}
		case <-ctx.Done():
			return
		}
	}
}
