package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-matcher/internal/models"
)

const inboxCapacity = 20

// Session is the server-side state behind one page load.
type Session struct {
	ID         uuid.UUID
	Controller *AnalysisController

	mu       sync.Mutex
	lastSeen time.Time
	inbox    []models.Notification
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) push(n models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.inbox) == inboxCapacity {
		s.inbox = s.inbox[1:]
	}
	s.inbox = append(s.inbox, n)
}

// DrainNotifications returns queued toasts in publish order and empties the inbox.
func (s *Session) DrainNotifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.inbox
	s.inbox = nil
	if out == nil {
		out = []models.Notification{}
	}
	return out
}

// SessionStore keeps one in-memory session per page load. Nothing survives a
// restart. It doubles as the bus sink that fills session inboxes.
type SessionStore struct {
	analyzer Analyzer
	notifier Notifier
	timeout  time.Duration
	idleTTL  time.Duration
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	wg       sync.WaitGroup
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewSessionStore(analyzer Analyzer, timeout, idleTTL time.Duration) *SessionStore {
	return &SessionStore{
		analyzer: analyzer,
		timeout:  timeout,
		idleTTL:  idleTTL,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*Session),
		stopChan: make(chan struct{}),
	}
}

// SetNotifier wires the bus that controllers publish to. Call before Create.
func (s *SessionStore) SetNotifier(n Notifier) {
	s.notifier = n
}

func (s *SessionStore) Create() *Session {
	id := uuid.New()
	session := &Session{
		ID:         id,
		Controller: NewAnalysisController(id, s.analyzer, s.notifier, s.timeout),
		lastSeen:   s.now(),
	}

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	log.Printf("📥 Session %s created\n", id)
	return session
}

// Get returns the session and refreshes its idle timer.
func (s *SessionStore) Get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	session.touch(s.now())
	return session, nil
}

func (s *SessionStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return models.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Deliver implements NotificationSink.
func (s *SessionStore) Deliver(sessionID uuid.UUID, n models.Notification) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		session.push(n)
	}
}

// Sweep removes sessions idle longer than the TTL. Sessions with an analysis
// in flight are kept. Returns how many were removed.
func (s *SessionStore) Sweep() int {
	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.idleSince().Before(cutoff) && !session.Controller.IsAnalyzing() {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper removes idle sessions every interval until Stop or ctx ends.
func (s *SessionStore) StartSweeper(ctx context.Context, interval time.Duration) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		log.Println("🔄 Starting idle session sweeper")

		for {
			select {
			case <-s.stopChan:
				log.Println("🔄 Idle session sweeper stopped")
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					log.Printf("🧹 Removed %d idle sessions\n", n)
				}
			}
		}
	}()
}

func (s *SessionStore) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
}
