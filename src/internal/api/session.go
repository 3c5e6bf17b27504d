package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maksimkurb/mobile-manager/src/internal/domain"
	"github.com/maksimkurb/mobile-manager/src/internal/log"
	"github.com/maksimkurb/mobile-manager/src/internal/manager"
)

const (
	// SessionCookieName is the cookie holding the browser's session id.
	SessionCookieName = "mobile_manager_session"

	// DefaultSessionTTL is how long an idle session is kept.
	DefaultSessionTTL = 12 * time.Hour
)

type session struct {
	manager  *manager.Manager
	lastSeen time.Time
}

// SessionStore maps browser sessions to their own Manager.
type SessionStore struct {
	client domain.MobileClient
	ttl    time.Duration
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// NewSessionStore creates a store whose managers talk to client.
func NewSessionStore(client domain.MobileClient, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		client:   client,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Manager returns the Manager of the request's session. A missing or expired
// session cookie starts a new session and sets the cookie on w.
func (s *SessionStore) Manager(w http.ResponseWriter, r *http.Request) *manager.Manager {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if sess, ok := s.sessions[cookie.Value]; ok && now.Sub(sess.lastSeen) < s.ttl {
			sess.lastSeen = now
			return sess.manager
		}
	}

	s.pruneLocked(now)

	id := uuid.NewString()
	sess := &session{manager: manager.NewManager(s.client), lastSeen: now}
	s.sessions[id] = sess
	log.Debugf("Started session %s", id)

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess.manager
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) pruneLocked(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) >= s.ttl {
			delete(s.sessions, id)
			log.Debugf("Expired session %s", id)
		}
	}
}
