package client

import (
	"sync"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"
)

// Session is the client-side auth state. One instance is created by the caller and
// injected into every Client that needs it.
type Session struct {
	mu    sync.RWMutex
	token string
	user  *models.User
}

func (s *Session) Set(token string, user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.user = token, user
}

func (s *Session) Clear() { s.Set("", nil) }

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the signed-in user, or nil.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAdmin reports whether the signed-in user may open the user listing.
func (s *Session) IsAdmin() bool {
	u := s.User()
	return u != nil && u.Role == models.RoleAdmin
}
