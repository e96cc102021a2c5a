package memory

import (
	"sync"

	"github.com/katyavamnada-beep/casting-bot/internal/usecase"
)

// SessionStore — сессии анкеты в памяти процесса. При рестарте
// пользователь просто начинает анкету заново.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*usecase.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*usecase.Session)}
}

func (s *SessionStore) Get(chatID int64) *usecase.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[chatID]; ok {
		return sess
	}
	sess := &usecase.Session{Step: usecase.StepIdle}
	s.sessions[chatID] = sess
	return sess
}

func (s *SessionStore) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}
