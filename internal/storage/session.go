package storage

import (
	"context"
	"sync"

	"github.com/aliskhannn/cs-quiz-bot/internal/domain/entities"
)

// SessionStorage provides in-memory storage for quiz sessions by chat ID.
type SessionStorage struct {
	mu       sync.Mutex
	sessions map[int64]entities.Session
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]entities.Session),
	}
}

// Get retrieves the session of a chat.
func (s *SessionStorage) Get(_ context.Context, chatID int64) (*entities.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[chatID]
	if !ok {
		return nil, entities.ErrSessionNotFound
	}
	return &session, nil
}

// Update runs fn on the chat's session and stores the result.
// A chat without a session starts from the zero value. Nothing is stored if fn fails.
func (s *SessionStorage) Update(_ context.Context, chatID int64, fn func(*entities.Session) error) (*entities.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.sessions[chatID]
	if err := fn(&session); err != nil {
		return nil, err
	}
	s.sessions[chatID] = session

	return &session, nil
}

// Delete removes the session of a chat.
func (s *SessionStorage) Delete(_ context.Context, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
	return nil
}
