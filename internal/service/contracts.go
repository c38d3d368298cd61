package service

import (
	"context"

	"github.com/aliskhannn/cs-quiz-bot/internal/domain/entities"
)

// SessionStore keeps the live quiz session of every chat.
// Update must apply fn atomically; a chat without a session is handed the zero Session.
type SessionStore interface {
	Get(ctx context.Context, chatID int64) (*entities.Session, error)
	Update(ctx context.Context, chatID int64, fn func(*entities.Session) error) (*entities.Session, error)
	Delete(ctx context.Context, chatID int64) error
}
