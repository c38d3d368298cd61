package storage

import (
	"sync"
	"time"
)

// QuizMessage identifies the Telegram message a chat's quiz is drawn in.
type QuizMessage struct {
	ChatID    int64
	MessageID int
	SentAt    time.Time
}

// MessageStorage remembers the live quiz message of every chat.
type MessageStorage struct {
	mu       sync.RWMutex
	messages map[int64]QuizMessage
}

func NewMessageStorage() *MessageStorage {
	return &MessageStorage{
		messages: make(map[int64]QuizMessage),
	}
}

func (s *MessageStorage) Get(chatID int64) (QuizMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msg, ok := s.messages[chatID]
	return msg, ok
}

func (s *MessageStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.messages, chatID)
}

// UpsertAndGetPrev records a new quiz message and returns the one it replaces.
func (s *MessageStorage) UpsertAndGetPrev(chatID int64, messageID int) (prev QuizMessage, hadPrev bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, hadPrev = s.messages[chatID]

	s.messages[chatID] = QuizMessage{
		ChatID:    chatID,
		MessageID: messageID,
		SentAt:    time.Now(),
	}

	return prev, hadPrev
}
