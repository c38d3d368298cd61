package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/aliskhannn/cs-quiz-bot/internal/domain/entities"
)

const (
	sessionKeyPrefix = "quiz:session:"
	maxTxRetries     = 3
)

var ErrTooManyRetries = errors.New("quiz session kept changing concurrently")

// SessionRepository keeps the live quiz session of every chat as a JSON value.
type SessionRepository struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewSessionRepository creates a new SessionRepository.
// A zero ttl keeps sessions until they are deleted.
func NewSessionRepository(client *goredis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{client: client, ttl: ttl}
}

func sessionKey(chatID int64) string {
	return sessionKeyPrefix + strconv.FormatInt(chatID, 10)
}

// Get retrieves the session of a chat.
func (r *SessionRepository) Get(ctx context.Context, chatID int64) (*entities.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(chatID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, entities.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get quiz session: %w", err)
	}

	var s entities.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode quiz session: %w", err)
	}
	return &s, nil
}

// Update runs fn on the chat's session inside an optimistic WATCH transaction.
// A chat without a session starts from the zero value.
func (r *SessionRepository) Update(
	ctx context.Context, chatID int64, fn func(*entities.Session) error,
) (*entities.Session, error) {
	key := sessionKey(chatID)

	var result entities.Session
	txf := func(tx *goredis.Tx) error {
		var s entities.Session

		data, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, goredis.Nil):
		case err != nil:
			return fmt.Errorf("get quiz session: %w", err)
		default:
			if err := json.Unmarshal(data, &s); err != nil {
				return fmt.Errorf("decode quiz session: %w", err)
			}
		}

		if err := fn(&s); err != nil {
			return err
		}

		payload, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("encode quiz session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, payload, r.ttl)
			return nil
		})
		if err != nil {
			return err
		}

		result = s
		return nil
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return &result, nil
		}
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, ErrTooManyRetries
}

// Delete removes the session of a chat.
func (r *SessionRepository) Delete(ctx context.Context, chatID int64) error {
	if err := r.client.Del(ctx, sessionKey(chatID)).Err(); err != nil {
		return fmt.Errorf("delete quiz session: %w", err)
	}
	return nil
}
