package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/cs-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/cs-quiz-bot/internal/infra/postgres"
)

// Transactor runs a function inside a database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// SessionRepository keeps the live quiz session of every chat in the database.
type SessionRepository struct {
	db         postgres.DBTX
	transactor Transactor
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(db postgres.DBTX, transactor Transactor) *SessionRepository {
	return &SessionRepository{db: db, transactor: transactor}
}

const selectSessionQuery = `
	SELECT topic, question_index, selected_option, submitted, score, show_results
	FROM quiz_sessions
	WHERE chat_id = $1
`

// Get retrieves the session of a chat.
func (r *SessionRepository) Get(ctx context.Context, chatID int64) (*entities.Session, error) {
	session, err := scanSession(r.db.QueryRow(ctx, selectSessionQuery, chatID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get quiz session: %w", err)
	}

	return session, nil
}

// Update locks the chat's row, runs fn on the session and writes it back.
// A chat without a row starts from the zero session.
func (r *SessionRepository) Update(
	ctx context.Context, chatID int64, fn func(*entities.Session) error,
) (*entities.Session, error) {
	var result *entities.Session

	err := r.transactor.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		session, err := r.getForUpdateWithTx(ctx, tx, chatID)
		if err != nil {
			return err
		}

		if err := fn(session); err != nil {
			return err
		}

		if err := r.upsertWithTx(ctx, tx, chatID, session); err != nil {
			return err
		}

		result = session
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Delete removes the session of a chat.
func (r *SessionRepository) Delete(ctx context.Context, chatID int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM quiz_sessions WHERE chat_id = $1`, chatID); err != nil {
		return fmt.Errorf("delete quiz session: %w", err)
	}
	return nil
}

// getForUpdateWithTx retrieves a session with row-level lock for update.
func (r *SessionRepository) getForUpdateWithTx(ctx context.Context, tx pgx.Tx, chatID int64) (*entities.Session, error) {
	session, err := scanSession(tx.QueryRow(ctx, selectSessionQuery+" FOR UPDATE", chatID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entities.Session{}, nil
		}
		return nil, fmt.Errorf("get session for update: %w", err)
	}

	return session, nil
}

func (r *SessionRepository) upsertWithTx(ctx context.Context, tx pgx.Tx, chatID int64, s *entities.Session) error {
	query := `
		INSERT INTO quiz_sessions (
			chat_id, topic, question_index, selected_option,
			submitted, score, show_results, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (chat_id) DO UPDATE SET
			topic = EXCLUDED.topic,
			question_index = EXCLUDED.question_index,
			selected_option = EXCLUDED.selected_option,
			submitted = EXCLUDED.submitted,
			score = EXCLUDED.score,
			show_results = EXCLUDED.show_results,
			updated_at = NOW()
	`

	_, err := tx.Exec(
		ctx,
		query,
		chatID,
		s.Topic,
		s.QuestionIndex,
		s.SelectedOption,
		s.Submitted,
		s.Score,
		s.ShowResults,
	)
	if err != nil {
		return fmt.Errorf("upsert quiz session: %w", err)
	}

	return nil
}

func scanSession(row pgx.Row) (*entities.Session, error) {
	var s entities.Session
	err := row.Scan(
		&s.Topic,
		&s.QuestionIndex,
		&s.SelectedOption,
		&s.Submitted,
		&s.Score,
		&s.ShowResults,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
