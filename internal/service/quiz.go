package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/cs-quiz-bot/internal/domain/entities"
)

// QuizService drives the quiz presenter of every chat.
type QuizService struct {
	catalog *entities.Catalog
	store   SessionStore
}

func NewQuizService(catalog *entities.Catalog, store SessionStore) *QuizService {
	return &QuizService{
		catalog: catalog,
		store:   store,
	}
}

// Topics returns topic names in display order.
func (s *QuizService) Topics() []string {
	return s.catalog.Topics()
}

// TopicAt returns the name of the topic at display position i.
func (s *QuizService) TopicAt(i int) (string, bool) {
	t, ok := s.catalog.TopicAt(i)
	return t.Name, ok
}

// Start returns the chat's presenter, creating it with defaults on first use.
func (s *QuizService) Start(ctx context.Context, chatID int64) (*entities.View, error) {
	session, err := s.store.Update(ctx, chatID, func(cur *entities.Session) error {
		s.mount(cur)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("start quiz: %w", err)
	}

	view := entities.NewView(s.catalog, *session)
	return &view, nil
}

// View returns the current presenter of a chat without creating one.
func (s *QuizService) View(ctx context.Context, chatID int64) (*entities.View, error) {
	session, err := s.store.Get(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !session.Valid(s.catalog) {
		return s.Start(ctx, chatID)
	}

	view := entities.NewView(s.catalog, *session)
	return &view, nil
}

// Dispatch applies a user action to the chat's session.
// The boolean result reports whether the presenter has to be redrawn.
func (s *QuizService) Dispatch(ctx context.Context, chatID int64, action entities.Action) (*entities.View, bool, error) {
	var changed bool

	session, err := s.store.Update(ctx, chatID, func(cur *entities.Session) error {
		mounted := s.mount(cur)

		next, ok := entities.Reduce(s.catalog, *cur, action)
		*cur = next
		changed = ok || mounted
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", action.Kind, err)
	}

	view := entities.NewView(s.catalog, *session)
	return &view, changed, nil
}

// ChangeTopic switches the chat to another topic.
func (s *QuizService) ChangeTopic(ctx context.Context, chatID int64, topic string) (*entities.View, bool, error) {
	return s.Dispatch(ctx, chatID, entities.Action{Kind: entities.ActionChangeTopic, Topic: topic})
}

// SelectOption selects an option of the current question.
func (s *QuizService) SelectOption(ctx context.Context, chatID int64, option int) (*entities.View, bool, error) {
	return s.Dispatch(ctx, chatID, entities.Action{Kind: entities.ActionSelectOption, Option: option})
}

// Submit submits the selected option.
func (s *QuizService) Submit(ctx context.Context, chatID int64) (*entities.View, bool, error) {
	return s.Dispatch(ctx, chatID, entities.Action{Kind: entities.ActionSubmit})
}

// Advance moves to the next question or to the results screen.
func (s *QuizService) Advance(ctx context.Context, chatID int64) (*entities.View, bool, error) {
	return s.Dispatch(ctx, chatID, entities.Action{Kind: entities.ActionAdvance})
}

// Restart starts the current topic over.
func (s *QuizService) Restart(ctx context.Context, chatID int64) (*entities.View, bool, error) {
	return s.Dispatch(ctx, chatID, entities.Action{Kind: entities.ActionRestart})
}

// Stop discards the chat's presenter.
func (s *QuizService) Stop(ctx context.Context, chatID int64) error {
	if err := s.store.Delete(ctx, chatID); err != nil && !errors.Is(err, entities.ErrSessionNotFound) {
		return fmt.Errorf("stop quiz: %w", err)
	}
	return nil
}

// mount replaces a missing or outdated session with a fresh one.
func (s *QuizService) mount(cur *entities.Session) bool {
	if cur.Valid(s.catalog) {
		return false
	}
	*cur = entities.NewSession(s.catalog)
	return true
}
