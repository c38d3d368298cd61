package telegram

import (
	"context"
	"fmt"

	"github.com/aliskhannn/cs-quiz-bot/internal/domain/entities"
)

func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.send(newMessage(chatID, msgWelcome))
		return h.handleQuiz()(ctx, chatID)
	}
}

// handleQuiz mounts the chat's presenter and draws it in a fresh message.
func (h *Handler) handleQuiz() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		v, err := h.quiz.Start(ctx, chatID)
		if err != nil {
			return err
		}

		return h.sendQuiz(chatID, v, screenQuiz)
	}
}

func (h *Handler) handleTopics() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		v, err := h.quiz.Start(ctx, chatID)
		if err != nil {
			return err
		}

		return h.sendQuiz(chatID, v, screenTopics)
	}
}

func (h *Handler) handleRestart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		v, _, err := h.quiz.Restart(ctx, chatID)
		if err != nil {
			return err
		}

		return h.sendQuiz(chatID, v, screenQuiz)
	}
}

// handleStop unmounts the presenter and disables the last quiz message.
func (h *Handler) handleStop() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := h.quiz.Stop(ctx, chatID); err != nil {
			return err
		}

		if prev, ok := h.messages.Get(chatID); ok {
			h.request(clearKeyboard(chatID, prev.MessageID))
		}
		h.messages.Delete(chatID)

		h.send(newMessage(chatID, msgStopped))
		return nil
	}
}

// sendQuiz posts a new quiz message and strips the keyboard of the previous one,
// so that only one message per chat stays interactive.
func (h *Handler) sendQuiz(chatID int64, v *entities.View, s screen) error {
	text, kb := renderScreen(v, s)

	msg := newMessage(chatID, text)
	msg.ReplyMarkup = kb

	sent, err := h.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("send quiz message: %w", err)
	}

	prev, hadPrev := h.messages.UpsertAndGetPrev(chatID, sent.MessageID)
	if hadPrev && prev.MessageID != sent.MessageID {
		h.request(clearKeyboard(chatID, prev.MessageID))
	}

	return nil
}
