package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/cs-quiz-bot/internal/domain/entities"
)

// callbackResult is what a callback press does to the quiz message.
type callbackResult struct {
	view   *entities.View
	screen screen
	redraw bool
	notice string // shown to the user as a toast
}

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	var notice string

	// Remove the user's "clock".
	defer func() {
		h.request(tgbotapi.NewCallback(cb.ID, notice))
	}()

	if cb.Message == nil {
		return
	}

	qc, err := parseQuizCallback(decodeCallback(cb.Data))
	if err != nil {
		h.logger.Debug("ignoring callback",
			zap.String("data", cb.Data),
			zap.Error(err),
		)
		return
	}

	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID

	if live, ok := h.messages.Get(chatID); ok && live.MessageID != messageID {
		notice = msgStaleMessage
		return
	}

	res, err := h.applyCallback(ctx, chatID, qc)
	if err != nil {
		h.logger.Error("handle callback",
			zap.Int64("chat_id", chatID),
			zap.String("data", cb.Data),
			zap.Error(err),
		)
		h.sendError(chatID, msgInternalError)
		return
	}
	notice = res.notice

	if !res.redraw {
		return
	}

	// A message the bot forgot about (e.g. after a restart) becomes the live one.
	h.messages.UpsertAndGetPrev(chatID, messageID)

	text, kb := renderScreen(res.view, res.screen)
	h.send(newEdit(chatID, messageID, text, kb))
}

func (h *Handler) applyCallback(ctx context.Context, chatID int64, qc quizCallback) (callbackResult, error) {
	switch qc.Sub {
	case quizTopics, quizBack:
		v, err := h.quiz.Start(ctx, chatID)
		if err != nil {
			return callbackResult{}, err
		}

		s := screenQuiz
		if qc.Sub == quizTopics {
			s = screenTopics
		}
		return callbackResult{view: v, screen: s, redraw: true}, nil

	case quizTopic:
		name, ok := h.quiz.TopicAt(qc.Topic)
		if !ok {
			return callbackResult{notice: msgTopicNotFound}, nil
		}

		v, _, err := h.quiz.Dispatch(ctx, chatID, entities.Action{
			Kind:  entities.ActionChangeTopic,
			Topic: name,
		})
		if err != nil {
			return callbackResult{}, err
		}

		// The selector is on screen, so the question has to be drawn even when nothing changed.
		return callbackResult{view: v, screen: screenQuiz, redraw: true}, nil

	case quizRestart:
		v, changed, err := h.quiz.Restart(ctx, chatID)
		if err != nil {
			return callbackResult{}, err
		}
		return callbackResult{view: v, screen: screenQuiz, redraw: changed}, nil

	case quizOption, quizSubmit, quizNext:
		return h.applyQuestionCallback(ctx, chatID, qc)

	default:
		return callbackResult{}, fmt.Errorf("%w: unknown quiz action %q", errMalformedCallback, qc.Sub)
	}
}

// applyQuestionCallback handles presses pinned to a particular question.
// Presses from an outdated rendering are dropped by the position guard.
func (h *Handler) applyQuestionCallback(ctx context.Context, chatID int64, qc quizCallback) (callbackResult, error) {
	name, ok := h.quiz.TopicAt(qc.Topic)
	if !ok {
		return callbackResult{}, nil
	}

	action := entities.Action{
		At: &entities.Position{Topic: name, Question: qc.Question},
	}

	switch qc.Sub {
	case quizOption:
		action.Kind = entities.ActionSelectOption
		action.Option = qc.Option
	case quizSubmit:
		action.Kind = entities.ActionSubmit
	case quizNext:
		action.Kind = entities.ActionAdvance
	}

	v, changed, err := h.quiz.Dispatch(ctx, chatID, action)
	if err != nil {
		return callbackResult{}, err
	}

	return callbackResult{view: v, screen: screenQuiz, redraw: changed}, nil
}
