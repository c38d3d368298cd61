package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/cs-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/cs-quiz-bot/internal/storage"
)

// BotAPI is the part of *tgbotapi.BotAPI the handler uses.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type QuizService interface {
	TopicAt(i int) (string, bool)
	Start(ctx context.Context, chatID int64) (*entities.View, error)
	Dispatch(ctx context.Context, chatID int64, action entities.Action) (*entities.View, bool, error)
	Restart(ctx context.Context, chatID int64) (*entities.View, bool, error)
	Stop(ctx context.Context, chatID int64) error
}

// MessageStorage tracks the live quiz message of every chat.
type MessageStorage interface {
	UpsertAndGetPrev(chatID int64, messageID int) (prev storage.QuizMessage, hadPrev bool)
	Get(chatID int64) (storage.QuizMessage, bool)
	Delete(chatID int64)
}
