package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/cs-quiz-bot/internal/config"
	"github.com/aliskhannn/cs-quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/cs-quiz-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/cs-quiz-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/cs-quiz-bot/internal/infra/redis"
	"github.com/aliskhannn/cs-quiz-bot/internal/logger"
	"github.com/aliskhannn/cs-quiz-bot/internal/repository"
	"github.com/aliskhannn/cs-quiz-bot/internal/service"
	"github.com/aliskhannn/cs-quiz-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.RequireTelegram(); err != nil {
		log.Fatal(err)
	}

	zapLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zapLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := repository.LoadCatalog()
	if err != nil {
		zapLogger.Fatal("failed to load question bank", zap.Error(err))
	}

	store, closeStore, err := openSessionStore(ctx, cfg)
	if err != nil {
		zapLogger.Fatal("failed to open session store",
			zap.String("backend", cfg.Session.Backend),
			zap.Error(err),
		)
	}
	defer closeStore()

	zapLogger.Info("session store ready",
		zap.String("backend", cfg.Session.Backend),
		zap.Int("topics", catalog.Len()),
	)

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zapLogger.Fatal("failed to create bot", zap.Error(err))
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Запустить бота",
		},
		{
			Command:     "quiz",
			Description: "Открыть тест",
		},
		{
			Command:     "topics",
			Description: "Выбрать тему",
		},
		{
			Command:     "restart",
			Description: "Пройти тему заново",
		},
		{
			Command:     "stop",
			Description: "Остановить тест",
		},
		{
			Command:     "help",
			Description: "Помощь",
		},
	}

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zapLogger.Warn("failed to set bot commands", zap.Error(err))
	}

	bot.Debug = cfg.Env != "production"
	zapLogger.Info("authorized on account", zap.String("username", bot.Self.UserName))

	quizService := service.NewQuizService(catalog, store)
	messageStorage := storage.NewMessageStorage()

	handler := telegram.NewHandler(
		bot,
		zapLogger,
		quizService,
		messageStorage,
	)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zapLogger.Error("telegram handler stopped", zap.Error(err))
	}

	bot.StopReceivingUpdates()
	zapLogger.Info("shutdown signal received")
}

// openSessionStore builds the configured session store and its cleanup.
func openSessionStore(ctx context.Context, cfg *config.Config) (service.SessionStore, func(), error) {
	switch cfg.Session.Backend {
	case config.BackendPostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, nil, err
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, err
		}

		repo := pgrepo.NewSessionRepository(pool, postgres.NewTransactor(pool))
		return repo, pool.Close, nil

	case config.BackendRedis:
		client, err := redis.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, nil, err
		}

		repo := redis.NewSessionRepository(client, cfg.Session.TTL)
		return repo, func() { _ = client.Close() }, nil

	default:
		return storage.NewSessionStorage(), func() {}, nil
	}
}
