package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/aliskhannn/cs-quiz-bot/internal/config"
	"github.com/aliskhannn/cs-quiz-bot/internal/logger"
	"github.com/aliskhannn/cs-quiz-bot/internal/repository"
	"github.com/aliskhannn/cs-quiz-bot/internal/ui/terminal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zapLogger, err := logger.NewFile(cfg, cfg.TUI.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zapLogger.Sync() }()

	catalog, err := repository.LoadCatalog()
	if err != nil {
		zapLogger.Error("failed to load question bank", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	model := terminal.NewModel(catalog, terminal.Options{
		NoColor: cfg.TUI.NoColor,
		Logger:  zapLogger,
	})

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		zapLogger.Error("terminal quiz failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
