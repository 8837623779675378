package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/obedvega/hito/internal/config"
	"github.com/obedvega/hito/internal/database"
	"github.com/obedvega/hito/internal/events"
	"github.com/obedvega/hito/internal/logging"
	"github.com/obedvega/hito/internal/services/milestone"
	"github.com/obedvega/hito/internal/services/person"
	"github.com/obedvega/hito/internal/services/task"
	"github.com/obedvega/hito/internal/tui"
)

func main() {
	logger, err := logging.Init()
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("loading config, falling back to defaults", "error", err)
		cfg = config.Default()
	}

	dbPath := cfg.DatabasePath
	if dbPath == "" {
		dbPath, err = database.DefaultPath()
		if err != nil {
			log.Fatalf("Failed to resolve database path: %v", err)
		}
	}

	db, err := database.InitDB(context.Background(), dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	repo := database.NewRepository(db)
	reporter := events.NewLogReporter(logger)

	svc := tui.Services{
		Tasks:      task.NewService(repo, reporter),
		Milestones: milestone.NewService(repo, reporter),
		People:     person.NewService(repo, reporter),
	}

	model := tui.InitialModel(svc, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		slog.Error("program exited", "error", err)
		log.Fatal(err)
	}
}
