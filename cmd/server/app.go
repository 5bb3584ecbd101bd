package main

import (
	"context"
	"log/slog"

	practicesession "github.com/qbank-local/backend/internal/domain/practice_session"
	"github.com/qbank-local/backend/internal/infrastructure/config"
	"github.com/qbank-local/backend/internal/service"
	"github.com/qbank-local/backend/internal/store"
)

// app is the wired quiz core shared by every command.
type app struct {
	quiz  *service.QuizService
	close func() error
}

func (a *app) Close() error {
	if a.close == nil {
		return nil
	}
	return a.close()
}

// newApp opens the progress store, builds the quiz service and performs the
// initial load.
func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	a := &app{}

	var progress store.ProgressStore
	switch cfg.ProgressBackend {
	case config.BackendSQLite:
		db, err := store.NewSQLite(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		a.close = db.Close
		progress = db.ForSession(cfg.SessionID)
		logger.Info("progress store opened", "backend", cfg.ProgressBackend, "path", cfg.DBPath, "session_id", cfg.SessionID)
	default:
		file := store.NewJSONFile(cfg.ProgressPath)
		progress = file
		logger.Info("progress store opened", "backend", cfg.ProgressBackend, "path", file.Path())
	}

	defaults := practicesession.DefaultConfig()
	defaults.Shuffle = cfg.Shuffle
	a.quiz = service.NewQuizService(
		progress,
		service.NewBankLoader(cfg.LoadWorkers, logger),
		service.Source{Files: cfg.Sources, Dir: cfg.QuestionsDir},
		defaults,
		logger,
	)

	report, err := a.quiz.Start(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	logger.Info("question bank ready",
		"questions", report.Bank.Len(),
		"sources", len(report.Bank.Sources),
		"failed_sources", len(report.Failures),
	)
	return a, nil
}
