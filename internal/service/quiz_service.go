package service

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"github.com/qbank-local/backend/internal/domain/category"
	practicesession "github.com/qbank-local/backend/internal/domain/practice_session"
	"github.com/qbank-local/backend/internal/domain/questionbank"
	"github.com/qbank-local/backend/internal/store"
)

// ErrNoBank is returned by session operations before any bank is loaded.
var ErrNoBank = errors.New("no question bank loaded")

// QuizService owns the single active session of this process. Every public
// method is one user action: it runs to completion under the service lock,
// then performs the side effects the session declared.
type QuizService struct {
	store    store.ProgressStore
	loader   *BankLoader
	source   Source
	defaults practicesession.SessionConfig
	logger   *slog.Logger
	opts     []practicesession.Option

	mu       sync.Mutex
	bank     *questionbank.QuestionBank
	session  *practicesession.Session
	lastLoad *LoadReport
	saveErr  error
}

// NewQuizService creates a QuizService. defaults configures a session when no
// progress was saved; opts are applied to every session it builds.
func NewQuizService(s store.ProgressStore, loader *BankLoader, source Source, defaults practicesession.SessionConfig, logger *slog.Logger, opts ...practicesession.Option) *QuizService {
	return &QuizService{
		store:    s,
		loader:   loader,
		source:   source,
		defaults: defaults,
		logger:   logger,
		opts:     opts,
	}
}

// Start performs the initial load: it reads the configured sources, then
// resumes saved progress against them. Unreadable progress is discarded.
func (qs *QuizService) Start(ctx context.Context) (*LoadReport, error) {
	report, err := qs.loader.Load(ctx, qs.source)
	if err != nil {
		return report, err
	}

	qs.mu.Lock()
	defer qs.mu.Unlock()

	qs.bank = report.Bank
	qs.lastLoad = report

	snap := qs.loadProgress(ctx)
	config := qs.defaults
	if snap != nil {
		config = snap.Config()
	}
	qs.session = practicesession.New(questionbank.Apply(qs.bank, config.Filter), config, qs.opts...)
	restored := qs.session.Restore(snap)
	if snap != nil {
		qs.logger.Info("progress resumed",
			"answers", restored.Answers,
			"dropped", restored.Dropped,
			"order_restored", restored.OrderRestored,
		)
	}
	return report, nil
}

// Reload re-reads the configured sources and rebuilds the session over them.
func (qs *QuizService) Reload(ctx context.Context) (*LoadReport, error) {
	report, err := qs.loader.Load(ctx, qs.source)
	if err != nil {
		return report, err
	}

	qs.mu.Lock()
	defer qs.mu.Unlock()
	qs.lastLoad = report
	qs.replaceBank(ctx, report.Bank)
	return report, nil
}

// Upload loads a single source and replaces the bank with it. A source with
// missing columns leaves the current bank in place.
func (qs *QuizService) Upload(ctx context.Context, name string, r io.Reader) (*LoadReport, error) {
	bank, err := qs.loader.LoadReader(name, r)
	if err != nil {
		return nil, err
	}

	qs.mu.Lock()
	defer qs.mu.Unlock()
	report := &LoadReport{Bank: bank}
	qs.lastLoad = report
	qs.replaceBank(ctx, bank)
	return report, nil
}

func (qs *QuizService) replaceBank(ctx context.Context, bank *questionbank.QuestionBank) {
	qs.bank = bank
	config := qs.defaults
	if qs.session != nil {
		config = qs.session.Config
	}
	view := questionbank.Apply(bank, config.Filter)
	if qs.session == nil {
		qs.session = practicesession.New(view, config, qs.opts...)
	} else {
		qs.session.Reconfigure(config, view)
	}
	qs.persist(ctx)
}

// ApplyFilters rebuilds the session with a new filter and shuffle choice.
func (qs *QuizService) ApplyFilters(ctx context.Context, config practicesession.SessionConfig) (State, error) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	if qs.session == nil {
		return State{}, ErrNoBank
	}
	qs.session.Reconfigure(config, questionbank.Apply(qs.bank, config.Filter))
	qs.persist(ctx)
	return qs.state(), nil
}

// Dispatch applies one session event and performs its declared effect.
// The returned state reflects the session after the event, even on error.
func (qs *QuizService) Dispatch(ctx context.Context, ev practicesession.Event) (State, error) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	if qs.session == nil {
		return State{}, ErrNoBank
	}
	effect, err := qs.session.Dispatch(ev)
	if effect == practicesession.EffectPersist {
		qs.persist(ctx)
	}
	return qs.state(), err
}

// State returns the current session view model.
func (qs *QuizService) State() State {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	return qs.state()
}

// Bank returns the loaded bank and the report of the load that produced it.
func (qs *QuizService) Bank() (*questionbank.QuestionBank, *LoadReport, error) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	if qs.bank == nil {
		return nil, nil, ErrNoBank
	}
	return qs.bank, qs.lastLoad, nil
}

// Stats folds the recorded answers into per-category stats.
func (qs *QuizService) Stats() (map[string]category.Stats, error) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	if qs.session == nil {
		return nil, ErrNoBank
	}
	return category.Summarize(qs.session.Answers, qs.session.View), nil
}

// Results returns the results export rows and whether a SourceFile column applies.
func (qs *QuizService) Results() ([]practicesession.ResultRow, bool, error) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	if qs.session == nil {
		return nil, false, ErrNoBank
	}
	return qs.session.Results(), qs.session.HasSourceTags(), nil
}

func (qs *QuizService) persist(ctx context.Context) {
	qs.saveErr = qs.store.Save(ctx, qs.session.Snapshot())
	if qs.saveErr != nil {
		qs.logger.Warn("could not save progress", "error", qs.saveErr)
	}
}

func (qs *QuizService) loadProgress(ctx context.Context) *practicesession.Snapshot {
	snap, err := qs.store.Load(ctx)
	var corrupt *store.CorruptError
	switch {
	case err == nil:
		return snap
	case errors.Is(err, store.ErrNotFound):
		qs.logger.Debug("no saved progress")
	case errors.As(err, &corrupt):
		qs.logger.Warn("discarding unreadable progress", "error", err)
	default:
		qs.logger.Warn("could not load progress", "error", err)
	}
	return nil
}

// Source returns where the service loads questions from.
func (qs *QuizService) Source() Source {
	return qs.source
}
