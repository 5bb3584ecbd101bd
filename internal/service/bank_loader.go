package service

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/qbank-local/backend/internal/domain/folder"
	"github.com/qbank-local/backend/internal/domain/questionbank"
	"github.com/qbank-local/backend/internal/infrastructure/tabular"
	"github.com/qbank-local/backend/internal/sample"
	"github.com/qbank-local/backend/internal/worker"
)

// ErrNoSources is returned when a multi-source load has nothing usable.
var ErrNoSources = errors.New("no question sources could be loaded")

// SourcesError reports that every source of a multi-source load failed.
// It matches ErrNoSources and unwraps to each failure.
type SourcesError struct {
	Failures []error
}

func (e *SourcesError) Error() string {
	msg := ErrNoSources.Error()
	for _, f := range e.Failures {
		msg += "; " + f.Error()
	}
	return msg
}

func (e *SourcesError) Is(target error) bool {
	return target == ErrNoSources
}

func (e *SourcesError) Unwrap() []error {
	return e.Failures
}

// Source says where questions come from. Files wins over Dir; with neither,
// the embedded sample bank is used.
type Source struct {
	Files []string
	Dir   string
}

// LoadReport is the outcome of one Load/Reload. Failures lists sources that
// were rejected while the rest were combined.
type LoadReport struct {
	Bank     *questionbank.QuestionBank
	Failures []error
}

// BankLoader reads and validates question sources.
type BankLoader struct {
	workers int
	logger  *slog.Logger
}

func NewBankLoader(workers int, logger *slog.Logger) *BankLoader {
	return &BankLoader{workers: max(workers, 1), logger: logger}
}

// Load resolves src and loads it.
func (l *BankLoader) Load(ctx context.Context, src Source) (*LoadReport, error) {
	switch {
	case len(src.Files) > 0:
		return l.LoadFiles(ctx, src.Files)
	case src.Dir != "":
		if info, err := os.Stat(src.Dir); err == nil && info.IsDir() {
			return l.LoadFolder(ctx, src.Dir)
		}
		l.logger.Info("questions folder not found, using sample bank", "dir", src.Dir)
	}
	bank, err := l.LoadSample()
	if err != nil {
		return nil, err
	}
	return &LoadReport{Bank: bank}, nil
}

// LoadReader loads a single uploaded source. A validation failure rejects it.
func (l *BankLoader) LoadReader(name string, r io.Reader) (*questionbank.QuestionBank, error) {
	table, err := tabular.Read(name, r)
	if err != nil {
		return nil, err
	}
	return l.parse(table)
}

// LoadSample loads the embedded sample bank.
func (l *BankLoader) LoadSample() (*questionbank.QuestionBank, error) {
	return l.LoadReader(sample.Name, sample.Open())
}

// LoadFolder loads every supported file of dir.
func (l *BankLoader) LoadFolder(ctx context.Context, dir string) (*LoadReport, error) {
	f, err := folder.Scan(os.DirFS(dir), dir)
	if err != nil {
		return nil, errors.Wrapf(err, "scan %s", dir)
	}
	if len(f.Sources) == 0 {
		return nil, errors.Wrapf(ErrNoSources, "%s has no .csv or Excel files", dir)
	}
	return l.LoadFiles(ctx, f.Paths())
}

// LoadFiles reads every path in parallel. Each source succeeds or fails on
// its own; the successful ones are combined in input order and tagged with
// their file name.
func (l *BankLoader) LoadFiles(ctx context.Context, paths []string) (*LoadReport, error) {
	if len(paths) == 0 {
		return nil, ErrNoSources
	}

	type outcome struct {
		bank *questionbank.QuestionBank
		err  error
	}
	jobs := make([]worker.Job[outcome], len(paths))
	for i, p := range paths {
		jobs[i] = func() outcome {
			if err := ctx.Err(); err != nil {
				return outcome{err: err}
			}
			table, err := tabular.ReadFile(p)
			if err != nil {
				return outcome{err: errors.Wrap(err, filepath.Base(p))}
			}
			bank, err := l.parse(table)
			if err != nil {
				return outcome{err: err}
			}
			bank.Tag(table.Name)
			return outcome{bank: bank}
		}
	}

	report := &LoadReport{}
	var banks []*questionbank.QuestionBank
	for i, o := range worker.Collect(l.workers, jobs) {
		if o.err != nil {
			l.logger.Warn("question source rejected", "source", paths[i], "error", o.err)
			report.Failures = append(report.Failures, o.err)
			continue
		}
		banks = append(banks, o.bank)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(banks) == 0 {
		return report, &SourcesError{Failures: report.Failures}
	}

	report.Bank = questionbank.Combine(banks...)
	return report, nil
}

func (l *BankLoader) parse(table *tabular.Table) (*questionbank.QuestionBank, error) {
	questions, err := questionbank.Parse(table.Name, table.Header, table.Rows)
	if err != nil {
		return nil, err
	}
	bank := questionbank.New(questions, table.Name)
	if bad := bank.Malformed(); len(bad) > 0 {
		l.logger.Warn("questions with an answer key that names no choice",
			"source", table.Name,
			"count", len(bad),
			"first", bad[0].Error(),
		)
	}
	l.logger.Info("question source loaded", "source", table.Name, "questions", bank.Len())
	return bank, nil
}
