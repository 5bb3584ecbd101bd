package service_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbank-local/backend/internal/domain/questionbank"
	"github.com/qbank-local/backend/internal/service"
)

const header = "Question,A,B,C,D,E,Correct,Explanation,Reference,Category,Difficulty\n"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBankLoader_MissingDirFallsBackToSample(t *testing.T) {
	loader := service.NewBankLoader(2, discardLogger())

	report, err := loader.Load(context.Background(), service.Source{Dir: filepath.Join(t.TempDir(), "nope")})

	require.NoError(t, err)
	assert.Equal(t, 8, report.Bank.Len())
	assert.Empty(t, report.Failures)
	assert.Empty(t, report.Bank.Questions[0].SourceTag)
}

func TestBankLoader_FolderCombinesAndTags(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.csv", header+"Q2,a,b,c,d,e,B,,,Net,Easy\nQ3,a,b,c,d,e,C,,,Net,Hard\n")
	writeFile(t, dir, "a.csv", header+"Q1,a,b,c,d,e,A,,,Math,Easy\n")
	writeFile(t, dir, "notes.txt", "ignored")

	report, err := service.NewBankLoader(4, discardLogger()).Load(context.Background(), service.Source{Dir: dir})

	require.NoError(t, err)
	require.Equal(t, 3, report.Bank.Len())
	assert.Equal(t, []string{"a.csv", "b.csv"}, report.Bank.Sources)
	assert.Equal(t, "Q1", report.Bank.Questions[0].Text)
	assert.Equal(t, "a.csv", report.Bank.Questions[0].SourceTag)
	assert.Equal(t, "b.csv", report.Bank.Questions[2].SourceTag)
}

func TestBankLoader_BadSourceIsSkipped(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.csv", header+"Q1,a,b,c,d,e,A,,,Math,Easy\n")
	bad := writeFile(t, dir, "bad.csv", "Question,A,B\nQ,a,b\n")

	report, err := service.NewBankLoader(2, discardLogger()).LoadFiles(context.Background(), []string{bad, good})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Bank.Len())
	require.Len(t, report.Failures, 1)
	var verr *questionbank.ValidationError
	assert.True(t, errors.As(report.Failures[0], &verr))
}

func TestBankLoader_AllSourcesFail(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.csv", "Question\nQ\n")
	missing := filepath.Join(dir, "missing.csv")

	report, err := service.NewBankLoader(2, discardLogger()).LoadFiles(context.Background(), []string{bad, missing})

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrNoSources))
	assert.Len(t, report.Failures, 2)
}

func TestBankLoader_LoadReaderRejectsMissingColumns(t *testing.T) {
	_, err := service.NewBankLoader(1, discardLogger()).LoadReader("upload.csv", strings.NewReader("Question,A\nQ,a\n"))

	var verr *questionbank.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Missing, "Correct")
}
