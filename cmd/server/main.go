package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/qbank-local/backend/internal/api"
	"github.com/qbank-local/backend/internal/domain/category"
	practicesession "github.com/qbank-local/backend/internal/domain/practice_session"
	"github.com/qbank-local/backend/internal/infrastructure/config"
	"github.com/qbank-local/backend/internal/infrastructure/tabular"
	"github.com/qbank-local/backend/internal/store"
	"github.com/qbank-local/backend/internal/tui"

	_ "github.com/qbank-local/backend/docs" // generated swagger docs
)

// @title           Quizbank API
// @version         1.0
// @description     Local multiple-choice practice: load question files, filter, answer, review and export results.

// @host      localhost:8080
// @BasePath  /

// playLogFile receives logs while the terminal player owns the screen.
const playLogFile = "quizbank.log"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var v *viper.Viper

	root := &cobra.Command{
		Use:          "quizbank",
		Short:        "Practice multiple-choice questions from CSV and Excel files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			v, err = config.New(cmd.Flags())
			return err
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API and swagger UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), v)
		},
	}
	play := &cobra.Command{
		Use:   "play",
		Short: "Practice in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), v)
		},
	}
	stats := &cobra.Command{
		Use:   "stats",
		Short: "Print per-category accuracy of the saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.Context(), v, cmd.OutOrStdout())
		},
	}
	export := &cobra.Command{
		Use:   "export",
		Short: "Write the answered questions of the saved session as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			return runExport(cmd.Context(), v, out, cmd.OutOrStdout())
		},
	}
	export.Flags().String("out", "results.csv", `output file, "-" for stdout`)
	sessions := &cobra.Command{
		Use:   "sessions",
		Short: "List or delete sessions saved by the sqlite backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			del, _ := cmd.Flags().GetString("delete")
			return runSessions(cmd.Context(), v, del, cmd.OutOrStdout())
		},
	}
	sessions.Flags().String("delete", "", "session id to delete")

	root.AddCommand(serve, play, stats, export, sessions)
	root.RunE = serve.RunE
	return root
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func runServe(ctx context.Context, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	logger := newLogger(os.Stdout, cfg.LogLevel)

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to start", "error", err)
		return err
	}
	defer a.Close()

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()
	api.RegisterRoutes(mux, api.NewHandler(a.quiz, logger))

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		return err
	}
	return nil
}

func runPlay(ctx context.Context, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	logFile, err := os.OpenFile(playLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrap(err, "open log file")
	}
	defer logFile.Close()
	logger := newLogger(logFile, cfg.LogLevel)

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()
	return tui.Run(ctx, a.quiz)
}

func runStats(ctx context.Context, v *viper.Viper, out io.Writer) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a, err := newApp(ctx, cfg, newLogger(os.Stderr, cfg.LogLevel))
	if err != nil {
		return err
	}
	defer a.Close()

	stats, err := a.quiz.Stats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintln(out, "no answers recorded")
		return nil
	}
	fmt.Fprintf(out, "%-24s %8s %8s %9s\n", "CATEGORY", "ATTEMPTS", "CORRECT", "ACCURACY")
	for _, row := range category.Sorted(stats) {
		fmt.Fprintf(out, "%-24s %8d %8d %8.1f%%\n", row.Category, row.Attempts, row.Correct, row.AccuracyPct)
	}
	total := category.Overall(stats)
	fmt.Fprintf(out, "%-24s %8d %8d %8.1f%%\n", "OVERALL", total.Attempts, total.Correct, total.AccuracyPct)
	return nil
}

func runExport(ctx context.Context, v *viper.Viper, path string, stdout io.Writer) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, cfg.LogLevel)
	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	rows, withSource, err := a.quiz.Results()
	if err != nil {
		return err
	}
	header, records := practicesession.ResultsTable(rows, withSource)

	if path == "-" {
		return tabular.WriteCSV(stdout, header, records)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create export file")
	}
	defer f.Close()
	if err := tabular.WriteCSV(f, header, records); err != nil {
		return err
	}
	logger.Info("results exported", "path", path, "rows", len(records))
	return nil
}

func runSessions(ctx context.Context, v *viper.Viper, del string, out io.Writer) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if del != "" {
		if err := db.DeleteSession(ctx, del); err != nil {
			return errors.Wrapf(err, "delete session %s", del)
		}
		fmt.Fprintf(out, "deleted %s\n", del)
		return nil
	}
	ids, err := db.ListSessions(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Fprintln(out, id)
	}
	return nil
}
