package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/qbank-local/backend/internal/id"
)

// EnvPrefix prefixes every environment variable, e.g. QUIZBANK_ADDR.
const EnvPrefix = "QUIZBANK"

// Progress backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	LogLevel        slog.Level

	// Question sources: explicit files win over the folder.
	QuestionsDir string
	Sources      []string
	LoadWorkers  int

	// Progress persistence
	ProgressBackend string // "json" or "sqlite"
	ProgressPath    string // JSON file path
	DBPath          string // SQLite database path
	SessionID       string // SQLite row key

	Shuffle bool // default for a session without saved progress
}

// RegisterFlags declares every setting as a flag with its default.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("addr", ":8080", "HTTP listen address")
	fs.Duration("shutdown-timeout", 10*time.Second, "graceful shutdown timeout")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("questions-dir", "questions", "folder of .csv/.xlsx question files")
	fs.StringSlice("source", nil, "question file to load; repeatable, overrides --questions-dir")
	fs.Int("load-workers", 4, "files read in parallel")
	fs.String("progress-backend", BackendJSON, "progress store: json or sqlite")
	fs.String("progress-path", "progress.json", "progress file for the json backend")
	fs.String("db-path", "quizbank.db", "database file for the sqlite backend")
	fs.String("session-id", "local", "progress key for the sqlite backend; empty generates one")
	fs.Bool("shuffle", true, "shuffle questions of a new session")
}

// New returns a viper instance reading flags, QUIZBANK_* variables and a
// .env file, in that order of precedence.
func New(fs *pflag.FlagSet) (*viper.Viper, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "config: bind flags")
	}
	return v, nil
}

// Load reads and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ServerAddress:   v.GetString("addr"),
		ShutdownTimeout: v.GetDuration("shutdown-timeout"),
		QuestionsDir:    v.GetString("questions-dir"),
		Sources:         sources(v),
		LoadWorkers:     v.GetInt("load-workers"),
		ProgressBackend: strings.ToLower(v.GetString("progress-backend")),
		ProgressPath:    v.GetString("progress-path"),
		DBPath:          v.GetString("db-path"),
		SessionID:       v.GetString("session-id"),
		Shuffle:         v.GetBool("shuffle"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return nil, errors.Wrapf(err, "config: log-level %q", v.GetString("log-level"))
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.Errorf("config: shutdown-timeout must be positive, got %s", cfg.ShutdownTimeout)
	}
	switch cfg.ProgressBackend {
	case BackendJSON:
		if cfg.ProgressPath == "" {
			return nil, errors.New("config: progress-path is required for the json backend")
		}
	case BackendSQLite:
		if cfg.SessionID == "" {
			cfg.SessionID = id.GenerateID()
		}
	default:
		return nil, errors.Errorf("config: unknown progress-backend %q", cfg.ProgressBackend)
	}
	cfg.LoadWorkers = max(cfg.LoadWorkers, 1)
	return cfg, nil
}

// sources accepts both a flag list and a comma separated environment value.
func sources(v *viper.Viper) []string {
	var out []string
	for _, s := range v.GetStringSlice("source") {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
