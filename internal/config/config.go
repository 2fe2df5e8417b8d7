package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alexanderramin/degreeplan/internal/domain"
)

// DefaultStartTerm is used when neither the environment nor a request names
// a start term.
const DefaultStartTerm = "Fall 2025"

// Config holds process-wide settings for the CLI and the HTTP server.
type Config struct {
	DBPath       string
	CatalogURL   string // Postgres DSN; empty means the SQLite catalog
	FetchTimeout time.Duration
	HTTPAddr     string
	LogUseCases  bool

	StartTerm         string
	MaxTerms          int
	FallWinterCredits int
	SpringCredits     int
	MajorClassLimit   int
}

// DefaultConfig returns a Config with the stock credit caps and a database
// under the user's home directory.
func DefaultConfig() Config {
	dbPath := "degreeplan.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".degreeplan", "catalog.db")
	}
	return Config{
		DBPath:            dbPath,
		FetchTimeout:      30 * time.Second,
		HTTPAddr:          ":8080",
		StartTerm:         DefaultStartTerm,
		MaxTerms:          domain.DefaultMaxTerms,
		FallWinterCredits: domain.DefaultFallWinterCredits,
		SpringCredits:     domain.DefaultSpringCredits,
		MajorClassLimit:   domain.DefaultMajorClassLimit,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for unset or unparsable values.
func Load() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("DEGREEPLAN_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("DEGREEPLAN_CATALOG_URL"); v != "" {
		cfg.CatalogURL = v
	}
	if n, ok := positiveEnv("DEGREEPLAN_FETCH_TIMEOUT_MS"); ok {
		cfg.FetchTimeout = time.Duration(n) * time.Millisecond
	}
	if v := os.Getenv("DEGREEPLAN_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("DEGREEPLAN_LOG"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("DEGREEPLAN_START_TERM"); v != "" {
		if _, err := domain.ParseTerm(v); err == nil {
			cfg.StartTerm = v
		}
	}
	if n, ok := positiveEnv("DEGREEPLAN_MAX_TERMS"); ok {
		cfg.MaxTerms = n
	}
	if n, ok := positiveEnv("DEGREEPLAN_FALL_WINTER_CREDITS"); ok {
		cfg.FallWinterCredits = n
	}
	if n, ok := positiveEnv("DEGREEPLAN_SPRING_CREDITS"); ok {
		cfg.SpringCredits = n
	}
	if n, ok := positiveEnv("DEGREEPLAN_MAJOR_LIMIT"); ok {
		cfg.MajorClassLimit = n
	}

	return cfg
}

// Preferences returns credits-based preferences seeded from the configured
// caps. An unparsable StartTerm falls back to DefaultStartTerm.
func (c Config) Preferences() domain.Preferences {
	start, err := domain.ParseTerm(c.StartTerm)
	if err != nil {
		start, _ = domain.ParseTerm(DefaultStartTerm)
	}
	prefs := domain.DefaultPreferences(start)
	prefs.MajorClassLimit = domain.PositiveOr(prefs.MajorClassLimit, c.MajorClassLimit)
	prefs.Credits = domain.CreditLimits{
		FallWinter: domain.PositiveOr(prefs.Credits.FallWinter, c.FallWinterCredits),
		Spring:     domain.PositiveOr(prefs.Credits.Spring, c.SpringCredits),
	}
	prefs.MaxTerms = domain.PositiveOr(prefs.MaxTerms, c.MaxTerms)
	return prefs
}

func positiveEnv(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
