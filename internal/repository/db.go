package repository

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Driver   string `env:"DB_DRIVER" envDefault:"sqlite"`
	Path     string `env:"DB_PATH"`
	Host     string `env:"DB_HOST"`
	Port     string `env:"DB_PORT"`
	Username string `env:"DB_USERNAME"`
	Password string `env:"DB_PASSWORD"`
	DBName   string `env:"DB_NAME"`
	SSLMode  string `env:"DB_SSLMODE"`
}

// DefaultSQLitePath places the database under the user's config directory,
// falling back to the working directory when there is none.
func DefaultSQLitePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "hotsbot.db"
	}
	return filepath.Join(dir, "hotsbot", "hotsbot.db")
}

func NewDB(cfg *Config) (*sql.DB, error) {
	switch cfg.Driver {
	case DriverPostgres:
		return NewPostgresDB(cfg)
	case DriverSQLite, "":
		return NewSQLiteDB(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

func NewPostgresDB(cfg *Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.DBName, cfg.Password, cfg.SSLMode)

	db, err := sql.Open(DriverPostgres, dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// NewSQLiteDB opens the database at path, or an in-memory one for ":memory:".
// The pool holds a single connection so writes are serialized.
func NewSQLiteDB(path string) (*sql.DB, error) {
	if path == "" {
		path = DefaultSQLitePath()
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create db directory: %w", err)
		}
	}

	db, err := sql.Open(DriverSQLite, path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
