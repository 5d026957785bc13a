package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Driver names accepted by Open.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Config selects and configures the blob backend.
type Config struct {
	Driver      string
	Path        string
	RedisURL    string
	RedisPrefix string
}

// Store holds the blob backend and provides access to repositories.
type Store struct {
	blob Blob
	now  func() time.Time
}

// Open creates a Store on the backend named by cfg.Driver. An empty driver
// means SQLite.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	switch cfg.Driver {
	case "", DriverSQLite:
		path := cfg.Path
		if path == "" {
			p, err := DefaultDBPath()
			if err != nil {
				return nil, err
			}
			path = p
		}
		if err := EnsureDir(path); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
		b, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return New(b), nil
	case DriverRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("redis driver requires a redis url")
		}
		rdb, err := NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return New(NewRedisBlob(rdb, cfg.RedisPrefix)), nil
	case DriverMemory:
		return New(NewMemoryBlob()), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// New wraps an already opened blob.
func New(b Blob) *Store {
	return &Store{blob: b, now: time.Now}
}

// Blob returns the underlying backend.
func (s *Store) Blob() Blob {
	return s.blob
}

// Close closes the backend.
func (s *Store) Close() error {
	return s.blob.Close()
}

func (s *Store) DiagnosisRepo() DiagnosisRepo { return &diagnosisRepo{blob: s.blob} }
func (s *Store) RoadmapRepo() RoadmapRepo     { return &roadmapRepo{blob: s.blob} }
func (s *Store) HistoryRepo() HistoryRepo     { return &historyRepo{blob: s.blob} }
func (s *Store) PortfolioRepo() PortfolioRepo { return &portfolioRepo{blob: s.blob} }
func (s *Store) ProjectRepo() ProjectRepo     { return &projectRepo{blob: s.blob} }
func (s *Store) SessionRepo() SessionRepo     { return &sessionRepo{blob: s.blob} }
func (s *Store) ProgressRepo() ProgressRepo   { return &progressRepo{blob: s.blob} }
func (s *Store) EventRepo() EventRepo         { return &eventRepo{blob: s.blob, now: s.now} }

// DefaultDBPath resolves the database file path in priority order:
// 1. CAREERPATH_DB environment variable
// 2. $XDG_DATA_HOME/careerpath/careerpath.db
// 3. ~/.local/share/careerpath/careerpath.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("CAREERPATH_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "careerpath", "careerpath.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
