package app

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GraphPaths   []string // hcl graph files or directories
	CatalogPaths []string // hcl node catalogs, added to the built-in templates

	// EngineConfigPath is merged over config.yaml; APP_CONFIG_PATH is used
	// when empty.
	EngineConfigPath string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	// WorkerCount overrides worker.pool_size when positive.
	WorkerCount int

	// JournalURL selects the journal: empty or "memory" keeps it in
	// process, a redis:// or rediss:// URL stores it in Redis.
	JournalURL string
	// SocketIOURL, when set, streams fired events to a socket.io server.
	SocketIOURL string
	// Timeout bounds a run; zero waits for quiescence however long it takes.
	Timeout time.Duration
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.WorkerCount < 0 {
		return nil, fmt.Errorf("worker count must not be negative, got %d", cfg.WorkerCount)
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("timeout must not be negative, got %s", cfg.Timeout)
	}
	switch {
	case cfg.JournalURL == "", cfg.JournalURL == journalMemory:
	case strings.HasPrefix(cfg.JournalURL, "redis://"), strings.HasPrefix(cfg.JournalURL, "rediss://"):
	default:
		return nil, errors.New("journal must be 'memory' or a redis:// URL")
	}
	return &cfg, nil
}
