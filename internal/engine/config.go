package engine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/mitchellh/mapstructure"
	"github.com/specialistvlad/graphflow/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is read when present.
	DefaultConfigPath = "config.yaml"
	// ConfigPathEnv names a file merged over the default one.
	ConfigPathEnv = "APP_CONFIG_PATH"
	// DefaultQueueCapacity bounds the dispatch channel.
	DefaultQueueCapacity = 10
)

// Config is the engine configuration, read once at startup.
type Config struct {
	Worker WorkerConfig `yaml:"worker"`
	Queue  QueueConfig  `yaml:"queue"`
}

// WorkerConfig sizes the worker pool.
type WorkerConfig struct {
	PoolSize int `yaml:"pool_size"`
}

// QueueConfig sizes the dispatch channel.
type QueueConfig struct {
	Capacity int `yaml:"capacity"`
}

// DefaultConfig returns one worker per CPU and the default queue capacity.
func DefaultConfig() Config {
	return Config{
		Worker: WorkerConfig{PoolSize: runtime.NumCPU()},
		Queue:  QueueConfig{Capacity: DefaultQueueCapacity},
	}
}

// Validate checks that every size is positive.
func (c Config) Validate() error {
	if c.Worker.PoolSize <= 0 {
		return fmt.Errorf("worker.pool_size must be positive, got %d", c.Worker.PoolSize)
	}
	if c.Queue.Capacity <= 0 {
		return fmt.Errorf("queue.capacity must be positive, got %d", c.Queue.Capacity)
	}
	return nil
}

// LoadConfig reads DefaultConfigPath and the file named by ConfigPathEnv.
func LoadConfig(ctx context.Context) (Config, error) {
	return LoadConfigFiles(ctx, DefaultConfigPath, os.Getenv(ConfigPathEnv))
}

// LoadConfigFiles merges overridePath over defaultPath key by key and
// decodes the result over DefaultConfig. A missing defaultPath is ignored; a
// missing overridePath is an error because someone asked for it.
func LoadConfigFiles(ctx context.Context, defaultPath, overridePath string) (Config, error) {
	logger := ctxlog.FromContext(ctx)
	merged := map[string]any{}

	if defaultPath != "" {
		m, err := readYAML(defaultPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logger.Debug("Default config file not found, using defaults.", "path", defaultPath)
		case err != nil:
			return Config{}, err
		default:
			mergeMaps(merged, m)
		}
	}
	if overridePath != "" {
		m, err := readYAML(overridePath)
		if err != nil {
			return Config{}, err
		}
		logger.Debug("Merging config override.", "path", overridePath)
		mergeMaps(merged, m)
	}

	cfg := DefaultConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "yaml",
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Config{}, fmt.Errorf("failed to create config decoder: %w", err)
	}
	if err := decoder.Decode(merged); err != nil {
		return Config{}, fmt.Errorf("invalid engine config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid engine config: %w", err)
	}
	return cfg, nil
}

func readYAML(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	m := map[string]any{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return m, nil
}

// mergeMaps copies src into dst, recursing into nested maps.
func mergeMaps(dst, src map[string]any) {
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			if existing, ok := dst[k].(map[string]any); ok {
				mergeMaps(existing, sub)
				continue
			}
		}
		dst[k] = v
	}
}
