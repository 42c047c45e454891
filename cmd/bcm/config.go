package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bcmaps/engine"
)

// Config holds the command settings. Values come from DefaultConfig, then
// the optional YAML file, then explicitly set flags.
type Config struct {
	Algorithm   string        `yaml:"algorithm"`
	Format      engine.Format `yaml:"format"` // zero: guess from the file extension
	Time        bool          `yaml:"time"`
	TimeOpts    string        `yaml:"time-opts"`
	Diagonal    bool          `yaml:"diagonal"`
	MaxExpected int           `yaml:"max-expected"`
	CacheSize   int           `yaml:"cache-size"`
	LogLevel    string        `yaml:"log-level"`
}

// DefaultConfig returns the settings used when neither a file nor a flag
// says otherwise.
func DefaultConfig() Config {
	return Config{
		Algorithm: "a-star",
		TimeOpts:  fmt.Sprintf("%d:%d", engine.DefaultRepeat, engine.DefaultNumber),
		Diagonal:  true,
		CacheSize: engine.DefaultCacheSize,
		LogLevel:  "warn",
	}
}

// ReadConfig overlays the YAML file at path onto cfg. Keys missing from the
// file keep their current values.
func ReadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return nil
}

// NewLogger builds a production zap logger writing JSON to stderr at the
// configured level.
func (c Config) NewLogger() (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Sampling = nil

	return zc.Build()
}

// runnerOptions translates the settings into engine options.
func (c Config) runnerOptions(log *zap.Logger) ([]engine.RunnerOption, error) {
	if c.CacheSize <= 0 {
		return nil, fmt.Errorf("cache-size must be positive, got %d", c.CacheSize)
	}
	if c.MaxExpected < 0 {
		return nil, fmt.Errorf("max-expected must not be negative, got %d", c.MaxExpected)
	}
	opts := []engine.RunnerOption{
		engine.WithLogger(log),
		engine.WithCacheSize(c.CacheSize),
		engine.WithLoadOptions(engine.WithDiagonal(c.Diagonal), engine.WithMaxExpected(c.MaxExpected)),
	}
	if c.Time {
		repeat, number, err := engine.ParseTimeOpts(c.TimeOpts)
		if err != nil {
			return nil, err
		}
		opts = append(opts, engine.WithTiming(repeat, number))
	}

	return opts, nil
}
