package app

import (
	"context"

	"go.uber.org/zap"

	"adventofcode2021/internal/logging"
)

// App bundles the loaded configuration and logger.
type App struct {
	Config Config
	Log    *zap.Logger
}

// New loads the config at path and builds the logger. verbose forces debug
// logging regardless of the configured level.
func New(path string, verbose bool) (*App, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logging.Options{
		Level:    cfg.Log.Level,
		Encoding: cfg.Log.Encoding,
		Verbose:  verbose,
	})
	if err != nil {
		return nil, err
	}
	return &App{Config: cfg, Log: logger}, nil
}

// Context returns ctx carrying the app logger.
func (a *App) Context(ctx context.Context) context.Context {
	return logging.WithLogger(ctx, a.Log)
}

// Close flushes buffered log entries.
func (a *App) Close() {
	if a != nil && a.Log != nil {
		_ = a.Log.Sync()
	}
}
