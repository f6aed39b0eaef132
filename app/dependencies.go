package app

import (
	"github.com/hmendez/bookshelf-api/config"
	"go.uber.org/zap"
)

// Dependencies holds all application dependencies. This is the central
// wiring point: components receive the configuration record and logger
// from here instead of reading process state themselves.
type Dependencies struct {
	Config *config.Config
	Logger *zap.Logger
}

// NewDependencies wires up the application dependencies. The service has
// no external infrastructure — DB_URL is surfaced by the config record
// for a future persistence layer but nothing connects to it yet.
func NewDependencies(cfg *config.Config, logger *zap.Logger) *Dependencies {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if cfg.DatabaseURL.IsSet() {
		logger.Info("DB_URL is set but unused; no persistence layer is wired")
	}

	return deps
}

// Close flushes the logger. There is nothing else to shut down.
func (d *Dependencies) Close() error {
	if d.Logger != nil {
		_ = d.Logger.Sync()
	}
	return nil
}
