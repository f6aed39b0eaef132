package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/hmendez/bookshelf-api/app"
	"github.com/hmendez/bookshelf-api/config"
	"github.com/hmendez/bookshelf-api/routes"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	logger, err := initLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := config.New()

	deps := app.NewDependencies(cfg, logger)
	defer deps.Close()

	handler := routes.SetupRoutes(deps)

	// Construction is done. Only production binds a socket; in every
	// other mode the handler is exercised in-process by a test harness.
	if !cfg.IsProduction() {
		logger.Info("not in production mode, skipping listener",
			zap.String("node_env", cfg.Environment.Or("<unset>")))
		return
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("server listening",
		zap.String("addr", cfg.ListenAddr()),
		zap.String("frontend_dir", cfg.FrontendDir))

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

// initLogger builds the zap logger from LOG_LEVEL and LOG_FORMAT. These
// knobs belong to the logger bootstrap, not the configuration record.
func initLogger() (*zap.Logger, error) {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		levelStr = "info"
	}

	level, err := zapcore.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", levelStr, err)
	}

	zapCfg := zap.NewProductionConfig()
	if os.Getenv("LOG_FORMAT") == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
