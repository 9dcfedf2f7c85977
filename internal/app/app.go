package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/five82/pantry/internal/config"
	"github.com/five82/pantry/internal/dummyjson"
	"github.com/five82/pantry/internal/logging"
	"github.com/five82/pantry/internal/ui"
)

// Options configure the pantry application.
type Options struct {
	ConfigPath string
	ThemeName  string // overrides the configured theme when set
}

// Env is everything a front end needs, built from configuration.
type Env struct {
	Config  config.Config
	Logger  *slog.Logger
	Gateway *dummyjson.Client
	close   func() error
}

// Close releases the log file.
func (e *Env) Close() error {
	if e == nil || e.close == nil {
		return nil
	}
	return e.close()
}

// Setup loads configuration, opens the log file and builds the gateway.
func Setup(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if name := strings.TrimSpace(opts.ThemeName); name != "" {
		cfg.Theme = name
	}

	logger, closeLog, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	client, err := dummyjson.NewClient(cfg.BaseURL,
		dummyjson.WithTimeout(cfg.RequestTimeout),
		dummyjson.WithLogger(logger),
	)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("init recipe client: %w", err)
	}

	logger.Info("pantry starting",
		slog.String("base_url", cfg.BaseURL),
		slog.Duration("request_timeout", cfg.RequestTimeout),
		slog.String("theme", cfg.Theme))

	return &Env{Config: cfg, Logger: logger, Gateway: client, close: closeLog}, nil
}

// Run boots the pantry TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	env, err := Setup(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	err = ui.Run(ui.Options{
		Context:   ctx,
		Gateway:   env.Gateway,
		Logger:    env.Logger,
		ThemeName: env.Config.Theme,
	})
	if err != nil {
		env.Logger.Error("ui exited", slog.Any("error", err))
		return err
	}
	env.Logger.Info("pantry stopped")
	return nil
}
