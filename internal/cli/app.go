// Package cli wires configuration, logging and themes for the tessera commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/application/usecase"
	"github.com/bnema/tessera/internal/cli/styles"
	"github.com/bnema/tessera/internal/domain/build"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/infrastructure/config"
	"github.com/bnema/tessera/internal/logging"
	"github.com/bnema/tessera/internal/ui/theme"
)

const logFileName = "tessera.log"

// Options controls how NewApp loads its dependencies.
type Options struct {
	// ConfigFile overrides the XDG config search when set.
	ConfigFile string
	// LogLevel overrides logging.level when set.
	LogLevel string
	// OwnsScreen is set for commands that draw on the terminal. Their logs
	// go to the log file only, never to stderr.
	OwnsScreen bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads configuration and builds the logger.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if opts.ConfigFile != "" {
		mgr.SetConfigFile(opts.ConfigFile)
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logger, logCleanup, err := newLogger(cfg.Logging, opts)
	if err != nil {
		return nil, err
	}
	ctx := logging.WithContext(context.Background(), logger)

	logger.Debug().
		Str("config_file", mgr.GetConfigFile()).
		Str("border_style", cfg.Layout.BorderStyle).
		Str("backend", string(cfg.Terminal.Backend)).
		Msg("configuration loaded")

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(),
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

func newLogger(cfg config.LoggingConfig, opts Options) (zerolog.Logger, func(), error) {
	level := cfg.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logCfg := logging.Config{
		Level:      logging.ParseLevel(level),
		Format:     cfg.Format,
		TimeFormat: "15:04:05",
	}

	if cfg.EnableFileLog {
		logger, cleanup, err := logging.NewWithFile(logCfg, logging.RotationConfig{
			Dir:        cfg.LogDir,
			FileName:   logFileName,
			MaxSizeMB:  cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAgeDays: cfg.MaxAge,
			Compress:   cfg.Compress,
		})
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		return logger, cleanup, nil
	}

	if opts.OwnsScreen {
		return zerolog.Nop(), func() {}, nil
	}
	return logging.NewWithWriter(logCfg, os.Stderr), func() {}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// BorderGlyphs resolves the configured border style.
func (a *App) BorderGlyphs(style string) (entity.BorderGlyphs, error) {
	if style == "" {
		style = a.Config.Layout.BorderStyle
	}
	return theme.BorderGlyphs(style)
}

// BorderPolicy returns the configured border policy.
func (a *App) BorderPolicy() usecase.BorderPolicy {
	return usecase.BorderPolicy{
		Root:   a.Config.Layout.BorderRoot,
		Splits: a.Config.Layout.BorderSplits,
	}
}

// NewLayout builds a frame manager on term and wraps it for host-driven splitting.
func (a *App) NewLayout(ctx context.Context, term port.Terminal, glyphs entity.BorderGlyphs, policy usecase.BorderPolicy) (*usecase.ComposeLayoutUseCase, error) {
	frames, err := usecase.NewFrameManager(ctx, term, usecase.WithBorderGlyphs(glyphs))
	if err != nil {
		return nil, fmt.Errorf("create layout: %w", err)
	}
	return usecase.NewComposeLayoutUseCase(frames, term, policy), nil
}
