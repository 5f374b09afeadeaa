package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/application/usecase"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/infrastructure/config"
	"github.com/bnema/tessera/internal/infrastructure/terminal"
	"github.com/bnema/tessera/internal/logging"
	"github.com/bnema/tessera/internal/ui/theme"
)

var (
	watchBackend string
	watchSplits  []string
	watchReflow  bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep a layout on screen while the terminal resizes",
	Long: `Draw a layout on the real terminal and redraw it as the terminal changes.

The terminal size is polled every terminal.poll_interval_ms and on SIGWINCH.
With --reflow (the default) frames follow the new size; without it they keep
their geometry and only redraw. Edits to the config file's layout.border_style
apply live. Quit with Ctrl-C (or q/Esc on the tcell backend).`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchBackend, "backend", "b", "", "terminal backend: stdio or tcell (default from terminal.backend)")
	watchCmd.Flags().StringSliceVarP(&watchSplits, "split", "s", nil, "split steps, v or h, comma separated")
	watchCmd.Flags().BoolVar(&watchReflow, "reflow", true, "reflow frames when the terminal size changes")
}

// openBackend returns the terminal plus a cleanup restoring the screen.
func openBackend(backend config.Backend) (port.Terminal, func(), error) {
	switch backend {
	case config.BackendTcell:
		t, err := terminal.NewTcell()
		if err != nil {
			return nil, nil, err
		}
		return t, t.Close, nil
	case config.BackendStdio, "":
		t, err := terminal.NewStdio(os.Stdout)
		if err != nil {
			return nil, nil, err
		}
		if err := t.Enter(); err != nil {
			return nil, nil, err
		}
		return t, func() { _ = t.Exit() }, nil
	}
	return nil, nil, fmt.Errorf("unknown terminal backend %q (want stdio or tcell)", backend)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	axes, err := parseSplits(watchSplits)
	if err != nil {
		return err
	}
	glyphs, err := app.BorderGlyphs("")
	if err != nil {
		return err
	}
	backend := app.Config.Terminal.Backend
	if watchBackend != "" {
		backend = config.Backend(watchBackend)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithContext(ctx, *logging.FromContext(app.Ctx()))
	ctx = logging.WithComponent(ctx, "watch")

	term, cleanup, err := openBackend(backend)
	if err != nil {
		return err
	}
	defer cleanup()

	layout, err := app.NewLayout(ctx, term, glyphs, app.BorderPolicy())
	if err != nil {
		return err
	}
	defer func() { _ = layout.Frames().Close(ctx) }()
	if err := layout.Apply(ctx, axes); err != nil {
		return err
	}

	// Border style edits arrive on viper's watcher goroutine; the loop applies them.
	restyle := make(chan entity.BorderGlyphs, 1)
	if err := app.Manager.Watch(); err == nil {
		app.Manager.OnConfigChange(func(cfg *config.Config) {
			g, err := theme.BorderGlyphs(cfg.Layout.BorderStyle)
			if err != nil {
				return
			}
			select {
			case restyle <- g:
			default:
			}
		})
	} else if !errors.Is(err, config.ErrNoConfigFile) {
		logging.FromContext(ctx).Warn().Err(err).Msg("config watch unavailable")
	}

	interval := time.Duration(app.Config.Terminal.PollIntervalMs) * time.Millisecond
	polls := make(chan struct{}, 1)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return pollTicker(ctx, interval, terminal.ResizeSignals(ctx), polls)
	})
	g.Go(func() error {
		return watchLoop(ctx, term, layout, polls, restyle, watchReflow)
	})

	err = g.Wait()
	if errors.Is(err, terminal.ErrInterrupted) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pollTicker merges the poll interval and resize signals into polls,
// coalescing bursts while the loop is busy.
func pollTicker(ctx context.Context, interval time.Duration, winch <-chan struct{}, polls chan<- struct{}) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		case <-winch:
		}
		select {
		case polls <- struct{}{}:
		default:
		}
	}
}

// watchLoop owns the layout: every access to it happens on this goroutine.
func watchLoop(
	ctx context.Context,
	term port.Terminal,
	layout *usecase.ComposeLayoutUseCase,
	polls <-chan struct{},
	restyle <-chan entity.BorderGlyphs,
	reflow bool,
) error {
	log := logging.FromContext(ctx)

	if err := layout.Render(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case glyphs := <-restyle:
			for _, f := range layout.Frames().Frames() {
				if err := f.SetBorderGlyphs(glyphs); err != nil {
					log.Warn().Err(err).Str("frame_id", string(f.ID)).Msg("border style not applied")
				}
			}
			log.Info().Msg("border style reloaded")

		case <-polls:
			if err := term.Update(ctx); err != nil {
				return err
			}
			rows, columns := term.Size()
			gridRows, gridColumns := layout.Frames().Size()
			if reflow && (rows != gridRows || columns != gridColumns) {
				if err := layout.Reflow(ctx); err != nil {
					// Too small for the current tree; keep the old geometry.
					log.Warn().Err(err).Int("rows", rows).Int("columns", columns).Msg("reflow skipped")
				}
			}
		}

		if err := layout.Render(ctx); err != nil {
			return err
		}
	}
}
