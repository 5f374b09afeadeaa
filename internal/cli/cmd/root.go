// Package cmd provides Cobra CLI commands for tessera.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tessera/internal/cli"
	"github.com/bnema/tessera/internal/domain/build"
)

var (
	app         *cli.App
	buildInfo   build.Info
	configFile  string
	logLevel    string
	screenOwner = map[string]bool{"run": true, "watch": true}

	rootCmd = &cobra.Command{
		Use:   "tessera",
		Short: "Tiling frame layouts for the terminal",
		Long: `Tessera - tiling frame layouts for the terminal.

The terminal surface starts as a single root frame. Splitting a frame
vertically or horizontally carves a new frame out of it, the same way a
tiling window manager divides the screen. Frames are composited into a
screen-sized grid and written to the terminal in one pass.

Use 'tessera run' for an interactive session, 'tessera snapshot' to print
a layout once, or 'tessera watch' to keep a layout on screen while the
terminal is resized.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "__complete":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigFile: configFile,
				LogLevel:   logLevel,
				OwnsScreen: screenOwner[cmd.Name()],
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/tessera/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (trace, debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
