package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/tessera/internal/cli/model"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive layout session",
	Long: `Open a full-screen layout and split frames from the keyboard.

Keys:
  v    split the focused frame vertically
  s    split the focused frame horizontally
  tab  focus the next frame
  b    toggle the focused frame's border
  r    reflow every frame to the window
  ?    toggle help
  q    quit`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	glyphs, err := app.BorderGlyphs("")
	if err != nil {
		return err
	}

	m := model.NewLayoutModel(app.Ctx(), app.Theme, model.LayoutModelConfig{
		BorderGlyphs: glyphs,
		BorderPolicy: app.BorderPolicy(),
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(app.Ctx()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run layout session: %w", err)
	}
	return nil
}
