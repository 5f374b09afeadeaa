package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/infrastructure/terminal"
)

var (
	snapshotRows    int
	snapshotColumns int
	snapshotSplits  []string
	snapshotBorder  bool
	snapshotStyle   string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print a layout once",
	Long: `Build a layout on a terminal of the given size and print it once.

Each --split step divides the frame created by the previous step
(the root frame for the first step): v splits columns, h splits rows.

Examples:
  tessera snapshot --split v,h              # 24x80, three frames
  tessera snapshot -r 10 -c 30 --split v,v  # narrow columns
  tessera snapshot --style rounded --border=false`,
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().IntVarP(&snapshotRows, "rows", "r", 24, "terminal rows")
	snapshotCmd.Flags().IntVarP(&snapshotColumns, "columns", "c", 80, "terminal columns")
	snapshotCmd.Flags().StringSliceVarP(&snapshotSplits, "split", "s", nil, "split steps, v or h, comma separated")
	snapshotCmd.Flags().BoolVar(&snapshotBorder, "border", false, "draw frame borders (--border=false for none); when not given, layout.border_root and layout.border_splits apply")
	snapshotCmd.Flags().StringVar(&snapshotStyle, "style", "", "border style (default from layout.border_style)")
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	axes, err := parseSplits(snapshotSplits)
	if err != nil {
		return err
	}
	glyphs, err := app.BorderGlyphs(snapshotStyle)
	if err != nil {
		return err
	}
	policy := app.BorderPolicy()
	if cmd.Flags().Changed("border") {
		policy.Root, policy.Splits = snapshotBorder, snapshotBorder
	}

	out := cmd.OutOrStdout()
	term := terminal.NewStatic(out, snapshotRows, snapshotColumns)
	layout, err := app.NewLayout(ctx, term, glyphs, policy)
	if err != nil {
		return err
	}
	defer func() { _ = layout.Frames().Close(ctx) }()

	if err := layout.Apply(ctx, axes); err != nil {
		return err
	}
	if err := layout.Render(ctx); err != nil {
		return err
	}
	// The grid has no trailing newline so the shell prompt would follow it.
	_, err = fmt.Fprintln(out)
	return err
}

func parseSplits(steps []string) ([]entity.SplitAxis, error) {
	axes := make([]entity.SplitAxis, 0, len(steps))
	for _, step := range steps {
		axis, err := entity.ParseSplitAxis(step)
		if err != nil {
			return nil, err
		}
		axes = append(axes, axis)
	}
	return axes, nil
}
