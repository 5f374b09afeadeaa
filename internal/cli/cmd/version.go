package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tessera/internal/cli/styles"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if versionShort {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), buildInfo.String())
			return err
		}
		renderer := styles.NewAboutRenderer(GetApp().Theme)
		_, err := fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(buildInfo))
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print a single plain line")
}
