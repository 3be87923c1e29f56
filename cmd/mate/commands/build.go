package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mate/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile and link the configured sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			return c.app.Build(cmd.Context(), app.BuildOptions{
				ConfigPath: configPath(cmd),
				Jobs:       jobs(cmd),
				DryRun:     dryRun,
			})
		},
	}

	cmd.Flags().Bool("dry-run", false, "Print the commands that would run without executing them")

	return cmd
}
