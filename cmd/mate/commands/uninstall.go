package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mate/internal/app"
)

func (c *CLI) newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove all installed files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Uninstall(cmd.Context(), app.UninstallOptions{
				ConfigPath: configPath(cmd),
			})
		},
	}
}
