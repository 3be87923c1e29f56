package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mate/internal/app"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Copy the built artifact and headers into the install prefix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Install(cmd.Context(), app.InstallOptions{
				ConfigPath: configPath(cmd),
			})
		},
	}
}
