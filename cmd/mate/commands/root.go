// Package commands implements the CLI commands for the mate build tool.
package commands

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"go.trai.ch/mate/internal/app"
	"go.trai.ch/mate/internal/build"
	"go.trai.ch/mate/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for mate.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) error
	Install(ctx context.Context, opts app.InstallOptions) error
	Uninstall(ctx context.Context, opts app.UninstallOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
	Watch(ctx context.Context, opts app.WatchOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "mate",
		Short:         "A minimal build orchestrator for compiled projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		// Running mate without a command builds the project. Anything that
		// is not a registered command name is rejected with exit status 127.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return zerr.With(domain.ErrUnknownCommand, "command", args[0])
			}
			return c.app.Build(cmd.Context(), app.BuildOptions{
				ConfigPath: configPath(cmd),
				Jobs:       jobs(cmd),
			})
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	// Jobs is a string flag so a malformed value degrades to one worker
	// instead of failing flag parsing.
	rootCmd.PersistentFlags().StringP("jobs", "j", "", "Number of compile jobs to run in parallel")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the matefile (default: discover mate.yaml upwards from the working directory)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newBuildCmd())
	if runtime.GOOS != "windows" {
		rootCmd.AddCommand(c.newInstallCmd())
		rootCmd.AddCommand(c.newUninstallCmd())
	}
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetVerboseHook sets up a PersistentPreRun function that retrieves the
// verbose flag and calls the provided callback with its value.
func (c *CLI) SetVerboseHook(fn func(bool)) {
	c.rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		fn(verbose)
	}
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}

func jobs(cmd *cobra.Command) int {
	raw, _ := cmd.Flags().GetString("jobs")
	return domain.ParseJobs(raw)
}
