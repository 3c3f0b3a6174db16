// Package commands implements the CLI commands for pmk.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/pmk/internal/app"
	"go.trai.ch/pmk/internal/build"
	"go.trai.ch/pmk/internal/core/ports"
	"go.trai.ch/zerr"
)

// jsonSwitcher is implemented by loggers that can emit JSON.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// CLI represents the command line interface for pmk.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
	json    bool
}

// New creates a new CLI instance with the given app.
func New(a *app.App, log ports.Logger) *CLI {
	c := &CLI{
		app:    a,
		logger: log,
	}

	rootCmd := &cobra.Command{
		Use:   "pmk [target]",
		Short: "Build one named target with remembered mode and target",
		Long: `pmk builds a single named target with the compiler flags of a mode.

Without a target, the last built target is rebuilt. Without --mode, the last
used mode is reused. Both choices are remembered in .pmk/state.json.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: c.completeTargets,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           build.Version,
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, _ := cmd.Flags().GetString("mode")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			return c.app.Run(cmd.Context(), app.RunOptions{
				Target: firstArg(args),
				Mode:   mode,
				DryRun: dryRun,
			})
		},
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().StringP("mode", "M", "", "Compilation mode (debug, profile_debug, release)")
	_ = rootCmd.RegisterFlagCompletionFunc("mode", c.completeModes)
	rootCmd.Flags().BoolP("dry-run", "n", false, "Print the compiler command without running it")

	rootCmd.PersistentFlags().StringP("chdir", "C", "", "Run as if pmk was started in `dir`")
	_ = rootCmd.MarkPersistentFlagDirname("chdir")
	rootCmd.PersistentFlags().BoolVar(&c.json, "json", false, "Emit logs and listings as JSON")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newTargetsCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newShowCmd())
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
}

func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if dir, _ := cmd.Flags().GetString("chdir"); dir != "" {
		if err := os.Chdir(dir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to change directory"), "path", dir)
		}
	}
	if s, ok := c.logger.(jsonSwitcher); ok {
		s.SetJSON(c.json)
	}
	return nil
}

// completeTargets runs without PersistentPreRunE, so --chdir is read here.
func (c *CLI) completeTargets(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	dir, _ := cmd.Flags().GetString("chdir")
	if dir == "" {
		dir = "."
	}
	return c.app.TargetNames(dir), cobra.ShellCompDirectiveNoFileComp
}

func (c *CLI) completeModes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return c.app.Modes(), cobra.ShellCompDirectiveNoFileComp
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
