package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/pmk/internal/app"
)

func (c *CLI) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "show [target]",
		Short:             "Print the compiler command of a target without building it",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: c.completeTargets,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, _ := cmd.Flags().GetString("mode")
			command, err := c.app.Command(cmd.Context(), app.RunOptions{
				Target: firstArg(args),
				Mode:   mode,
			})
			if err != nil {
				return err
			}
			if c.json {
				return writeJSON(cmd.OutOrStdout(), command.Argv())
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), command.String())
			return err
		},
	}
	cmd.Flags().StringP("mode", "M", "", "Compilation mode (debug, profile_debug, release)")
	_ = cmd.RegisterFlagCompletionFunc("mode", c.completeModes)
	return cmd
}
