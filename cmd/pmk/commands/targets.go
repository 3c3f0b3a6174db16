package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "targets",
		Aliases: []string{"ls"},
		Short:   "List the known targets",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listing, err := c.app.Targets(cmd.Context())
			if err != nil {
				return err
			}
			if c.json {
				return writeJSON(cmd.OutOrStdout(), listing)
			}
			renderTargets(cmd.OutOrStdout(), listing)
			return nil
		},
	}
}
