package commands

import "github.com/spf13/cobra"

// RootCommand exposes the root cobra command for tests.
func RootCommand(c *CLI) *cobra.Command {
	return c.rootCmd
}
