package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pmk/internal/app"
)

// probeResult is the JSON form of a probe.
type probeResult struct {
	app.Probe

	Available bool   `json:"ok"`
	Error     string `json:"error,omitempty"`
}

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that compilers and packages are available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			probes, err := c.app.Check(cmd.Context())
			if probes == nil {
				return err
			}
			if c.json {
				results := make([]probeResult, 0, len(probes))
				for _, p := range probes {
					r := probeResult{Probe: p, Available: p.OK()}
					if p.Err != nil {
						r.Error = p.Err.Error()
					}
					results = append(results, r)
				}
				if werr := writeJSON(cmd.OutOrStdout(), results); werr != nil {
					return werr
				}
				return err
			}
			renderProbes(cmd.OutOrStdout(), probes)
			return err
		},
	}
}
