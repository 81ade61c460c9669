package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spanforge/pkg/pipeline"
)

// connectCommand creates the connect command for full-connectivity runs.
func (c *CLI) connectCommand() *cobra.Command {
	var (
		fromURL string
		output  string
		asJSON  bool
		refresh bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "connect [points-file]",
		Short: "Merge pairs until the forest is fully connected",
		Long: `Merge pairs until the forest is fully connected.

The connect command reads one x,y,z point per line and merges pairs in
ascending squared-distance order until every point belongs to a single
component. It reports the completing edge: the merge that finished the job,
along with the product of its endpoints' X coordinates.

Results are cached locally for faster subsequent runs.

Examples:
  spanforge connect points.txt
  cat points.txt | spanforge connect -
  spanforge connect --from-url https://example.com/points.txt --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := c.readInput(cmd, args, fromURL, noCache)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(cmd, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			spinner := newSpinnerWithContext(cmd.Context(), "Connecting points...")
			spinner.Start()

			res, err := runner.Run(cmd.Context(), input, pipeline.Options{
				Mode:    pipeline.ModeConnect,
				Refresh: refresh,
				Logger:  c.Logger,
			})
			if err != nil {
				spinner.StopWithError("Construction failed")
				return err
			}
			spinner.Stop()

			if asJSON || output != "" {
				return writeResultJSON(res, output)
			}
			printConnectSummary(res)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromURL, "from-url", "", "fetch the point file from a URL")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the full result as JSON to a file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the result cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
