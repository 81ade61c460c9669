package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spanforge/pkg/pipeline"
)

// clusterCommand creates the cluster command for bounded merge runs.
func (c *CLI) clusterCommand() *cobra.Command {
	var (
		k       int
		fromURL string
		output  string
		asJSON  bool
		refresh bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "cluster [points-file]",
		Short: "Merge the K closest pairs and summarize the components",
		Long: `Merge the K closest pairs and summarize the components.

The cluster command reads one x,y,z point per line, finds the K closest
pairs by squared Euclidean distance, and merges them into a forest. The
summary reports the component count and the product of the three largest
component sizes.

Results are cached locally for faster subsequent runs.

Examples:
  spanforge cluster points.txt                # default budget
  spanforge cluster points.txt -k 50          # custom budget
  cat points.txt | spanforge cluster -        # stdin
  spanforge cluster --from-url https://example.com/points.txt`,
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

			if k == 0 {
				k = c.Config.Defaults.K
			}

			spinner := newSpinnerWithContext(cmd.Context(), "Merging closest pairs...")
			spinner.Start()

			res, err := runner.Run(cmd.Context(), input, pipeline.Options{
				Mode:    pipeline.ModeCluster,
				K:       k,
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
			printClusterSummary(res)
			if len(args) == 1 && args[0] != "-" {
				printNextStep("Inspect components", fmt.Sprintf("%s browse %s -k %d", appName, args[0], k))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&k, "budget", "k", 0, "number of closest pairs to merge (default from config)")
	cmd.Flags().StringVar(&fromURL, "from-url", "", "fetch the point file from a URL")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the full result as JSON to a file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the result cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
