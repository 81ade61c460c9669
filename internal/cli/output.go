package cli

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/spanforge/pkg/pipeline"
)

// writeResultJSON writes the full result as indented JSON to path (stdout
// if empty).
func writeResultJSON(res *pipeline.Result, path string) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// printClusterSummary prints the human-readable cluster outcome.
func printClusterSummary(res *pipeline.Result) {
	printSuccess("Merged %s closest pairs into %s components",
		StyleNumber.Render(fmt.Sprintf("%d", res.K)),
		StyleNumber.Render(fmt.Sprintf("%d", res.Components)))
	printStats(res.PointCount, res.EdgeCount, res.CacheHit)
	printKeyValue("tree edges", fmt.Sprintf("%d", len(res.Tree)))
	printKeyValue("top-3 product", fmt.Sprintf("%d", res.Top3Product))
}

// printConnectSummary prints the human-readable connect outcome.
func printConnectSummary(res *pipeline.Result) {
	printSuccess("Connected %s points with %s merges",
		StyleNumber.Render(fmt.Sprintf("%d", res.PointCount)),
		StyleNumber.Render(fmt.Sprintf("%d", len(res.Tree))))
	printStats(res.PointCount, res.EdgeCount, res.CacheHit)
	if res.Completing != nil {
		printKeyValue("final edge", fmt.Sprintf("%d %s %d", res.Completing.A, iconArrow, res.Completing.B))
		printKeyValue("distance²", fmt.Sprintf("%d", res.Completing.Weight))
		printKeyValue("x product", fmt.Sprintf("%d", res.Completing.XProduct))
	}
}
