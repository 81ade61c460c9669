package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spanforge/pkg/geo"
	"github.com/matzehuels/spanforge/pkg/pipeline"
	"github.com/matzehuels/spanforge/pkg/render"
)

// Render format constants.
const (
	formatSVG = "svg"
	formatPNG = "png"
	formatPDF = "pdf"
	formatDOT = "dot"
)

// validRenderFormats is the set of supported render outputs.
var validRenderFormats = map[string]bool{
	formatSVG: true,
	formatPNG: true,
	formatPDF: true,
	formatDOT: true,
}

// renderCommand creates the render command for forest diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		mode       string
		k          int
		formatsStr string
		fromURL    string
		output     string
		detailed   bool
		scale      float64
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "render [points-file]",
		Short: "Render the constructed forest as a diagram",
		Long: `Render the constructed forest as a diagram.

The render command runs the construction pipeline and draws the resulting
forest with Graphviz. Points in the same component share a fill color, and
tree edges are labeled with their squared distance.

PNG and PDF output requires librsvg (rsvg-convert).

Examples:
  spanforge render points.txt                        # cluster mode, SVG
  spanforge render points.txt --mode connect -f png
  spanforge render points.txt -f svg,dot -o forest`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			for _, f := range formats {
				if !validRenderFormats[f] {
					return fmt.Errorf("invalid format: %q (must be one of: svg, png, pdf, dot)", f)
				}
			}
			if err := pipeline.ValidateMode(mode); err != nil {
				return err
			}

			input, err := c.readInput(cmd, args, fromURL, noCache)
			if err != nil {
				return err
			}
			return c.runRender(cmd, renderParams{
				input:    input,
				inputArg: firstArg(args),
				mode:     mode,
				k:        k,
				formats:  formats,
				output:   output,
				detailed: detailed,
				scale:    scale,
				noCache:  noCache,
			})
		},
	}

	cmd.Flags().StringVar(&mode, "mode", pipeline.ModeCluster, "construction mode: cluster (default), connect")
	cmd.Flags().IntVarP(&k, "budget", "k", 0, "number of closest pairs to merge (cluster mode)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, dot (comma-separated)")
	cmd.Flags().StringVar(&fromURL, "from-url", "", "fetch the point file from a URL")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include point coordinates in node labels")
	cmd.Flags().Float64Var(&scale, "scale", 2.0, "PNG scale factor")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// renderParams bundles everything runRender needs.
type renderParams struct {
	input    []byte
	inputArg string
	mode     string
	k        int
	formats  []string
	output   string
	detailed bool
	scale    float64
	noCache  bool
}

// runRender executes the pipeline and writes the requested diagram formats.
func (c *CLI) runRender(cmd *cobra.Command, p renderParams) error {
	runner, err := c.newRunner(cmd, p.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	if p.k == 0 {
		p.k = c.Config.Defaults.K
	}

	spinner := newSpinnerWithContext(cmd.Context(), "Constructing forest...")
	spinner.Start()

	res, err := runner.Run(cmd.Context(), p.input, pipeline.Options{
		Mode:   p.mode,
		K:      p.k,
		Logger: c.Logger,
	})
	if err != nil {
		spinner.StopWithError("Construction failed")
		return err
	}

	// The DOT layout needs the original coordinates and full component
	// membership; cached results carry only the tree, so replay it.
	points, err := geo.ParsePoints(bytes.NewReader(p.input))
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("parse points: %w", err)
	}
	forest, err := pipeline.RebuildForest(res)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}

	dot := render.ForestDOT(points, forest, render.Options{Detailed: p.detailed})

	artifacts := make(map[string][]byte, len(p.formats))
	for _, format := range p.formats {
		data, err := renderFormat(dot, format, p.scale)
		if err != nil {
			spinner.StopWithError("Render failed")
			return fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	spinner.Stop()

	printSuccess("Rendered %d components", res.Components)
	printStats(res.PointCount, res.EdgeCount, res.CacheHit)
	return writeArtifacts(artifacts, p.formats, p.inputArg, p.output)
}

// renderFormat produces one output format from the DOT source.
func renderFormat(dot, format string, scale float64) ([]byte, error) {
	switch format {
	case formatDOT:
		return []byte(dot), nil
	case formatSVG:
		return render.RenderSVG(dot)
	case formatPDF:
		return render.RenderPDF(dot)
	case formatPNG:
		return render.RenderPNG(dot, scale)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// writeArtifacts writes each rendered format to disk. With a single format
// and an explicit output path the file goes exactly there; otherwise paths
// derive from the base name plus the format extension.
func writeArtifacts(artifacts map[string][]byte, formats []string, inputArg, output string) error {
	base := artifactBase(inputArg, output)
	for _, format := range formats {
		path := base + "." + format
		if output != "" && len(formats) == 1 {
			path = output
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// artifactBase picks the output base path: explicit output first, then the
// input file's stem, then a generic fallback for stdin and URL inputs.
func artifactBase(inputArg, output string) string {
	if output != "" {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	if inputArg != "" && inputArg != "-" {
		return strings.TrimSuffix(inputArg, filepath.Ext(inputArg))
	}
	return "forest"
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	return strings.Split(s, ",")
}

// firstArg returns the first positional argument, or "".
func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
