package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/spanforge/pkg/geo"
	"github.com/matzehuels/spanforge/pkg/msf"
)

// Options configures forest diagram rendering.
type Options struct {
	// Detailed includes point coordinates in node labels.
	// When false, only the point index is shown.
	Detailed bool
}

// palette holds the component fill colors. Components are colored in
// discovery order (lowest point index first) and the palette wraps around
// when a forest has more components than colors.
var palette = []string{
	"#a6cee3", "#b2df8a", "#fb9a99", "#fdbf6f",
	"#cab2d6", "#ffff99", "#1f78b4", "#33a02c",
}

// ForestDOT converts a construction result to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF],
// or [RenderPNG].
//
// Points in the same component share a fill color; tree edges are labeled
// with their squared-distance weight.
func ForestDOT(points []geo.Point, res *msf.Result, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph forest {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=12];\n")
	buf.WriteString("  edge [fontsize=10, color=grey40];\n")
	buf.WriteString("\n")

	colors := componentColors(res.Forest)
	for i, p := range points {
		label := strconv.Itoa(i)
		if opts.Detailed {
			label = fmt.Sprintf("%d\n(%s)", i, p)
		}
		fmt.Fprintf(&buf, "  %d [label=%q, fillcolor=%q];\n", i, label, colors[i])
	}

	buf.WriteString("\n")
	for _, e := range res.Tree {
		fmt.Fprintf(&buf, "  %d -- %d [label=\"%d\"];\n", e.A, e.B, e.Weight)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// componentColors assigns each point the palette color of its component.
func componentColors(forest *msf.DisjointSet) []string {
	colors := make([]string, forest.Len())
	byRoot := make(map[int]string)
	for i := range colors {
		root := forest.Find(i)
		c, ok := byRoot[root]
		if !ok {
			c = palette[len(byRoot)%len(palette)]
			byRoot[root] = c
		}
		colors[i] = c
	}
	return colors
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [ToPDF] or [ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return ToPNG(svg, scale)
}
