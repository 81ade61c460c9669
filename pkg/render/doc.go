// Package render provides visualization rendering for spanning forests.
//
// # Overview
//
// This package turns a constructed forest back into something you can look
// at. It provides:
//
//   - DOT generation ([ForestDOT])
//   - In-process SVG rendering via Graphviz ([RenderSVG])
//   - Format conversion to PDF and PNG ([ToPDF], [ToPNG])
//
// # Usage
//
// Convert a construction result to DOT format, then render to SVG:
//
//	dot := render.ForestDOT(points, res, render.Options{})
//	svg, err := render.RenderSVG(dot)
//
// For PDF or PNG output, use the convenience wrappers:
//
//	pdf, err := render.RenderPDF(dot)
//	png, err := render.RenderPNG(dot, 2.0)  // 2x scale
//
// # DOT Format
//
// [ForestDOT] produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// Points in the same component share a fill color, so merge boundaries are
// visible at a glance. Tree edges carry their squared-distance weight as an
// edge label.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package render
