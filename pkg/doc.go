// Package pkg provides the core libraries for Spanforge minimum-spanning-forest
// construction.
//
// # Overview
//
// Spanforge turns clouds of 3D points into minimum-spanning forests by
// repeatedly merging the closest pairs. The pkg directory is organized into
// five main areas:
//
//  1. [msf] - Forest construction (disjoint sets, edge selection, merging)
//  2. [geo] - Point parsing and pairwise distance computation
//  3. [pipeline] - Orchestration (parse → select → merge) with result caching
//  4. [render] - Graphviz visualization of constructed forests
//  5. [api] - HTTP API exposing the pipeline
//
// # Architecture
//
// The typical data flow through Spanforge:
//
//	Point list ("x,y,z" per line)
//	         ↓
//	    [geo] package (parse points, build candidate edges)
//	         ↓
//	    [msf] package (select K smallest, merge into forest)
//	         ↓
//	    [pipeline] package (assemble and cache the result)
//	         ↓
//	    CLI summary / JSON / SVG/PNG/PDF output
//
// # Quick Start
//
// Run the full pipeline against an in-memory point list:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/spanforge/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, err := runner.Run(context.Background(), input, pipeline.Options{
//	    Mode: pipeline.ModeCluster,
//	    K:    1000,
//	})
//
// Or use the building blocks directly:
//
//	points, _ := geo.ParsePoints(r)
//	edges := geo.BuildEdges(points)
//	closest := msf.SelectSmallest(edges, 1000)
//	forest, _ := msf.Merge(len(points), closest)
//
// # Main Packages
//
// [msf] - Minimum-spanning-forest construction. Disjoint-set forest with path
// compression and size-based union, bounded K-smallest edge selection via
// quickselect, and the two merge strategies (bounded cluster merge and
// full-connectivity scan).
//
// [geo] - 3D integer points. Parses "x,y,z" lines, computes squared Euclidean
// distances, and expands a point list into the complete candidate edge set.
//
// [pipeline] - Complete construction pipeline (parse → select → merge) used by
// CLI and API. Ensures consistent behavior across all entry points and caches
// results keyed by input content and options.
//
// [render] - Forest visualization via Graphviz with format conversion
// (SVG to PDF/PNG).
//
// [api] - HTTP handlers and server lifecycle for the construction endpoints.
//
// ## Infrastructure
//
// [cache] - Pluggable result and HTTP caches: file-backed for the CLI,
// Redis and MongoDB for server deployments, and a no-op null cache.
//
// [httputil] - HTTP fetching with retry, exponential backoff, and transparent
// response caching for URL point sources.
//
// [errors] - Coded errors shared by the CLI and API so failures map cleanly
// onto exit codes and HTTP statuses.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/msf/...      # Specific package
//	go test -run Example       # Examples only
//
// [msf]: https://pkg.go.dev/github.com/matzehuels/spanforge/pkg/msf
// [geo]: https://pkg.go.dev/github.com/matzehuels/spanforge/pkg/geo
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/spanforge/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/matzehuels/spanforge/pkg/render
// [api]: https://pkg.go.dev/github.com/matzehuels/spanforge/pkg/api
// [cache]: https://pkg.go.dev/github.com/matzehuels/spanforge/pkg/cache
// [httputil]: https://pkg.go.dev/github.com/matzehuels/spanforge/pkg/httputil
// [errors]: https://pkg.go.dev/github.com/matzehuels/spanforge/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/spanforge/pkg/buildinfo
package pkg
