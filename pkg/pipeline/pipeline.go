// Package pipeline provides the core construction pipeline for Spanforge.
//
// This package implements the complete parse → select → merge pipeline that
// can be used by CLI and API components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Decode the raw point input into 3D points
//  2. Select: Build the complete pairwise edge set and, in cluster mode,
//     narrow it to the K smallest edges
//  3. Merge: Drive a disjoint-set forest over the selected edges
//
// The merge stage runs in one of two modes. Cluster mode consumes a fixed
// edge budget and summarizes the resulting partition. Connect mode keeps
// merging until a single component remains and reports the completing edge.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Mode: pipeline.ModeCluster,
//	    K:    1000,
//	}
//	result, err := runner.Run(ctx, input, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Top3Product)
package pipeline

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/spanforge/pkg/cache"
	"github.com/matzehuels/spanforge/pkg/msf"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultK is the default edge budget for cluster mode. Large enough to
	// produce meaningful partitions on typical inputs while keeping the
	// selection cheap; both CLI and API can override it.
	DefaultK = 1000

	// MaxPoints caps the input size. The edge build is quadratic in the
	// point count, so this bounds a run at roughly 50M candidate edges.
	MaxPoints = 10_000
)

// ErrTooManyPoints is returned by [Runner.Run] when the input exceeds
// MaxPoints.
var ErrTooManyPoints = errors.New("too many points")

// Mode constants for the merge stage.
const (
	ModeCluster = "cluster"
	ModeConnect = "connect"
)

// ValidModes is the set of supported construction modes.
var ValidModes = map[string]bool{
	ModeCluster: true,
	ModeConnect: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the construction pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Mode selects the merge strategy: ModeCluster or ModeConnect.
	Mode string `json:"mode"`

	// K is the edge budget for cluster mode. Zero means DefaultK.
	// Connect mode ignores K entirely.
	K int `json:"k,omitempty"`

	// Refresh bypasses the cache and recomputes the result.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateMode checks that a mode is valid.
func ValidateMode(mode string) error {
	if !ValidModes[mode] {
		return fmt.Errorf("invalid mode: %q (must be one of: cluster, connect)", mode)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := ValidateMode(o.Mode); err != nil {
		return err
	}
	if o.K < 0 {
		return fmt.Errorf("invalid k: %d (must be positive)", o.K)
	}
	if o.K == 0 {
		o.K = DefaultK
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ResultKeyOpts returns cache key options for this run. Connect mode drops
// K from the key: the budget plays no role there, so all connect runs over
// the same input share one cache entry.
func (o *Options) ResultKeyOpts() cache.ResultKeyOpts {
	opts := cache.ResultKeyOpts{Mode: o.Mode}
	if o.Mode == ModeCluster {
		opts.K = o.K
	}
	return opts
}

// =============================================================================
// Result Types
// =============================================================================

// TreeEdge is a serializable accepted edge. Weights are squared distances.
type TreeEdge struct {
	A      int   `json:"a"`
	B      int   `json:"b"`
	Weight int64 `json:"weight"`
}

// CompletingEdge describes the edge that reduced the forest to a single
// component in connect mode.
type CompletingEdge struct {
	A      int   `json:"a"`
	B      int   `json:"b"`
	Weight int64 `json:"weight"`

	// XProduct is the product of the X coordinates of the two endpoints,
	// the canonical fingerprint of a connect run.
	XProduct int64 `json:"x_product"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this run, cache hits included.
	RunID string `json:"run_id"`

	// Mode is the construction mode that produced this result.
	Mode string `json:"mode"`

	// PointCount and EdgeCount describe the input.
	PointCount int `json:"point_count"`
	EdgeCount  int `json:"edge_count"`

	// K is the applied edge budget. Zero for connect mode.
	K int `json:"k,omitempty"`

	// Components is the number of components after the merge stage.
	Components int `json:"components"`

	// Top3Product is the product of the three largest component sizes.
	// Cluster mode only.
	Top3Product uint64 `json:"top3_product,omitempty"`

	// Completing is the edge that achieved full connectivity.
	// Connect mode only.
	Completing *CompletingEdge `json:"completing,omitempty"`

	// Tree holds the accepted edges in application order.
	Tree []TreeEdge `json:"tree"`

	// Stats contains timing information. Not cached.
	Stats Stats `json:"stats"`

	// CacheHit reports whether the result came from the cache.
	CacheHit bool `json:"cache_hit"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ParseTime  string `json:"parse_time"`
	SelectTime string `json:"select_time"`
	MergeTime  string `json:"merge_time"`
}

// RebuildForest reconstructs the disjoint-set state from a result's tree.
// Cached results carry only the accepted edges, so renderers and other
// consumers that need component membership replay them here.
func RebuildForest(res *Result) (*msf.Result, error) {
	edges := make([]msf.Edge, len(res.Tree))
	for i, e := range res.Tree {
		edges[i] = msf.Edge{Weight: e.Weight, A: e.A, B: e.B}
	}
	rebuilt, err := msf.Merge(edges, res.PointCount)
	if err != nil {
		return nil, fmt.Errorf("rebuild forest: %w", err)
	}
	return rebuilt, nil
}
