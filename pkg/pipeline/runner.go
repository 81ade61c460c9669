package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/spanforge/pkg/cache"
	"github.com/matzehuels/spanforge/pkg/geo"
	"github.com/matzehuels/spanforge/pkg/msf"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Run executes the complete parse → select → merge pipeline with caching.
//
// The input is the raw point file (one "x,y,z" triple per line). Results
// are cached by the content hash of the input plus the mode and budget, so
// repeated runs over identical inputs skip the quadratic edge build.
func (r *Runner) Run(ctx context.Context, input []byte, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	// Stage 1: Parse
	parseStart := time.Now()
	points, err := geo.ParsePoints(bytes.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(points) > MaxPoints {
		return nil, fmt.Errorf("parse: %d points exceeds limit of %d: %w", len(points), MaxPoints, ErrTooManyPoints)
	}
	parseTime := time.Since(parseStart)

	r.Logger.Info("parsed points", "count", len(points), "duration", parseTime)

	cacheKey := r.Keyer.ResultKey(cache.Hash(input), opts.ResultKeyOpts())
	if !opts.Refresh {
		if res, ok := r.lookup(ctx, cacheKey); ok {
			res.Stats.ParseTime = parseTime.String()
			r.Logger.Info("result from cache", "mode", opts.Mode, "run_id", res.RunID)
			return res, nil
		}
	}

	// Stage 2: Select
	selectStart := time.Now()
	edges := geo.BuildEdges(points)
	candidates := edges
	if opts.Mode == ModeCluster {
		candidates = msf.SelectSmallest(edges, opts.K)
	}
	selectTime := time.Since(selectStart)

	r.Logger.Info("selected edges",
		"total", len(edges),
		"candidates", len(candidates),
		"duration", selectTime)

	// Stage 3: Merge
	mergeStart := time.Now()
	res, err := r.merge(points, candidates, opts)
	if err != nil {
		return nil, err
	}
	mergeTime := time.Since(mergeStart)

	res.RunID = uuid.NewString()
	res.PointCount = len(points)
	res.EdgeCount = len(edges)
	res.Stats = Stats{
		ParseTime:  parseTime.String(),
		SelectTime: selectTime.String(),
		MergeTime:  mergeTime.String(),
	}

	r.Logger.Info("merged forest",
		"mode", opts.Mode,
		"components", res.Components,
		"tree_edges", len(res.Tree),
		"duration", mergeTime)

	r.store(ctx, cacheKey, res)
	return res, nil
}

// merge runs the mode-specific forest construction and summarization.
func (r *Runner) merge(points []geo.Point, candidates []msf.Edge, opts Options) (*Result, error) {
	res := &Result{Mode: opts.Mode}

	switch opts.Mode {
	case ModeCluster:
		built, err := msf.Merge(candidates, len(points))
		if err != nil {
			return nil, fmt.Errorf("merge: %w", err)
		}
		product, err := msf.Top3Product(built.Forest.Sizes())
		if err != nil {
			return nil, fmt.Errorf("merge: %w", err)
		}
		res.K = opts.K
		res.Components = built.Forest.Count()
		res.Top3Product = product
		res.Tree = treeEdges(built.Tree)

	case ModeConnect:
		built, err := msf.Connect(candidates, len(points))
		if err != nil {
			return nil, fmt.Errorf("connect: %w", err)
		}
		res.Components = built.Forest.Count()
		res.Tree = treeEdges(built.Tree)
		if e, ok := built.Completing(); ok {
			res.Completing = &CompletingEdge{
				A:        e.A,
				B:        e.B,
				Weight:   e.Weight,
				XProduct: int64(points[e.A].X) * int64(points[e.B].X),
			}
		}
	}

	return res, nil
}

// lookup fetches and decodes a cached result. Decode failures are treated
// as misses; the entry is simply recomputed and overwritten.
func (r *Runner) lookup(ctx context.Context, key string) (*Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		return nil, false
	}
	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, false
	}
	res.RunID = uuid.NewString()
	res.CacheHit = true
	return &res, true
}

// store caches a result. Run-specific fields (id, timings, hit flag) are
// stripped so cached bytes depend only on the computation itself. Cache
// write failures are logged and ignored.
func (r *Runner) store(ctx context.Context, key string, res *Result) {
	cached := *res
	cached.RunID = ""
	cached.Stats = Stats{}
	cached.CacheHit = false

	data, err := json.Marshal(&cached)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLResult); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
	}
}

// treeEdges converts accepted edges to their serializable form.
func treeEdges(tree []msf.Edge) []TreeEdge {
	out := make([]TreeEdge, len(tree))
	for i, e := range tree {
		out[i] = TreeEdge{A: e.A, B: e.B, Weight: e.Weight}
	}
	return out
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
