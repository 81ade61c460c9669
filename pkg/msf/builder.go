package msf

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidEdge is returned by [Merge] and [Connect] when an edge
	// references a node index outside [0, n) or connects a node to itself.
	// This indicates a caller bug, not a runtime condition to recover from.
	ErrInvalidEdge = errors.New("edge endpoints must be distinct indices in [0, n)")

	// ErrDisconnected is returned by [Connect] when the edge set cannot
	// connect all n nodes: the scan exhausts every edge while more than one
	// component remains. This is a normal, expected outcome for sparse
	// inputs and is always distinguishable from a successful result.
	ErrDisconnected = errors.New("graph never fully connects")

	// ErrTooFewComponents is returned by [Top3Product] when fewer than
	// three components exist. The surrounding problem guarantees this
	// cannot occur for well-formed input, so the core fails fast rather
	// than guessing a default.
	ErrTooFewComponents = errors.New("need at least 3 components")
)

// Result captures the outcome of a forest construction run: the final
// disjoint-set state plus every edge whose union actually merged two
// components, in application order.
type Result struct {
	// Forest is the disjoint-set state after the run. It is exclusively
	// owned by this result and never mutated again.
	Forest *DisjointSet

	// Tree holds the accepted (merging) edges in the order they were
	// applied. Edges that would have formed a cycle are absent.
	Tree []Edge
}

// Completing returns the edge whose union reduced the component count from
// 2 to 1, i.e. the last accepted edge of a [Connect] run. ok is false when
// no merge ever happened (single-node or empty forests).
func (r *Result) Completing() (Edge, bool) {
	if len(r.Tree) == 0 {
		return Edge{}, false
	}
	return r.Tree[len(r.Tree)-1], true
}

// Merge drives a fresh n-node forest over a fixed edge set, in the given
// order. Redundant unions are expected and harmless - they represent edges
// that would have formed a cycle within the already-selected set. The edge
// set is consumed in full; use [Connect] to stop at full connectivity.
//
// Returns ErrInvalidEdge if any edge fails validation. An empty edge set is
// valid and leaves the forest at n singleton components.
func Merge(edges []Edge, n int) (*Result, error) {
	if err := validateEdges(edges, n); err != nil {
		return nil, err
	}
	res := &Result{Forest: NewDisjointSet(n)}
	for _, e := range edges {
		if res.Forest.Union(e.A, e.B) {
			res.Tree = append(res.Tree, e)
		}
	}
	return res, nil
}

// Connect drives a fresh n-node forest over the candidate edges in
// ascending (Weight, A, B) order, stopping as soon as a single component
// remains. The endpoint tie-break makes the completing edge deterministic
// even when several equal-weight edges could finish the job: the first one
// in that total order wins.
//
// The input slice is not modified; Connect sorts an internal copy. Unlike
// [Merge], every candidate edge may matter here, so the full set is sorted.
//
// Returns ErrInvalidEdge on malformed input, or ErrDisconnected when the
// scan exhausts all edges with more than one component left. A forest with
// n <= 1 is trivially connected and yields an empty tree.
func Connect(edges []Edge, n int) (*Result, error) {
	if err := validateEdges(edges, n); err != nil {
		return nil, err
	}

	ordered := slices.Clone(edges)
	slices.SortFunc(ordered, compareEdges)

	res := &Result{Forest: NewDisjointSet(n)}
	for _, e := range ordered {
		if res.Forest.Union(e.A, e.B) {
			res.Tree = append(res.Tree, e)
			if res.Forest.Count() == 1 {
				break
			}
		}
	}
	if res.Forest.Count() > 1 {
		return nil, ErrDisconnected
	}
	return res, nil
}

// Top3Product multiplies the three largest component sizes. A single pass
// tracks the running top three, so the size list is never sorted. Ties
// among equal sizes break arbitrarily - multiplication is commutative.
//
// Returns ErrTooFewComponents when fewer than three sizes are given.
func Top3Product(sizes []int) (uint64, error) {
	if len(sizes) < 3 {
		return 0, fmt.Errorf("%w, have %d", ErrTooFewComponents, len(sizes))
	}
	var a, b, c int
	for _, s := range sizes {
		switch {
		case s >= a:
			a, b, c = s, a, b
		case s >= b:
			b, c = s, b
		case s > c:
			c = s
		}
	}
	return uint64(a) * uint64(b) * uint64(c), nil
}

// validateEdges checks every endpoint against [0, n) and rejects
// self-loops. The offending edge position is included for debuggability.
func validateEdges(edges []Edge, n int) error {
	for i, e := range edges {
		if e.A < 0 || e.A >= n || e.B < 0 || e.B >= n || e.A == e.B {
			return fmt.Errorf("edge %d (%d-%d): %w", i, e.A, e.B, ErrInvalidEdge)
		}
	}
	return nil
}
