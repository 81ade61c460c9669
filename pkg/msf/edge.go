package msf

import "cmp"

// Edge is a weighted, undirected connection between two node indices.
// Weight is a monotonic proxy for distance (e.g., squared Euclidean
// distance) - only relative order matters, never the absolute scale.
// Edges are value types: freely copyable and never mutated by this package
// beyond reordering slices handed to [SelectSmallest].
type Edge struct {
	Weight int64 // non-negative comparison key
	A, B   int   // endpoint node indices, A != B
}

// compareEdges orders edges by (Weight, A, B). The endpoint tie-break makes
// runs over equal-weight edges deterministic regardless of input order.
func compareEdges(x, y Edge) int {
	if c := cmp.Compare(x.Weight, y.Weight); c != 0 {
		return c
	}
	if c := cmp.Compare(x.A, y.A); c != 0 {
		return c
	}
	return cmp.Compare(x.B, y.B)
}
