package msf

import "slices"

// SelectSmallest reorders edges so that the k lowest-weight edges occupy
// the front of the slice, and returns that prefix sorted ascending by
// (Weight, A, B). The remainder of the slice is left in unspecified order;
// callers that need the original ordering must pass a copy.
//
// The k smallest are isolated with quickselect-style partitioning, so only
// the k-element prefix is ever fully sorted - the full collection never
// pays an O(M log M) sort. Ties in weight may land on either side of the
// cut; downstream union-find consumers are insensitive to tie order because
// redundant unions are no-ops.
//
// k <= 0 returns an empty slice. k >= len(edges) degenerates to a full sort.
func SelectSmallest(edges []Edge, k int) []Edge {
	if k <= 0 || len(edges) == 0 {
		return []Edge{}
	}
	if k >= len(edges) {
		slices.SortFunc(edges, compareEdges)
		return edges
	}
	partialSelect(edges, k)
	prefix := edges[:k]
	slices.SortFunc(prefix, compareEdges)
	return prefix
}

// partialSelect reorders edges in place so the k smallest by weight occupy
// positions [0, k). Order within each side of the cut is unspecified.
// Iterative quickselect: narrow the partition window until a pivot settles
// at index k-1.
func partialSelect(edges []Edge, k int) {
	lo, hi := 0, len(edges)-1
	for lo < hi {
		p := partition(edges, lo, hi)
		switch {
		case p == k-1:
			return
		case p < k-1:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
}

// partition picks a median-of-three pivot and splits edges[lo:hi+1] around
// it, returning the pivot's final index. Elements strictly lighter than the
// pivot end up on its left.
func partition(edges []Edge, lo, hi int) int {
	mid := lo + (hi-lo)/2
	if edges[mid].Weight < edges[lo].Weight {
		edges[lo], edges[mid] = edges[mid], edges[lo]
	}
	if edges[hi].Weight < edges[lo].Weight {
		edges[lo], edges[hi] = edges[hi], edges[lo]
	}
	if edges[mid].Weight < edges[hi].Weight {
		edges[mid], edges[hi] = edges[hi], edges[mid]
	}
	// Median now sits at hi and serves as the pivot.
	pivot := edges[hi].Weight
	i := lo
	for j := lo; j < hi; j++ {
		if edges[j].Weight < pivot {
			edges[i], edges[j] = edges[j], edges[i]
			i++
		}
	}
	edges[i], edges[hi] = edges[hi], edges[i]
	return i
}
