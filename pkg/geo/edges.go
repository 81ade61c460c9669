package geo

import "github.com/matzehuels/spanforge/pkg/msf"

// BuildEdges expands a point set into the complete candidate edge set: one
// edge per unordered pair, weighted by squared distance, endpoints as
// indices into points with A < B. The result holds n·(n-1)/2 edges.
func BuildEdges(points []Point) []msf.Edge {
	n := len(points)
	edges := make([]msf.Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, msf.Edge{
				Weight: Dist2(points[i], points[j]),
				A:      i,
				B:      j,
			})
		}
	}
	return edges
}
