package msf

import (
	"math/rand"
	"slices"
	"testing"
)

// randomEdges builds a connected candidate set: a spanning chain plus
// random extras, mirroring the dense O(V²) inputs this package is fed.
func randomEdges(n, m int, seed int64) []Edge {
	rng := rand.New(rand.NewSource(seed))
	edges := make([]Edge, 0, m)
	for i := 1; i < n; i++ {
		edges = append(edges, Edge{Weight: rng.Int63n(1 << 30), A: i - 1, B: i})
	}
	for len(edges) < m {
		a, b := rng.Intn(n), rng.Intn(n)
		if a == b {
			continue
		}
		edges = append(edges, Edge{Weight: rng.Int63n(1 << 30), A: a, B: b})
	}
	return edges
}

func BenchmarkSelectSmallest(b *testing.B) {
	edges := randomEdges(500, 100_000, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SelectSmallest(slices.Clone(edges), 1000)
	}
}

func BenchmarkConnect(b *testing.B) {
	edges := randomEdges(500, 100_000, 2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Connect(edges, 500); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnionFind(b *testing.B) {
	edges := randomEdges(10_000, 50_000, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := NewDisjointSet(10_000)
		for _, e := range edges {
			d.Union(e.A, e.B)
		}
	}
}
