package msf

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

func TestConnectReportsCompletingEdge(t *testing.T) {
	// Chain 0-1-2-3 plus a heavy shortcut that must never be accepted.
	edges := []Edge{
		{Weight: 10, A: 0, B: 3},
		{Weight: 3, A: 2, B: 3},
		{Weight: 1, A: 0, B: 1},
		{Weight: 2, A: 1, B: 2},
	}

	res, err := Connect(edges, 4)
	if err != nil {
		t.Fatalf("Connect error: %v", err)
	}

	last, ok := res.Completing()
	if !ok {
		t.Fatal("Completing reported no merging edge")
	}
	if last.A != 2 || last.B != 3 || last.Weight != 3 {
		t.Errorf("completing edge = %d-%d (w=%d), want 2-3 (w=3)", last.A, last.B, last.Weight)
	}
	if res.Forest.Count() != 1 {
		t.Errorf("Count = %d, want 1", res.Forest.Count())
	}
	if len(res.Tree) != 3 {
		t.Errorf("tree has %d edges, want 3", len(res.Tree))
	}
}

func TestConnectDisconnectedInput(t *testing.T) {
	// Two separate groups, no cross edges.
	edges := []Edge{
		{Weight: 1, A: 0, B: 1},
		{Weight: 2, A: 2, B: 3},
	}

	res, err := Connect(edges, 4)
	if !errors.Is(err, ErrDisconnected) {
		t.Fatalf("err = %v, want ErrDisconnected", err)
	}
	if res != nil {
		t.Error("disconnected scan must not return a stale result")
	}
}

func TestConnectTrivialForests(t *testing.T) {
	for _, n := range []int{0, 1} {
		res, err := Connect(nil, n)
		if err != nil {
			t.Fatalf("Connect(nil, %d) error: %v", n, err)
		}
		if _, ok := res.Completing(); ok {
			t.Errorf("n=%d: Completing reported an edge for a trivial forest", n)
		}
	}
}

func TestConnectTieBreakIsDeterministic(t *testing.T) {
	// Both weight-5 edges could complete connectivity; (1,2) wins the
	// (Weight, A, B) order whatever the input permutation.
	edges := []Edge{
		{Weight: 5, A: 1, B: 2},
		{Weight: 5, A: 0, B: 2},
		{Weight: 1, A: 0, B: 1},
	}

	perms := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, p := range perms {
		shuffled := []Edge{edges[p[0]], edges[p[1]], edges[p[2]]}
		res, err := Connect(shuffled, 3)
		if err != nil {
			t.Fatalf("perm %v: %v", p, err)
		}
		last, _ := res.Completing()
		if last.A != 1 || last.B != 2 {
			t.Errorf("perm %v: completing edge = %d-%d, want 1-2", p, last.A, last.B)
		}
	}
}

func TestMergeBoundedEdgeSet(t *testing.T) {
	// The three lightest edges connect {0,1,2,3} and leave 4 isolated.
	edges := []Edge{
		{Weight: 1, A: 0, B: 1},
		{Weight: 2, A: 1, B: 2},
		{Weight: 3, A: 2, B: 3},
	}

	res, err := Merge(edges, 5)
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}

	sizes := res.Forest.Sizes()
	slices.Sort(sizes)
	if !slices.Equal(sizes, []int{1, 4}) {
		t.Fatalf("sizes = %v, want [1 4]", sizes)
	}

	// Two components cannot produce a top-3 product; this is a caller
	// contract violation, never a silently computed value.
	if _, err := Top3Product(sizes); !errors.Is(err, ErrTooFewComponents) {
		t.Errorf("Top3Product err = %v, want ErrTooFewComponents", err)
	}
}

func TestMergeIgnoresRedundantEdges(t *testing.T) {
	edges := []Edge{
		{Weight: 1, A: 0, B: 1},
		{Weight: 2, A: 1, B: 0}, // cycle within the selected set
		{Weight: 3, A: 1, B: 2},
	}

	res, err := Merge(edges, 4)
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}
	if len(res.Tree) != 2 {
		t.Errorf("tree has %d edges, want 2", len(res.Tree))
	}
	if res.Forest.Count() != 2 {
		t.Errorf("Count = %d, want 2", res.Forest.Count())
	}
}

func TestMergeEmptyEdgeSet(t *testing.T) {
	res, err := Merge(nil, 6)
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}
	if res.Forest.Count() != 6 {
		t.Errorf("Count = %d, want 6 singletons", res.Forest.Count())
	}
}

func TestMergeTieOrderDoesNotAffectSizes(t *testing.T) {
	// All edges share one weight; whatever permutation is applied, the
	// final component structure (and thus the top-3 product) is identical.
	edges := []Edge{
		{Weight: 4, A: 0, B: 1},
		{Weight: 4, A: 1, B: 2},
		{Weight: 4, A: 3, B: 4},
		{Weight: 4, A: 5, B: 6},
		{Weight: 4, A: 0, B: 2}, // redundant under any order
	}

	rng := rand.New(rand.NewSource(7))
	var want uint64
	for trial := 0; trial < 20; trial++ {
		shuffled := slices.Clone(edges)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		res, err := Merge(shuffled, 8)
		if err != nil {
			t.Fatalf("trial %d: %v", trial, err)
		}
		got, err := Top3Product(res.Forest.Sizes())
		if err != nil {
			t.Fatalf("trial %d: %v", trial, err)
		}
		if trial == 0 {
			want = got
			continue
		}
		if got != want {
			t.Fatalf("trial %d: product = %d, want %d", trial, got, want)
		}
	}
}

func TestBuildersRejectInvalidEdges(t *testing.T) {
	cases := []struct {
		name string
		edge Edge
	}{
		{"self loop", Edge{Weight: 1, A: 0, B: 0}},
		{"negative endpoint", Edge{Weight: 1, A: -1, B: 1}},
		{"endpoint past n", Edge{Weight: 1, A: 0, B: 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Merge([]Edge{tc.edge}, 3); !errors.Is(err, ErrInvalidEdge) {
				t.Errorf("Merge err = %v, want ErrInvalidEdge", err)
			}
			if _, err := Connect([]Edge{tc.edge}, 3); !errors.Is(err, ErrInvalidEdge) {
				t.Errorf("Connect err = %v, want ErrInvalidEdge", err)
			}
		})
	}
}

func TestConnectLeavesInputUntouched(t *testing.T) {
	edges := []Edge{
		{Weight: 9, A: 0, B: 1},
		{Weight: 1, A: 1, B: 2},
	}
	snapshot := slices.Clone(edges)

	if _, err := Connect(edges, 3); err != nil {
		t.Fatalf("Connect error: %v", err)
	}
	if !slices.Equal(edges, snapshot) {
		t.Error("Connect reordered the caller's slice")
	}
}

func TestTop3Product(t *testing.T) {
	cases := []struct {
		name  string
		sizes []int
		want  uint64
	}{
		{"exactly three", []int{2, 3, 4}, 24},
		{"picks largest", []int{1, 5, 2, 4, 3}, 60},
		{"equal sizes", []int{3, 3, 3, 3}, 27},
		{"singletons", []int{1, 1, 1}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Top3Product(tc.sizes)
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if got != tc.want {
				t.Errorf("product = %d, want %d", got, tc.want)
			}
		})
	}
}
