package msf

// DisjointSet partitions the node indices 0..n-1 into components, supporting
// near-constant-time find and merge operations. It is backed by two plain
// arrays (parent and size, indexed by node) rather than pointer structures.
//
// The structure is an internal primitive: indices outside [0, n) are a
// programming error and panic via slice bounds rather than returning an
// error. Builders validate caller input before touching it.
//
// DisjointSet is not safe for concurrent use. Each construction run owns
// its forest exclusively.
type DisjointSet struct {
	parent []int // parent[i] == i at roots
	size   []int // component cardinality, valid only at roots
	count  int   // number of distinct components
}

// NewDisjointSet creates n singleton components, each its own root with
// size 1.
func NewDisjointSet(n int) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	return d
}

// Find returns the representative root of x's component. Visited nodes are
// repointed toward the root (path compression), so parent chains shrink
// with every call and amortized cost stays near-constant.
func (d *DisjointSet) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// Union merges the components containing a and b and reports whether a
// merge actually happened. The smaller component is attached under the
// larger one (size-based union), which bounds chain height. Returns false
// when a and b are already in the same component; sizes and the component
// count are left untouched in that case.
func (d *DisjointSet) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	d.count--
	return true
}

// Count returns the current number of distinct components. It starts at n
// and decreases by exactly one on each successful [DisjointSet.Union].
func (d *DisjointSet) Count() int { return d.count }

// Len returns the total number of nodes in the forest.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Sizes collects the cardinality of every current component, one entry per
// root. The order is unspecified. The sum of all entries always equals the
// total node count.
func (d *DisjointSet) Sizes() []int {
	sizes := make([]int, 0, d.count)
	for i, p := range d.parent {
		if p == i {
			sizes = append(sizes, d.size[i])
		}
	}
	return sizes
}
