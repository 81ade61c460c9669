// Package msf builds minimum spanning forests over static edge sets.
//
// The package is a pure computational core: callers own parsing and
// presentation, and hand in a finite collection of weighted edges between
// integer node indices. Two construction policies are supported:
//
//   - [Merge] consumes a fixed edge set (typically the K smallest, from
//     [SelectSmallest]) and reports the resulting component structure.
//   - [Connect] consumes edges in ascending weight order until the graph
//     is fully connected and reports the edge that completed connectivity.
//
// # Usage
//
// Cluster using only the 1000 shortest candidate edges:
//
//	shortest := msf.SelectSmallest(edges, 1000)
//	res, err := msf.Merge(shortest, n)
//	if err != nil {
//	    return err
//	}
//	product, err := msf.Top3Product(res.Forest.Sizes())
//
// Find the edge that makes the graph fully connected:
//
//	res, err := msf.Connect(edges, n)
//	if errors.Is(err, msf.ErrDisconnected) {
//	    // the input graph cannot be connected
//	}
//	last, _ := res.Completing()
//
// All operations are deterministic, in-memory and single-threaded. A fresh
// [DisjointSet] is created per run; nothing is shared between runs.
package msf
