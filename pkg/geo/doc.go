// Package geo parses 3D point sets and expands them into weighted
// candidate edges for forest construction.
//
// Input is plain text, one comma-separated x,y,z triple per line. Edge
// weights are squared Euclidean distances: the square root is never taken,
// since only the relative order of weights matters downstream and integer
// arithmetic avoids float comparisons entirely.
//
// The candidate set is the complete graph over the points - O(n²) edges by
// explicit contract. Spatial indexing to prune candidates is out of scope.
package geo
