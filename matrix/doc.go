// Package matrix provides a small dense float64 matrix used as the
// transition-cost representation consumed by the order package's 2-opt
// refinement: a square table of pairwise distances between cell entry/exit
// points, stored flat for cache-friendly repeated lookups.
//
//	dm, _ := matrix.NewDense(n, n)
//	dm.Set(i, j, dist)
//	v, _ := dm.At(i, j)
package matrix
