// Package symmatrix provides compressed triangular storage for a square
// symmetric matrix of int64 values.
//
// Only the lower triangle (diagonal included) of an n×n matrix is stored,
// n(n+1)/2 cells in a flat slice. Both (r,c) and (c,r) normalize to the
// same cell, which makes the symmetry guarantee structural:
// Get(r,c) == Get(c,r) always, because there is only one cell to read.
//
// FromMatrix validates its input: non-square input is rejected with
// ErrNonSquare, asymmetric input with ErrAsymmetry. Folding an asymmetric
// matrix into triangular storage would silently discard half of it.
package symmatrix
