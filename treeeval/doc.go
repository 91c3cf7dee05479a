// Package treeeval evaluates one completed common spanning tree: it builds
// the two (nnum)×(nnum-1) signed incidence matrices (one per graph), takes
// their determinants by integer Gauss elimination, and folds the
// contributing edges' values and symbols into a single monomial — the Go
// counterpart of original_source/trunk/devel/src/expr.c's to_expr and
// to_diagonal_matrix.
package treeeval
