// Package analysis is the driver glue: it runs the two required passes
// (closing on YRef for the denominator, closing on GRef for the numerator)
// over a normalized, blocked Circuit, each pass enumerating every common
// spanning tree with spantree and folding each into the running Expression
// with treeeval — the Go counterpart of original_source/src/core.c's
// circ_to_expr/grimbleby.
package analysis
