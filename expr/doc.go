// Package expr is the canonical symbolic expression model: a sum of
// monomials, sorted by descending degree, like-term monomials with
// identical symbol tuples fused by coefficient addition. Rendering and
// binary serialization mirror original_source/trunk/devel/src/expr.c's
// splash/splash_group and expr_to_file/expr_from_file byte for byte in
// behavior, re-expressed with encoding/binary instead of a host-native
// struct dump.
package expr
