// Package spantree enumerates every common spanning tree of a circuit's
// dual graph: every selection of free edges that, together with the forced
// edges and one closing edge, spans both the current graph and the voltage
// graph without closing a cycle in either.
//
// ccTable is a rollback-capable union-find — Add unions two components the
// way ctrlplus does in original_source/trunk/devel/src/expr.c, and Remove
// undoes exactly that union the way ctrlminus does, which is what makes
// backtracking over edge choices possible without rebuilding state from
// scratch. Enumerator walks edge positions in strictly ascending order via
// recursion, replacing the original's explicit TF/SF/LF/IF/EF/BF/OF state
// machine (spec.md §9 suggests this substitution directly).
package spantree
