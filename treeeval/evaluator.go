package treeeval

import (
	"github.com/sapecng/symcirc/circuit"
	"github.com/sapecng/symcirc/expr"
)

// Evaluator evaluates completed common spanning trees of one Circuit.
type Evaluator struct {
	circuit *circuit.Circuit
}

// New returns an Evaluator bound to c.
func New(c *circuit.Circuit) *Evaluator {
	return &Evaluator{circuit: c}
}

// Evaluate builds the monomial contributed by one completed tree: forced
// edges, the pass's closing edge, and free (chosen by the enumerator),
// assigned to incidence-matrix columns in that order. Every other edge is
// "cotree"; an edge contributes its value/symbol iff it is (tree and
// admittance) or (cotree and impedance) — forced and closing edges carry
// neither type and so never contribute, without needing a special case.
func (ev *Evaluator) Evaluate(forced, free []int, closing int) (*expr.Monomial, error) {
	c := ev.circuit

	cols := make([]int, 0, len(forced)+len(free)+1)
	cols = append(cols, forced...)
	cols = append(cols, free...)
	cols = append(cols, closing)

	n := c.NNum
	m := n - 1
	gi := newMatrix(n, m)
	gv := newMatrix(n, m)

	isTree := make([]bool, c.EdNum)
	for col, pos := range cols {
		isTree[pos] = true
		e := c.Edges[pos]
		gi[e.GI[0]][col] = -1
		gi[e.GI[1]][col] = 1
		gv[e.GV[0]][col] = -1
		gv[e.GV[1]][col] = 1
	}

	mono := &expr.Monomial{Coefficient: 1}
	for pos := 0; pos < c.EdNum; pos++ {
		e := c.Edges[pos]
		contributes := (isTree[pos] && e.Type == circuit.Y) || (!isTree[pos] && e.Type == circuit.Z)
		if !contributes {
			continue
		}
		if e.Sym {
			mono.AddSymbol(e.Name)
		} else {
			mono.Coefficient *= e.Value
		}
		mono.Degree += e.Degree
	}

	diGI := determinant(gi, n, m)
	diGV := determinant(gv, n, m)
	mono.Coefficient *= float64(diGI * diGV)
	return mono, nil
}

func newMatrix(rows, cols int) [][]int {
	mat := make([][]int, rows)
	for i := range mat {
		mat[i] = make([]int, cols)
	}
	return mat
}
