package treeeval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapecng/symcirc/circuit"
)

func TestDeterminantOfPathIncidenceIsUnitMagnitude(t *testing.T) {
	// Path 0-1-2: incidence matrix rows=nodes, cols=edges (n-1 of them).
	mat := [][]int{
		{-1, 0},
		{1, -1},
		{0, 1},
	}
	got := determinant(mat, 3, 2)
	assert.Equal(t, 1, got*got) // ±1
}

func TestDeterminantHandlesRowSwap(t *testing.T) {
	mat := [][]int{
		{0, 1},
		{-1, 0},
		{1, -1},
	}
	got := determinant(mat, 3, 2)
	assert.Equal(t, 1, got*got)
}

func TestEvaluateSingleResistorTree(t *testing.T) {
	// Two nodes (0 ground, 1), one resistor edge, one synthetic closing
	// edge reusing the same two nodes (stand-in for YRef/GRef in this
	// unit-level test — full wiring is covered by the analysis package).
	c := circuit.New()
	_, err := c.AddSimple(1, 0, 1, 0, "R1", circuit.Z, 0, 2, false)
	require.NoError(t, err)
	closingIdx, err := c.AddSimple(1, 0, 1, 0, "", circuit.YRef, 0, 1, false)
	require.NoError(t, err)

	ev := New(c)
	mono, err := ev.Evaluate(nil, nil, closingIdx)
	require.NoError(t, err)

	// R1 is the only non-closing edge, so it is cotree; being type Z, a
	// cotree edge contributes its value under the (cotree && Z) rule.
	assert.Equal(t, 2.0, mono.Coefficient)
	assert.Equal(t, 0, mono.Degree)
}
