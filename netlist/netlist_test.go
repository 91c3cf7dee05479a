package netlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapecng/symcirc/circuit"
	"github.com/sapecng/symcirc/config"
)

func TestParseTextNetlist(t *testing.T) {
	text := `
# a simple RC low-pass
R R1 1 2 1k
C C1 2 0 1u
.GROUND 0
.OUTPUT 2
`
	c := circuit.New()
	err := Parse(strings.NewReader(text), c, config.New())
	require.NoError(t, err)
	assert.Equal(t, circuit.NodeID(2), c.Onode)
	assert.Equal(t, circuit.NodeID(0), c.BaseNode)
	assert.Equal(t, 2, c.EdNum)
	assert.Equal(t, 1000.0, c.Edges[0].Value)
	assert.Equal(t, 1e-6, c.Edges[1].Value)
}

func TestParseSkipsBadLineButContinues(t *testing.T) {
	text := `
R R1 1 2 1k
BOGUS x y z
.OUTPUT 2
`
	c := circuit.New()
	err := Parse(strings.NewReader(text), c, config.New())
	require.NoError(t, err)
	assert.Equal(t, 1, c.EdNum)
}

func TestParseMissingOutputIsError(t *testing.T) {
	c := circuit.New()
	err := Parse(strings.NewReader("R R1 1 0 1k\n"), c, config.New())
	assert.ErrorIs(t, err, ErrNoOutputNode)
}

func TestParseValueSuffixes(t *testing.T) {
	cases := map[string]float64{
		"1k":   1000,
		"1meg": 1e6,
		"2.2u": 2.2e-6,
		"10n":  10e-9,
		"5":    5,
	}
	for in, want := range cases {
		got, err := parseValue(in)
		require.NoError(t, err)
		assert.InDelta(t, want, got, want*1e-9+1e-15)
	}
}

func TestParseYAMLNetlist(t *testing.T) {
	doc := `
ground: 0
output: 1
elements:
  - type: R
    name: R1
    nodes: [1, 0]
    value: 500
`
	c := circuit.New()
	err := ParseYAML(strings.NewReader(doc), c, config.New())
	require.NoError(t, err)
	assert.Equal(t, circuit.NodeID(1), c.Onode)
	assert.Equal(t, 1, c.EdNum)
	assert.Equal(t, 500.0, c.Edges[0].Value)
}
