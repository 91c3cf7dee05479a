package analysis

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapecng/symcirc/circuit"
	"github.com/sapecng/symcirc/config"
	"github.com/sapecng/symcirc/elements"
)

// buildSingleResistor wires an ideal unit voltage source directly across a
// resistor (spec.md §8 scenario: single resistor) — the output node is
// forced to the source's value regardless of the resistor, so this mainly
// exercises that the pipeline runs end to end without error.
func buildSingleResistor(t *testing.T) *circuit.Circuit {
	t.Helper()
	c := circuit.New()
	cfg := config.New()
	_, err := elements.AddVoltageSource(c, cfg, "V1", 1, 0, 1, false)
	require.NoError(t, err)
	_, err = elements.AddResistor(c, "R1", 1, 0, 1000, true)
	require.NoError(t, err)

	c.Onode = 1
	require.NoError(t, c.Normalize())
	require.NoError(t, c.SetBlock())
	return c
}

func TestAnalyzeSingleResistorProducesNonEmptyExpressions(t *testing.T) {
	c := buildSingleResistor(t)
	result, err := Analyze(c)
	require.NoError(t, err)
	assert.Greater(t, result.Numerator.Len(), 0)
	assert.Greater(t, result.Denominator.Len(), 0)
}

func TestAnalyzeDetectsForcedEdgeCycle(t *testing.T) {
	// Two op-amps whose nullor edges alone already connect node 0 to node 2
	// in G_V, before the output-node closing edge is even considered —
	// spec.md §8's "forced-edge cycle failure" scenario.
	c := circuit.New()
	_, err := elements.AddOpAmp(c, "U1", 1, 0, 2, 0)
	require.NoError(t, err)
	_, err = elements.AddOpAmp(c, "U2", 2, 0, 1, 0)
	require.NoError(t, err)

	c.Reference = 1
	c.Onode = 2
	require.NoError(t, c.Normalize())
	require.NoError(t, c.SetBlock())

	_, err = Analyze(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forced")
}

func TestResultTextSeparatorMatchesLongerLine(t *testing.T) {
	c := buildSingleResistor(t)
	result, err := Analyze(c)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, result.WriteText(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	sep := lines[1]
	assert.Equal(t, max(len(lines[0]), len(lines[2])), len(sep))
	for _, r := range sep {
		assert.Equal(t, '-', r)
	}
}

func TestResultBinaryRoundTrip(t *testing.T) {
	c := buildSingleResistor(t)
	result, err := Analyze(c)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, result.WriteBinary(&buf))

	got, err := ReadResult(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(result.Numerator.Monomials(), got.Numerator.Monomials()); diff != "" {
		t.Errorf("numerator mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(result.Denominator.Monomials(), got.Denominator.Monomials()); diff != "" {
		t.Errorf("denominator mismatch (-want +got):\n%s", diff)
	}
}
