package expr

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertKeepsDescendingDegreeOrder(t *testing.T) {
	e := New()
	e.Insert(&Monomial{Degree: 0, Coefficient: 1})
	e.Insert(&Monomial{Degree: 2, Coefficient: 1})
	e.Insert(&Monomial{Degree: 1, Coefficient: 1})

	degrees := make([]int, 0, 3)
	for _, m := range e.Monomials() {
		degrees = append(degrees, m.Degree)
	}
	assert.Equal(t, []int{2, 1, 0}, degrees)
}

func TestInsertFusesMatchingSymbolTuples(t *testing.T) {
	e := New()
	e.Insert(&Monomial{Degree: 1, Symbols: []string{"R1", "C1"}, Coefficient: 2})
	e.Insert(&Monomial{Degree: 1, Symbols: []string{"R1", "C1"}, Coefficient: 3})

	require.Equal(t, 1, e.Len())
	assert.Equal(t, 5.0, e.Monomials()[0].Coefficient)
}

func TestInsertDoesNotFuseDifferentSymbolTuples(t *testing.T) {
	e := New()
	e.Insert(&Monomial{Degree: 1, Symbols: []string{"R1"}, Coefficient: 2})
	e.Insert(&Monomial{Degree: 1, Symbols: []string{"R2"}, Coefficient: 3})
	assert.Equal(t, 2, e.Len())
}

func TestStringEmptyExpressionIsNull(t *testing.T) {
	e := New()
	assert.Equal(t, "NULL", e.String())
}

func TestStringCancelledGroupPrintsZero(t *testing.T) {
	e := New()
	e.Insert(&Monomial{Degree: 0, Coefficient: 5})
	e.Insert(&Monomial{Degree: 0, Coefficient: -5})
	assert.Contains(t, e.String(), "0")
}

func TestBinaryRoundTripPairPreservesStructure(t *testing.T) {
	num := New()
	num.Insert(&Monomial{Degree: 1, Symbols: []string{"R1"}, Coefficient: 1})
	den := New()
	den.Insert(&Monomial{Degree: 2, Symbols: []string{"R1", "C1"}, Coefficient: 1})
	den.Insert(&Monomial{Degree: 0, Coefficient: 1})

	var buf bytes.Buffer
	require.NoError(t, num.WriteBinary(&buf))
	require.NoError(t, den.WriteBinary(&buf))

	gotNum, err := ReadExpression(&buf)
	require.NoError(t, err)
	gotDen, err := ReadExpression(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(num.Monomials(), gotNum.Monomials()); diff != "" {
		t.Errorf("numerator round-trip mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(den.Monomials(), gotDen.Monomials()); diff != "" {
		t.Errorf("denominator round-trip mismatch (-want +got):\n%s", diff)
	}
}
