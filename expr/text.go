package expr

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// WriteText renders the expression as a single line: groups of monomials
// sharing a degree, joined by " + ", each group followed by " s" for
// degree 1, " s^k" for degree k > 1 and nothing for degree 0, with an empty
// expression rendered as "NULL" — matching
// splash's two-pass length-then-print behavior (the length-measuring pass
// is done by WriteText's caller, which buffers this output to size a
// separator line; see analysis.Result.WriteText).
func (e *Expression) WriteText(w io.Writer) error {
	if len(e.monomials) == 0 {
		_, err := fmt.Fprint(w, "NULL\n")
		return err
	}

	i := 0
	first := true
	for i < len(e.monomials) {
		degree := e.monomials[i].Degree
		j := i
		for j < len(e.monomials) && e.monomials[j].Degree == degree {
			j++
		}
		if !first {
			if _, err := fmt.Fprint(w, " + "); err != nil {
				return err
			}
		}
		first = false
		if _, err := fmt.Fprint(w, group(e.monomials[i:j])); err != nil {
			return err
		}
		if degree != 0 {
			if degree == 1 {
				if _, err := fmt.Fprint(w, " s"); err != nil {
					return err
				}
			} else if _, err := fmt.Fprintf(w, " s^%d", degree); err != nil {
				return err
			}
		}
		i = j
	}
	_, err := fmt.Fprintln(w)
	return err
}

// String renders the expression via WriteText into an in-memory buffer.
func (e *Expression) String() string {
	var sb strings.Builder
	_ = e.WriteText(&sb)
	return strings.TrimRight(sb.String(), "\n")
}

// group renders one same-degree block of monomials: symbol-bearing
// monomials print individually ("+ 2.5 R1 C2"), symbol-less ones accumulate
// into a single trailing numeric term — mirroring splash_group's "acc"
// behavior, including printing "+ 0" when every monomial in the group
// cancelled to zero.
func group(ms []*Monomial) string {
	var sb strings.Builder
	sb.WriteString("(")

	acc := 0.0
	zero := true
	for _, m := range ms {
		if m.Coefficient == 0 {
			continue
		}
		zero = false
		if len(m.Symbols) == 0 {
			acc += m.Coefficient
			continue
		}
		if m.Coefficient > 0 {
			sb.WriteString(" +")
		} else {
			sb.WriteString(" -")
		}
		if v := math.Abs(m.Coefficient); v != 1 {
			fmt.Fprintf(&sb, " %.3g", v)
		}
		for _, s := range m.Symbols {
			fmt.Fprintf(&sb, " %s", s)
		}
	}

	if acc != 0 || zero {
		if acc < 0 {
			sb.WriteString(" -")
			acc = -acc
		} else {
			sb.WriteString(" +")
		}
		fmt.Fprintf(&sb, " %.3g", acc)
	}

	sb.WriteString(" )")
	return sb.String()
}
