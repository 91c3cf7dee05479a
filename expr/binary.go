package expr

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteBinary serializes the expression little-endian: an int64 monomial
// count, then per monomial an int16 degree, a float64 coefficient, an int32
// symbol count, then that many NUL-terminated symbol strings — the same
// shape as expr_to_file's struct dump, with explicit fixed-width types in
// place of the original's host-native short/double/size_t.
func (e *Expression) WriteBinary(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, int64(len(e.monomials))); err != nil {
		return fmt.Errorf("expr: write count: %w", err)
	}
	for _, m := range e.monomials {
		if err := binary.Write(w, binary.LittleEndian, int16(m.Degree)); err != nil {
			return fmt.Errorf("expr: write degree: %w", err)
		}
		if err := binary.Write(w, binary.LittleEndian, m.Coefficient); err != nil {
			return fmt.Errorf("expr: write coefficient: %w", err)
		}
		if err := binary.Write(w, binary.LittleEndian, int32(len(m.Symbols))); err != nil {
			return fmt.Errorf("expr: write symbol count: %w", err)
		}
		for _, s := range m.Symbols {
			if _, err := w.Write(append([]byte(s), 0)); err != nil {
				return fmt.Errorf("expr: write symbol %q: %w", s, err)
			}
		}
	}
	return nil
}

// ReadExpression deserializes one expression written by WriteBinary. Since
// the analysis output cache holds two expressions back to back (numerator
// then denominator, per spec.md §6), callers read twice off the same
// io.Reader without any internal buffering getting in the way.
func ReadExpression(r io.Reader) (*Expression, error) {
	var count int64
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("expr: read count: %w", err)
	}

	e := New()
	for i := int64(0); i < count; i++ {
		var degree int16
		if err := binary.Read(r, binary.LittleEndian, &degree); err != nil {
			return nil, fmt.Errorf("expr: read degree: %w", err)
		}
		var coeff float64
		if err := binary.Read(r, binary.LittleEndian, &coeff); err != nil {
			return nil, fmt.Errorf("expr: read coefficient: %w", err)
		}
		var symCount int32
		if err := binary.Read(r, binary.LittleEndian, &symCount); err != nil {
			return nil, fmt.Errorf("expr: read symbol count: %w", err)
		}
		var syms []string
		if symCount > 0 {
			syms = make([]string, 0, symCount)
		}
		for s := int32(0); s < symCount; s++ {
			str, err := readCString(r)
			if err != nil {
				return nil, fmt.Errorf("expr: read symbol: %w", err)
			}
			syms = append(syms, str)
		}
		e.monomials = append(e.monomials, &Monomial{Degree: int(degree), Coefficient: coeff, Symbols: syms})
	}
	return e, nil
}

// readCString reads bytes up to and including the next NUL, returning the
// bytes before it.
func readCString(r io.Reader) (string, error) {
	var buf []byte
	b := make([]byte, 1)
	for {
		if _, err := io.ReadFull(r, b); err != nil {
			return "", err
		}
		if b[0] == 0 {
			break
		}
		buf = append(buf, b[0])
	}
	return string(buf), nil
}
