package analysis

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/sapecng/symcirc/expr"
)

// WriteText renders Numerator, a separator line exactly as long as the
// longer of the two rendered expressions, then Denominator — reproducing
// original_source/src/sapec-ng.c's resolve()/sep() two-pass length-then-
// print trick (numerator first, then denominator, matching its own
// splash(grefchain, ...); sep(); splash(yrefchain, ...) order).
func (r *Result) WriteText(w io.Writer) error {
	var numBuf, denBuf bytes.Buffer
	if err := r.Numerator.WriteText(&numBuf); err != nil {
		return fmt.Errorf("analysis: render numerator: %w", err)
	}
	if err := r.Denominator.WriteText(&denBuf); err != nil {
		return fmt.Errorf("analysis: render denominator: %w", err)
	}

	numLine := strings.TrimRight(numBuf.String(), "\n")
	denLine := strings.TrimRight(denBuf.String(), "\n")
	sepLen := len(numLine)
	if len(denLine) > sepLen {
		sepLen = len(denLine)
	}

	if _, err := fmt.Fprintln(w, numLine); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", sepLen)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, denLine)
	return err
}

// WriteBinary writes Numerator then Denominator back to back, the same
// order as expr_to_file(grefchain, ...); expr_to_file(yrefchain, ...) in
// the original's resolve().
func (r *Result) WriteBinary(w io.Writer) error {
	if err := r.Numerator.WriteBinary(w); err != nil {
		return fmt.Errorf("analysis: write numerator: %w", err)
	}
	if err := r.Denominator.WriteBinary(w); err != nil {
		return fmt.Errorf("analysis: write denominator: %w", err)
	}
	return nil
}

// ReadResult reads a Result written by WriteBinary — the binary-cache
// replay path behind cmd/symcirc's decode subcommand.
func ReadResult(r io.Reader) (*Result, error) {
	num, err := expr.ReadExpression(r)
	if err != nil {
		return nil, fmt.Errorf("analysis: read numerator: %w", err)
	}
	den, err := expr.ReadExpression(r)
	if err != nil {
		return nil, fmt.Errorf("analysis: read denominator: %w", err)
	}
	return &Result{Numerator: num, Denominator: den}, nil
}
