package analysis

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sapecng/symcirc/circuit"
	"github.com/sapecng/symcirc/expr"
	"github.com/sapecng/symcirc/spantree"
	"github.com/sapecng/symcirc/treeeval"
)

// Result holds the two expressions a resolved circuit yields: the transfer
// function's numerator (GRef pass) and denominator (YRef pass).
type Result struct {
	Numerator   *expr.Expression
	Denominator *expr.Expression
}

// Analyze runs both passes over c, which must already be Normalize'd and
// SetBlock'ed. A forced-edge cycle in either pass is a fatal error; the CLI
// layer logs it at Fatal level and exits nonzero (see cmd/symcirc).
func Analyze(c *circuit.Circuit) (*Result, error) {
	if c.YRef == nil || c.GRef == nil {
		return nil, ErrNotBlocked
	}

	forced := c.Forced.Values()

	logrus.WithFields(logrus.Fields{"pass": "denominator", "forced": len(forced)}).Debug("starting pass")
	den, err := runPass(c, forced, *c.YRef)
	if err != nil {
		return nil, fmt.Errorf("analysis: denominator pass: %w", err)
	}

	logrus.WithFields(logrus.Fields{"pass": "numerator", "forced": len(forced)}).Debug("starting pass")
	num, err := runPass(c, forced, *c.GRef)
	if err != nil {
		return nil, fmt.Errorf("analysis: numerator pass: %w", err)
	}

	return &Result{Numerator: num, Denominator: den}, nil
}

func runPass(c *circuit.Circuit, forced []int, closing int) (*expr.Expression, error) {
	enumerator, err := spantree.NewEnumerator(c, c.EdNum, c.NNum, forced, closing)
	if err != nil {
		return nil, err
	}

	ev := treeeval.New(c)
	result := expr.New()
	err = enumerator.Enumerate(func(free []int) error {
		mono, err := ev.Evaluate(forced, free, closing)
		if err != nil {
			return err
		}
		result.Insert(mono)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
