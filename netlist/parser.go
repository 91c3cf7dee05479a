// Package netlist parses circuit descriptions into a circuit.Circuit,
// either from a line-oriented text format or a structured YAML document.
// It is ambient/supplemental to spec.md's core (a runnable repo needs an
// input format the distilled spec doesn't specify), patterned on the
// element-letter/name/nodes/value/sym token shape of
// original_source/src/circapi.c's function signatures.
package netlist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sapecng/symcirc/circuit"
	"github.com/sapecng/symcirc/config"
	"github.com/sapecng/symcirc/elements"
)

// elementSpec is the parsed, format-agnostic shape of one netlist line or
// YAML element entry, before it's applied to a Circuit.
type elementSpec struct {
	Type  string
	Name  string
	Nodes []circuit.NodeID
	Value float64
	Sym   bool
}

// Parse reads a line-oriented text netlist from r and applies it to c.
//
// Format: "<TYPE> <name> <nodes...> <value> [sym]", one element per line,
// blank lines and "#"-prefixed comments ignored, plus two directives:
//
//	.OUTPUT <node>   sets the circuit's output node
//	.GROUND <node>   sets the circuit's ground/base node (default 0)
//
// A malformed line is logged and skipped (soft warning); Parse only returns
// an error if no .OUTPUT directive was ever seen.
func Parse(r io.Reader, c *circuit.Circuit, cfg config.Config) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	sawOutput := false

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		directive := strings.ToUpper(fields[0])

		switch directive {
		case ".OUTPUT":
			n, err := parseLineDirective(fields)
			if err != nil {
				logrus.WithField("line", lineNo).Warn(err)
				continue
			}
			c.Onode = n
			sawOutput = true
			continue
		case ".GROUND":
			n, err := parseLineDirective(fields)
			if err != nil {
				logrus.WithField("line", lineNo).Warn(err)
				continue
			}
			c.BaseNode = n
			continue
		}

		spec, err := parseElementLine(fields)
		if err != nil {
			logrus.WithField("line", lineNo).Warn(err)
			continue
		}
		if err := apply(c, cfg, spec); err != nil {
			logrus.WithField("line", lineNo).Warn(err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("netlist: scan: %w", err)
	}
	if !sawOutput {
		return ErrNoOutputNode
	}
	return nil
}

func parseLineDirective(fields []string) (circuit.NodeID, error) {
	if len(fields) < 2 {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, fields[0])
	}
	return parseNode(fields[1])
}

func parseElementLine(fields []string) (elementSpec, error) {
	if len(fields) < 4 {
		return elementSpec{}, fmt.Errorf("%w: expected at least 4 fields, got %d", ErrMissingField, len(fields))
	}

	typ := strings.ToUpper(fields[0])
	name := fields[1]
	nodeCount := requiredNodeCount(typ)
	if nodeCount == 0 {
		return elementSpec{}, fmt.Errorf("%w: %s", ErrUnknownElement, typ)
	}

	needsValue := typ != "OPAMP"
	minFields := 2 + nodeCount
	if needsValue {
		minFields++
	}
	if len(fields) < minFields {
		return elementSpec{}, fmt.Errorf("%w: %s needs %d nodes%s", ErrMissingField, typ, nodeCount, valueSuffix(needsValue))
	}

	nodes := make([]circuit.NodeID, nodeCount)
	for i := 0; i < nodeCount; i++ {
		n, err := parseNode(fields[2+i])
		if err != nil {
			return elementSpec{}, err
		}
		nodes[i] = n
	}

	value := 1.0
	tail := fields[2+nodeCount:]
	if needsValue {
		v, err := parseValue(fields[2+nodeCount])
		if err != nil {
			return elementSpec{}, err
		}
		value = v
		tail = fields[2+nodeCount+1:]
	}

	sym := false
	for _, f := range tail {
		if strings.EqualFold(f, "sym") {
			sym = true
		}
	}

	return elementSpec{Type: typ, Name: name, Nodes: nodes, Value: value, Sym: sym}, nil
}

func valueSuffix(needsValue bool) string {
	if needsValue {
		return " and a value"
	}
	return ""
}

func requiredNodeCount(typ string) int {
	switch typ {
	case "R", "L", "G", "C", "V", "I":
		return 2
	case "VCCS", "VCVS", "CCCS", "CCVS", "OPAMP":
		return 4
	default:
		return 0
	}
}

func parseNode(s string) (circuit.NodeID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNode, s)
	}
	return circuit.NodeID(n), nil
}

// parseValue accepts a bare float or one with an SI suffix
// (f/p/n/u/m/k/meg/g), the way a SPICE-adjacent netlist commonly does.
func parseValue(s string) (float64, error) {
	mult := 1.0
	trimmed := s
	lower := strings.ToLower(s)
	suffixes := []struct {
		suffix string
		mult   float64
	}{
		{"meg", 1e6},
		{"f", 1e-15},
		{"p", 1e-12},
		{"n", 1e-9},
		{"u", 1e-6},
		{"m", 1e-3},
		{"k", 1e3},
		{"g", 1e9},
	}
	for _, sfx := range suffixes {
		if strings.HasSuffix(lower, sfx.suffix) {
			mult = sfx.mult
			trimmed = s[:len(s)-len(sfx.suffix)]
			break
		}
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadValue, s)
	}
	return v * mult, nil
}

// apply dispatches an elementSpec to the matching elements.Add* function.
func apply(c *circuit.Circuit, cfg config.Config, spec elementSpec) error {
	n := spec.Nodes
	var err error
	switch spec.Type {
	case "R":
		_, err = elements.AddResistor(c, spec.Name, n[0], n[1], spec.Value, spec.Sym)
	case "L":
		_, err = elements.AddInductor(c, spec.Name, n[0], n[1], spec.Value, spec.Sym)
	case "G":
		_, err = elements.AddConductance(c, spec.Name, n[0], n[1], spec.Value, spec.Sym)
	case "C":
		_, err = elements.AddCapacitor(c, spec.Name, n[0], n[1], spec.Value, spec.Sym)
	case "V":
		_, err = elements.AddVoltageSource(c, cfg, spec.Name, n[0], n[1], spec.Value, spec.Sym)
	case "I":
		_, err = elements.AddCurrentSource(c, spec.Name, n[0], n[1], spec.Value, spec.Sym)
	case "VCCS":
		_, err = elements.AddVCCS(c, spec.Name, n[0], n[1], n[2], n[3], spec.Value, spec.Sym)
	case "VCVS":
		_, err = elements.AddVCVS(c, cfg, spec.Name, n[0], n[1], n[2], n[3], spec.Value, spec.Sym)
	case "CCCS":
		_, err = elements.AddCCCS(c, cfg, spec.Name, n[0], n[1], n[2], n[3], spec.Value, spec.Sym)
	case "CCVS":
		_, err = elements.AddCCVS(c, spec.Name, n[0], n[1], n[2], n[3], spec.Value, spec.Sym)
	case "OPAMP":
		_, err = elements.AddOpAmp(c, spec.Name, n[0], n[1], n[2], n[3])
	default:
		return fmt.Errorf("%w: %s", ErrUnknownElement, spec.Type)
	}
	return err
}
