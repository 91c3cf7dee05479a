package elements

import (
	"github.com/sapecng/symcirc/circuit"
	"github.com/sapecng/symcirc/config"
)

// AddResistor adds an R element: a degree-0 impedance branch.
func AddResistor(c *circuit.Circuit, name string, a, b circuit.NodeID, val float64, sym bool) (int, error) {
	return c.AddSimple(a, b, a, b, name, circuit.Z, 0, val, sym)
}

// AddInductor adds an L element: a degree-1 impedance branch.
func AddInductor(c *circuit.Circuit, name string, a, b circuit.NodeID, val float64, sym bool) (int, error) {
	return c.AddSimple(a, b, a, b, name, circuit.Z, 1, val, sym)
}

// AddConductance adds a G element: a degree-0 admittance branch.
func AddConductance(c *circuit.Circuit, name string, a, b circuit.NodeID, val float64, sym bool) (int, error) {
	return c.AddSimple(a, b, a, b, name, circuit.Y, 0, val, sym)
}

// AddCapacitor adds a C element: a degree-1 admittance branch.
func AddCapacitor(c *circuit.Circuit, name string, a, b circuit.NodeID, val float64, sym bool) (int, error) {
	return c.AddSimple(a, b, a, b, name, circuit.Y, 1, val, sym)
}

// AddVoltageSource adds a V element: an ideal voltage source between a
// (positive) and b (negative), expanded via a virtual node into a Y
// reference branch, a unity companion branch, and a nullor. If Circuit has
// no reference node yet, a is adopted (or b if a is ground).
//
// When cfg.ReverseSign is set, the companion branch's coefficient is -1
// instead of +1 (see DESIGN.md's Open Question resolution).
func AddVoltageSource(c *circuit.Circuit, cfg config.Config, name string, a, b circuit.NodeID, val float64, sym bool) (int, error) {
	if c.Reference == 0 {
		if a != 0 {
			c.Reference = a
		} else {
			c.Reference = b
		}
	}
	fn := c.NextVirtualNode()
	if _, err := c.AddSimple(fn, c.Reserved, c.Reserved, c.Reference, name, circuit.Y, 0, val, sym); err != nil {
		return -1, err
	}
	companion := 1.0
	if cfg.ReverseSign {
		companion = -1.0
	}
	if _, err := c.AddSimple(fn, c.Reserved, b, a, "", circuit.Y, 0, companion, false); err != nil {
		return -1, err
	}
	return c.AddForced(b, a, c.Reserved, fn, "", 1, true)
}

// AddCurrentSource adds an I element: an ideal current source flowing a→b.
func AddCurrentSource(c *circuit.Circuit, name string, a, b circuit.NodeID, val float64, sym bool) (int, error) {
	if c.Reference == 0 {
		if a != 0 {
			c.Reference = a
		} else {
			c.Reference = b
		}
	}
	return c.AddSimple(a, b, c.Reserved, c.Reference, name, circuit.Y, 0, val, sym)
}

// AddVCCS adds a voltage-controlled current source: output a→b, controlled
// by the voltage across ac→bc.
func AddVCCS(c *circuit.Circuit, name string, a, b, ac, bc circuit.NodeID, val float64, sym bool) (int, error) {
	return c.AddSimple(a, b, ac, bc, name, circuit.Y, 0, val, sym)
}

// AddVCVS adds a voltage-controlled voltage source: output a→b, controlled
// by the voltage across ac→bc, expanded through a virtual node plus nullor.
func AddVCVS(c *circuit.Circuit, cfg config.Config, name string, a, b, ac, bc circuit.NodeID, val float64, sym bool) (int, error) {
	fn := c.NextVirtualNode()
	if _, err := c.AddSimple(fn, bc, ac, bc, name, circuit.Y, 0, val, sym); err != nil {
		return -1, err
	}
	companion := 1.0
	if cfg.ReverseSign {
		companion = -1.0
	}
	if _, err := c.AddSimple(fn, bc, b, a, "", circuit.Y, 0, companion, false); err != nil {
		return -1, err
	}
	return c.AddForced(b, a, bc, fn, "", 1, true)
}

// AddCCCS adds a current-controlled current source: output a→b, controlled
// by the current through ac→bc, expanded through a virtual node plus
// nullor.
func AddCCCS(c *circuit.Circuit, cfg config.Config, name string, a, b, ac, bc circuit.NodeID, val float64, sym bool) (int, error) {
	fn := c.NextVirtualNode()
	if _, err := c.AddSimple(ac, bc, bc, fn, name, circuit.Y, 0, val, sym); err != nil {
		return -1, err
	}
	companion := 1.0
	if cfg.ReverseSign {
		companion = -1.0
	}
	if _, err := c.AddSimple(a, b, bc, fn, "", circuit.Y, 0, companion, false); err != nil {
		return -1, err
	}
	return c.AddForced(bc, fn, bc, ac, "", 1, true)
}

// AddCCVS adds a current-controlled voltage source: output a→b, controlled
// by the current through ac→bc, expanded as a Z branch plus nullor. No
// reverse-sign variant exists for CCVS in the original.
func AddCCVS(c *circuit.Circuit, name string, a, b, ac, bc circuit.NodeID, val float64, sym bool) (int, error) {
	if _, err := c.AddSimple(ac, bc, a, b, name, circuit.Z, 0, val, sym); err != nil {
		return -1, err
	}
	return c.AddForced(b, a, bc, ac, "", 1, true)
}

// AddOpAmp adds an ideal op-amp: output a/b forced to track input ac/bc via
// a single nullor, no virtual node needed.
func AddOpAmp(c *circuit.Circuit, name string, a, b, ac, bc circuit.NodeID) (int, error) {
	return c.AddForced(b, a, bc, ac, "", 1, true)
}
