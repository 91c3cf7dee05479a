package netlist

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/sapecng/symcirc/circuit"
	"github.com/sapecng/symcirc/config"
)

// yamlDocument is the structured alternative to the line-oriented text
// format, decoded with gopkg.in/yaml.v3.
type yamlDocument struct {
	Ground   int `yaml:"ground"`
	Output   int `yaml:"output"`
	Elements []struct {
		Type  string  `yaml:"type"`
		Name  string  `yaml:"name"`
		Nodes []int   `yaml:"nodes"`
		Value float64 `yaml:"value"`
		Sym   bool    `yaml:"sym"`
	} `yaml:"elements"`
}

// ParseYAML reads a structured YAML netlist from r and applies it to c.
// Element-level errors are soft (logged and skipped, matching Parse's
// policy); a document with no output node (output missing or 0) is
// reported as ErrNoOutputNode.
func ParseYAML(r io.Reader, c *circuit.Circuit, cfg config.Config) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("netlist: read yaml: %w", err)
	}

	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("netlist: decode yaml: %w", err)
	}

	c.BaseNode = circuit.NodeID(doc.Ground)
	c.Onode = circuit.NodeID(doc.Output)

	for _, el := range doc.Elements {
		nodes := make([]circuit.NodeID, len(el.Nodes))
		for i, n := range el.Nodes {
			nodes[i] = circuit.NodeID(n)
		}
		spec := elementSpec{
			Type:  el.Type,
			Name:  el.Name,
			Nodes: nodes,
			Value: el.Value,
			Sym:   el.Sym,
		}
		if err := apply(c, cfg, spec); err != nil {
			logrus.WithField("element", spec.Name).Warn(fmt.Errorf("netlist: apply element %s %q: %w", spec.Type, spec.Name, err))
		}
	}
	if doc.Output == 0 {
		return ErrNoOutputNode
	}
	return nil
}
