package tabfmt

import (
	"io"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, t DisplayTable, cfg *renderConfig) error {
	doc, err := yamlDocument(t)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	if cfg.indent != "" {
		enc.SetIndent(len(cfg.indent))
	}
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// yamlDocument builds a sequence of mappings so keys keep column order.
func yamlDocument(t DisplayTable) (*yaml.Node, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, row := range t.Rows {
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for c, name := range t.Names {
			var v any
			if c < len(row) {
				v = row[c]
			}
			val, err := yamlValue(v)
			if err != nil {
				return nil, err
			}
			m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}, val)
		}
		seq.Content = append(seq.Content, m)
	}
	return seq, nil
}

func yamlValue(v any) (*yaml.Node, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: x.String()}, nil
	case time.Duration:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: x.String()}, nil
	}
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return &n, nil
}
