package frame

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ReadYAML reads a sequence of flat mappings, keeping key order.
func ReadYAML(r io.Reader) (*Frame, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return New()
		}
		return nil, err
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("yaml table must be a sequence of mappings (line %d)", root.Line)
	}
	f, _ := New()
	rows := make([]map[string]string, 0, len(root.Content))
	for _, m := range root.Content {
		if m.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: expected a mapping", m.Line)
		}
		row := make(map[string]string, len(m.Content)/2)
		for i := 0; i+1 < len(m.Content); i += 2 {
			k, v := m.Content[i], m.Content[i+1]
			if v.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: column %q: nested values are not supported", v.Line, k.Value)
			}
			if !f.Has(k.Value) {
				if err := f.addName(k.Value); err != nil {
					return nil, err
				}
			}
			if v.Tag != "!!null" {
				row[k.Value] = v.Value
			}
		}
		rows = append(rows, row)
	}
	for _, row := range rows {
		if err := f.AppendMap(row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// WriteYAML writes the frame as a sequence of mappings with string values.
func WriteYAML(w io.Writer, f *Frame) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for r, row := range f.rows {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for i, c := range f.columns {
			if f.isAbsent(r, i) {
				continue
			}
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: row[i]},
			)
		}
		seq.Content = append(seq.Content, m)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(seq); err != nil {
		return err
	}
	return enc.Close()
}
