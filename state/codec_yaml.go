package state

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler, emitting a block sequence.
func (s *Seq) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for i, v := range s.All() {
		child, err := toYAMLNode(v)
		if err != nil {
			return nil, fmt.Errorf("encode item %d: %w", i, err)
		}
		node.Content = append(node.Content, child)
	}
	return node, nil
}

// MarshalYAML implements yaml.Marshaler, emitting a mapping in key insertion order.
func (r *Rec) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range r.All() {
		child, err := toYAMLNode(v)
		if err != nil {
			return nil, fmt.Errorf("encode field %q: %w", k, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			child,
		)
	}
	return node, nil
}

func toYAMLNode(v any) (*yaml.Node, error) {
	node := &yaml.Node{}
	if err := node.Encode(v); err != nil {
		return nil, err
	}
	return node, nil
}

// ParseYAML decodes a single YAML document into a state value, preserving mapping order.
// Mapping keys must be scalars. Aliases are resolved.
func ParseYAML(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	return fromYAMLNode(&doc)
}

func fromYAMLNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromYAMLNode(c)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return &Seq{items: items}, nil
	case yaml.MappingNode:
		r := &Rec{fields: make(map[string]any, len(n.Content)/2)}
		for i := 0; i+1 < len(n.Content); i += 2 {
			kn := n.Content[i]
			if kn.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("parse yaml: line %d: non-scalar key: %w", kn.Line, ErrUnsupported)
			}
			v, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			if _, seen := r.fields[kn.Value]; !seen {
				r.keys = append(r.keys, kn.Value)
			}
			r.fields[kn.Value] = v
		}
		return r, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("parse yaml: line %d: %w", n.Line, err)
		}
		if i, ok := v.(int); ok {
			return int64(i), nil
		}
		return v, nil
	}
	return nil, fmt.Errorf("parse yaml: node kind %d: %w", n.Kind, ErrUnsupported)
}
