package document

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// parseYAML parses YAML (and therefore JSON) data. Only the first document of
// a stream is read.
func parseYAML(data []byte) (*Node, error) {
	var root yaml.Node

	err := yaml.Unmarshal(data, &root)
	if err != nil {
		return nil, err
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return Missing(), nil
	}

	c := &yamlConverter{
		expanding:   map[*yaml.Node]bool{},
		aliasBudget: max(minAliasBudget, aliasBudgetRatio*countYAMLNodes(root.Content[0])),
	}

	return c.convert(root.Content[0])
}

// ErrExcessiveAliasing is returned for a YAML document whose aliases expand
// to many more nodes than the document holds.
var ErrExcessiveAliasing = errors.New("document contains excessive aliasing")

// Nodes created by expanding aliases may not exceed the larger of
// minAliasBudget and aliasBudgetRatio times the nodes of the source.
const (
	minAliasBudget   = 10_000
	aliasBudgetRatio = 10
)

type yamlConverter struct {
	// expanding holds the anchors currently being converted, to reject
	// aliases that point back into their own anchor.
	expanding map[*yaml.Node]bool

	// aliasDepth is the number of aliases being expanded, and aliasNodes the
	// number of nodes they have created so far.
	aliasDepth  int
	aliasNodes  int
	aliasBudget int
}

// countYAMLNodes counts the nodes of a tree, without following aliases.
func countYAMLNodes(node *yaml.Node) int {
	n := 1
	for _, child := range node.Content {
		n += countYAMLNodes(child)
	}

	return n
}

func (c *yamlConverter) convert(node *yaml.Node) (*Node, error) {
	pos := Pos{Line: node.Line, Column: node.Column}

	if c.aliasDepth > 0 {
		c.aliasNodes++
		if c.aliasNodes > c.aliasBudget {
			return nil, fmt.Errorf("line %d: %w", node.Line, ErrExcessiveAliasing)
		}
	}

	switch node.Kind {
	case yaml.AliasNode:
		if c.expanding[node.Alias] {
			return nil, fmt.Errorf("line %d: alias %q refers to its own anchor", node.Line, node.Value)
		}

		c.expanding[node.Alias] = true
		c.aliasDepth++

		// The anchor is converted anew, so the result is owned by this alias.
		n, err := c.convert(node.Alias)

		c.aliasDepth--
		delete(c.expanding, node.Alias)

		if err != nil {
			return nil, err
		}

		n.Pos = pos

		return n, nil

	case yaml.ScalarNode:
		n, err := convertScalar(node)
		if err != nil {
			return nil, err
		}

		n.Pos = pos

		return n, nil

	case yaml.SequenceNode:
		items := make([]*Node, 0, len(node.Content))

		for _, item := range node.Content {
			n, err := c.convert(item)
			if err != nil {
				return nil, err
			}

			items = append(items, n)
		}

		return &Node{Kind: KindSequence, Items: items, Pos: pos}, nil

	case yaml.MappingNode:
		return c.convertMapping(node)

	default:
		return nil, fmt.Errorf("line %d: unexpected YAML node kind %v", node.Line, node.Kind)
	}
}

// convertMapping converts a mapping node. Merge keys ("<<") are expanded, keys
// written explicitly winning over merged ones, and duplicated keys are
// rejected since a mapping's keys are unique.
func (c *yamlConverter) convertMapping(node *yaml.Node) (*Node, error) {
	out := &Node{Kind: KindMapping, Pos: Pos{Line: node.Line, Column: node.Column}}
	seen := map[string]int{}

	var merges []*yaml.Node

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind == yaml.ScalarNode && keyNode.ShortTag() == "!!merge" {
			merges = append(merges, valueNode)
			continue
		}

		key, err := c.convert(keyNode)
		if err != nil {
			return nil, err
		}

		if line, dup := seen[key.keyID()]; dup {
			return nil, fmt.Errorf("line %d: mapping key %q already defined at line %d", keyNode.Line, key.Text(), line)
		}

		seen[key.keyID()] = keyNode.Line

		value, err := c.convert(valueNode)
		if err != nil {
			return nil, err
		}

		out.Entries = append(out.Entries, Entry{Key: key, Value: value})
	}

	for _, m := range merges {
		sources, err := c.mergeSources(m)
		if err != nil {
			return nil, err
		}

		for _, src := range sources {
			for _, e := range src.Entries {
				if _, dup := seen[e.Key.keyID()]; dup {
					continue
				}

				seen[e.Key.keyID()] = e.Key.Pos.Line
				out.Entries = append(out.Entries, e)
			}
		}
	}

	return out, nil
}

// mergeSources returns the mappings referenced by the value of a merge key:
// either one mapping or a sequence of mappings.
func (c *yamlConverter) mergeSources(value *yaml.Node) ([]*Node, error) {
	n, err := c.convert(value)
	if err != nil {
		return nil, err
	}

	switch n.Kind {
	case KindMapping:
		return []*Node{n}, nil
	case KindSequence:
		for _, item := range n.Items {
			if !item.IsMapping() {
				return nil, fmt.Errorf("line %d: map merge requires map or sequence of maps as the value", value.Line)
			}
		}

		return n.Items, nil
	default:
		return nil, fmt.Errorf("line %d: map merge requires map or sequence of maps as the value", value.Line)
	}
}

func convertScalar(node *yaml.Node) (*Node, error) {
	switch tag := node.ShortTag(); tag {
	case "!!str":
		return String(node.Value), nil

	case "!!null":
		return Missing(), nil

	case "!!int":
		var i int64
		if err := node.Decode(&i); err == nil {
			return Int(i), nil
		}

		// Too large for int64: keep the magnitude as a float.
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, fmt.Errorf("line %d: cannot decode integer %q: %w", node.Line, node.Value, err)
		}

		return Float(f), nil

	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, fmt.Errorf("line %d: cannot decode float %q: %w", node.Line, node.Value, err)
		}

		return Float(f), nil

	default:
		return Other(tag, node.Value), nil
	}
}
