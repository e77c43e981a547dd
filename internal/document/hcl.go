package document

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// parseHCL parses an HCL native-syntax file. Attributes become entries keyed
// by their name. A block is keyed by its labels, outermost first, so that names
// which are not HCL identifiers can still be used:
//
//	meal "fried rice" {
//	  rice = { quantity = 1, unit = "kg" }
//	}
//
// A block without labels is keyed by its type. Expressions are evaluated
// without variables or functions.
func parseHCL(data []byte, filename string) (*Node, error) {
	file, diags := hclsyntax.ParseConfig(data, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, diags
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("unexpected HCL body type %T", file.Body)
	}

	return convertBody(body)
}

func convertBody(body *hclsyntax.Body) (*Node, error) {
	out := &Node{Kind: KindMapping, Pos: posOf(body.SrcRange.Start)}
	index := map[string]*Node{}

	names := make([]string, 0, len(body.Attributes))
	for name := range body.Attributes {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		attr := body.Attributes[name]

		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}

		value, err := fromCty(val, posOf(attr.Expr.Range().Start))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", attr.NameRange, err)
		}

		key := String(name)
		key.Pos = posOf(attr.NameRange.Start)
		out.Entries = append(out.Entries, Entry{Key: key, Value: value})
		index[name] = value
	}

	for _, block := range body.Blocks {
		value, err := convertBody(block.Body)
		if err != nil {
			return nil, err
		}

		path := block.Labels
		if len(path) == 0 {
			path = []string{block.Type}
		}

		if err := insertBlock(out, index, path, value, block); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// insertBlock stores value under the nested keys of path, creating the
// intermediate mappings. index maps the keys of parent to their values.
func insertBlock(parent *Node, index map[string]*Node, path []string, value *Node, block *hclsyntax.Block) error {
	key := path[0]
	existing, found := index[key]

	if len(path) == 1 {
		if found {
			return fmt.Errorf("%s: duplicate key %q", block.DefRange(), key)
		}

		k := String(key)
		k.Pos = posOf(block.DefRange().Start)
		parent.Entries = append(parent.Entries, Entry{Key: k, Value: value})
		index[key] = value

		return nil
	}

	if !found {
		existing = &Node{Kind: KindMapping, Pos: posOf(block.DefRange().Start)}
		k := String(key)
		k.Pos = existing.Pos
		parent.Entries = append(parent.Entries, Entry{Key: k, Value: existing})
		index[key] = existing
	} else if !existing.IsMapping() {
		return fmt.Errorf("%s: key %q is not a block", block.DefRange(), key)
	}

	child := map[string]*Node{}
	for _, e := range existing.Entries {
		child[e.Key.Str] = e.Value
	}

	return insertBlock(existing, child, path[1:], value, block)
}

func fromCty(val cty.Value, pos Pos) (*Node, error) {
	if val.IsNull() {
		return &Node{Kind: KindMissing, Pos: pos}, nil
	}

	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("value is not known without evaluation context")
	}

	ty := val.Type()

	var out *Node

	switch {
	case ty == cty.String:
		out = String(val.AsString())

	case ty == cty.Number:
		out = fromBigFloat(val.AsBigFloat())

	case ty == cty.Bool:
		out = Other("!!bool", fmt.Sprint(val.True()))

	case ty.IsObjectType() || ty.IsMapType():
		out = &Node{Kind: KindMapping}

		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()

			item, err := fromCty(v, pos)
			if err != nil {
				return nil, err
			}

			key := String(k.AsString())
			key.Pos = pos
			out.Entries = append(out.Entries, Entry{Key: key, Value: item})
		}

	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		out = &Node{Kind: KindSequence}

		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()

			item, err := fromCty(v, pos)
			if err != nil {
				return nil, err
			}

			out.Items = append(out.Items, item)
		}

	default:
		out = Other("!!"+ty.FriendlyName(), val.GoString())
	}

	out.Pos = pos

	return out, nil
}

func fromBigFloat(f *big.Float) *Node {
	if f.IsInt() {
		if i, acc := f.Int64(); acc == big.Exact {
			return Int(i)
		}
	}

	v, _ := f.Float64()

	return Float(v)
}

func posOf(p hcl.Pos) Pos {
	return Pos{Line: p.Line, Column: p.Column}
}
