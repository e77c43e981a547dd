package document

import (
	"slices"
	"strconv"
	"strings"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind tells which case of the Node union is populated.
type Kind int

const (
	// KindMissing is an absent value: an empty document or an explicit null.
	KindMissing Kind = iota
	KindMapping
	KindSequence
	KindString
	KindInteger
	KindFloat
	// KindOther covers the remaining scalars (booleans, timestamps, binary...).
	// Validators never accept them, so only the tag and raw text are kept.
	KindOther
)

// Pos is a 1-based position in the source file. The zero value means the
// loader could not tell where the node came from.
type Pos struct {
	Line   int
	Column int
}

// IsValid reports whether the position points somewhere.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// Node is one value of an untyped document tree.
//
// Only the fields matching Kind are meaningful: Entries for mappings, Items for
// sequences, Str for strings, Int for integers, Float for floats and Tag plus
// Str (the raw text) for KindOther.
type Node struct {
	Kind    Kind
	Entries []Entry
	Items   []*Node
	Str     string
	Int     int64
	Float   float64
	Tag     string
	Pos     Pos
}

// Entry is a key/value pair of a mapping. Keys are nodes because non-text
// loaders can produce integer or even composite keys.
type Entry struct {
	Key   *Node
	Value *Node
}

// Missing returns an absent node.
func Missing() *Node { return &Node{Kind: KindMissing} }

// String returns a string scalar.
func String(s string) *Node { return &Node{Kind: KindString, Str: s} }

// Int returns an integer scalar.
func Int(i int64) *Node { return &Node{Kind: KindInteger, Int: i} }

// Float returns a floating-point scalar.
func Float(f float64) *Node { return &Node{Kind: KindFloat, Float: f} }

// Other returns a scalar the validators do not understand, such as a boolean.
func Other(tag, raw string) *Node { return &Node{Kind: KindOther, Tag: tag, Str: raw} }

// Sequence returns a sequence of the given items.
func Sequence(items ...*Node) *Node { return &Node{Kind: KindSequence, Items: items} }

// Mapping returns a mapping made of the given entries, in order.
func Mapping(entries ...Entry) *Node { return &Node{Kind: KindMapping, Entries: entries} }

// Pair builds a mapping entry with a string key.
func Pair(key string, value *Node) Entry { return Entry{Key: String(key), Value: value} }

// IsMapping reports whether n is a mapping. A nil node is missing.
func (n *Node) IsMapping() bool {
	return n != nil && n.Kind == KindMapping
}

// AsString returns the text of a string scalar.
func (n *Node) AsString() (string, bool) {
	if n == nil || n.Kind != KindString {
		return "", false
	}

	return n.Str, true
}

// Number returns the value of an integer or floating-point scalar, integers
// being widened to float64.
func (n *Node) Number() (float64, bool) {
	if n == nil {
		return 0, false
	}

	switch n.Kind {
	case KindInteger:
		return float64(n.Int), true
	case KindFloat:
		return n.Float, true
	default:
		return 0, false
	}
}

// Lookup returns the value stored under the string key in a mapping.
func (n *Node) Lookup(key string) (*Node, bool) {
	if !n.IsMapping() {
		return nil, false
	}

	for _, e := range n.Entries {
		if k, ok := e.Key.AsString(); ok && k == key {
			return e.Value, true
		}
	}

	return nil, false
}

// SortedEntries returns the entries of a mapping ordered by key text, string
// keys first on ties. The node itself is left untouched.
func (n *Node) SortedEntries() []Entry {
	if !n.IsMapping() {
		return nil
	}

	entries := slices.Clone(n.Entries)
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if c := strings.Compare(a.Key.Text(), b.Key.Text()); c != 0 {
			return c
		}

		return int(a.Key.kind()) - int(b.Key.kind())
	})

	return entries
}

// Text renders the node the way it is quoted in error messages.
func (n *Node) Text() string {
	switch n.kind() {
	case KindString, KindOther:
		return n.Str
	case KindInteger:
		return strconv.FormatInt(n.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(n.Float, 'g', -1, 64)
	case KindMapping:
		parts := make([]string, 0, len(n.Entries))
		for _, e := range n.Entries {
			parts = append(parts, e.Key.Text()+": "+e.Value.Text())
		}

		return "{" + strings.Join(parts, ", ") + "}"
	case KindSequence:
		parts := make([]string, 0, len(n.Items))
		for _, it := range n.Items {
			parts = append(parts, it.Text())
		}

		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "null"
	}
}

func (n *Node) kind() Kind {
	if n == nil {
		return KindMissing
	}

	return n.Kind
}

// keyID identifies a mapping key for duplicate detection.
func (n *Node) keyID() string {
	return n.kind().String() + ":" + n.Text()
}
