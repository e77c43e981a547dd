package document

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// FromValue converts a generic Go value, as produced by decoders unmarshaling
// into any, into a Node tree. Map keys keep their dynamic type, so a
// map[any]any with integer keys yields integer key nodes.
func FromValue(v any) *Node {
	switch val := v.(type) {
	case nil:
		return Missing()
	case *Node:
		return val
	case string:
		return String(val)
	case int:
		return Int(int64(val))
	case int8:
		return Int(int64(val))
	case int16:
		return Int(int64(val))
	case int32:
		return Int(int64(val))
	case int64:
		return Int(val)
	case uint8:
		return Int(int64(val))
	case uint16:
		return Int(int64(val))
	case uint32:
		return Int(int64(val))
	case uint:
		return fromUnsigned(uint64(val))
	case uint64:
		return fromUnsigned(val)
	case float32:
		return Float(float64(val))
	case float64:
		return Float(val)
	case bool:
		return Other("!!bool", strconv.FormatBool(val))
	case time.Time:
		return Other("!!timestamp", val.Format(time.RFC3339Nano))
	case toml.LocalDate, toml.LocalTime, toml.LocalDateTime:
		return Other("!!timestamp", fmt.Sprint(val))
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}

		slices.Sort(keys)

		out := &Node{Kind: KindMapping}
		for _, k := range keys {
			out.Entries = append(out.Entries, Entry{Key: String(k), Value: FromValue(val[k])})
		}

		return out
	case map[any]any:
		out := &Node{Kind: KindMapping}
		for k, item := range val {
			out.Entries = append(out.Entries, Entry{Key: FromValue(k), Value: FromValue(item)})
		}

		out.Entries = out.SortedEntries()

		return out
	case []any:
		items := make([]*Node, 0, len(val))
		for _, item := range val {
			items = append(items, FromValue(item))
		}

		return Sequence(items...)
	default:
		return Other(fmt.Sprintf("!!%T", v), fmt.Sprint(v))
	}
}

func fromUnsigned(u uint64) *Node {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}

	return Int(int64(u))
}

// parseTOML parses a TOML document. TOML tables are always keyed by strings and
// have no null, so a TOML file can only fail the value checks of a schema.
func parseTOML(data []byte) (*Node, error) {
	var tree map[string]any

	err := toml.Unmarshal(data, &tree)
	if err != nil {
		return nil, err
	}

	return FromValue(tree), nil
}
