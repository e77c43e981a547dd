package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode_SortedEntries(t *testing.T) {
	n := Mapping(
		Pair("risotto", Missing()),
		Entry{Key: Int(1), Value: Missing()},
		Pair("1", Missing()),
		Pair("pasta", Missing()),
	)

	var keys []string
	for _, e := range n.SortedEntries() {
		keys = append(keys, e.Key.Kind.String()+":"+e.Key.Text())
	}

	assert.Equal(t, []string{"String:1", "Integer:1", "String:pasta", "String:risotto"}, keys)
	assert.Equal(t, "risotto", n.Entries[0].Key.Str, "sorting must not reorder the node")
	assert.Nil(t, String("x").SortedEntries())
}

func TestNode_Number(t *testing.T) {
	tests := []struct {
		node *Node
		want float64
		ok   bool
	}{
		{Int(500), 500, true},
		{Int(-3), -3, true},
		{Float(1.5), 1.5, true},
		{String("500"), 0, false},
		{Other("!!bool", "true"), 0, false},
		{Missing(), 0, false},
		{nil, 0, false},
	}

	for _, tt := range tests {
		got, ok := tt.node.Number()
		assert.Equal(t, tt.ok, ok, tt.node.Text())
		assert.Equal(t, tt.want, got, tt.node.Text())
	}
}

func TestNode_Text(t *testing.T) {
	assert.Equal(t, "risotto", String("risotto").Text())
	assert.Equal(t, "404", Int(404).Text())
	assert.Equal(t, "1.5", Float(1.5).Text())
	assert.Equal(t, "null", Missing().Text())
	assert.Equal(t, "null", (*Node)(nil).Text())
	assert.Equal(t, "[1, a]", Sequence(Int(1), String("a")).Text())
	assert.Equal(t, "{unit: g}", Mapping(Pair("unit", String("g"))).Text())
}

func TestFromValue(t *testing.T) {
	n := FromValue(map[any]any{
		"risotto": map[any]any{
			1: map[string]any{"quantity": 500, "unit": "g"},
		},
	})

	assert.True(t, n.IsMapping())
	risotto, ok := n.Lookup("risotto")
	assert.True(t, ok)
	assert.Equal(t, KindInteger, risotto.Entries[0].Key.Kind)

	amount := risotto.Entries[0].Value
	q, _ := amount.Lookup("quantity")
	assert.Equal(t, int64(500), q.Int)

	assert.Equal(t, KindOther, FromValue(true).Kind)
	assert.Equal(t, KindFloat, FromValue(uint64(1)<<63).Kind)
	assert.Equal(t, KindMissing, FromValue(nil).Kind)
}

func TestPos_IsValid(t *testing.T) {
	assert.False(t, Pos{}.IsValid())
	assert.True(t, Pos{Line: 3, Column: 1}.IsValid())
}
