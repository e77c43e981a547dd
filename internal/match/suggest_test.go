package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var amountKeys = []string{"quantity", "unit"}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"quantiy", []string{"quantity"}},
		{"Quantity", []string{"quantity"}},
		{"units", []string{"unit"}},
		{"Unit", []string{"unit"}},
		{"unit", nil},
		{"wrongKey", nil},
		{"qty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.name, amountKeys))
		})
	}
}

func TestRankCandidates(t *testing.T) {
	ranked := RankCandidates("chosen_meal", []string{"no_meal_chosen", "chosen_meals", "shopping_list"})
	require.Len(t, ranked, 3)
	assert.Equal(t, "chosen_meals", ranked[0].Name)
	assert.GreaterOrEqual(t, ranked[0].Score, ranked[1].Score)
	assert.GreaterOrEqual(t, ranked[1].Score, ranked[2].Score)
}
