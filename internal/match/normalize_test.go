package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"quantity", "quantity"},
		{"Quantity", "quantity"},
		{" unit ", "unit"},
		{"quan_tity", "quantity"},
		{"no-meal-chosen", "nomealchosen"},
		{"Pâtes", "pâtes"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, NormalizeKey(tt.in), "NormalizeKey(%q)", tt.in)
	}
}
