package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount(t *testing.T) {
	tests := map[string]int{
		"12":   12,
		" 7 ":  7,
		"-3":   -3,
		"":     0,
		"abc":  0,
		"1.5":  0,
		"10 x": 0,
	}
	for in, want := range tests {
		assert.Equal(t, want, Count(in), "Count(%q)", in)
	}
}

func TestPosition(t *testing.T) {
	tests := map[string]int{
		"3":  3,
		"":   1,
		"x":  1,
		"0":  0,
		"+2": 2,
	}
	for in, want := range tests {
		assert.Equal(t, want, Position(in), "Position(%q)", in)
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12.50", "12.5"},
		{"12,50", "12.5"},
		{" 100 ", "100"},
		{"", "0"},
		{"ten", "0"},
		{"1,2,3", "0"},
		{"-4,25", "-4.25"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Amount(tt.in)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
