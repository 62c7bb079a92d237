package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  float64
	}{
		{"already two places", 0.83, 0.83},
		{"rounds down", 0.8349, 0.83},
		{"rounds up", 0.8351, 0.84},
		{"0.005 is stored above the tie", 0.005, 0.01},
		{"0.015 is stored below the tie", 0.015, 0.01},
		{"exact tie goes to even (down)", 0.125, 0.12},
		{"exact tie goes to even (up)", 0.375, 0.38},
		{"2.675 is stored below the tie", 2.675, 2.67},
		{"below half a hundredth", 0.004, 0},
		{"one", 0.999, 1},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundScore(tt.score))
		})
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.83, "0.83"},
		{0.95, "0.95"},
		{0.5, "0.5"},
		{0.01, "0.01"},
		{1, "1.0"},
		{0, "0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatScore(tt.score))
		})
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "cat (0.83)", Label(Category{CategoryName: "cat", Score: 0.8312}))
	assert.Equal(t, "person (1.0)", Label(Category{CategoryName: "person", Score: 0.9999}))
	assert.Equal(t, "dog (0.5)", Label(Category{CategoryName: "dog", Score: 0.5}))
	assert.Equal(t, " (0.01)", Label(Category{Score: 0.005}))
}
