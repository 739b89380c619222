package pure_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityIdentity(t *testing.T) {
	for _, s := range []string{"", "a", "John Smith", "  padded  ", "Théière"} {
		t.Run(s, func(t *testing.T) {
			assert.Equal(t, 1.0, Similarity(s, s))
		})
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	pairs := [][2]string{
		{"John Smith", "Jon Smith"},
		{"hello", "world"},
		{"", "abc"},
		{"ACME Corp", "ACME Corporation"},
	}

	for _, p := range pairs {
		t.Run(p[0]+" vs "+p[1], func(t *testing.T) {
			assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]))
		})
	}
}

func TestSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"", ""},
		{"a", "zzzzzzzzzz"},
		{"completely different", "nothing alike at all"},
		{"short", "a much much longer string than the other one"},
	}

	for _, p := range pairs {
		score := Similarity(p[0], p[1])
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestSimilarityKnownDistances(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{"empty strings", "", "", 1.0},
		{"case and whitespace normalized", "  John Smith ", "john smith", 1.0},
		{"one substitution over ten runes", "john smith", "john smyth", 0.9},
		{"one deletion over ten runes", "john smith", "jon smith", 0.9},
		{"no common characters", "abc", "xyz", 0.0},
		{"empty versus non-empty", "", "abcd", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Similarity(tt.a, tt.b), 0.0001)
		})
	}
}
