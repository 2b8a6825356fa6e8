package tint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewDimensionsShorthand(t *testing.T) {
	tests := []struct {
		name   string
		top    int
		sides  []int
		expect Dimensions
	}{
		{"one value", 1, nil, Dimensions{1, 1, 1, 1}},
		{"two values", 1, []int{2}, Dimensions{1, 2, 1, 2}},
		{"three values", 1, []int{2, 3}, Dimensions{1, 2, 3, 2}},
		{"four values", 1, []int{2, 3, 4}, Dimensions{1, 2, 3, 4}},
		{"extra values ignored", 1, []int{2, 3, 4, 5, 6}, Dimensions{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, NewDimensions(tt.top, tt.sides...))
		})
	}
}

func TestDimensionsArithmetic(t *testing.T) {
	d := NewDimensions(1, 2, 3, 4)
	assert.Equal(t, 6, d.Horizontal())
	assert.Equal(t, 4, d.Vertical())
	assert.Equal(t, Dimensions{2, 3, 4, 5}, d.Add(Uniform(1)))
	assert.Equal(t, Dimensions{2, 3, 5, 6}, d.Scale(1.5))
	assert.Equal(t, Dimensions{}, d.Scale(0))
	assert.Equal(t, ZeroDimensions(), Dimensions{})
	assert.Equal(t, "1 2 3 4", d.String())
}

func TestDimensionsUnmarshalYAML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Dimensions
	}{
		{"scalar", "2", Uniform(2)},
		{"sequence", "[1, 2]", Dimensions{1, 2, 1, 2}},
		{"mapping", "{top: 1, left: 3}", Dimensions{Top: 1, Left: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Dimensions
			require.NoError(t, yaml.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, d)
		})
	}

	var d Dimensions
	assert.Error(t, yaml.Unmarshal([]byte("[1, 2, 3, 4, 5]"), &d))
	assert.Error(t, yaml.Unmarshal([]byte("[]"), &d))
}
