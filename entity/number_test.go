package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		val  float64
		want string
	}{
		{3.0, "3"},
		{3.5, "3.5"},
		{3.14159, "3.14"},
		{0, "0"},
		{-2, "-2"},
		{-0.001, "0"},
		{0.25, "0.25"},
		{10.10, "10.1"},
		{1e6, "1000000"},
		{2.999, "3"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.val), "Truncate(%v)", tt.val)
	}
}

func TestTruncateRoundTrip(t *testing.T) {
	for _, val := range []float64{3, 3.5, 3.14159, 0.1 + 0.2, -7.125, 42.999} {
		str := Truncate(val)
		assert.Equal(t, str, Truncate(ParseNumber(str, -1)), "round trip of %v", val)
	}
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 4.5, ParseNumber("4.5", 1))
	assert.Equal(t, 4.5, ParseNumber(" 4.5 ", 1))
	assert.Equal(t, 1.0, ParseNumber("four", 1))
	assert.Equal(t, 1.0, ParseNumber("", 1))
	assert.Equal(t, 1.0, ParseNumber("NaN", 1))
	assert.Equal(t, 1.0, ParseNumber("+Inf", 1))
}
