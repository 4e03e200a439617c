package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInt(t *testing.T) {
	valid := []struct {
		name  string
		input any
		want  int
	}{
		{"int", 7, 7},
		{"int64", int64(9), 9},
		{"float", float64(12), 12},
		{"float truncates", 3.9, 3},
		{"json number", json.Number("10"), 10},
		{"json float number", json.Number("2.5"), 2},
		{"numeric string", "5", 5},
		{"padded string", " 42 ", 42},
		{"negative string", "-3", -3},
	}
	for _, tc := range valid {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToInt(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	invalid := []struct {
		name  string
		input any
	}{
		{"word", "abc"},
		{"decimal string", "1.5"},
		{"empty string", ""},
		{"nil", nil},
		{"bool", true},
		{"object", map[string]any{"a": 1}},
		{"list", []any{1}},
		{"bad json number", json.Number("x")},
		{"two to the 63rd", float64(1 << 63)},
		{"json two to the 63rd", json.Number("9223372036854775808")},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ToInt(tc.input)
			assert.Error(t, err)
		})
	}
}

func TestToString(t *testing.T) {
	s, err := ToString("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", s)

	_, err = ToString(12)
	assert.Error(t, err)
}

func TestToText(t *testing.T) {
	valid := map[string]any{
		"SKU-1": "SKU-1",
		"12345": json.Number("12345"),
		"42":    float64(42),
		"2.5":   2.5,
		"7":     7,
	}
	for want, input := range valid {
		got, err := ToText(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, input := range []any{nil, true, []any{"a"}, map[string]any{}} {
		_, err := ToText(input)
		assert.Error(t, err, "%v", input)
	}
}
