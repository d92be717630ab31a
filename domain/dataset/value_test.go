package dataset

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTextValueEmptyIsMissing(t *testing.T) {
	assert.True(t, NewTextValue("").IsMissing())
	assert.False(t, NewTextValue(" ").IsMissing())
	assert.True(t, NewMissingValue().IsMissing())
	assert.Equal(t, "", NewMissingValue().String())
}

func TestAsFloat64(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		want   float64
		wantOK bool
	}{
		{"integer text", NewTextValue("42"), 42, true},
		{"padded decimal", NewTextValue(" 3.5 "), 3.5, true},
		{"scientific", NewTextValue("1e3"), 1000, true},
		{"negative", NewTextValue("-0.25"), -0.25, true},
		{"word", NewTextValue("north"), 0, false},
		{"whitespace only", NewTextValue(" "), 0, false},
		{"infinity text", NewTextValue("Infinity"), 0, false},
		{"nan text", NewTextValue("NaN"), 0, false},
		{"numeric", NewNumericValue(7), 7, true},
		{"numeric nan", NewNumericValue(math.NaN()), 0, false},
		{"missing", NewMissingValue(), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.AsFloat64()
			if ok != tt.wantOK {
				t.Fatalf("AsFloat64() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("AsFloat64() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1"},
		{0.5, "0.5"},
		{-12.75, "-12.75"},
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1e21, "1e+21"},
		{1e-7, "1e-07"},
		{123456789, "123456789"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValueEqual(t *testing.T) {
	assert.True(t, NewTextValue("a").Equal(NewTextValue("a")))
	assert.False(t, NewTextValue("1").Equal(NewNumericValue(1)))
	assert.True(t, NewNumericValue(math.NaN()).Equal(NewNumericValue(math.NaN())))
	assert.True(t, NewMissingValue().Equal(NewTextValue("")))
	assert.False(t, NewNumericValue(1).Equal(NewNumericValue(2)))
}

func TestValueMarshalJSON(t *testing.T) {
	row := []Value{
		NewTextValue("oslo"),
		NewNumericValue(2.5),
		NewMissingValue(),
		NewNumericValue(math.NaN()),
	}
	data, err := json.Marshal(row)
	assert.NoError(t, err)
	assert.JSONEq(t, `["oslo", 2.5, null, null]`, string(data))
}
