package coercer

import (
	"testing"

	"gocsvlab/domain/dataset"
)

func TestIsDate(t *testing.T) {
	c := NewTypeCoercer(DefaultCoercionConfig())

	tests := []struct {
		in   string
		want bool
	}{
		{"2024-01-15", true},
		{"2024-01-15T10:30:00Z", true},
		{"2024-01-15 10:30:00", true},
		{"01/15/2024", true},
		{"15-Jan-2024", true},
		{"Jan 15, 2024", true},
		{"oslo", false},
		{"red", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := c.IsDate(dataset.NewTextValue(tt.in)); got != tt.want {
				t.Errorf("IsDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsDateWithoutFreeForm(t *testing.T) {
	c := NewTypeCoercer(CoercionConfig{DateLayouts: []string{"2006-01-02"}})

	if !c.IsDate(dataset.NewTextValue("2024-03-01")) {
		t.Error("expected layout match")
	}
	if c.IsDate(dataset.NewTextValue("March 1, 2024")) {
		t.Error("free-form parsing is disabled")
	}
}

func TestIsNumeric(t *testing.T) {
	c := NewTypeCoercer(DefaultCoercionConfig())

	if !c.IsNumeric(dataset.NewTextValue("12.5")) {
		t.Error("expected 12.5 to be numeric")
	}
	if c.IsNumeric(dataset.NewTextValue("12 apples")) {
		t.Error("expected text to be non-numeric")
	}
	if c.IsNumeric(dataset.NewMissingValue()) {
		t.Error("missing values are never numeric")
	}
}
