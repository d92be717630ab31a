package coercer

import (
	"strings"
	"time"

	"github.com/itlightning/dateparse"

	"gocsvlab/domain/dataset"
)

// TypeCoercer decides whether raw cell values parse as numbers or dates
type TypeCoercer struct {
	config CoercionConfig
}

// CoercionConfig defines the date parsing rules
type CoercionConfig struct {
	DateLayouts []string `json:"date_layouts"` // tried in order before the free-form parser
	FreeForm    bool     `json:"free_form"`    // fall back to dateparse for other formats
}

// DefaultCoercionConfig returns the standard layout list with free-form fallback
func DefaultCoercionConfig() CoercionConfig {
	return CoercionConfig{
		DateLayouts: []string{
			time.RFC3339,
			time.RFC3339Nano,
			"2006-01-02T15:04:05",
			"2006-01-02 15:04:05",
			"2006-01-02",
			"01/02/2006",
			"2006/01/02",
			"02-Jan-2006",
			"Jan 2, 2006",
			"January 2, 2006",
			time.RFC1123,
			time.RFC1123Z,
		},
		FreeForm: true,
	}
}

// NewTypeCoercer creates a coercer with the given config
func NewTypeCoercer(config CoercionConfig) *TypeCoercer {
	return &TypeCoercer{config: config}
}

// IsNumeric reports whether v coerces to a finite number
func (c *TypeCoercer) IsNumeric(v dataset.Value) bool {
	_, ok := v.AsFloat64()
	return ok
}

// ParseDate parses v as a calendar date or date-time
func (c *TypeCoercer) ParseDate(v dataset.Value) (time.Time, bool) {
	if v.IsMissing() {
		return time.Time{}, false
	}
	s := strings.TrimSpace(v.String())
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range c.config.DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	if c.config.FreeForm {
		if t, err := dateparse.ParseAny(s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsDate reports whether v parses as a date
func (c *TypeCoercer) IsDate(v dataset.Value) bool {
	_, ok := c.ParseDate(v)
	return ok
}
