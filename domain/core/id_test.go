package core

import (
	"fmt"
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestIDIsEmpty tests ID emptiness check
func TestIDIsEmpty(t *testing.T) {
	if !ID("").IsEmpty() {
		t.Error("Expected empty ID to be empty")
	}
	if ID("not-empty").IsEmpty() {
		t.Error("Expected non-empty ID to not be empty")
	}
}

// TestParseSessionID tests session ID parsing
func TestParseSessionID(t *testing.T) {
	valid := NewSessionID()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"generated id", valid.String(), false},
		{"padded id", "  " + valid.String() + " ", false},
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"not a uuid", "session-1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSessionID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSessionID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != valid {
				t.Errorf("ParseSessionID(%q) = %s, want %s", tt.input, got, valid)
			}
		})
	}
}

// TestErrorClassification tests that constructors wrap the right sentinels
func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"invalid params", NewInvalidParamsError("column", "is required"), IsInvalidParamsError},
		{"column not found is invalid params", NewColumnNotFoundError("price"), IsInvalidParamsError},
		{"column type", NewColumnTypeError("city", "numeric", "categorical"), IsColumnTypeError},
		{"no op", NewNoOpError("undo"), IsNoOpError},
		{"parse failure", NewParseError("data.csv", fmt.Errorf("bad quote")), IsParseError},
		{"parse failure without cause", NewParseError("data.csv", nil), IsParseError},
		{"not found", NewNotFoundError("session", "abc"), IsNotFoundError},
		{"session not found", ErrSessionNotFound, IsNotFoundError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.check(tt.err) {
				t.Errorf("error %v not classified as expected", tt.err)
			}
		})
	}

	if IsColumnTypeError(NewInvalidParamsError("column", "is required")) {
		t.Error("invalid params error must not be a column type error")
	}
}
