package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	SessionID ID
	EntryID   ID
)

func (id SessionID) String() string { return ID(id).String() }
func (id EntryID) String() string   { return ID(id).String() }

// NewSessionID creates a time-ordered session identifier
func NewSessionID() SessionID {
	return SessionID(NewID())
}

// NewEntryID creates a time-ordered history entry identifier
func NewEntryID() EntryID {
	return EntryID(NewID())
}

// ParseSessionID parses a string into SessionID
func ParseSessionID(s string) (SessionID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("session ID cannot be empty")
	}
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("session ID %q is not a valid uuid: %w", s, err)
	}
	return SessionID(s), nil
}
