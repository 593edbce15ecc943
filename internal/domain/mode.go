package domain

import (
	"fmt"
	"strings"
)

// InsertionMode says where a dropped item goes relative to the target
type InsertionMode int

const (
	ModeBefore InsertionMode = iota // place before the target, shifting it right
	ModeAfter                       // place right after the target
	ModeChild                       // place as the first child of a leaf target
)

func (m InsertionMode) String() string {
	switch m {
	case ModeBefore:
		return "before"
	case ModeAfter:
		return "after"
	case ModeChild:
		return "child"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the known modes
func (m InsertionMode) Valid() bool {
	return m >= ModeBefore && m <= ModeChild
}

// ParseInsertionMode parses "before", "after" or "child" ("into" and "asChild" are accepted too)
func ParseInsertionMode(s string) (InsertionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "before":
		return ModeBefore, nil
	case "after":
		return ModeAfter, nil
	case "child", "into", "aschild":
		return ModeChild, nil
	}
	return 0, fmt.Errorf("%w: unknown insertion mode %q", ErrInvalidArgument, s)
}

// MarshalText implements encoding.TextMarshaler
func (m InsertionMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: unknown insertion mode %d", ErrInvalidArgument, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *InsertionMode) UnmarshalText(b []byte) error {
	parsed, err := ParseInsertionMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
