package domain

import "strings"

// Side selects one of the two report slots of a manager.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// ParseSide canonicalizes user input. Unknown values are returned as-is so the
// caller can still report them; use Valid to check.
func ParseSide(s string) Side {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return SideLeft
	case "right":
		return SideRight
	}
	return Side(s)
}

// Valid reports whether s names an existing slot.
func (s Side) Valid() bool {
	return s == SideLeft || s == SideRight
}

// Label is the upper-cased form used in user-facing messages (LEFT, RIGHT).
func (s Side) Label() string {
	return strings.ToUpper(string(s))
}
