package models

// Status is the single character between the checkbox brackets.
type Status byte

const (
	StatusOpen Status = ' '
	StatusDone Status = 'x'
)

// ParseStatus converts a checkbox token into a Status.
func ParseStatus(token string) (Status, bool) {
	switch token {
	case " ":
		return StatusOpen, true
	case "x":
		return StatusDone, true
	}
	return 0, false
}

// Toggled returns the opposite status.
func (s Status) Toggled() Status {
	if s == StatusDone {
		return StatusOpen
	}
	return StatusDone
}

// Glyph renders the status as "[ ]" or "[x]".
func (s Status) Glyph() string {
	if s == StatusDone {
		return "[x]"
	}
	return "[ ]"
}

// String returns "done" or "open".
func (s Status) String() string {
	if s == StatusDone {
		return "done"
	}
	return "open"
}
