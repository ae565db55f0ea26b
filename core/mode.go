package core

// Mode represents the editing mode of a session. Navigation interprets
// printable keys as motions and commands; Insert routes them into the
// buffer. A printable key is handled by exactly one of the two.
type Mode int

const (
	// ModeNavigation is the initial mode: keys move the cursor or run commands.
	ModeNavigation Mode = iota
	// ModeInsert is the editing mode: printable keys insert text at the cursor.
	ModeInsert
)

// String returns the status-line representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNavigation:
		return "NAVIGATION"
	case ModeInsert:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}
