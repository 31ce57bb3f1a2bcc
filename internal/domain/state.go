package domain

// SessionState tracks where a game is in its lifecycle.
// Solved and Revealed are terminal; a new session starts over at Generating.
type SessionState int

const (
	Generating SessionState = iota
	Playable
	Solved
	Revealed
)

func (s SessionState) String() string {
	switch s {
	case Generating:
		return "generating"
	case Playable:
		return "playable"
	case Solved:
		return "solved"
	case Revealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further edits are accepted in this state.
func (s SessionState) Terminal() bool {
	return s == Solved || s == Revealed
}
