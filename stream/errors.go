package stream

// Error represents a stream error.
type Error struct {
	Msg string
	Pos Pos
}

func (e *Error) Error() string {
	if e.Pos.IsZero() {
		return e.Msg
	}
	return e.Pos.String() + ": " + e.Msg
}
