package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/go-bmml/dom"
)

// Source is a single pass cursor over events. Peek and Next return io.EOF
// once the events are exhausted.
type Source interface {
	// Peek returns the next event without consuming it.
	Peek() (*Event, error)
	// Next consumes and returns the next event.
	Next() (*Event, error)
	// Last returns the most recently consumed event, or nil.
	Last() *Event
}

// Sink receives events.
type Sink interface {
	WriteEvent(*Event) error
}

// Expect consumes the next event and requires it to be of type typ and,
// when name is not nil, to carry that name.
func Expect(src Source, typ EventType, name *dom.Name) (*Event, error) {
	ev, err := src.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &Error{Msg: fmt.Sprintf("expected %s, got end of input", typ)}
		}
		return nil, err
	}
	if ev.Type != typ {
		return nil, &Error{
			Msg: fmt.Sprintf("expected %s, got %s", typ, ev),
			Pos: ev.Pos,
		}
	}
	if name != nil && ev.Name != *name {
		return nil, &Error{
			Msg: fmt.Sprintf("expected %s %s, got %s", typ, name, ev.Name),
			Pos: ev.Pos,
		}
	}
	return ev, nil
}

// SliceSource provides events held in memory.
type SliceSource struct {
	events []Event
	i      int
}

func NewSliceSource(events []Event) *SliceSource {
	return &SliceSource{events: events}
}

func (s *SliceSource) Peek() (*Event, error) {
	if s.i >= len(s.events) {
		return nil, io.EOF
	}
	return &s.events[s.i], nil
}

func (s *SliceSource) Next() (*Event, error) {
	ev, err := s.Peek()
	if err != nil {
		return nil, err
	}
	s.i++
	return ev, nil
}

func (s *SliceSource) Last() *Event {
	if s.i == 0 {
		return nil
	}
	return &s.events[s.i-1]
}

// Recorder is a Sink keeping every event it receives.
type Recorder struct {
	Events []Event
}

func (r *Recorder) WriteEvent(ev *Event) error {
	r.Events = append(r.Events, *ev)
	return nil
}

// Source returns a source replaying the recorded events.
func (r *Recorder) Source() *SliceSource {
	return NewSliceSource(r.Events)
}
