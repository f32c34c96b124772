package stream

import (
	"fmt"

	"github.com/signadot/go-bmml/dom"
)

// Event is one structural event of an XML document.
type Event struct {
	Type EventType

	// Name applies to start and end events.
	Name dom.Name
	// Attrs applies to start events, in document order.
	Attrs []Attr
	// Text applies to character events and to comments.
	Text string

	Pos Pos
}

type Attr struct {
	Name  dom.Name
	Value string
}

// Pos is the position following an event in its input, when known.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) IsZero() bool { return p.Line == 0 }

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// EventType represents the type of an event.
type EventType int

const (
	EventStartElement EventType = iota
	EventEndElement
	EventCharacters
	// EventOther covers comments, processing instructions and directives.
	EventOther
)

func (t EventType) String() string {
	switch t {
	case EventStartElement:
		return "StartElement"
	case EventEndElement:
		return "EndElement"
	case EventCharacters:
		return "Characters"
	case EventOther:
		return "Other"
	default:
		return "Unknown"
	}
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(d []byte) error {
	k := string(d)
	pt, ok := map[string]EventType{
		"StartElement": EventStartElement,
		"EndElement":   EventEndElement,
		"Characters":   EventCharacters,
		"Other":        EventOther,
	}[k]
	if ok {
		*t = pt
		return nil
	}
	return fmt.Errorf("unknown type %q", k)
}

// Start makes a start event.
func Start(name dom.Name, attrs ...Attr) Event {
	return Event{Type: EventStartElement, Name: name, Attrs: attrs}
}

// End makes an end event.
func End(name dom.Name) Event {
	return Event{Type: EventEndElement, Name: name}
}

// Chars makes a character event.
func Chars(text string) Event {
	return Event{Type: EventCharacters, Text: text}
}

func (e *Event) String() string {
	switch e.Type {
	case EventStartElement:
		return "<" + e.Name.String() + ">"
	case EventEndElement:
		return "</" + e.Name.String() + ">"
	case EventCharacters:
		return fmt.Sprintf("%q", e.Text)
	}
	return e.Type.String()
}
