package stream

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/go-bmml/dom"
)

// Encoder is a Sink writing XML text. Names are written with the prefixes
// in scope, see Namespaces; encoding/xml only sees prefixed local names.
type Encoder struct {
	w       io.Writer
	xe      *xml.Encoder
	opts    *streamOpts
	started bool

	ns   Namespaces
	open []openElem
}

type openElem struct {
	name  dom.Name
	qname string
}

// NewEncoder creates a new Encoder writing to w.
func NewEncoder(w io.Writer, opts ...StreamOption) *Encoder {
	streamOpts := makeOpts(opts)
	xe := xml.NewEncoder(w)
	if streamOpts.indent > 0 {
		xe.Indent("", strings.Repeat(" ", streamOpts.indent))
	}
	return &Encoder{w: w, xe: xe, opts: streamOpts}
}

// WriteEvent writes ev. Events of type EventOther are written as comments
// when they carry text and dropped otherwise.
func (e *Encoder) WriteEvent(ev *Event) error {
	if !e.started {
		e.started = true
		// nothing is buffered in xe yet
		if e.opts.header {
			if _, err := io.WriteString(e.w, xml.Header); err != nil {
				return err
			}
		}
	}
	switch ev.Type {
	case EventStartElement:
		qname, attrs := e.ns.Start(ev.Name, ev.Attrs)
		start := xml.StartElement{Name: xml.Name{Local: qname}}
		if len(attrs) != 0 {
			start.Attr = make([]xml.Attr, len(attrs))
			for i, a := range attrs {
				start.Attr[i] = xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value}
			}
		}
		e.open = append(e.open, openElem{name: ev.Name, qname: qname})
		return e.xe.EncodeToken(start)
	case EventEndElement:
		n := len(e.open)
		if n == 0 || e.open[n-1].name != ev.Name {
			return &Error{Msg: fmt.Sprintf("unexpected %s", ev), Pos: ev.Pos}
		}
		top := e.open[n-1]
		e.open = e.open[:n-1]
		e.ns.End()
		return e.xe.EncodeToken(xml.EndElement{Name: xml.Name{Local: top.qname}})
	case EventCharacters:
		return e.xe.EncodeToken(xml.CharData(ev.Text))
	case EventOther:
		if ev.Text == "" {
			return nil
		}
		return e.xe.EncodeToken(xml.Comment(ev.Text))
	default:
		return &Error{Msg: fmt.Sprintf("unknown event type %d", ev.Type)}
	}
}

// Flush writes any buffered output.
func (e *Encoder) Flush() error {
	return e.xe.Flush()
}

// Close flushes and checks that every element was closed.
func (e *Encoder) Close() error {
	return e.xe.Close()
}
