package stream

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/signadot/go-bmml/dom"

	"golang.org/x/text/encoding/ianaindex"
)

// Decoder is the Source reading XML text.
type Decoder struct {
	xd   *xml.Decoder
	opts *streamOpts

	peeked *Event
	last   *Event
	err    error
}

// NewDecoder creates a new Decoder reading from r.
func NewDecoder(r io.Reader, opts ...StreamOption) *Decoder {
	streamOpts := makeOpts(opts)
	xd := xml.NewDecoder(r)
	xd.CharsetReader = streamOpts.charsetReader
	if xd.CharsetReader == nil {
		xd.CharsetReader = charsetReader
	}
	return &Decoder{xd: xd, opts: streamOpts}
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}

// Peek returns the next event without consuming it.
func (d *Decoder) Peek() (*Event, error) {
	if d.peeked != nil {
		return d.peeked, nil
	}
	if d.err != nil {
		return nil, d.err
	}
	ev, err := d.read()
	if err != nil {
		d.err = err
		return nil, err
	}
	d.peeked = ev
	return ev, nil
}

// Next consumes and returns the next event.
func (d *Decoder) Next() (*Event, error) {
	ev, err := d.Peek()
	if err != nil {
		return nil, err
	}
	d.peeked = nil
	d.last = ev
	return ev, nil
}

func (d *Decoder) Last() *Event {
	return d.last
}

func (d *Decoder) read() (*Event, error) {
	var (
		tok xml.Token
		err error
	)
	if d.opts.raw {
		tok, err = d.xd.RawToken()
	} else {
		tok, err = d.xd.Token()
	}
	if err != nil {
		return nil, err
	}
	line, col := d.xd.InputPos()
	pos := Pos{Line: line, Col: col}
	switch t := tok.(type) {
	case xml.StartElement:
		ev := &Event{
			Type: EventStartElement,
			Name: dom.FromXMLName(t.Name),
			Pos:  pos,
		}
		if len(t.Attr) != 0 {
			ev.Attrs = make([]Attr, len(t.Attr))
			for i, a := range t.Attr {
				ev.Attrs[i] = Attr{Name: dom.FromXMLName(a.Name), Value: a.Value}
			}
		}
		return ev, nil
	case xml.EndElement:
		return &Event{Type: EventEndElement, Name: dom.FromXMLName(t.Name), Pos: pos}, nil
	case xml.CharData:
		return &Event{Type: EventCharacters, Text: string(t), Pos: pos}, nil
	case xml.Comment:
		return &Event{Type: EventOther, Text: string(t), Pos: pos}, nil
	default:
		return &Event{Type: EventOther, Pos: pos}, nil
	}
}
