package stream

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/signadot/go-bmml/dom"
)

func readAll(t *testing.T, src Source) []Event {
	t.Helper()
	var res []Event
	for {
		ev, err := src.Next()
		if errors.Is(err, io.EOF) {
			return res
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		res = append(res, *ev)
	}
}

func TestDecoderEvents(t *testing.T) {
	in := `<score version="1"><!-- c --><part id="p1">x</part></score>`
	evs := readAll(t, NewDecoder(strings.NewReader(in)))
	types := []EventType{
		EventStartElement, EventOther, EventStartElement,
		EventCharacters, EventEndElement, EventEndElement,
	}
	if len(evs) != len(types) {
		t.Fatalf("got %d events, want %d: %v", len(evs), len(types), evs)
	}
	for i, typ := range types {
		if evs[i].Type != typ {
			t.Errorf("event %d: got %s want %s", i, evs[i].Type, typ)
		}
	}
	if evs[0].Name != dom.Local("score") || len(evs[0].Attrs) != 1 || evs[0].Attrs[0].Value != "1" {
		t.Errorf("bad score start %+v", evs[0])
	}
	if evs[1].Text != " c " {
		t.Errorf("comment text %q", evs[1].Text)
	}
	if evs[3].Text != "x" {
		t.Errorf("characters %q", evs[3].Text)
	}
	if evs[0].Pos.Line != 1 {
		t.Errorf("position %s", evs[0].Pos)
	}
}

func TestDecoderPeek(t *testing.T) {
	dec := NewDecoder(strings.NewReader(`<a/>`))
	if dec.Last() != nil {
		t.Fatalf("last before reading")
	}
	p, err := dec.Peek()
	if err != nil {
		t.Fatal(err)
	}
	n, err := dec.Next()
	if err != nil {
		t.Fatal(err)
	}
	if p != n || dec.Last() != n {
		t.Errorf("peek and next disagree")
	}
	if _, err := dec.Next(); err != nil {
		t.Fatal(err)
	}
	if _, err := dec.Peek(); !errors.Is(err, io.EOF) {
		t.Errorf("got %v want EOF", err)
	}
	if _, err := dec.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("got %v want EOF", err)
	}
}

func TestDecoderCharset(t *testing.T) {
	in := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><generic_text>caf\xe9</generic_text>"
	evs := readAll(t, NewDecoder(strings.NewReader(in)))
	var text string
	for _, ev := range evs {
		if ev.Type == EventCharacters {
			text += ev.Text
		}
	}
	if text != "café" {
		t.Errorf("got %q", text)
	}
}

func TestDecoderMismatch(t *testing.T) {
	in := `<a><b></a></b>`
	dec := NewDecoder(strings.NewReader(in))
	var err error
	for err == nil {
		_, err = dec.Next()
	}
	var synErr *xml.SyntaxError
	if !errors.As(err, &synErr) {
		t.Errorf("got %v, want a syntax error", err)
	}

	// raw mode leaves the check to the caller
	evs := readAll(t, NewDecoder(strings.NewReader(in), WithRaw()))
	if len(evs) != 4 {
		t.Errorf("got %d events", len(evs))
	}
}

func TestExpect(t *testing.T) {
	src := NewSliceSource([]Event{
		Start(dom.Local("a")),
		End(dom.Local("b")),
	})
	a := dom.Local("a")
	if _, err := Expect(src, EventStartElement, &a); err != nil {
		t.Fatal(err)
	}
	_, err := Expect(src, EventEndElement, &a)
	var sErr *Error
	if !errors.As(err, &sErr) {
		t.Fatalf("got %v", err)
	}
	_, err = Expect(src, EventEndElement, nil)
	if !errors.As(err, &sErr) || !strings.Contains(err.Error(), "end of input") {
		t.Errorf("got %v", err)
	}
}

func TestEventTypeText(t *testing.T) {
	for _, typ := range []EventType{EventStartElement, EventEndElement, EventCharacters, EventOther} {
		d, _ := typ.MarshalText()
		var back EventType
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("got %s want %s", back, typ)
		}
	}
	var bad EventType
	if err := bad.UnmarshalText([]byte("Key")); err == nil {
		t.Errorf("expected error")
	}
}
