package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/go-bmml/debug"
	"github.com/signadot/go-bmml/dom"
	"github.com/signadot/go-bmml/stream"
)

// ParseReader parses the XML document read from r.
func ParseReader(r io.Reader, opts ...ParseOption) (*dom.Node, error) {
	pOpts := makeOpts(opts)
	return parseDocument(stream.NewDecoder(r, pOpts.streamOpts...), pOpts)
}

func ParseBytes(d []byte, opts ...ParseOption) (*dom.Node, error) {
	return ParseReader(bytes.NewReader(d), opts...)
}

// Parse parses a whole document from src: optional prolog events, one root
// element, then nothing but whitespace, comments and processing
// instructions.
func Parse(src stream.Source, opts ...ParseOption) (*dom.Node, error) {
	return parseDocument(src, makeOpts(opts))
}

// ParseNode parses one element from src. If expectWrapper is true the next
// event must be the element's start and its end is consumed as well.
// Otherwise the start was the last event consumed from src and parsing
// stops before the element's end.
func ParseNode(src stream.Source, expectWrapper bool, opts ...ParseOption) (*dom.Node, error) {
	return parseNode(src, expectWrapper, makeOpts(opts))
}

func parseDocument(src stream.Source, opts *parseOpts) (*dom.Node, error) {
	for {
		ev, err := src.Peek()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrNoRoot
			}
			return nil, err
		}
		if ev.Type == stream.EventStartElement {
			break
		}
		if err := outsideRoot(ev); err != nil {
			return nil, err
		}
		if _, err := src.Next(); err != nil {
			return nil, err
		}
	}
	root, err := parseNode(src, true, opts)
	if err != nil {
		return nil, err
	}
	for {
		ev, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return root, nil
			}
			return nil, err
		}
		if ev.Type == stream.EventStartElement {
			return nil, fmt.Errorf("%w: <%s> at %s", ErrTrailingContent, ev.Name, ev.Pos)
		}
		if err := outsideRoot(ev); err != nil {
			return nil, err
		}
	}
}

func outsideRoot(ev *stream.Event) error {
	switch ev.Type {
	case stream.EventEndElement:
		return fmt.Errorf("%w: </%s> at %s", ErrUnexpectedClosingTag, ev.Name, ev.Pos)
	case stream.EventCharacters:
		if !isWhitespace(ev.Text) {
			return fmt.Errorf("%w: characters at %s", ErrTrailingContent, ev.Pos)
		}
	}
	return nil
}

func parseNode(src stream.Source, expectWrapper bool, opts *parseOpts) (*dom.Node, error) {
	var start *stream.Event
	if expectWrapper {
		ev, err := stream.Expect(src, stream.EventStartElement, nil)
		if err != nil {
			return nil, err
		}
		start = ev
	} else {
		start = src.Last()
		if start == nil || start.Type != stream.EventStartElement {
			return nil, fmt.Errorf("%w: no start element to continue", errInternal)
		}
	}
	node, err := parseContent(src, start, opts)
	if err != nil {
		return nil, err
	}
	if !expectWrapper {
		return node, nil
	}
	end, err := src.Next()
	if err != nil {
		return nil, err
	}
	if end.Type != stream.EventEndElement || end.Name != node.Name {
		return nil, fmt.Errorf("%w: <%s> closed by %s at %s", ErrMismatchedClosingTag, node.Name, end, end.Pos)
	}
	return node, nil
}

// parseContent parses the attributes and content of the element started by
// start and returns when the next event is an end event.
func parseContent(src stream.Source, start *stream.Event, opts *parseOpts) (*dom.Node, error) {
	node, content := opts.registry.Make(start.Name)
	for _, a := range start.Attrs {
		node.SetAttr(a.Name, a.Value)
	}
	if debug.Parse() {
		debug.Logf("parse <%s> kind %s content %s at %s\n", start.Name, node.Kind, content, start.Pos)
	}
	var text string
	for {
		ev, err := src.Peek()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: in <%s> opened at %s", ErrUnexpectedEOF, start.Name, start.Pos)
			}
			return nil, err
		}
		if ev.Type == stream.EventEndElement {
			break
		}
		if _, err := src.Next(); err != nil {
			return nil, err
		}
		switch ev.Type {
		case stream.EventStartElement:
			if content == dom.ContentEmpty {
				return nil, fmt.Errorf("%w: <%s> in <%s> at %s", ErrContentInEmptyElement, ev.Name, node.Name, ev.Pos)
			}
			if text != "" {
				if !isWhitespace(text) {
					return nil, fmt.Errorf("%w: <%s> in <%s> at %s", ErrElementInSimpleContent, ev.Name, node.Name, ev.Pos)
				}
				text = ""
			}
			child, err := parseContent(src, ev, opts)
			if err != nil {
				return nil, err
			}
			end, err := src.Next()
			if err != nil {
				return nil, err
			}
			if end.Name != child.Name {
				return nil, fmt.Errorf("%w: <%s> closed by %s at %s", ErrUnexpectedClosingTag, child.Name, end, end.Pos)
			}
			node.Children = append(node.Children, child)
		case stream.EventCharacters:
			if len(node.Children) != 0 {
				if !isWhitespace(ev.Text) {
					return nil, fmt.Errorf("%w: in <%s> at %s", ErrCharactersInComplexContent, node.Name, ev.Pos)
				}
				break
			}
			if content == dom.ContentEmpty && !isWhitespace(ev.Text) {
				return nil, fmt.Errorf("%w: characters in <%s> at %s", ErrContentInEmptyElement, node.Name, ev.Pos)
			}
			text += ev.Text
		default:
			// comments, processing instructions, directives
		}
	}
	if len(node.Children) == 0 && text != "" {
		if content.KeepsWhitespace() || !isWhitespace(text) {
			node.Text = text
		}
	}
	return node, nil
}

func isWhitespace(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\n', '\r', '\t':
		default:
			return false
		}
	}
	return true
}
