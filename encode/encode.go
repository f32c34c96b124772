package encode

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/go-bmml/dom"
	"github.com/signadot/go-bmml/stream"
)

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\r", "&#xD;")
	attrEscaper = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
		"\t", "&#x9;", "\n", "&#xA;", "\r", "&#xD;",
	)
)

// EncState is a stream.Sink writing XML text. Qualified names are written
// with the prefixes declared by the xmlns attributes in scope, see
// stream.Namespaces.
type EncState struct {
	w       io.Writer
	indent  int
	header  bool
	started bool
	fresh   bool

	frames  []frame
	ns      stream.Namespaces
	pending bool // the last start tag is missing its '>'

	Color func(dom.Kind, ColorAttr, string) string
}

type frame struct {
	name  dom.Name
	qname string
	kind  dom.Kind
	elems bool
}

// Encode writes node as XML text followed by a newline.
func Encode(node *dom.Node, w io.Writer, opts ...EncodeOption) error {
	es := NewEncState(w, opts...)
	if err := Serialize(node, true, es); err != nil {
		return err
	}
	return es.Close()
}

func NewEncState(w io.Writer, opts ...EncodeOption) *EncState {
	es := &EncState{w: w, fresh: true}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *EncState) WriteEvent(ev *stream.Event) error {
	if !es.started {
		es.started = true
		if es.header {
			if err := es.write(xml.Header); err != nil {
				return err
			}
			es.fresh = true
		}
	}
	switch ev.Type {
	case stream.EventStartElement:
		return es.start(ev)
	case stream.EventEndElement:
		return es.end(ev)
	case stream.EventCharacters:
		if err := es.closeStart(); err != nil {
			return err
		}
		return es.write(es.color(es.kind(), TextColor, textEscaper.Replace(ev.Text)))
	case stream.EventOther:
		if ev.Text == "" {
			return nil
		}
		if err := es.closeStart(); err != nil {
			return err
		}
		es.markElems()
		if err := es.newline(len(es.frames)); err != nil {
			return err
		}
		return es.write(es.color(dom.KindGeneric, CommentColor, "<!--"+ev.Text+"-->"))
	default:
		return &stream.Error{Msg: fmt.Sprintf("unknown event type %d", ev.Type), Pos: ev.Pos}
	}
}

func (es *EncState) start(ev *stream.Event) error {
	if err := es.closeStart(); err != nil {
		return err
	}
	es.markElems()
	if err := es.newline(len(es.frames)); err != nil {
		return err
	}
	k := kindOf(ev.Name)
	qname, attrs := es.ns.Start(ev.Name, ev.Attrs)
	buf := strings.Builder{}
	buf.WriteString(es.color(k, SepColor, "<"))
	buf.WriteString(es.color(k, TagColor, qname))
	for _, a := range attrs {
		buf.WriteByte(' ')
		buf.WriteString(es.color(k, AttrNameColor, a.Name))
		buf.WriteString(es.color(k, SepColor, `="`))
		buf.WriteString(es.color(k, AttrValueColor, attrEscaper.Replace(a.Value)))
		buf.WriteString(es.color(k, SepColor, `"`))
	}
	if err := es.write(buf.String()); err != nil {
		return err
	}
	es.frames = append(es.frames, frame{name: ev.Name, qname: qname, kind: k})
	es.pending = true
	return nil
}

func (es *EncState) end(ev *stream.Event) error {
	n := len(es.frames)
	if n == 0 || es.frames[n-1].name != ev.Name {
		return &stream.Error{Msg: fmt.Sprintf("unexpected %s", ev), Pos: ev.Pos}
	}
	f := es.frames[n-1]
	es.frames = es.frames[:n-1]
	es.ns.End()
	if es.pending {
		es.pending = false
		return es.write(es.color(f.kind, SepColor, "/>"))
	}
	if f.elems {
		if err := es.newline(n - 1); err != nil {
			return err
		}
	}
	return es.write(es.color(f.kind, SepColor, "</") +
		es.color(f.kind, TagColor, f.qname) +
		es.color(f.kind, SepColor, ">"))
}

// Close checks that every element was closed and ends the output with a
// newline.
func (es *EncState) Close() error {
	if len(es.frames) != 0 {
		return &stream.Error{Msg: fmt.Sprintf("unclosed element <%s>", es.frames[len(es.frames)-1].qname)}
	}
	if !es.started {
		return nil
	}
	return es.write("\n")
}

func (es *EncState) closeStart() error {
	if !es.pending {
		return nil
	}
	es.pending = false
	f := &es.frames[len(es.frames)-1]
	return es.write(es.color(f.kind, SepColor, ">"))
}

func (es *EncState) markElems() {
	if n := len(es.frames); n != 0 {
		es.frames[n-1].elems = true
	}
}

func (es *EncState) newline(depth int) error {
	if es.indent <= 0 || es.fresh {
		return nil
	}
	return es.write("\n" + strings.Repeat(" ", depth*es.indent))
}

func (es *EncState) kind() dom.Kind {
	if n := len(es.frames); n != 0 {
		return es.frames[n-1].kind
	}
	return dom.KindGeneric
}

func (es *EncState) color(k dom.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func (es *EncState) write(s string) error {
	es.fresh = false
	_, err := io.WriteString(es.w, s)
	return err
}

func kindOf(name dom.Name) dom.Kind {
	if name.Space != "" {
		return dom.KindGeneric
	}
	k, _ := dom.KindByName(name.Local)
	return k
}
