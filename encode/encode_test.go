package encode_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-bmml/dom"
	"github.com/signadot/go-bmml/encode"
	"github.com/signadot/go-bmml/parse"
	"github.com/signadot/go-bmml/stream"
)

func testPart() *dom.Node {
	return dom.Elem("part", dom.KindPart,
		dom.Elem("note", dom.KindNote,
			dom.Elem("note_data", dom.KindNoteData,
				dom.Elem("duration", dom.KindDuration).WithText("4"),
			),
		),
		dom.Elem("generic_text", dom.KindGenericText).WithText("a & b"),
		dom.Elem("barline", dom.KindBarline),
	).WithAttr("z", "2").WithAttr("id", "p1")
}

func TestSerialize(t *testing.T) {
	evs, err := encode.Events(dom.Elem("barline", dom.KindBarline).WithAttr("type", "right").WithAttr("id", "b"))
	if err != nil {
		t.Fatal(err)
	}
	want := []stream.Event{
		stream.Start(dom.Local("barline"),
			stream.Attr{Name: dom.Local("id"), Value: "b"},
			stream.Attr{Name: dom.Local("type"), Value: "right"},
		),
		stream.End(dom.Local("barline")),
	}
	if diff := cmp.Diff(want, evs); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestSerializeNoWrapper(t *testing.T) {
	rec := &stream.Recorder{}
	if err := encode.Serialize(dom.Elem("duration", dom.KindDuration).WithText("8"), false, rec); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]stream.Event{stream.Chars("8")}, rec.Events); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		opts []encode.EncodeOption
		want string
	}{
		{
			name: "compact",
			want: `<part id="p1" z="2"><note><note_data><duration>4</duration></note_data></note>` +
				`<generic_text>a &amp; b</generic_text><barline/></part>` + "\n",
		},
		{
			name: "indent",
			opts: []encode.EncodeOption{encode.EncodeIndent(2)},
			want: `<part id="p1" z="2">
  <note>
    <note_data>
      <duration>4</duration>
    </note_data>
  </note>
  <generic_text>a &amp; b</generic_text>
  <barline/>
</part>
`,
		},
		{
			name: "header",
			opts: []encode.EncodeOption{encode.EncodeHeader(true), encode.EncodeIndent(1)},
			want: `<?xml version="1.0" encoding="UTF-8"?>
<part id="p1" z="2">
 <note>
  <note_data>
   <duration>4</duration>
  </note_data>
 </note>
 <generic_text>a &amp; b</generic_text>
 <barline/>
</part>
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(testPart(), buf, tt.opts...); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("output (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeAttrEscape(t *testing.T) {
	n := dom.Elem("x", dom.KindGeneric).WithAttr("q", "a\"<b>\n")
	got := encode.MustString(n)
	want := `<x q="a&quot;&lt;b&gt;&#xA;"/>`
	if got != want {
		t.Errorf("got %s want %s", got, want)
	}
	back, err := parse.ParseBytes([]byte(got))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := back.Attr("q"); v != "a\"<b>\n" {
		t.Errorf("attribute came back as %q", v)
	}
}

func TestEncodeComments(t *testing.T) {
	rec := &stream.Recorder{}
	for _, ev := range []stream.Event{
		stream.Start(dom.Local("score")),
		{Type: stream.EventOther, Text: " c "},
		{Type: stream.EventOther},
		stream.End(dom.Local("score")),
	} {
		if err := rec.WriteEvent(&ev); err != nil {
			t.Fatal(err)
		}
	}
	buf := bytes.NewBuffer(nil)
	es := encode.NewEncState(buf)
	for i := range rec.Events {
		if err := es.WriteEvent(&rec.Events[i]); err != nil {
			t.Fatal(err)
		}
	}
	if err := es.Close(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "<score><!-- c --></score>\n" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeUnbalanced(t *testing.T) {
	es := encode.NewEncState(bytes.NewBuffer(nil))
	start := stream.Start(dom.Local("a"))
	if err := es.WriteEvent(&start); err != nil {
		t.Fatal(err)
	}
	end := stream.End(dom.Local("b"))
	if err := es.WriteEvent(&end); err == nil {
		t.Error("mismatched end accepted")
	}
	if err := es.Close(); err == nil {
		t.Error("unclosed element accepted")
	}
}

func TestEncodeColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(testPart(), buf, encode.EncodeColors(encode.NewColors())); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("no escape sequences in %q", buf.String())
	}

	c := encode.NewColors()
	if got := c.Color(dom.KindNote, encode.ColorAttr(99), "x"); got != "x" {
		t.Errorf("default color changed text: %q", got)
	}
	if got := c.Color(dom.KindNote, encode.TextColor, "100%"); !strings.Contains(got, "100%") {
		t.Errorf("percent lost: %q", got)
	}
}

func TestRoundTripText(t *testing.T) {
	for _, opts := range [][]encode.EncodeOption{
		nil,
		{encode.EncodeIndent(4), encode.EncodeHeader(true)},
	} {
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(testPart(), buf, opts...); err != nil {
			t.Fatal(err)
		}
		got, err := parse.ParseReader(buf)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(testPart(), got); diff != "" {
			t.Errorf("round trip (-want +got):\n%s", diff)
		}
	}
}

func TestEncodeNamespaces(t *testing.T) {
	inputs := []string{
		`<score xmlns:xlink="http://www.w3.org/1999/xlink"><part id="p" xlink:href="#x"/></score>`,
		`<score xmlns="urn:bmml"><part id="p"/></score>`,
	}
	for _, in := range inputs {
		n, err := parse.ParseBytes([]byte(in))
		if err != nil {
			t.Fatal(err)
		}
		if got := encode.MustString(n); got != in {
			t.Errorf("got %s want %s", got, in)
		}
	}
}
