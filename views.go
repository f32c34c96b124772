package bmml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/go-bmml/dom"
)

func required(n *dom.Node, attr string) (string, error) {
	v, ok := n.Attr(attr)
	if !ok {
		return "", fmt.Errorf("%w: %s on <%s>", ErrMissingAttribute, attr, n.Name)
	}
	return v, nil
}

func optionalBool(n *dom.Node, attr string) (v, present bool, err error) {
	s, ok := n.Attr(attr)
	if !ok {
		return false, false, nil
	}
	switch s {
	case "true":
		return true, true, nil
	case "false":
		return false, true, nil
	}
	return false, true, fmt.Errorf("%w: %s=%q on <%s>", ErrIllegalEnumeration, attr, s, n.Name)
}

// as narrows n to the view V when it is of kind k.
func as[V ~struct{ *dom.Node }](k dom.Kind, n *dom.Node) (V, bool) {
	if n == nil || n.Kind != k {
		return V{}, false
	}
	return V{n}, true
}

type Score struct{ *dom.Node }

func AsScore(n *dom.Node) (Score, bool) { return as[Score](dom.KindScore, n) }

func (s Score) Version() (string, error) { return required(s.Node, "version") }

// Header returns the score_header child, or nil.
func (s Score) Header() *dom.Node { return s.Find(dom.KindScoreHeader) }

// Data returns the score_data child, or nil.
func (s Score) Data() *dom.Node { return s.Find(dom.KindScoreData) }

type Part struct{ *dom.Node }

func AsPart(n *dom.Node) (Part, bool) { return as[Part](dom.KindPart, n) }

func (p Part) ID() (string, error) { return required(p.Node, "id") }

type PartData struct{ *dom.Node }

func AsPartData(n *dom.Node) (PartData, bool) { return as[PartData](dom.KindPartData, n) }

func (p PartData) ID() (string, error) { return required(p.Node, "id") }

// InaccordValue is the nesting level an inaccord marker opens.
type InaccordValue int

const (
	InaccordFull InaccordValue = iota
	InaccordPart
	InaccordDivision
)

func (v InaccordValue) String() string {
	switch v {
	case InaccordFull:
		return "full"
	case InaccordPart:
		return "part"
	case InaccordDivision:
		return "division"
	default:
		return "<invalid>"
	}
}

func ParseInaccordValue(s string) (InaccordValue, error) {
	v, ok := map[string]InaccordValue{
		"full":     InaccordFull,
		"part":     InaccordPart,
		"division": InaccordDivision,
	}[s]
	if ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: inaccord value %q", ErrIllegalEnumeration, s)
}

func (v InaccordValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *InaccordValue) UnmarshalText(d []byte) error {
	pv, err := ParseInaccordValue(string(d))
	if err != nil {
		return err
	}
	*v = pv
	return nil
}

type Inaccord struct{ *dom.Node }

func AsInaccord(n *dom.Node) (Inaccord, bool) { return as[Inaccord](dom.KindInaccord, n) }

func (i Inaccord) ID() (string, error) { return required(i.Node, "id") }

func (i Inaccord) Value() (InaccordValue, error) {
	s, err := required(i.Node, "value")
	if err != nil {
		return 0, err
	}
	return ParseInaccordValue(s)
}

type BarlineType int

const (
	BarlineLeft BarlineType = iota
	BarlineMiddle
	BarlineRight
)

func (t BarlineType) String() string {
	switch t {
	case BarlineLeft:
		return "left"
	case BarlineMiddle:
		return "middle"
	case BarlineRight:
		return "right"
	default:
		return "<invalid>"
	}
}

type Barline struct{ *dom.Node }

func AsBarline(n *dom.Node) (Barline, bool) { return as[Barline](dom.KindBarline, n) }

func (b Barline) ID() (string, error) { return required(b.Node, "id") }

// Type returns the barline type. Absent and unknown values both report
// false.
func (b Barline) Type() (BarlineType, bool) {
	s, _ := b.Attr("type")
	switch s {
	case "left":
		return BarlineLeft, true
	case "middle":
		return BarlineMiddle, true
	case "right":
		return BarlineRight, true
	}
	return 0, false
}

type TimeSignature struct{ *dom.Node }

func AsTimeSignature(n *dom.Node) (TimeSignature, bool) { return as[TimeSignature](dom.KindTimeSignature, n) }

func (t TimeSignature) ID() (string, error) { return required(t.Node, "id") }

func (t TimeSignature) Values() (string, error) { return required(t.Node, "values") }

func (t TimeSignature) SingleNumber() (v, present bool, err error) {
	return optionalBool(t.Node, "single_number")
}

func (t TimeSignature) Figure() (v, present bool, err error) {
	return optionalBool(t.Node, "figure")
}

type Duration struct{ *dom.Node }

func AsDuration(n *dom.Node) (Duration, bool) { return as[Duration](dom.KindDuration, n) }

func (d Duration) Int() (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(d.Text))
	if err != nil {
		return 0, fmt.Errorf("duration %q: %w", d.Text, err)
	}
	return v, nil
}

type Note struct{ *dom.Node }

func AsNote(n *dom.Node) (Note, bool) { return as[Note](dom.KindNote, n) }

func (n Note) ID() (string, error) { return required(n.Node, "id") }

// Duration returns the duration held in note_data, if any.
func (n Note) Duration() (Duration, bool) {
	return durationIn(n.Find(dom.KindNoteData))
}

type Rest struct{ *dom.Node }

func AsRest(n *dom.Node) (Rest, bool) { return as[Rest](dom.KindRest, n) }

func (r Rest) ID() (string, error) { return required(r.Node, "id") }

// Duration returns the duration held in rest_data, if any.
func (r Rest) Duration() (Duration, bool) {
	return durationIn(r.Find(dom.KindRestData))
}

func durationIn(data *dom.Node) (Duration, bool) {
	if data == nil {
		return Duration{}, false
	}
	return AsDuration(data.Find(dom.KindDuration))
}
