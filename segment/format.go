package segment

import (
	"strconv"
	"strings"

	"github.com/signadot/go-bmml"
	"github.com/signadot/go-bmml/dom"
)

// String renders m in bracket notation: [voice] {partial measure}
// (partial voice), with the duration after each note and rest.
//
//	[{(note 4, rest 4)}][{(note 2)}{(note 2)(note 2)}]
func (m Measure) String() string {
	buf := &strings.Builder{}
	for _, v := range m {
		buf.WriteByte('[')
		for _, pm := range v {
			buf.WriteByte('{')
			for _, pv := range pm {
				buf.WriteByte('(')
				for i, n := range pv {
					if i != 0 {
						buf.WriteString(", ")
					}
					buf.WriteString(Label(n))
				}
				buf.WriteByte(')')
			}
			buf.WriteByte('}')
		}
		buf.WriteByte(']')
	}
	return buf.String()
}

// Label names n by its tag, followed by its duration for notes and rests.
func Label(n *dom.Node) string {
	var (
		d  bmml.Duration
		ok bool
	)
	if note, isNote := bmml.AsNote(n); isNote {
		d, ok = note.Duration()
	} else if rest, isRest := bmml.AsRest(n); isRest {
		d, ok = rest.Duration()
	}
	if !ok {
		return n.Name.String()
	}
	v, err := d.Int()
	if err != nil {
		return n.Name.String() + " " + d.Text
	}
	return n.Name.String() + " " + strconv.Itoa(v)
}
