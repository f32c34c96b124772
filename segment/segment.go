package segment

import (
	"github.com/signadot/go-bmml"
	"github.com/signadot/go-bmml/debug"
	"github.com/signadot/go-bmml/dom"
)

type (
	PartialVoice   []*dom.Node
	PartialMeasure []PartialVoice
	Voice          []PartialMeasure
	Measure        []Voice
)

// Len returns the number of content nodes in m.
func (m Measure) Len() int {
	n := 0
	for _, v := range m {
		for _, pm := range v {
			for _, pv := range pm {
				n += len(pv)
			}
		}
	}
	return n
}

var layoutKinds = []dom.Kind{
	dom.KindSpace, dom.KindNewline, dom.KindMusicHyphen,
	dom.KindSeparator, dom.KindGenericText, dom.KindPartName,
}

// IsLayout reports whether n only affects the braille layout.
func IsLayout(n *dom.Node) bool {
	return n.Is(layoutKinds...)
}

// marker returns the nesting level opened by n, if n is an inaccord with a
// valid value.
func marker(n *dom.Node) (bmml.InaccordValue, bool) {
	in, ok := bmml.AsInaccord(n)
	if !ok {
		return 0, false
	}
	v, err := in.Value()
	if err != nil {
		if debug.Segment() {
			debug.Logf("segment: inaccord taken as content: %v\n", err)
		}
		return 0, false
	}
	return v, true
}

// Part segments the children of a part. It never fails: a marker before
// any content opens the levels it needs, and a barline with no open
// measure is ignored.
func Part(children []*dom.Node) []Measure {
	var (
		res []Measure
		cur Measure
	)
	for _, n := range children {
		if v, ok := marker(n); ok {
			cur = open(cur, v)
			continue
		}
		switch {
		case n.Kind == dom.KindBarline:
			if len(cur) != 0 {
				res = append(res, cur)
				cur = nil
			}
		case IsLayout(n):
		default:
			if len(cur) == 0 {
				cur = open(cur, bmml.InaccordFull)
			}
			v := cur[len(cur)-1]
			pm := v[len(v)-1]
			pm[len(pm)-1] = append(pm[len(pm)-1], n)
		}
	}
	if len(cur) != 0 {
		res = append(res, cur)
	}
	if debug.Segment() {
		debug.Logf("segment: %d children in %d measures\n", len(children), len(res))
	}
	return res
}

// open starts a new unit at level in m, along with the units below it.
// Missing units above level are created first.
func open(m Measure, level bmml.InaccordValue) Measure {
	if level == bmml.InaccordFull || len(m) == 0 {
		m = append(m, Voice{})
		if level == bmml.InaccordFull {
			level = bmml.InaccordPart
		}
	}
	v := &m[len(m)-1]
	if level == bmml.InaccordPart || len(*v) == 0 {
		*v = append(*v, PartialMeasure{})
		if level == bmml.InaccordPart {
			level = bmml.InaccordDivision
		}
	}
	pm := &(*v)[len(*v)-1]
	if level == bmml.InaccordDivision || len(*pm) == 0 {
		*pm = append(*pm, PartialVoice{})
	}
	return m
}
