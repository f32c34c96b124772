package segment

import (
	"fmt"

	"github.com/signadot/go-bmml"
	"github.com/signadot/go-bmml/debug"
	"github.com/signadot/go-bmml/dom"
)

// PartMeasures holds the measures of one part.
type PartMeasures struct {
	ID string
	// Data is the part_data element describing the part, or nil.
	Data     *dom.Node
	Measures []Measure
}

// MarkerCounts counts the inaccord markers of a score by value.
type MarkerCounts struct {
	Full     int `json:"full"`
	Part     int `json:"part"`
	Division int `json:"division"`
}

type Result struct {
	// TimeSignatures are the global time signatures, in score order.
	TimeSignatures []*dom.Node
	// Parts are ordered by first appearance. Parts sharing an id are
	// concatenated.
	Parts   []PartMeasures
	Markers MarkerCounts
}

// Part returns the measures of the part with the given id, or nil.
func (r *Result) Part(id string) *PartMeasures {
	for i := range r.Parts {
		if r.Parts[i].ID == id {
			return &r.Parts[i]
		}
	}
	return nil
}

// Score segments every part in the score_data of score.
func Score(score *dom.Node) (*Result, error) {
	s, ok := bmml.AsScore(score)
	if !ok {
		return nil, fmt.Errorf("%w: root is <%s>", bmml.ErrNotScore, score.Name)
	}
	res := &Result{}
	data := s.Data()
	if data == nil {
		return res, nil
	}
	index := map[string]int{}
	for _, n := range data.Children {
		if n.Kind == dom.KindTimeSignature {
			res.TimeSignatures = append(res.TimeSignatures, n)
			continue
		}
		p, ok := bmml.AsPart(n)
		if !ok {
			continue
		}
		id, err := p.ID()
		if err != nil {
			return nil, err
		}
		res.Markers.add(p.Children)
		measures := Part(p.Children)
		i, ok := index[id]
		if !ok {
			i = len(res.Parts)
			index[id] = i
			pm := PartMeasures{ID: id}
			if pd, ok := bmml.AsPartData(bmml.FindID(score, id)); ok {
				pm.Data = pd.Node
			}
			res.Parts = append(res.Parts, pm)
		}
		res.Parts[i].Measures = append(res.Parts[i].Measures, measures...)
	}
	if debug.Segment() {
		debug.LogAny(res.Markers)
	}
	return res, nil
}

func (c *MarkerCounts) add(children []*dom.Node) {
	for _, n := range children {
		v, ok := marker(n)
		if !ok {
			continue
		}
		switch v {
		case bmml.InaccordFull:
			c.Full++
		case bmml.InaccordPart:
			c.Part++
		case bmml.InaccordDivision:
			c.Division++
		}
	}
}
