package main

import (
	"fmt"
	"io"

	"github.com/signadot/go-bmml"
	"github.com/signadot/go-bmml/format"
	"github.com/signadot/go-bmml/segment"

	"github.com/scott-cotton/cli"
)

type measuresReport struct {
	File           string               `json:"file"`
	TimeSignatures []string             `json:"timeSignatures,omitempty"`
	Parts          []partReport         `json:"parts"`
	Markers        segment.MarkerCounts `json:"markers"`
}

type partReport struct {
	ID       string   `json:"id"`
	PartData bool     `json:"partData"`
	Measures []string `json:"measures"`
}

func measures(cfg *MeasuresConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Measures.Parse(cc, args)
	if err != nil {
		return err
	}
	return forInputs(cc, args, func(name string, r io.Reader) error {
		score, err := bmml.Load(r, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		res, err := segment.Score(score.Node)
		if err != nil {
			return err
		}
		rep, err := newMeasuresReport(name, res, cfg.Part)
		if err != nil {
			return err
		}
		f := cfg.outFormat(format.TextFormat)
		if f.IsData() {
			return writeData(cc.Out, f, rep)
		}
		return rep.write(cc.Out)
	})
}

func newMeasuresReport(name string, res *segment.Result, only string) (*measuresReport, error) {
	rep := &measuresReport{File: name, Markers: res.Markers}
	for _, n := range res.TimeSignatures {
		ts, _ := bmml.AsTimeSignature(n)
		v, err := ts.Values()
		if err != nil {
			return nil, err
		}
		rep.TimeSignatures = append(rep.TimeSignatures, v)
	}
	for _, p := range res.Parts {
		if only != "" && p.ID != only {
			continue
		}
		pr := partReport{ID: p.ID, PartData: p.Data != nil, Measures: []string{}}
		for _, m := range p.Measures {
			pr.Measures = append(pr.Measures, m.String())
		}
		rep.Parts = append(rep.Parts, pr)
	}
	if only != "" && len(rep.Parts) == 0 {
		return nil, fmt.Errorf("no part %q", only)
	}
	return rep, nil
}

func (rep *measuresReport) write(w io.Writer) error {
	for _, ts := range rep.TimeSignatures {
		if _, err := fmt.Fprintf(w, "global ts %s\n", ts); err != nil {
			return err
		}
	}
	for _, p := range rep.Parts {
		if _, err := fmt.Fprintln(w, p.ID); err != nil {
			return err
		}
		if p.PartData {
			if _, err := fmt.Fprintln(w, "Found part_data"); err != nil {
				return err
			}
		}
		for _, m := range p.Measures {
			if _, err := fmt.Fprintln(w, m); err != nil {
				return err
			}
		}
	}
	mc := rep.Markers
	if mc.Full+mc.Part+mc.Division != 0 {
		_, err := fmt.Fprintf(w, "%s: %d full, %d part, %d division\n", rep.File, mc.Full, mc.Part, mc.Division)
		return err
	}
	return nil
}
