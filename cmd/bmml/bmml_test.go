package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-bmml"
	"github.com/signadot/go-bmml/dom"
	"github.com/signadot/go-bmml/segment"
)

func TestMeasuresReport(t *testing.T) {
	score, err := bmml.LoadFile("../../testdata/sample.bmml")
	if err != nil {
		t.Fatal(err)
	}
	res, err := segment.Score(score.Node)
	if err != nil {
		t.Fatal(err)
	}
	rep, err := newMeasuresReport("sample", res, "")
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := rep.write(buf); err != nil {
		t.Fatal(err)
	}
	want := `global ts 4 4
p1
Found part_data
[{(note 4, rest 4)}]
[{(note 2)}][{(note 2)}]
sample: 1 full, 0 part, 0 division
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("report (-want +got):\n%s", diff)
	}

	if _, err := newMeasuresReport("sample", res, "p9"); err == nil {
		t.Error("missing part accepted")
	}
}

func TestRoundTrip(t *testing.T) {
	diff, err := roundTrip(strings.NewReader(`<score><score_data><part id="p"><note/></part></score_data></score>`))
	if err != nil {
		t.Fatal(err)
	}
	if diff != "" {
		t.Errorf("unexpected diff %s", diff)
	}
	if _, err := roundTrip(strings.NewReader(`<score>`)); err == nil {
		t.Error("broken document accepted")
	}
}

func TestToData(t *testing.T) {
	n := dom.Elem("part", dom.KindPart,
		dom.Elem("other", dom.KindGeneric).WithText("x"),
	).WithAttr("id", "p")
	want := &nodeData{
		Tag:   "part",
		Kind:  "part",
		Attrs: map[string]string{"id": "p"},
		Children: []*nodeData{
			{Tag: "other", Text: "x"},
		},
	}
	if diff := cmp.Diff(want, toData(n)); diff != "" {
		t.Errorf("data (-want +got):\n%s", diff)
	}
}

var errClosed = errors.New("closed")

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errClosed }

func TestWriteErrors(t *testing.T) {
	score, err := bmml.LoadFile("../../testdata/sample.bmml")
	if err != nil {
		t.Fatal(err)
	}
	res, err := segment.Score(score.Node)
	if err != nil {
		t.Fatal(err)
	}
	rep, err := newMeasuresReport("sample", res, "")
	if err != nil {
		t.Fatal(err)
	}
	rep.TimeSignatures = nil
	if err := rep.write(failWriter{}); !errors.Is(err, errClosed) {
		t.Errorf("measures: got %v", err)
	}

	in, err := os.ReadFile("../../testdata/sample.bmml")
	if err != nil {
		t.Fatal(err)
	}
	cfg := &TextConfig{MainConfig: &MainConfig{}}
	if err := lead(cfg, failWriter{}, bytes.NewReader(in)); !errors.Is(err, errClosed) {
		t.Errorf("lead: got %v", err)
	}
	buf := bytes.NewBuffer(nil)
	if err := lead(cfg, buf, bytes.NewReader(in)); err != nil {
		t.Fatal(err)
	}
	if want := "3 text elements at beginning.\ntime_signature\n"; buf.String() != want {
		t.Errorf("lead: got %q want %q", buf.String(), want)
	}
}

func TestForInputDash(t *testing.T) {
	in := strings.NewReader("<score/>")
	var got io.Reader
	err := forInput(in, "-", func(name string, r io.Reader) error {
		got = r
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != io.Reader(in) {
		t.Error("- did not read the given input")
	}
}
