package bmml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/go-bmml/dom"
	"github.com/signadot/go-bmml/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSample(t *testing.T) *Score {
	t.Helper()
	s, err := LoadFile("testdata/sample.bmml")
	require.NoError(t, err)
	return s
}

func TestLoad(t *testing.T) {
	s := loadSample(t)
	v, err := s.Version()
	require.NoError(t, err)
	assert.Equal(t, "2008.1", v)
	require.NotNil(t, s.Header())
	require.NotNil(t, s.Data())
	assert.Len(t, s.Data().FindAll(dom.KindPart), 1)

	_, err = Load(strings.NewReader(`<part id="p"/>`))
	require.ErrorIs(t, err, ErrNotScore)

	_, err = Load(strings.NewReader(`<score><inaccord>x<note/></inaccord></score>`))
	require.ErrorIs(t, err, parse.ErrElementInSimpleContent)

	_, err = LoadFile("testdata/missing.bmml")
	require.Error(t, err)
}

func TestWrite(t *testing.T) {
	s := loadSample(t)
	buf := bytes.NewBuffer(nil)
	require.NoError(t, Write(buf, s.Node))
	assert.True(t, strings.HasPrefix(buf.String(), `<?xml version="1.0" encoding="UTF-8"?>`))

	back, err := Load(buf)
	require.NoError(t, err)
	assert.True(t, dom.Equal(s.Node, back.Node))
}

func TestViews(t *testing.T) {
	s := loadSample(t)

	ts, ok := AsTimeSignature(FindID(s.Node, "ts1"))
	require.True(t, ok)
	values, err := ts.Values()
	require.NoError(t, err)
	assert.Equal(t, "4 4", values)
	single, present, err := ts.SingleNumber()
	require.NoError(t, err)
	assert.True(t, present)
	assert.False(t, single)
	_, present, err = ts.Figure()
	require.NoError(t, err)
	assert.False(t, present)

	n, ok := AsNote(FindID(s.Node, "n1"))
	require.True(t, ok)
	d, ok := n.Duration()
	require.True(t, ok)
	dur, err := d.Int()
	require.NoError(t, err)
	assert.Equal(t, 4, dur)

	r, ok := AsRest(FindID(s.Node, "r1"))
	require.True(t, ok)
	_, ok = r.Duration()
	assert.True(t, ok)

	in, ok := AsInaccord(FindID(s.Node, "i1"))
	require.True(t, ok)
	iv, err := in.Value()
	require.NoError(t, err)
	assert.Equal(t, InaccordFull, iv)

	b1, ok := AsBarline(FindID(s.Node, "b1"))
	require.True(t, ok)
	_, ok = b1.Type()
	assert.False(t, ok)
	b2, _ := AsBarline(FindID(s.Node, "b2"))
	bt, ok := b2.Type()
	assert.True(t, ok)
	assert.Equal(t, BarlineRight, bt)

	pd, ok := AsPartData(FindID(s.Node, "p1"))
	require.True(t, ok, "part_data precedes part in document order")
	id, err := pd.ID()
	require.NoError(t, err)
	assert.Equal(t, "p1", id)

	_, ok = AsPart(FindID(s.Node, "n1"))
	assert.False(t, ok)
	_, ok = AsNote(nil)
	assert.False(t, ok)
}

func TestViewErrors(t *testing.T) {
	in := Inaccord{dom.Elem("inaccord", dom.KindInaccord)}
	_, err := in.Value()
	require.ErrorIs(t, err, ErrMissingAttribute)
	_, err = in.ID()
	require.ErrorIs(t, err, ErrMissingAttribute)

	in.WithAttr("value", "half")
	_, err = in.Value()
	require.ErrorIs(t, err, ErrIllegalEnumeration)

	ts := TimeSignature{dom.Elem("time_signature", dom.KindTimeSignature).WithAttr("figure", "yes")}
	_, present, err := ts.Figure()
	assert.True(t, present)
	require.ErrorIs(t, err, ErrIllegalEnumeration)

	d := Duration{dom.Elem("duration", dom.KindDuration).WithText("x")}
	_, err = d.Int()
	require.Error(t, err)
}

func TestInaccordValueText(t *testing.T) {
	var v InaccordValue
	require.NoError(t, v.UnmarshalText([]byte("division")))
	assert.Equal(t, InaccordDivision, v)
	d, err := v.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "division", string(d))
	require.ErrorIs(t, v.UnmarshalText([]byte("all")), ErrIllegalEnumeration)
}

func TestText(t *testing.T) {
	s := loadSample(t)
	got := Text(s.Data())
	assert.Equal(t, "ETUDE ⠼⠙⠲Piano⠹⠧⠀ ⠝⠣⠜⠏⠣⠅", got)
	assert.Equal(t, "", Text(s.Header()))
}

func TestLeadingText(t *testing.T) {
	s := loadSample(t)
	text, rest := LeadingText(s.Data())
	require.Len(t, text, 3)
	assert.Equal(t, dom.KindSpace, text[2].Kind)
	require.NotEmpty(t, rest)
	assert.Equal(t, dom.KindTimeSignature, rest[0].Kind)
}

func TestFindID(t *testing.T) {
	s := loadSample(t)
	assert.Equal(t, dom.KindBarline, FindID(s.Node, "b2").Kind)
	assert.Nil(t, FindID(s.Node, "nope"))
}
