package registry

import (
	"testing"

	"github.com/signadot/go-bmml/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	r := Builtin()
	require.Same(t, r, Builtin())
	require.Equal(t, 121, r.Len())

	tests := []struct {
		tag     string
		kind    dom.Kind
		content dom.Content
	}{
		{"score", dom.KindScore, dom.ContentComplex},
		{"part", dom.KindPart, dom.ContentComplex},
		{"barline", dom.KindBarline, dom.ContentComplex},
		{"inaccord", dom.KindInaccord, dom.ContentSimple},
		{"duration", dom.KindDuration, dom.ContentSimple},
		{"note_ref", dom.KindNoteRef, dom.ContentEmpty},
		{"meta_data", dom.KindMetaData, dom.ContentMixed},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			f, c, ok := r.Resolve(dom.Local(tt.tag))
			require.True(t, ok)
			assert.Equal(t, tt.content, c)
			n := f(dom.Local(tt.tag))
			assert.Equal(t, tt.kind, n.Kind)
			assert.Equal(t, tt.tag, n.Name.Local)
			assert.Equal(t, tt.tag, tt.kind.String())
		})
	}
}

func TestBuiltinCoversKinds(t *testing.T) {
	seen := map[dom.Kind]bool{}
	for _, e := range Builtin().Entries() {
		assert.Equal(t, e.Name.Local, e.Kind.String())
		seen[e.Kind] = true
	}
	for _, k := range dom.Kinds() {
		if k == dom.KindGeneric {
			assert.False(t, seen[k])
			continue
		}
		assert.True(t, seen[k], "kind %s not registered", k)
	}
}

func TestUnknownFallsBack(t *testing.T) {
	r := Builtin()
	_, _, ok := r.Resolve(dom.Local("not_bmml"))
	require.False(t, ok)
	n, c := r.Make(dom.Local("not_bmml"))
	assert.Equal(t, dom.KindGeneric, n.Kind)
	assert.Equal(t, dom.ContentComplex, c)

	// names are namespace qualified
	_, _, ok = r.Resolve(dom.Name{Space: "urn:x", Local: "part"})
	assert.False(t, ok)
}

func TestRegisterOverwrites(t *testing.T) {
	r := New()
	name := dom.Local("thing")
	r.Register(name, KindFactory(dom.KindNote), dom.ContentComplex)
	r.Register(name, KindFactory(dom.KindRest), dom.ContentSimple)
	require.Equal(t, 1, r.Len())
	e, ok := r.Lookup(name)
	require.True(t, ok)
	assert.Equal(t, dom.KindRest, e.Kind)
	assert.Equal(t, dom.ContentSimple, e.Content)
	n, c := r.Make(name)
	assert.Equal(t, dom.KindRest, n.Kind)
	assert.Equal(t, dom.ContentSimple, c)
}

func TestCloneIsIndependent(t *testing.T) {
	r := Builtin().Clone()
	r.Register(dom.Local("extra"), KindFactory(dom.KindGeneric), dom.ContentSimple)
	assert.Equal(t, Builtin().Len()+1, r.Len())
	_, _, ok := Builtin().Resolve(dom.Local("extra"))
	assert.False(t, ok)
}
