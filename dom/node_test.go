package dom

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAttrNamesSorted(t *testing.T) {
	n := New(Local("note"), KindNote)
	n.SetAttr(Local("value"), "1")
	n.SetAttr(Name{Space: "x", Local: "a"}, "2")
	n.SetAttr(Local("id"), "3")
	got := n.AttrNames()
	want := []Name{Local("id"), Local("value"), {Space: "x", Local: "a"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("attr names (-want +got):\n%s", diff)
	}
}

func TestTextChildrenExclusive(t *testing.T) {
	n := New(Local("part"), KindPart)
	n.SetText("abc")
	n.Append(New(Local("space"), KindSpace))
	if n.Text != "" {
		t.Errorf("text %q survived append", n.Text)
	}
	n.SetText("def")
	if len(n.Children) != 0 {
		t.Errorf("children survived set text: %d", len(n.Children))
	}
}

func TestFind(t *testing.T) {
	n := Elem("note", KindNote,
		Elem("note_data", KindNoteData,
			Elem("duration", KindDuration).WithText("4")),
		Elem("dot", KindDot),
		Elem("dot", KindDot))
	if nd := n.Find(KindNoteData); nd == nil || nd.Find(KindDuration).Text != "4" {
		t.Fatalf("could not find duration")
	}
	if got := len(n.FindAll(KindDot)); got != 2 {
		t.Errorf("got %d dots, want 2", got)
	}
	if n.Find(KindRest) != nil {
		t.Errorf("found a rest")
	}
	if got := n.Count(); got != 5 {
		t.Errorf("count %d, want 5", got)
	}
}

func TestVisit(t *testing.T) {
	n := Elem("a", KindGeneric, Elem("b", KindGeneric, Elem("c", KindGeneric)), Elem("d", KindGeneric))
	var order []string
	err := n.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			order = append(order, "/"+y.Name.Local)
			return true, nil
		}
		order = append(order, y.Name.Local)
		return y.Name.Local != "b", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b", "/b", "d", "/d", "/a"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("visit order (-want +got):\n%s", diff)
	}

	stop := errors.New("stop")
	err = n.Visit(func(y *Node, _ bool) (bool, error) {
		if y.Name.Local == "c" {
			return false, stop
		}
		return true, nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("got %v, want stop", err)
	}
}

func TestCloneEqual(t *testing.T) {
	n := Elem("part", KindPart,
		Elem("note", KindNote).WithAttr("id", "n1"),
		Elem("barline", KindBarline))
	n.WithAttr("id", "p1")
	c := n.Clone()
	if !Equal(n, c) {
		t.Fatalf("clone differs")
	}
	c.Children[0].SetAttr(Local("id"), "n2")
	if Equal(n, c) {
		t.Errorf("clone shares attributes")
	}
	if v, _ := n.Children[0].Attr("id"); v != "n1" {
		t.Errorf("original mutated: %q", v)
	}
	if Equal(n, nil) || !Equal(nil, nil) {
		t.Errorf("nil handling")
	}
}

func TestKindNames(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != k {
			t.Errorf("%s: got %s back", k, back)
		}
	}
	if KindInaccord.String() != "inaccord" || KindGeneric.String() != "generic" {
		t.Errorf("bad names %s %s", KindInaccord, KindGeneric)
	}
	if _, ok := KindByName("no_such_tag"); ok {
		t.Errorf("found unknown kind")
	}
}

func TestContentText(t *testing.T) {
	for _, c := range []Content{ContentEmpty, ContentSimple, ContentComplex, ContentMixed} {
		p, err := ParseContent(c.String())
		if err != nil {
			t.Fatal(err)
		}
		if p != c {
			t.Errorf("got %s want %s", p, c)
		}
	}
	if _, err := ParseContent("element"); !errors.Is(err, ErrBadContent) {
		t.Errorf("got %v", err)
	}
}
