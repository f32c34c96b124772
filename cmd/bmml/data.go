package main

import (
	"io"

	"github.com/signadot/go-bmml/dom"
	"github.com/signadot/go-bmml/format"
)

// nodeData is the yaml and json form of a tree.
type nodeData struct {
	Tag      string            `json:"tag"`
	Kind     string            `json:"kind,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Text     string            `json:"text,omitempty"`
	Children []*nodeData       `json:"children,omitempty"`
}

func toData(n *dom.Node) *nodeData {
	res := &nodeData{Tag: n.Name.String(), Text: n.Text}
	if n.Kind != dom.KindGeneric {
		res.Kind = n.Kind.String()
	}
	if len(n.Attrs) != 0 {
		res.Attrs = make(map[string]string, len(n.Attrs))
		for k, v := range n.Attrs {
			res.Attrs[k.String()] = v
		}
	}
	for _, c := range n.Children {
		res.Children = append(res.Children, toData(c))
	}
	return res
}

func writeData(w io.Writer, f format.Format, v any) error {
	d, err := format.Marshal(f, v)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
