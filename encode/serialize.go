package encode

import (
	"github.com/signadot/go-bmml/dom"
	"github.com/signadot/go-bmml/stream"
)

// Serialize emits node to sink. With emitWrapper the node's own start and
// end events surround its content, otherwise only the content is emitted.
func Serialize(node *dom.Node, emitWrapper bool, sink stream.Sink) error {
	if emitWrapper {
		start := stream.Start(node.Name)
		if names := node.AttrNames(); len(names) != 0 {
			start.Attrs = make([]stream.Attr, len(names))
			for i, name := range names {
				start.Attrs[i] = stream.Attr{Name: name, Value: node.Attrs[name]}
			}
		}
		if err := sink.WriteEvent(&start); err != nil {
			return err
		}
	}
	if len(node.Children) != 0 {
		for _, child := range node.Children {
			if err := Serialize(child, true, sink); err != nil {
				return err
			}
		}
	} else if node.Text != "" {
		chars := stream.Chars(node.Text)
		if err := sink.WriteEvent(&chars); err != nil {
			return err
		}
	}
	if !emitWrapper {
		return nil
	}
	end := stream.End(node.Name)
	return sink.WriteEvent(&end)
}

// Events returns the events of node including its own start and end.
func Events(node *dom.Node) ([]stream.Event, error) {
	rec := &stream.Recorder{}
	if err := Serialize(node, true, rec); err != nil {
		return nil, err
	}
	return rec.Events, nil
}
