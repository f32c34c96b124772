package bmml

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-bmml/dom"
	"github.com/signadot/go-bmml/encode"
	"github.com/signadot/go-bmml/parse"
	"github.com/signadot/go-bmml/stream"
)

// Load parses a score document from r.
func Load(r io.Reader, opts ...parse.ParseOption) (*Score, error) {
	node, err := parse.ParseReader(r, opts...)
	if err != nil {
		return nil, err
	}
	s, ok := AsScore(node)
	if !ok {
		return nil, fmt.Errorf("%w: root is <%s>", ErrNotScore, node.Name)
	}
	return &s, nil
}

func LoadFile(path string, opts ...parse.ParseOption) (*Score, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Write writes node as an XML document, with the XML declaration.
func Write(w io.Writer, node *dom.Node, opts ...stream.StreamOption) error {
	enc := stream.NewEncoder(w, append([]stream.StreamOption{stream.WithHeader()}, opts...)...)
	if err := encode.Serialize(node, true, enc); err != nil {
		return err
	}
	return enc.Close()
}
