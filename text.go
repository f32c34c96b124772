package bmml

import (
	"io"
	"strings"

	"github.com/signadot/go-bmml/dom"
	"github.com/signadot/go-bmml/match"
)

// Text renders the braille text of the tree at n: the text of every leaf
// in document order. note_data, rest_data and score_header subtrees only
// describe the music and are left out.
func Text(n *dom.Node) string {
	buf := &strings.Builder{}
	WriteText(buf, n)
	return buf.String()
}

func WriteText(w io.Writer, n *dom.Node) error {
	if n.Is(dom.KindNoteData, dom.KindRestData, dom.KindScoreHeader) {
		return nil
	}
	if n.Text != "" {
		_, err := io.WriteString(w, n.Text)
		return err
	}
	for _, c := range n.Children {
		if err := WriteText(w, c); err != nil {
			return err
		}
	}
	return nil
}

var leadingText = match.Many(match.Kind(dom.KindSpace, dom.KindNewline, dom.KindGenericText))

// LeadingText splits the children of data into the run of space, newline
// and generic_text elements it starts with and the rest.
func LeadingText(data *dom.Node) (text, rest []*dom.Node) {
	text, rest, _ = match.Run(leadingText, data.Children)
	return text, rest
}
