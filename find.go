package bmml

import (
	"errors"

	"github.com/signadot/go-bmml/dom"
)

var errFound = errors.New("found")

// FindID returns the first node, in document order, of the tree at root
// whose id attribute is id.
func FindID(root *dom.Node, id string) *dom.Node {
	var res *dom.Node
	root.Visit(func(n *dom.Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		if v, ok := n.Attr("id"); ok && v == id {
			res = n
			return false, errFound
		}
		return true, nil
	})
	return res
}
