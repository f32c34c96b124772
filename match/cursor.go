package match

import "github.com/signadot/go-bmml/dom"

// Cursor is a position in a sequence of nodes.
type Cursor struct {
	nodes []*dom.Node
	pos   int
}

func NewCursor(nodes []*dom.Node) *Cursor {
	return &Cursor{nodes: nodes}
}

func (c *Cursor) Pos() int { return c.pos }

func (c *Cursor) Done() bool { return c.pos >= len(c.nodes) }

// Peek returns the node at the cursor, or nil at the end.
func (c *Cursor) Peek() *dom.Node {
	if c.Done() {
		return nil
	}
	return c.nodes[c.pos]
}

// Rest returns the nodes not yet consumed.
func (c *Cursor) Rest() []*dom.Node {
	if c.Done() {
		return nil
	}
	return c.nodes[c.pos:]
}

// Reset moves the cursor to pos, as returned by Pos.
func (c *Cursor) Reset(pos int) {
	c.pos = min(max(pos, 0), len(c.nodes))
}

// Narrow consumes the node at the cursor if narrow accepts it and pred, when
// not nil, accepts the narrowed value. Nothing is consumed on failure.
func Narrow[V any](c *Cursor, narrow func(*dom.Node) (V, bool), pred func(V) bool) (V, bool) {
	var zero V
	n := c.Peek()
	if n == nil {
		return zero, false
	}
	v, ok := narrow(n)
	if !ok {
		return zero, false
	}
	if pred != nil && !pred(v) {
		return zero, false
	}
	c.pos++
	return v, true
}
