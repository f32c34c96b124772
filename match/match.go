package match

import (
	"github.com/signadot/go-bmml/debug"
	"github.com/signadot/go-bmml/dom"
)

// Matcher consumes a prefix of the cursor's nodes and returns them. On
// failure the cursor is where it was before the call.
type Matcher func(*Cursor) ([]*dom.Node, bool)

// Run applies m to nodes and returns the matched prefix and what remains.
func Run(m Matcher, nodes []*dom.Node) (matched, rest []*dom.Node, ok bool) {
	c := NewCursor(nodes)
	matched, ok = m(c)
	if debug.Match() {
		debug.Logf("match: ok=%t consumed %d of %d\n", ok, c.Pos(), len(nodes))
	}
	return matched, c.Rest(), ok
}

// Full is like Run but requires m to consume every node.
func Full(m Matcher, nodes []*dom.Node) ([]*dom.Node, bool) {
	matched, rest, ok := Run(m, nodes)
	if !ok || len(rest) != 0 {
		return nil, false
	}
	return matched, true
}

func node(n *dom.Node) (*dom.Node, bool) { return n, true }

// Any matches one node of any kind.
func Any() Matcher {
	return func(c *Cursor) ([]*dom.Node, bool) {
		n, ok := Narrow(c, node, nil)
		if !ok {
			return nil, false
		}
		return []*dom.Node{n}, true
	}
}

// Kind matches one node of one of the given kinds.
func Kind(kinds ...dom.Kind) Matcher {
	return Where(func(n *dom.Node) bool { return n.Is(kinds...) })
}

// KindWhere matches one node of kind k satisfying pred.
func KindWhere(k dom.Kind, pred func(*dom.Node) bool) Matcher {
	return Where(func(n *dom.Node) bool { return n.Kind == k && pred(n) })
}

// Where matches one node satisfying pred.
func Where(pred func(*dom.Node) bool) Matcher {
	return func(c *Cursor) ([]*dom.Node, bool) {
		n, ok := Narrow(c, node, pred)
		if !ok {
			return nil, false
		}
		return []*dom.Node{n}, true
	}
}

// Seq matches each of ms in turn.
func Seq(ms ...Matcher) Matcher {
	return func(c *Cursor) ([]*dom.Node, bool) {
		start := c.Pos()
		var res []*dom.Node
		for _, m := range ms {
			nodes, ok := m(c)
			if !ok {
				c.Reset(start)
				return nil, false
			}
			res = append(res, nodes...)
		}
		return res, true
	}
}

// Alt matches the first of ms that matches.
func Alt(ms ...Matcher) Matcher {
	return func(c *Cursor) ([]*dom.Node, bool) {
		for _, m := range ms {
			if nodes, ok := m(c); ok {
				return nodes, true
			}
		}
		return nil, false
	}
}

// Many matches m zero or more times. It stops when m matches without
// consuming anything.
func Many(m Matcher) Matcher {
	return func(c *Cursor) ([]*dom.Node, bool) {
		var res []*dom.Node
		for {
			pos := c.Pos()
			nodes, ok := m(c)
			if !ok || c.Pos() == pos {
				return res, true
			}
			res = append(res, nodes...)
		}
	}
}

// Some matches m one or more times.
func Some(m Matcher) Matcher {
	return Seq(m, Many(m))
}

// Opt matches m or nothing.
func Opt(m Matcher) Matcher {
	return func(c *Cursor) ([]*dom.Node, bool) {
		nodes, _ := m(c)
		return nodes, true
	}
}

// List matches one or more elem separated by sep. The separators are
// consumed but not returned. A trailing separator is left unconsumed.
func List(elem, sep Matcher) Matcher {
	return func(c *Cursor) ([]*dom.Node, bool) {
		res, ok := elem(c)
		if !ok {
			return nil, false
		}
		for {
			pos := c.Pos()
			if _, ok := sep(c); !ok {
				return res, true
			}
			nodes, ok := elem(c)
			if !ok {
				c.Reset(pos)
				return res, true
			}
			res = append(res, nodes...)
		}
	}
}

// Not matches nothing, succeeding only if m does not match here.
func Not(m Matcher) Matcher {
	return func(c *Cursor) ([]*dom.Node, bool) {
		pos := c.Pos()
		if _, ok := m(c); ok {
			c.Reset(pos)
			return nil, false
		}
		return nil, true
	}
}
