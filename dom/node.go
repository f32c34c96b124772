package dom

import (
	"maps"
	"slices"
)

// Node is an element of a BMML tree.
//
// Text and Children are mutually exclusive: a node with children has no
// text and vice versa. Which of the two a tag may hold is decided by the
// registry when the tree is parsed.
type Node struct {
	Name     Name
	Kind     Kind
	Attrs    map[Name]string
	Text     string
	Children []*Node
}

func New(name Name, kind Kind) *Node {
	return &Node{Name: name, Kind: kind}
}

// Elem makes a node with unqualified name local and the given children.
func Elem(local string, kind Kind, children ...*Node) *Node {
	n := New(Local(local), kind)
	if len(children) != 0 {
		n.Children = children
	}
	return n
}

func (n *Node) WithAttr(local, value string) *Node {
	n.SetAttr(Local(local), value)
	return n
}

func (n *Node) WithText(text string) *Node {
	n.SetText(text)
	return n
}

// Attr returns the value of the unqualified attribute local.
func (n *Node) Attr(local string) (string, bool) {
	return n.AttrNS(Local(local))
}

func (n *Node) AttrNS(name Name) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

func (n *Node) SetAttr(name Name, value string) {
	if n.Attrs == nil {
		n.Attrs = make(map[Name]string)
	}
	n.Attrs[name] = value
}

func (n *Node) DelAttr(name Name) {
	delete(n.Attrs, name)
}

// AttrNames returns the attribute names in serialization order.
func (n *Node) AttrNames() []Name {
	return slices.SortedFunc(maps.Keys(n.Attrs), CompareNames)
}

// SetText replaces the content of n with text.
func (n *Node) SetText(text string) {
	n.Children = nil
	n.Text = text
}

// Append adds children to n, dropping any text.
func (n *Node) Append(children ...*Node) {
	n.Text = ""
	n.Children = append(n.Children, children...)
}

// IsEmpty reports whether n has neither text nor children.
func (n *Node) IsEmpty() bool {
	return n.Text == "" && len(n.Children) == 0
}

// Is reports whether n is of one of the kinds.
func (n *Node) Is(kinds ...Kind) bool {
	return slices.Contains(kinds, n.Kind)
}

// Find returns the first direct child of the given kind.
func (n *Node) Find(kind Kind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// FindAll returns every direct child of the given kind.
func (n *Node) FindAll(kind Kind) []*Node {
	var res []*Node
	for _, c := range n.Children {
		if c.Kind == kind {
			res = append(res, c)
		}
	}
	return res
}

// Visit walks the tree rooted at n depth first. f is called before
// (isPost false) and after (isPost true) the children of each node; the
// children are only visited when the pre call returns true.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

func (n *Node) Clone() *Node {
	res := &Node{
		Name: n.Name,
		Kind: n.Kind,
		Text: n.Text,
	}
	if n.Attrs != nil {
		res.Attrs = maps.Clone(n.Attrs)
	}
	if n.Children != nil {
		res.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			res.Children[i] = c.Clone()
		}
	}
	return res
}

// Count returns the number of nodes in the tree rooted at n.
func (n *Node) Count() int {
	res := 1
	for _, c := range n.Children {
		res += c.Count()
	}
	return res
}
