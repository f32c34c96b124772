package dom

import "maps"

// Equal reports whether two trees have the same names, kinds, attributes,
// text and children. Attribute order is not significant and nil and empty
// attribute maps or child lists compare equal.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Name != b.Name || a.Kind != b.Kind || a.Text != b.Text {
		return false
	}
	if !maps.Equal(a.Attrs, b.Attrs) {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
