// Package dom provides a small in-memory tree for BMML documents.
//
// A [Node] has a qualified tag [Name], a string valued attribute map and
// either text or an ordered list of children, never both. Every node carries
// a [Kind] chosen from its tag when the tree is built, so code working with
// a document switches on kinds instead of comparing tag names.
//
// # Usage
//
//	n := dom.New(dom.Local("inaccord"), dom.KindInaccord)
//	n.SetAttr(dom.Local("value"), "full")
//	if v, ok := n.Attr("value"); ok {
//	    ...
//	}
//
// Trees are strict hierarchies: children are owned by exactly one parent and
// nodes do not point back to their parents.
//
// # Related Packages
//
//   - github.com/signadot/go-bmml/registry - tag to kind/content table
//   - github.com/signadot/go-bmml/parse - build trees from XML events
//   - github.com/signadot/go-bmml/encode - write trees as XML
package dom
