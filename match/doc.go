// Package match matches typed patterns over sequences of sibling nodes.
//
// A Cursor walks a slice of nodes. Narrow is the primitive step: it
// advances over one node if the node narrows to a value of the wanted type
// and the value satisfies a predicate, and leaves the cursor alone
// otherwise. Matchers built from Kind, Seq, Alt, Many and friends compose
// such steps and restore the cursor when they fail.
//
//	leading := match.Many(match.Kind(dom.KindSpace, dom.KindNewline, dom.KindGenericText))
//	nodes, rest, _ := match.Run(leading, data.Children)
//
// Predicates may also be written as expressions (see Compile).
package match
