// Package parse builds BMML trees from XML events.
//
// # Usage
//
//	// Parse a document
//	node, err := parse.ParseReader(f)
//	if err != nil {
//	    return err
//	}
//
//	// Parse with a custom registry
//	node, err := parse.ParseBytes(data, parse.WithRegistry(reg))
//
// The node kind and content discipline of every element come from a
// registry (registry.Builtin by default). Unknown tags become
// dom.KindGeneric nodes with complex content so that they survive a round
// trip.
//
// Structural violations are reported as errors wrapping
// ErrMalformedDocument; the whole document is rejected.
//
// # Related Packages
//
//   - github.com/signadot/go-bmml/dom - tree representation
//   - github.com/signadot/go-bmml/stream - XML events
//   - github.com/signadot/go-bmml/encode - write trees back out
package parse
