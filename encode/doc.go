// Package encode writes BMML trees as XML events and XML text.
//
// # Usage
//
//	// Serialize to any sink
//	err := encode.Serialize(node, true, sink)
//
//	// Write XML text
//	err := encode.Encode(node, os.Stdout, encode.EncodeIndent(2))
//
//	// Write XML text with terminal colors
//	err := encode.Encode(node, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Attributes are written sorted by name. Insignificant whitespace of the
// input is not preserved.
//
// # Related Packages
//
//   - github.com/signadot/go-bmml/dom - tree representation
//   - github.com/signadot/go-bmml/parse - parse XML into trees
//   - github.com/signadot/go-bmml/stream - XML events
package encode
