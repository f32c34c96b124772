// Package bmml reads and writes Braille Music Markup Language scores.
//
// # Usage
//
//	score, err := bmml.LoadFile("sonata.bmml")
//	if err != nil {
//	    return err
//	}
//	version, err := score.Version()
//	for _, n := range score.Data().Children {
//	    if p, ok := bmml.AsPart(n); ok {
//	        ...
//	    }
//	}
//
// Views such as Part, Inaccord and Barline wrap a *dom.Node of the matching
// kind and give typed access to its attributes. A required attribute that is
// absent yields ErrMissingAttribute; a value outside an enumeration yields
// ErrIllegalEnumeration.
//
// # Related Packages
//
//   - github.com/signadot/go-bmml/dom - tree representation
//   - github.com/signadot/go-bmml/parse - parser
//   - github.com/signadot/go-bmml/segment - measures and voices of parts
package bmml
