package bmml

import "errors"

var (
	ErrMissingAttribute   = errors.New("missing attribute")
	ErrIllegalEnumeration = errors.New("illegal enumeration")
	ErrNotScore           = errors.New("document is not a score")
)
