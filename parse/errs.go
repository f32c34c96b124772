package parse

import (
	"errors"
	"fmt"
)

var (
	errInternal = errors.New("internal parse error")

	ErrMalformedDocument = errors.New("malformed document")

	ErrElementInSimpleContent     = fmt.Errorf("%w: element in simple content", ErrMalformedDocument)
	ErrCharactersInComplexContent = fmt.Errorf("%w: characters in complex content", ErrMalformedDocument)
	ErrContentInEmptyElement      = fmt.Errorf("%w: content in empty element", ErrMalformedDocument)
	ErrMismatchedClosingTag       = fmt.Errorf("%w: mismatched closing tag", ErrMalformedDocument)
	ErrUnexpectedClosingTag       = fmt.Errorf("%w: unexpected closing tag", ErrMalformedDocument)
	ErrUnexpectedEOF              = fmt.Errorf("%w: unexpected end of input", ErrMalformedDocument)
	ErrNoRoot                     = fmt.Errorf("%w: no root element", ErrMalformedDocument)
	ErrTrailingContent            = fmt.Errorf("%w: content after the root element", ErrMalformedDocument)
)
