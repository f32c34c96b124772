package dom

import (
	"errors"
	"fmt"
)

// Content is the content discipline of a tag.
type Content int

const (
	// ContentEmpty admits neither text nor elements.
	ContentEmpty Content = iota
	// ContentSimple admits text only.
	ContentSimple
	// ContentComplex admits elements separated by whitespace.
	ContentComplex
	// ContentMixed is handled like ContentComplex: whitespace between
	// elements is dropped, other text is not reconstructed.
	ContentMixed
)

var ErrBadContent = errors.New("bad content kind")

func ParseContent(v string) (Content, error) {
	c, ok := map[string]Content{
		"empty":   ContentEmpty,
		"simple":  ContentSimple,
		"complex": ContentComplex,
		"mixed":   ContentMixed,
	}[v]
	if ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadContent, v)
}

func (c Content) String() string {
	d, err := c.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (c Content) MarshalText() ([]byte, error) {
	switch c {
	case ContentEmpty:
		return []byte("empty"), nil
	case ContentSimple:
		return []byte("simple"), nil
	case ContentComplex:
		return []byte("complex"), nil
	case ContentMixed:
		return []byte("mixed"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a content kind>", c)
	}
}

func (c *Content) UnmarshalText(d []byte) error {
	pc, err := ParseContent(string(d))
	if err != nil {
		return err
	}
	*c = pc
	return nil
}

// KeepsWhitespace reports whether whitespace only text is significant for c.
func (c Content) KeepsWhitespace() bool { return c == ContentSimple }
