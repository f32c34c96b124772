// Package format names the output formats of bmml tools and encodes
// reports in them.
package format

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

type Format int

const (
	XMLFormat Format = iota
	TextFormat
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"x":    XMLFormat,
		"xml":  XMLFormat,
		"t":    TextFormat,
		"text": TextFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case XMLFormat:
		return []byte("xml"), nil
	case TextFormat:
		return []byte("text"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsXML() bool  { return f == XMLFormat }
func (f Format) IsText() bool { return f == TextFormat }

// IsData reports whether f encodes structured data rather than documents.
func (f Format) IsData() bool { return f == YAMLFormat || f == JSONFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case XMLFormat:
		return ".bmml"
	case TextFormat:
		return ".txt"
	case YAMLFormat:
		return ".yaml"
	case JSONFormat:
		return ".json"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{XMLFormat, TextFormat, YAMLFormat, JSONFormat}
}

// Marshal encodes v in a data format. Values are described with json
// struct tags, which both encoders honor.
func Marshal(f Format, v any) ([]byte, error) {
	switch f {
	case YAMLFormat:
		return yaml.Marshal(v)
	case JSONFormat:
		d, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(d, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: %s is not a data format", ErrBadFormat, f)
	}
}
