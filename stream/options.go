package stream

import "io"

// StreamOption configures Encoder/Decoder behavior.
type StreamOption func(*streamOpts)

type streamOpts struct {
	raw           bool
	indent        int
	header        bool
	charsetReader func(label string, input io.Reader) (io.Reader, error)
}

// WithRaw makes the decoder return tags as written: namespace prefixes are
// not resolved and end tags are not checked against start tags.
func WithRaw() StreamOption {
	return func(opts *streamOpts) {
		opts.raw = true
	}
}

// WithCharsetReader replaces the decoder's charset lookup.
func WithCharsetReader(f func(label string, input io.Reader) (io.Reader, error)) StreamOption {
	return func(opts *streamOpts) {
		opts.charsetReader = f
	}
}

// WithIndent makes the encoder indent element content by n spaces.
func WithIndent(n int) StreamOption {
	return func(opts *streamOpts) {
		opts.indent = n
	}
}

// WithHeader makes the encoder start with an XML declaration.
func WithHeader() StreamOption {
	return func(opts *streamOpts) {
		opts.header = true
	}
}

func makeOpts(opts []StreamOption) *streamOpts {
	res := &streamOpts{}
	for _, opt := range opts {
		opt(res)
	}
	return res
}
