package parse

import (
	"github.com/signadot/go-bmml/registry"
	"github.com/signadot/go-bmml/stream"
)

type parseOpts struct {
	registry   *registry.Registry
	streamOpts []stream.StreamOption
}

type ParseOption func(*parseOpts)

// WithRegistry sets the tag table; the default is registry.Builtin().
func WithRegistry(r *registry.Registry) ParseOption {
	return func(o *parseOpts) { o.registry = r }
}

// WithStreamOptions passes options to the decoder of ParseReader and
// ParseBytes.
func WithStreamOptions(opts ...stream.StreamOption) ParseOption {
	return func(o *parseOpts) { o.streamOpts = append(o.streamOpts, opts...) }
}

func makeOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.registry == nil {
		pOpts.registry = registry.Builtin()
	}
	return pOpts
}
