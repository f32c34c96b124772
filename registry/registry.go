// Package registry maps tag names to node kinds and content disciplines.
package registry

import (
	"slices"
	"sync"

	"github.com/signadot/go-bmml/dom"
)

// Factory makes the node for a tag.
type Factory func(name dom.Name) *dom.Node

// KindFactory returns a factory producing nodes of kind k.
func KindFactory(k dom.Kind) Factory {
	return func(name dom.Name) *dom.Node {
		return dom.New(name, k)
	}
}

// Entry is one registration.
type Entry struct {
	Name    dom.Name
	Kind    dom.Kind
	Content dom.Content
	New     Factory
}

// Registry holds the tag table used while parsing.
type Registry struct {
	mu      sync.RWMutex
	entries map[dom.Name]Entry
}

// New creates a registry holding entries. Entries without a factory get
// one producing their kind.
func New(entries ...Entry) *Registry {
	r := &Registry{entries: make(map[dom.Name]Entry, len(entries))}
	for _, e := range entries {
		r.add(e)
	}
	return r
}

func (r *Registry) add(e Entry) {
	if e.New == nil {
		e.New = KindFactory(e.Kind)
	}
	r.entries[e.Name] = e
}

// Register inserts or overwrites the entry for name. The last registration
// for a name wins.
func (r *Registry) Register(name dom.Name, f Factory, c dom.Content) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := Entry{Name: name, Content: c, New: f}
	if f != nil {
		e.Kind = f(name).Kind
	}
	r.add(e)
}

// Resolve returns the factory and content kind registered for name.
func (r *Registry) Resolve(name dom.Name) (Factory, dom.Content, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return nil, dom.ContentComplex, false
	}
	return e.New, e.Content, true
}

// Make builds the node for name. Unregistered names produce a
// dom.KindGeneric node with complex content.
func (r *Registry) Make(name dom.Name) (*dom.Node, dom.Content) {
	f, c, ok := r.Resolve(name)
	if !ok {
		return dom.New(name, dom.KindGeneric), dom.ContentComplex
	}
	return f(name), c
}

// Lookup returns the entry for name.
func (r *Registry) Lookup(name dom.Name) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	return e, ok
}

// Entries returns all entries ordered by name.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		res = append(res, e)
	}
	slices.SortFunc(res, func(a, b Entry) int {
		return dom.CompareNames(a.Name, b.Name)
	})
	return res
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Clone returns an independent copy of r, for extending the builtin table.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := &Registry{entries: make(map[dom.Name]Entry, len(r.entries))}
	for k, e := range r.entries {
		res.entries[k] = e
	}
	return res
}
