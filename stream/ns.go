package stream

import (
	"strconv"
	"strings"

	"github.com/signadot/go-bmml/dom"
)

const (
	xmlnsPrefix = "xmlns"
	xmlPrefix   = "xml"
	xmlURL      = "http://www.w3.org/XML/1998/namespace"
)

// QAttr is an attribute whose name is written as it appears in a document.
type QAttr struct {
	Name  string
	Value string
}

// Namespaces turns resolved names back into prefixed names, using the
// bindings declared by the xmlns attributes of the open elements.
//
// A name whose Space is bound is written with the innermost prefix still
// bound to it. A Space without a colon that is not bound is taken to be a
// prefix, as produced by WithRaw, and written as is. Any other Space gets a
// declaration on the element where it is first used.
type Namespaces struct {
	scopes [][]binding
	gen    int
}

type binding struct {
	prefix, uri string
}

// Start opens the scope of a start element. It returns the element's
// qualified name and its attributes, followed by declarations for the
// namespaces the element introduces.
func (ns *Namespaces) Start(name dom.Name, attrs []Attr) (string, []QAttr) {
	var scope []binding
	for _, a := range attrs {
		if p, ok := declared(a.Name); ok {
			scope = append(scope, binding{prefix: p, uri: a.Value})
		}
	}
	ns.scopes = append(ns.scopes, scope)

	res := make([]QAttr, 0, len(attrs))
	var decls []QAttr
	qname := ns.qualify(name, false, &decls)
	for _, a := range attrs {
		if p, ok := declared(a.Name); ok {
			res = append(res, QAttr{Name: declName(p), Value: a.Value})
			continue
		}
		res = append(res, QAttr{Name: ns.qualify(a.Name, true, &decls), Value: a.Value})
	}
	return qname, append(res, decls...)
}

// End closes the scope opened by the last Start.
func (ns *Namespaces) End() {
	if n := len(ns.scopes); n != 0 {
		ns.scopes = ns.scopes[:n-1]
	}
}

func (ns *Namespaces) qualify(n dom.Name, attr bool, decls *[]QAttr) string {
	switch {
	case n.Space == "":
		if !attr {
			if uri, _ := ns.resolve(""); uri != "" && !ns.declaresDefault() {
				ns.bind("", "", decls)
			}
		}
		return n.Local
	case n.Space == xmlURL:
		return xmlPrefix + ":" + n.Local
	}
	if p, ok := ns.prefixFor(n.Space, attr); ok {
		return join(p, n.Local)
	}
	if !strings.Contains(n.Space, ":") {
		return n.Space + ":" + n.Local
	}
	p := ""
	if attr || ns.declaresDefault() {
		p = ns.newPrefix()
	}
	ns.bind(p, n.Space, decls)
	return join(p, n.Local)
}

func (ns *Namespaces) bind(prefix, uri string, decls *[]QAttr) {
	top := len(ns.scopes) - 1
	ns.scopes[top] = append(ns.scopes[top], binding{prefix: prefix, uri: uri})
	*decls = append(*decls, QAttr{Name: declName(prefix), Value: uri})
}

func (ns *Namespaces) resolve(prefix string) (string, bool) {
	for i := len(ns.scopes) - 1; i >= 0; i-- {
		for _, b := range ns.scopes[i] {
			if b.prefix == prefix {
				return b.uri, true
			}
		}
	}
	if prefix == xmlPrefix {
		return xmlURL, true
	}
	return "", false
}

// unprefixed attributes are in no namespace, so attributes need a prefix.
func (ns *Namespaces) prefixFor(uri string, attr bool) (string, bool) {
	for i := len(ns.scopes) - 1; i >= 0; i-- {
		for _, b := range ns.scopes[i] {
			if b.uri != uri || (attr && b.prefix == "") {
				continue
			}
			if cur, _ := ns.resolve(b.prefix); cur == uri {
				return b.prefix, true
			}
		}
	}
	return "", false
}

func (ns *Namespaces) declaresDefault() bool {
	for _, b := range ns.scopes[len(ns.scopes)-1] {
		if b.prefix == "" {
			return true
		}
	}
	return false
}

func (ns *Namespaces) newPrefix() string {
	for {
		ns.gen++
		p := "ns" + strconv.Itoa(ns.gen)
		if _, ok := ns.resolve(p); !ok {
			return p
		}
	}
}

// declared reports the prefix bound by a namespace declaration attribute.
func declared(n dom.Name) (string, bool) {
	switch {
	case n.Space == xmlnsPrefix:
		return n.Local, true
	case n.Space == "" && n.Local == xmlnsPrefix:
		return "", true
	}
	return "", false
}

func declName(prefix string) string {
	if prefix == "" {
		return xmlnsPrefix
	}
	return xmlnsPrefix + ":" + prefix
}

func join(prefix, local string) string {
	if prefix == "" {
		return local
	}
	return prefix + ":" + local
}
