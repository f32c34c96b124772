package match

import (
	"fmt"

	"github.com/signadot/go-bmml/debug"
	"github.com/signadot/go-bmml/dom"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is what a predicate expression sees of a node.
type Env struct {
	Kind     string            `expr:"kind"`
	Name     string            `expr:"name"`
	ID       string            `expr:"id"`
	Text     string            `expr:"text"`
	Attrs    map[string]string `expr:"attrs"`
	Children int               `expr:"children"`
	Depth    int               `expr:"depth"`
	Parent   string            `expr:"parent"`
}

func envOf(n *dom.Node, parent *dom.Node, depth int) Env {
	env := Env{
		Kind:     n.Kind.String(),
		Name:     n.Name.String(),
		Text:     n.Text,
		Attrs:    make(map[string]string, len(n.Attrs)),
		Children: len(n.Children),
		Depth:    depth,
	}
	for k, v := range n.Attrs {
		env.Attrs[k.String()] = v
	}
	env.ID = env.Attrs["id"]
	if parent != nil {
		env.Parent = parent.Kind.String()
	}
	return env
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.AsBool(),
		expr.Function("kindOf", func(params ...any) (any, error) {
			k, ok := dom.KindByName(params[0].(string))
			if !ok {
				return "", fmt.Errorf("unknown kind %q", params[0])
			}
			return k.String(), nil
		},
			new(func(string) string)),
	}
}

// Predicate is a compiled boolean expression over Env, for example
//
//	kind == "note" && attrs["id"] startsWith "n"
type Predicate struct {
	src  string
	prog *vm.Program
}

func Compile(src string) (*Predicate, error) {
	prog, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, err
	}
	return &Predicate{src: src, prog: prog}, nil
}

func (p *Predicate) String() string { return p.src }

// Eval evaluates p on n, which is at depth below the root and a child of
// parent (nil for the root).
func (p *Predicate) Eval(n, parent *dom.Node, depth int) (bool, error) {
	res, err := expr.Run(p.prog, envOf(n, parent, depth))
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("predicate %q returned %T", p.src, res)
	}
	return b, nil
}

// Match is Eval without context. Evaluation errors count as no match.
func (p *Predicate) Match(n *dom.Node) bool {
	ok, err := p.Eval(n, nil, 0)
	if err != nil {
		if debug.Query() {
			debug.Logf("query %q on <%s>: %v\n", p.src, n.Name, err)
		}
		return false
	}
	return ok
}

// FindAll returns the nodes of the tree at root satisfying p, in document
// order.
func (p *Predicate) FindAll(root *dom.Node) ([]*dom.Node, error) {
	var res []*dom.Node
	var walk func(n, parent *dom.Node, depth int) error
	walk = func(n, parent *dom.Node, depth int) error {
		ok, err := p.Eval(n, parent, depth)
		if err != nil {
			return fmt.Errorf("query %q on <%s>: %w", p.src, n.Name, err)
		}
		if ok {
			res = append(res, n)
		}
		for _, c := range n.Children {
			if err := walk(c, n, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root, nil, 0); err != nil {
		return nil, err
	}
	return res, nil
}

// Expr compiles src and returns a matcher of one node of kind k satisfying
// it. KindGeneric accepts nodes of every kind.
func Expr(k dom.Kind, src string) (Matcher, error) {
	p, err := Compile(src)
	if err != nil {
		return nil, err
	}
	if k == dom.KindGeneric {
		return Where(p.Match), nil
	}
	return KindWhere(k, p.Match), nil
}
