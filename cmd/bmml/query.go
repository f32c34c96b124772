package main

import (
	"fmt"
	"io"

	"github.com/signadot/go-bmml/dom"
	"github.com/signadot/go-bmml/match"
	"github.com/signadot/go-bmml/parse"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	src := cfg.Expr
	if src == "" {
		src = "true"
	}
	if cfg.Kind != "" {
		if _, ok := dom.KindByName(cfg.Kind); !ok {
			return fmt.Errorf("%w: unknown kind %q", cli.ErrUsage, cfg.Kind)
		}
		src = fmt.Sprintf("kind == %q && (%s)", cfg.Kind, src)
	}
	pred, err := match.Compile(src)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return forInputs(cc, args, func(name string, r io.Reader) error {
		root, err := parse.ParseReader(r, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		found, err := pred.FindAll(root)
		if err != nil {
			return err
		}
		theLog.Debug("query", "file", name, "expr", pred, "matches", len(found))
		if cfg.Count {
			_, err := fmt.Fprintf(cc.Out, "%s: %d\n", name, len(found))
			return err
		}
		for _, n := range found {
			if err := writeNode(cfg.MainConfig, cc.Out, n, false); err != nil {
				return err
			}
		}
		return nil
	})
}
