package main

import (
	"fmt"
	"io"

	"github.com/signadot/go-bmml"
	"github.com/signadot/go-bmml/dom"
	"github.com/signadot/go-bmml/encode"
	"github.com/signadot/go-bmml/format"
	"github.com/signadot/go-bmml/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return forInputs(cc, args, func(name string, r io.Reader) error {
		node, err := parse.ParseReader(r, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		return writeNode(cfg.MainConfig, cc.Out, node, cfg.Header)
	})
}

// writeNode writes node in the -O format, XML by default.
func writeNode(cfg *MainConfig, w io.Writer, node *dom.Node, header bool) error {
	f := cfg.outFormat(format.XMLFormat)
	switch {
	case f.IsXML():
		opts := append(cfg.encOpts(w), encode.EncodeHeader(header))
		if err := encode.Encode(node, w, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", node.Name, err)
		}
		return nil
	case f.IsText():
		if err := bmml.WriteText(w, node); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	default:
		return writeData(w, f, toData(node))
	}
}
