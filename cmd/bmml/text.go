package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/go-bmml"
	"github.com/signadot/go-bmml/parse"

	"github.com/scott-cotton/cli"
)

func text(cfg *TextConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Text.Parse(cc, args)
	if err != nil {
		return err
	}
	return forInputs(cc, args, func(name string, r io.Reader) error {
		if cfg.Lead {
			return lead(cfg, cc.Out, r)
		}
		node, err := parse.ParseReader(r, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		if err := bmml.WriteText(cc.Out, node); err != nil {
			return err
		}
		_, err = io.WriteString(cc.Out, "\n")
		return err
	})
}

func lead(cfg *TextConfig, w io.Writer, r io.Reader) error {
	score, err := bmml.Load(r, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	data := score.Data()
	if data == nil {
		return errors.New("score has no score_data")
	}
	text, rest := bmml.LeadingText(data)
	if _, err := fmt.Fprintf(w, "%d text elements at beginning.\n", len(text)); err != nil {
		return err
	}
	if len(rest) != 0 {
		_, err = fmt.Fprintln(w, rest[0].Name)
	}
	return err
}
