package main

import (
	"fmt"
	"io"

	"github.com/signadot/go-bmml"
	"github.com/signadot/go-bmml/parse"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.ID == "" {
		return fmt.Errorf("%w: get requires -id", cli.ErrUsage)
	}
	return forInputs(cc, args, func(name string, r io.Reader) error {
		root, err := parse.ParseReader(r, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		n := bmml.FindID(root, cfg.ID)
		if n == nil {
			theLog.Warn("no such id", "file", name, "id", cfg.ID)
			return nil
		}
		return writeNode(cfg.MainConfig, cc.Out, n, false)
	})
}
