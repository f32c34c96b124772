package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"
)

func bmmlMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	if cfg.Indent < 0 {
		return fmt.Errorf("%w: negative indent %d", cli.ErrUsage, cfg.Indent)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// forInputs calls f with each file named in args, "-" being cc.In. No
// args reads cc.In.
func forInputs(cc *cli.Context, args []string, f func(name string, r io.Reader) error) error {
	if len(args) == 0 {
		return f("-", cc.In)
	}
	for _, arg := range args {
		if err := forInput(cc.In, arg, f); err != nil {
			return err
		}
	}
	return nil
}

func forInput(in io.Reader, arg string, f func(name string, r io.Reader) error) error {
	if arg == "-" {
		return f(arg, in)
	}
	file, err := os.Open(arg)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", arg, err)
	}
	defer file.Close()
	theLog.Debug("reading", "file", arg)
	if err := f(arg, file); err != nil {
		return fmt.Errorf("error processing %s: %w", arg, err)
	}
	return nil
}
