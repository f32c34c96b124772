package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Indent: 2}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: xml/x, text/t, yaml/y, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "bmml").
		WithSynopsis("bmml [opts] command [opts]").
		WithDescription("bmml is a tool for working with Braille Music Markup Language scores.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bmmlMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			MeasuresCommand(cfg),
			TextCommand(cfg),
			GetCommand(cfg),
			CheckCommand(cfg),
			QueryCommand(cfg),
			TagsCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [opts] [files]").
		WithDescription("parse and re-encode documents, in color on terminals").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func MeasuresCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MeasuresConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Measures, "measures").
		WithAliases("m").
		WithOpts(opts...).
		WithSynopsis("measures [-part id] [files]").
		WithDescription("show the measures, voices and partial voices of each part").
		WithRun(func(cc *cli.Context, args []string) error {
			return measures(cfg, cc, args)
		})
}

func TextCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TextConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Text, "text").
		WithAliases("t", "cat").
		WithOpts(opts...).
		WithSynopsis("text [-lead] [files]").
		WithDescription("print the braille text of documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return text(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithOpts(opts...).
		WithSynopsis("get -id id [files]").
		WithDescription("print the element with the given id").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("check that documents survive an encode and parse round trip").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithOpts(opts...).
		WithSynopsis("query -e expr [-k kind] [files]").
		WithDescription("print the elements satisfying an expression").
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
}

func TagsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TagsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Tags, "tags").
		WithSynopsis("tags").
		WithDescription("list the known tags with their kind and content").
		WithRun(func(cc *cli.Context, args []string) error {
			return tags(cfg, cc, args)
		})
}
