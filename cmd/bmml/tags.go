package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/signadot/go-bmml/format"
	"github.com/signadot/go-bmml/registry"

	"github.com/scott-cotton/cli"
)

type tagInfo struct {
	Tag     string `json:"tag"`
	Kind    string `json:"kind"`
	Content string `json:"content"`
}

func tags(cfg *TagsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tags.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: tags takes no arguments", cli.ErrUsage)
	}
	var infos []tagInfo
	for _, e := range registry.Builtin().Entries() {
		infos = append(infos, tagInfo{Tag: e.Name.String(), Kind: e.Kind.String(), Content: e.Content.String()})
	}
	if f := cfg.outFormat(format.TextFormat); f.IsData() {
		return writeData(cc.Out, f, infos)
	}
	tw := tabwriter.NewWriter(cc.Out, 0, 8, 2, ' ', 0)
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Tag, info.Kind, info.Content)
	}
	return tw.Flush()
}
