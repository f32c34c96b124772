package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-bmml/encode"
	"github.com/signadot/go-bmml/format"
	"github.com/signadot/go-bmml/parse"
	"github.com/signadot/go-bmml/stream"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Indent  int  `cli:"name=indent desc='spaces per level of element content, 0 for one line'"`
	Raw     bool `cli:"name=raw desc='keep namespace prefixes as written'"`
	Verbose bool `cli:"name=v desc='log progress to stderr'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// outFormat returns the -O format, or def when none was given.
func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return def
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if !cfg.Raw {
		return nil
	}
	return []parse.ParseOption{parse.WithStreamOptions(stream.WithRaw())}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeIndent(cfg.Indent),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Header bool `cli:"name=header desc='write the XML declaration'"`
	View   *cli.Command
}

type MeasuresConfig struct {
	*MainConfig

	Part     string `cli:"name=part desc='only the part with this id'"`
	Measures *cli.Command
}

type TextConfig struct {
	*MainConfig

	Lead bool `cli:"name=lead desc='count the text elements starting the score data'"`
	Text *cli.Command
}

type GetConfig struct {
	*MainConfig

	ID  string `cli:"name=id desc='id of the element to print'"`
	Get *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Expr  string `cli:"name=e desc='predicate over kind, name, id, text, attrs, children, depth, parent'"`
	Kind  string `cli:"name=k desc='only elements of this kind'"`
	Count bool   `cli:"name=c desc='print the number of matches only'"`
	Query *cli.Command
}

type TagsConfig struct {
	*MainConfig

	Tags *cli.Command
}
