package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/go-bmml/dom"
	"github.com/signadot/go-bmml/encode"
	"github.com/signadot/go-bmml/parse"

	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	err = forInputs(cc, args, func(name string, r io.Reader) error {
		diff, err := roundTrip(r, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		if diff == "" {
			theLog.Info("ok", "file", name)
			return nil
		}
		failed++
		theLog.Error("round trip changed the document", "file", name)
		_, err = io.WriteString(cc.Out, diff)
		return err
	})
	if err != nil {
		return err
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// roundTrip parses r, encodes the tree and parses the result again. It
// returns a diff of the two encodings when the trees differ.
func roundTrip(r io.Reader, opts ...parse.ParseOption) (string, error) {
	first, err := parse.ParseReader(r, opts...)
	if err != nil {
		return "", err
	}
	a, err := encodeString(first)
	if err != nil {
		return "", err
	}
	second, err := parse.ParseBytes([]byte(a), opts...)
	if err != nil {
		return "", fmt.Errorf("re-parsing encoded document: %w", err)
	}
	b, err := encodeString(second)
	if err != nil {
		return "", err
	}
	if a == b && dom.Equal(first, second) {
		return "", nil
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	if len(diffs) == 1 && diffs[0].Type == diffpatch.DiffEqual {
		return "trees differ but encode identically\n", nil
	}
	return dmp.DiffPrettyText(diffs), nil
}

func encodeString(n *dom.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(n, buf, encode.EncodeIndent(2)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
