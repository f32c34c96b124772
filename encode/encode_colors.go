package encode

import (
	"strings"

	"github.com/signadot/go-bmml/dom"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind dom.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	TagColor
	AttrNameColor
	AttrValueColor
	TextColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range dom.Kinds() {
		able := Colorable{Kind: k, Attr: TagColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
		able.Attr = AttrNameColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = AttrValueColor
		colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
		able.Attr = TextColor
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	}
	colors.Map[Colorable{Kind: dom.KindGeneric, Attr: CommentColor}] = color.BlueString
	colors.Map[Colorable{Kind: dom.KindGeneric, Attr: TagColor}] = color.RGB(168, 0, 196).SprintfFunc()

	// measure and voice boundaries stand out
	able := Colorable{Attr: TagColor}
	able.Kind = dom.KindBarline
	colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	able.Kind = dom.KindInaccord
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()
	able.Attr = TextColor
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()

	// layout is dimmed
	for _, k := range []dom.Kind{
		dom.KindSpace, dom.KindNewline, dom.KindMusicHyphen,
		dom.KindSeparator, dom.KindGenericText, dom.KindPartName,
	} {
		able = Colorable{Kind: k, Attr: TagColor}
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Attr = TextColor
		colors.Map[able] = color.RGB(88, 158, 86).SprintfFunc()
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k dom.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k dom.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
