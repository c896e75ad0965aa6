package snbt

import (
	"strings"

	"github.com/neworld-site/go-nbt/nbt"

	"github.com/fatih/color"
)

type Colorable struct {
	Type nbt.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	ValueColor
	SuffixColor
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
	for _, t := range nbt.Types() {
		able := Colorable{Type: t, Attr: SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = SuffixColor
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		if t.IsNumeric() {
			able.Attr = ValueColor
			colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
		}
	}
	able := Colorable{Type: nbt.CompoundType, Attr: KeyColor}
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	able = Colorable{Type: nbt.StringType, Attr: ValueColor}
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Type = nbt.EndType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	for _, t := range []nbt.Type{nbt.ByteArrayType, nbt.IntArrayType, nbt.LongArrayType} {
		colors.Map[Colorable{Type: t, Attr: ValueColor}] = color.CyanString
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t nbt.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t nbt.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
