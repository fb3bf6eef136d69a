package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pkt.systems/resumefmt"
)

func TestFontStyle(t *testing.T) {
	assert.Equal(t, "", fontStyle(resumefmt.RoleStyle{}, true))
	assert.Equal(t, "B", fontStyle(resumefmt.RoleStyle{Bold: true}, true))
	assert.Equal(t, "I", fontStyle(resumefmt.RoleStyle{Italic: true}, false))
	assert.Equal(t, "BI", fontStyle(resumefmt.RoleStyle{Bold: true, Italic: true}, true))
	assert.Equal(t, "B", fontStyle(resumefmt.RoleStyle{Bold: true, Italic: true}, false))
}

func TestParseHexColor(t *testing.T) {
	c, ok := parseHexColor("#fff")
	assert.True(t, ok)
	assert.Equal(t, [3]int{255, 255, 255}, c)

	c, ok = parseHexColor("1a2B3c")
	assert.True(t, ok)
	assert.Equal(t, [3]int{0x1a, 0x2b, 0x3c}, c)

	for _, bad := range []string{"", "#12345", "zzzzzz", "blue"} {
		_, ok := parseHexColor(bad)
		assert.False(t, ok, bad)
	}
}

func TestEncodeCP1252(t *testing.T) {
	assert.Equal(t, "plain ascii", encodeCP1252("plain ascii"))
	assert.Equal(t, "Jan \x96 Mar", encodeCP1252("Jan – Mar"))
	assert.Equal(t, "\x95 item", encodeCP1252("▪ item"))
	assert.Equal(t, "Jos\xe9", encodeCP1252("José"))
	assert.Equal(t, "?", encodeCP1252("漢"))
}

func TestAlignString(t *testing.T) {
	assert.Equal(t, "C", alignString(resumefmt.AlignCenter))
	assert.Equal(t, "R", alignString(resumefmt.AlignRight))
	assert.Equal(t, "L", alignString(""))
}

func TestPaletteTextColor(t *testing.T) {
	p := newPalette(DefaultConfig())
	assert.Equal(t, [3]int{0x1a, 0x1a, 0x1a}, p.textColor(resumefmt.RoleStyle{}))
	assert.Equal(t, [3]int{0, 0x33, 0x66}, p.textColor(resumefmt.RoleStyle{Color: "#003366"}))
}
