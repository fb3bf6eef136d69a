package pdf

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding/charmap"
	"pkt.systems/resumefmt"
)

// Bullet glyphs missing from Windows-1252 are drawn as a plain bullet.
var cp1252Fallback = map[rune]rune{
	'▪': '•',
	'▫': '•',
	'‣': '•',
	'⁃': '•',
	'◦': '•',
}

// fontSet knows which font family is loaded and how strings must be encoded
// for it. Core fonts take Windows-1252 bytes; TTF fonts take UTF-8.
type fontSet struct {
	family     string
	utf8       bool
	boldItalic bool
}

func loadFonts(pdf *gofpdf.Fpdf, cfg Config) (fontSet, error) {
	fs := fontSet{family: cfg.FontFamily}
	if cfg.RegularFont == "" {
		fs.boldItalic = true
		return fs, nil
	}
	fs.utf8 = true
	faces := []struct {
		style string
		path  string
	}{
		{"", cfg.RegularFont},
		{"B", cfg.BoldFont},
		{"I", cfg.ItalicFont},
		{"BI", cfg.BoldItalicFont},
	}
	for _, face := range faces {
		if face.path == "" {
			continue
		}
		data, err := os.ReadFile(face.path)
		if err != nil {
			return fs, fmt.Errorf("font %s: %w", face.path, err)
		}
		pdf.AddUTF8FontFromBytes(fs.family, face.style, data)
		if face.style == "BI" {
			fs.boldItalic = true
		}
	}
	if err := pdf.Error(); err != nil {
		return fs, fmt.Errorf("font setup failed: %w", err)
	}
	return fs, nil
}

func (fs fontSet) apply(pdf *gofpdf.Fpdf, st resumefmt.RoleStyle) {
	size := st.FontSize
	if size <= 0 {
		size = 1
	}
	pdf.SetFont(fs.family, fontStyle(st, fs.boldItalic), size)
}

func (fs fontSet) encode(s string) string {
	if fs.utf8 {
		return s
	}
	return encodeCP1252(s)
}

func encodeCP1252(s string) string {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return s
	}
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if fb, ok := cp1252Fallback[r]; ok {
			r = fb
		}
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return string(out)
}

func fontStyle(st resumefmt.RoleStyle, allowBoldItalic bool) string {
	bold := st.Bold
	italic := st.Italic
	if bold && italic && !allowBoldItalic {
		italic = false
	}
	var b strings.Builder
	if bold {
		b.WriteByte('B')
	}
	if italic {
		b.WriteByte('I')
	}
	return b.String()
}

func alignString(a resumefmt.Alignment) string {
	switch a {
	case resumefmt.AlignCenter:
		return "C"
	case resumefmt.AlignRight:
		return "R"
	default:
		return "L"
	}
}

func parseHexColor(s string) ([3]int, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return [3]int{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return [3]int{}, false
	}
	return [3]int{int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)}, true
}

// palette resolves the text color of a style, falling back to the document
// default.
type palette struct {
	text [3]int
	rule [3]int
}

func newPalette(cfg Config) palette {
	text, _ := parseHexColor(cfg.TextColor)
	rule, _ := parseHexColor(cfg.RuleColor)
	return palette{text: text, rule: rule}
}

func (p palette) textColor(st resumefmt.RoleStyle) [3]int {
	if c, ok := parseHexColor(st.Color); ok {
		return c
	}
	return p.text
}
