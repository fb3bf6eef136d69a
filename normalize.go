package resumefmt

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// RawLine is one normalized line of input text.
type RawLine struct {
	Index int
	Text  string
	Blank bool
}

var lineReplacer = strings.NewReplacer(
	"\u00a0", " ",
	"\u202f", " ",
	"\u2007", " ",
	"\t", " ",
	"\u2014", "\u2013",
)

// NormalizeLine prepares a single line for classification: NFC composition,
// non-breaking spaces collapsed to plain spaces, em dashes unified to en
// dashes, control characters dropped and surrounding whitespace trimmed.
func NormalizeLine(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)
	s = lineReplacer.Replace(s)
	s = stripControl(s)
	return strings.TrimSpace(s)
}

// SplitLines splits text on line breaks and normalizes every line. A single
// trailing newline terminates the last line instead of opening a new one.
func SplitLines(text string) []RawLine {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	parts := strings.Split(text, "\n")
	lines := make([]RawLine, len(parts))
	for i, part := range parts {
		normalized := NormalizeLine(part)
		lines[i] = RawLine{
			Index: i,
			Text:  normalized,
			Blank: normalized == "",
		}
	}
	return lines
}

func stripControl(s string) string {
	clean := true
	for _, r := range s {
		if isControlRune(r) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isControlRune(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
