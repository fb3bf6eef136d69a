package resumefmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

const (
	defaultPreviewWidth = 80
	minPreviewWidth     = 20
	previewMarkerCols   = 2
)

// PreviewSink renders blocks as styled ANSI text for a terminal. It wraps
// long lines itself and never paginates; PageBreak prints a separator.
type PreviewSink struct {
	w      *bufio.Writer
	width  int
	styles Styles
	page   int
	err    error
}

var _ Sink = (*PreviewSink)(nil)

// NewPreviewSink returns a terminal Sink writing to w at the given column
// width. A nil theme renders without escape sequences.
func NewPreviewSink(w io.Writer, width int, theme Theme) *PreviewSink {
	if width <= 0 {
		width = defaultPreviewWidth
	}
	if width < minPreviewWidth {
		width = minPreviewWidth
	}
	var styles Styles
	if theme != nil {
		styles = theme.Styles()
	}
	return &PreviewSink{w: bufio.NewWriter(w), width: width, styles: styles, page: 1}
}

// Width returns the column width used for wrapping.
func (p *PreviewSink) Width() int {
	return p.width
}

func (p *PreviewSink) EmitText(b LayoutBlock) error {
	st := p.prefixFor(b, p.styles.forRole(b.Role.Kind))
	wrapped := wordwrap.String(b.Display, p.width)
	for _, line := range strings.Split(wrapped, "\n") {
		if b.Style.Align == AlignCenter {
			line = p.center(line)
		}
		p.writeLine(st, line)
	}
	return p.err
}

func (p *PreviewSink) EmitBullet(b LayoutBlock) error {
	marker := p.prefixFor(b, p.styles.BulletMarker)
	text := p.prefixFor(b, p.styles.Bullet)
	wrapped := wordwrap.String(b.Content, p.width-previewMarkerCols)
	lines := strings.SplitN(wrapped, "\n", 2)
	p.write(marker.Prefix)
	p.write(b.Marker + " ")
	if marker.Prefix != "" {
		p.write(ansiReset)
	}
	p.writeLine(text, lines[0])
	if len(lines) > 1 {
		p.writeLine(text, indent.String(lines[1], previewMarkerCols))
	}
	return p.err
}

func (p *PreviewSink) EmitRule(b LayoutBlock) error {
	p.writeLine(p.styles.Rule, strings.Repeat("─", p.width))
	return p.err
}

func (p *PreviewSink) EmitSpace(b LayoutBlock) error {
	if b.Height > 0 {
		p.write("\n")
	}
	return p.err
}

func (p *PreviewSink) PageBreak() error {
	p.page++
	p.write("\n")
	p.writeLine(p.styles.Rule, p.center(fmt.Sprintf("┄┄ page %d ┄┄", p.page)))
	p.write("\n")
	return p.err
}

func (p *PreviewSink) Flush() error {
	if p.err != nil {
		return p.err
	}
	return p.w.Flush()
}

func (p *PreviewSink) prefixFor(b LayoutBlock, st Style) Style {
	if b.Section == SectionTrailing && p.styles.Trailing.Prefix != "" {
		return Style{Prefix: p.styles.Trailing.Prefix + st.Prefix}
	}
	return st
}

func (p *PreviewSink) center(line string) string {
	w := ansi.PrintableRuneWidth(line)
	if w >= p.width {
		return line
	}
	return strings.Repeat(" ", (p.width-w)/2) + line
}

func (p *PreviewSink) writeLine(st Style, line string) {
	if st.Prefix != "" {
		p.write(st.Prefix)
		p.write(line)
		p.write(ansiReset)
	} else {
		p.write(line)
	}
	p.write("\n")
}

func (p *PreviewSink) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = p.w.WriteString(s)
}
