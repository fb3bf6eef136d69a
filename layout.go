package resumefmt

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LayoutBlock is one classified line with its resolved style and estimated
// vertical extent. Text is the normalized source line; Display is what gets
// drawn after style transforms such as uppercasing.
type LayoutBlock struct {
	Index   int
	Section Section
	Role    LineRole
	Text    string
	Display string
	Marker  string
	Content string
	Style   RoleStyle
	Lines   int
	Leading float64
	RuleGap float64
	Rule    float64
	Height  float64
}

// IsSpacer reports whether the block only carries vertical space.
func (b LayoutBlock) IsSpacer() bool {
	return b.Role.Kind == RoleSpacer
}

// TextTop is the y offset of the first text line relative to the block top.
func (b LayoutBlock) TextTop() float64 {
	return b.Style.MarginBefore
}

// RuleOffset is the y offset of the underline rule relative to the block top.
func (b LayoutBlock) RuleOffset() float64 {
	return b.Style.MarginBefore + float64(b.Lines)*b.Leading + b.RuleGap
}

// MeasureFunc reports how many lines text occupies when set in style st
// within width points. Renderers pass their text primitive's line breaker.
type MeasureFunc func(text string, st RoleStyle, width float64) int

// LayoutRequest configures Layout.
type LayoutRequest struct {
	Resume   ContentBlock
	Trailing ContentBlock
	Styles   StyleSheet
	// Width is the usable text width in points. Measure is only consulted
	// when both are set; otherwise every block is one line tall.
	Width   float64
	Measure MeasureFunc
}

// Layout produces one block per line, all resume lines first.
func Layout(req LayoutRequest) []LayoutBlock {
	styles := req.Styles
	if styles.LineHeight <= 0 {
		styles = DefaultStyleSheet().Merge(styles)
	}
	upper := cases.Upper(language.Und)
	blocks := make([]LayoutBlock, 0, len(req.Resume.Lines)+len(req.Trailing.Lines))
	for _, cb := range []ContentBlock{req.Resume, req.Trailing} {
		for _, line := range cb.Lines {
			blocks = append(blocks, layoutLine(line, cb.Section, styles, upper, req))
		}
	}
	return blocks
}

func layoutLine(line ClassifiedLine, section Section, styles StyleSheet, upper cases.Caser, req LayoutRequest) LayoutBlock {
	st := styles.StyleFor(line.Role)
	b := LayoutBlock{
		Index:   line.Index,
		Section: section,
		Role:    line.Role,
		Text:    line.Text,
		Display: line.Text,
		Style:   st,
		Leading: styles.LineAdvance(st),
	}
	if line.Role.Kind == RoleSpacer {
		b.Height = styles.BlockHeight(st, 0)
		return b
	}
	if st.Uppercase {
		b.Display = upper.String(line.Text)
	}
	width := req.Width - st.Indent
	if line.Role.Kind == RoleBullet {
		b.Marker = line.Role.Marker
		b.Content = line.Role.Content
		b.Display = b.Content
		width -= styles.MarkerWidth
	}
	b.Lines = 1
	if req.Measure != nil && width > 0 {
		if n := req.Measure(b.Display, st, width); n > 1 {
			b.Lines = n
		}
	}
	if st.Rule {
		b.RuleGap = styles.RuleGap
		b.Rule = styles.RuleWidth
	}
	b.Height = styles.BlockHeight(st, b.Lines)
	return b
}

// PageState tracks the write position of a renderer that paginates by hand.
type PageState struct {
	CurrentY     float64
	PageIndex    int
	PageHeight   float64
	TopMargin    float64
	BottomMargin float64
}

// NewPageState starts at the top margin of the first page.
func NewPageState(pageHeight, topMargin, bottomMargin float64) *PageState {
	return &PageState{
		CurrentY:     topMargin,
		PageHeight:   pageHeight,
		TopMargin:    topMargin,
		BottomMargin: bottomMargin,
	}
}

// NeedsBreak reports whether a block of height h overflows the bottom
// margin. A block that does not fit on an empty page is placed anyway.
func (p *PageState) NeedsBreak(h float64) bool {
	if p.CurrentY <= p.TopMargin {
		return false
	}
	return p.CurrentY+h > p.PageHeight-p.BottomMargin
}

// Break moves to the top of the next page.
func (p *PageState) Break() {
	p.CurrentY = p.TopMargin
	p.PageIndex++
}

// Advance moves the write position down by h.
func (p *PageState) Advance(h float64) {
	p.CurrentY += h
}

// Paginate returns the zero-based page of every block under the pagination
// rule, starting from a copy of state.
func Paginate(blocks []LayoutBlock, state PageState) []int {
	pages := make([]int, len(blocks))
	for i, b := range blocks {
		if state.NeedsBreak(b.Height) {
			state.Break()
		}
		pages[i] = state.PageIndex
		state.Advance(b.Height)
	}
	return pages
}
