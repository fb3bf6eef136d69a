package pdf

import (
	"github.com/jung-kurt/gofpdf"
	"pkt.systems/resumefmt"
)

// proceduralSink draws every block at an absolute position taken from the
// shared PageState. Automatic page breaks are off; Compose decides them.
type proceduralSink struct {
	pdf         *gofpdf.Fpdf
	fonts       fontSet
	colors      palette
	pages       *resumefmt.PageState
	left        float64
	width       float64
	markerWidth float64
}

var _ resumefmt.Sink = (*proceduralSink)(nil)

func newProceduralSink(pdf *gofpdf.Fpdf, cfg Config, fonts fontSet, pages *resumefmt.PageState) *proceduralSink {
	pdf.SetAutoPageBreak(false, cfg.Margin)
	pageW, _ := pdf.GetPageSize()
	s := &proceduralSink{
		pdf:         pdf,
		fonts:       fonts,
		colors:      newPalette(cfg),
		pages:       pages,
		left:        cfg.Margin,
		width:       pageW - 2*cfg.Margin,
		markerWidth: cfg.Styles.MarkerWidth,
	}
	s.pdf.AddPage()
	return s
}

func (s *proceduralSink) EmitText(b resumefmt.LayoutBlock) error {
	s.setStyle(b.Style)
	x := s.left + b.Style.Indent
	s.pdf.SetXY(x, s.pages.CurrentY+b.TextTop())
	s.pdf.MultiCell(s.width-b.Style.Indent, b.Leading, s.fonts.encode(b.Display), "", alignString(b.Style.Align), false)
	return s.pdf.Error()
}

// EmitBullet draws two columns: the marker in a fixed-width cell and the
// content wrapped in the remaining width.
func (s *proceduralSink) EmitBullet(b resumefmt.LayoutBlock) error {
	s.setStyle(b.Style)
	x := s.left + b.Style.Indent
	y := s.pages.CurrentY + b.TextTop()
	s.pdf.SetXY(x, y)
	s.pdf.CellFormat(s.markerWidth, b.Leading, s.fonts.encode(b.Marker), "", 0, "L", false, 0, "")
	s.pdf.SetXY(x+s.markerWidth, y)
	s.pdf.MultiCell(s.width-b.Style.Indent-s.markerWidth, b.Leading, s.fonts.encode(b.Content), "", "L", false)
	return s.pdf.Error()
}

func (s *proceduralSink) EmitRule(b resumefmt.LayoutBlock) error {
	y := s.pages.CurrentY + b.RuleOffset() + b.Rule/2
	s.pdf.SetDrawColor(s.colors.rule[0], s.colors.rule[1], s.colors.rule[2])
	s.pdf.SetLineWidth(b.Rule)
	s.pdf.Line(s.left, y, s.left+s.width, y)
	return s.pdf.Error()
}

// EmitSpace draws nothing; Compose advances the write position.
func (s *proceduralSink) EmitSpace(resumefmt.LayoutBlock) error {
	return nil
}

func (s *proceduralSink) PageBreak() error {
	s.pdf.AddPage()
	return s.pdf.Error()
}

func (s *proceduralSink) Flush() error {
	return s.pdf.Error()
}

func (s *proceduralSink) setStyle(st resumefmt.RoleStyle) {
	s.fonts.apply(s.pdf, st)
	c := s.colors.textColor(st)
	s.pdf.SetTextColor(c[0], c[1], c[2])
}
