package pdf

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"pkt.systems/resumefmt"
)

// NodeKind is the type of a document tree node.
type NodeKind uint8

const (
	NodeParagraph NodeKind = iota
	NodeBulletRow
	NodeRule
	NodeSpace
	NodePageBreak
)

func (k NodeKind) String() string {
	switch k {
	case NodeParagraph:
		return "paragraph"
	case NodeBulletRow:
		return "bullet_row"
	case NodeRule:
		return "rule"
	case NodeSpace:
		return "space"
	case NodePageBreak:
		return "page_break"
	default:
		return fmt.Sprintf("node(%d)", uint8(k))
	}
}

// Node is one styled element of the declarative document. Height is the gap
// of a space node; for rules it is the stroke width and Gap the distance to
// the text above.
type Node struct {
	Kind    NodeKind
	Role    resumefmt.RoleKind
	Section resumefmt.Section
	Text    string
	Marker  string
	Style   resumefmt.RoleStyle
	Leading float64
	Height  float64
	Gap     float64
}

// Tree is a flat, ordered document description. Page overflow is left to
// whatever draws it.
type Tree struct {
	Title string
	Nodes []Node
}

// BuildTree turns layout blocks into a Tree through the same Compose driver
// the procedural renderer uses.
func BuildTree(blocks []resumefmt.LayoutBlock, breakBeforeTrailing bool) (*Tree, error) {
	b := &treeBuilder{tree: &Tree{}}
	err := resumefmt.Compose(resumefmt.ComposeRequest{
		Blocks:              blocks,
		Sink:                b,
		BreakBeforeTrailing: breakBeforeTrailing,
	})
	if err != nil {
		return nil, err
	}
	return b.tree, nil
}

type treeBuilder struct {
	tree *Tree
}

var _ resumefmt.Sink = (*treeBuilder)(nil)

func (t *treeBuilder) EmitText(b resumefmt.LayoutBlock) error {
	t.tree.Nodes = append(t.tree.Nodes, Node{
		Kind:    NodeParagraph,
		Role:    b.Role.Kind,
		Section: b.Section,
		Text:    b.Display,
		Style:   b.Style,
		Leading: b.Leading,
	})
	return nil
}

func (t *treeBuilder) EmitBullet(b resumefmt.LayoutBlock) error {
	t.tree.Nodes = append(t.tree.Nodes, Node{
		Kind:    NodeBulletRow,
		Role:    b.Role.Kind,
		Section: b.Section,
		Text:    b.Content,
		Marker:  b.Marker,
		Style:   b.Style,
		Leading: b.Leading,
	})
	return nil
}

func (t *treeBuilder) EmitRule(b resumefmt.LayoutBlock) error {
	t.tree.Nodes = append(t.tree.Nodes, Node{
		Kind:    NodeRule,
		Role:    b.Role.Kind,
		Section: b.Section,
		Style:   b.Style,
		Height:  b.Rule,
		Gap:     b.RuleGap,
	})
	return nil
}

func (t *treeBuilder) EmitSpace(b resumefmt.LayoutBlock) error {
	t.tree.Nodes = append(t.tree.Nodes, Node{
		Kind:    NodeSpace,
		Role:    b.Role.Kind,
		Section: b.Section,
		Height:  b.Height,
	})
	return nil
}

func (t *treeBuilder) PageBreak() error {
	t.tree.Nodes = append(t.tree.Nodes, Node{Kind: NodePageBreak})
	return nil
}

func (t *treeBuilder) Flush() error {
	return nil
}

// draw lays the tree out in flow mode. Text cells trigger the writer's own
// page breaks; margins become vertical moves.
func (t *Tree) draw(pdf *gofpdf.Fpdf, cfg Config, fonts fontSet) error {
	pdf.SetAutoPageBreak(true, cfg.Margin)
	pdf.AddPage()
	colors := newPalette(cfg)
	pageW, pageH := pdf.GetPageSize()
	left := cfg.Margin
	width := pageW - 2*cfg.Margin
	markerW := cfg.Styles.MarkerWidth
	for i, n := range t.Nodes {
		switch n.Kind {
		case NodeParagraph:
			setFlowStyle(pdf, fonts, colors, n.Style)
			moveDown(pdf, n.Style.MarginBefore)
			pdf.SetX(left + n.Style.Indent)
			pdf.MultiCell(width-n.Style.Indent, n.Leading, fonts.encode(n.Text), "", alignString(n.Style.Align), false)
			if !n.Style.Rule {
				moveDown(pdf, n.Style.MarginAfter)
			}
		case NodeBulletRow:
			setFlowStyle(pdf, fonts, colors, n.Style)
			moveDown(pdf, n.Style.MarginBefore)
			x := left + n.Style.Indent
			pdf.SetX(x)
			pdf.CellFormat(markerW, n.Leading, fonts.encode(n.Marker), "", 0, "L", false, 0, "")
			pdf.SetX(x + markerW)
			pdf.MultiCell(width-n.Style.Indent-markerW, n.Leading, fonts.encode(n.Text), "", "L", false)
			moveDown(pdf, n.Style.MarginAfter)
		case NodeRule:
			y := pdf.GetY() + n.Gap
			if y+n.Height > pageH-cfg.Margin {
				pdf.AddPage()
				y = pdf.GetY()
			}
			pdf.SetDrawColor(colors.rule[0], colors.rule[1], colors.rule[2])
			pdf.SetLineWidth(n.Height)
			pdf.Line(left, y+n.Height/2, left+width, y+n.Height/2)
			pdf.SetY(y + n.Height)
			moveDown(pdf, n.Style.MarginAfter)
		case NodeSpace:
			moveDown(pdf, n.Height)
		case NodePageBreak:
			pdf.AddPage()
		}
		if err := pdf.Error(); err != nil {
			return fmt.Errorf("node %d (%s): %w", i, n.Kind, err)
		}
	}
	return nil
}

func setFlowStyle(pdf *gofpdf.Fpdf, fonts fontSet, colors palette, st resumefmt.RoleStyle) {
	fonts.apply(pdf, st)
	c := colors.textColor(st)
	pdf.SetTextColor(c[0], c[1], c[2])
}

func moveDown(pdf *gofpdf.Fpdf, h float64) {
	if h > 0 {
		pdf.SetY(pdf.GetY() + h)
	}
}
