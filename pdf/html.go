package pdf

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"pkt.systems/resumefmt"
)

const htmlStyleSheet = `body{font-family:Helvetica,Arial,sans-serif;color:#1a1a1a;max-width:7.5in;margin:0.7in auto}
p{margin:0}
ul{list-style:none;margin:0;padding:0}
li{display:flex}
li .marker{flex:0 0 12pt}
hr{border:0;border-top:1pt solid #404040;margin:2pt 0 0 0}
.page-break{break-after:page}
section.trailing{color:#444}`

// WriteHTML writes the tree as a standalone HTML document. Consecutive
// bullet rows share one list; resume and job description content land in
// separate sections.
func (t *Tree) WriteHTML(w io.Writer) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := element(atom.Html)
	doc.AppendChild(root)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	title := element(atom.Title)
	title.AppendChild(textNode(t.Title))
	head.AppendChild(title)
	css := element(atom.Style)
	css.AppendChild(textNode(htmlStyleSheet))
	head.AppendChild(css)
	root.AppendChild(head)

	body := element(atom.Body)
	root.AppendChild(body)

	var (
		section *html.Node
		current resumefmt.Section
		list    *html.Node
	)
	for _, n := range t.Nodes {
		if n.Kind == NodePageBreak {
			list = nil
			if section != nil {
				section.AppendChild(element(atom.Div, attr("class", "page-break")))
			}
			continue
		}
		if section == nil || n.Section != current {
			current = n.Section
			section = element(atom.Section, attr("class", n.Section.String()))
			body.AppendChild(section)
			list = nil
		}
		switch n.Kind {
		case NodeParagraph:
			list = nil
			p := element(atom.P, attr("class", roleClass(n.Role)), attr("style", cssFor(n.Style)))
			p.AppendChild(textNode(n.Text))
			section.AppendChild(p)
		case NodeBulletRow:
			if list == nil {
				list = element(atom.Ul)
				section.AppendChild(list)
			}
			li := element(atom.Li, attr("style", cssFor(n.Style)))
			marker := element(atom.Span, attr("class", "marker"))
			marker.AppendChild(textNode(n.Marker))
			content := element(atom.Span, attr("class", "content"))
			content.AppendChild(textNode(n.Text))
			li.AppendChild(marker)
			li.AppendChild(content)
			list.AppendChild(li)
		case NodeRule:
			list = nil
			section.AppendChild(element(atom.Hr, attr("style", "margin-bottom:"+pt(n.Style.MarginAfter))))
		case NodeSpace:
			list = nil
			if n.Height > 0 {
				section.AppendChild(element(atom.Div, attr("class", "spacer"), attr("style", "height:"+pt(n.Height))))
			}
		}
	}
	return html.Render(w, doc)
}

// RenderHTML formats resume text into an HTML document using the same
// layout pipeline as the declarative PDF renderer.
func RenderHTML(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("html render: writer is nil")
	}
	text, err := readText(req)
	if err != nil {
		return err
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)
	log := req.Logger
	if log == nil {
		log = zap.NewNop()
	}
	doc := resumefmt.Prepare(text)
	blocks := resumefmt.Layout(resumefmt.LayoutRequest{
		Resume:   doc.Resume,
		Trailing: doc.Trailing,
		Styles:   cfg.Styles,
	})
	tree, err := BuildTree(blocks, cfg.TrailingOnNewPage)
	if err != nil {
		return fmt.Errorf("html render: %w: %w", ErrGeneration, err)
	}
	tree.Title = cfg.Title
	var buf bytes.Buffer
	if err := tree.WriteHTML(&buf); err != nil {
		return fmt.Errorf("html render: %w: %w", ErrGeneration, err)
	}
	log.Debug("rendered html", zap.Int("nodes", len(tree.Nodes)), zap.Int("bytes", buf.Len()))
	if _, err := buf.WriteTo(req.Writer); err != nil {
		return fmt.Errorf("html render: write: %w", err)
	}
	return nil
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func roleClass(k resumefmt.RoleKind) string {
	return "role-" + strings.ReplaceAll(k.String(), "_", "-")
}

func cssFor(st resumefmt.RoleStyle) string {
	var b strings.Builder
	b.WriteString("font-size:" + pt(st.FontSize))
	if st.Bold {
		b.WriteString(";font-weight:bold")
	}
	if st.Italic {
		b.WriteString(";font-style:italic")
	}
	if st.Align != "" && st.Align != resumefmt.AlignLeft {
		b.WriteString(";text-align:" + string(st.Align))
	}
	if st.MarginBefore > 0 {
		b.WriteString(";margin-top:" + pt(st.MarginBefore))
	}
	if st.MarginAfter > 0 && !st.Rule {
		b.WriteString(";margin-bottom:" + pt(st.MarginAfter))
	}
	if st.Indent > 0 {
		b.WriteString(";margin-left:" + pt(st.Indent))
	}
	if st.Color != "" {
		b.WriteString(";color:" + st.Color)
	}
	return b.String()
}

func pt(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "pt"
}
