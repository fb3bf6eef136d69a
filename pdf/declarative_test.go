package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pkt.systems/resumefmt"
)

func scenarioBlocks(text string) []resumefmt.LayoutBlock {
	doc := resumefmt.Prepare(text)
	return resumefmt.Layout(resumefmt.LayoutRequest{
		Resume:   doc.Resume,
		Trailing: doc.Trailing,
		Styles:   resumefmt.DefaultStyleSheet(),
	})
}

func nodeKinds(tree *Tree) []NodeKind {
	out := make([]NodeKind, len(tree.Nodes))
	for i, n := range tree.Nodes {
		out[i] = n.Kind
	}
	return out
}

func TestBuildTreeScenario(t *testing.T) {
	tree, err := BuildTree(scenarioBlocks(scenarioResume), false)
	require.NoError(t, err)
	assert.Equal(t, []NodeKind{
		NodeParagraph,
		NodeParagraph,
		NodeParagraph,
		NodeRule,
		NodeParagraph,
		NodeParagraph,
		NodeBulletRow,
	}, nodeKinds(tree))

	name := tree.Nodes[0]
	assert.Equal(t, "JOHN SMITH", name.Text)
	assert.Equal(t, resumefmt.AlignCenter, name.Style.Align)
	assert.True(t, name.Style.Bold)

	assert.Equal(t, resumefmt.AlignCenter, tree.Nodes[1].Style.Align)
	assert.True(t, tree.Nodes[2].Style.Rule)
	assert.Equal(t, 1.0, tree.Nodes[3].Height)
	assert.True(t, tree.Nodes[5].Style.Italic)

	bullet := tree.Nodes[6]
	assert.Equal(t, "•", bullet.Marker)
	assert.Equal(t, "Led a team of 5", bullet.Text)
}

func TestBuildTreeBreakBeforeTrailing(t *testing.T) {
	blocks := scenarioBlocks("Jane Doe\n\nJob Description:\nWe need Go, Kafka and SQL.")
	tree, err := BuildTree(blocks, true)
	require.NoError(t, err)
	assert.Equal(t, []NodeKind{NodeParagraph, NodeSpace, NodePageBreak, NodeParagraph, NodeParagraph}, nodeKinds(tree))
	assert.Equal(t, resumefmt.SectionTrailing, tree.Nodes[3].Section)
}

func TestNodeKindString(t *testing.T) {
	assert.Equal(t, "bullet_row", NodeBulletRow.String())
	assert.Equal(t, "page_break", NodePageBreak.String())
	assert.Equal(t, "node(42)", NodeKind(42).String())
}
