package resumefmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layoutText(text string, req LayoutRequest) []LayoutBlock {
	doc := Prepare(text)
	req.Resume = doc.Resume
	req.Trailing = doc.Trailing
	return Layout(req)
}

func TestLayoutCoversEveryLine(t *testing.T) {
	text := "Jane Doe\n\nSKILLS\nGo\nJob Description\nWe need Go"
	doc := Prepare(text)
	blocks := layoutText(text, LayoutRequest{Styles: DefaultStyleSheet()})
	require.Len(t, blocks, len(doc.Lines))
	for i, b := range blocks {
		assert.Equal(t, i, b.Index)
		assert.Equal(t, doc.Lines[i].Text, b.Text)
	}
	assert.Equal(t, SectionResume, blocks[3].Section)
	assert.Equal(t, SectionTrailing, blocks[4].Section)
}

func TestLayoutScenarioBlocks(t *testing.T) {
	blocks := layoutText(scenarioResume, LayoutRequest{})
	require.Len(t, blocks, 6)

	name := blocks[0]
	assert.Equal(t, "JOHN SMITH", name.Display)
	assert.Equal(t, AlignCenter, name.Style.Align)

	header := blocks[2]
	assert.True(t, header.Style.Rule)
	assert.Equal(t, 1.0, header.Rule)
	assert.Equal(t, 2.0, header.RuleGap)

	bullet := blocks[5]
	assert.Equal(t, "•", bullet.Marker)
	assert.Equal(t, "Led a team of 5", bullet.Content)
	assert.Equal(t, "Led a team of 5", bullet.Display)
	assert.Equal(t, "• Led a team of 5", bullet.Text)
}

func TestLayoutUppercaseKeepsSourceText(t *testing.T) {
	blocks := layoutText("Jane Doe", LayoutRequest{})
	require.Len(t, blocks, 1)
	assert.Equal(t, "Jane Doe", blocks[0].Text)
	assert.Equal(t, "JANE DOE", blocks[0].Display)
}

func TestLayoutUsesMeasure(t *testing.T) {
	styles := DefaultStyleSheet()
	widths := map[RoleKind]float64{}
	record := func(text string, st RoleStyle, width float64) int {
		if st == styles.Bullet {
			widths[RoleBullet] = width
		} else {
			widths[RoleBody] = width
		}
		return 3
	}
	blocks := layoutText("plain body text with more words.\n\n• a bullet", LayoutRequest{
		Styles:  styles,
		Width:   400,
		Measure: record,
	})
	require.Len(t, blocks, 3)
	assert.Equal(t, 3, blocks[0].Lines)
	assert.InDelta(t, styles.BlockHeight(styles.Body, 3), blocks[0].Height, 1e-9)
	assert.Equal(t, 0, blocks[1].Lines)
	assert.InDelta(t, 400.0, widths[RoleBody], 1e-9)
	assert.InDelta(t, 400-styles.Bullet.Indent-styles.MarkerWidth, widths[RoleBullet], 1e-9)
}

func TestLayoutWithoutMeasureIsSingleLine(t *testing.T) {
	blocks := layoutText("a body line that would wrap somewhere", LayoutRequest{Width: 10})
	require.Len(t, blocks, 1)
	assert.Equal(t, 1, blocks[0].Lines)
}

func TestPaginate(t *testing.T) {
	blocks := []LayoutBlock{{Height: 40}, {Height: 40}, {Height: 40}, {Height: 40}}
	state := NewPageState(100, 10, 10)
	assert.Equal(t, []int{0, 0, 1, 1}, Paginate(blocks, *state))
	assert.Equal(t, 10.0, state.CurrentY, "Paginate works on a copy")
}

func TestPaginateOversizedBlockStaysOnEmptyPage(t *testing.T) {
	blocks := []LayoutBlock{{Height: 200}, {Height: 10}}
	assert.Equal(t, []int{0, 1}, Paginate(blocks, *NewPageState(100, 10, 10)))
}

func TestPageState(t *testing.T) {
	p := NewPageState(792, 50, 50)
	assert.False(t, p.NeedsBreak(1000))
	p.Advance(600)
	assert.True(t, p.NeedsBreak(100))
	assert.False(t, p.NeedsBreak(92))
	p.Break()
	assert.Equal(t, 1, p.PageIndex)
	assert.Equal(t, 50.0, p.CurrentY)
}

func TestLayoutContentIsLossless(t *testing.T) {
	text := "Jane Doe\n" +
		"jane@example.com | Austin, TX\n" +
		"\n" +
		"EXPERIENCE\n" +
		"Backend Developer\n" +
		"Initech – Jan 2019 – Mar 2021\n" +
		"• Cut p99 latency by 40%\n" +
		"- -40% error budget burn on checkout\n" +
		"* *Award* for reliability\n" +
		"\n" +
		"Job Description:\n" +
		"We need Go, Kafka and SQL."
	source := SplitLines(text)
	blocks := layoutText(text, LayoutRequest{})
	require.Len(t, blocks, len(source))

	rebuilt := make([]string, len(blocks))
	for i, b := range blocks {
		want := source[i].Text
		switch {
		case b.IsSpacer():
			assert.Empty(t, want, "line %d", i)
		case b.Role.Kind == RoleBullet:
			assert.Equal(t, strings.TrimSpace(strings.TrimPrefix(want, b.Marker)), b.Content, "line %d", i)
			rebuilt[i] = b.Marker + " " + b.Content
		default:
			assert.Equal(t, want, b.Text, "line %d", i)
			rebuilt[i] = b.Text
		}
	}
	want := make([]string, len(source))
	for i, line := range source {
		want[i] = line.Text
	}
	assert.Equal(t, strings.Join(want, "\n"), strings.Join(rebuilt, "\n"))
	assert.Equal(t, SectionTrailing, blocks[len(blocks)-1].Section)
}
