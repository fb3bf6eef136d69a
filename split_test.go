package resumefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTrigger(t *testing.T) {
	for _, line := range []string{
		"Job Description",
		"POSITION: Staff Engineer",
		"Role: Backend",
		"Key Responsibilities",
		"About the role",
	} {
		assert.True(t, IsTrigger(line), line)
	}
	assert.False(t, IsTrigger("Responsibilities included hiring"))
	assert.False(t, IsTrigger("EXPERIENCE"))
}

func TestTriggerKeywordsReturnsCopy(t *testing.T) {
	kw := TriggerKeywords()
	require.NotEmpty(t, kw)
	kw[0] = "changed"
	assert.NotEqual(t, "changed", TriggerKeywords()[0])
}

func TestSplitAtFirstTrigger(t *testing.T) {
	doc := Prepare("Jane Doe\nSKILLS\nGo, SQL\nJob Description\nWe need Go\nRequirements:\n• Five years")
	require.Len(t, doc.Lines, 7)
	require.Len(t, doc.Resume.Lines, 3)
	require.Len(t, doc.Trailing.Lines, 4)
	assert.Equal(t, SectionResume, doc.Resume.Section)
	assert.Equal(t, SectionTrailing, doc.Trailing.Section)
	assert.Equal(t, "Job Description", doc.Trailing.Lines[0].Text)
	assert.Equal(t, 3, doc.Trailing.Lines[0].Index)
	// The cut is one-directional: later trigger lines stay in the trailing block.
	assert.Equal(t, "Requirements:", doc.Trailing.Lines[2].Text)
}

func TestSplitWithoutTrigger(t *testing.T) {
	doc := Prepare(scenarioResume)
	assert.Len(t, doc.Resume.Lines, 6)
	assert.Empty(t, doc.Trailing.Lines)
}

func TestSplitTriggerOnFirstLine(t *testing.T) {
	doc := Prepare("Job Description\nBuild things")
	assert.Empty(t, doc.Resume.Lines)
	assert.Len(t, doc.Trailing.Lines, 2)
}

func TestSplitPreservesEveryLine(t *testing.T) {
	doc := Prepare("Jane Doe\n\nRole: Engineer\n\nDetails")
	assert.Equal(t, len(doc.Lines), len(doc.Resume.Lines)+len(doc.Trailing.Lines))
	var joined []ClassifiedLine
	joined = append(joined, doc.Resume.Lines...)
	joined = append(joined, doc.Trailing.Lines...)
	assert.Equal(t, doc.Lines, joined)
}
