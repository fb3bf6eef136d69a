package resumefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleForRoles(t *testing.T) {
	s := DefaultStyleSheet()
	assert.Equal(t, s.Name, s.StyleFor(LineRole{Kind: RoleName}))
	assert.Equal(t, s.SectionHeader, s.StyleFor(LineRole{Kind: RoleSectionHeader}))
	assert.Equal(t, s.CompanyDate, s.StyleFor(LineRole{Kind: RoleCompanyDateLine}))
	assert.Equal(t, s.Bullet, s.StyleFor(bulletRole("•", "x")))
	assert.Equal(t, s.Body, s.StyleFor(LineRole{Kind: RoleBody}))
	assert.Equal(t, s.SpacerMedium, s.StyleFor(spacerRole(SpacerMedium)))
	assert.Equal(t, RoleStyle{}, s.StyleFor(spacerRole(SpacerNone)))
}

func TestDefaultStyleSheetScenarioTypography(t *testing.T) {
	s := DefaultStyleSheet()
	assert.Equal(t, AlignCenter, s.Name.Align)
	assert.True(t, s.Name.Uppercase)
	assert.Equal(t, AlignCenter, s.ContactInfo.Align)
	assert.True(t, s.SectionHeader.Rule)
	assert.True(t, s.CompanyDate.Italic)
	assert.Greater(t, s.Bullet.Indent, 0.0)
}

func TestBlockHeight(t *testing.T) {
	s := DefaultStyleSheet()
	assert.InDelta(t, 8+22*1.2, s.BlockHeight(s.Name, 1), 1e-9)
	assert.InDelta(t, 8+4+11*1.2+2+1, s.BlockHeight(s.SectionHeader, 1), 1e-9)
	assert.InDelta(t, 2+2*11*1.2, s.BlockHeight(s.Bullet, 2), 1e-9)
	assert.InDelta(t, 6, s.BlockHeight(s.SpacerMedium, 0), 1e-9)
	assert.Zero(t, s.BlockHeight(RoleStyle{}, 0))
}

func TestMergeOverridesNonZeroFields(t *testing.T) {
	base := DefaultStyleSheet()
	merged := base.Merge(StyleSheet{
		Name:       RoleStyle{FontSize: 26, Color: "#003366"},
		Body:       RoleStyle{Italic: true},
		LineHeight: 1.4,
	})
	assert.Equal(t, 26.0, merged.Name.FontSize)
	assert.Equal(t, "#003366", merged.Name.Color)
	assert.Equal(t, base.Name.MarginAfter, merged.Name.MarginAfter)
	assert.True(t, merged.Name.Bold)
	assert.True(t, merged.Body.Italic)
	assert.Equal(t, 1.4, merged.LineHeight)
	assert.Equal(t, base.MarkerWidth, merged.MarkerWidth)
	assert.Equal(t, base.SectionHeader, merged.SectionHeader)
	assert.Equal(t, base, base.Merge(StyleSheet{}))
}
