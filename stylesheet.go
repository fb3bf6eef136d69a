package resumefmt

// Alignment is the horizontal placement of a line.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// RoleStyle holds the typography of one role. Sizes are in points.
type RoleStyle struct {
	FontSize     float64   `toml:"font_size" yaml:"font_size"`
	MarginBefore float64   `toml:"margin_before" yaml:"margin_before"`
	MarginAfter  float64   `toml:"margin_after" yaml:"margin_after"`
	Indent       float64   `toml:"indent" yaml:"indent"`
	Align        Alignment `toml:"align" yaml:"align"`
	Color        string    `toml:"color" yaml:"color"`
	Bold         bool      `toml:"bold" yaml:"bold"`
	Italic       bool      `toml:"italic" yaml:"italic"`
	Uppercase    bool      `toml:"uppercase" yaml:"uppercase"`
	Rule         bool      `toml:"rule" yaml:"rule"`
}

// StyleSheet is the static typography table shared by every renderer.
type StyleSheet struct {
	Name           RoleStyle `toml:"name" yaml:"name"`
	ContactInfo    RoleStyle `toml:"contact_info" yaml:"contact_info"`
	HeaderJobTitle RoleStyle `toml:"header_job_title" yaml:"header_job_title"`
	SectionHeader  RoleStyle `toml:"section_header" yaml:"section_header"`
	SkillCategory  RoleStyle `toml:"skill_category" yaml:"skill_category"`
	JobTitle       RoleStyle `toml:"job_title" yaml:"job_title"`
	CompanyDate    RoleStyle `toml:"company_date_line" yaml:"company_date_line"`
	Bullet         RoleStyle `toml:"bullet" yaml:"bullet"`
	Heading        RoleStyle `toml:"heading" yaml:"heading"`
	Body           RoleStyle `toml:"body" yaml:"body"`
	SpacerSmall    RoleStyle `toml:"spacer_small" yaml:"spacer_small"`
	SpacerMedium   RoleStyle `toml:"spacer_medium" yaml:"spacer_medium"`

	// LineHeight multiplies FontSize to get the height of one text line.
	LineHeight  float64 `toml:"line_height" yaml:"line_height"`
	MarkerWidth float64 `toml:"marker_width" yaml:"marker_width"`
	RuleWidth   float64 `toml:"rule_width" yaml:"rule_width"`
	RuleGap     float64 `toml:"rule_gap" yaml:"rule_gap"`
}

// DefaultStyleSheet returns the built-in typography.
func DefaultStyleSheet() StyleSheet {
	return StyleSheet{
		Name:           RoleStyle{FontSize: 22, MarginAfter: 8, Align: AlignCenter, Bold: true, Uppercase: true},
		ContactInfo:    RoleStyle{FontSize: 10, MarginAfter: 2, Align: AlignCenter},
		HeaderJobTitle: RoleStyle{FontSize: 12, MarginAfter: 4, Align: AlignCenter, Bold: true},
		SectionHeader:  RoleStyle{FontSize: 11, MarginBefore: 8, MarginAfter: 4, Align: AlignLeft, Bold: true, Uppercase: true, Rule: true},
		SkillCategory:  RoleStyle{FontSize: 10.5, MarginBefore: 2, MarginAfter: 1, Align: AlignLeft, Bold: true},
		JobTitle:       RoleStyle{FontSize: 11, MarginBefore: 4, MarginAfter: 1, Align: AlignLeft, Bold: true},
		CompanyDate:    RoleStyle{FontSize: 10.5, MarginAfter: 3, Align: AlignLeft, Italic: true},
		Bullet:         RoleStyle{FontSize: 11, MarginAfter: 2, Align: AlignLeft, Indent: 6},
		Heading:        RoleStyle{FontSize: 11, MarginBefore: 4, MarginAfter: 2, Align: AlignLeft, Bold: true},
		Body:           RoleStyle{FontSize: 10.5, MarginAfter: 2, Align: AlignLeft},
		SpacerSmall:    RoleStyle{MarginAfter: 2},
		SpacerMedium:   RoleStyle{MarginAfter: 6},
		LineHeight:     1.2,
		MarkerWidth:    12,
		RuleWidth:      1,
		RuleGap:        2,
	}
}

// StyleFor returns the style of a role. Spacers without a gap get a zero style.
func (s StyleSheet) StyleFor(role LineRole) RoleStyle {
	switch role.Kind {
	case RoleSpacer:
		switch role.Spacer {
		case SpacerMedium:
			return s.SpacerMedium
		case SpacerSmall:
			return s.SpacerSmall
		default:
			return RoleStyle{}
		}
	case RoleName:
		return s.Name
	case RoleContactInfo:
		return s.ContactInfo
	case RoleHeaderJobTitle:
		return s.HeaderJobTitle
	case RoleSectionHeader:
		return s.SectionHeader
	case RoleSkillCategory:
		return s.SkillCategory
	case RoleJobTitle:
		return s.JobTitle
	case RoleCompanyDateLine:
		return s.CompanyDate
	case RoleBullet:
		return s.Bullet
	case RoleHeading:
		return s.Heading
	default:
		return s.Body
	}
}

// LineAdvance is the height of one rendered text line of style st.
func (s StyleSheet) LineAdvance(st RoleStyle) float64 {
	return st.FontSize * s.LineHeight
}

// BlockHeight estimates the vertical extent of a block rendered in style st
// over the given number of text lines.
func (s StyleSheet) BlockHeight(st RoleStyle, lines int) float64 {
	h := st.MarginBefore + st.MarginAfter
	if st.FontSize > 0 && lines > 0 {
		h += float64(lines) * s.LineAdvance(st)
	}
	if st.Rule {
		h += s.RuleGap + s.RuleWidth
	}
	return h
}

// Merge overlays the non-zero fields of o onto s. Boolean flags can only be
// switched on.
func (s StyleSheet) Merge(o StyleSheet) StyleSheet {
	mergeStyle(&s.Name, o.Name)
	mergeStyle(&s.ContactInfo, o.ContactInfo)
	mergeStyle(&s.HeaderJobTitle, o.HeaderJobTitle)
	mergeStyle(&s.SectionHeader, o.SectionHeader)
	mergeStyle(&s.SkillCategory, o.SkillCategory)
	mergeStyle(&s.JobTitle, o.JobTitle)
	mergeStyle(&s.CompanyDate, o.CompanyDate)
	mergeStyle(&s.Bullet, o.Bullet)
	mergeStyle(&s.Heading, o.Heading)
	mergeStyle(&s.Body, o.Body)
	mergeStyle(&s.SpacerSmall, o.SpacerSmall)
	mergeStyle(&s.SpacerMedium, o.SpacerMedium)
	if o.LineHeight > 0 {
		s.LineHeight = o.LineHeight
	}
	if o.MarkerWidth > 0 {
		s.MarkerWidth = o.MarkerWidth
	}
	if o.RuleWidth > 0 {
		s.RuleWidth = o.RuleWidth
	}
	if o.RuleGap > 0 {
		s.RuleGap = o.RuleGap
	}
	return s
}

func mergeStyle(dst *RoleStyle, src RoleStyle) {
	if src.FontSize > 0 {
		dst.FontSize = src.FontSize
	}
	if src.MarginBefore > 0 {
		dst.MarginBefore = src.MarginBefore
	}
	if src.MarginAfter > 0 {
		dst.MarginAfter = src.MarginAfter
	}
	if src.Indent > 0 {
		dst.Indent = src.Indent
	}
	if src.Align != "" {
		dst.Align = src.Align
	}
	if src.Color != "" {
		dst.Color = src.Color
	}
	dst.Bold = dst.Bold || src.Bold
	dst.Italic = dst.Italic || src.Italic
	dst.Uppercase = dst.Uppercase || src.Uppercase
	dst.Rule = dst.Rule || src.Rule
}
