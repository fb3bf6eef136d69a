package resumefmt

import (
	"sort"
	"strings"
)

const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiDim       = "\x1b[2m"
	ansiItalic    = "\x1b[3m"
	ansiUnderline = "\x1b[4m"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the per-role styles used by the terminal preview.
type Styles struct {
	Name           Style
	ContactInfo    Style
	HeaderJobTitle Style
	SectionHeader  Style
	SkillCategory  Style
	JobTitle       Style
	CompanyDate    Style
	BulletMarker   Style
	Bullet         Style
	Heading        Style
	Body           Style
	Rule           Style
	Trailing       Style
}

// Theme provides named styles for the terminal preview.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func fg(code string) string {
	return "\x1b[38;5;" + code + "m"
}

type palette struct {
	accent  string
	title   string
	muted   string
	marker  string
	text    string
	rule    string
	trailer string
}

func stylesFromPalette(p palette) Styles {
	return Styles{
		Name:           style(ansiBold, fg(p.title)),
		ContactInfo:    style(fg(p.muted)),
		HeaderJobTitle: style(ansiBold, fg(p.accent)),
		SectionHeader:  style(ansiBold, ansiUnderline, fg(p.accent)),
		SkillCategory:  style(ansiBold, fg(p.text)),
		JobTitle:       style(ansiBold, fg(p.text)),
		CompanyDate:    style(ansiItalic, fg(p.muted)),
		BulletMarker:   style(fg(p.marker)),
		Bullet:         style(fg(p.text)),
		Heading:        style(ansiBold, fg(p.text)),
		Body:           style(fg(p.text)),
		Rule:           style(fg(p.rule)),
		Trailing:       style(ansiDim, fg(p.trailer)),
	}
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: stylesFromPalette(palette{
		accent: "75", title: "231", muted: "245", marker: "214", text: "252", rule: "240", trailer: "244",
	})},
	"paper": theme{name: "paper", styles: stylesFromPalette(palette{
		accent: "25", title: "16", muted: "241", marker: "130", text: "235", rule: "250", trailer: "243",
	})},
	"gruvbox": theme{name: "gruvbox", styles: stylesFromPalette(palette{
		accent: "108", title: "223", muted: "246", marker: "208", text: "187", rule: "239", trailer: "245",
	})},
	"boring": theme{name: "boring"},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

func (s Styles) forRole(kind RoleKind) Style {
	switch kind {
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
