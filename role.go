package resumefmt

import "fmt"

// RoleKind identifies the semantic category of a line.
type RoleKind uint8

const (
	RoleBody RoleKind = iota
	RoleSpacer
	RoleName
	RoleContactInfo
	RoleHeaderJobTitle
	RoleSectionHeader
	RoleSkillCategory
	RoleJobTitle
	RoleCompanyDateLine
	RoleBullet
	RoleHeading
)

var roleNames = [...]string{
	RoleBody:            "body",
	RoleSpacer:          "spacer",
	RoleName:            "name",
	RoleContactInfo:     "contact_info",
	RoleHeaderJobTitle:  "header_job_title",
	RoleSectionHeader:   "section_header",
	RoleSkillCategory:   "skill_category",
	RoleJobTitle:        "job_title",
	RoleCompanyDateLine: "company_date_line",
	RoleBullet:          "bullet",
	RoleHeading:         "heading",
}

func (k RoleKind) String() string {
	if int(k) < len(roleNames) {
		return roleNames[k]
	}
	return fmt.Sprintf("role(%d)", uint8(k))
}

// RoleKinds returns every role in declaration order.
func RoleKinds() []RoleKind {
	kinds := make([]RoleKind, len(roleNames))
	for i := range roleNames {
		kinds[i] = RoleKind(i)
	}
	return kinds
}

// ParseRoleKind resolves a role name as printed by RoleKind.String.
func ParseRoleKind(name string) (RoleKind, bool) {
	for i, n := range roleNames {
		if n == name {
			return RoleKind(i), true
		}
	}
	return RoleBody, false
}

// SpacerSize is the vertical gap a blank line turns into.
type SpacerSize uint8

const (
	SpacerNone SpacerSize = iota
	SpacerSmall
	SpacerMedium
)

func (s SpacerSize) String() string {
	switch s {
	case SpacerSmall:
		return "small"
	case SpacerMedium:
		return "medium"
	default:
		return "none"
	}
}

// LineRole is the classification result for one line. Spacer is only
// meaningful for RoleSpacer; Marker and Content only for RoleBullet.
type LineRole struct {
	Kind    RoleKind
	Spacer  SpacerSize
	Marker  string
	Content string
}

func (r LineRole) String() string {
	switch r.Kind {
	case RoleSpacer:
		return "spacer(" + r.Spacer.String() + ")"
	case RoleBullet:
		return "bullet(" + r.Marker + ")"
	default:
		return r.Kind.String()
	}
}

func spacerRole(size SpacerSize) LineRole {
	return LineRole{Kind: RoleSpacer, Spacer: size}
}

func bulletRole(marker, content string) LineRole {
	return LineRole{Kind: RoleBullet, Marker: marker, Content: content}
}

// ClassifiedLine pairs a RawLine with its role.
type ClassifiedLine struct {
	RawLine
	Role LineRole
}

// Stats counts lines per role name.
func Stats(lines []ClassifiedLine) map[string]int {
	counts := make(map[string]int, len(roleNames))
	for _, line := range lines {
		counts[line.Role.Kind.String()]++
	}
	return counts
}
