package resumefmt

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	nameMaxIndex      = 3
	headerTitleMaxIdx = 5
	contactMaxIndex   = 8
	skillCategoryMax  = 60
	headingCapsMax    = 49
	headingMaxLen     = 50
	headingMinLen     = 3
	phoneMinDigits    = 10
	bulletMarkerRunes = "•▪▫‣⁃◦-*"
)

var sectionVocabulary = map[string]struct{}{
	"SUMMARY":        {},
	"SKILLS":         {},
	"EXPERIENCE":     {},
	"EDUCATION":      {},
	"OBJECTIVE":      {},
	"PROJECTS":       {},
	"CERTIFICATIONS": {},
	"AWARDS":         {},
	"PUBLICATIONS":   {},
	"LANGUAGES":      {},
	"INTERESTS":      {},
	"REFERENCES":     {},
}

var (
	nameTokenRe = regexp.MustCompile(`^[A-Za-z.'-]+$`)

	headerTitleRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(?:(?:Senior|Lead|Principal|Staff)\s+)?(?:Software|Full\s*Stack|Frontend|Backend|DevOps|Data|ML|AI)\s+(?:Engineer|Developer|Architect|Scientist)\b`),
		regexp.MustCompile(`(?i)^(?:(?:Senior|Lead)\s+)?(?:Product|Project|Program|Engineering)\s+Manager\b`),
		regexp.MustCompile(`(?i)^(?:(?:Senior|Lead)\s+)?(?:UX/UI|UI/UX|UX|UI)\s+(?:Designer|Engineer|Developer|Researcher)\b`),
		regexp.MustCompile(`(?i)^(?:Senior\s+)?(?:Database|DB)\s+(?:Administrator|Engineer|Developer|Architect)\b`),
	}

	phoneRunRe  = regexp.MustCompile(`\+?\(?\d[\d\s().-]{8,}\d`)
	profileRe   = regexp.MustCompile(`(?i)(?:linkedin|github)\.com`)
	cityStateRe = regexp.MustCompile(`\b[A-Z][A-Za-z.]*(?:\s[A-Z][A-Za-z.]*)*,\s*[A-Z]{2}\b`)
	zipRe       = regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`)

	skillCategoryRe = regexp.MustCompile(`^[A-Z][A-Za-z\s]+:\s*$`)
	jobTitleRe      = regexp.MustCompile(`^(?:Senior\s+)?(?:Full\s*Stack|Frontend|Back\s*end|Backend|Software|Application)\s+(?:Developer|Engineer)$`)
	companyDateRe   = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9&.,'()/ -]*?\s*(?:[•·]|\s[-–])\s*.*?(?:\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}|\b(?:19|20)\d{2}\b)`)
	capsHeadingRe   = regexp.MustCompile(`^[A-Z][A-Z\s]+[A-Z]$`)
)

type lineContext struct {
	text  string
	index int
	prev  string
	next  string
}

type rule struct {
	name  string
	match func(lineContext) (LineRole, bool)
}

// rules is evaluated top to bottom and the first match wins. Several
// patterns overlap, so the order is part of the contract.
var rules = []rule{
	{"blank", matchBlank},
	{"name", matchName},
	{"header_job_title", matchHeaderJobTitle},
	{"contact_info", matchContactInfo},
	{"section_header", matchSectionHeader},
	{"skill_category", matchSkillCategory},
	{"job_title", matchJobTitle},
	{"company_date_line", matchCompanyDateLine},
	{"bullet", matchBullet},
	{"heading", matchHeading},
}

// Rules returns the names of the classification rules in evaluation order.
// Lines matching none of them are body text.
func Rules() []string {
	names := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		names = append(names, r.name)
	}
	return append(names, RoleBody.String())
}

// Classify assigns a role to line given its zero-based index and the lines
// immediately before and after it (empty when absent). All three are
// normalized first, so callers may pass raw text.
func Classify(line string, index int, prev, next string) LineRole {
	return classify(lineContext{
		text:  NormalizeLine(line),
		index: index,
		prev:  NormalizeLine(prev),
		next:  NormalizeLine(next),
	})
}

// ClassifyLines classifies normalized lines in order.
func ClassifyLines(lines []RawLine) []ClassifiedLine {
	out := make([]ClassifiedLine, len(lines))
	for i, line := range lines {
		ctx := lineContext{text: line.Text, index: line.Index}
		if i > 0 {
			ctx.prev = lines[i-1].Text
		}
		if i+1 < len(lines) {
			ctx.next = lines[i+1].Text
		}
		out[i] = ClassifiedLine{RawLine: line, Role: classify(ctx)}
	}
	return out
}

func classify(ctx lineContext) LineRole {
	for _, r := range rules {
		if role, ok := r.match(ctx); ok {
			return role
		}
	}
	return LineRole{Kind: RoleBody}
}

func matchBlank(ctx lineContext) (LineRole, bool) {
	if ctx.text != "" {
		return LineRole{}, false
	}
	if ctx.prev == "" || ctx.next == "" {
		return spacerRole(SpacerNone), true
	}
	if isSectionHeader(ctx.next) || isJobTitle(ctx.next) {
		return spacerRole(SpacerMedium), true
	}
	return spacerRole(SpacerSmall), true
}

// matchName does not claim lines that read as a job title; "Senior Software
// Engineer" near the top is a title, not a person.
func matchName(ctx lineContext) (LineRole, bool) {
	if ctx.index > nameMaxIndex {
		return LineRole{}, false
	}
	tokens := strings.Fields(ctx.text)
	if len(tokens) < 2 || len(tokens) > 4 {
		return LineRole{}, false
	}
	for _, tok := range tokens {
		if !nameTokenRe.MatchString(tok) {
			return LineRole{}, false
		}
	}
	if isHeaderJobTitle(ctx.text) {
		return LineRole{}, false
	}
	return LineRole{Kind: RoleName}, true
}

func matchHeaderJobTitle(ctx lineContext) (LineRole, bool) {
	if ctx.index > headerTitleMaxIdx || !isHeaderJobTitle(ctx.text) {
		return LineRole{}, false
	}
	return LineRole{Kind: RoleHeaderJobTitle}, true
}

func matchContactInfo(ctx lineContext) (LineRole, bool) {
	if ctx.index > contactMaxIndex || !isContactInfo(ctx.text) {
		return LineRole{}, false
	}
	return LineRole{Kind: RoleContactInfo}, true
}

func matchSectionHeader(ctx lineContext) (LineRole, bool) {
	if !isSectionHeader(ctx.text) {
		return LineRole{}, false
	}
	return LineRole{Kind: RoleSectionHeader}, true
}

func matchSkillCategory(ctx lineContext) (LineRole, bool) {
	if utf8.RuneCountInString(ctx.text) >= skillCategoryMax || !skillCategoryRe.MatchString(ctx.text) {
		return LineRole{}, false
	}
	return LineRole{Kind: RoleSkillCategory}, true
}

func matchJobTitle(ctx lineContext) (LineRole, bool) {
	if !isJobTitle(ctx.text) {
		return LineRole{}, false
	}
	return LineRole{Kind: RoleJobTitle}, true
}

func matchCompanyDateLine(ctx lineContext) (LineRole, bool) {
	if !companyDateRe.MatchString(ctx.text) {
		return LineRole{}, false
	}
	return LineRole{Kind: RoleCompanyDateLine}, true
}

func matchBullet(ctx lineContext) (LineRole, bool) {
	marker, content, ok := SplitBullet(ctx.text)
	if !ok {
		return LineRole{}, false
	}
	return bulletRole(marker, content), true
}

func matchHeading(ctx lineContext) (LineRole, bool) {
	n := utf8.RuneCountInString(ctx.text)
	switch {
	case isAllCaps(ctx.text) && n >= headingMinLen && n < headingCapsMax:
	case n < headingMaxLen && capsHeadingRe.MatchString(ctx.text):
	case n < headingMaxLen && strings.HasSuffix(ctx.text, ":"):
	default:
		return LineRole{}, false
	}
	return LineRole{Kind: RoleHeading}, true
}

// SplitBullet separates a leading bullet glyph from the item text. The glyph
// must be followed by whitespace. A doubled marker ("• • item") collapses to
// one; a glyph attached to a word ("- -40%") is part of the content.
func SplitBullet(line string) (marker, content string, ok bool) {
	marker, rest, ok := cutMarker(line)
	if !ok {
		return "", "", false
	}
	content = strings.TrimSpace(rest)
	for {
		again, after, ok := cutMarker(content)
		if !ok || again != marker {
			break
		}
		content = strings.TrimSpace(after)
	}
	return marker, content, true
}

// cutMarker splits off a leading bullet glyph that is followed by whitespace.
func cutMarker(s string) (marker, rest string, ok bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || !strings.ContainsRune(bulletMarkerRunes, r) {
		return "", "", false
	}
	next, _ := utf8.DecodeRuneInString(s[size:])
	if !unicode.IsSpace(next) {
		return "", "", false
	}
	return s[:size], s[size:], true
}

func isHeaderJobTitle(line string) bool {
	for _, re := range headerTitleRes {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

func isContactInfo(line string) bool {
	if strings.Contains(line, "@") {
		return true
	}
	for _, run := range phoneRunRe.FindAllString(line, -1) {
		if countDigits(run) >= phoneMinDigits {
			return true
		}
	}
	return profileRe.MatchString(line) || cityStateRe.MatchString(line) || zipRe.MatchString(line)
}

func isSectionHeader(line string) bool {
	_, ok := sectionVocabulary[strings.ToUpper(line)]
	return ok
}

func isJobTitle(line string) bool {
	return jobTitleRe.MatchString(line)
}

func isAllCaps(line string) bool {
	hasLetter := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func countDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	return n
}
