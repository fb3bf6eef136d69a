package resumefmt

import "strings"

// Section tags a ContentBlock as resume content or appended job description.
type Section uint8

const (
	SectionResume Section = iota
	SectionTrailing
)

func (s Section) String() string {
	if s == SectionTrailing {
		return "trailing"
	}
	return "resume"
}

// ContentBlock is an ordered run of classified lines from one section.
type ContentBlock struct {
	Section Section
	Lines   []ClassifiedLine
}

// triggerKeywords mark the start of an appended job description. Matching is
// a case-insensitive substring test.
var triggerKeywords = []string{
	"job description",
	"position:",
	"role:",
	"company:",
	"key responsibilities",
	"requirements:",
	"qualifications:",
	"about the role",
}

// TriggerKeywords returns a copy of the job description trigger phrases.
func TriggerKeywords() []string {
	return append([]string(nil), triggerKeywords...)
}

// IsTrigger reports whether line contains a job description trigger phrase.
func IsTrigger(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range triggerKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Split routes lines to the resume until the first trigger line; that line
// and everything after it go to the trailing block.
func Split(lines []ClassifiedLine) (resume, trailing ContentBlock) {
	resume.Section = SectionResume
	trailing.Section = SectionTrailing
	cut := len(lines)
	for i, line := range lines {
		if IsTrigger(line.Text) {
			cut = i
			break
		}
	}
	if cut > 0 {
		resume.Lines = lines[:cut]
	}
	if cut < len(lines) {
		trailing.Lines = lines[cut:]
	}
	return resume, trailing
}

// Document is the classified and split form of one input text.
type Document struct {
	Lines    []ClassifiedLine
	Resume   ContentBlock
	Trailing ContentBlock
}

// Prepare normalizes, classifies and splits text.
func Prepare(text string) Document {
	lines := ClassifyLines(SplitLines(text))
	resume, trailing := Split(lines)
	return Document{Lines: lines, Resume: resume, Trailing: trailing}
}
