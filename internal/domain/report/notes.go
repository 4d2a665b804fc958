package report

import (
	"fmt"
	"strings"
)

const (
	maxNoteTitleLen   = 200
	maxNoteContentLen = 10000
)

// NotesValidator checks the Catatan Atas Laporan Keuangan. Notes are
// narrative, so validation is structural only.
type NotesValidator struct{}

// ReportType returns the report type this validator handles
func (v *NotesValidator) ReportType() ReportType {
	return ReportTypeNotesToFinancial
}

// Validate runs the notes rule set
func (v *NotesValidator) Validate(input *ReportInput, baseline *ReportInput) Violations {
	sections := input.Lines.NoteSections
	var violations Violations

	if len(sections) == 0 {
		violations = append(violations, NewViolation("lines", "WRONG_LINE_KIND",
			"Notes report requires at least one section"))
		return violations
	}

	for i, section := range sections {
		field := func(f string) string { return fmt.Sprintf("lines[%d].%s", i, f) }

		violations = append(violations, requireText(field("title"), section.Title, maxNoteTitleLen)...)

		if strings.TrimSpace(section.Content) == "" {
			violations = append(violations, NewViolation(field("content"), "REQUIRED",
				"Section content is required"))
		} else if len(section.Content) > maxNoteContentLen {
			violations = append(violations, NewViolation(field("content"), "TOO_LONG",
				fmt.Sprintf("Section content exceeds %d characters", maxNoteContentLen)))
		}
	}

	return violations
}
