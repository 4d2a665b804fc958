package report

import "fmt"

// Severity classifies how a violation affects persistence.
// Blocking violations prevent a report from being saved; warnings are
// returned to the caller but do not block.
type Severity string

const (
	SeverityBlocking Severity = "blocking"
	SeverityWarning  Severity = "warning"
)

// Violation is a single field-scoped consistency rule failure
type Violation struct {
	Field    string   `json:"field"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// NewViolation creates a blocking violation
func NewViolation(field, code, message string) Violation {
	return Violation{Field: field, Code: code, Message: message, Severity: SeverityBlocking}
}

// NewWarning creates a non-blocking warning violation
func NewWarning(field, code, message string) Violation {
	return Violation{Field: field, Code: code, Message: message, Severity: SeverityWarning}
}

// String returns a human-readable representation of the violation
func (v Violation) String() string {
	return fmt.Sprintf("%s: %s (%s)", v.Field, v.Message, v.Code)
}

// Violations accumulates every rule failure found during one validation pass
type Violations []Violation

// HasBlocking returns true if any violation prevents persistence
func (vs Violations) HasBlocking() bool {
	for _, v := range vs {
		if v.Severity == SeverityBlocking {
			return true
		}
	}
	return false
}

// Blocking returns only the blocking violations
func (vs Violations) Blocking() Violations {
	var out Violations
	for _, v := range vs {
		if v.Severity == SeverityBlocking {
			out = append(out, v)
		}
	}
	return out
}

// Warnings returns only the warning violations
func (vs Violations) Warnings() Violations {
	var out Violations
	for _, v := range vs {
		if v.Severity == SeverityWarning {
			out = append(out, v)
		}
	}
	return out
}

// FieldViolations returns the violations scoped to the given field path
func (vs Violations) FieldViolations(field string) Violations {
	var out Violations
	for _, v := range vs {
		if v.Field == field {
			out = append(out, v)
		}
	}
	return out
}
