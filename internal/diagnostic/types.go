package diagnostic

import (
	"fmt"
	"strings"

	"food-shopping-list/internal/common"
)

// Diagnostics holds every diagnostic produced while checking a document.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code identifies the kind of violation.
	Code Code
	// Message is the human-readable description, quoting the offending key.
	Message string
	// File is the document the diagnostic relates to (if known).
	File string
	// Path locates the offending value, e.g. "risotto.rice" (if any).
	Path string
	// Line and Column locate the offending value in File (0 when unknown).
	Line   int
	Column int
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota + 1
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Add records d as an error or a warning depending on its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	if diag.Severity == SeverityWarning {
		d.Warnings = append(d.Warnings, diag)
		return
	}

	diag.Severity = SeverityError
	d.Errors = append(d.Errors, diag)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return !common.IsEmpty(d.Errors)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return common.IsEmpty(d.Errors)
}

// SetFile attributes every diagnostic to file.
func (d *Diagnostics) SetFile(file string) {
	for i := range d.Errors {
		d.Errors[i].File = file
	}

	for i := range d.Warnings {
		d.Warnings[i].File = file
	}
}

// First returns the first error as a *FormatError, or nil if valid.
func (d *Diagnostics) First() *FormatError {
	if first, ok := common.First(d.Errors); ok {
		return &FormatError{Diagnostic: first}
	}

	return nil
}

// String returns a formatted diagnostic string, such as
//
//	meals.yaml:4:5: risotto.rice: [missing_unit] ingredient 'rice' ... (did you mean 'unit'?)
func (d Diagnostic) String() string {
	var prefix []string

	if d.File != "" {
		loc := d.File
		if d.Line > 0 {
			loc = fmt.Sprintf("%s:%d:%d", d.File, d.Line, d.Column)
		}

		prefix = append(prefix, loc+":")
	}

	if d.Path != "" {
		prefix = append(prefix, d.Path+":")
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + quoteList(d.Suggestions, " or ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + " " + msg
	}

	return msg
}

// quoteList renders items as 'a', 'b' with the given separator.
func quoteList(items []string, sep string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}

	return strings.Join(quoted, sep)
}
