// Package rules implements the validation rules for spec documents.
//
// Each rule inspects one or more parsed block trees and reports findings as
// data. Rules never fail at the Go level: a document in bad shape produces a
// Result with IsValid=false and located errors, not an error return.
package rules

import (
	"github.com/c360studio/speclint/block"
	"github.com/c360studio/speclint/language"
)

// Severity grades a validation finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Location pins a finding to its place in the source document.
// Line numbers are best-effort (see parser); SectionPath is the chain of
// block labels from the document root down to the offending block.
type Location struct {
	LineStart   int
	LineEnd     int
	SectionPath []string
}

// LocationFrom derives a Location from the block a finding concerns.
func LocationFrom(b block.Block) Location {
	start, end := b.Span()
	return Location{
		LineStart:   start,
		LineEnd:     end,
		SectionPath: block.ContextPath(b),
	}
}

// Error is a single located validation finding.
type Error struct {
	RuleID   string
	Severity Severity
	Message  string
	Location Location
}

// Result is the outcome of running one rule against a document context.
type Result struct {
	RuleID   string
	RuleName string
	IsValid  bool
	Errors   []Error
}

// Context carries the documents a rule may inspect. Cross-document rules
// tolerate missing siblings: a nil document means "not provided", and rules
// degrade per their own semantics rather than erroring.
type Context struct {
	Language     language.Language
	Requirements *block.Document
	Design       *block.Document
	Tasks        *block.Document
}

// Rule validates one aspect of a document.
type Rule interface {
	// ID is the stable machine identifier, e.g. "FORMAT-REQ-001".
	ID() string
	// Name is the short human-readable rule name.
	Name() string
	// Description explains what the rule checks.
	Description() string
	// Validate runs the rule against a document. Cross-document rules read
	// sibling trees from ctx and never panic when one is missing.
	Validate(doc *block.Document, ctx Context) Result
}

// result assembles a Result for a rule from its collected findings.
func result(r Rule, errs []Error) Result {
	return Result{
		RuleID:   r.ID(),
		RuleName: r.Name(),
		IsValid:  len(errs) == 0,
		Errors:   errs,
	}
}

// finding builds an Error carrying the rule's ID and error severity.
func finding(r Rule, msg string, loc Location) Error {
	return Error{
		RuleID:   r.ID(),
		Severity: SeverityError,
		Message:  msg,
		Location: loc,
	}
}
