// Package engine runs validation rule sets over parsed spec documents.
package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/c360studio/speclint/block"
	"github.com/c360studio/speclint/language"
	"github.com/c360studio/speclint/rules"
)

// Engine validates documents against named styles. Each engine owns its own
// cross-reference context; engines are cheap and not safe for concurrent
// mutation, so use one per pipeline.
type Engine struct {
	language language.Language
	ctx      rules.Context
	styles   map[string]DocumentStyle
}

// New creates an engine with the three built-in document styles registered
// under "requirements", "design", and "tasks".
func New(lang language.Language) *Engine {
	e := &Engine{
		language: lang,
		ctx:      rules.Context{Language: lang},
		styles:   make(map[string]DocumentStyle),
	}
	e.RegisterStyle("requirements", RequirementsStyle())
	e.RegisterStyle("design", DesignStyle())
	e.RegisterStyle("tasks", TasksStyle())
	return e
}

// RegisterStyle registers a style under a name, replacing any previous
// registration. Names are case-insensitive.
func (e *Engine) RegisterStyle(name string, style DocumentStyle) {
	e.styles[strings.ToLower(name)] = style
}

// SetRequirementsDocument sets the requirements tree for cross-reference
// validation of sibling documents.
func (e *Engine) SetRequirementsDocument(doc *block.Document) {
	e.ctx.Requirements = doc
}

// SetDesignDocument sets the design tree for cross-reference validation.
func (e *Engine) SetDesignDocument(doc *block.Document) {
	e.ctx.Design = doc
}

// SetTasksDocument sets the tasks tree for cross-reference validation.
func (e *Engine) SetTasksDocument(doc *block.Document) {
	e.ctx.Tasks = doc
}

// ValidateRequirements runs the requirements style against a document.
func (e *Engine) ValidateRequirements(doc *block.Document) []rules.Result {
	return e.ValidateDocument(doc, e.styles["requirements"])
}

// ValidateDesign runs the design style against a document.
func (e *Engine) ValidateDesign(doc *block.Document) []rules.Result {
	return e.ValidateDocument(doc, e.styles["design"])
}

// ValidateTasks runs the tasks style against a document.
func (e *Engine) ValidateTasks(doc *block.Document) []rules.Result {
	return e.ValidateDocument(doc, e.styles["tasks"])
}

// ValidateWithStyle runs a registered style by name. An unregistered name
// is the one integration misuse this package reports as a Go error; bad
// documents never are.
func (e *Engine) ValidateWithStyle(doc *block.Document, styleName string) ([]rules.Result, error) {
	style, ok := e.styles[strings.ToLower(styleName)]
	if !ok {
		return nil, fmt.Errorf("unknown document style: %s", styleName)
	}
	return e.ValidateDocument(doc, style), nil
}

// ValidateDocument runs a style's rules in declaration order. Result order
// follows rule order, not severity; callers needing prioritization sort
// downstream.
func (e *Engine) ValidateDocument(doc *block.Document, style DocumentStyle) []rules.Result {
	results := make([]rules.Result, 0, len(style.Rules))
	for _, rule := range style.Rules {
		results = append(results, rule.Validate(doc, e.ctx))
	}
	return results
}

// Summary aggregates a validation run for reporting.
type Summary struct {
	RunID       string
	IsValid     bool
	TotalRules  int
	PassedRules int
	FailedRules int
	TotalErrors int
	Errors      []string
	Results     []rules.Result
}

// Summarize rolls a result list up into a Summary with a fresh run ID.
func Summarize(results []rules.Result) Summary {
	s := Summary{
		RunID:      uuid.NewString(),
		TotalRules: len(results),
		Results:    results,
	}
	for _, r := range results {
		if r.IsValid {
			s.PassedRules++
			continue
		}
		s.FailedRules++
		s.TotalErrors += len(r.Errors)
		for _, err := range r.Errors {
			s.Errors = append(s.Errors, err.Message)
		}
	}
	s.IsValid = s.FailedRules == 0
	return s
}
