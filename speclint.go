// Package speclint validates spec-driven development documents.
//
// A spec set is three markdown documents: requirements, design, and tasks.
// This package is the high-level entry point: it parses documents into
// block trees, runs the per-kind validation rule sets with cross-document
// context, and assembles the report shapes consumed by CLI and agent
// frontends. The subpackages expose each stage separately for callers that
// need finer control.
package speclint

import (
	"github.com/c360studio/speclint/block"
	"github.com/c360studio/speclint/config"
	"github.com/c360studio/speclint/ears"
	"github.com/c360studio/speclint/engine"
	"github.com/c360studio/speclint/language"
	"github.com/c360studio/speclint/parser"
	"github.com/c360studio/speclint/rules"
	"github.com/c360studio/speclint/stats"
	"github.com/c360studio/speclint/trace"
)

// Parse parses markdown into a document block tree.
func Parse(content string, lang language.Language) *block.Document {
	return parser.New(lang).Parse(content)
}

// DetectLanguage guesses a document's language from its headings.
func DetectLanguage(content string) language.Language {
	return language.Detect(content)
}

// RequirementsReport is the full validation report for a requirements
// document.
type RequirementsReport struct {
	IsValid       bool               `json:"isValid"`
	Issues        []string           `json:"issues"`
	Stats         stats.Requirements `json:"stats"`
	FoundSections []string           `json:"foundSections"`
	EARS          ears.Report        `json:"ears"`
}

// DesignReport is the full validation report for a design document.
type DesignReport struct {
	IsValid       bool         `json:"isValid"`
	Issues        []string     `json:"issues"`
	Stats         stats.Design `json:"stats"`
	FoundSections []string     `json:"foundSections"`
}

// TasksReport is the full validation report for a tasks document.
// Traceability and Coverage are populated only in dev mode.
type TasksReport struct {
	IsValid       bool            `json:"isValid"`
	Issues        []string        `json:"issues"`
	Stats         stats.Tasks     `json:"stats"`
	FoundSections []string        `json:"foundSections"`
	Traceability  *trace.Matrix   `json:"traceability,omitempty"`
	Coverage      *trace.Coverage `json:"coverage,omitempty"`
}

// Linter runs the full parse-and-validate pipeline for one language.
type Linter struct {
	language language.Language
	parser   *parser.Parser
	styles   []config.Style
	devMode  bool
}

// New creates a linter with default settings for the given language.
func New(lang language.Language) *Linter {
	return &Linter{
		language: lang,
		parser:   parser.New(lang),
	}
}

// NewFromConfig creates a linter from a validated configuration, carrying
// its custom styles and dev-mode flag.
func NewFromConfig(cfg *config.Config) (*Linter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := New(language.Language(cfg.Language))
	l.styles = cfg.Styles
	l.devMode = cfg.DevMode
	return l, nil
}

// ValidateRequirements parses and validates a requirements document.
func (l *Linter) ValidateRequirements(content string) (RequirementsReport, error) {
	doc := l.parser.Parse(content)

	e, err := l.newEngine()
	if err != nil {
		return RequirementsReport{}, err
	}
	issues := collectIssues(e.ValidateRequirements(doc))

	return RequirementsReport{
		IsValid:       len(issues) == 0,
		Issues:        issues,
		Stats:         stats.ForRequirements(doc),
		FoundSections: stats.FoundSections(doc),
		EARS:          ears.Analyze(doc),
	}, nil
}

// ValidateDesign parses and validates a design document. An empty
// requirementsContent means no requirements document is available; the
// cross-reference rules then degrade to no-ops.
func (l *Linter) ValidateDesign(content, requirementsContent string) (DesignReport, error) {
	doc := l.parser.Parse(content)

	e, err := l.newEngine()
	if err != nil {
		return DesignReport{}, err
	}
	if requirementsContent != "" {
		e.SetRequirementsDocument(l.parser.Parse(requirementsContent))
	}
	issues := collectIssues(e.ValidateDesign(doc))

	return DesignReport{
		IsValid:       len(issues) == 0,
		Issues:        issues,
		Stats:         stats.ForDesign(doc),
		FoundSections: stats.FoundSections(doc),
	}, nil
}

// ValidateTasks parses and validates a tasks document. Empty sibling
// contents mean those documents are unavailable.
func (l *Linter) ValidateTasks(content, requirementsContent, designContent string) (TasksReport, error) {
	doc := l.parser.Parse(content)

	e, err := l.newEngine()
	if err != nil {
		return TasksReport{}, err
	}
	var reqDoc, designDoc *block.Document
	if requirementsContent != "" {
		reqDoc = l.parser.Parse(requirementsContent)
		e.SetRequirementsDocument(reqDoc)
	}
	if designContent != "" {
		designDoc = l.parser.Parse(designContent)
		e.SetDesignDocument(designDoc)
	}

	results := e.ValidateTasks(doc)
	issues := collectIssues(results)

	taskStats := stats.ForTasks(doc)
	missing := stats.MissingFromResults(results)
	taskStats.MissingRequirementReferences = missing.Requirements
	taskStats.MissingTRReferences = missing.TestRequirements
	taskStats.MissingDesignReferences = missing.Design

	report := TasksReport{
		IsValid:       len(issues) == 0,
		Issues:        issues,
		Stats:         taskStats,
		FoundSections: stats.FoundSections(doc),
	}

	if l.devMode {
		matrix := trace.Build(reqDoc, designDoc, doc)
		coverage := matrix.Coverage()
		report.Traceability = &matrix
		report.Coverage = &coverage
	}

	return report, nil
}

// ValidateWithStyle parses a document and validates it against a named
// style, built-in or from the linter's configuration.
func (l *Linter) ValidateWithStyle(content, styleName string) (engine.Summary, error) {
	doc := l.parser.Parse(content)

	e, err := l.newEngine()
	if err != nil {
		return engine.Summary{}, err
	}
	results, err := e.ValidateWithStyle(doc, styleName)
	if err != nil {
		return engine.Summary{}, err
	}
	return engine.Summarize(results), nil
}

func (l *Linter) newEngine() (*engine.Engine, error) {
	e := engine.New(l.language)
	for _, s := range l.styles {
		style, err := config.BuildStyle(s)
		if err != nil {
			return nil, err
		}
		e.RegisterStyle(s.Name, style)
	}
	return e, nil
}

// collectIssues flattens failed results into the legacy issue list.
func collectIssues(results []rules.Result) []string {
	issues := []string{}
	for _, result := range results {
		if result.IsValid {
			continue
		}
		for _, err := range result.Errors {
			issues = append(issues, err.Message)
		}
	}
	return issues
}
