package config

import (
	"fmt"

	"github.com/c360studio/speclint/engine"
	"github.com/c360studio/speclint/rules"
	"github.com/c360studio/speclint/section"
)

// ruleFactories maps config rule names to constructors. Names are the
// stable configuration vocabulary; rule IDs stay internal to findings.
var ruleFactories = map[string]func() rules.Rule{
	"requirements-structure":         rules.NewRequirementsStructure,
	"design-structure":               rules.NewDesignStructure,
	"tasks-structure":                rules.NewTasksStructure,
	"requirement-id-format":          rules.NewRequirementIDFormat,
	"task-id-format":                 rules.NewTaskIDFormat,
	"duplicate-requirement-id":       rules.NewDuplicateRequirementID,
	"duplicate-task-id":              rules.NewDuplicateTaskID,
	"circular-dependency":            rules.NewCircularDependency,
	"requirement-coverage":           rules.NewRequirementCoverage,
	"design-references-requirements": rules.NewDesignReferencesRequirements,
	"tasks-reference-requirements":   rules.NewTasksReferenceRequirements,
	"tasks-reference-design":         rules.NewTasksReferenceDesign,
	"traceability-section":           rules.NewTraceabilitySection,
	"test-scenario-coverage":         rules.NewTestScenarioCoverage,
	"design-component-coverage":      rules.NewDesignComponentCoverage,
}

// RuleNames returns the registered rule names, for error messages and
// documentation.
func RuleNames() []string {
	names := make([]string, 0, len(ruleFactories))
	for name := range ruleFactories {
		names = append(names, name)
	}
	return names
}

func knownSection(name string) bool {
	t := section.Type(name)
	if t == section.Unknown {
		return false
	}
	_, ok := section.PatternFor(t)
	return ok
}

// BuildStyle converts a config style declaration into an engine style.
func BuildStyle(s Style) (engine.DocumentStyle, error) {
	style := engine.DocumentStyle{
		Name:        s.Name,
		Description: s.Description,
	}

	for _, name := range s.Sections {
		if !knownSection(name) {
			return engine.DocumentStyle{}, fmt.Errorf("style %s: unknown section type: %s", s.Name, name)
		}
		style.RequiredSections = append(style.RequiredSections, section.Type(name))
	}

	for _, name := range s.Rules {
		factory, ok := ruleFactories[name]
		if !ok {
			return engine.DocumentStyle{}, fmt.Errorf("style %s: unknown rule: %s", s.Name, name)
		}
		style.Rules = append(style.Rules, factory())
	}

	return style, nil
}

// RegisterStyles builds and registers every custom style from the config
// on an engine.
func RegisterStyles(e *engine.Engine, cfg *Config) error {
	for _, s := range cfg.Styles {
		style, err := BuildStyle(s)
		if err != nil {
			return err
		}
		e.RegisterStyle(s.Name, style)
	}
	return nil
}
