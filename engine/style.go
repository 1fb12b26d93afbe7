package engine

import (
	"github.com/c360studio/speclint/rules"
	"github.com/c360studio/speclint/section"
)

// DocumentStyle bundles the required structure and validation rules for a
// document kind. Styles are registered by name on an Engine; the three
// built-in kinds are always present, and callers add custom styles via
// RegisterStyle.
type DocumentStyle struct {
	Name             string
	Description      string
	RequiredSections []section.Type
	OptionalSections []section.Type
	Rules            []rules.Rule
}

// RequirementsStyle is the standard requirements document style.
func RequirementsStyle() DocumentStyle {
	return DocumentStyle{
		Name:        "Requirements Document",
		Description: "Standard requirements specification document with EARS patterns",
		RequiredSections: []section.Type{
			section.Overview,
			section.Glossary,
			section.Scope,
			section.Constraints,
			section.NonFunctionalRequirements,
			section.KPI,
			section.FunctionalRequirements,
			section.TestingRequirements,
		},
		OptionalSections: []section.Type{section.References, section.Appendix},
		Rules: []rules.Rule{
			rules.NewRequirementsStructure(),
			rules.NewRequirementIDFormat(),
			rules.NewDuplicateRequirementID(),
		},
	}
}

// DesignStyle is the standard design document style.
func DesignStyle() DocumentStyle {
	return DocumentStyle{
		Name:        "Design Document",
		Description: "Standard design specification document with traceability",
		RequiredSections: []section.Type{
			section.Architecture,
			section.ComponentDesign,
			section.Data,
			section.API,
			section.NonFunctional,
			section.Test,
			section.Traceability,
		},
		OptionalSections: []section.Type{section.References, section.Appendix},
		Rules: []rules.Rule{
			rules.NewDesignStructure(),
			rules.NewTraceabilitySection(),
			rules.NewDesignReferencesRequirements(),
			rules.NewRequirementCoverage(),
		},
	}
}

// TasksStyle is the standard task breakdown document style.
func TasksStyle() DocumentStyle {
	return DocumentStyle{
		Name:        "Tasks Document",
		Description: "Standard task breakdown document with dependencies",
		RequiredSections: []section.Type{
			section.Overview,
			section.TaskList,
			section.Dependencies,
			section.Milestones,
		},
		OptionalSections: []section.Type{section.References, section.Appendix},
		Rules: []rules.Rule{
			rules.NewTasksStructure(),
			rules.NewTaskIDFormat(),
			rules.NewDuplicateTaskID(),
			rules.NewCircularDependency(),
			rules.NewTasksReferenceRequirements(),
			rules.NewTasksReferenceDesign(),
			rules.NewRequirementCoverage(),
			rules.NewTestScenarioCoverage(),
			rules.NewDesignComponentCoverage(),
		},
	}
}
