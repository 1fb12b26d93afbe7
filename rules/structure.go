package rules

import (
	"fmt"

	"github.com/c360studio/speclint/block"
	"github.com/c360studio/speclint/section"
)

// Required section sets per document kind.
var (
	requirementsSections = []section.Type{
		section.Overview,
		section.Glossary,
		section.Scope,
		section.Constraints,
		section.NonFunctionalRequirements,
		section.KPI,
		section.FunctionalRequirements,
		section.TestingRequirements,
	}

	designSections = []section.Type{
		section.Architecture,
		section.ComponentDesign,
		section.Data,
		section.API,
		section.NonFunctional,
		section.Test,
		section.Traceability,
	}

	tasksSections = []section.Type{
		section.Overview,
		section.TaskList,
		section.Dependencies,
		section.Milestones,
	}
)

// structureRule checks that a document declares every required section type.
// Section names in messages are localized to the rule's document language.
type structureRule struct {
	id       string
	name     string
	desc     string
	required []section.Type
}

// NewRequirementsStructure checks the eight required requirements sections.
func NewRequirementsStructure() Rule {
	return &structureRule{
		id:       "STRUCT-REQ-001",
		name:     "Requirements Structure",
		desc:     "Validates that requirements documents contain all required sections",
		required: requirementsSections,
	}
}

// NewDesignStructure checks the seven required design sections.
func NewDesignStructure() Rule {
	return &structureRule{
		id:       "STRUCT-DESIGN-001",
		name:     "Design Structure",
		desc:     "Validates that design documents contain all required sections",
		required: designSections,
	}
}

// NewTasksStructure checks the four required tasks sections.
func NewTasksStructure() Rule {
	return &structureRule{
		id:       "STRUCT-TASKS-001",
		name:     "Tasks Structure",
		desc:     "Validates that tasks documents contain all required sections",
		required: tasksSections,
	}
}

func (r *structureRule) ID() string          { return r.id }
func (r *structureRule) Name() string        { return r.name }
func (r *structureRule) Description() string { return r.desc }

func (r *structureRule) Validate(doc *block.Document, ctx Context) Result {
	if doc == nil {
		return result(r, nil)
	}

	found := make(map[section.Type]bool)
	for _, b := range doc.BlocksByType(block.TypeSection) {
		found[b.(*block.Section).SectionType] = true
	}

	var errs []Error
	for _, required := range r.required {
		if found[required] {
			continue
		}
		name := section.DisplayName(required, ctx.Language)
		errs = append(errs, finding(r,
			fmt.Sprintf("Missing required section: %s", name),
			Location{LineStart: 1, LineEnd: 1}))
	}
	return result(r, errs)
}
