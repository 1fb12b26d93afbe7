package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/speclint/block"
	"github.com/c360studio/speclint/section"
)

// maxDisplayRequirements caps the IDs listed in a coverage error message.
const maxDisplayRequirements = 5

// documentLocation is the whole-document location used when a finding has
// no single offending block.
func documentLocation() Location {
	return Location{LineStart: 1, LineEnd: 1}
}

// requirementCoverageRule validates 100% requirement coverage.
type requirementCoverageRule struct{}

// NewRequirementCoverage checks that every REQ-prefixed requirement
// declared in the context's requirements document is referenced by the
// validated document, via task req_refs or requirement blocks (a design
// traceability section parses as requirement items). Skips entirely when
// no requirements document is in context.
func NewRequirementCoverage() Rule { return requirementCoverageRule{} }

func (requirementCoverageRule) ID() string   { return "TRACE-REQ-001" }
func (requirementCoverageRule) Name() string { return "Requirement Coverage" }
func (requirementCoverageRule) Description() string {
	return "Validates that all requirements are referenced in design or tasks (100% coverage)"
}

func (r requirementCoverageRule) Validate(doc *block.Document, ctx Context) Result {
	if ctx.Requirements == nil {
		return result(r, nil)
	}

	declared := declaredReqIDs(ctx.Requirements)
	referenced := referencedReqIDs(doc)

	var missing []string
	for id := range declared {
		if !referenced[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return result(r, nil)
	}
	sort.Strings(missing)

	display := missing
	suffix := ""
	if len(missing) > maxDisplayRequirements {
		display = missing[:maxDisplayRequirements]
		suffix = "..."
	}
	msg := fmt.Sprintf("Requirements not referenced: %s%s", strings.Join(display, ", "), suffix)
	return result(r, []Error{finding(r, msg, documentLocation())})
}

// declaredReqIDs collects REQ-prefixed requirement IDs declared in a
// document. NFR, KPI, and TR items are not coverage targets.
func declaredReqIDs(doc *block.Document) map[string]bool {
	ids := make(map[string]bool)
	for _, b := range doc.BlocksByType(block.TypeRequirement) {
		if id := b.(*block.Requirement).ReqID; strings.HasPrefix(id, "REQ-") {
			ids[id] = true
		}
	}
	return ids
}

// referencedReqIDs collects requirement references made by a document,
// from task req_refs plus any requirement blocks it declares itself.
func referencedReqIDs(doc *block.Document) map[string]bool {
	ids := make(map[string]bool)
	for _, b := range doc.BlocksByType(block.TypeTask) {
		for _, ref := range b.(*block.Task).ReqRefs {
			ids[ref] = true
		}
	}
	for _, b := range doc.BlocksByType(block.TypeRequirement) {
		if id := b.(*block.Requirement).ReqID; strings.HasPrefix(id, "REQ-") {
			ids[id] = true
		}
	}
	return ids
}

// designReferencesRequirementsRule checks design → requirements links.
type designReferencesRequirementsRule struct{}

// NewDesignReferencesRequirements checks that a design document carries at
// least one REQ-prefixed requirement block, sourced from its traceability
// section.
func NewDesignReferencesRequirements() Rule { return designReferencesRequirementsRule{} }

func (designReferencesRequirementsRule) ID() string   { return "TRACE-DESIGN-001" }
func (designReferencesRequirementsRule) Name() string { return "Design References Requirements" }
func (designReferencesRequirementsRule) Description() string {
	return "Validates that design document contains REQ-ID references"
}

func (r designReferencesRequirementsRule) Validate(doc *block.Document, _ Context) Result {
	if len(declaredReqIDs(doc)) > 0 {
		return result(r, nil)
	}
	return result(r, []Error{finding(r,
		"No REQ-ID references found in design document",
		documentLocation())})
}

// tasksReferenceRequirementsRule checks tasks → requirements links.
type tasksReferenceRequirementsRule struct{}

// NewTasksReferenceRequirements fires when the context's requirements
// document declares REQ-prefixed requirements but no task carries a
// requirement reference. Skips when no requirements document is in
// context.
func NewTasksReferenceRequirements() Rule { return tasksReferenceRequirementsRule{} }

func (tasksReferenceRequirementsRule) ID() string   { return "TRACE-TASKS-001" }
func (tasksReferenceRequirementsRule) Name() string { return "Tasks Reference Requirements" }
func (tasksReferenceRequirementsRule) Description() string {
	return "Validates that tasks document references requirements when requirements exist"
}

func (r tasksReferenceRequirementsRule) Validate(doc *block.Document, ctx Context) Result {
	if ctx.Requirements == nil {
		return result(r, nil)
	}

	hasReqRefs := false
	for _, b := range doc.BlocksByType(block.TypeTask) {
		if len(b.(*block.Task).ReqRefs) > 0 {
			hasReqRefs = true
			break
		}
	}

	if len(declaredReqIDs(ctx.Requirements)) == 0 || hasReqRefs {
		return result(r, nil)
	}
	return result(r, []Error{finding(r,
		"Requirements not referenced - no REQ-ID references found in tasks document",
		documentLocation())})
}

// tasksReferenceDesignRule checks tasks → design links.
type tasksReferenceDesignRule struct{}

// NewTasksReferenceDesign fires when a design document is in context but
// no task carries a design component reference. Skips when no design
// document is in context.
func NewTasksReferenceDesign() Rule { return tasksReferenceDesignRule{} }

func (tasksReferenceDesignRule) ID() string   { return "TRACE-TASKS-002" }
func (tasksReferenceDesignRule) Name() string { return "Tasks Reference Design" }
func (tasksReferenceDesignRule) Description() string {
	return "Validates that tasks document references design components when design exists"
}

func (r tasksReferenceDesignRule) Validate(doc *block.Document, ctx Context) Result {
	if ctx.Design == nil {
		return result(r, nil)
	}

	for _, b := range doc.BlocksByType(block.TypeTask) {
		if len(b.(*block.Task).DesignRefs) > 0 {
			return result(r, nil)
		}
	}
	return result(r, []Error{finding(r,
		"Design components not referenced - no design references found in tasks document",
		documentLocation())})
}

// traceabilitySectionRule checks for the design traceability section.
type traceabilitySectionRule struct{}

// NewTraceabilitySection checks that a design document declares a
// traceability section.
func NewTraceabilitySection() Rule { return traceabilitySectionRule{} }

func (traceabilitySectionRule) ID() string   { return "TRACE-DESIGN-002" }
func (traceabilitySectionRule) Name() string { return "Traceability Section" }
func (traceabilitySectionRule) Description() string {
	return "Validates that design document has traceability section"
}

func (r traceabilitySectionRule) Validate(doc *block.Document, _ Context) Result {
	for _, b := range doc.BlocksByType(block.TypeSection) {
		if b.(*block.Section).SectionType == section.Traceability {
			return result(r, nil)
		}
	}
	return result(r, []Error{finding(r,
		"Missing required traceability section (トレーサビリティ or Traceability)",
		documentLocation())})
}
