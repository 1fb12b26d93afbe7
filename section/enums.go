package section

// Type is the normalized semantic role of a document section.
type Type string

// Requirements document sections.
const (
	// Overview is the document summary section.
	Overview Type = "overview"

	// Glossary is the terminology section.
	Glossary Type = "glossary"

	// Scope defines what the system covers.
	Scope Type = "scope"

	// Constraints lists restrictions on the solution.
	Constraints Type = "constraints"

	// NonFunctionalRequirements holds NFR items.
	NonFunctionalRequirements Type = "non_functional_requirements"

	// KPI holds key performance indicator items.
	KPI Type = "kpi"

	// FunctionalRequirements holds REQ items.
	FunctionalRequirements Type = "functional_requirements"

	// TestingRequirements holds TR items.
	TestingRequirements Type = "testing_requirements"
)

// Design document sections.
const (
	// Architecture is the system architecture section.
	Architecture Type = "architecture"

	// ComponentDesign is the detailed component design section.
	ComponentDesign Type = "component_design"

	// Data is the data model section.
	Data Type = "data"

	// API is the interface design section.
	API Type = "api"

	// NonFunctional is the design-side non-functional section.
	NonFunctional Type = "non_functional"

	// Test is the test strategy section.
	Test Type = "test"

	// Traceability is the requirements traceability section.
	Traceability Type = "traceability"
)

// Tasks document sections.
const (
	// TaskList holds TASK items.
	TaskList Type = "task_list"

	// Dependencies describes inter-task ordering.
	Dependencies Type = "dependencies"

	// Milestones lists delivery milestones.
	Milestones Type = "milestones"
)

// Common sections.
const (
	// References is the external references section.
	References Type = "references"

	// Appendix is supplementary material.
	Appendix Type = "appendix"

	// Unknown is returned when no pattern matches a heading title.
	Unknown Type = "unknown"
)
