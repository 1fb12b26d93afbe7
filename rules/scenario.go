package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/c360studio/speclint/block"
	"github.com/c360studio/speclint/ident"
)

// maxDisplayComponents caps the names listed in a component coverage error.
const maxDisplayComponents = 10

var (
	scenarioTokenPattern = regexp.MustCompile(`\btest-[a-z0-9]+(?:-[a-z0-9]+)*\b`)

	// Component names are kebab-case tokens, declared either bold or as a
	// leading "name:" label in a design list item.
	boldComponentPattern    = regexp.MustCompile(`\*\*([a-z0-9]+(?:-[a-z0-9]+)+)\*\*`)
	leadingComponentPattern = regexp.MustCompile(`^([a-z0-9]+(?:-[a-z0-9]+)+):`)
)

// testScenarioCoverageRule validates design test scenario coverage.
type testScenarioCoverageRule struct{}

// NewTestScenarioCoverage checks that every test scenario named in the
// context design document's list items (DC-NN tokens and test-xxx kebab
// tokens) is referenced by the tasks document, through design refs or a
// raw-content mention. Skips when no design document is in context.
func NewTestScenarioCoverage() Rule { return testScenarioCoverageRule{} }

func (testScenarioCoverageRule) ID() string   { return "TRACE-TASKS-003" }
func (testScenarioCoverageRule) Name() string { return "Test Scenario Coverage" }
func (testScenarioCoverageRule) Description() string {
	return "Validates that all test scenarios from design document are referenced in tasks"
}

func (r testScenarioCoverageRule) Validate(doc *block.Document, ctx Context) Result {
	if ctx.Design == nil {
		return result(r, nil)
	}

	scenarios := make(map[string]bool)
	for _, b := range ctx.Design.BlocksByType(block.TypeListItem) {
		content := b.(*block.ListItem).Content
		if content == "" {
			continue
		}
		for _, ref := range ident.AllDCRefs(content) {
			scenarios[ref] = true
		}
		for _, token := range scenarioTokenPattern.FindAllString(content, -1) {
			scenarios[token] = true
		}
	}

	referenced := referencedDesignComponents(doc)

	var missing []string
	for scenario := range scenarios {
		if !referenced[scenario] {
			missing = append(missing, scenario)
		}
	}
	sort.Strings(missing)

	var errs []Error
	for _, scenario := range missing {
		errs = append(errs, finding(r,
			fmt.Sprintf("Test scenario not referenced in tasks: %s", scenario),
			documentLocation()))
	}
	return result(r, errs)
}

// referencedDesignComponents collects design references from a tasks
// document: formal design refs plus test-xxx tokens mentioned anywhere in
// task raw content.
func referencedDesignComponents(doc *block.Document) map[string]bool {
	referenced := make(map[string]bool)
	for _, b := range doc.BlocksByType(block.TypeTask) {
		task := b.(*block.Task)
		for _, ref := range task.DesignRefs {
			referenced[ref] = true
		}
		for _, token := range scenarioTokenPattern.FindAllString(task.Raw(), -1) {
			referenced[token] = true
		}
	}
	return referenced
}

// designComponentCoverageRule validates design component coverage.
type designComponentCoverageRule struct{}

// NewDesignComponentCoverage checks that every kebab-case component named
// in the context design document's list items (bold or leading-label form,
// test scenarios excluded) is referenced by the tasks document, formally
// or by raw mention. Skips when no design document is in context.
func NewDesignComponentCoverage() Rule { return designComponentCoverageRule{} }

func (designComponentCoverageRule) ID() string   { return "TRACE-TASKS-004" }
func (designComponentCoverageRule) Name() string { return "Design Component Coverage" }
func (designComponentCoverageRule) Description() string {
	return "Validates that all design components are referenced in tasks"
}

func (r designComponentCoverageRule) Validate(doc *block.Document, ctx Context) Result {
	if ctx.Design == nil {
		return result(r, nil)
	}

	components := make(map[string]bool)
	for _, b := range ctx.Design.BlocksByType(block.TypeListItem) {
		content := b.(*block.ListItem).Content
		for _, m := range boldComponentPattern.FindAllStringSubmatch(content, -1) {
			components[m[1]] = true
		}
		if m := leadingComponentPattern.FindStringSubmatch(content); m != nil {
			components[m[1]] = true
		}
	}

	formal := make(map[string]bool)
	var taskContents []string
	for _, b := range doc.BlocksByType(block.TypeTask) {
		task := b.(*block.Task)
		for _, ref := range task.DesignRefs {
			if !strings.HasPrefix(ref, "test-") {
				formal[ref] = true
			}
		}
		taskContents = append(taskContents, task.Raw())
	}

	var missing []string
	for component := range components {
		if strings.HasPrefix(component, "test-") || formal[component] {
			continue
		}
		if mentioned(taskContents, component) {
			continue
		}
		missing = append(missing, component)
	}
	if len(missing) == 0 {
		return result(r, nil)
	}
	sort.Strings(missing)

	display := missing
	suffix := ""
	if len(missing) > maxDisplayComponents {
		display = missing[:maxDisplayComponents]
		suffix = "..."
	}
	msg := fmt.Sprintf("Design components not referenced in tasks: %s%s",
		strings.Join(display, ", "), suffix)
	return result(r, []Error{finding(r, msg, documentLocation())})
}

func mentioned(contents []string, component string) bool {
	for _, content := range contents {
		if strings.Contains(content, component) {
			return true
		}
	}
	return false
}
