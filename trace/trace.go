// Package trace builds traceability matrices across spec document trees.
//
// Where the validation rules answer "is anything missing", the matrix
// answers "what links to what": per-requirement referencing tasks,
// per-component referencing tasks, and the dependency graph, with the
// unreferenced and dangling sets precomputed for report rendering.
package trace

import (
	"regexp"
	"sort"
	"strings"

	"github.com/c360studio/speclint/block"
)

var (
	boldComponentPattern    = regexp.MustCompile(`\*\*([a-z0-9]+(?:-[a-z0-9]+)+)\*\*`)
	leadingComponentPattern = regexp.MustCompile(`^([a-z0-9]+(?:-[a-z0-9]+)+):`)
)

// Matrix is the cross-document traceability picture. Any of the source
// documents may be absent; the corresponding slices and maps stay empty.
type Matrix struct {
	// Requirements are REQ-prefixed IDs declared in the requirements tree.
	Requirements []string
	// Components are kebab-case component names declared in design list items.
	Components []string
	// Tasks are task IDs declared in the tasks tree.
	Tasks []string

	// ReqToTasks maps a requirement to the tasks referencing it.
	ReqToTasks map[string][]string
	// ComponentToTasks maps a design component to the tasks referencing it,
	// formally or by raw mention.
	ComponentToTasks map[string][]string
	// TaskToReqs and TaskToDesign are each task's outbound references.
	TaskToReqs   map[string][]string
	TaskToDesign map[string][]string
	// Dependencies is the task dependency adjacency, declaration order kept.
	Dependencies map[string][]string

	// UnreferencedRequirements are declared but never referenced by a task;
	// empty when there is no tasks tree to check against.
	UnreferencedRequirements []string
	// DanglingReferences are requirement IDs referenced by tasks but not
	// declared; empty when there is no requirements tree to check against.
	DanglingReferences []string
}

// Build walks up to three document trees into a Matrix. Nil documents are
// allowed and simply contribute nothing.
func Build(requirements, design, tasks *block.Document) Matrix {
	m := Matrix{
		ReqToTasks:       make(map[string][]string),
		ComponentToTasks: make(map[string][]string),
		TaskToReqs:       make(map[string][]string),
		TaskToDesign:     make(map[string][]string),
		Dependencies:     make(map[string][]string),
	}

	declared := make(map[string]bool)
	if requirements != nil {
		for _, b := range requirements.BlocksByType(block.TypeRequirement) {
			if id := b.(*block.Requirement).ReqID; strings.HasPrefix(id, "REQ-") {
				declared[id] = true
			}
		}
		m.Requirements = sortedKeys(declared)
	}

	components := make(map[string]bool)
	if design != nil {
		for _, b := range design.BlocksByType(block.TypeListItem) {
			content := b.(*block.ListItem).Content
			for _, match := range boldComponentPattern.FindAllStringSubmatch(content, -1) {
				components[match[1]] = true
			}
			if match := leadingComponentPattern.FindStringSubmatch(content); match != nil {
				components[match[1]] = true
			}
		}
		m.Components = sortedKeys(components)
	}

	if tasks == nil {
		return m
	}

	referenced := make(map[string]bool)
	for _, b := range tasks.BlocksByType(block.TypeTask) {
		task := b.(*block.Task)
		if task.TaskID == "" {
			continue
		}
		m.Tasks = append(m.Tasks, task.TaskID)

		for _, ref := range task.ReqRefs {
			referenced[ref] = true
			m.ReqToTasks[ref] = append(m.ReqToTasks[ref], task.TaskID)
		}
		if len(task.ReqRefs) > 0 {
			m.TaskToReqs[task.TaskID] = task.ReqRefs
		}
		if len(task.DesignRefs) > 0 {
			m.TaskToDesign[task.TaskID] = task.DesignRefs
		}
		if len(task.Dependencies) > 0 {
			m.Dependencies[task.TaskID] = task.Dependencies
		}

		for component := range components {
			if refersToComponent(task, component) {
				m.ComponentToTasks[component] = append(m.ComponentToTasks[component], task.TaskID)
			}
		}
	}
	sort.Strings(m.Tasks)

	if requirements != nil {
		for id := range declared {
			if !referenced[id] {
				m.UnreferencedRequirements = append(m.UnreferencedRequirements, id)
			}
		}
		sort.Strings(m.UnreferencedRequirements)

		for id := range referenced {
			if !declared[id] {
				m.DanglingReferences = append(m.DanglingReferences, id)
			}
		}
		sort.Strings(m.DanglingReferences)
	}

	return m
}

func refersToComponent(task *block.Task, component string) bool {
	for _, ref := range task.DesignRefs {
		if ref == component {
			return true
		}
	}
	return strings.Contains(task.Raw(), component)
}

// Coverage is the matrix rolled up into percentages.
type Coverage struct {
	// RequirementCoverage is the share of declared requirements referenced
	// by at least one task, 0-100.
	RequirementCoverage float64
	// DesignCoverage is the share of design components referenced by at
	// least one task, 0-100.
	DesignCoverage float64
	// TaskDependencyCoverage is the share of later-phase tasks declaring
	// dependencies; first-phase tasks (TASK-01-*) are not expected to.
	TaskDependencyCoverage float64
}

// Coverage computes rollup metrics. A dimension with nothing to cover
// reports zero, except dependency coverage, which reports 100 when no
// task is expected to declare dependencies.
func (m Matrix) Coverage() Coverage {
	var c Coverage

	if len(m.Requirements) > 0 {
		covered := 0
		for _, id := range m.Requirements {
			if len(m.ReqToTasks[id]) > 0 {
				covered++
			}
		}
		c.RequirementCoverage = percent(covered, len(m.Requirements))
	}

	if len(m.Components) > 0 {
		covered := 0
		for _, component := range m.Components {
			if len(m.ComponentToTasks[component]) > 0 {
				covered++
			}
		}
		c.DesignCoverage = percent(covered, len(m.Components))
	}

	if len(m.Tasks) > 0 {
		expected := 0
		for _, id := range m.Tasks {
			if !strings.HasPrefix(id, "TASK-01-") {
				expected++
			}
		}
		if expected == 0 {
			c.TaskDependencyCoverage = 100
		} else {
			c.TaskDependencyCoverage = percent(len(m.Dependencies), expected)
		}
	}

	return c
}

func percent(covered, total int) float64 {
	return float64(covered) / float64(total) * 100
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
