package rules

import (
	"fmt"

	"github.com/c360studio/speclint/block"
)

// circularDependencyRule detects mutual task dependencies.
type circularDependencyRule struct{}

// NewCircularDependency flags direct two-task cycles (A depends on B and B
// depends on A), one error per directed edge. Longer cycles (A→B→C→A) are
// intentionally not detected; this is a documented limitation of the rule,
// not an oversight.
func NewCircularDependency() Rule { return circularDependencyRule{} }

func (circularDependencyRule) ID() string   { return "CONSIST-TASK-001" }
func (circularDependencyRule) Name() string { return "Circular Dependency Detection" }
func (circularDependencyRule) Description() string {
	return "Detects circular dependencies in task relationships"
}

func (r circularDependencyRule) Validate(doc *block.Document, _ Context) Result {
	tasks := make(map[string]*block.Task)
	deps := make(map[string][]string)
	var order []string

	for _, b := range doc.BlocksByType(block.TypeTask) {
		task := b.(*block.Task)
		if task.TaskID == "" {
			continue
		}
		if _, seen := tasks[task.TaskID]; !seen {
			order = append(order, task.TaskID)
		}
		tasks[task.TaskID] = task
		if len(task.Dependencies) > 0 {
			deps[task.TaskID] = task.Dependencies
		}
	}

	var errs []Error
	for _, taskID := range order {
		for _, depID := range deps[taskID] {
			if !contains(deps[depID], taskID) {
				continue
			}
			errs = append(errs, finding(r,
				fmt.Sprintf("Circular dependency detected: %s <-> %s", taskID, depID),
				LocationFrom(tasks[taskID])))
		}
	}
	return result(r, errs)
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
