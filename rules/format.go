package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/c360studio/speclint/block"
)

// Valid ID shapes. Two-digit zero-padded segments; "00" is rejected
// separately so that REQ-00 gets a format error rather than slipping
// through as unextractable.
var (
	validReqIDPattern  = regexp.MustCompile(`^REQ-\d{2}$`)
	validTaskIDPattern = regexp.MustCompile(`^TASK-\d{2}(-\d{2}){1,2}$`)
)

// requirementIDFormatRule validates requirement ID formats.
type requirementIDFormatRule struct{}

// NewRequirementIDFormat checks that requirement IDs follow REQ-XX
// (01-99, not 00).
func NewRequirementIDFormat() Rule { return requirementIDFormatRule{} }

func (requirementIDFormatRule) ID() string   { return "FORMAT-REQ-001" }
func (requirementIDFormatRule) Name() string { return "Requirement ID Format" }
func (requirementIDFormatRule) Description() string {
	return "Validates that requirement IDs follow REQ-XX format (01-99, not 00)"
}

func (r requirementIDFormatRule) Validate(doc *block.Document, _ Context) Result {
	var errs []Error
	for _, b := range doc.BlocksByType(block.TypeRequirement) {
		req := b.(*block.Requirement)
		if req.ReqID == "" || isValidReqID(req.ReqID) {
			continue
		}
		errs = append(errs, finding(r,
			fmt.Sprintf("Invalid REQ-ID format: %s", req.ReqID),
			LocationFrom(req)))
	}
	return result(r, errs)
}

func isValidReqID(id string) bool {
	if !validReqIDPattern.MatchString(id) {
		return false
	}
	return strings.Split(id, "-")[1] != "00"
}

// taskIDFormatRule validates task ID formats.
type taskIDFormatRule struct{}

// NewTaskIDFormat checks that task IDs follow TASK-XX-XX or TASK-XX-XX-XX
// (each segment 01-99, not 00).
func NewTaskIDFormat() Rule { return taskIDFormatRule{} }

func (taskIDFormatRule) ID() string   { return "FORMAT-TASK-001" }
func (taskIDFormatRule) Name() string { return "Task ID Format" }
func (taskIDFormatRule) Description() string {
	return "Validates that task IDs follow TASK-XX-XX or TASK-XX-XX-XX format (01-99, not 00)"
}

func (r taskIDFormatRule) Validate(doc *block.Document, _ Context) Result {
	var errs []Error
	for _, b := range doc.BlocksByType(block.TypeTask) {
		task := b.(*block.Task)
		if task.TaskID == "" || isValidTaskID(task.TaskID) {
			continue
		}
		errs = append(errs, finding(r,
			fmt.Sprintf("Invalid TASK-ID format: %s", task.TaskID),
			LocationFrom(task)))
	}
	return result(r, errs)
}

func isValidTaskID(id string) bool {
	if !validTaskIDPattern.MatchString(id) {
		return false
	}
	for _, part := range strings.Split(id, "-")[1:] {
		if part == "00" {
			return false
		}
	}
	return true
}

// duplicateRequirementIDRule detects duplicate requirement IDs.
type duplicateRequirementIDRule struct{}

// NewDuplicateRequirementID reports every occurrence of a requirement ID
// declared more than once.
func NewDuplicateRequirementID() Rule { return duplicateRequirementIDRule{} }

func (duplicateRequirementIDRule) ID() string   { return "FORMAT-REQ-002" }
func (duplicateRequirementIDRule) Name() string { return "Duplicate Requirement ID" }
func (duplicateRequirementIDRule) Description() string {
	return "Detects duplicate requirement IDs in the document"
}

func (r duplicateRequirementIDRule) Validate(doc *block.Document, _ Context) Result {
	groups := make(map[string][]*block.Requirement)
	var order []string
	for _, b := range doc.BlocksByType(block.TypeRequirement) {
		req := b.(*block.Requirement)
		if req.ReqID == "" {
			continue
		}
		if _, seen := groups[req.ReqID]; !seen {
			order = append(order, req.ReqID)
		}
		groups[req.ReqID] = append(groups[req.ReqID], req)
	}

	// One error per occurrence, not per duplicated ID.
	var errs []Error
	for _, id := range order {
		blocks := groups[id]
		if len(blocks) < 2 {
			continue
		}
		for _, req := range blocks {
			errs = append(errs, finding(r,
				fmt.Sprintf("Duplicate REQ-ID found: %s", id),
				LocationFrom(req)))
		}
	}
	return result(r, errs)
}

// duplicateTaskIDRule detects duplicate task IDs.
type duplicateTaskIDRule struct{}

// NewDuplicateTaskID reports every occurrence of a task ID declared more
// than once.
func NewDuplicateTaskID() Rule { return duplicateTaskIDRule{} }

func (duplicateTaskIDRule) ID() string   { return "FORMAT-TASK-002" }
func (duplicateTaskIDRule) Name() string { return "Duplicate Task ID" }
func (duplicateTaskIDRule) Description() string {
	return "Detects duplicate task IDs in the document"
}

func (r duplicateTaskIDRule) Validate(doc *block.Document, _ Context) Result {
	groups := make(map[string][]*block.Task)
	var order []string
	for _, b := range doc.BlocksByType(block.TypeTask) {
		task := b.(*block.Task)
		if task.TaskID == "" {
			continue
		}
		if _, seen := groups[task.TaskID]; !seen {
			order = append(order, task.TaskID)
		}
		groups[task.TaskID] = append(groups[task.TaskID], task)
	}

	var errs []Error
	for _, id := range order {
		blocks := groups[id]
		if len(blocks) < 2 {
			continue
		}
		for _, task := range blocks {
			errs = append(errs, finding(r,
				fmt.Sprintf("Duplicate TASK-ID found: %s", id),
				LocationFrom(task)))
		}
	}
	return result(r, errs)
}
