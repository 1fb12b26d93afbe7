// Package stats derives report statistics from parsed spec documents.
//
// The counters intentionally scan both item blocks and section titles: some
// documents declare IDs as list items, others as headings, and legacy
// reports expect both to count.
package stats

import (
	"regexp"
	"sort"
	"strings"

	"github.com/c360studio/speclint/block"
	"github.com/c360studio/speclint/ident"
	"github.com/c360studio/speclint/rules"
)

// Requirements summarizes ID counts in a requirements document.
type Requirements struct {
	TotalRequirements int `json:"totalRequirements"`
	TotalNFRs         int `json:"totalNFRs"`
	TotalKPIs         int `json:"totalKPIs"`
	TotalTRs          int `json:"totalTRs"`
}

// ForRequirements counts distinct requirement IDs by prefix, from
// requirement blocks and ID-bearing section titles.
func ForRequirements(doc *block.Document) Requirements {
	ids := make(map[string]bool)
	for _, b := range doc.BlocksByType(block.TypeRequirement) {
		if id := b.(*block.Requirement).ReqID; id != "" {
			ids[id] = true
		}
	}
	for _, b := range doc.BlocksByType(block.TypeSection) {
		sec := b.(*block.Section)
		if sec.Title == "" {
			continue
		}
		if id, _, _ := ident.ExtractReqID(sec.Title); id != "" {
			ids[id] = true
		}
	}

	var s Requirements
	for id := range ids {
		switch {
		case strings.HasPrefix(id, "REQ-"):
			s.TotalRequirements++
		case strings.HasPrefix(id, "NFR-"):
			s.TotalNFRs++
		case strings.HasPrefix(id, "KPI-"):
			s.TotalKPIs++
		case strings.HasPrefix(id, "TR-"):
			s.TotalTRs++
		}
	}
	return s
}

// Design summarizes requirement references in a design document.
type Design struct {
	ReferencedRequirements int      `json:"referencedRequirements"`
	ReferencedTRs          int      `json:"referencedTRs"`
	MissingReferences      []string `json:"missingReferences"`
}

// ForDesign counts distinct REQ and TR references, from requirement
// blocks, ID-bearing section titles, and list item content (traceability
// tables commonly parse as plain list items). MissingReferences is filled
// by the caller from validation results.
func ForDesign(doc *block.Document) Design {
	reqs := make(map[string]bool)
	trs := make(map[string]bool)

	record := func(id string) {
		switch {
		case strings.HasPrefix(id, "REQ-"):
			reqs[id] = true
		case strings.HasPrefix(id, "TR-"):
			trs[id] = true
		}
	}

	for _, b := range doc.BlocksByType(block.TypeRequirement) {
		if id := b.(*block.Requirement).ReqID; id != "" {
			record(id)
		}
	}
	for _, b := range doc.BlocksByType(block.TypeSection) {
		sec := b.(*block.Section)
		if sec.Title == "" {
			continue
		}
		if id, _, _ := ident.ExtractReqID(sec.Title); id != "" {
			record(id)
		}
	}
	for _, b := range doc.BlocksByType(block.TypeListItem) {
		for _, id := range ident.AllReqIDs(b.(*block.ListItem).Content) {
			record(id)
		}
	}

	return Design{
		ReferencedRequirements: len(reqs),
		ReferencedTRs:          len(trs),
		MissingReferences:      []string{},
	}
}

// Tasks summarizes a tasks document.
type Tasks struct {
	TotalTasks                   int      `json:"totalTasks"`
	Dependencies                 int      `json:"dependencies"`
	MissingRequirementReferences []string `json:"missingRequirementReferences"`
	MissingTRReferences          []string `json:"missingTRReferences"`
	MissingDesignReferences      []string `json:"missingDesignReferences"`
}

// ForTasks counts distinct task IDs and total dependency edges, from task
// blocks plus ID-bearing section headings. The missing-reference lists are
// filled by the caller from validation results.
func ForTasks(doc *block.Document) Tasks {
	ids := make(map[string]bool)
	deps := 0

	for _, b := range doc.BlocksByType(block.TypeTask) {
		task := b.(*block.Task)
		if task.TaskID != "" {
			ids[task.TaskID] = true
		}
		deps += len(task.Dependencies)
	}
	for _, b := range doc.BlocksByType(block.TypeSection) {
		sec := b.(*block.Section)
		if sec.Title == "" {
			continue
		}
		if id, _ := ident.ExtractTaskID(sec.Title); id != "" {
			ids[id] = true
		}
		deps += len(ident.TaskDependencies(sec.Raw()))
	}

	return Tasks{
		TotalTasks:                   len(ids),
		Dependencies:                 deps,
		MissingRequirementReferences: []string{},
		MissingTRReferences:          []string{},
		MissingDesignReferences:      []string{},
	}
}

// FoundSections lists level-2 section titles in document order. Deeper
// headings are excluded for compatibility with the legacy text reporter.
func FoundSections(doc *block.Document) []string {
	var titles []string
	for _, b := range doc.BlocksByType(block.TypeSection) {
		sec := b.(*block.Section)
		if sec.Level == 2 && sec.Title != "" {
			titles = append(titles, sec.Title)
		}
	}
	return titles
}

// MissingRefs groups unreferenced identifiers recovered from validation
// results, for the legacy tasks report shape.
type MissingRefs struct {
	Requirements     []string
	TestRequirements []string
	Design           []string
}

var (
	missingListPattern   = regexp.MustCompile(`:\s*(.+)$`)
	trTokenPattern       = regexp.MustCompile(`\bTR-\d+\b`)
	componentNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(?:[-_][a-z0-9]+)+$`)
)

// MissingFromResults parses coverage error messages back into identifier
// lists. Message parsing is deliberate: the legacy report format predates
// structured findings, and its consumers key off these lists.
func MissingFromResults(results []rules.Result) MissingRefs {
	reqs := make(map[string]bool)
	trs := make(map[string]bool)
	design := make(map[string]bool)

	for _, result := range results {
		for _, err := range result.Errors {
			msg := err.Message

			if strings.Contains(msg, "Requirements not referenced:") {
				for _, id := range splitIDList(msg) {
					if strings.HasPrefix(id, "REQ-") ||
						strings.HasPrefix(id, "NFR-") ||
						strings.HasPrefix(id, "KPI-") {
						reqs[id] = true
					}
				}
			}

			for _, id := range trTokenPattern.FindAllString(msg, -1) {
				trs[id] = true
			}

			if strings.Contains(msg, "not referenced in tasks:") {
				for _, name := range splitIDList(msg) {
					if componentNamePattern.MatchString(name) {
						design[name] = true
					}
				}
			}
		}
	}

	return MissingRefs{
		Requirements:     sortedKeys(reqs),
		TestRequirements: sortedKeys(trs),
		Design:           sortedKeys(design),
	}
}

func splitIDList(msg string) []string {
	m := missingListPattern.FindStringSubmatch(msg)
	if m == nil {
		return nil
	}
	var ids []string
	for _, part := range strings.Split(strings.ReplaceAll(m[1], "...", ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
