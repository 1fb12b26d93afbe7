// Package ident recognizes requirement, task, and design component
// identifiers in spec document text.
//
// All functions are pure; the compiled patterns are immutable package
// constants, so concurrent use is safe. The extractor recognizes shape
// only: malformed IDs are still surfaced (via the loose patterns) so that
// format rules can report them instead of them vanishing silently.
package ident

import (
	"regexp"
	"sort"
	"strings"
)

// Scan-all patterns for references anywhere in free text. IDs use 2-digit
// zero-padded numbers; "00" is rejected by format rules, not here.
var (
	reqIDPattern  = regexp.MustCompile(`\b(?:REQ|NFR|KPI|TR)-\d{2}\b`)
	taskIDPattern = regexp.MustCompile(`\bTASK-\d{2}(?:-\d{2}){0,2}\b`)
	dcRefPattern  = regexp.MustCompile(`\bDC-\d{2}\b`)

	// Test scenario identifiers are free-text kebab tokens like
	// "test-input-processing".
	testScenarioPattern = regexp.MustCompile(`\btest-[a-z0-9]+(?:-[a-z0-9]+)*\b`)
)

// Prefixed patterns for items of the form "REQ-01: text". The strict
// patterns accept any digit count so that near-valid IDs like REQ-001 are
// extracted and later rejected by format rules; the loose patterns catch
// outright malformed IDs like REQ-AB.
var (
	prefixedReqPattern  = regexp.MustCompile(`^(REQ-\d+|NFR-\d+|KPI-\d+|TR-\d+):\s*(.+)$`)
	prefixedTaskPattern = regexp.MustCompile(`^(TASK-\d+(?:-\d+){0,2}):\s*(.+)$`)
	looseReqPattern     = regexp.MustCompile(`^(REQ[-A-Za-z0-9]*|TR[-A-Za-z0-9]*|NFR[-A-Za-z0-9]*|KPI[-A-Za-z0-9]*):\s*(.+)$`)
	looseTaskPattern    = regexp.MustCompile(`^(TASK[-A-Za-z0-9]*):\s*(.+)$`)
)

// Dependency phrases. Matches are collected pattern by pattern, in order of
// appearance within each; duplicates are kept.
var dependencyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)depends on (TASK-\d{2}(?:-\d{2}){0,2})`),
	regexp.MustCompile(`(?i)requires (TASK-\d{2}(?:-\d{2}){0,2})`),
	regexp.MustCompile(`(?i)after (TASK-\d{2}(?:-\d{2}){0,2})`),
	regexp.MustCompile(`依存:\s*(TASK-\d{2}(?:-\d{2}){0,2})`),
}

// Acceptance criteria markers. Items matching these are commentary on a
// requirement, not requirements themselves.
var acceptanceCriteriaPattern = regexp.MustCompile(
	`(?i)受け入れ観点|受入観点|テスト観点|Acceptance criteria|Test criteria`)

// ExtractReqID extracts a requirement ID prefix from item text.
// Returns the ID (empty when none), the text with the prefix stripped, and
// the requirement type token (REQ, NFR, KPI, TR; defaults to REQ).
func ExtractReqID(text string) (id, rest, reqType string) {
	text = strings.TrimSpace(text)

	if m := prefixedReqPattern.FindStringSubmatch(text); m != nil {
		id = m[1]
		return id, strings.TrimSpace(m[2]), id[:strings.Index(id, "-")]
	}

	if m := looseReqPattern.FindStringSubmatch(text); m != nil {
		id = m[1]
		reqType = "REQ"
		if i := strings.Index(id, "-"); i > 0 {
			reqType = id[:i]
		}
		return id, strings.TrimSpace(m[2]), reqType
	}

	return "", text, "REQ"
}

// ExtractTaskID extracts a task ID prefix from item text.
// Returns the ID (empty when none) and the text with the prefix stripped.
func ExtractTaskID(text string) (id, rest string) {
	text = strings.TrimSpace(text)

	if m := prefixedTaskPattern.FindStringSubmatch(text); m != nil {
		return m[1], strings.TrimSpace(m[2])
	}

	if m := looseTaskPattern.FindStringSubmatch(text); m != nil {
		return m[1], strings.TrimSpace(m[2])
	}

	return "", text
}

// AllReqIDs returns every well-formed requirement ID (REQ/NFR/KPI/TR-NN)
// occurring anywhere in text, de-duplicated and sorted.
func AllReqIDs(text string) []string {
	return uniqueSorted(reqIDPattern.FindAllString(text, -1))
}

// AllTaskIDs returns every well-formed task ID occurring anywhere in text,
// de-duplicated and sorted.
func AllTaskIDs(text string) []string {
	return uniqueSorted(taskIDPattern.FindAllString(text, -1))
}

// AllDCRefs returns every design component reference (DC-NN) occurring
// anywhere in text, de-duplicated and sorted.
func AllDCRefs(text string) []string {
	return uniqueSorted(dcRefPattern.FindAllString(text, -1))
}

// TestScenarioRefs returns every test scenario token (test-xxx kebab-case)
// occurring anywhere in text, de-duplicated and sorted.
func TestScenarioRefs(text string) []string {
	return uniqueSorted(testScenarioPattern.FindAllString(text, -1))
}

// TaskDependencies returns the task IDs this task depends on, recognized
// from "depends on X", "requires X", "after X" and the Japanese "依存: X".
// Matches are kept in order of appearance per phrase, duplicates included.
func TaskDependencies(text string) []string {
	var deps []string
	for _, pattern := range dependencyPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			deps = append(deps, m[1])
		}
	}
	return deps
}

// IsAcceptanceCriteria reports whether text is an acceptance criteria note
// rather than a requirement or task item.
func IsAcceptanceCriteria(text string) bool {
	return acceptanceCriteriaPattern.MatchString(text)
}

func uniqueSorted(matches []string) []string {
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	var out []string
	for _, m := range matches {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out
}
