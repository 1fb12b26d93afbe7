package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/speclint/language"
	"github.com/c360studio/speclint/parser"
	"github.com/c360studio/speclint/rules"
)

const requirementsMarkdown = `# Product Requirements

## Overview

## Glossary

## Scope

## Constraints

## Non-Functional Requirements

## KPI

## Functional Requirements

- REQ-01: Parse spec documents into block trees
- REQ-02: Validate section structure

## Testing Requirements
`

const designMarkdown = `# Product Design

## Architecture

## Component Design

- **parser-core**: turns markdown into a block tree

## Data

## API

## Non-Functional

## Test

- test-parser-basic: parse a minimal document

## Traceability

- REQ-01: parser-core
- REQ-02: parser-core
`

const tasksMarkdown = `# Implementation Plan

## Overview

## Task List

- TASK-01-01: Build parser-core for REQ-01 and REQ-02 (test-parser-basic)

## Dependencies

## Milestones
`

func TestEngine_ValidateRequirements_ValidDocument(t *testing.T) {
	p := parser.New(language.English)
	doc := p.Parse(requirementsMarkdown)

	e := New(language.English)
	results := e.ValidateRequirements(doc)

	require.Len(t, results, 3)
	for _, r := range results {
		assert.True(t, r.IsValid, r.RuleID)
	}
}

func TestEngine_ValidateRequirements_InvalidID(t *testing.T) {
	markdown := `## Functional Requirements

- REQ-001: Has a three-digit number
`
	p := parser.New(language.English)
	doc := p.Parse(markdown)

	e := New(language.English)
	results := e.ValidateRequirements(doc)

	var formatResult rules.Result
	for _, r := range results {
		if r.RuleID == "FORMAT-REQ-001" {
			formatResult = r
		}
	}
	require.Len(t, formatResult.Errors, 1)
	assert.Equal(t, "Invalid REQ-ID format: REQ-001", formatResult.Errors[0].Message)
}

func TestEngine_ValidateTasks_WithFullContext(t *testing.T) {
	p := parser.New(language.English)
	reqs := p.Parse(requirementsMarkdown)
	design := p.Parse(designMarkdown)
	tasks := p.Parse(tasksMarkdown)

	e := New(language.English)
	e.SetRequirementsDocument(reqs)
	e.SetDesignDocument(design)

	results := e.ValidateTasks(tasks)

	for _, r := range results {
		assert.True(t, r.IsValid, "%s: %v", r.RuleID, r.Errors)
	}
}

func TestEngine_ValidateDesign_WithRequirementsContext(t *testing.T) {
	p := parser.New(language.English)
	reqs := p.Parse(requirementsMarkdown)
	design := p.Parse(designMarkdown)

	e := New(language.English)
	e.SetRequirementsDocument(reqs)

	results := e.ValidateDesign(design)

	for _, r := range results {
		assert.True(t, r.IsValid, "%s: %v", r.RuleID, r.Errors)
	}
}

func TestEngine_ValidateTasks_MissingContextSkipsCrossChecks(t *testing.T) {
	p := parser.New(language.English)
	tasks := p.Parse(tasksMarkdown)

	e := New(language.English)
	results := e.ValidateTasks(tasks)

	// Without sibling documents the traceability rules degrade to no-ops.
	for _, r := range results {
		assert.True(t, r.IsValid, r.RuleID)
	}
}

func TestEngine_ValidateWithStyle_UnknownStyle(t *testing.T) {
	p := parser.New(language.English)
	doc := p.Parse(requirementsMarkdown)

	e := New(language.English)
	results, err := e.ValidateWithStyle(doc, "wishlist")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown document style: wishlist")
	assert.Nil(t, results)
}

func TestEngine_ValidateWithStyle_BuiltinsByName(t *testing.T) {
	p := parser.New(language.English)
	doc := p.Parse(requirementsMarkdown)

	e := New(language.English)
	results, err := e.ValidateWithStyle(doc, "REQUIREMENTS")

	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestEngine_RegisterStyle_Custom(t *testing.T) {
	p := parser.New(language.English)
	doc := p.Parse("## Overview\n")

	e := New(language.English)
	e.RegisterStyle("minimal", DocumentStyle{
		Name:  "Minimal",
		Rules: []rules.Rule{rules.NewRequirementIDFormat()},
	})

	results, err := e.ValidateWithStyle(doc, "minimal")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "FORMAT-REQ-001", results[0].RuleID)
}

func TestSummarize(t *testing.T) {
	markdown := `## Functional Requirements

- REQ-001: Bad ID
- REQ-01: Fine
- REQ-01: Duplicate
`
	p := parser.New(language.English)
	doc := p.Parse(markdown)

	e := New(language.English)
	summary := Summarize(e.ValidateRequirements(doc))

	assert.NotEmpty(t, summary.RunID)
	assert.False(t, summary.IsValid)
	assert.Equal(t, 3, summary.TotalRules)
	assert.Equal(t, 3, summary.FailedRules)
	assert.Equal(t, 0, summary.PassedRules)
	// Structure (7 missing sections) + 1 bad format + 2 duplicate occurrences.
	assert.Equal(t, 10, summary.TotalErrors)
	assert.Len(t, summary.Errors, 10)
}

func TestSummarize_AllPassed(t *testing.T) {
	p := parser.New(language.English)
	doc := p.Parse(requirementsMarkdown)

	e := New(language.English)
	first := Summarize(e.ValidateRequirements(doc))
	second := Summarize(e.ValidateRequirements(doc))

	assert.True(t, first.IsValid)
	assert.Zero(t, first.TotalErrors)
	assert.NotEqual(t, first.RunID, second.RunID)
}
