package speclint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/speclint/config"
	"github.com/c360studio/speclint/language"
)

const requirementsMarkdown = `# Requirements

## Overview

## Glossary

## Scope

## Constraints

## Non-Functional Requirements

## KPI

## Functional Requirements

- REQ-01: Parse spec documents into block trees
- REQ-02: Validate document structure

## Testing Requirements

- Every rule has unit tests
`

const designMarkdown = `# Design

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

const tasksMarkdown = `# Tasks

## Overview

## Task List

- TASK-01-01: Build parser-core for REQ-01 and REQ-02 (test-parser-basic)
- TASK-02-01: Ship validation reports, depends on TASK-01-01

## Dependencies

## Milestones
`

func TestLinter_ValidateRequirements(t *testing.T) {
	report, err := New(language.English).ValidateRequirements(requirementsMarkdown)

	require.NoError(t, err)
	assert.True(t, report.IsValid)
	assert.Empty(t, report.Issues)
	assert.Equal(t, 2, report.Stats.TotalRequirements)
	assert.Equal(t, 0, report.Stats.TotalTRs)
	assert.Len(t, report.FoundSections, 8)
	assert.Equal(t, "ubiquitous", report.EARS.Pattern)
	assert.Equal(t, 1.0, report.EARS.Rate)
}

func TestLinter_ValidateRequirements_ReportsIssues(t *testing.T) {
	report, err := New(language.English).ValidateRequirements("## Overview\n")

	require.NoError(t, err)
	assert.False(t, report.IsValid)
	assert.Contains(t, report.Issues, "Missing required section: Glossary")
}

func TestLinter_ValidateDesign(t *testing.T) {
	report, err := New(language.English).ValidateDesign(designMarkdown, requirementsMarkdown)

	require.NoError(t, err)
	assert.True(t, report.IsValid, report.Issues)
	assert.Equal(t, 2, report.Stats.ReferencedRequirements)
}

func TestLinter_ValidateTasks(t *testing.T) {
	report, err := New(language.English).ValidateTasks(tasksMarkdown, requirementsMarkdown, designMarkdown)

	require.NoError(t, err)
	assert.True(t, report.IsValid, report.Issues)
	assert.Equal(t, 2, report.Stats.TotalTasks)
	assert.Equal(t, 1, report.Stats.Dependencies)
	assert.Empty(t, report.Stats.MissingRequirementReferences)
	assert.Nil(t, report.Traceability)
	assert.Nil(t, report.Coverage)
}

func TestLinter_ValidateTasks_WithoutSiblings(t *testing.T) {
	report, err := New(language.English).ValidateTasks(tasksMarkdown, "", "")

	require.NoError(t, err)
	assert.True(t, report.IsValid, report.Issues)
}

func TestLinter_DevModeAddsTraceability(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Language = "en"
	cfg.DevMode = true

	l, err := NewFromConfig(cfg)
	require.NoError(t, err)

	report, err := l.ValidateTasks(tasksMarkdown, requirementsMarkdown, designMarkdown)
	require.NoError(t, err)

	require.NotNil(t, report.Traceability)
	require.NotNil(t, report.Coverage)
	assert.Equal(t, []string{"REQ-01", "REQ-02"}, report.Traceability.Requirements)
	assert.InDelta(t, 100, report.Coverage.RequirementCoverage, 0.01)
}

func TestNewFromConfig_InvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Language = "xx"

	_, err := NewFromConfig(cfg)

	assert.Error(t, err)
}

func TestLinter_ValidateWithStyle(t *testing.T) {
	l := New(language.English)

	summary, err := l.ValidateWithStyle(requirementsMarkdown, "requirements")
	require.NoError(t, err)
	assert.True(t, summary.IsValid)
	assert.NotEmpty(t, summary.RunID)

	_, err = l.ValidateWithStyle(requirementsMarkdown, "wishlist")
	assert.Error(t, err)
}

func TestLinter_ValidateWithStyle_CustomFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Language = "en"
	cfg.Styles = []config.Style{{
		Name:  "format-only",
		Rules: []string{"requirement-id-format", "duplicate-requirement-id"},
	}}

	l, err := NewFromConfig(cfg)
	require.NoError(t, err)

	summary, err := l.ValidateWithStyle("## Functional Requirements\n\n- REQ-001: Bad\n", "format-only")
	require.NoError(t, err)
	assert.False(t, summary.IsValid)
	assert.Equal(t, 2, summary.TotalRules)
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, language.English, DetectLanguage(requirementsMarkdown))
	assert.Equal(t, language.Japanese, DetectLanguage("## 概要\n\n## 機能要件\n"))
}

func TestParse(t *testing.T) {
	doc := Parse(requirementsMarkdown, language.English)

	assert.Equal(t, language.English, doc.Language)
	assert.NotEmpty(t, doc.Children())
}
