package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractReqID_Strict(t *testing.T) {
	tests := []struct {
		text     string
		wantID   string
		wantRest string
		wantType string
	}{
		{"REQ-01: The system shall validate input", "REQ-01", "The system shall validate input", "REQ"},
		{"NFR-02: Response time under 100ms", "NFR-02", "Response time under 100ms", "NFR"},
		{"KPI-03: 99.9% uptime", "KPI-03", "99.9% uptime", "KPI"},
		{"TR-04: Unit test coverage", "TR-04", "Unit test coverage", "TR"},
		{"  REQ-05:  trimmed  ", "REQ-05", "trimmed", "REQ"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			id, rest, reqType := ExtractReqID(tt.text)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantRest, rest)
			assert.Equal(t, tt.wantType, reqType)
		})
	}
}

func TestExtractReqID_LooseCatchesMalformed(t *testing.T) {
	// Malformed IDs are still extracted so format rules can flag them.
	id, rest, reqType := ExtractReqID("REQ-1: single digit")
	assert.Equal(t, "REQ-1", id)
	assert.Equal(t, "single digit", rest)
	assert.Equal(t, "REQ", reqType)

	id, _, reqType = ExtractReqID("REQ-ABC: letters")
	assert.Equal(t, "REQ-ABC", id)
	assert.Equal(t, "REQ", reqType)

	id, _, reqType = ExtractReqID("NFR-1x: mixed")
	assert.Equal(t, "NFR-1x", id)
	assert.Equal(t, "NFR", reqType)
}

func TestExtractReqID_NoID(t *testing.T) {
	id, rest, reqType := ExtractReqID("The system shall log actions")
	assert.Empty(t, id)
	assert.Equal(t, "The system shall log actions", rest)
	assert.Equal(t, "REQ", reqType)
}

func TestExtractTaskID(t *testing.T) {
	id, rest := ExtractTaskID("TASK-01-01: Setup project")
	assert.Equal(t, "TASK-01-01", id)
	assert.Equal(t, "Setup project", rest)

	id, _ = ExtractTaskID("TASK-01-02-03: Deep task")
	assert.Equal(t, "TASK-01-02-03", id)

	// Loose pattern keeps malformed IDs visible.
	id, _ = ExtractTaskID("TASK-1: malformed")
	assert.Equal(t, "TASK-1", id)

	id, rest = ExtractTaskID("Implement login feature")
	assert.Empty(t, id)
	assert.Equal(t, "Implement login feature", rest)
}

func TestAllReqIDs(t *testing.T) {
	text := "Implements REQ-01 and REQ-02, covers NFR-03 plus KPI-04 and TR-05. REQ-01 again."
	assert.Equal(t, []string{"KPI-04", "NFR-03", "REQ-01", "REQ-02", "TR-05"}, AllReqIDs(text))
}

func TestAllReqIDs_WordBoundaries(t *testing.T) {
	// Three-digit and embedded tokens are not well-formed references.
	assert.Empty(t, AllReqIDs("REQ-001 XREQ-02x"))
	assert.Empty(t, AllReqIDs("no references here"))
}

func TestAllTaskIDs(t *testing.T) {
	text := "See TASK-01-01 and TASK-02-03-05."
	assert.Equal(t, []string{"TASK-01-01", "TASK-02-03-05"}, AllTaskIDs(text))
}

func TestAllDCRefs(t *testing.T) {
	text := "Uses DC-03 and DC-05, not DC-100."
	refs := AllDCRefs(text)
	assert.Contains(t, refs, "DC-03")
	assert.Contains(t, refs, "DC-05")
	assert.NotContains(t, refs, "DC-100")
}

func TestTestScenarioRefs(t *testing.T) {
	text := "Covered by test-input-processing and test-error-handling, not testcase."
	assert.Equal(t, []string{"test-error-handling", "test-input-processing"}, TestScenarioRefs(text))
}

func TestTaskDependencies(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"Create models, depends on TASK-01-01", []string{"TASK-01-01"}},
		{"Write tests, requires TASK-01-02", []string{"TASK-01-02"}},
		{"Deploy after TASK-02-01", []string{"TASK-02-01"}},
		{"モデル作成 依存: TASK-01-01", []string{"TASK-01-01"}},
		{"Depends On TASK-01-01 and REQUIRES TASK-01-02", []string{"TASK-01-01", "TASK-01-02"}},
		{"no dependencies here", nil},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, TaskDependencies(tt.text))
		})
	}
}

func TestTaskDependencies_KeepsDuplicates(t *testing.T) {
	deps := TaskDependencies("depends on TASK-01-01, also depends on TASK-01-01")
	assert.Equal(t, []string{"TASK-01-01", "TASK-01-01"}, deps)
}

func TestIsAcceptanceCriteria(t *testing.T) {
	assert.True(t, IsAcceptanceCriteria("受け入れ観点: 正常な入力でエラーが出ないこと"))
	assert.True(t, IsAcceptanceCriteria("受入観点: チェック"))
	assert.True(t, IsAcceptanceCriteria("テスト観点: 境界値"))
	assert.True(t, IsAcceptanceCriteria("Acceptance criteria: no errors on valid input"))
	assert.True(t, IsAcceptanceCriteria("ACCEPTANCE CRITERIA: case-insensitive"))
	assert.True(t, IsAcceptanceCriteria("Test criteria: covered"))

	assert.False(t, IsAcceptanceCriteria("REQ-01: The system shall validate input"))
	assert.False(t, IsAcceptanceCriteria("criteria for success"))
}
