package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguage_Valid(t *testing.T) {
	assert.True(t, Japanese.Valid())
	assert.True(t, English.Valid())
	assert.False(t, Language("fr").Valid())
	assert.False(t, Language("").Valid())
}

func TestDetect_JapaneseDocument(t *testing.T) {
	content := `# プロジェクト

## 概要

プロジェクトの概要です。

## 機能要件

- REQ-01: システムは入力を検証すること
`
	assert.Equal(t, Japanese, Detect(content))
}

func TestDetect_EnglishDocument(t *testing.T) {
	content := `# Project

## Overview

Project overview.

## Functional Requirements

- REQ-01: The system shall validate input

## Dependencies

None.
`
	assert.Equal(t, English, Detect(content))
}

func TestDetect_EmptyDefaultsToJapanese(t *testing.T) {
	assert.Equal(t, Japanese, Detect(""))
}

func TestDetect_NoKnownHeadingsDefaultsToJapanese(t *testing.T) {
	assert.Equal(t, Japanese, Detect("just some text without headings"))
}
