// Package language defines the document language tag shared by the parser,
// section classifier, and validation rules, plus best-effort detection from
// spec document content.
package language

import "strings"

// Language identifies the language a spec document is written in.
type Language string

const (
	// Japanese indicates a Japanese-language document ("ja").
	Japanese Language = "ja"

	// English indicates an English-language document ("en").
	English Language = "en"
)

// Valid reports whether the language tag is a supported value.
func (l Language) Valid() bool {
	return l == Japanese || l == English
}

// String returns the language tag.
func (l Language) String() string {
	return string(l)
}

// Spec section heading patterns used for content-based language detection.
// Detection counts pattern hits per language rather than running full
// linguistic analysis; spec documents have a known heading vocabulary, which
// makes this both faster and more reliable.
var (
	japaneseSpecPatterns = []string{
		"# プロジェクト",
		"## 概要",
		"## 要求事項",
		"## 機能要求",
		"## 機能要件",
		"## 非機能要件",
		"## システム設計",
		"## アーキテクチャ",
		"## データ設計",
		"## タスク",
		"## 依存関係",
		"## マイルストーン",
		"# 仕様書",
		"# 設計書",
		"# タスク一覧",
	}

	englishSpecPatterns = []string{
		"# Project",
		"## Overview",
		"## Requirements",
		"## Functional Requirements",
		"## Non-Functional Requirements",
		"## System Design",
		"## Architecture",
		"## Data Design",
		"## Tasks",
		"## Dependencies",
		"## Milestones",
		"# Specification",
		"# Design Document",
		"# Task List",
	}
)

// Detect determines the language of spec document content by counting known
// section heading patterns. Defaults to Japanese when undetermined, matching
// the historical behavior of the validation pipeline.
func Detect(content string) Language {
	if content == "" {
		return Japanese
	}

	var jaMatches, enMatches int
	for _, pattern := range japaneseSpecPatterns {
		if strings.Contains(content, pattern) {
			jaMatches++
		}
	}
	for _, pattern := range englishSpecPatterns {
		if strings.Contains(content, pattern) {
			enMatches++
		}
	}

	if enMatches > jaMatches {
		return English
	}
	return Japanese
}
