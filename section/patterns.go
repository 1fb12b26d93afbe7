package section

import (
	"strings"

	"github.com/c360studio/speclint/language"
)

// Pattern defines the recognized title phrases and item semantics for one
// section type.
type Pattern struct {
	// Type is the normalized section type this pattern classifies to.
	Type Type

	// JA lists recognized Japanese title phrases. The first entry is the
	// localized display name used in validation messages.
	JA []string

	// EN lists recognized English title phrases. The first entry is the
	// localized display name used in validation messages.
	EN []string

	// ContainsRequirements marks sections whose list items are parsed as
	// requirement items.
	ContainsRequirements bool

	// ContainsTasks marks sections whose list items are parsed as task items.
	ContainsTasks bool
}

// Patterns holds every registered section pattern, one per section type.
//
// Overview keeps both 概要 and サマリー: サマリー was the original phrase
// before a document template rename, and existing documents still use it.
var Patterns = []Pattern{
	{
		Type: Overview,
		JA:   []string{"概要", "サマリー"},
		EN:   []string{"Overview", "Summary"},
	},
	{
		Type: Glossary,
		JA:   []string{"用語集"},
		EN:   []string{"Glossary"},
	},
	{
		Type: Scope,
		JA:   []string{"スコープ", "適用範囲"},
		EN:   []string{"Scope"},
	},
	{
		Type: Constraints,
		JA:   []string{"制約事項", "制約"},
		EN:   []string{"Constraints"},
	},
	{
		Type:                 NonFunctionalRequirements,
		JA:                   []string{"非機能要件"},
		EN:                   []string{"Non-Functional Requirements"},
		ContainsRequirements: true,
	},
	{
		Type:                 KPI,
		JA:                   []string{"KPI"},
		EN:                   []string{"KPI", "Key Performance Indicators"},
		ContainsRequirements: true,
	},
	{
		Type:                 FunctionalRequirements,
		JA:                   []string{"機能要件", "機能要件（EARS）"},
		EN:                   []string{"Functional Requirements"},
		ContainsRequirements: true,
	},
	{
		Type:                 TestingRequirements,
		JA:                   []string{"テスト要件", "受入要件"},
		EN:                   []string{"Testing Requirements", "Test Requirements"},
		ContainsRequirements: true,
	},
	{
		Type: Architecture,
		JA:   []string{"アーキテクチャ", "システム構成"},
		EN:   []string{"Architecture", "System Architecture"},
	},
	{
		Type: ComponentDesign,
		JA:   []string{"コンポーネント設計", "詳細設計"},
		EN:   []string{"Component Design", "Detailed Design"},
	},
	{
		Type: Data,
		JA:   []string{"データ", "データモデル"},
		EN:   []string{"Data", "Data Model"},
	},
	{
		Type: API,
		JA:   []string{"API"},
		EN:   []string{"API", "APIs"},
	},
	{
		Type: NonFunctional,
		JA:   []string{"非機能"},
		EN:   []string{"Non-Functional"},
	},
	{
		Type: Test,
		JA:   []string{"テスト"},
		EN:   []string{"Test", "Testing"},
	},
	{
		// Traceability sections list requirement references, so their items
		// are parsed as requirement items.
		Type:                 Traceability,
		JA:                   []string{"トレーサビリティ", "要件追跡"},
		EN:                   []string{"Traceability"},
		ContainsRequirements: true,
	},
	{
		Type:          TaskList,
		JA:            []string{"タスク一覧", "タスクリスト"},
		EN:            []string{"Task List", "Tasks"},
		ContainsTasks: true,
	},
	{
		Type: Dependencies,
		JA:   []string{"依存関係"},
		EN:   []string{"Dependencies"},
	},
	{
		Type: Milestones,
		JA:   []string{"マイルストーン"},
		EN:   []string{"Milestones"},
	},
	{
		Type: References,
		JA:   []string{"参考資料", "参照"},
		EN:   []string{"References"},
	},
	{
		Type: Appendix,
		JA:   []string{"付録"},
		EN:   []string{"Appendix"},
	},
}

// Classify maps a heading title to its section type. The title must already
// be trimmed and stripped of any leading "N." / "N.M" numbering by the
// caller. Matching is exact per phrase; English phrases match
// case-insensitively. Returns Unknown when no phrase matches.
func Classify(title string, lang language.Language) Type {
	clean := strings.TrimSpace(title)

	for _, pattern := range Patterns {
		phrases := pattern.EN
		if lang == language.Japanese {
			phrases = pattern.JA
		}
		for _, phrase := range phrases {
			if lang == language.Japanese {
				if clean == phrase {
					return pattern.Type
				}
			} else if strings.EqualFold(clean, phrase) {
				return pattern.Type
			}
		}
	}

	return Unknown
}

// PatternFor returns the pattern registered for a section type.
func PatternFor(t Type) (Pattern, bool) {
	for _, pattern := range Patterns {
		if pattern.Type == t {
			return pattern, true
		}
	}
	return Pattern{}, false
}

// DisplayName returns the localized name of a section type for validation
// messages: the first registered phrase in the requested language, falling
// back to the raw type value when no pattern is registered.
func DisplayName(t Type, lang language.Language) string {
	pattern, ok := PatternFor(t)
	if !ok {
		return string(t)
	}
	if lang == language.Japanese {
		if len(pattern.JA) > 0 {
			return pattern.JA[0]
		}
	} else if len(pattern.EN) > 0 {
		return pattern.EN[0]
	}
	return string(t)
}
