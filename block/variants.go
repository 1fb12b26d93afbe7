package block

import (
	"fmt"

	"github.com/c360studio/speclint/language"
	"github.com/c360studio/speclint/section"
)

// textPreviewLength bounds the item text shown in String output.
const textPreviewLength = 50

// Document is the root block of a parsed spec document.
type Document struct {
	Base

	// Title is the document title. The parser leaves it empty: level-1
	// headings are treated as the document title and discarded.
	Title string

	// Language is the declared document language.
	Language language.Language
}

// Type returns TypeDocument.
func (*Document) Type() Type { return TypeDocument }

// Label returns the document title.
func (d *Document) Label() string { return d.Title }

func (d *Document) String() string {
	return fmt.Sprintf("Document(%s, %s, %d sections)", d.Title, d.Language, len(d.Children()))
}

// Section is a classified heading block (level ≥2).
type Section struct {
	Base

	// Level is the heading depth (2 for ##, 3 for ###, ...).
	Level int

	// Title is the heading title with any numeric prefix stripped.
	Title string

	// Number is the optional dotted numeric prefix (e.g. "6.1"), empty
	// when the heading carries none.
	Number string

	// NormalizedTitle is the classified section type's string value.
	NormalizedTitle string

	// SectionType is the classified semantic section type.
	SectionType section.Type
}

// Type returns TypeSection.
func (*Section) Type() Type { return TypeSection }

// Label returns the section title.
func (s *Section) Label() string { return s.Title }

func (s *Section) String() string {
	prefix := ""
	if s.Number != "" {
		prefix = s.Number + ". "
	}
	return fmt.Sprintf("Section(%s%s, level=%d, %d items)", prefix, s.Title, s.Level, len(s.Children()))
}

// Requirement is a requirement item block.
type Requirement struct {
	Base

	// ReqID is the requirement ID (REQ-01, NFR-02, ...), empty when the
	// item carries none. Malformed IDs are preserved here so format rules
	// can report them.
	ReqID string

	// Text is the requirement description with the ID prefix stripped.
	Text string

	// ReqType is the ID prefix token (REQ, NFR, KPI, TR). Defaults to REQ
	// when no ID is present.
	ReqType string
}

// Type returns TypeRequirement.
func (*Requirement) Type() Type { return TypeRequirement }

// Label returns the requirement ID.
func (r *Requirement) Label() string { return r.ReqID }

func (r *Requirement) String() string {
	return fmt.Sprintf("Requirement(%s: %s)", r.ReqID, preview(r.Text))
}

// Task is a task item block.
type Task struct {
	Base

	// TaskID is the task ID (TASK-01-01, TASK-01-02-03, ...), empty when
	// the item carries none.
	TaskID string

	// Text is the task description with the ID prefix stripped.
	Text string

	// Dependencies lists referenced task IDs in order of appearance.
	// Duplicates are possible; de-duplication happens in rules.
	Dependencies []string

	// ReqRefs lists requirement IDs mentioned in the task text.
	ReqRefs []string

	// DesignRefs lists design component and test scenario identifiers
	// mentioned in the task text.
	DesignRefs []string
}

// Type returns TypeTask.
func (*Task) Type() Type { return TypeTask }

// Label returns the task ID.
func (t *Task) Label() string { return t.TaskID }

func (t *Task) String() string {
	deps := ""
	if len(t.Dependencies) > 0 {
		deps = fmt.Sprintf(", deps=%d", len(t.Dependencies))
	}
	return fmt.Sprintf("Task(%s: %s%s)", t.TaskID, preview(t.Text), deps)
}

// ListItem is a generic list item not classified as requirement or task.
type ListItem struct {
	Base

	// Content is the flattened item text.
	Content string

	// Numbered reports whether the item came from an ordered list.
	Numbered bool
}

// Type returns TypeListItem.
func (*ListItem) Type() Type { return TypeListItem }

// Label returns the empty string; list items have no display label.
func (*ListItem) Label() string { return "" }

func (l *ListItem) String() string {
	kind := "bullet"
	if l.Numbered {
		kind = "numbered"
	}
	return fmt.Sprintf("ListItem(%s: %s)", kind, preview(l.Content))
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= textPreviewLength {
		return text
	}
	return string(runes[:textPreviewLength]) + "..."
}
