// Package parser builds spec document block trees from markdown text.
//
// The parser walks goldmark's token stream and emits a flat tree: the
// document owns sections and ID-bearing heading blocks; sections own the
// requirement, task, or list items parsed from their lists. Hierarchy
// beyond document → section → item is not modeled; headings of any level
// ≥2 land in the document's child list.
package parser

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"

	"github.com/c360studio/speclint/block"
	"github.com/c360studio/speclint/ident"
	"github.com/c360studio/speclint/language"
	"github.com/c360studio/speclint/section"
)

// Search window sizes for best-effort line number mapping. Line numbers are
// found by scanning the source for a prefix of the block's text; collisions
// between similar blocks are possible, so consumers must treat line numbers
// as advisory.
const (
	headingSearchLength  = 30
	listItemSearchLength = 50
)

// Leading dotted numeric prefix of a heading, e.g. "6.1 Testing".
var sectionNumberPattern = regexp.MustCompile(`^(\d+(?:\.\d+)*)[.\s]+(.+)$`)

// Parser parses markdown spec documents into block trees.
// A Parser is safe for repeated use; each Parse call produces an
// independent tree.
type Parser struct {
	language language.Language
	md       goldmark.Markdown
}

// New creates a parser for documents in the given language.
func New(lang language.Language) *Parser {
	return &Parser{
		language: lang,
		md:       goldmark.New(),
	}
}

// Parse parses markdown text into a document block tree. Parsing never
// fails: unknown constructs are ignored or fall back to generic list items,
// and empty input yields a document with no children.
func (p *Parser) Parse(markdownText string) *block.Document {
	src := []byte(markdownText)
	root := p.md.Parser().Parse(gtext.NewReader(src))

	lines := strings.Split(markdownText, "\n")
	doc := &block.Document{
		Base: block.Base{
			LineStart:  1,
			LineEnd:    len(lines),
			RawContent: markdownText,
		},
		Language: p.language,
	}

	// The most recently emitted section owns subsequent lists. Requirement
	// and task headings do not change it.
	var current *block.Section

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *gast.Heading:
			b := p.parseHeading(node, src, lines)
			if b == nil {
				continue
			}
			block.AddChild(doc, b)
			if sec, ok := b.(*block.Section); ok {
				current = sec
			}
		case *gast.List:
			if current == nil {
				continue
			}
			for _, item := range p.parseList(node, src, lines, current) {
				block.AddChild(current, item)
			}
		}
	}

	return doc
}

// parseHeading converts a heading token into a block. Level-1 headings are
// the document title and emit nothing. A heading whose title embeds a
// requirement or task ID becomes that item kind (requirement IDs win when
// both shapes appear); everything else becomes a classified section.
func (p *Parser) parseHeading(node *gast.Heading, src []byte, lines []string) block.Block {
	if node.Level == 1 {
		return nil
	}

	headingText := strings.TrimSpace(inlineText(node, src))
	line := findLine(lines, headingText, headingSearchLength)
	number, clean := splitSectionNumber(headingText)

	if id, rest, reqType := ident.ExtractReqID(clean); id != "" {
		return &block.Requirement{
			Base:    itemBase(line, headingText),
			ReqID:   id,
			Text:    rest,
			ReqType: reqType,
		}
	}

	if id, rest := ident.ExtractTaskID(clean); id != "" {
		return newTask(id, rest, headingText, line)
	}

	sectionType := section.Classify(clean, p.language)
	return &block.Section{
		Base:            itemBase(line, headingText),
		Level:           node.Level,
		Title:           clean,
		Number:          number,
		NormalizedTitle: string(sectionType),
		SectionType:     sectionType,
	}
}

// parseList converts a list token's items into blocks, classified by the
// owning section's semantics. Acceptance criteria items emit nothing.
func (p *Parser) parseList(node *gast.List, src []byte, lines []string, current *block.Section) []block.Block {
	pattern, _ := section.PatternFor(current.SectionType)
	ordered := node.IsOrdered()

	var items []block.Block
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		li, ok := c.(*gast.ListItem)
		if !ok {
			continue
		}

		text := flattenListItem(li, src)
		if ident.IsAcceptanceCriteria(text) {
			continue
		}

		line := findLine(lines, text, listItemSearchLength)
		switch {
		case pattern.ContainsRequirements:
			id, rest, reqType := ident.ExtractReqID(text)
			items = append(items, &block.Requirement{
				Base:    itemBase(line, text),
				ReqID:   id,
				Text:    rest,
				ReqType: reqType,
			})
		case pattern.ContainsTasks:
			id, rest := ident.ExtractTaskID(text)
			items = append(items, newTask(id, rest, text, line))
		default:
			items = append(items, &block.ListItem{
				Base:     itemBase(line, text),
				Content:  text,
				Numbered: ordered,
			})
		}
	}
	return items
}

// newTask builds a task block, scanning the task text for requirement
// references, design component and test scenario references, and
// dependency phrases.
func newTask(id, text, raw string, line int) *block.Task {
	designRefs := ident.AllDCRefs(text)
	designRefs = append(designRefs, ident.TestScenarioRefs(text)...)

	return &block.Task{
		Base:         itemBase(line, raw),
		TaskID:       id,
		Text:         text,
		Dependencies: ident.TaskDependencies(text),
		ReqRefs:      ident.AllReqIDs(text),
		DesignRefs:   designRefs,
	}
}

// flattenListItem extracts the flattened text of a list item, including
// code span content. Nested sub-lists detected as acceptance criteria are
// dropped entirely; other sub-lists are appended with a leading space.
func flattenListItem(item gast.Node, src []byte) string {
	var sb strings.Builder
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		if nested, ok := c.(*gast.List); ok {
			text := flattenNestedList(nested, src)
			if text == "" || ident.IsAcceptanceCriteria(text) {
				continue
			}
			sb.WriteString(" ")
			sb.WriteString(text)
			continue
		}
		sb.WriteString(inlineText(c, src))
	}
	return strings.TrimSpace(sb.String())
}

func flattenNestedList(list *gast.List, src []byte) string {
	var parts []string
	for c := list.FirstChild(); c != nil; c = c.NextSibling() {
		if text := flattenListItem(c, src); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// inlineText recursively extracts text and code span content from a node's
// inline children. Line breaks inside a block collapse to single spaces.
func inlineText(n gast.Node, src []byte) string {
	switch t := n.(type) {
	case *gast.Text:
		s := string(t.Segment.Value(src))
		if t.SoftLineBreak() || t.HardLineBreak() {
			s += " "
		}
		return s
	case *gast.String:
		return string(t.Value)
	}

	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		sb.WriteString(inlineText(c, src))
	}
	return sb.String()
}

// findLine locates a block's source line by searching for a prefix of its
// text. Defaults to line 1 when no line contains the prefix.
func findLine(lines []string, snippet string, window int) int {
	runes := []rune(snippet)
	if len(runes) > window {
		snippet = string(runes[:window])
	}
	if snippet == "" {
		return 1
	}
	for i, line := range lines {
		if strings.Contains(line, snippet) {
			return i + 1
		}
	}
	return 1
}

// splitSectionNumber strips a leading dotted numeric prefix from a heading
// title, returning the number (empty when absent) and the clean title.
func splitSectionNumber(title string) (number, clean string) {
	m := sectionNumberPattern.FindStringSubmatch(strings.TrimSpace(title))
	if m == nil {
		return "", strings.TrimSpace(title)
	}
	return m[1], strings.TrimSpace(m[2])
}

func itemBase(line int, raw string) block.Base {
	return block.Base{LineStart: line, LineEnd: line, RawContent: raw}
}
