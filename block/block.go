// Package block defines the in-memory document model for parsed spec
// documents: a tree of typed blocks rooted at a Document, with ordered
// ownership and typed traversal.
//
// The block set is closed. Every variant embeds Base, which carries the
// source line range, raw content, parent/children links, and an open
// metadata bag for extensions. Trees are built once by the parser and read
// by validation rules; nothing mutates a tree after parsing completes.
package block

// Type tags the kind of a block.
type Type string

const (
	// TypeDocument is the root document block.
	TypeDocument Type = "document"

	// TypeSection is a classified heading block.
	TypeSection Type = "section"

	// TypeRequirement is a requirement item block.
	TypeRequirement Type = "requirement"

	// TypeTask is a task item block.
	TypeTask Type = "task"

	// TypeListItem is a generic, unclassified list item block.
	TypeListItem Type = "list_item"

	// TypeParagraph is a paragraph block.
	TypeParagraph Type = "paragraph"

	// TypeHeading is an unclassified heading block.
	TypeHeading Type = "heading"
)

// Block is the interface shared by every node in a document tree.
// Only types in this package implement it.
type Block interface {
	// Type returns the block's kind tag.
	Type() Type

	// Label returns the block's display label for context paths: a
	// section's title, a requirement's ID, a task's ID. Empty when the
	// block has no label.
	Label() string

	// Parent returns the owning block, or nil for the root.
	Parent() Block

	// Children returns the block's ordered children.
	Children() []Block

	// Span returns the 1-indexed inclusive source line range.
	Span() (start, end int)

	// Raw returns the raw markdown content of the block.
	Raw() string

	// Descendants returns all descendant blocks in pre-order: each child
	// followed by its own descendants, depth-first.
	Descendants() []Block

	// BlocksByType filters Descendants by exact type tag.
	BlocksByType(t Type) []Block

	base() *Base
}

// Base carries the fields common to every block variant. Embed it; do not
// use it as a block on its own.
type Base struct {
	// LineStart and LineEnd are the 1-indexed inclusive source range.
	// Line numbers are approximate and advisory, not authoritative.
	LineStart int
	LineEnd   int

	// RawContent is the raw markdown content of this block.
	RawContent string

	// Metadata is an open string-keyed bag for extensions.
	Metadata map[string]string

	parent   Block
	children []Block
}

// Parent returns the owning block, or nil for the root.
func (b *Base) Parent() Block { return b.parent }

// Children returns the ordered child blocks.
func (b *Base) Children() []Block { return b.children }

// Span returns the 1-indexed inclusive source line range.
func (b *Base) Span() (start, end int) { return b.LineStart, b.LineEnd }

// Raw returns the raw markdown content of the block.
func (b *Base) Raw() string { return b.RawContent }

// Descendants returns all descendant blocks in pre-order.
func (b *Base) Descendants() []Block {
	var all []Block
	for _, child := range b.children {
		all = append(all, child)
		all = append(all, child.Descendants()...)
	}
	return all
}

// BlocksByType returns all descendants with the given type tag.
func (b *Base) BlocksByType(t Type) []Block {
	var matched []Block
	for _, d := range b.Descendants() {
		if d.Type() == t {
			matched = append(matched, d)
		}
	}
	return matched
}

func (b *Base) base() *Base { return b }

// AddChild appends child to parent's children and sets the child's parent
// reference. Ownership is exclusive: a block belongs to at most one parent.
func AddChild(parent, child Block) {
	child.base().parent = parent
	pb := parent.base()
	pb.children = append(pb.children, child)
}

// ContextPath walks from the root down to b, collecting each labeled
// ancestor's display label in root-to-leaf order. Unlabeled blocks (such as
// a root document with an empty title) contribute nothing.
func ContextPath(b Block) []string {
	var path []string
	for cur := b; cur != nil; cur = cur.Parent() {
		if label := cur.Label(); label != "" {
			path = append([]string{label}, path...)
		}
	}
	return path
}
