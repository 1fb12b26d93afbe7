// Package section provides the closed vocabulary of semantic section types
// for spec documents and the bilingual classification of heading titles.
//
// Each section type owns a list of recognized Japanese and English title
// phrases plus two flags telling the parser how to classify the section's
// list items: as requirement items, task items, or generic list items.
package section
