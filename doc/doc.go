// Package doc implements the document/layout engine the pretty printer
// renders into: text, composition, indentation groups, and soft line
// breaks that collapse to a space when a group fits on the current line.
// Display width is measured with github.com/rivo/uniseg so unicode
// notation glyphs (λ Π ∀ → ⦃⦄ …) and their ASCII spellings are weighed
// by how many terminal columns they actually occupy, not by byte or rune
// count.
package doc

import (
	"strings"

	"github.com/rivo/uniseg"
)

// kind discriminates the small document algebra below. Doc values are
// immutable trees built by the constructors and consumed only by Render.
type kind int

const (
	kText kind = iota
	kConcat
	kNest
	kGroup
	kLine
	kSoftLine
)

// Doc is an opaque layout document. The zero value is the empty document.
type Doc struct {
	kind     kind
	text     string
	children []Doc
	indent   int
}

// Nil is the empty document.
var Nil = Doc{kind: kText, text: ""}

// Text wraps a literal string as a document. Multi-line strings are not
// supported; callers compose line breaks with Line/SoftLine instead.
func Text(s string) Doc { return Doc{kind: kText, text: s} }

// Concat composes documents left to right with no separator.
func Concat(ds ...Doc) Doc { return Doc{kind: kConcat, children: ds} }

// Nest increases the indentation used by any Line inside d by n columns.
func Nest(n int, d Doc) Doc { return Doc{kind: kNest, indent: n, children: []Doc{d}} }

// Group marks d as a unit the renderer may try to flatten onto one line:
// every Line/SoftLine inside collapses to a space (Line) or nothing
// (SoftLine) if the flattened form fits within the render width, and
// breaks onto fresh, indented lines otherwise.
func Group(d Doc) Doc { return Doc{kind: kGroup, children: []Doc{d}} }

// Line is a line break that renders as a single space when its enclosing
// group is flattened.
func Line() Doc { return Doc{kind: kLine} }

// SoftLine is a line break that renders as nothing when its enclosing
// group is flattened.
func SoftLine() Doc { return Doc{kind: kSoftLine} }

// Space is a literal space, always present regardless of grouping.
func Space() Doc { return Text(" ") }

// Comma is ", " in non-compact contexts; callers that want a bare comma
// can use Text(",") directly.
func Comma() Doc { return Text(", ") }

// Colon is " : ".
func Colon() Doc { return Text(" : ") }

// Paren wraps d in parentheses with no added space.
func Paren(d Doc) Doc { return Concat(Text("("), d, Text(")")) }

// Compose is an alias for Concat, matching the external-interface naming
// in spec.md §6 ("compose").
func Compose(ds ...Doc) Doc { return Concat(ds...) }

// Highlight and HighlightKeyword are no-ops in this plain-text renderer:
// a terminal/IDE-aware renderer would wrap d in ANSI or semantic-highlight
// markers here. Kept as named seams so callers don't need to special-case
// plain-text output.
func Highlight(d Doc) Doc        { return d }
func HighlightKeyword(d Doc) Doc { return d }

// flatten renders d as if every group inside it were on one line,
// collapsing Line to a space and SoftLine to nothing.
func flatten(d Doc) string {
	var b strings.Builder
	flattenInto(&b, d)
	return b.String()
}

func flattenInto(b *strings.Builder, d Doc) {
	switch d.kind {
	case kText:
		b.WriteString(d.text)
	case kConcat:
		for _, c := range d.children {
			flattenInto(b, c)
		}
	case kNest, kGroup:
		for _, c := range d.children {
			flattenInto(b, c)
		}
	case kLine:
		b.WriteByte(' ')
	case kSoftLine:
		// nothing
	}
}

// fits reports whether s (a single already-flattened line fragment) plus
// whatever has already been written on the current line stays within
// width columns, measured with uniseg grapheme-cluster display width.
func fits(width, used int, s string) bool {
	return used+uniseg.StringWidth(s) <= width
}

// Render lays d out at the given maximum line width, breaking groups that
// don't fit flattened and indenting continuation lines by the nesting
// recorded at each break point.
func Render(d Doc, width int) string {
	var b strings.Builder
	r := renderer{width: width, out: &b}
	r.render(0, 0, d)
	return b.String()
}

type renderer struct {
	width int
	out   *strings.Builder
	col   int
}

func (r *renderer) writeString(s string) {
	r.out.WriteString(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		r.col = uniseg.StringWidth(s[i+1:])
	} else {
		r.col += uniseg.StringWidth(s)
	}
}

func (r *renderer) newline(indent int) {
	r.out.WriteByte('\n')
	r.out.WriteString(strings.Repeat(" ", indent))
	r.col = indent
}

func (r *renderer) render(indent, groupIndent int, d Doc) {
	switch d.kind {
	case kText:
		r.writeString(d.text)
	case kConcat:
		for _, c := range d.children {
			r.render(indent, groupIndent, c)
		}
	case kNest:
		for _, c := range d.children {
			r.render(indent+d.indent, groupIndent+d.indent, c)
		}
	case kGroup:
		inner := d.children[0]
		flat := flatten(inner)
		if !strings.Contains(flat, "\n") && fits(r.width, r.col, flat) {
			r.writeString(flat)
			return
		}
		r.render(indent, indent, inner)
	case kLine:
		r.newline(groupIndent)
	case kSoftLine:
		r.newline(groupIndent)
	}
}
