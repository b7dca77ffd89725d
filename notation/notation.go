// Package notation is the data model for user-extensible mixfix notation
// entries: token-transition sequences matched against terms and rendered
// back out by the pp package. The table itself (indexing entries by head
// constant) is owned by the environment collaborator; this package only
// defines the shapes it hands to the printer.
package notation

import (
	"github.com/epfl-lara/lean/expr"
	"github.com/epfl-lara/lean/name"
)

// ActionKind is the kind of a single notation transition.
type ActionKind int

const (
	Skip ActionKind = iota
	Expr
	Exprs
	Binder
	Binders
	ScopedExpr
	Ext
	LuaExt
)

// Supported reports whether the renderer implements this action kind.
// Exprs/Binder/Binders/ScopedExpr/Ext/LuaExt are explicitly unimplemented
// per spec: the renderer aborts the notation attempt and falls back to
// structural printing rather than guessing at their semantics.
func (a ActionKind) Supported() bool {
	return a == Skip || a == Expr
}

// Transition is one step of a notation entry. TokenLBP/RBP are sourced
// from the token table (spec.md §6, "Token table: token → optional
// precedence") when the entry is built; the renderer only ever reads
// them back, it never consults the token table itself.
type Transition struct {
	Token    string
	Action   ActionKind
	TokenLBP int // left-binding power of Token, used to gate an Expr slot's left attachment
	RBP      int // right-binding power demanded of the slot; only meaningful for Action == Expr
}

// Entry describes one mixfix notation form.
type Entry struct {
	Head         name.Name
	Transitions  []Transition
	Pattern      expr.Expr // sample expression used for matching
	NumParams    int       // size of the pattern-variable slot vector
	IsNud        bool      // true: prefix (null-denotation); false: has a left operand
	IsNumeral    bool      // numeral notation form
	ASCIISafe    bool      // renders using only ASCII tokens
	FirstTokenLBP int      // left-binding power of the leftmost token, used by the caller's precedence gate
}

// placeholderMacroName marks a pattern-expression hole that matches any
// term (spec.md §4.5, "Placeholder pattern matches anything").
const placeholderMacroName = "_"

// Placeholder builds the pattern-expression wildcard.
func Placeholder() expr.Expr {
	return expr.Macro(placeholderMacroName, false)
}

// IsPlaceholder reports whether e is the wildcard pattern built by Placeholder.
func IsPlaceholder(e expr.Expr) bool {
	return e.Kind == expr.KindMacro && e.MacroName == placeholderMacroName && len(e.MacroArgs) == 0
}

// Table maps a head constant to the notation entries registered for it.
type Table interface {
	// EntriesForHead returns all notation entries whose head is name, in
	// priority order (highest priority first).
	EntriesForHead(n name.Name) []Entry
}

// MapTable is a simple in-memory Table backed by a map, suitable for tests
// and for small embedded notation sets.
type MapTable map[string][]Entry

func (t MapTable) EntriesForHead(n name.Name) []Entry {
	return t[n.String()]
}

// Register adds an entry to the table, keyed by its head.
func (t MapTable) Register(e Entry) {
	key := e.Head.String()
	t[key] = append(t[key], e)
}
