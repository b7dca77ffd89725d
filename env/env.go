// Package env models the read-only environment collaborator: declaration
// lookup, active namespaces, the alias registry, hidden-name resolution,
// the notation table indexed by head, the coercion registry, and the
// impredicativity flag. The printer never mutates it.
package env

import (
	"github.com/epfl-lara/lean/expr"
	"github.com/epfl-lara/lean/name"
	"github.com/epfl-lara/lean/notation"
)

// Decl is a minimal declaration record, just enough for the printer's
// needs (it never inspects a declaration's value, only its type, and only
// when the type checker needs it to infer implicit-argument positions).
type Decl struct {
	Name name.Name
	Type expr.Expr
}

// Environment is everything the pretty printer consults about declared
// names, namespaces, aliases, notations and coercions. It is read-only
// from the printer's point of view.
type Environment interface {
	// Lookup returns the declaration for a constant, if any.
	Lookup(n name.Name) (Decl, bool)

	// OpenNamespaces returns the currently active namespaces, innermost
	// (most recently opened) first.
	OpenNamespaces() []name.Name

	// Alias returns a registered short alias for a constant, if any.
	Alias(n name.Name) (string, bool)

	// AliasShadowed reports whether resolving `alias` inside namespace ns
	// would hit some other declaration (ns ++ alias exists), meaning the
	// alias cannot be used unqualified under that namespace.
	AliasShadowed(ns name.Name, alias string) bool

	// HiddenToUser maps an internal/hidden constant name to its
	// user-facing alias, used when pp.private_names is off.
	HiddenToUser(n name.Name) (name.Name, bool)

	// NotationsForHead returns the notation entries registered for a head
	// constant, in priority order.
	NotationsForHead(n name.Name) []notation.Entry

	// Coercion returns the declared arity of n as a registered coercion,
	// if it is one.
	Coercion(n name.Name) (arity int, ok bool)

	// Impredicative reports whether Prop is a distinguished, impredicative
	// sort in this environment (affects how Sort(zero) is rendered).
	Impredicative() bool
}

// MapEnv is a simple in-memory Environment, useful for tests and small
// embedded configurations.
type MapEnv struct {
	Decls         map[string]Decl
	Namespaces    []name.Name
	Aliases       map[string]string
	Hidden        map[string]name.Name
	Notations     notation.MapTable
	Coercions     map[string]int
	Impredicative_ bool
}

// NewMapEnv returns an empty, ready-to-use MapEnv.
func NewMapEnv() *MapEnv {
	return &MapEnv{
		Decls:     map[string]Decl{},
		Aliases:   map[string]string{},
		Hidden:    map[string]name.Name{},
		Notations: notation.MapTable{},
		Coercions: map[string]int{},
	}
}

func (e *MapEnv) Lookup(n name.Name) (Decl, bool) {
	d, ok := e.Decls[n.String()]
	return d, ok
}

func (e *MapEnv) OpenNamespaces() []name.Name { return e.Namespaces }

func (e *MapEnv) Alias(n name.Name) (string, bool) {
	a, ok := e.Aliases[n.String()]
	return a, ok
}

func (e *MapEnv) AliasShadowed(ns name.Name, alias string) bool {
	_, ok := e.Decls[ns.Append(alias).String()]
	return ok
}

func (e *MapEnv) HiddenToUser(n name.Name) (name.Name, bool) {
	u, ok := e.Hidden[n.String()]
	return u, ok
}

func (e *MapEnv) NotationsForHead(n name.Name) []notation.Entry {
	return e.Notations.EntriesForHead(n)
}

func (e *MapEnv) Coercion(n name.Name) (int, bool) {
	k, ok := e.Coercions[n.String()]
	return k, ok
}

func (e *MapEnv) Impredicative() bool { return e.Impredicative_ }
