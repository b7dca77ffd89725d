package main

import (
	"sort"

	"github.com/epfl-lara/lean/binder"
	"github.com/epfl-lara/lean/expr"
	"github.com/epfl-lara/lean/level"
	"github.com/epfl-lara/lean/name"
)

// sampleTerm is one built-in catalog entry: a ready-made kernel term with
// no surrounding elaboration context, enough to exercise a slice of the
// printer's behavior on its own.
type sampleTerm struct {
	term expr.Expr
}

// catalog is the fixed set of terms the CLI knows how to print, standing
// in for a real parser (out of scope per spec.md). Each entry is chosen to
// exercise a distinct printer path: plain application, an application over
// Nat.zero (numeral folding; the CLI's NullChecker reports no implicit
// arguments, so nothing is elided), lambda binders, the arrow form, and a
// sort (Type, or Type.{1} with universes shown).
var catalog = map[string]sampleTerm{
	"id": {
		term: expr.Lambda("A", binder.Implicit,
			expr.Sort(level.MkSucc(level.MkZero())),
			expr.Lambda("a", binder.Default, expr.BVar(0), expr.BVar(0))),
	},
	"app": {
		term: expr.App(expr.Const(name.New("f")), expr.BVar(0)),
	},
	"const-implicit": {
		term: expr.App(
			expr.App(expr.Const(name.New("Nat", "add")), expr.Const(name.New("Nat", "zero"))),
			expr.Const(name.New("Nat", "zero"))),
	},
	"pi-arrow": {
		term: expr.Pi("_", binder.Default,
			expr.Const(name.New("Nat")),
			expr.Const(name.New("Nat"))),
	},
	"sort-one": {
		term: expr.Sort(level.MkSucc(level.MkZero())),
	},
}

func catalogNames() []string {
	names := make([]string, 0, len(catalog))
	for n := range catalog {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
