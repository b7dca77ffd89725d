// Package purify implements name purification (spec.md §4.1): rewriting
// metavariables and locals in a term to fresh, collision-free,
// user-visible names before any case printer inspects them.
package purify

import (
	"fmt"

	"fortio.org/log"
	"fortio.org/sets"

	"github.com/epfl-lara/lean/expr"
	"github.com/epfl-lara/lean/level"
)

// Purifier holds the purification tables for one top-level pretty-print
// call. It is reset (via New) on every re-entry so no state leaks across
// calls, per spec.md's invariant that counters/tables start fresh each time.
type Purifier struct {
	MetaPrefix    string
	NextMetaIdx   int
	MetaTable     map[string]string
	LocalTable    map[string]string
	UsedLocals    sets.Set[string]
}

// New returns a fresh Purifier with the standard "M" metavariable prefix.
func New() *Purifier {
	return &Purifier{
		MetaPrefix:  "M",
		NextMetaIdx: 1,
		MetaTable:   map[string]string{},
		LocalTable:  map[string]string{},
		UsedLocals:  sets.Set[string]{},
	}
}

// Purify rewrites e so every metavariable and local carries a printable,
// collision-free name. universes gates whether universe-level
// metavariables are also purified (they never are when universe display
// is off, since they're never printed in that mode).
func (p *Purifier) Purify(e expr.Expr, universes bool) expr.Expr {
	if !needsPurification(e, universes) {
		return e
	}
	switch e.Kind {
	case expr.KindMVar:
		return expr.MVar(p.renameMeta(e.Name.String()), p.Purify(*e.MVarType, universes))
	case expr.KindSort:
		if universes {
			return expr.Sort(p.purifyLevel(e.Level))
		}
		return e
	case expr.KindConst:
		if !universes {
			return e
		}
		levels := make([]level.Level, len(e.Levels))
		for i, l := range e.Levels {
			levels[i] = p.purifyLevel(l)
		}
		return expr.Const(e.Name, levels...)
	case expr.KindLocal:
		userName := p.renameLocal(e.Internal, e.UserName)
		typ := p.Purify(*e.LocalType, universes)
		out := expr.Local(e.Internal, userName, typ, e.Info)
		return out
	case expr.KindApp:
		fn := p.Purify(*e.Fn, universes)
		arg := p.Purify(*e.Arg, universes)
		return expr.AppAnnotated(e.Annotation, fn, arg)
	case expr.KindLambda:
		return expr.Lambda(e.BinderName, e.Info, p.Purify(*e.Domain, universes), p.Purify(*e.Body, universes))
	case expr.KindPi:
		return expr.Pi(e.BinderName, e.Info, p.Purify(*e.Domain, universes), p.Purify(*e.Body, universes))
	case expr.KindMacro:
		args := make([]expr.Expr, len(e.MacroArgs))
		for i, a := range e.MacroArgs {
			args[i] = p.Purify(a, universes)
		}
		return expr.Macro(e.MacroName, e.ExplicitAnnot, args...)
	default:
		return e
	}
}

// needsPurification is the short-circuit from spec.md §4.1: if a subterm
// carries no metavariables, no locals, and (when universes are on) no
// universe metavariables, it's returned unchanged rather than walked.
func needsPurification(e expr.Expr, universes bool) bool {
	if expr.HasMVars(e, universes) || expr.HasLocals(e) {
		return true
	}
	return false
}

func (p *Purifier) renameMeta(orig string) string {
	if display, ok := p.MetaTable[orig]; ok {
		return display
	}
	display := fmt.Sprintf("%s%d", p.MetaPrefix, p.NextMetaIdx)
	p.NextMetaIdx++
	p.MetaTable[orig] = display
	log.Debugf("purify: metavariable %q -> %q", orig, display)
	return display
}

func (p *Purifier) renameLocal(internal, suggested string) string {
	if display, ok := p.LocalTable[internal]; ok {
		return display
	}
	if suggested == "" {
		suggested = "x"
	}
	candidate := suggested
	n := 1
	for p.UsedLocals.Has(candidate) {
		candidate = fmt.Sprintf("%s%d", suggested, n)
		n++
	}
	p.LocalTable[internal] = candidate
	p.UsedLocals.Add(candidate)
	if candidate != suggested {
		log.Debugf("purify: local %q collided, renamed to %q", suggested, candidate)
	}
	return candidate
}

// purifyLevel renames every metavariable inside l, reusing the same
// MetaTable as term metavariables (they share one namespace: "M1", "M2", ...
// regardless of whether the original was a term or level metavariable).
func (p *Purifier) purifyLevel(l level.Level) level.Level {
	if !l.HasMvar() {
		return l
	}
	return l.MapMvars(func(orig string) level.Level {
		return level.MkMvar(p.renameMeta(orig))
	})
}

// Reserve marks name as already in use without assigning it to any
// internal id, so later FreshLocalName and local renames avoid it.
func (p *Purifier) Reserve(name string) {
	p.UsedLocals.Add(name)
}

// FreshLocalName returns a name derived from suggested that is not yet in
// UsedLocals, reserving it immediately. Used by the binder formatter to
// freshen a lambda/Pi binder before substituting a Local into the body.
func (p *Purifier) FreshLocalName(suggested string) string {
	if suggested == "" {
		suggested = "x"
	}
	candidate := suggested
	n := 1
	for p.UsedLocals.Has(candidate) {
		candidate = fmt.Sprintf("%s%d", suggested, n)
		n++
	}
	p.UsedLocals.Add(candidate)
	return candidate
}
