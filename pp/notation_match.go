package pp

import (
	"context"

	"github.com/epfl-lara/lean/binder"
	"github.com/epfl-lara/lean/expr"
	"github.com/epfl-lara/lean/level"
	"github.com/epfl-lara/lean/notation"
)

// matchNotation runs the notation matcher (spec.md §4.5) against entry's
// sample pattern, populating a freshly allocated slot vector on success.
func (p *Printer) matchNotation(ctx context.Context, entry notation.Entry, e expr.Expr) ([]*expr.Expr, bool) {
	slots := make([]*expr.Expr, entry.NumParams)
	if !p.matchExpr(ctx, entry.Pattern, e, slots) {
		return nil, false
	}
	return slots, true
}

func (p *Printer) matchExpr(ctx context.Context, pat, term expr.Expr, slots []*expr.Expr) bool {
	if notation.IsPlaceholder(pat) {
		return true
	}
	switch pat.Kind {
	case expr.KindBVar:
		slot := len(slots) - 1 - pat.Idx
		if slot < 0 || slot >= len(slots) {
			return false
		}
		if slots[slot] != nil {
			return expr.Structural(*slots[slot], term)
		}
		t := term
		slots[slot] = &t
		return true
	case expr.KindConst:
		if term.Kind != expr.KindConst || !pat.Name.Equal(term.Name) {
			return false
		}
		return p.levelsMatch(pat.Levels, term.Levels)
	case expr.KindSort:
		if term.Kind != expr.KindSort {
			return false
		}
		return levelMatches(pat.Level, term.Level, p.options.Universes)
	case expr.KindApp:
		return p.matchApp(ctx, pat, term, slots)
	default:
		// Any other pattern shape only matches a structurally identical term.
		return expr.Structural(pat, term)
	}
}

func (p *Printer) levelsMatch(pat, term []level.Level) bool {
	// Per spec.md §9's open question: a conservative reading compares the
	// examined term's level list against the pattern's, failing on arity
	// mismatch; that is what's implemented here.
	if len(pat) != len(term) {
		return false
	}
	for i := range pat {
		if !levelMatches(pat[i], term[i], p.options.Universes) {
			return false
		}
	}
	return true
}

// levelMatches implements the level matcher (spec.md §4.5): equal levels
// always match; with universes on, only strict equality is accepted;
// otherwise a metavariable pattern is a placeholder that matches anything,
// and succ/succ shapes recurse.
func levelMatches(pat, term level.Level, universesOn bool) bool {
	if pat.Equal(term) {
		return true
	}
	if universesOn {
		return false
	}
	if pat.Kind == level.Mvar {
		return true
	}
	if pat.Kind == level.Succ && term.Kind == level.Succ {
		return levelMatches(*pat.Arg, *term.Arg, universesOn)
	}
	return false
}

func (p *Printer) matchApp(ctx context.Context, pat, term expr.Expr, slots []*expr.Expr) bool {
	if term.Kind != expr.KindApp {
		return false
	}
	if pat.Annotation == expr.ExplicitAnnotation {
		patHead, patArgs := expr.AppSpine(pat)
		termHead, termArgs := expr.AppSpine(term)
		if len(patArgs) != len(termArgs) {
			return false
		}
		if !p.matchExpr(ctx, patHead, termHead, slots) {
			return false
		}
		for i := range patArgs {
			if !p.matchExpr(ctx, patArgs[i], termArgs[i], slots) {
				return false
			}
		}
		return true
	}
	return p.matchImplicitSkipApp(ctx, pat, term, slots)
}

// matchImplicitSkipApp walks the term spine's head type, matching pattern
// arguments only against explicit-binder positions and skipping implicit
// ones (spec.md §4.5, the default non-`@` matching mode).
func (p *Printer) matchImplicitSkipApp(ctx context.Context, pat, term expr.Expr, slots []*expr.Expr) bool {
	patHead, patArgs := expr.AppSpine(pat)
	termHead, termArgs := expr.AppSpine(term)
	if !p.matchExpr(ctx, patHead, termHead, slots) {
		return false
	}

	curType, err := p.checker.Infer(ctx, termHead)
	haveType := err == nil

	patIdx := 0
	for _, a := range termArgs {
		info := binder.Default
		ok := false
		var codomain expr.Expr
		if haveType {
			var infErr error
			info, codomain, ok, infErr = p.checker.EnsurePi(ctx, curType)
			if infErr != nil {
				ok = false
			}
		}
		if ok && info.IsImplicit() {
			curType = expr.Instantiate(codomain, a)
			continue
		}
		if patIdx >= len(patArgs) {
			return false
		}
		if !p.matchExpr(ctx, patArgs[patIdx], a, slots) {
			return false
		}
		patIdx++
		if ok {
			curType = expr.Instantiate(codomain, a)
		} else {
			haveType = false
		}
	}
	return patIdx == len(patArgs)
}
