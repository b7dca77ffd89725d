package pp

import (
	"context"

	"github.com/epfl-lara/lean/expr"
	"github.com/epfl-lara/lean/name"
)

// transparentMacros are surface wrapper forms that never print themselves;
// on a notation miss they are peeled away before structural dispatch so
// the underlying term is what actually gets printed (spec.md §4.7, step 4).
// have/show are deliberately excluded here: they carry their own case
// printers (tryPrintHave/tryPrintShow) and are detected by annotation, not by
// macro name.
var transparentMacros = map[string]bool{
	"placeholder": true,
	"typed_expr":  true,
	"let_value":   true,
}

// pp is the per-node entry point: budget check, notation consult, and on
// miss the structural fallback (spec.md §4.7).
func (p *Printer) pp(ctx context.Context, e expr.Expr) Result {
	exceeded, restore := p.enter()
	defer restore()
	if exceeded {
		return p.ellipsis()
	}

	if p.options.Notation {
		if r, ok := p.tryNotation(ctx, e); ok {
			return r
		}
	}

	e = stripTransparentAnnotations(e)

	if r, ok := p.tryNumeralFold(e); ok {
		return r
	}

	if !p.options.MetavarArgs {
		e = hideMetavarArgSpine(e)
	}

	return p.ppStructural(ctx, e)
}

func stripTransparentAnnotations(e expr.Expr) expr.Expr {
	for e.Kind == expr.KindMacro && !e.ExplicitAnnot && transparentMacros[e.MacroName] && len(e.MacroArgs) > 0 {
		e = e.MacroArgs[len(e.MacroArgs)-1]
	}
	return e
}

// hideMetavarArgSpine discards the application spine over a metavariable
// head when metavariable-argument display is off, so `?m x y` prints as
// just `?m`.
func hideMetavarArgSpine(e expr.Expr) expr.Expr {
	head, args := expr.AppSpine(e)
	if head.Kind == expr.KindMVar && len(args) > 0 {
		return head
	}
	return e
}

var natZero = name.Parse("Nat.zero")
var natSucc = name.Parse("Nat.succ")

// tryNumeralFold recognizes a chain of Nat.succ applications over Nat.zero
// and folds it to a literal, the notation-table "numeric literal form"
// mentioned in spec.md §3 applied to the one built-in numeral shape this
// core ships without a user-extensible numeral table.
func (p *Printer) tryNumeralFold(e expr.Expr) (Result, bool) {
	n := 0
	cur := e
	for {
		if cur.Kind == expr.KindConst && cur.Name.Equal(natZero) {
			return atom(litDoc(p.options.Unicode, n)), true
		}
		head, args := expr.AppSpine(cur)
		if head.Kind == expr.KindConst && head.Name.Equal(natSucc) && len(args) == 1 {
			n++
			cur = args[0]
			continue
		}
		return Result{}, false
	}
}

// ppStructural is the case-printer dispatch table (spec.md §4.3).
func (p *Printer) ppStructural(ctx context.Context, e expr.Expr) Result {
	switch e.Kind {
	case expr.KindBVar:
		return p.printBVar(e)
	case expr.KindSort:
		return p.printSort(e)
	case expr.KindConst:
		return p.printConst(e)
	case expr.KindMVar:
		return p.printMVar(e)
	case expr.KindLocal:
		return p.printLocal(e)
	case expr.KindLit:
		return p.printLit(e)
	case expr.KindLambda:
		return p.printLambda(ctx, e)
	case expr.KindPi:
		return p.printPi(ctx, e)
	case expr.KindMacro:
		return p.printMacro(ctx, e)
	case expr.KindApp:
		switch e.Annotation {
		case expr.HaveAnnotation:
			if r, ok := p.tryPrintHave(ctx, e); ok {
				return r
			}
		case expr.ShowAnnotation:
			if r, ok := p.tryPrintShow(ctx, e); ok {
				return r
			}
		}
		if r, ok := p.tryPrintLet(ctx, e); ok {
			return r
		}
		return p.printApp(ctx, e)
	default:
		return atom(doc0("<?>"))
	}
}
