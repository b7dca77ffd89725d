package pp

import (
	"context"

	"fortio.org/log"

	"github.com/epfl-lara/lean/doc"
	"github.com/epfl-lara/lean/expr"
)

// ppChild returns a result safely embeddable in a context demanding
// right-binding-power >= bp (spec.md §4.2).
func (p *Printer) ppChild(ctx context.Context, e expr.Expr, bp int) Result {
	if e.Kind == expr.KindApp && !p.options.Implicit {
		if head, implicit := p.headIsImplicitApp(ctx, e); implicit {
			return p.ppChild(ctx, head, bp)
		}
	}
	if !p.options.Coercions {
		if r, handled := p.tryCoercionPrinter(ctx, e, bp); handled {
			return r
		}
	}
	r := p.pp(ctx, e)
	if r.RBP < bp {
		return Result{LBP: BPMax, RBP: BPMax, Doc: doc.Paren(r.Doc)}
	}
	return r
}

// headIsImplicitApp reports whether e's argument is being applied at an
// implicit Pi binder of its function's type, making the application
// transparent to the child printer when implicit display is off
// (spec.md §4.2, rule 1): printing descends straight into the function
// and the implicit argument is never shown.
//
// This requires inferring the function's type; any type-checker failure
// is a conservative "not implicit" per spec.md §7.
func (p *Printer) headIsImplicitApp(ctx context.Context, e expr.Expr) (expr.Expr, bool) {
	fnType, err := p.checker.Infer(ctx, *e.Fn)
	if err != nil {
		log.Debugf("pp: infer failed for implicit-application elision on %v, keeping the argument: %v", *e.Fn, err)
		return e, false
	}
	info, _, ok, err := p.checker.EnsurePi(ctx, fnType)
	if err != nil || !ok {
		if err != nil {
			log.Debugf("pp: ensurePi failed for implicit-application elision on %v, keeping the argument: %v", *e.Fn, err)
		}
		return e, false
	}
	if info.IsImplicit() {
		return *e.Fn, true
	}
	return e, false
}

// ppNotationChild enforces the two precedence gates a mixfix transition
// needs (spec.md §4.2): parenthesize if the child's right-bp is below the
// left context token's lbp, or if the child's left-bp is at or below the
// right context the action demands.
func (p *Printer) ppNotationChild(ctx context.Context, e expr.Expr, lbp, rbp int) Result {
	r := p.pp(ctx, e)
	if r.RBP < lbp || r.LBP <= rbp {
		return Result{LBP: BPMax, RBP: BPMax, Doc: doc.Paren(r.Doc)}
	}
	return r
}
