package pp

import (
	"context"

	"github.com/epfl-lara/lean/expr"
)

// tryCoercionPrinter implements spec.md §4.4: when the head of an
// application spine is a registered coercion of arity k, only the
// sub-application beyond the first k (coercion) arguments is shown.
// Returns handled=false when the spine is too short to strip (defer to
// generic child printing, spec.md's stated edge case).
func (p *Printer) tryCoercionPrinter(ctx context.Context, e expr.Expr, bp int) (Result, bool) {
	if e.Kind != expr.KindApp {
		return Result{}, false
	}
	if p.env == nil {
		return Result{}, false
	}
	head, args := expr.AppSpine(e)
	if head.Kind != expr.KindConst {
		return Result{}, false
	}
	k, ok := p.env.Coercion(head.Name)
	if !ok || len(args) <= k {
		return Result{}, false
	}
	if len(args) == k+1 {
		return p.ppChild(ctx, args[k], bp), true
	}
	rest := args[k]
	for _, a := range args[k+1:] {
		rest = expr.App(rest, a)
	}
	return p.ppChild(ctx, rest, bp), true
}
