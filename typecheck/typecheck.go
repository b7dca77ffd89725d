// Package typecheck abstracts the external type checker capability the
// printer needs for implicit-argument detection: infer, weak-head-normal
// form, prop detection, and Pi-type extraction. Every method may fail;
// per spec §7 the printer always treats failure as a conservative "no
// info" answer rather than surfacing it.
package typecheck

import (
	"context"
	"errors"

	"github.com/epfl-lara/lean/binder"
	"github.com/epfl-lara/lean/expr"
)

// ErrUnknown is returned by NullChecker for every query; callers in pp
// never propagate it, they just fall back to the conservative answer.
var ErrUnknown = errors.New("typecheck: no information available")

// Checker is the capability trait the printer depends on. A production
// implementation backs it with the real elaborator's type checker; tests
// and the NullChecker below stand in for it.
type Checker interface {
	// Infer returns the type of e in the ambient context.
	Infer(ctx context.Context, e expr.Expr) (expr.Expr, error)

	// Whnf reduces t to weak-head-normal form.
	Whnf(ctx context.Context, t expr.Expr) (expr.Expr, error)

	// IsProp reports whether e's type is (or reduces to) Prop.
	IsProp(ctx context.Context, e expr.Expr) (bool, error)

	// EnsurePi reduces t to whnf and asserts it is a Pi type, returning its
	// binder info and its (still de-Bruijn-abstract) codomain; the caller
	// instantiates codomain with the concrete argument to get the type of
	// the rest of the application, since Pi types are dependent.
	EnsurePi(ctx context.Context, t expr.Expr) (info binder.Info, codomain expr.Expr, ok bool, err error)
}

// NullChecker answers every query with ErrUnknown. It exists so a printer
// can be constructed without a live elaborator (e.g. for golden tests that
// only exercise notation/structural printing, where the spec already
// requires implicit detection to degrade gracefully on failure).
type NullChecker struct{}

func (NullChecker) Infer(context.Context, expr.Expr) (expr.Expr, error) {
	return expr.Expr{}, ErrUnknown
}

func (NullChecker) Whnf(_ context.Context, t expr.Expr) (expr.Expr, error) {
	return t, ErrUnknown
}

func (NullChecker) IsProp(context.Context, expr.Expr) (bool, error) {
	return false, ErrUnknown
}

func (NullChecker) EnsurePi(context.Context, expr.Expr) (binder.Info, expr.Expr, bool, error) {
	return binder.Default, expr.Expr{}, false, ErrUnknown
}
