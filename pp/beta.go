package pp

import "github.com/epfl-lara/lean/expr"

// betaReduce fully normalizes e, bounded by maxSteps total reductions so
// a pathological term can't loop the driver forever; any budget left over
// after normalization is unused (the printer's own depth/step counters in
// Pretty are independent of this budget).
func betaReduce(e expr.Expr, maxSteps int) expr.Expr {
	budget := maxSteps
	for budget > 0 {
		next, reduced := betaStep(e, &budget)
		if !reduced {
			return next
		}
		e = next
	}
	return e
}

// betaStep performs one leftmost-outermost beta reduction if e's head is
// a redex, recursing into subterms otherwise; reports whether progress
// was made so the caller can iterate to a fixpoint.
func betaStep(e expr.Expr, budget *int) (expr.Expr, bool) {
	if *budget <= 0 {
		return e, false
	}
	switch e.Kind {
	case expr.KindApp:
		if e.Fn.Kind == expr.KindLambda {
			*budget--
			return expr.Instantiate(*e.Fn.Body, *e.Arg), true
		}
		fn, changed := betaStep(*e.Fn, budget)
		if changed {
			out := expr.App(fn, *e.Arg)
			out.Annotation = e.Annotation
			return out, true
		}
		arg, argChanged := betaStep(*e.Arg, budget)
		if argChanged {
			out := expr.App(fn, arg)
			out.Annotation = e.Annotation
			return out, true
		}
		return e, false
	case expr.KindLambda:
		body, changed := betaStep(*e.Body, budget)
		if !changed {
			return e, false
		}
		return expr.Lambda(e.BinderName, e.Info, *e.Domain, body), true
	case expr.KindPi:
		body, changed := betaStep(*e.Body, budget)
		if !changed {
			return e, false
		}
		return expr.Pi(e.BinderName, e.Info, *e.Domain, body), true
	default:
		return e, false
	}
}
