// Package pp is the pretty-printer core: purification, the child printer
// and its precedence gate, the structural case printers, binder-block
// collapsing, coercion elision, mixfix notation matching/rendering, and
// the top-level depth/step-budgeted driver (spec.md §4).
package pp

import (
	"context"

	"fortio.org/log"
	"fortio.org/safecast"

	"github.com/epfl-lara/lean/doc"
	"github.com/epfl-lara/lean/env"
	"github.com/epfl-lara/lean/expr"
	"github.com/epfl-lara/lean/options"
	"github.com/epfl-lara/lean/purify"
	"github.com/epfl-lara/lean/typecheck"
)

// Printer is one pretty-printer instance. It is not safe to share across
// goroutines without external synchronization: depth/step counters and
// the purification tables are mutated on every call (spec.md §5).
// Callers needing parallel formatting should construct one Printer per
// goroutine, or use Factory to get a per-call option overlay on a shared
// instance only when calls are already serialized.
type Printer struct {
	env     env.Environment
	checker typecheck.Checker
	options options.Options

	depth    int
	numSteps int
	purifier *purify.Purifier
}

// New constructs a Printer against an environment and a type checker
// capability, with the given initial options.
func New(e env.Environment, checker typecheck.Checker, opts options.Options) *Printer {
	if checker == nil {
		checker = typecheck.NullChecker{}
	}
	return &Printer{env: e, checker: checker, options: opts}
}

// SetOptions reconfigures the printer; a no-op if opts is identity-equal
// to the current option set (spec.md §6).
func (p *Printer) SetOptions(opts options.Options) {
	if p.options.Equal(opts) {
		return
	}
	p.options = opts
}

// Options returns the printer's current option snapshot.
func (p *Printer) Options() options.Options { return p.options }

// Factory returns a function building a shared Printer the first time
// it's called, then updating its options on every subsequent call before
// formatting (spec.md §6, "Factory"). Each returned pretty_fn still
// mutates shared state, so concurrent use requires external
// synchronization exactly like a bare Printer.
func Factory() func(e env.Environment, checker typecheck.Checker) func(expr.Expr, options.Options) doc.Doc {
	return func(e env.Environment, checker typecheck.Checker) func(expr.Expr, options.Options) doc.Doc {
		var shared *Printer
		return func(term expr.Expr, opts options.Options) doc.Doc {
			if shared == nil {
				shared = New(e, checker, opts)
			} else {
				shared.SetOptions(opts)
			}
			return shared.Pretty(context.Background(), term)
		}
	}
}

// Pretty is the top-level driver (spec.md §4.7, "Top-level operator"):
// reset depth/step counters, purify, optionally beta-reduce, then print
// at binding power 0.
func (p *Printer) Pretty(ctx context.Context, e expr.Expr) doc.Doc {
	p.depth = 0
	p.numSteps = 0
	p.purifier = purify.New()

	purified := p.purifier.Purify(e, p.options.Universes)
	if p.options.Beta {
		purified = betaReduce(purified, p.options.MaxSteps)
	}
	return p.ppChild(ctx, purified, BPZero).Doc
}

// enter accounts one descent into pp(e): bumps the step counter and
// depth, returning (budgetExceeded, restore). Callers must call restore
// before returning up the call stack so depth tracks the current
// recursion, not the high-water mark (numSteps is monotonic for the
// whole call per spec.md's invariant).
func (p *Printer) enter() (exceeded bool, restore func()) {
	p.numSteps++
	p.depth++
	if p.depth > p.options.MaxDepth || p.numSteps > p.options.MaxSteps {
		log.Debugf("pp: budget exceeded at depth=%d steps=%d (max_depth=%d max_steps=%d)",
			p.depth, p.numSteps, p.options.MaxDepth, p.options.MaxSteps)
		exceeded = true
	}
	d := p.depth
	return exceeded, func() { p.depth = d - 1 }
}

func (p *Printer) ellipsis() Result {
	glyph := "…"
	if !p.options.Unicode {
		glyph = "..."
	}
	return atom(doc.Text(glyph))
}

// stepsRemaining computes max_steps minus the steps taken in int64 and
// narrows the result back to int with fortio.org/safecast, returning 0 if
// it does not fit.
func (p *Printer) stepsRemaining() int {
	remaining, err := safecast.Convert[int](int64(p.options.MaxSteps) - int64(p.numSteps))
	if err != nil {
		return 0
	}
	return remaining
}
