package pp

import (
	"context"

	"github.com/epfl-lara/lean/binder"
	"github.com/epfl-lara/lean/doc"
	"github.com/epfl-lara/lean/expr"
)

// binderGroup is a run of consecutive lambda/Pi binders sharing domain
// type and binder info, collapsed into a single bracketed block
// (spec.md §4.3, "Binder block collapsing").
type binderGroup struct {
	Names  []string
	Domain expr.Expr
	Info   binder.Info
}

// collectBinders walks a lambda or Pi spine, freshening each binder via
// the purifier and substituting a Local into the body (spec.md §9,
// "De Bruijn + on-the-fly naming"), then groups consecutive binders with
// identical domain and info. isLambda selects which spine shape to
// walk; the function stops at the first node that isn't that shape.
func (p *Printer) collectBinders(ctx context.Context, e expr.Expr, isLambda bool) ([]binderGroup, expr.Expr) {
	var groups []binderGroup
	cur := e
	for {
		if isLambda && cur.Kind != expr.KindLambda {
			break
		}
		if !isLambda && cur.Kind != expr.KindPi {
			break
		}
		fresh := p.purifier.FreshLocalName(cur.BinderName)
		domain := *cur.Domain
		local := expr.Local(fresh, fresh, domain, cur.Info)
		body := expr.Instantiate(*cur.Body, local)

		if n := len(groups); n > 0 && groups[n-1].Info == cur.Info && expr.Structural(groups[n-1].Domain, domain) {
			groups[n-1].Names = append(groups[n-1].Names, fresh)
		} else {
			groups = append(groups, binderGroup{Names: []string{fresh}, Domain: domain, Info: cur.Info})
		}
		cur = body
	}
	return groups, cur
}

func (p *Printer) binderGroupDoc(ctx context.Context, g binderGroup) doc.Doc {
	open, close := g.Info.Brackets(p.options.Unicode)
	names := doc0(g.Names[0])
	for _, n := range g.Names[1:] {
		names = doc.Concat(names, doc0(" "), doc0(n))
	}
	domainDoc := p.ppChild(ctx, g.Domain, BPZero)
	return doc.Concat(doc0(open), names, doc0(" : "), domainDoc.Doc, doc0(close))
}

func (p *Printer) binderGroupsDoc(ctx context.Context, groups []binderGroup) doc.Doc {
	parts := make([]doc.Doc, 0, 2*len(groups))
	for i, g := range groups {
		if i > 0 {
			parts = append(parts, doc0(" "))
		}
		parts = append(parts, p.binderGroupDoc(ctx, g))
	}
	return doc.Concat(parts...)
}

func (p *Printer) printLambda(ctx context.Context, e expr.Expr) Result {
	groups, body := p.collectBinders(ctx, e, true)
	kw := "fun"
	if p.options.Unicode {
		kw = "λ"
	}
	d := doc.Group(doc.Concat(
		doc.HighlightKeyword(doc0(kw)), doc0(" "),
		p.binderGroupsDoc(ctx, groups),
		doc0(","),
		doc.Nest(p.options.Indent, doc.Concat(doc.Line(), p.ppChild(ctx, body, BPZero).Doc)),
	))
	return Result{LBP: BPZero, RBP: BPZero, Doc: d}
}

// printPi prints a dependent function type, using the infix arrow form
// when the binder is default and vacuous in the body (spec.md §4.3,
// "Arrow form"), and the Π/∀ binder form otherwise.
func (p *Printer) printPi(ctx context.Context, e expr.Expr) Result {
	if e.Info == binder.Default && !expr.ReferencesVar0(*e.Body) {
		return p.printArrow(ctx, e)
	}

	groups, body := p.collectBinders(ctx, e, false)
	isProp, _ := p.checker.IsProp(ctx, body)
	kw := "forall"
	if p.options.Unicode {
		kw = "∀"
	}
	if !isProp {
		kw = "Pi"
		if p.options.Unicode {
			kw = "Π"
		}
	}
	d := doc.Group(doc.Concat(
		doc.HighlightKeyword(doc0(kw)), doc0(" "),
		p.binderGroupsDoc(ctx, groups),
		doc0(","),
		doc.Nest(p.options.Indent, doc.Concat(doc.Line(), p.ppChild(ctx, body, BPZero).Doc)),
	))
	return Result{LBP: BPZero, RBP: BPZero, Doc: d}
}

func (p *Printer) printArrow(ctx context.Context, e expr.Expr) Result {
	arrow := "->"
	if p.options.Unicode {
		arrow = "→"
	}
	lhs := p.ppChild(ctx, *e.Domain, BPArrow+1)
	loweredBody := expr.LiftLooseBVars(*e.Body, -1)
	rhs := p.ppChild(ctx, loweredBody, BPArrow)
	d := doc.Group(doc.Concat(lhs.Doc, doc0(" "+arrow), doc.Nest(p.options.Indent, doc.Concat(doc.Line(), rhs.Doc))))
	return Result{LBP: BPArrow, RBP: BPArrow, Doc: d}
}

// letBinding is one collected `let n := v` step (spec.md §4.3, "Let
// binding collection").
type letBinding struct {
	Name  string
	Value expr.Expr
}

// tryPrintLet recognizes a chained let spine encoded as nested Lambda/App
// pairs with the annotation-free "let" shape: App(Lambda(n, default, T, b), v).
// Plain have/show use the same App(Lambda, arg) shape but carry an
// annotation marker, so they're dispatched before this is ever tried.
func (p *Printer) tryPrintLet(ctx context.Context, e expr.Expr) (Result, bool) {
	if e.Annotation != expr.NoAnnotation || e.Fn.Kind != expr.KindLambda {
		return Result{}, false
	}
	var bindings []letBinding
	cur := e
	for cur.Kind == expr.KindApp && cur.Annotation == expr.NoAnnotation && cur.Fn.Kind == expr.KindLambda {
		lam := *cur.Fn
		value := *cur.Arg
		if !expr.ReferencesVar0(*lam.Body) {
			// Binding is dead: discard it and keep unwrapping (spec.md
			// §4.3 short-circuit for let collection).
			cur = expr.LiftLooseBVars(*lam.Body, -1)
			continue
		}
		fresh := p.purifier.FreshLocalName(lam.BinderName)
		local := expr.Local(fresh, fresh, *lam.Domain, lam.Info)
		bindings = append(bindings, letBinding{Name: fresh, Value: value})
		cur = expr.Instantiate(*lam.Body, local)
	}
	if len(bindings) == 0 {
		return Result{}, false
	}
	parts := make([]doc.Doc, 0, len(bindings)*2)
	for i, b := range bindings {
		if i > 0 {
			parts = append(parts, doc0(", "))
		}
		parts = append(parts, doc.Concat(doc0(b.Name), doc0(" := "), p.ppChild(ctx, b.Value, BPZero).Doc))
	}
	d := doc.Group(doc.Concat(
		doc.HighlightKeyword(doc0("let")), doc0(" "),
		doc.Concat(parts...),
		doc0(" in"),
		doc.Nest(p.options.Indent, doc.Concat(doc.Line(), p.ppChild(ctx, cur, BPZero).Doc)),
	))
	return Result{LBP: BPZero, RBP: BPZero, Doc: d}, true
}

// tryPrintHave recognizes the have-annotated shape
// App[annot=have](Lambda(n, info, T, body), proof) and prints
// `have n : T, from proof, body`.
func (p *Printer) tryPrintHave(ctx context.Context, e expr.Expr) (Result, bool) {
	if e.Annotation != expr.HaveAnnotation || e.Fn.Kind != expr.KindLambda {
		return Result{}, false
	}
	lam := *e.Fn
	proof := *e.Arg
	fresh := p.purifier.FreshLocalName(lam.BinderName)
	local := expr.Local(fresh, fresh, *lam.Domain, lam.Info)
	body := expr.Instantiate(*lam.Body, local)

	d := doc.Group(doc.Concat(
		doc.HighlightKeyword(doc0("have")), doc0(" "), doc0(fresh), doc0(" : "),
		p.ppChild(ctx, *lam.Domain, BPZero).Doc, doc0(","),
		doc.Nest(p.options.Indent, doc.Concat(
			doc.Line(), doc0("from "), p.ppChild(ctx, proof, BPZero).Doc, doc0(","),
			doc.Line(), p.ppChild(ctx, body, BPZero).Doc,
		)),
	))
	return Result{LBP: BPZero, RBP: BPZero, Doc: d}, true
}

// tryPrintShow recognizes the show-annotated shape
// App[annot=show](Lambda(_, info, T, _), proof) and prints `show T, from proof`,
// discarding the trivial identity body the kernel wraps the assertion in.
func (p *Printer) tryPrintShow(ctx context.Context, e expr.Expr) (Result, bool) {
	if e.Annotation != expr.ShowAnnotation || e.Fn.Kind != expr.KindLambda {
		return Result{}, false
	}
	lam := *e.Fn
	proof := *e.Arg
	d := doc.Group(doc.Concat(
		doc.HighlightKeyword(doc0("show")), doc0(" "), p.ppChild(ctx, *lam.Domain, BPZero).Doc, doc0(","),
		doc.Nest(p.options.Indent, doc.Concat(doc.Line(), doc0("from "), p.ppChild(ctx, proof, BPZero).Doc)),
	))
	return Result{LBP: BPZero, RBP: BPZero, Doc: d}, true
}
