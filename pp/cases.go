package pp

import (
	"context"
	"strconv"

	"fortio.org/log"

	"github.com/epfl-lara/lean/doc"
	"github.com/epfl-lara/lean/expr"
	"github.com/epfl-lara/lean/level"
	"github.com/epfl-lara/lean/name"
)

func (p *Printer) printBVar(e expr.Expr) Result {
	return atom(doc0("#" + strconv.Itoa(e.Idx)))
}

func (p *Printer) printSort(e expr.Expr) Result {
	if n, ok := e.Level.AsNat(); ok && n == 0 {
		if p.env != nil && p.env.Impredicative() {
			return atom(doc0("Prop"))
		}
	}
	kw := "Type"
	if !p.options.Universes {
		return atom(doc0(kw))
	}
	return atom(doc.Concat(doc0(kw), doc0(".{"), levelDocBare(e.Level), doc0("}")))
}

func (p *Printer) printMVar(e expr.Expr) Result {
	return atom(doc.Concat(doc0("?"), doc0(e.Name.String())))
}

func (p *Printer) printLocal(e expr.Expr) Result {
	return atom(doc0(e.UserName))
}

func (p *Printer) printLit(e expr.Expr) Result {
	switch e.LitKind {
	case expr.LitString:
		return atom(doc0(strconv.Quote(e.LitStr)))
	default:
		return atom(doc0(strconv.FormatUint(e.LitNat, 10)))
	}
}

func (p *Printer) printConst(e expr.Expr) Result {
	displayName := e.Name
	if !p.options.PrivateNames && p.env != nil {
		if u, ok := p.env.HiddenToUser(displayName); ok {
			displayName = u
		}
	}
	if !p.options.FullNames {
		displayName = p.shortenConstantName(displayName)
	}
	d := doc0(displayName.String())
	if p.options.Universes && len(e.Levels) > 0 {
		parts := make([]doc.Doc, 0, 2*len(e.Levels)-1)
		for i, l := range e.Levels {
			if i > 0 {
				parts = append(parts, doc0(" "))
			}
			parts = append(parts, levelDoc(l))
		}
		d = doc.Concat(d, doc0(".{"), doc.Concat(parts...), doc0("}"))
	}
	return atom(d)
}

// shortenConstantName implements spec.md §4.3's "Constant name shortening":
// try a non-shadowed registered alias first, else strip the longest active
// namespace prefix that leaves a non-empty residual.
func (p *Printer) shortenConstantName(n name.Name) name.Name {
	if p.env == nil {
		return n
	}
	if alias, ok := p.env.Alias(n); ok {
		shadowed := false
		for _, ns := range p.env.OpenNamespaces() {
			if p.env.AliasShadowed(ns, alias) {
				shadowed = true
				break
			}
		}
		if !shadowed {
			return name.Parse(alias)
		}
	}
	best := n
	bestLen := best.NumParts()
	for _, ns := range p.env.OpenNamespaces() {
		residual, ok := ns.StripPrefix(n)
		if !ok || residual.IsAnonymous() {
			continue
		}
		if residual.NumParts() < bestLen {
			best = residual
			bestLen = residual.NumParts()
		}
	}
	return best
}

// levelDoc prints a universe level, parenthesizing a max/imax shape when
// it appears as one of several space-separated level arguments.
func levelDoc(l level.Level) doc.Doc {
	if l.IsMaxLike() {
		return doc.Paren(levelDocBare(l))
	}
	return levelDocBare(l)
}

func levelDocBare(l level.Level) doc.Doc {
	return doc0(l.String())
}

func (p *Printer) printApp(ctx context.Context, e expr.Expr) Result {
	headDoc := p.ppChild(ctx, *e.Fn, BPMax-1)
	if p.options.Implicit && e.Fn.Kind != expr.KindApp {
		if p.headHasImplicitParams(ctx, *e.Fn) {
			headDoc.Doc = doc.Concat(doc0("@"), headDoc.Doc)
		}
	}
	argDoc := p.ppChild(ctx, *e.Arg, BPMax)
	d := doc.Group(doc.Concat(
		headDoc.Doc,
		doc.Nest(p.options.Indent, doc.Concat(doc.Line(), argDoc.Doc)),
	))
	return Result{LBP: BPMax - 1, RBP: BPMax - 1, Doc: d}
}

// headHasImplicitParams reports whether head's inferred type begins with
// an implicit Pi binder, the trigger for the `@` explicit-application
// marker (spec.md §4.3). Type-checker failure degrades to "no", per §7.
func (p *Printer) headHasImplicitParams(ctx context.Context, head expr.Expr) bool {
	t, err := p.checker.Infer(ctx, head)
	if err != nil {
		log.Debugf("pp: infer failed for @-marker check on %v, treating as not-implicit: %v", head, err)
		return false
	}
	info, _, ok, err := p.checker.EnsurePi(ctx, t)
	if err != nil || !ok {
		if err != nil {
			log.Debugf("pp: ensurePi failed for @-marker check on %v, treating as not-implicit: %v", head, err)
		}
		return false
	}
	return info.IsImplicit()
}
