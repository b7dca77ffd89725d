package pp

import (
	"context"

	"fortio.org/log"

	"github.com/epfl-lara/lean/expr"
)

// tryNotation is the top-level driver's notation-consultation step
// (spec.md §4.7, step 3): enumerate entries registered for e's head,
// skip non-ASCII-safe ones when unicode display is off, and take the
// first entry whose pattern matches and whose renderer succeeds.
func (p *Printer) tryNotation(ctx context.Context, e expr.Expr) (Result, bool) {
	if p.env == nil {
		return Result{}, false
	}
	head, _ := expr.AppSpine(e)
	if head.Kind != expr.KindConst {
		return Result{}, false
	}
	for _, entry := range p.env.NotationsForHead(head.Name) {
		if !p.options.Unicode && !entry.ASCIISafe {
			continue
		}
		slots, ok := p.matchNotation(ctx, entry, e)
		if !ok {
			log.Debugf("pp: notation %q did not match head %s", entry.Head, head.Name)
			continue
		}
		r, ok := p.renderNotation(ctx, entry, slots)
		if !ok {
			log.Debugf("pp: notation %q matched head %s but rendering declined, falling through", entry.Head, head.Name)
			continue
		}
		log.Debugf("pp: notation %q applied to head %s", entry.Head, head.Name)
		return r, true
	}
	return Result{}, false
}
