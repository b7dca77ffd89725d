package pp

import (
	"context"

	"github.com/epfl-lara/lean/doc"
	"github.com/epfl-lara/lean/expr"
)

// printMacro prints an opaque macro constructor: inlined when written
// with an explicit `@` annotation, otherwise as `[name arg...]`
// (spec.md §4.3).
func (p *Printer) printMacro(ctx context.Context, e expr.Expr) Result {
	if e.ExplicitAnnot && len(e.MacroArgs) > 0 {
		return p.pp(ctx, e.MacroArgs[len(e.MacroArgs)-1])
	}
	parts := make([]doc.Doc, 0, len(e.MacroArgs)+1)
	parts = append(parts, doc0("["), doc0(e.MacroName))
	for _, a := range e.MacroArgs {
		parts = append(parts, doc0(" "), p.ppChild(ctx, a, BPMax).Doc)
	}
	parts = append(parts, doc0("]"))
	return atom(doc.Concat(parts...))
}
