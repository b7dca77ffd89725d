package pp

import (
	"context"

	"github.com/epfl-lara/lean/doc"
	"github.com/epfl-lara/lean/expr"
	"github.com/epfl-lara/lean/notation"
)

// renderNotation walks entry's transition list right-to-left (spec.md
// §4.6): slots are consumed from the end of the vector backwards, which
// is where a BVar pattern with index 0 (conventionally the rightmost
// pattern variable) was bound during matching. Unsupported action kinds
// abort the whole attempt so the caller falls back to structural
// printing.
func (p *Printer) renderNotation(ctx context.Context, entry notation.Entry, slots []*expr.Expr) (Result, bool) {
	n := len(entry.Transitions)
	if n == 0 {
		return Result{}, false
	}
	pieces := make([]doc.Doc, n)
	nextSlot := entry.NumParams - 1
	lastRBP := BPMax

	for i := n - 1; i >= 0; i-- {
		tr := entry.Transitions[i]
		if !tr.Action.Supported() {
			return Result{}, false
		}
		switch tr.Action {
		case notation.Skip:
			pieces[i] = doc0(tr.Token)
			if i == n-1 {
				lastRBP = tr.TokenLBP
			}
		case notation.Expr:
			if nextSlot < 0 || nextSlot >= len(slots) || slots[nextSlot] == nil {
				return Result{}, false
			}
			child := p.ppNotationChild(ctx, *slots[nextSlot], tr.TokenLBP, tr.RBP)
			pieces[i] = doc.Concat(doc0(tr.Token), doc0(" "), child.Doc)
			if i == n-1 {
				lastRBP = tr.RBP
			}
			nextSlot--
		}
	}

	body := doc.Concat(pieces...)
	if !entry.IsNud {
		if nextSlot < 0 || nextSlot >= len(slots) || slots[nextSlot] == nil {
			return Result{}, false
		}
		left := p.ppNotationChild(ctx, *slots[nextSlot], BPZero, entry.FirstTokenLBP)
		body = doc.Concat(left.Doc, body)
	}

	return Result{LBP: entry.FirstTokenLBP, RBP: lastRBP, Doc: body}, true
}
