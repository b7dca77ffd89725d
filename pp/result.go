package pp

import "github.com/epfl-lara/lean/doc"

// Binding-power constants (spec.md §4.3, glossary "Binding power").
// BPMax denotes atomic syntax (never needs parens around itself);
// applications bind one step looser on the left than on the right, and
// the arrow/let/lambda/Pi forms sit near the bottom of the scale.
const (
	BPZero  = 0
	BPArrow = 25
	BPMax   = 1024
)

// Result is the (lbp, rbp, document) triple every case/notation printer
// returns (spec.md §3, "Print result"). lbp/rbp gate whether a surrounding
// context must parenthesize this fragment.
type Result struct {
	LBP int
	RBP int
	Doc doc.Doc
}

func atom(d doc.Doc) Result {
	return Result{LBP: BPMax, RBP: BPMax, Doc: d}
}
