package pp

import (
	"testing"

	"github.com/epfl-lara/lean/env"
	"github.com/epfl-lara/lean/expr"
	"github.com/epfl-lara/lean/name"
	"github.com/epfl-lara/lean/notation"
	"github.com/epfl-lara/lean/options"
	"github.com/epfl-lara/lean/typecheck"
)

// registerInfixAdd wires a two-slot infix "+" entry for Nat.add onto e,
// matching the pattern `Nat.add #1 #0` (BVar 1 is the left operand; BVar 0,
// the rightmost pattern variable, is the right operand) with both the token's left- and right-binding
// power set to 60, so a same-precedence operand on the right needs parens
// while the left operand, as an atom, does not.
func registerInfixAdd(e *env.MapEnv) name.Name {
	head := name.New("Nat", "add")
	pattern := expr.App(expr.App(expr.Const(head), expr.BVar(1)), expr.BVar(0))
	e.Notations.Register(notation.Entry{
		Head:          head,
		Pattern:       pattern,
		NumParams:     2,
		IsNud:         false,
		ASCIISafe:     true,
		FirstTokenLBP: 60,
		Transitions: []notation.Transition{
			{Token: " +", Action: notation.Expr, TokenLBP: 60, RBP: 60},
		},
	})
	return head
}

func TestNotationMatchAndRenderPrintsInfixForm(t *testing.T) {
	e := env.NewMapEnv()
	head := registerInfixAdd(e)
	p := New(e, typecheck.NullChecker{}, options.Default())

	a, b := expr.Const(name.New("a")), expr.Const(name.New("b"))
	term := expr.App(expr.App(expr.Const(head), a), b)

	if got, want := render(t, p, term), "a + b"; got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestNotationRenderParenthesizesSamePrecedenceRightChild(t *testing.T) {
	e := env.NewMapEnv()
	head := registerInfixAdd(e)
	p := New(e, typecheck.NullChecker{}, options.Default())

	a, b, c := expr.Const(name.New("a")), expr.Const(name.New("b")), expr.Const(name.New("c"))
	inner := expr.App(expr.App(expr.Const(head), b), c)
	outer := expr.App(expr.App(expr.Const(head), a), inner)

	if got, want := render(t, p, outer), "a + (b + c)"; got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestNotationSkippedWhenASCIIUnsafeAndUnicodeOff(t *testing.T) {
	e := env.NewMapEnv()
	head := name.New("Nat", "add")
	pattern := expr.App(expr.App(expr.Const(head), expr.BVar(1)), expr.BVar(0))
	e.Notations.Register(notation.Entry{
		Head:          head,
		Pattern:       pattern,
		NumParams:     2,
		IsNud:         false,
		ASCIISafe:     false, // e.g. a unicode-only "⊕" spelling
		FirstTokenLBP: 60,
		Transitions: []notation.Transition{
			{Token: " ⊕", Action: notation.Expr, TokenLBP: 60, RBP: 60},
		},
	})

	asciiOpts := options.Default()
	asciiOpts.Unicode = false
	p := New(e, typecheck.NullChecker{}, asciiOpts)

	a, b := expr.Const(name.New("a")), expr.Const(name.New("b"))
	term := expr.App(expr.App(expr.Const(head), a), b)

	// tryNotation must skip the ASCII-unsafe entry and fall back to
	// structural application printing.
	if got, want := render(t, p, term), "Nat.add a b"; got != want {
		t.Errorf("render = %q, want %q (structural fallback)", got, want)
	}
}
