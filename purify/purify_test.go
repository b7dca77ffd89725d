package purify

import (
	"testing"

	"github.com/epfl-lara/lean/binder"
	"github.com/epfl-lara/lean/expr"
	"github.com/epfl-lara/lean/level"
	"github.com/epfl-lara/lean/name"
)

func TestPurifyShortCircuitsWhenNothingToRename(t *testing.T) {
	p := New()
	e := expr.App(expr.Const(name.New("f")), expr.BVar(0))
	out := p.Purify(e, false)
	if !expr.Structural(e, out) {
		t.Errorf("a term with no mvars/locals should come back unchanged: got %+v", out)
	}
}

func TestPurifyRenamesMetavariablesDeterministically(t *testing.T) {
	p := New()
	m1 := expr.MVar("internal_1", expr.Sort(level.MkZero()))
	m2 := expr.MVar("internal_2", expr.Sort(level.MkZero()))
	e := expr.App(p.Purify(m1, false), p.Purify(m2, false))
	if e.Fn.Name.String() != "M1" {
		t.Errorf("first metavariable = %q, want M1", e.Fn.Name.String())
	}
	if e.Arg.Name.String() != "M2" {
		t.Errorf("second metavariable = %q, want M2", e.Arg.Name.String())
	}

	// Purifying the same metavariable again must return the same display name.
	again := p.Purify(m1, false)
	if again.Name.String() != "M1" {
		t.Errorf("re-purifying internal_1 = %q, want M1 (stable)", again.Name.String())
	}
}

func TestPurifyRenamesCollidingLocals(t *testing.T) {
	p := New()
	l1 := expr.Local("l1", "x", expr.Sort(level.MkZero()), binder.Default)
	l2 := expr.Local("l2", "x", expr.Sort(level.MkZero()), binder.Default)

	out1 := p.Purify(l1, false)
	out2 := p.Purify(l2, false)
	if out1.UserName != "x" {
		t.Errorf("first local should keep its suggested name, got %q", out1.UserName)
	}
	if out2.UserName == "x" || out2.UserName == "" {
		t.Errorf("second colliding local should be renamed away from \"x\", got %q", out2.UserName)
	}
}

func TestFreshLocalNameAvoidsCollisions(t *testing.T) {
	p := New()
	p.Reserve("x")
	fresh := p.FreshLocalName("x")
	if fresh == "x" {
		t.Error("FreshLocalName should not reuse a reserved name")
	}
	// The returned name must itself now be reserved.
	again := p.FreshLocalName(fresh)
	if again == fresh {
		t.Error("FreshLocalName should not return the same name twice")
	}
}

func TestPurifyLevelRenamesMvarsWhenUniversesOn(t *testing.T) {
	p := New()
	e := expr.Sort(level.MkMvar("u"))
	out := p.Purify(e, true)
	if out.Level.Kind != level.Mvar || out.Level.Name != "M1" {
		t.Errorf("purified level = %+v, want mvar M1", out.Level)
	}
}

func TestPurifyLevelUntouchedWhenUniversesOff(t *testing.T) {
	p := New()
	e := expr.Sort(level.MkMvar("u"))
	out := p.Purify(e, false)
	if out.Level.Name != "u" {
		t.Errorf("with universes off, the sort's level should be left alone, got %+v", out.Level)
	}
}
