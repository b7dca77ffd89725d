package notation

import (
	"testing"

	"github.com/epfl-lara/lean/expr"
	"github.com/epfl-lara/lean/name"
)

func TestActionKindSupported(t *testing.T) {
	cases := []struct {
		a    ActionKind
		want bool
	}{
		{Skip, true},
		{Expr, true},
		{Exprs, false},
		{Binder, false},
		{Binders, false},
		{ScopedExpr, false},
		{Ext, false},
		{LuaExt, false},
	}
	for _, c := range cases {
		if got := c.a.Supported(); got != c.want {
			t.Errorf("%v.Supported() = %v, want %v", c.a, got, c.want)
		}
	}
}

func TestPlaceholder(t *testing.T) {
	p := Placeholder()
	if !IsPlaceholder(p) {
		t.Error("Placeholder() should be its own IsPlaceholder")
	}
	if IsPlaceholder(expr.Const(name.New("f"))) {
		t.Error("an ordinary constant should not be a placeholder")
	}
	if IsPlaceholder(expr.Macro("_", false, expr.BVar(0))) {
		t.Error("a macro literally named \"_\" with args is not the wildcard placeholder")
	}
}

func TestMapTableRegisterAndLookup(t *testing.T) {
	table := MapTable{}
	head := name.New("Add", "add")
	e1 := Entry{Head: head, NumParams: 2}
	e2 := Entry{Head: head, NumParams: 2, IsNumeral: true}
	table.Register(e1)
	table.Register(e2)

	entries := table.EntriesForHead(head)
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].IsNumeral || !entries[1].IsNumeral {
		t.Error("entries should be returned in registration order")
	}
	if got := table.EntriesForHead(name.New("Other")); got != nil {
		t.Errorf("unregistered head should return nil, got %v", got)
	}
}
