package env

import (
	"testing"

	"github.com/epfl-lara/lean/expr"
	"github.com/epfl-lara/lean/name"
	"github.com/epfl-lara/lean/notation"
)

func TestMapEnvLookup(t *testing.T) {
	e := NewMapEnv()
	n := name.New("Nat", "add")
	e.Decls[n.String()] = Decl{Name: n, Type: expr.Const(name.New("T"))}

	d, ok := e.Lookup(n)
	if !ok {
		t.Fatal("expected Nat.add to be found")
	}
	if !d.Name.Equal(n) {
		t.Errorf("Lookup name = %v, want %v", d.Name, n)
	}
	if _, ok := e.Lookup(name.New("Nat", "mul")); ok {
		t.Error("Nat.mul should not be found")
	}
}

func TestMapEnvAliasAndShadowing(t *testing.T) {
	e := NewMapEnv()
	n := name.New("Nat", "add")
	e.Aliases[n.String()] = "+"
	alias, ok := e.Alias(n)
	if !ok || alias != "+" {
		t.Fatalf("Alias(Nat.add) = (%q, %v), want (+, true)", alias, ok)
	}

	ns := name.New("Nat")
	if e.AliasShadowed(ns, "+") {
		t.Error("alias should not be shadowed before any conflicting decl exists")
	}
	e.Decls[ns.Append("+").String()] = Decl{Name: ns.Append("+")}
	if !e.AliasShadowed(ns, "+") {
		t.Error("alias should be shadowed once Nat.+ is declared")
	}
}

func TestMapEnvHiddenToUser(t *testing.T) {
	e := NewMapEnv()
	internal := name.New("Nat", "_add_impl")
	user := name.New("Nat", "add")
	e.Hidden[internal.String()] = user
	got, ok := e.HiddenToUser(internal)
	if !ok || !got.Equal(user) {
		t.Fatalf("HiddenToUser = (%v, %v), want (%v, true)", got, ok, user)
	}
}

func TestMapEnvNotationsForHead(t *testing.T) {
	e := NewMapEnv()
	head := name.New("HAdd", "hAdd")
	e.Notations.Register(notation.Entry{Head: head, NumParams: 2})
	entries := e.NotationsForHead(head)
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
}

func TestMapEnvCoercionAndImpredicative(t *testing.T) {
	e := NewMapEnv()
	n := name.New("coe")
	e.Coercions[n.String()] = 2
	arity, ok := e.Coercion(n)
	if !ok || arity != 2 {
		t.Fatalf("Coercion(coe) = (%d, %v), want (2, true)", arity, ok)
	}
	if e.Impredicative() {
		t.Error("Impredicative_ defaults to false")
	}
	e.Impredicative_ = true
	if !e.Impredicative() {
		t.Error("Impredicative() should reflect Impredicative_")
	}
}
