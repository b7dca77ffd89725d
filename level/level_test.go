package level

import "testing"

func TestAsNat(t *testing.T) {
	cases := []struct {
		l    Level
		n    int
		isOk bool
	}{
		{MkZero(), 0, true},
		{MkSucc(MkZero()), 1, true},
		{MkSucc(MkSucc(MkZero())), 2, true},
		{MkParam("u"), 0, false},
		{MkMax(MkZero(), MkParam("u")), 0, false},
	}
	for _, c := range cases {
		n, ok := c.l.AsNat()
		if n != c.n || ok != c.isOk {
			t.Errorf("%v.AsNat() = (%d, %v), want (%d, %v)", c.l, n, ok, c.n, c.isOk)
		}
	}
}

func TestIsMaxLike(t *testing.T) {
	if MkZero().IsMaxLike() {
		t.Error("zero should not be max-like")
	}
	if !MkMax(MkZero(), MkZero()).IsMaxLike() {
		t.Error("max should be max-like")
	}
	if !MkIMax(MkZero(), MkZero()).IsMaxLike() {
		t.Error("imax should be max-like")
	}
}

func TestHasMvar(t *testing.T) {
	if MkZero().HasMvar() {
		t.Error("zero has no mvar")
	}
	if !MkSucc(MkMvar("m")).HasMvar() {
		t.Error("succ(mvar) should report a metavariable")
	}
	if !MkMax(MkZero(), MkMvar("m")).HasMvar() {
		t.Error("max with an mvar arm should report a metavariable")
	}
}

func TestMapMvars(t *testing.T) {
	l := MkSucc(MkMvar("a"))
	out := l.MapMvars(func(n string) Level { return MkParam("p_" + n) })
	want := MkSucc(MkParam("p_a"))
	if !out.Equal(want) {
		t.Errorf("MapMvars = %v, want %v", out, want)
	}
}

func TestEqual(t *testing.T) {
	if !MkSucc(MkZero()).Equal(MkSucc(MkZero())) {
		t.Error("structurally identical levels should be equal")
	}
	if MkSucc(MkZero()).Equal(MkZero()) {
		t.Error("succ(zero) should not equal zero")
	}
	if !MkParam("u").Equal(MkParam("u")) {
		t.Error("same-named params should be equal")
	}
	if MkParam("u").Equal(MkParam("v")) {
		t.Error("differently named params should not be equal")
	}
}

func TestString(t *testing.T) {
	if got, want := MkSucc(MkSucc(MkZero())).String(), "2"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := MkParam("u").String(), "u"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := MkMvar("m").String(), "?m"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
