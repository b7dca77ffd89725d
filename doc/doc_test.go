package doc

import "testing"

func TestRenderFlat(t *testing.T) {
	d := Group(Concat(Text("a"), Line(), Text("b")))
	if got, want := Render(d, 80), "a b"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderBreaksWhenTooWide(t *testing.T) {
	d := Group(Concat(Text("aaaa"), Line(), Text("bbbb")))
	got := Render(d, 5)
	want := "aaaa\nbbbb"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestNestIndentsBrokenLines(t *testing.T) {
	d := Group(Concat(Text("head"), Nest(2, Concat(Line(), Text("tail")))))
	got := Render(d, 1)
	want := "head\n  tail"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestSoftLineCollapsesToNothing(t *testing.T) {
	d := Group(Concat(Text("a"), SoftLine(), Text("b")))
	if got, want := Render(d, 80), "ab"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestParen(t *testing.T) {
	if got, want := Render(Paren(Text("x")), 80), "(x)"; got != want {
		t.Errorf("Render(Paren(x)) = %q, want %q", got, want)
	}
}

func TestRenderMeasuresUnicodeWidth(t *testing.T) {
	// A lambda glyph is one display column wide (though two bytes), so each
	// spelling fits flat at exactly its own display width.
	uni := Group(Concat(Text("λ"), Line(), Text("x")))
	ascii := Group(Concat(Text("fun"), Line(), Text("x")))
	if got, want := Render(uni, 3), "λ x"; got != want {
		t.Errorf("Render(unicode) = %q, want %q", got, want)
	}
	if got, want := Render(ascii, 5), "fun x"; got != want {
		t.Errorf("Render(ascii) = %q, want %q", got, want)
	}
}

func TestRenderOfNilIsEmpty(t *testing.T) {
	if got := Render(Nil, 80); got != "" {
		t.Errorf("Render(Nil) = %q, want empty", got)
	}
}
