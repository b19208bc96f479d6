package types

import "testing"

func TestGlyphsOf(t *testing.T) {
	t.Parallel()

	g := GlyphsOf("nfr-f:r")
	if g.Mdc != "nfr-f:r" {
		t.Fatalf("mdc=%q", g.Mdc)
	}
	if g.Unicode != "nfr-f:r" {
		t.Fatalf("unicode=%q", g.Unicode)
	}
	if g.IsEmpty() {
		t.Fatal("expected non-empty glyphs")
	}
}

func TestGlyphsIsEmpty(t *testing.T) {
	t.Parallel()

	if !(Glyphs{}).IsEmpty() {
		t.Fatal("expected empty")
	}
	if !(Glyphs{Unicode: "  ", Mdc: "\t"}).IsEmpty() {
		t.Fatal("expected blank strings to count as empty")
	}
	if (Glyphs{Svg: "<svg/>"}).IsEmpty() != true {
		t.Fatal("svg alone does not make glyphs non-empty")
	}
	if (Glyphs{Unicode: "𓄤"}).IsEmpty() {
		t.Fatal("expected non-empty")
	}
}
