package printer

import (
	"testing"

	"github.com/lc-lang/golc/internal/term"
)

func TestPrintIdentity(t *testing.T) {
	a := term.NewArena()
	id := a.NewLambda("a", term.NewVariable(1))
	got := Print(a, id)
	if got != `\a.a` {
		t.Fatalf("Print(identity) = %q, want %q", got, `\a.a`)
	}
}

func TestPrintApplication(t *testing.T) {
	a := term.NewArena()
	id := a.NewLambda("a", term.NewVariable(1))
	y := a.NewLambda("a", term.NewVariable(1))
	app := a.NewApplication(id, y)
	got := Print(a, app)
	if got != `(\a.a \a.a)` {
		t.Fatalf("Print(application) = %q, want %q", got, `(\a.a \a.a)`)
	}
}

func TestPrintFreeVariableFallsBackToIndex(t *testing.T) {
	a := term.NewArena()
	free := term.NewVariable(4)
	if got := Print(a, free); got != "4" {
		t.Fatalf("Print(free) = %q, want %q", got, "4")
	}
}

func TestPrintShadowingAddsPrimes(t *testing.T) {
	a := term.NewArena()
	// \x. \x. x -- the inner x shadows the outer one.
	inner := a.NewLambda("x", term.NewVariable(1))
	outer := a.NewLambda("x", inner)
	got := Print(a, outer)
	want := `\x.\x′.x′`
	if got != want {
		t.Fatalf("Print(shadowed) = %q, want %q", got, want)
	}
}

func TestPrintGlyphMode(t *testing.T) {
	a := term.NewArena()
	id := a.NewLambda("a", term.NewVariable(1))
	p := New(Options{Glyph: true})
	if got := p.Print(a, id); got != "λa.a" {
		t.Fatalf("Print(glyph) = %q, want %q", got, "λa.a")
	}
}

func TestPrintAlwaysIndex(t *testing.T) {
	a := term.NewArena()
	id := a.NewLambda("a", term.NewVariable(1))
	p := New(Options{AlwaysIndex: true})
	if got := p.Print(a, id); got != `\a.1` {
		t.Fatalf("Print(always-index) = %q, want %q", got, `\a.1`)
	}
}

func TestPrintNegativeIndex(t *testing.T) {
	a := term.NewArena()
	free := term.NewVariable(4)
	p := New(Options{NegativeIndex: true})
	if got := p.Print(a, free); got != "-4" {
		t.Fatalf("Print(negative-index free) = %q, want %q", got, "-4")
	}
}

func TestPrintNegativeIndexOnlyAffectsRendering(t *testing.T) {
	a := term.NewArena()
	id := a.NewLambda("a", term.NewVariable(1))
	p := New(Options{AlwaysIndex: true, NegativeIndex: true})
	if got := p.Print(a, id); got != `\a.-1` {
		t.Fatalf("Print(always+negative index) = %q, want %q", got, `\a.-1`)
	}
}
