package eval

import (
	"strings"
	"testing"

	"github.com/lc-lang/golc/internal/term"
)

func churchNumeral(a *term.Arena, n int) term.Handle {
	body := term.NewVariable(1) // x
	for i := 0; i < n; i++ {
		body = a.NewApplication(term.NewVariable(2), body) // f (... )
	}
	return a.NewLambda("f", a.NewLambda("x", body))
}

// churchPlus builds λm.λn.λf.λx. (m f) ((n f) x).
func churchPlus(a *term.Arena) term.Handle {
	// de Bruijn indices from the innermost binder (x) outward: x=1 f=2 n=3 m=4
	nf := a.NewApplication(term.NewVariable(3), term.NewVariable(2))
	nfx := a.NewApplication(nf, term.NewVariable(1))
	mf := a.NewApplication(term.NewVariable(4), term.NewVariable(2))
	mfNfx := a.NewApplication(mf, nfx)
	return a.NewLambda("m", a.NewLambda("n", a.NewLambda("f", a.NewLambda("x", mfNfx))))
}

func TestNormalizeIdentityAppliedToVariable(t *testing.T) {
	a := term.NewArena()
	y := a.NewLambda("a", term.NewVariable(1))
	id := a.NewLambda("x", term.NewVariable(1))
	redex := a.NewApplication(id, y)
	result := Normalize(a, redex, Options{})
	if result.Interrupted {
		t.Fatalf("normalization was interrupted unexpectedly")
	}
	if !term.AlphaEqual(a, result.Term, a, y) {
		t.Fatalf("(\\x.x) y did not normalize to y")
	}
}

func TestNormalizeFixpoint(t *testing.T) {
	a := term.NewArena()
	id := a.NewLambda("x", term.NewVariable(1))
	first := Normalize(a, id, Options{})
	second := Normalize(a, first.Term, Options{})
	if second.Term != first.Term {
		t.Fatalf("re-normalizing a normal form reallocated it")
	}
	if second.Steps != 1 {
		t.Fatalf("re-normalizing a normal form took %d steps, want 1 (to observe no change)", second.Steps)
	}
}

func TestNormalizeChurchAddition(t *testing.T) {
	for a2 := 0; a2 <= 3; a2++ {
		for b2 := 0; b2 <= 3; b2++ {
			arena := term.NewArena()
			plus := churchPlus(arena)
			expr := arena.NewApplication(arena.NewApplication(plus, churchNumeral(arena, a2)), churchNumeral(arena, b2))
			result := Normalize(arena, expr, Options{})
			want := churchNumeral(arena, a2+b2)
			if !term.AlphaEqual(arena, result.Term, arena, want) {
				t.Fatalf("plus %d %d did not normalize to church %d", a2, b2, a2+b2)
			}
		}
	}
}

// cancelAfterFirstWrite sets a CancelFlag the first time a step trace
// line is written, simulating the cancel flag flipping after the
// first outer-loop iteration.
type cancelAfterFirstWrite struct {
	cancel *CancelFlag
	fired  bool
}

func (w *cancelAfterFirstWrite) Write(p []byte) (int, error) {
	if !w.fired {
		w.fired = true
		w.cancel.Set()
	}
	return len(p), nil
}

func TestNormalizeCancellation(t *testing.T) {
	a := term.NewArena()
	// The omega combinator: (\x. x x) (\x. x x) never reaches normal form.
	selfApp := a.NewLambda("x", a.NewApplication(term.NewVariable(1), term.NewVariable(1)))
	omega := a.NewApplication(selfApp, selfApp)

	cancel := &CancelFlag{}
	w := &cancelAfterFirstWrite{cancel: cancel}
	result := Normalize(a, omega, Options{TraceWriter: w, Cancel: cancel})
	if !result.Interrupted {
		t.Fatalf("expected interruption, normalization ran to completion")
	}
	if result.Steps != 1 {
		t.Fatalf("expected interruption after 1 step, got %d", result.Steps)
	}
}

func TestNormalizeTraceWritesOneLinePerStep(t *testing.T) {
	a := term.NewArena()
	id := a.NewLambda("x", term.NewVariable(1))
	redex := a.NewApplication(id, id)
	var b strings.Builder
	result := Normalize(a, redex, Options{TraceWriter: &b})
	if result.Steps < 2 {
		t.Fatalf("expected at least 2 steps, got %d", result.Steps)
	}
	lines := strings.Count(b.String(), "\n")
	if lines != result.Steps {
		t.Fatalf("trace wrote %d lines, want %d (one per step)", lines, result.Steps)
	}
}
