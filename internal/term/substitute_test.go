package term

import "testing"

func TestSubstituteReplacesTarget(t *testing.T) {
	a := NewArena()
	replacement := NewVariable(9)
	result := Substitute(a, replacement, NewVariable(1))
	if result != replacement {
		t.Fatalf("Substitute did not return the replacement handle verbatim")
	}
}

func TestSubstituteIdentityOptimization(t *testing.T) {
	a := NewArena()
	body := NewVariable(2) // free variable 2 never matches target 1
	result := Substitute(a, NewVariable(99), body)
	if result != body {
		t.Fatalf("Substitute reallocated a term not containing the target")
	}
}

func TestSubstituteShiftsReplacementUnderBinders(t *testing.T) {
	a := NewArena()
	// \y. x   where x is the target (free index 1 as seen from the body
	// of the outer binder that used to abstract over it).
	body := a.NewLambda("y", NewVariable(2))
	replacement := NewVariable(5)
	result := Substitute(a, replacement, body)
	n := a.Unpack(result)
	if n.Kind != KindLambda {
		t.Fatalf("Kind = %v, want KindLambda", n.Kind)
	}
	inner := a.Unpack(n.Left)
	if inner.Kind != KindVariable || inner.Index != 6 {
		t.Fatalf("substituted body = %+v, want Variable(6)", inner)
	}
}

func TestSubstituteCachesRepeatedDepth(t *testing.T) {
	a := NewArena()
	// \y. (x x)  -- two occurrences of the target at the same depth
	// must both resolve to the same, identically-shifted replacement.
	occurrence := NewVariable(2)
	body := a.NewLambda("y", a.NewApplication(occurrence, occurrence))
	result := Substitute(a, NewVariable(3), body)
	n := a.Unpack(result)
	app := a.Unpack(n.Left)
	if app.Left != app.Right {
		t.Fatalf("two occurrences at the same depth produced different handles")
	}
}
