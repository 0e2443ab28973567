package term

import "github.com/golang/glog"

// Shift renumbers every free Variable in h by offset: an index i with
// i >= cutoff becomes i + offset, and indices below cutoff (already
// captured by a binder outside the shifted subterm) are left alone.
// Descending under a Lambda increments the cutoff by one. A sub-result
// that equals its input by reference is reused rather than
// reallocated (spec §4.3's identity optimization).
//
// The only caller allowed to pass a negative offset is the β-step's
// post-substitution unshift, and only under the invariant that every
// free index it touches is >= 2 before the shift (so the result never
// dips below 1).
func Shift(a *Arena, cutoff uint64, offset int64, h Handle) Handle {
	return Accept(a, h, shiftVisitor{a: a, cutoff: cutoff, offset: offset})
}

type shiftVisitor struct {
	a      *Arena
	cutoff uint64
	offset int64
}

func (s shiftVisitor) VisitVariable(original Handle, index uint64) Handle {
	if index < s.cutoff {
		return original
	}
	shifted := int64(index) + s.offset
	if shifted < 1 {
		glog.Fatalf("term: shift produced a non-positive variable index (%d + %d)", index, s.offset)
	}
	return NewVariable(uint64(shifted))
}

func (s shiftVisitor) VisitLambda(original Handle, name string, body Handle) Handle {
	inner := shiftVisitor{a: s.a, cutoff: s.cutoff + 1, offset: s.offset}
	newBody := Accept(s.a, body, inner)
	if newBody == body {
		return original
	}
	return s.a.NewLambda(name, newBody)
}

func (s shiftVisitor) VisitApplication(original Handle, fn, arg Handle) Handle {
	newFn := Accept(s.a, fn, s)
	newArg := Accept(s.a, arg, s)
	if newFn == fn && newArg == arg {
		return original
	}
	return s.a.NewApplication(newFn, newArg)
}
