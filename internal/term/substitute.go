package term

// Substitute performs the body-level work of a β-step
// (λ. body) arg → body[1 ↦ arg]: it replaces every free occurrence of
// index 1 in body (as seen from body's own top level) by replacement,
// shifted to account for however many binders separate that
// occurrence from body's top level.
//
// The substitution tracks a target index (the de Bruijn index that
// currently denotes "the binder body was abstracted over", starting
// at 1 and incremented every time the walk descends under a Lambda)
// and caches one pre-shifted copy of replacement per depth it
// encounters, since the same replacement is frequently needed again at
// the same depth and recomputing shift(1, target-1, replacement) from
// scratch each time would make substitution quadratic in term size.
func Substitute(a *Arena, replacement, body Handle) Handle {
	sv := &substituteVisitor{a: a, target: 1, replacement: replacement, cache: map[uint64]Handle{}}
	return Accept(a, body, sv)
}

type substituteVisitor struct {
	a           *Arena
	target      uint64
	replacement Handle
	cache       map[uint64]Handle
}

func (s *substituteVisitor) shiftedReplacement() Handle {
	if h, ok := s.cache[s.target]; ok {
		return h
	}
	h := Shift(s.a, 1, int64(s.target)-1, s.replacement)
	s.cache[s.target] = h
	return h
}

func (s *substituteVisitor) VisitVariable(original Handle, index uint64) Handle {
	if index == s.target {
		return s.shiftedReplacement()
	}
	return original
}

func (s *substituteVisitor) VisitLambda(original Handle, name string, body Handle) Handle {
	s.target++
	newBody := Accept(s.a, body, s)
	s.target--
	if newBody == body {
		return original
	}
	return s.a.NewLambda(name, newBody)
}

func (s *substituteVisitor) VisitApplication(original Handle, fn, arg Handle) Handle {
	newFn := Accept(s.a, fn, s)
	newArg := Accept(s.a, arg, s)
	if newFn == fn && newArg == arg {
		return original
	}
	return s.a.NewApplication(newFn, newArg)
}
