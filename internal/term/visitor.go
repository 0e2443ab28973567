package term

// Visitor is the single dispatch protocol every term transform
// implements: one callback per term shape, each given the original
// handle plus its unpacked fields. Returning the original handle
// unchanged from a callback is the identity optimization (spec §4.2,
// §4.3, §4.4): it lets Accept's caller skip reallocating a parent
// cell when nothing beneath it actually changed, which the normalizer
// relies on to detect a fixpoint without a structural walk.
type Visitor[T any] interface {
	VisitVariable(original Handle, index uint64) T
	VisitLambda(original Handle, name string, body Handle) T
	VisitApplication(original Handle, fn, arg Handle) T
}

// Accept unpacks h once and dispatches to the matching callback on v.
// Shift, Substitute and internal/eval's reducers go through Accept;
// read-only walks (AlphaEqual, internal/printer, internal/blc's
// encoder) call Arena.Unpack directly. Either way the discrimination
// rule lives in exactly one place (Arena.Unpack).
func Accept[T any](a *Arena, h Handle, v Visitor[T]) T {
	n := a.Unpack(h)
	switch n.Kind {
	case KindVariable:
		return v.VisitVariable(h, n.Index)
	case KindLambda:
		return v.VisitLambda(h, n.Name, n.Left)
	default:
		return v.VisitApplication(h, n.Left, n.Right)
	}
}
