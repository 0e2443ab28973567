// Package eval implements the normal-order reducer: weak-head and
// strong reduction over internal/term handles, and the step-bounded,
// cancellable outer loop that drives a term to β-normal form.
package eval

import (
	"fmt"
	"io"

	"github.com/lc-lang/golc/internal/printer"
	"github.com/lc-lang/golc/internal/term"
)

// Options configures a single call to Normalize.
type Options struct {
	// TraceWriter, if non-nil, receives one line per outer-loop
	// iteration showing the whole current term (spec §4.5, §9: tracing
	// is diagnostic only and never alters reduction).
	TraceWriter io.Writer
	// Cancel, if non-nil, is polled once per outer-loop iteration.
	Cancel *CancelFlag
}

// Result is what Normalize produces: the reached term (final if
// Interrupted is false, partial otherwise), whether cancellation cut
// the loop short, and how many outer iterations ran.
type Result struct {
	Term        term.Handle
	Interrupted bool
	Steps       int
}

// Normalize reduces h to β-normal form under leftmost-outermost
// (normal) order, reducing under binders and into argument positions
// (strong reduction) so the result has no remaining redexes anywhere,
// not just at the head.
//
// The outer loop is: strong-reduce once, and if nothing changed,
// stop — that is the fixpoint. The identity optimization in
// internal/term (every transform returns its exact input handle when
// nothing beneath it changed) is what lets this loop detect the
// fixpoint with a single "changed" bool instead of a structural
// comparison pass.
func Normalize(a *term.Arena, h term.Handle, opts Options) Result {
	current := h
	steps := 0
	for {
		changed := false
		current = reduceStrong(a, current, &changed)
		steps++
		if opts.TraceWriter != nil {
			fmt.Fprintf(opts.TraceWriter, "step %d: %s\n", steps, printer.Print(a, current))
		}
		if opts.Cancel != nil && opts.Cancel.IsSet() {
			return Result{Term: current, Interrupted: true, Steps: steps}
		}
		if !changed {
			return Result{Term: current, Interrupted: false, Steps: steps}
		}
	}
}

type weakVisitor struct {
	a       *term.Arena
	changed *bool
}

func (v weakVisitor) VisitVariable(h term.Handle, index uint64) term.Handle {
	return h
}

// A Lambda is already a value in weak (head) mode: reduction never
// looks under a binder here, only strong mode does.
func (v weakVisitor) VisitLambda(h term.Handle, name string, body term.Handle) term.Handle {
	return h
}

func (v weakVisitor) VisitApplication(h, fn, arg term.Handle) term.Handle {
	return reduceApplication(v.a, h, fn, arg, v.changed)
}

func reduceWeak(a *term.Arena, h term.Handle, changed *bool) term.Handle {
	return term.Accept(a, h, weakVisitor{a: a, changed: changed})
}

type strongVisitor struct {
	a       *term.Arena
	changed *bool
}

func (v strongVisitor) VisitVariable(h term.Handle, index uint64) term.Handle {
	return h
}

func (v strongVisitor) VisitLambda(h term.Handle, name string, body term.Handle) term.Handle {
	newBody := term.Accept(v.a, body, v)
	if newBody == body {
		return h
	}
	return v.a.NewLambda(name, newBody)
}

func (v strongVisitor) VisitApplication(h, fn, arg term.Handle) term.Handle {
	return reduceApplication(v.a, h, fn, arg, v.changed)
}

func reduceStrong(a *term.Arena, h term.Handle, changed *bool) term.Handle {
	return term.Accept(a, h, strongVisitor{a: a, changed: changed})
}

// reduceApplication is shared verbatim between weak and strong mode:
// spec §4.5 notes the Application case of strong reduction is
// identical to weak's, because weak already strong-reduces the
// argument in the non-redex branch below.
//
// It first weak-reduces the function position. If that changed fn,
// the redex (if any) now lives one level further down the spine, so
// this call returns without firing a β-step — the outer loop's next
// iteration will revisit it. Otherwise it inspects fn's shape: a
// Lambda means (f x) is itself a redex and gets fired; a Variable or
// Application means fn is already a value in this position, so only
// the argument needs further (strong) reduction.
func reduceApplication(a *term.Arena, original, fn, arg term.Handle, changed *bool) term.Handle {
	newFn := reduceWeak(a, fn, changed)
	if newFn != fn {
		return a.NewApplication(newFn, arg)
	}
	n := a.Unpack(newFn)
	if n.Kind == term.KindLambda {
		*changed = true
		shiftedArg := term.Shift(a, 1, 1, arg)
		substituted := term.Substitute(a, shiftedArg, n.Left)
		return term.Shift(a, 1, -1, substituted)
	}
	newArg := reduceStrong(a, arg, changed)
	if newArg == arg {
		return original
	}
	return a.NewApplication(newFn, newArg)
}
