// Package printer restores named variables from a term's de Bruijn
// indices for display, tracking shadowing the way the original
// implementation's Display impl did (original_source/src/term.rs),
// but preserving a bound term's own cosmetic parameter names (carried
// by the arena's Lambda cells) instead of regenerating fresh ones.
package printer

import (
	"strconv"
	"strings"

	"github.com/lc-lang/golc/internal/term"
)

// Options selects the printer's rendering mode.
type Options struct {
	// Glyph selects "λ" instead of the default "\" for abstraction.
	Glyph bool
	// AlwaysIndex makes every Variable print its raw de Bruijn index
	// instead of a resolved parameter name, even when bound.
	AlwaysIndex bool
	// NegativeIndex prints a raw index as "-i" instead of "i". It only
	// affects how a raw index is rendered; it never changes whether one
	// is printed.
	NegativeIndex bool
}

// Print renders h using the default options (backslash abstraction,
// resolved names, no numeric annotations).
func Print(a *term.Arena, h term.Handle) string {
	return New(Options{}).Print(a, h)
}

// Printer renders terms according to a fixed set of Options. It is
// stateless between calls to Print; each call gets its own scratch
// binder stack.
type Printer struct {
	opts Options
}

// New creates a Printer for the given Options.
func New(opts Options) *Printer {
	return &Printer{opts: opts}
}

type binderStack struct {
	names  []string // names[0] is the outermost active binder
	shadow map[string]int
}

func (s *binderStack) push(name string) string {
	if s.shadow == nil {
		s.shadow = map[string]int{}
	}
	s.shadow[name]++
	display := name + strings.Repeat("′", s.shadow[name]-1)
	s.names = append(s.names, display)
	return display
}

func (s *binderStack) pop(name string) {
	s.names = s.names[:len(s.names)-1]
	s.shadow[name]--
}

// resolve returns the display name bound to de Bruijn index i, and
// whether the stack was deep enough to bind it at all.
func (s *binderStack) resolve(i uint64) (string, bool) {
	if i == 0 || i > uint64(len(s.names)) {
		return "", false
	}
	return s.names[uint64(len(s.names))-i], true
}

// Print renders h as a string.
func (p *Printer) Print(a *term.Arena, h term.Handle) string {
	var b strings.Builder
	stack := &binderStack{}
	p.write(&b, a, h, stack)
	return b.String()
}

func (p *Printer) write(b *strings.Builder, a *term.Arena, h term.Handle, stack *binderStack) {
	n := a.Unpack(h)
	switch n.Kind {
	case term.KindVariable:
		p.writeVariable(b, n.Index, stack)
	case term.KindLambda:
		lambda := "\\"
		if p.opts.Glyph {
			lambda = "λ"
		}
		display := stack.push(n.Name)
		b.WriteString(lambda)
		b.WriteString(display)
		b.WriteByte('.')
		p.write(b, a, n.Left, stack)
		stack.pop(n.Name)
	case term.KindApplication:
		b.WriteByte('(')
		p.write(b, a, n.Left, stack)
		b.WriteByte(' ')
		p.write(b, a, n.Right, stack)
		b.WriteByte(')')
	}
}

func (p *Printer) writeVariable(b *strings.Builder, index uint64, stack *binderStack) {
	if !p.opts.AlwaysIndex {
		if name, ok := stack.resolve(index); ok {
			b.WriteString(name)
			return
		}
	}
	if p.opts.NegativeIndex {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatUint(index, 10))
}
