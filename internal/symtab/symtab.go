// Package symtab converts source-level names into de Bruijn-indexed
// terms: a binder that tracks scope stacks and a globals map, plus a
// Church-numeral cache, per spec §4.7.
package symtab

import (
	"fmt"

	"github.com/lc-lang/golc/internal/term"
)

// SymbolTable binds names to term.Handle values. It owns one shared
// arena (see SPEC_FULL.md's Open Questions decision on why the
// original's assign/eval dual-allocator split collapses to one arena
// here) and two independent scope stacks: assignScopes for names bound
// while building a global assignment, evalScopes for names bound while
// building a one-off expression to evaluate.
type SymbolTable struct {
	arena *term.Arena

	globals      map[string]term.Handle
	assignScopes scopeStack
	evalScopes   scopeStack

	Diagnostics *Diagnostics

	assignNumerals *numeralCache
	evalNumerals   *numeralCache
}

// New creates a symbol table backed by arena, with empty scopes and
// globals.
func New(arena *term.Arena) *SymbolTable {
	return &SymbolTable{
		arena:          arena,
		globals:        make(map[string]term.Handle),
		Diagnostics:    &Diagnostics{},
		assignNumerals: newNumeralCache(arena),
		evalNumerals:   newNumeralCache(arena),
	}
}

// Arena returns the shared term arena this table builds into.
func (s *SymbolTable) Arena() *term.Arena { return s.arena }

// Globals returns a snapshot of the name→term map, for the REPL's
// :all command. It is a copy so the caller can't mutate live state.
func (s *SymbolTable) Globals() map[string]term.Handle {
	view := make(map[string]term.Handle, len(s.globals))
	for k, v := range s.globals {
		view[k] = v
	}
	return view
}

// DeclareGlobal inserts name → h, or records a duplicate-variable
// error at offset and leaves the existing binding untouched.
func (s *SymbolTable) DeclareGlobal(name string, h term.Handle, offset Offset) {
	if _, exists := s.globals[name]; exists {
		s.Diagnostics.Error(fmt.Sprintf("duplicate variable %s", name), offset)
		return
	}
	s.globals[name] = h
}

func buildTerm(globals map[string]term.Handle, diags *Diagnostics, scope *scopeStack, name string, offset Offset) term.Handle {
	if index, ok := scope.lookup(name); ok {
		return term.NewVariable(index)
	}
	if h, ok := globals[name]; ok {
		return h
	}
	diags.Error(fmt.Sprintf("unknown term: %s", name), offset)
	return term.NewVariable(1)
}

func startLambda(globals map[string]term.Handle, diags *Diagnostics, scope *scopeStack, name string, offset Offset) {
	if scope.contains(name) {
		diags.Warning(fmt.Sprintf("parameter %s shadows outer parameter of the same name", name), offset)
	} else if _, ok := globals[name]; ok {
		diags.Warning(fmt.Sprintf("parameter %s shadows variable of the same name", name), offset)
	}
	scope.push(name)
}

func buildLambda(a *term.Arena, scope *scopeStack, names []string, body term.Handle) term.Handle {
	scope.popLast(len(names))
	result := body
	for i := len(names) - 1; i >= 0; i-- {
		result = a.NewLambda(names[i], result)
	}
	return result
}

func buildApplication(a *term.Arena, fn term.Handle, args []term.Handle) term.Handle {
	result := fn
	for _, arg := range args {
		result = a.NewApplication(result, arg)
	}
	return result
}

// BuildAssignTerm resolves a name reference while building a global
// assignment's right-hand side.
func (s *SymbolTable) BuildAssignTerm(name string, offset Offset) term.Handle {
	return buildTerm(s.globals, s.Diagnostics, &s.assignScopes, name, offset)
}

// StartAssignLambda pushes a parameter binder onto the assignment
// scope, warning if it shadows an outer binder or a global.
func (s *SymbolTable) StartAssignLambda(name string, offset Offset) {
	startLambda(s.globals, s.Diagnostics, &s.assignScopes, name, offset)
}

// BuildAssignLambda pops names off the assignment scope and wraps
// body in nested Lambdas, outermost parameter first.
func (s *SymbolTable) BuildAssignLambda(names []string, body term.Handle) term.Handle {
	return buildLambda(s.arena, &s.assignScopes, names, body)
}

// BuildAssignApplication left-folds fn applied to args in order.
func (s *SymbolTable) BuildAssignApplication(fn term.Handle, args []term.Handle) term.Handle {
	return buildApplication(s.arena, fn, args)
}

// BuildAssignNumber constructs the Church numeral for n for use in an
// assignment's right-hand side.
func (s *SymbolTable) BuildAssignNumber(n uint64) term.Handle {
	return s.assignNumerals.churchNumeral(n)
}

// BuildEvalTerm resolves a name reference while building a one-off
// expression to evaluate.
func (s *SymbolTable) BuildEvalTerm(name string, offset Offset) term.Handle {
	return buildTerm(s.globals, s.Diagnostics, &s.evalScopes, name, offset)
}

// StartEvalLambda pushes a parameter binder onto the evaluation
// scope, warning if it shadows an outer binder or a global.
func (s *SymbolTable) StartEvalLambda(name string, offset Offset) {
	startLambda(s.globals, s.Diagnostics, &s.evalScopes, name, offset)
}

// BuildEvalLambda pops names off the evaluation scope and wraps body
// in nested Lambdas, outermost parameter first.
func (s *SymbolTable) BuildEvalLambda(names []string, body term.Handle) term.Handle {
	return buildLambda(s.arena, &s.evalScopes, names, body)
}

// BuildEvalApplication left-folds fn applied to args in order.
func (s *SymbolTable) BuildEvalApplication(fn term.Handle, args []term.Handle) term.Handle {
	return buildApplication(s.arena, fn, args)
}

// BuildEvalNumber constructs the Church numeral for n for use in a
// one-off expression.
func (s *SymbolTable) BuildEvalNumber(n uint64) term.Handle {
	return s.evalNumerals.churchNumeral(n)
}
