package lang

import (
	"fmt"
	"io"

	"github.com/lc-lang/golc/internal/eval"
	"github.com/lc-lang/golc/internal/symtab"
	"github.com/lc-lang/golc/internal/term"
)

// Executor is the façade spec §4.9 describes: it owns the symbol
// table (and through it, the shared term arena and the numeral
// cache), and turns source text into terms and terms into results.
type Executor struct {
	symbols *symtab.SymbolTable
}

// NewExecutor creates an Executor with a fresh arena and empty
// globals.
func NewExecutor() *Executor {
	return &Executor{symbols: symtab.New(term.NewArena())}
}

// Globals returns a read-only snapshot of the name→term map, for the
// REPL's :all command.
func (e *Executor) Globals() map[string]term.Handle {
	return e.symbols.Globals()
}

// Diagnostics exposes the accumulated parse/bind diagnostic buffer.
func (e *Executor) Diagnostics() *symtab.Diagnostics {
	return e.symbols.Diagnostics
}

// Arena returns the shared term arena backing every loaded and
// evaluated term.
func (e *Executor) Arena() *term.Arena {
	return e.symbols.Arena()
}

// Load parses source (labeled originLabel for error messages), binds
// every assignment as a global, and returns the terms of every
// top-level expression statement, in order, for the caller to
// evaluate. It fails if any diagnostic recorded during parsing or
// binding is an Error (warnings do not fail the load).
func (e *Executor) Load(source, originLabel string) ([]term.Handle, error) {
	e.symbols.Diagnostics.SetSource(source)
	statements := parseProgram(source, e.symbols.Diagnostics)

	var pending []term.Handle
	for _, stmt := range statements {
		h := build(e.symbols, assignSide, stmt.Expr)
		if stmt.IsAssignment {
			e.symbols.DeclareGlobal(stmt.Name, h, stmt.NameOffset)
		} else {
			pending = append(pending, h)
		}
	}

	if e.symbols.Diagnostics.HasErrors() {
		return pending, fmt.Errorf("%s: failed to load", originLabel)
	}
	return pending, nil
}

// LoadStatement parses a single REPL line. If it is an assignment, it
// is bound and retained as a global and ok reports false (nothing to
// evaluate). If it is an expression, its term is returned with ok
// true.
func (e *Executor) LoadStatement(source string) (h term.Handle, ok bool, err error) {
	e.symbols.Diagnostics.SetSource(source)
	stmt, parsed := parseOneStatement(source, e.symbols.Diagnostics)
	if !parsed {
		return 0, false, fmt.Errorf("repl: failed to parse statement")
	}
	built := build(e.symbols, evalSide, stmt.Expr)
	if stmt.IsAssignment {
		e.symbols.DeclareGlobal(stmt.Name, built, stmt.NameOffset)
		if e.symbols.Diagnostics.HasErrors() {
			return 0, false, fmt.Errorf("repl: failed to bind %s", stmt.Name)
		}
		return 0, false, nil
	}
	if e.symbols.Diagnostics.HasErrors() {
		return 0, false, fmt.Errorf("repl: failed to bind statement")
	}
	return built, true, nil
}

// LoadExpression parses a single bare expression (the REPL's :print
// command) with no assignment allowed.
func (e *Executor) LoadExpression(source string) (term.Handle, error) {
	e.symbols.Diagnostics.SetSource(source)
	expr, ok := parseOneExpression(source, e.symbols.Diagnostics)
	if !ok {
		return 0, fmt.Errorf("repl: failed to parse expression")
	}
	h := build(e.symbols, evalSide, expr)
	if e.symbols.Diagnostics.HasErrors() {
		return 0, fmt.Errorf("repl: failed to bind expression")
	}
	return h, nil
}

// Evaluate normalizes h, optionally tracing each outer-loop step to
// trace and polling cancel once per step.
func (e *Executor) Evaluate(h term.Handle, trace io.Writer, cancel *eval.CancelFlag) eval.Result {
	return eval.Normalize(e.symbols.Arena(), h, eval.Options{TraceWriter: trace, Cancel: cancel})
}
