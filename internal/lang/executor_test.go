package lang

import (
	"strings"
	"testing"

	"github.com/lc-lang/golc/internal/printer"
)

func TestLoadIdentityAppliedToVariable(t *testing.T) {
	e := NewExecutor()
	pending, err := e.Load("y = \\a.a;\n(\\x.x) y;", "test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending expression, got %d", len(pending))
	}
	result := e.Evaluate(pending[0], nil, nil)
	if result.Interrupted {
		t.Fatalf("unexpected interruption")
	}
	got := printer.Print(e.Arena(), result.Term)
	if got != `\a.a` {
		t.Fatalf("Print(result) = %q, want %q", got, `\a.a`)
	}
}

func TestLoadChurchAddition(t *testing.T) {
	e := NewExecutor()
	prelude := `plus = \m n f x. (m f) ((n f) x);`
	_, err := e.Load(prelude, "prelude")
	if err != nil {
		t.Fatalf("Load(prelude): %v", err)
	}
	pending, err := e.Load("plus 2 3;", "test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	result := e.Evaluate(pending[0], nil, nil)

	five, err := e.LoadExpression("5")
	if err != nil {
		t.Fatalf("LoadExpression: %v", err)
	}
	fiveResult := e.Evaluate(five, nil, nil)

	got := printer.Print(e.Arena(), result.Term)
	want := printer.Print(e.Arena(), fiveResult.Term)
	if got != want {
		t.Fatalf("plus 2 3 normalized to %q, want %q (church 5)", got, want)
	}
}

func TestLoadRejectsUnknownName(t *testing.T) {
	e := NewExecutor()
	_, err := e.Load("undeclared;", "test")
	if err == nil {
		t.Fatalf("expected Load to fail on an unknown name")
	}
}

func TestShadowingProducesExactlyOneWarningNoErrors(t *testing.T) {
	e := NewExecutor()
	_, err := e.Load("f = \\x. \\x. x;", "test")
	if err != nil {
		t.Fatalf("shadowing alone should not fail Load: %v", err)
	}
	warnings := 0
	for _, m := range e.Diagnostics().Messages() {
		if m.IsError() {
			t.Fatalf("unexpected error message: %s", m.Text)
		}
		warnings++
	}
	if warnings != 1 {
		t.Fatalf("expected exactly 1 warning, got %d", warnings)
	}

	globals := e.Globals()
	fTerm, ok := globals["f"]
	if !ok {
		t.Fatalf("f was not declared")
	}
	pending, err := e.Load("a = \\p q. p;\nb = \\p q. q;\nf a b;", "test2")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	_ = fTerm
	result := e.Evaluate(pending[0], nil, nil)
	b := e.Globals()["b"]
	if !result.Interrupted && printer.Print(e.Arena(), result.Term) != printer.Print(e.Arena(), b) {
		t.Fatalf("f a b should normalize to b")
	}
}

func TestLoadStatementAssignmentReturnsNoExpression(t *testing.T) {
	e := NewExecutor()
	_, ok, err := e.LoadStatement("id = \\x.x;")
	if err != nil {
		t.Fatalf("LoadStatement: %v", err)
	}
	if ok {
		t.Fatalf("an assignment statement should not produce an expression to evaluate")
	}
	if _, declared := e.Globals()["id"]; !declared {
		t.Fatalf("id was not declared as a global")
	}
}

func TestLoadStatementExpressionReturnsTerm(t *testing.T) {
	e := NewExecutor()
	_, _, _ = e.LoadStatement("id = \\x.x;")
	h, ok, err := e.LoadStatement("id;")
	if err != nil {
		t.Fatalf("LoadStatement: %v", err)
	}
	if !ok {
		t.Fatalf("expected an expression statement")
	}
	got := printer.Print(e.Arena(), h)
	if got != `\x.x` {
		t.Fatalf("Print(id) = %q, want %q", got, `\x.x`)
	}
}

func TestParseErrorRecoversToNextStatement(t *testing.T) {
	e := NewExecutor()
	// The unmatched '(' makes "id = (x;" an unambiguous syntax error
	// (unlike a bare missing ';', which juxtaposition can absorb into
	// the next line's tokens); recovery should skip to the ';' and
	// pick parsing back up at the next statement.
	_, err := e.Load("id = (x;\nok = \\y.y;", "test")
	if err == nil {
		t.Fatalf("expected a parse error for the unmatched '('")
	}
	if _, declared := e.Globals()["ok"]; !declared {
		t.Fatalf("parser should have recovered and still bound 'ok'")
	}
}

func TestApplicationIsLeftAssociative(t *testing.T) {
	e := NewExecutor()
	_, err := e.Load("first = \\x y z. x;\n", "test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// "first p q r" must parse as (((first p) q) r), selecting p (church
	// 0) out of three distinct numerals.
	pending, err := e.Load("first 0 1 2;", "test2")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	result := e.Evaluate(pending[0], nil, nil)

	p, err := e.LoadExpression("0")
	if err != nil {
		t.Fatalf("LoadExpression: %v", err)
	}
	pResult := e.Evaluate(p, nil, nil)

	got := printer.Print(e.Arena(), result.Term)
	want := printer.Print(e.Arena(), pResult.Term)
	if got != want {
		t.Fatalf("'first 0 1 2' normalized to %q, want %q (church 0, its first argument)", got, want)
	}
}

func TestTraceWriterReceivesSteps(t *testing.T) {
	e := NewExecutor()
	pending, err := e.Load("id = \\x.x;\nid id;", "test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	var b strings.Builder
	result := e.Evaluate(pending[0], &b, nil)
	if result.Steps == 0 {
		t.Fatalf("expected at least one step")
	}
	if b.Len() == 0 {
		t.Fatalf("expected the trace writer to receive output")
	}
}
