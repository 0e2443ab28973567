package lang

import (
	"testing"

	"github.com/lc-lang/golc/internal/symtab"
)

func TestParseIntegerLiteralStripsUnderscores(t *testing.T) {
	cases := map[string]uint64{
		"0":       0,
		"10":      10,
		"1_000":   1000,
		"1_0_0_0": 1000,
	}
	for text, want := range cases {
		got, ok := parseIntegerLiteral(text)
		if !ok {
			t.Fatalf("parseIntegerLiteral(%q) failed", text)
		}
		if got != want {
			t.Fatalf("parseIntegerLiteral(%q) = %d, want %d", text, got, want)
		}
	}
}

func TestTokenizeRecognizesUnicodeLambda(t *testing.T) {
	toks := tokenize("λx. x")
	if toks[0].kind != tokLambda || toks[0].text != "λ" {
		t.Fatalf("expected the first token to be a unicode lambda, got %+v", toks[0])
	}
}

func TestParseProgramAcceptsBackslashAndUnicodeLambda(t *testing.T) {
	diags := &symtab.Diagnostics{}
	stmts := parseProgram("a = \\x.x;\nb = λx.x;", diags)
	if diags.HasErrors() {
		t.Fatalf("unexpected parse errors: %+v", diags.Messages())
	}
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}
}

func TestParseExprNestedParens(t *testing.T) {
	diags := &symtab.Diagnostics{}
	expr, ok := parseOneExpression("((x y) z)", diags)
	if !ok || diags.HasErrors() {
		t.Fatalf("failed to parse nested parens: %+v", diags.Messages())
	}
	app, ok := expr.(*appExpr)
	if !ok {
		t.Fatalf("expected an application, got %T", expr)
	}
	if len(app.args) != 1 {
		t.Fatalf("expected (x y) applied to z, got %d args", len(app.args))
	}
}

func TestParseUnmatchedParenIsAnError(t *testing.T) {
	diags := &symtab.Diagnostics{}
	_, ok := parseOneExpression("(x y", diags)
	if ok || !diags.HasErrors() {
		t.Fatalf("expected an unmatched '(' to be a parse error")
	}
}
