package lang

import (
	"fmt"

	"github.com/lc-lang/golc/internal/symtab"
)

// parser is a plain recursive-descent parser over a pre-tokenized
// source. On a syntax error it records a diagnostic and skips ahead
// to the next statement boundary (';' or EOF) so later statements in
// the same source still get parsed and checked, mirroring the
// error-recovery behavior spec §7 describes for Parse errors.
type parser struct {
	tokens []token
	pos    int
	diags  *symtab.Diagnostics
}

func newParser(src string, diags *symtab.Diagnostics) *parser {
	return &parser{tokens: tokenize(src), diags: diags}
}

func (p *parser) cur() token { return p.tokens[p.pos] }

func (p *parser) peek(ahead int) token {
	i := p.pos + ahead
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *parser) advance() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) errorf(offset symtab.Offset, format string, args ...interface{}) {
	p.diags.Error(fmt.Sprintf(format, args...), offset)
}

// recover skips tokens until just past the next ';' (or to EOF),
// so parsing can resume at the following statement.
func (p *parser) recover() {
	for p.cur().kind != tokEOF && p.cur().kind != tokSemicolon {
		p.advance()
	}
	if p.cur().kind == tokSemicolon {
		p.advance()
	}
}

// parseProgram parses every statement in the source, recovering from
// syntax errors one statement at a time.
func parseProgram(src string, diags *symtab.Diagnostics) []Statement {
	p := newParser(src, diags)
	var statements []Statement
	for p.cur().kind != tokEOF {
		stmt, ok := p.parseStatement()
		if ok {
			statements = append(statements, stmt)
		} else {
			p.recover()
		}
	}
	return statements
}

// parseOneStatement parses exactly one statement from src (the REPL's
// load_statement), returning ok=false if nothing could be parsed.
func parseOneStatement(src string, diags *symtab.Diagnostics) (Statement, bool) {
	p := newParser(src, diags)
	if p.cur().kind == tokEOF {
		return Statement{}, false
	}
	return p.parseStatement()
}

// parseOneExpression parses a single expression (the REPL's
// load_expression), with no trailing ';' required.
func parseOneExpression(src string, diags *symtab.Diagnostics) (Expr, bool) {
	p := newParser(src, diags)
	if p.cur().kind == tokEOF {
		p.errorf(p.cur().offset, "expected an expression")
		return nil, false
	}
	e, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if p.cur().kind == tokSemicolon {
		p.advance()
	}
	return e, true
}

func (p *parser) parseStatement() (Statement, bool) {
	if p.cur().kind == tokIdent && p.peek(1).kind == tokEquals {
		name := p.advance()
		p.advance() // '='
		expr, ok := p.parseExpr()
		if !ok {
			return Statement{}, false
		}
		if p.cur().kind != tokSemicolon {
			p.errorf(p.cur().offset, "expected ';' after assignment to %s", name.text)
			return Statement{}, false
		}
		p.advance()
		return Statement{IsAssignment: true, Name: name.text, NameOffset: name.offset, Expr: expr}, true
	}

	expr, ok := p.parseExpr()
	if !ok {
		return Statement{}, false
	}
	if p.cur().kind != tokSemicolon {
		p.errorf(p.cur().offset, "expected ';' after expression")
		return Statement{}, false
	}
	p.advance()
	return Statement{Expr: expr}, true
}

// parseExpr parses an Application: one or more Atoms juxtaposed,
// left-associative.
func (p *parser) parseExpr() (Expr, bool) {
	first, ok := p.parseAtom()
	if !ok {
		return nil, false
	}
	var args []Expr
	for p.startsAtom() {
		arg, ok := p.parseAtom()
		if !ok {
			return nil, false
		}
		args = append(args, arg)
	}
	if len(args) == 0 {
		return first, true
	}
	return &appExpr{fn: first, args: args}, true
}

func (p *parser) startsAtom() bool {
	switch p.cur().kind {
	case tokIdent, tokNumber, tokLambda, tokLParen:
		return true
	default:
		return false
	}
}

func (p *parser) parseAtom() (Expr, bool) {
	switch p.cur().kind {
	case tokIdent:
		t := p.advance()
		return &identExpr{name: t.text, offset: t.offset}, true
	case tokNumber:
		t := p.advance()
		n, ok := parseIntegerLiteral(t.text)
		if !ok {
			p.errorf(t.offset, "invalid integer literal %q", t.text)
			return nil, false
		}
		return &numberExpr{value: n}, true
	case tokLambda:
		return p.parseLambda()
	case tokLParen:
		p.advance()
		e, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if p.cur().kind != tokRParen {
			p.errorf(p.cur().offset, "expected ')'")
			return nil, false
		}
		p.advance()
		return e, true
	default:
		p.errorf(p.cur().offset, "expected an expression, found %q", p.cur().text)
		return nil, false
	}
}

func (p *parser) parseLambda() (Expr, bool) {
	p.advance() // '\' or 'λ'
	var params []param
	for p.cur().kind == tokIdent {
		t := p.advance()
		params = append(params, param{name: t.text, offset: t.offset})
	}
	if len(params) == 0 {
		p.errorf(p.cur().offset, "lambda needs at least one parameter")
		return nil, false
	}
	if p.cur().kind != tokDot {
		p.errorf(p.cur().offset, "expected '.' after lambda parameters")
		return nil, false
	}
	p.advance()
	body, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	return &lambdaExpr{params: params, body: body}, true
}
