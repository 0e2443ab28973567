package lang

import "github.com/lc-lang/golc/internal/symtab"

// Expr is a parsed (but not yet bound) expression. Binding against a
// symtab.SymbolTable happens in build.go, kept separate from parsing
// so the same tree can be bound once against the assignment scope and
// once against the evaluation scope without re-parsing.
type Expr interface{ isExpr() }

type identExpr struct {
	name   string
	offset symtab.Offset
}

type numberExpr struct {
	value uint64
}

type param struct {
	name   string
	offset symtab.Offset
}

type lambdaExpr struct {
	params []param
	body   Expr
}

type appExpr struct {
	fn   Expr
	args []Expr
}

func (*identExpr) isExpr()  {}
func (*numberExpr) isExpr() {}
func (*lambdaExpr) isExpr() {}
func (*appExpr) isExpr()    {}

// Statement is either a global assignment ("name = expr;") or a
// top-level expression statement ("expr;") whose normal form the
// caller wants printed.
type Statement struct {
	IsAssignment bool
	Name         string
	NameOffset   symtab.Offset
	Expr         Expr
}
