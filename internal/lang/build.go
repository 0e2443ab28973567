package lang

import (
	"github.com/golang/glog"

	"github.com/lc-lang/golc/internal/symtab"
	"github.com/lc-lang/golc/internal/term"
)

// side picks which of symtab's two mirrored operation sets (spec
// §4.7: "two mirrored sets... the assignment variants produce terms
// that outlive the evaluation, the evaluation variants produce terms
// confined to" the current statement) a build pass uses.
type side int

const (
	assignSide side = iota
	evalSide
)

// build lowers a parsed Expr into a term.Handle by walking it once
// against the chosen scope of st. Binding errors (unknown name,
// duplicate global, shadowing) are recorded into st.Diagnostics as a
// side effect rather than returned, so a single pass over a whole
// program collects every diagnostic instead of stopping at the first.
func build(st *symtab.SymbolTable, s side, e Expr) term.Handle {
	switch v := e.(type) {
	case *identExpr:
		if s == assignSide {
			return st.BuildAssignTerm(v.name, v.offset)
		}
		return st.BuildEvalTerm(v.name, v.offset)

	case *numberExpr:
		if s == assignSide {
			return st.BuildAssignNumber(v.value)
		}
		return st.BuildEvalNumber(v.value)

	case *lambdaExpr:
		names := make([]string, len(v.params))
		for i, p := range v.params {
			names[i] = p.name
			if s == assignSide {
				st.StartAssignLambda(p.name, p.offset)
			} else {
				st.StartEvalLambda(p.name, p.offset)
			}
		}
		body := build(st, s, v.body)
		if s == assignSide {
			return st.BuildAssignLambda(names, body)
		}
		return st.BuildEvalLambda(names, body)

	case *appExpr:
		fn := build(st, s, v.fn)
		args := make([]term.Handle, len(v.args))
		for i, a := range v.args {
			args[i] = build(st, s, a)
		}
		if s == assignSide {
			return st.BuildAssignApplication(fn, args)
		}
		return st.BuildEvalApplication(fn, args)
	}
	glog.Fatalf("lang: unreachable expression kind %T", e)
	panic("unreachable")
}
