package reduce

import (
	"testing"

	"github.com/fqdbg/fixprint/fix"
	"github.com/stretchr/testify/assert"
)

func TestSimplifyPred(t *testing.T) {
	p := fix.EVar{S: fix.Sym("p")}
	q := fix.EVar{S: fix.Sym("q")}

	testCases := []struct {
		name     string
		input    fix.Expr
		expected string
	}{
		{name: "true conjunct dropped", input: fix.EAnd{Es: []fix.Expr{fix.PTrue, p}}, expected: "p"},
		{name: "false collapses conjunction", input: fix.EAnd{Es: []fix.Expr{p, fix.PFalse, q}}, expected: "false"},
		{name: "empty conjunction is true", input: fix.EAnd{}, expected: "true"},
		{name: "nested conjunctions flatten", input: fix.EAnd{Es: []fix.Expr{p, fix.EAnd{Es: []fix.Expr{q, fix.PTrue}}}}, expected: "(p && q)"},
		{name: "false disjunct dropped", input: fix.EOr{Es: []fix.Expr{fix.PFalse, p}}, expected: "p"},
		{name: "true collapses disjunction", input: fix.EOr{Es: []fix.Expr{p, fix.PTrue}}, expected: "true"},
		{name: "double negation folds", input: fix.ENot{E: fix.ENot{E: p}}, expected: "p"},
		{name: "not true", input: fix.ENot{E: fix.PTrue}, expected: "false"},
		{name: "eq true rewrites", input: fix.EAtom{Rel: fix.RelEq, L: p, R: fix.PTrue}, expected: "p"},
		{name: "eq false negates", input: fix.EAtom{Rel: fix.RelEq, L: p, R: fix.PFalse}, expected: "(not p)"},
		{name: "true implies p", input: fix.EImp{L: fix.PTrue, R: p}, expected: "p"},
		{name: "false implies anything", input: fix.EImp{L: fix.PFalse, R: p}, expected: "true"},
		{name: "implication into true", input: fix.EImp{L: p, R: fix.PTrue}, expected: "true"},
		{name: "iff with true", input: fix.EIff{L: fix.PTrue, R: p}, expected: "p"},
		{name: "constant condition picks branch", input: fix.EIte{Cond: fix.PFalse, Then: p, Else: q}, expected: "q"},
		{name: "non-boolean structure untouched", input: fix.EAtom{Rel: fix.RelGt, L: p, R: fix.EInt{V: 0}}, expected: "(p > 0)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, fix.ExprString(SimplifyPred(tc.input)))
		})
	}
}

func TestSimplifyBooleanRefts(t *testing.T) {
	env := fix.NewEnv().
		Set(fix.Sym("a"), fix.EnvEntry{SR: intReft("v", fix.EAnd{Es: []fix.Expr{fix.PTrue, gtZero("v").Reft.Pred}})}).
		Set(fix.Sym("b"), fix.EnvEntry{SR: intReft("v", fix.PTrue)})

	out := SimplifyBooleanRefts(env)

	a, _ := out.Get(fix.Sym("a"))
	assert.Equal(t, "{v : int | (v > 0)}", a.SR.String())
	b, _ := out.Get(fix.Sym("b"))
	assert.Equal(t, "{v : int | true}", b.SR.String())
}
