package reduce

import (
	"strconv"
	"testing"

	"github.com/fqdbg/fixprint/fix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selfEq(bind string, rhs fix.Expr) fix.SortedReft {
	return intReft(bind, fix.EAtom{Rel: fix.RelEq, L: fix.EVar{S: fix.Sym(bind)}, R: rhs})
}

func TestUndoANFInlinesTemporaries(t *testing.T) {
	// lq_anf##1 = x + 1, and y's refinement references the temporary
	env := fix.NewEnv().
		Set(fix.Sym("lq_anf##1"), fix.EnvEntry{SR: selfEq("v", fix.EBin{Op: fix.OpPlus, L: fix.EVar{S: fix.Sym("x")}, R: fix.EInt{V: 1}})}).
		Set(fix.Sym("y"), fix.EnvEntry{SR: intReft("v", fix.EAtom{Rel: fix.RelEq, L: fix.EVar{S: fix.Sym("v")}, R: fix.EVar{S: fix.Sym("lq_anf##1")}})})

	out := UndoANF(5, env)

	y, ok := out.Get(fix.Sym("y"))
	require.True(t, ok)
	assert.Equal(t, "{v : int | (v == (x + 1))}", y.SR.String())

	// the temporary itself survives, its definition unchanged
	anf, ok := out.Get(fix.Sym("lq_anf##1"))
	require.True(t, ok)
	assert.Equal(t, "{v : int | (v == (x + 1))}", anf.SR.String())
}

func TestUndoANFUnfoldsChainsUpToDepth(t *testing.T) {
	// lq_anf##1 = lq_anf##2, ..., lq_anf##n = x, and z references the head
	anfSym := func(i int) fix.Symbol {
		return fix.SymJoin("lq_anf", strconv.Itoa(i))
	}
	chain := func(n int) fix.Env {
		env := fix.NewEnv()
		for i := 1; i < n; i++ {
			env = env.Set(anfSym(i), fix.EnvEntry{SR: selfEq("v", fix.EVar{S: anfSym(i + 1)})})
		}
		env = env.Set(anfSym(n), fix.EnvEntry{SR: selfEq("v", fix.EVar{S: fix.Sym("x")})})
		return env.Set(fix.Sym("z"), fix.EnvEntry{SR: intReft("v", fix.EAtom{
			Rel: fix.RelEq, L: fix.EVar{S: fix.Sym("v")}, R: fix.EVar{S: anfSym(1)},
		})})
	}

	t.Run("deep enough", func(t *testing.T) {
		out := UndoANF(5, chain(3))
		z, _ := out.Get(fix.Sym("z"))
		assert.Equal(t, "{v : int | (v == x)}", z.SR.String())
	})

	t.Run("bounded by depth", func(t *testing.T) {
		out := UndoANF(1, chain(3))
		z, _ := out.Get(fix.Sym("z"))
		assert.Equal(t, "{v : int | (v == lq_anf##2)}", z.SR.String(),
			"one round unfolds exactly one level")
	})
}

func TestUndoANFIgnoresNonTemporaries(t *testing.T) {
	env := fix.NewEnv().
		Set(fix.Sym("x"), fix.EnvEntry{SR: selfEq("v", fix.EInt{V: 3})}).
		Set(fix.Sym("y"), fix.EnvEntry{SR: intReft("v", fix.EAtom{Rel: fix.RelEq, L: fix.EVar{S: fix.Sym("v")}, R: fix.EVar{S: fix.Sym("x")}})})

	out := UndoANF(5, env)

	y, _ := out.Get(fix.Sym("y"))
	assert.Equal(t, "{v : int | (v == x)}", y.SR.String(), "ordinary bindings are not inlined")
}

func TestSelfEqualityDef(t *testing.T) {
	testCases := []struct {
		name     string
		sr       fix.SortedReft
		expected string
		ok       bool
	}{
		{
			name:     "bound on the left",
			sr:       selfEq("v", fix.EVar{S: fix.Sym("x")}),
			expected: "x",
			ok:       true,
		},
		{
			name:     "bound on the right",
			sr:       intReft("v", fix.EAtom{Rel: fix.RelEq, L: fix.EInt{V: 1}, R: fix.EVar{S: fix.Sym("v")}}),
			expected: "1",
			ok:       true,
		},
		{
			name: "self-referential definition rejected",
			sr:   selfEq("v", fix.EBin{Op: fix.OpPlus, L: fix.EVar{S: fix.Sym("v")}, R: fix.EInt{V: 1}}),
			ok:   false,
		},
		{
			name: "non-equality rejected",
			sr:   gtZero("v"),
			ok:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			def, ok := selfEqualityDef(tc.sr)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, fix.ExprString(def))
			}
		})
	}
}
