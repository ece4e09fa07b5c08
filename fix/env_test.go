package fix

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func intReft(bind string, pred Expr) SortedReft {
	return SortedReft{Sort: IntSort{}, Reft: Reft{Bind: Sym(bind), Pred: pred}}
}

func TestEnvSetGet(t *testing.T) {
	env := NewEnv()
	env2 := env.Set(Sym("x"), EnvEntry{IDs: []BindID{1}, SR: intReft("v", PTrue)})

	_, ok := env.Get(Sym("x"))
	assert.False(t, ok, "original env unchanged")

	entry, ok := env2.Get(Sym("x"))
	require.True(t, ok)
	assert.Equal(t, []BindID{1}, entry.IDs)
}

func TestEnvAllIsAscending(t *testing.T) {
	env := NewEnv().
		Set(Sym("c"), EnvEntry{}).
		Set(Sym("a"), EnvEntry{}).
		Set(Sym("b"), EnvEntry{})

	assert.Equal(t, []Symbol{Sym("a"), Sym("b"), Sym("c")}, env.Symbols())
}

func TestEnvUnionOverlayWins(t *testing.T) {
	base := NewEnv().
		Set(Sym("x"), EnvEntry{IDs: []BindID{1}}).
		Set(Sym("y"), EnvEntry{IDs: []BindID{2}})
	overlay := NewEnv().
		Set(Sym("x"), EnvEntry{IDs: []BindID{9}})

	merged := base.Union(overlay)

	x, ok := merged.Get(Sym("x"))
	require.True(t, ok)
	assert.Equal(t, []BindID{9}, x.IDs, "overlay wins on touched keys")

	y, ok := merged.Get(Sym("y"))
	require.True(t, ok)
	assert.Equal(t, []BindID{2}, y.IDs, "untouched keys fall back to base")
}

func TestBindEnvLookupPanicsOnMissingID(t *testing.T) {
	be := NewBindEnv(map[BindID]Bind{1: {Sym: Sym("x")}})

	assert.NotPanics(t, func() { be.Lookup(1) })
	assert.Panics(t, func() { be.Lookup(2) }, "a dangling bind id is a contract violation")
}

func TestQueryValidate(t *testing.T) {
	q := &Query{
		Constraints: []SubC{{EnvIDs: []BindID{1, 2}}},
		Binds:       NewBindEnv(map[BindID]Bind{1: {Sym: Sym("x")}}),
	}
	assert.Error(t, q.Validate())

	q.Binds = NewBindEnv(map[BindID]Bind{1: {Sym: Sym("x")}, 2: {Sym: Sym("y")}})
	assert.NoError(t, q.Validate())
}
