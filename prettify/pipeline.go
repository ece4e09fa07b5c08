package prettify

import (
	"slices"
	"sort"
	"strings"

	"github.com/fqdbg/fixprint/fix"
	"github.com/fqdbg/fixprint/reduce"
	"github.com/hashicorp/go-set/v3"
	xset "github.com/xtgo/set"
)

// Pipeline prettifies constraints one at a time. The reduction passes are
// injected so the renaming and erasure logic can be exercised against stubs.
type Pipeline struct {
	Passes      reduce.Passes
	ANFDepth    int
	InlineDepth int
}

func New(anfDepth, inlineDepth int, passes reduce.Passes) *Pipeline {
	return &Pipeline{
		Passes:      passes,
		ANFDepth:    anfDepth,
		InlineDepth: inlineDepth,
	}
}

// RenderQuery renders one document per constraint, concatenated in the
// query's iteration order. All derived structures are per constraint; the
// query itself is never mutated.
func (p *Pipeline) RenderQuery(q *fix.Query) string {
	axIdx := reduce.AxiomEnvSymbols(q.Axioms)
	sb := &strings.Builder{}
	for i, c := range q.Constraints {
		if i > 0 {
			sb.WriteString("\n")
		}
		p.renderConstraint(sb, q, axIdx, c)
	}
	return sb.String()
}

func (p *Pipeline) renderConstraint(sb *strings.Builder, q *fix.Query, axIdx reduce.AxiomSymbolIndex, c fix.SubC) {
	recs := collectScope(q.Binds, c.EnvIDs)

	// semantic reductions, strictly in this order; each pass output overlays
	// the environment it was given so untouched bindings survive
	env := p.Passes.MergeDuplicates(recs)
	env = env.Union(p.Passes.UndoANF(p.ANFDepth, env))
	env = env.Union(p.Passes.SimplifyBooleanRefts(env))
	lhs := p.Passes.InlineInSortedReft(p.InlineDepth, env, c.Lhs)
	rhs := p.Passes.InlineInSortedReft(p.InlineDepth, env, c.Rhs)

	live := liveSymbols(lhs, rhs)
	pruned := p.Passes.DropLikelyIrrelevant(axIdx, live, env)

	renames := ShortenSymbols(pruned.Symbols())
	binds := renameEnv(renames, pruned)
	lhs = renameSortedReft(renames, lhs)
	rhs = renameSortedReft(renames, rhs)

	lines := EraseUnused(liveSymbols(lhs, rhs), binds)
	// descending by symbol; anonymous entries keep their pre-erasure key, so
	// ties stay stable across runs
	slices.SortStableFunc(lines, func(a, b EnvLine) int {
		return fix.CompareSymbols(b.Key, a.Key)
	})

	logger.Debug("prettified constraint",
		"scope", len(recs), "pruned", pruned.Len(), "rendered", len(lines))

	writeConstraint(sb, c, lhs, rhs, lines)
}

// collectScope resolves a constraint's binding identifiers against the
// query's table. Identifiers sharing a symbol stay separate records here; the
// merge pass consolidates them keyed by symbol.
func collectScope(binds fix.BindEnv, ids []fix.BindID) []fix.BindRecord {
	recs := make([]fix.BindRecord, 0, len(ids))
	for _, id := range ids {
		bind := binds.Lookup(id)
		recs = append(recs, fix.BindRecord{ID: id, Sym: bind.Sym, SR: bind.SR})
	}
	return recs
}

// liveSymbols is the union of the free symbols of both constraint sides.
func liveSymbols(lhs, rhs fix.SortedReft) *set.Set[fix.Symbol] {
	l := fix.Symbols(lhs.FreeSymbols().Slice())
	r := fix.Symbols(rhs.FreeSymbols().Slice())
	sort.Sort(l)
	sort.Sort(r)
	both := make(fix.Symbols, 0, len(l)+len(r))
	both = append(append(both, l...), r...)
	n := xset.Union(both, len(l))
	return set.From(both[:n])
}
