package reduce

import (
	"github.com/fqdbg/fixprint/fix"
)

// MergeDuplicates consolidates the raw (identifier, symbol, refinement)
// triples of a constraint's scope into an environment keyed by symbol,
// accumulating every identifier that shares a symbol. Identical refinements
// merge silently; same-sort refinements conjoin their predicates; a sort
// conflict keeps the first refinement seen and logs the discarded one.
func MergeDuplicates(recs []fix.BindRecord) fix.Env {
	env := fix.NewEnv()
	for _, rec := range recs {
		existing, ok := env.Get(rec.Sym)
		if !ok {
			env = env.Set(rec.Sym, fix.EnvEntry{IDs: []fix.BindID{rec.ID}, SR: rec.SR})
			continue
		}
		env = env.Set(rec.Sym, fix.EnvEntry{
			IDs: append(existing.IDs, rec.ID),
			SR:  mergeSortedRefts(rec.Sym, existing.SR, rec.SR),
		})
	}
	return env
}

func mergeSortedRefts(sym fix.Symbol, a, b fix.SortedReft) fix.SortedReft {
	if a.String() == b.String() {
		return a
	}
	if a.Sort.String() != b.Sort.String() {
		logger.Warn("duplicate bindings disagree on sort, keeping the first",
			"symbol", sym, "kept", a.Sort, "discarded", b.Sort)
		return a
	}
	// align the second refinement's self symbol before conjoining
	alignedPred := fix.SubstSymbols(b.Reft.Pred, map[fix.Symbol]fix.Symbol{b.Reft.Bind: a.Reft.Bind})
	return fix.SortedReft{
		Sort: a.Sort,
		Reft: fix.Reft{Bind: a.Reft.Bind, Pred: conjoin(a.Reft.Pred, alignedPred)},
	}
}

func conjoin(a, b fix.Expr) fix.Expr {
	if lit, ok := a.(fix.EBool); ok && lit.V {
		return b
	}
	if lit, ok := b.(fix.EBool); ok && lit.V {
		return a
	}
	var conjuncts []fix.Expr
	if and, ok := a.(fix.EAnd); ok {
		conjuncts = append(conjuncts, and.Es...)
	} else {
		conjuncts = append(conjuncts, a)
	}
	if and, ok := b.(fix.EAnd); ok {
		conjuncts = append(conjuncts, and.Es...)
	} else {
		conjuncts = append(conjuncts, b)
	}
	return fix.EAnd{Es: conjuncts}
}
