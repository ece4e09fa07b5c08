// Package reduce implements the semantic reduction passes the prettifier
// composes: duplicate-binding merging, ANF unfolding, boolean simplification,
// refinement inlining and irrelevance pruning. All passes are total, pure
// functions over well-formed environments; the prettify pipeline depends only
// on the Passes struct so tests can swap in stubs.
package reduce

import (
	"github.com/fqdbg/fixprint/fix"
	"github.com/fqdbg/fixprint/internal/log"
	"github.com/hashicorp/go-set/v3"
)

var logger = log.DefaultLogger.With("section", "reduce")

// AxiomSymbolIndex maps a symbol to every other symbol it co-occurs with in
// some background axiom.
type AxiomSymbolIndex map[fix.Symbol]*set.Set[fix.Symbol]

// Passes bundles the reduction passes as function-typed capabilities.
type Passes struct {
	MergeDuplicates      func(recs []fix.BindRecord) fix.Env
	UndoANF              func(depth int, env fix.Env) fix.Env
	SimplifyBooleanRefts func(env fix.Env) fix.Env
	InlineInSortedReft   func(depth int, env fix.Env, sr fix.SortedReft) fix.SortedReft
	DropLikelyIrrelevant func(axIdx AxiomSymbolIndex, live *set.Set[fix.Symbol], env fix.Env) fix.Env
}

func DefaultPasses() Passes {
	return Passes{
		MergeDuplicates:      MergeDuplicates,
		UndoANF:              UndoANF,
		SimplifyBooleanRefts: SimplifyBooleanRefts,
		InlineInSortedReft:   InlineInSortedReft,
		DropLikelyIrrelevant: DropLikelyIrrelevant,
	}
}

// AxiomEnvSymbols indexes symbol co-occurrence across the axiom environment:
// for every symbol an axiom mentions (including the axiom's own name), the
// index records the other symbols of that axiom.
func AxiomEnvSymbols(axioms []fix.Axiom) AxiomSymbolIndex {
	idx := make(AxiomSymbolIndex)
	for _, ax := range axioms {
		syms := fix.FreeSymbols(ax.Body)
		syms.Insert(ax.Name)
		for s := range syms.Items() {
			entry, ok := idx[s]
			if !ok {
				entry = set.New[fix.Symbol](syms.Size())
				idx[s] = entry
			}
			for t := range syms.Items() {
				if t != s {
					entry.Insert(t)
				}
			}
		}
	}
	return idx
}
