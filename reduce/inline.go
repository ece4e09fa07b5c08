package reduce

import (
	"github.com/fqdbg/fixprint/fix"
)

// InlineInSortedReft substitutes equality-defined environment bindings into
// the refinement's predicate, up to depth rounds so chained definitions
// unfold without risking non-termination on cyclic substitutions.
func InlineInSortedReft(depth int, env fix.Env, sr fix.SortedReft) fix.SortedReft {
	defs := make(map[fix.Symbol]fix.Expr)
	for sym, entry := range env.All() {
		if sym == sr.Reft.Bind {
			// shadowed by the refinement's own value
			continue
		}
		if def, ok := selfEqualityDef(entry.SR); ok {
			defs[sym] = def
		}
	}
	if len(defs) == 0 {
		return sr
	}
	for round := 0; round < depth; round++ {
		newPred := fix.SubstExprs(sr.Reft.Pred, defs, nil)
		if fix.ExprString(newPred) == fix.ExprString(sr.Reft.Pred) {
			return sr
		}
		sr.Reft.Pred = newPred
	}
	return sr
}
