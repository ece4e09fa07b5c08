package reduce

import (
	"strings"

	"github.com/fqdbg/fixprint/fix"
	"github.com/fqdbg/fixprint/util"
)

// ANFPrefix marks administrative temporaries introduced when earlier
// compilation stages normalised expressions into let-bindings.
const ANFPrefix = "lq_anf"

// UndoANF folds administrative let-bindings back into the predicates that
// reference them: any binding named lq_anf* whose refinement is a pure
// self-equality {v | v == e} has e substituted for it everywhere else in the
// environment. Chains unfold one level per round, up to depth rounds, which
// bounds work on cyclic or deeply nested ANF graphs. The unfolded bindings
// stay in the environment; once nothing references them the eraser hides
// them later.
func UndoANF(depth int, env fix.Env) fix.Env {
	for round := 0; round < depth; round++ {
		defs := make(map[fix.Symbol]fix.Expr)
		anfSyms := util.NewEmptySet[fix.Symbol]()
		for sym, entry := range env.All() {
			if !strings.HasPrefix(sym.String(), ANFPrefix) {
				continue
			}
			if def, ok := selfEqualityDef(entry.SR); ok {
				defs[sym] = def
				anfSyms.Add(sym)
			}
		}
		if len(defs) == 0 {
			return env
		}

		changed := false
		next := env
		for sym, entry := range env.All() {
			scoped := defs
			if anfSyms.Contains(sym) {
				// a temporary's defining equality must not be folded into itself
				scoped = make(map[fix.Symbol]fix.Expr, len(defs))
				for k, v := range defs {
					if k != sym {
						scoped[k] = v
					}
				}
			}
			newPred := fix.SubstExprs(entry.SR.Reft.Pred, scoped, nil)
			if fix.ExprString(newPred) == fix.ExprString(entry.SR.Reft.Pred) {
				continue
			}
			changed = true
			entry.SR.Reft.Pred = newPred
			next = next.Set(sym, entry)
		}
		env = next
		if !changed {
			return env
		}
		logger.Debug("undoANF unfolded a round of temporaries", "round", round, "temporaries", anfSyms.Len())
	}
	return env
}

// selfEqualityDef recognises a refinement of the shape {v | v == e} (or the
// flipped equality) where e does not mention v, and returns e.
func selfEqualityDef(sr fix.SortedReft) (fix.Expr, bool) {
	atom, ok := sr.Reft.Pred.(fix.EAtom)
	if !ok || atom.Rel != fix.RelEq {
		return nil, false
	}
	bind := sr.Reft.Bind
	if v, ok := atom.L.(fix.EVar); ok && v.S == bind && !fix.FreeSymbols(atom.R).Contains(bind) {
		return atom.R, true
	}
	if v, ok := atom.R.(fix.EVar); ok && v.S == bind && !fix.FreeSymbols(atom.L).Contains(bind) {
		return atom.L, true
	}
	return nil, false
}
