package prettify

import (
	"github.com/fqdbg/fixprint/fix"
	"github.com/fqdbg/fixprint/util"
	"github.com/hashicorp/go-set/v3"
)

// EnvLine is one row of the rendered environment listing. Erased bindings
// keep their position and refinement but render anonymously; Key stays set
// either way so ordering remains stable.
type EnvLine struct {
	Key   fix.Symbol
	Named bool
	SR    fix.SortedReft
}

// EraseUnused marks every binding whose symbol is unreachable from the live
// set as anonymous. Reachability is a single union over the live set and the
// free symbols of every binding's predicate, including predicates of bindings
// that are themselves unreachable; it is not a transitive walk of the binding
// graph, so a binding referenced only by an already-dead binding is still
// retained. Symbols appearing only inside a binding's sort do not keep
// anything alive. The rendered output depends on this exact behaviour.
func EraseUnused(live *set.Set[fix.Symbol], binds []util.Pair[fix.Symbol, fix.SortedReft]) []EnvLine {
	reachable := live.Copy()
	for _, bind := range binds {
		frees := fix.FreeSymbols(bind.Snd.Reft.Pred)
		frees.Remove(bind.Snd.Reft.Bind)
		for sym := range frees.Items() {
			reachable.Insert(sym)
		}
	}

	lines := make([]EnvLine, len(binds))
	for i, bind := range binds {
		lines[i] = EnvLine{
			Key:   bind.Fst,
			Named: reachable.Contains(bind.Fst),
			SR:    bind.Snd,
		}
	}
	return lines
}
