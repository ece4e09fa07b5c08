package reduce

import (
	"github.com/fqdbg/fixprint/fix"
	"github.com/hashicorp/go-set/v3"
)

// DropLikelyIrrelevant heuristically prunes bindings unlikely to matter to
// the displayed constraint. The live set is grown by one step of axiom
// co-occurrence; a binding survives when its symbol is in the grown set or
// its refinement references one of them. Identifiers are discarded from the
// surviving entries: past this point the environment is display-only.
func DropLikelyIrrelevant(axIdx AxiomSymbolIndex, live *set.Set[fix.Symbol], env fix.Env) fix.Env {
	grown := live.Copy()
	for sym := range live.Items() {
		if co, ok := axIdx[sym]; ok {
			for s := range co.Items() {
				grown.Insert(s)
			}
		}
	}

	out := fix.NewEnv()
	dropped := 0
	for sym, entry := range env.All() {
		if grown.Contains(sym) || intersects(entry.SR.FreeSymbols(), grown) {
			out = out.Set(sym, fix.EnvEntry{SR: entry.SR})
			continue
		}
		dropped++
	}
	if dropped > 0 {
		logger.Debug("pruned likely irrelevant bindings", "dropped", dropped, "kept", out.Len())
	}
	return out
}

func intersects(a, b *set.Set[fix.Symbol]) bool {
	for s := range a.Items() {
		if b.Contains(s) {
			return true
		}
	}
	return false
}
