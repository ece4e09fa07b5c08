// Package prettify renders one constraint at a time into legible text: it
// composes the reduction passes, shortens the surviving symbols, hides
// bindings nothing references anymore, and assembles the final document.
package prettify

import (
	"fmt"
	"maps"
	"strconv"

	"github.com/fqdbg/fixprint/fix"
	"github.com/fqdbg/fixprint/internal/log"
	"github.com/fqdbg/fixprint/util"
)

var logger = log.DefaultLogger.With("section", "prettify")

// prefixGroups partitions symbols by prefix and, within a prefix, by suffix.
// Subgroups are disjoint by construction, which is what makes the renaming
// rules below collision-free; keep all inserts going through insert so the
// partition property holds.
type prefixGroups struct {
	byPrefix map[string]map[string][]fix.Symbol
}

func newPrefixGroups() *prefixGroups {
	return &prefixGroups{byPrefix: make(map[string]map[string][]fix.Symbol)}
}

func (g *prefixGroups) insert(sym fix.Symbol) {
	prefix, suffix, _ := sym.Split()
	bySuffix, ok := g.byPrefix[prefix]
	if !ok {
		bySuffix = make(map[string][]fix.Symbol)
		g.byPrefix[prefix] = bySuffix
	}
	bySuffix[suffix] = append(bySuffix[suffix], sym)
}

// ShortenSymbols proposes a replacement for each of the given distinct
// symbols such that every replacement starts with the original's prefix, all
// replacements are pairwise distinct, and a symbol decays to its bare prefix
// whenever that provably cannot collide:
//
//   - a prefix group with a single suffix subgroup of a single symbol renames
//     that symbol to the bare prefix;
//   - a singleton suffix subgroup otherwise keeps prefix##suffix;
//   - subgroups with several symbols (identical display names from different
//     origins) get 1-based index decorations, prefix##suffix##i, skipping any
//     decoration another subgroup already kept.
func ShortenSymbols(syms []fix.Symbol) map[fix.Symbol]fix.Symbol {
	groups := newPrefixGroups()
	for _, sym := range syms {
		groups.insert(sym)
	}

	out := make(map[fix.Symbol]fix.Symbol, len(syms))
	for prefix, bySuffix := range groups.byPrefix {
		lone := len(bySuffix) == 1

		// singleton subgroups first; their kept names constrain the index
		// decoration below, since a suffix containing the separator can
		// spell the same text an index would mint
		taken := util.NewEmptySet[fix.Symbol]()
		for suffix, members := range bySuffix {
			if len(members) > 1 {
				continue
			}
			name := fix.SymJoin(prefix, suffix)
			if lone {
				name = fix.Sym(prefix)
			}
			out[members[0]] = name
			taken.Add(name)
		}

		for suffix, members := range bySuffix {
			if len(members) <= 1 {
				continue
			}
			i := 1
			for _, sym := range members {
				name := fix.SymJoin(prefix, suffix, strconv.Itoa(i))
				for taken.Contains(name) {
					i++
					name = fix.SymJoin(prefix, suffix, strconv.Itoa(i))
				}
				out[sym] = name
				taken.Add(name)
				i++
			}
		}
	}
	return out
}

// renameSortedReft applies the shortening map to a refinement: to its sort,
// to the free symbols of its predicate, and to the refinement's own bound
// symbol, which is mapped to its bare prefix for the duration of the
// substitution so self-references shorten consistently even though the bound
// symbol was never part of the environment's key set.
func renameSortedReft(renames map[fix.Symbol]fix.Symbol, sr fix.SortedReft) fix.SortedReft {
	shortBind := fix.Sym(sr.Reft.Bind.Prefix())
	scoped := make(map[fix.Symbol]fix.Symbol, len(renames)+1)
	maps.Copy(scoped, renames)
	scoped[sr.Reft.Bind] = shortBind
	return fix.SortedReft{
		Sort: fix.SubstSort(sr.Sort, renames),
		Reft: fix.Reft{Bind: shortBind, Pred: fix.SubstSymbols(sr.Reft.Pred, scoped)},
	}
}

// renameEnv rewrites the environment into the ordered binding list the
// eraser consumes, replacing keys and refinements consistently. Every key
// must be covered by the shortening map; a gap means the map was computed
// from a different environment, which is a bug here, not bad input.
func renameEnv(renames map[fix.Symbol]fix.Symbol, env fix.Env) []util.Pair[fix.Symbol, fix.SortedReft] {
	binds := make([]util.Pair[fix.Symbol, fix.SortedReft], 0, env.Len())
	for sym, entry := range env.All() {
		newSym, ok := renames[sym]
		if !ok {
			panic(fmt.Sprintf("no replacement for environment key %s", sym))
		}
		binds = append(binds, util.NewPair(newSym, renameSortedReft(renames, entry.SR)))
	}
	return binds
}
