// Package fix holds the in-memory representation of a fixpoint verification
// query: symbols, sorts, refinement expressions, binding environments and
// subtyping constraints, together with the solver's standard textual notation
// for all of them.
package fix

import (
	"cmp"
	"sort"
	"strings"

	"github.com/fqdbg/fixprint/util"
)

// Separator is the reserved token splitting a symbol into its prefix and
// suffix. Generated names look like "x##a3" where "x" is the human-chosen
// prefix and "a3" a machine-added suffix.
const Separator = "##"

// Symbol is an immutable interned name. Two symbols are distinct values when
// their uniq tags differ, even if they print identically: name generators in
// earlier compilation stages can mint the same spelling from different
// origins, and the prettifier must still tell them apart.
type Symbol struct {
	text string
	uniq uint32
}

func Sym(text string) Symbol {
	return Symbol{text: text}
}

// SymN returns a symbol spelled like text but distinct from Sym(text) and
// from any SymN with a different n.
func SymN(text string, n uint32) Symbol {
	return Symbol{text: text, uniq: n}
}

func (s Symbol) String() string {
	return s.text
}

func (s Symbol) IsZero() bool {
	return s == Symbol{}
}

// Split decomposes the symbol at the first occurrence of Separator.
// The suffix is empty (and found is false) when no separator is present.
func (s Symbol) Split() (prefix, suffix string, found bool) {
	return util.StringTakeUntil(s.text, Separator)
}

func (s Symbol) Prefix() string {
	prefix, _, _ := s.Split()
	return prefix
}

func (s Symbol) Suffix() string {
	_, suffix, _ := s.Split()
	return suffix
}

// SymJoin reapplies the separator-join: parts are glued with Separator,
// skipping empty segments so that SymJoin("x", "") is just "x".
func SymJoin(parts ...string) Symbol {
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return Sym(strings.Join(nonEmpty, Separator))
}

// CompareSymbols orders by display text, breaking ties on the uniq tag so
// identically-spelled symbols still sort deterministically.
func CompareSymbols(a, b Symbol) int {
	if c := cmp.Compare(a.text, b.text); c != 0 {
		return c
	}
	return cmp.Compare(a.uniq, b.uniq)
}

// Symbols sorts ascending by CompareSymbols; it satisfies sort.Interface so
// the sorted-slice set operations from xtgo/set apply to it.
type Symbols []Symbol

var _ sort.Interface = Symbols{}

func (s Symbols) Len() int           { return len(s) }
func (s Symbols) Less(i, j int) bool { return CompareSymbols(s[i], s[j]) < 0 }
func (s Symbols) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// symbolComparer makes Symbol usable as an immutable.SortedMap key.
type symbolComparer struct{}

func (symbolComparer) Compare(a, b Symbol) int {
	return CompareSymbols(a, b)
}
