package fix

import (
	"github.com/hashicorp/go-set/v3"
)

// Reft is a refinement: a bound "self" symbol naming the refined value and a
// predicate over it.
type Reft struct {
	Bind Symbol
	Pred Expr
}

// SortedReft pairs a refinement with its base sort.
type SortedReft struct {
	Sort Sort
	Reft Reft
}

// FreeSymbols returns the symbols the refinement references, excluding its
// own bound symbol but including symbols named by the sort.
func (sr SortedReft) FreeSymbols() *set.Set[Symbol] {
	syms := FreeSymbols(sr.Reft.Pred)
	syms.Remove(sr.Reft.Bind)
	for _, s := range sortSymbols(sr.Sort, nil) {
		syms.Insert(s)
	}
	return syms
}

func (sr SortedReft) String() string {
	return "{" + sr.Reft.Bind.String() + " : " + sr.Sort.String() + " | " + ExprString(sr.Reft.Pred) + "}"
}

// TrueSortedReft is the trivial refinement {v : sort | true}.
func TrueSortedReft(sort Sort) SortedReft {
	return SortedReft{
		Sort: sort,
		Reft: Reft{Bind: Sym("v"), Pred: PTrue},
	}
}
