package fix

import (
	"fmt"

	"github.com/hashicorp/go-set/v3"
)

// Expr is a logical expression over symbols, literals and operators, in the
// solver's refinement logic.
type Expr interface {
	isExpr()
}

type BinOp uint8

const (
	OpPlus = BinOp(iota)
	OpMinus
	OpTimes
	OpDiv
	OpMod
)

func (op BinOp) String() string {
	switch op {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpTimes:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "mod"
	default:
		panic(fmt.Sprintf("invalid binary operator: %d", op))
	}
}

type RelOp uint8

const (
	RelEq = RelOp(iota)
	RelNe
	RelLt
	RelLe
	RelGt
	RelGe
)

func (op RelOp) String() string {
	switch op {
	case RelEq:
		return "=="
	case RelNe:
		return "!="
	case RelLt:
		return "<"
	case RelLe:
		return "<="
	case RelGt:
		return ">"
	case RelGe:
		return ">="
	default:
		panic(fmt.Sprintf("invalid relation operator: %d", op))
	}
}

type (
	EVar struct{ S Symbol }

	EInt struct{ V int64 }

	EStr struct{ V string }

	EBool struct{ V bool }

	EBin struct {
		Op   BinOp
		L, R Expr
	}

	// EAtom is a relational atom such as v > 0.
	EAtom struct {
		Rel  RelOp
		L, R Expr
	}

	ENot struct{ E Expr }

	EAnd struct{ Es []Expr }

	EOr struct{ Es []Expr }

	EImp struct{ L, R Expr }

	EIff struct{ L, R Expr }

	EIte struct{ Cond, Then, Else Expr }

	// EApp applies an uninterpreted function named by a symbol.
	EApp struct {
		Fn   Symbol
		Args []Expr
	}
)

func (EVar) isExpr()  {}
func (EInt) isExpr()  {}
func (EStr) isExpr()  {}
func (EBool) isExpr() {}
func (EBin) isExpr()  {}
func (EAtom) isExpr() {}
func (ENot) isExpr()  {}
func (EAnd) isExpr()  {}
func (EOr) isExpr()   {}
func (EImp) isExpr()  {}
func (EIff) isExpr()  {}
func (EIte) isExpr()  {}
func (EApp) isExpr()  {}

// PTrue and PFalse are the trivial predicates.
var (
	PTrue  = EBool{V: true}
	PFalse = EBool{V: false}
)

// FreeSymbols returns the set of symbols the expression references, including
// the names of applied uninterpreted functions.
func FreeSymbols(e Expr) *set.Set[Symbol] {
	syms := set.New[Symbol](4)
	collectFreeSymbols(e, syms)
	return syms
}

func collectFreeSymbols(e Expr, acc *set.Set[Symbol]) {
	switch expr := e.(type) {
	case EVar:
		acc.Insert(expr.S)
	case EInt, EStr, EBool:
	case EBin:
		collectFreeSymbols(expr.L, acc)
		collectFreeSymbols(expr.R, acc)
	case EAtom:
		collectFreeSymbols(expr.L, acc)
		collectFreeSymbols(expr.R, acc)
	case ENot:
		collectFreeSymbols(expr.E, acc)
	case EAnd:
		for _, sub := range expr.Es {
			collectFreeSymbols(sub, acc)
		}
	case EOr:
		for _, sub := range expr.Es {
			collectFreeSymbols(sub, acc)
		}
	case EImp:
		collectFreeSymbols(expr.L, acc)
		collectFreeSymbols(expr.R, acc)
	case EIff:
		collectFreeSymbols(expr.L, acc)
		collectFreeSymbols(expr.R, acc)
	case EIte:
		collectFreeSymbols(expr.Cond, acc)
		collectFreeSymbols(expr.Then, acc)
		collectFreeSymbols(expr.Else, acc)
	case EApp:
		acc.Insert(expr.Fn)
		for _, arg := range expr.Args {
			collectFreeSymbols(arg, acc)
		}
	default:
		panic(fmt.Sprintf("collectFreeSymbols: unhandled expression %T", e))
	}
}

// SubstSymbols renames free symbols, both at variable occurrences and at
// uninterpreted-function application heads. Symbols absent from sub are left
// untouched.
func SubstSymbols(e Expr, sub map[Symbol]Symbol) Expr {
	return SubstExprs(e, nil, sub)
}

// SubstExprs replaces variable occurrences of the keys of defs by their whole
// definition expression, and renames symbols per rename (either map may be
// nil). Application heads are only renamed, never replaced by expressions.
func SubstExprs(e Expr, defs map[Symbol]Expr, rename map[Symbol]Symbol) Expr {
	switch expr := e.(type) {
	case EVar:
		if def, ok := defs[expr.S]; ok {
			return def
		}
		if replacement, ok := rename[expr.S]; ok {
			return EVar{S: replacement}
		}
		return expr
	case EInt, EStr, EBool:
		return expr
	case EBin:
		return EBin{Op: expr.Op, L: SubstExprs(expr.L, defs, rename), R: SubstExprs(expr.R, defs, rename)}
	case EAtom:
		return EAtom{Rel: expr.Rel, L: SubstExprs(expr.L, defs, rename), R: SubstExprs(expr.R, defs, rename)}
	case ENot:
		return ENot{E: SubstExprs(expr.E, defs, rename)}
	case EAnd:
		return EAnd{Es: substAll(expr.Es, defs, rename)}
	case EOr:
		return EOr{Es: substAll(expr.Es, defs, rename)}
	case EImp:
		return EImp{L: SubstExprs(expr.L, defs, rename), R: SubstExprs(expr.R, defs, rename)}
	case EIff:
		return EIff{L: SubstExprs(expr.L, defs, rename), R: SubstExprs(expr.R, defs, rename)}
	case EIte:
		return EIte{
			Cond: SubstExprs(expr.Cond, defs, rename),
			Then: SubstExprs(expr.Then, defs, rename),
			Else: SubstExprs(expr.Else, defs, rename),
		}
	case EApp:
		fn := expr.Fn
		if replacement, ok := rename[fn]; ok {
			fn = replacement
		}
		return EApp{Fn: fn, Args: substAll(expr.Args, defs, rename)}
	default:
		panic(fmt.Sprintf("SubstExprs: unhandled expression %T", e))
	}
}

func substAll(es []Expr, defs map[Symbol]Expr, rename map[Symbol]Symbol) []Expr {
	out := make([]Expr, len(es))
	for i, e := range es {
		out[i] = SubstExprs(e, defs, rename)
	}
	return out
}
