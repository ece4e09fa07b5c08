package reduce

import (
	"fmt"

	"github.com/fqdbg/fixprint/fix"
)

// SimplifyBooleanRefts rewrites trivially-true/false boolean structure inside
// every refinement predicate of the environment.
func SimplifyBooleanRefts(env fix.Env) fix.Env {
	out := env
	for sym, entry := range env.All() {
		simplified := SimplifyPred(entry.SR.Reft.Pred)
		if fix.ExprString(simplified) == fix.ExprString(entry.SR.Reft.Pred) {
			continue
		}
		entry.SR.Reft.Pred = simplified
		out = out.Set(sym, entry)
	}
	return out
}

// SimplifyPred folds boolean constants: true/false units in conjunction and
// disjunction, double negation, `b == true` and friends, and constant
// conditions in implication, iff and if-then-else.
func SimplifyPred(e fix.Expr) fix.Expr {
	switch expr := e.(type) {
	case fix.EVar, fix.EInt, fix.EStr, fix.EBool:
		return expr
	case fix.EBin:
		return fix.EBin{Op: expr.Op, L: SimplifyPred(expr.L), R: SimplifyPred(expr.R)}
	case fix.EAtom:
		l, r := SimplifyPred(expr.L), SimplifyPred(expr.R)
		if expr.Rel == fix.RelEq {
			if lit, ok := boolLit(l); ok {
				return equateBool(r, lit)
			}
			if lit, ok := boolLit(r); ok {
				return equateBool(l, lit)
			}
		}
		return fix.EAtom{Rel: expr.Rel, L: l, R: r}
	case fix.ENot:
		sub := SimplifyPred(expr.E)
		if lit, ok := boolLit(sub); ok {
			return fix.EBool{V: !lit}
		}
		if not, ok := sub.(fix.ENot); ok {
			return not.E
		}
		return fix.ENot{E: sub}
	case fix.EAnd:
		var kept []fix.Expr
		for _, sub := range expr.Es {
			s := SimplifyPred(sub)
			if lit, ok := boolLit(s); ok {
				if !lit {
					return fix.PFalse
				}
				continue
			}
			if and, ok := s.(fix.EAnd); ok {
				kept = append(kept, and.Es...)
				continue
			}
			kept = append(kept, s)
		}
		switch len(kept) {
		case 0:
			return fix.PTrue
		case 1:
			return kept[0]
		default:
			return fix.EAnd{Es: kept}
		}
	case fix.EOr:
		var kept []fix.Expr
		for _, sub := range expr.Es {
			s := SimplifyPred(sub)
			if lit, ok := boolLit(s); ok {
				if lit {
					return fix.PTrue
				}
				continue
			}
			if or, ok := s.(fix.EOr); ok {
				kept = append(kept, or.Es...)
				continue
			}
			kept = append(kept, s)
		}
		switch len(kept) {
		case 0:
			return fix.PFalse
		case 1:
			return kept[0]
		default:
			return fix.EOr{Es: kept}
		}
	case fix.EImp:
		l, r := SimplifyPred(expr.L), SimplifyPred(expr.R)
		if lit, ok := boolLit(l); ok {
			if lit {
				return r
			}
			return fix.PTrue
		}
		if lit, ok := boolLit(r); ok && lit {
			return fix.PTrue
		}
		return fix.EImp{L: l, R: r}
	case fix.EIff:
		l, r := SimplifyPred(expr.L), SimplifyPred(expr.R)
		if lit, ok := boolLit(l); ok {
			return equateBool(r, lit)
		}
		if lit, ok := boolLit(r); ok {
			return equateBool(l, lit)
		}
		return fix.EIff{L: l, R: r}
	case fix.EIte:
		cond := SimplifyPred(expr.Cond)
		if lit, ok := boolLit(cond); ok {
			if lit {
				return SimplifyPred(expr.Then)
			}
			return SimplifyPred(expr.Else)
		}
		return fix.EIte{Cond: cond, Then: SimplifyPred(expr.Then), Else: SimplifyPred(expr.Else)}
	case fix.EApp:
		args := make([]fix.Expr, len(expr.Args))
		for i, arg := range expr.Args {
			args[i] = SimplifyPred(arg)
		}
		return fix.EApp{Fn: expr.Fn, Args: args}
	default:
		panic(fmt.Sprintf("SimplifyPred: unhandled expression %T", e))
	}
}

func boolLit(e fix.Expr) (bool, bool) {
	lit, ok := e.(fix.EBool)
	return lit.V, ok
}

// equateBool rewrites (p == true) to p and (p == false) to not p, folding
// once more in case p is itself a literal.
func equateBool(e fix.Expr, lit bool) fix.Expr {
	if lit {
		return e
	}
	return SimplifyPred(fix.ENot{E: e})
}
