package fix

import (
	"fmt"
	"strconv"
	"strings"
)

// ExprString renders an expression in the solver's fixed-point notation.
func ExprString(expr Expr) string {
	ctx := &showContext{Builder: &strings.Builder{}}
	ctx.showExprWalker(expr)
	return ctx.String()
}

type showContext struct {
	*strings.Builder
}

func (ctx *showContext) showExprWalker(expr Expr) {
	if expr == nil {
		ctx.WriteString("nil")
		return
	}
	switch expr := expr.(type) {
	case EVar:
		ctx.WriteString(expr.S.String())
	case EInt:
		ctx.WriteString(strconv.FormatInt(expr.V, 10))
	case EStr:
		ctx.WriteString(strconv.Quote(expr.V))
	case EBool:
		ctx.WriteString(strconv.FormatBool(expr.V))
	case EBin:
		ctx.infix(expr.Op.String(), expr.L, expr.R)
	case EAtom:
		ctx.infix(expr.Rel.String(), expr.L, expr.R)
	case ENot:
		ctx.WriteString("(not ")
		ctx.showExprWalker(expr.E)
		ctx.WriteString(")")
	case EAnd:
		ctx.junction("&&", "true", expr.Es)
	case EOr:
		ctx.junction("||", "false", expr.Es)
	case EImp:
		ctx.infix("=>", expr.L, expr.R)
	case EIff:
		ctx.infix("<=>", expr.L, expr.R)
	case EIte:
		ctx.WriteString("(if ")
		ctx.showExprWalker(expr.Cond)
		ctx.WriteString(" then ")
		ctx.showExprWalker(expr.Then)
		ctx.WriteString(" else ")
		ctx.showExprWalker(expr.Else)
		ctx.WriteString(")")
	case EApp:
		ctx.WriteString(expr.Fn.String())
		ctx.WriteString("(")
		for i, arg := range expr.Args {
			if i > 0 {
				ctx.WriteString(", ")
			}
			ctx.showExprWalker(arg)
		}
		ctx.WriteString(")")
	default:
		panic(fmt.Sprintf("showExprWalker: unhandled expression %T", expr))
	}
}

func (ctx *showContext) infix(op string, l, r Expr) {
	ctx.WriteString("(")
	ctx.showExprWalker(l)
	ctx.WriteString(" ")
	ctx.WriteString(op)
	ctx.WriteString(" ")
	ctx.showExprWalker(r)
	ctx.WriteString(")")
}

// junction prints n-ary conjunction/disjunction, collapsing the empty and
// singleton cases the way the solver prints them.
func (ctx *showContext) junction(op string, unit string, es []Expr) {
	switch len(es) {
	case 0:
		ctx.WriteString(unit)
	case 1:
		ctx.showExprWalker(es[0])
	default:
		ctx.WriteString("(")
		for i, sub := range es {
			if i > 0 {
				ctx.WriteString(" " + op + " ")
			}
			ctx.showExprWalker(sub)
		}
		ctx.WriteString(")")
	}
}
