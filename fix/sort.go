package fix

import (
	"fmt"
	"strings"
)

// Sort is the base type annotation carried by a refinement. Object and
// applied sorts are named by symbols and therefore participate in renaming.
type Sort interface {
	fmt.Stringer
	isSort()
}

type (
	IntSort  struct{}
	BoolSort struct{}
	RealSort struct{}
	StrSort  struct{}

	// VarSort is a sort variable left over from sort inference.
	VarSort struct{ Idx int }

	// ObjSort is an uninterpreted object type named by a symbol.
	ObjSort struct{ Name Symbol }

	// AppSort applies a symbol-named type constructor to argument sorts.
	AppSort struct {
		Ctor Symbol
		Args []Sort
	}

	FuncSort struct {
		Args []Sort
		Ret  Sort
	}
)

func (IntSort) isSort()  {}
func (BoolSort) isSort() {}
func (RealSort) isSort() {}
func (StrSort) isSort()  {}
func (VarSort) isSort()  {}
func (ObjSort) isSort()  {}
func (AppSort) isSort()  {}
func (FuncSort) isSort() {}

func (IntSort) String() string   { return "int" }
func (BoolSort) String() string  { return "bool" }
func (RealSort) String() string  { return "real" }
func (StrSort) String() string   { return "str" }
func (s VarSort) String() string { return fmt.Sprintf("@(%d)", s.Idx) }
func (s ObjSort) String() string { return s.Name.String() }

func (s AppSort) String() string {
	sb := &strings.Builder{}
	sb.WriteString("(")
	sb.WriteString(s.Ctor.String())
	for _, arg := range s.Args {
		sb.WriteString(" ")
		sb.WriteString(arg.String())
	}
	sb.WriteString(")")
	return sb.String()
}

func (s FuncSort) String() string {
	sb := &strings.Builder{}
	sb.WriteString("func([")
	for i, arg := range s.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	sb.WriteString("]; ")
	sb.WriteString(s.Ret.String())
	sb.WriteString(")")
	return sb.String()
}

// SubstSort renames every symbol naming an object type or type constructor.
// Symbols absent from sub are left alone.
func SubstSort(s Sort, sub map[Symbol]Symbol) Sort {
	switch sort := s.(type) {
	case ObjSort:
		if replacement, ok := sub[sort.Name]; ok {
			return ObjSort{Name: replacement}
		}
		return sort
	case AppSort:
		newArgs := make([]Sort, len(sort.Args))
		for i, arg := range sort.Args {
			newArgs[i] = SubstSort(arg, sub)
		}
		ctor := sort.Ctor
		if replacement, ok := sub[ctor]; ok {
			ctor = replacement
		}
		return AppSort{Ctor: ctor, Args: newArgs}
	case FuncSort:
		newArgs := make([]Sort, len(sort.Args))
		for i, arg := range sort.Args {
			newArgs[i] = SubstSort(arg, sub)
		}
		return FuncSort{Args: newArgs, Ret: SubstSort(sort.Ret, sub)}
	case IntSort, BoolSort, RealSort, StrSort, VarSort:
		return sort
	default:
		panic(fmt.Sprintf("SubstSort: unhandled sort %T", s))
	}
}

// sortSymbols appends every symbol the sort mentions.
func sortSymbols(s Sort, acc []Symbol) []Symbol {
	switch sort := s.(type) {
	case ObjSort:
		return append(acc, sort.Name)
	case AppSort:
		acc = append(acc, sort.Ctor)
		for _, arg := range sort.Args {
			acc = sortSymbols(arg, acc)
		}
		return acc
	case FuncSort:
		for _, arg := range sort.Args {
			acc = sortSymbols(arg, acc)
		}
		return sortSymbols(sort.Ret, acc)
	default:
		return acc
	}
}
