package fix

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// The on-disk query format is JSON with tagged unions for expressions and
// sorts. It exists so the CLI can load queries the solver frontend dumped;
// the prettifier itself only ever works on the in-memory representation.

type queryJSON struct {
	Constraints []subcJSON          `json:"constraints"`
	Binds       map[string]bindJSON `json:"binds"`
	Axioms      []axiomJSON         `json:"axioms"`
}

type subcJSON struct {
	Env  []int           `json:"env"`
	Lhs  sortedReftJSON  `json:"lhs"`
	Rhs  sortedReftJSON  `json:"rhs"`
	ID   *int            `json:"id"`
	Tag  []int           `json:"tag"`
	Info json.RawMessage `json:"info"`
}

type bindJSON struct {
	Sym string `json:"sym"`
	sortedReftJSON
}

type sortedReftJSON struct {
	Sort json.RawMessage `json:"sort"`
	Bind string          `json:"bind"`
	Pred json.RawMessage `json:"pred"`
}

type axiomJSON struct {
	Name string          `json:"name"`
	Body json.RawMessage `json:"body"`
}

// ReadQueryFile parses a JSON-encoded query from disk.
func ReadQueryFile(path string) (*Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	q, err := ReadQuery(f)
	if err != nil {
		return nil, fmt.Errorf("parsing query %s: %w", path, err)
	}
	return q, nil
}

func ReadQuery(r io.Reader) (*Query, error) {
	var raw queryJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	q := &Query{}
	for i, rawC := range raw.Constraints {
		lhs, err := decodeSortedReft(rawC.Lhs)
		if err != nil {
			return nil, fmt.Errorf("constraint %d lhs: %w", i, err)
		}
		rhs, err := decodeSortedReft(rawC.Rhs)
		if err != nil {
			return nil, fmt.Errorf("constraint %d rhs: %w", i, err)
		}
		c := SubC{Lhs: lhs, Rhs: rhs, ID: rawC.ID, Tag: rawC.Tag}
		for _, id := range rawC.Env {
			c.EnvIDs = append(c.EnvIDs, BindID(id))
		}
		if len(rawC.Info) > 0 {
			var info any
			if err := json.Unmarshal(rawC.Info, &info); err != nil {
				return nil, fmt.Errorf("constraint %d info: %w", i, err)
			}
			c.Info = info
		}
		q.Constraints = append(q.Constraints, c)
	}

	binds := make(map[BindID]Bind, len(raw.Binds))
	for key, rawB := range raw.Binds {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("bind id %q is not a number", key)
		}
		sr, err := decodeSortedReft(rawB.sortedReftJSON)
		if err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
		binds[BindID(id)] = Bind{Sym: Sym(rawB.Sym), SR: sr}
	}
	q.Binds = NewBindEnv(binds)

	for i, rawA := range raw.Axioms {
		body, err := decodeExpr(rawA.Body)
		if err != nil {
			return nil, fmt.Errorf("axiom %d: %w", i, err)
		}
		q.Axioms = append(q.Axioms, Axiom{Name: Sym(rawA.Name), Body: body})
	}
	return q, nil
}

func decodeSortedReft(raw sortedReftJSON) (SortedReft, error) {
	sort, err := decodeSort(raw.Sort)
	if err != nil {
		return SortedReft{}, err
	}
	pred, err := decodeExpr(raw.Pred)
	if err != nil {
		return SortedReft{}, err
	}
	bind := raw.Bind
	if bind == "" {
		bind = "v"
	}
	return SortedReft{Sort: sort, Reft: Reft{Bind: Sym(bind), Pred: pred}}, nil
}

func decodeSort(raw json.RawMessage) (Sort, error) {
	if len(raw) == 0 {
		return IntSort{}, fmt.Errorf("missing sort")
	}
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		switch name {
		case "int":
			return IntSort{}, nil
		case "bool":
			return BoolSort{}, nil
		case "real":
			return RealSort{}, nil
		case "str":
			return StrSort{}, nil
		default:
			return nil, fmt.Errorf("unknown sort %q", name)
		}
	}

	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(raw, &tagged); err != nil {
		return nil, fmt.Errorf("sort is neither a name nor a tagged object: %w", err)
	}
	if len(tagged) != 1 {
		return nil, fmt.Errorf("sort object must have exactly one tag, got %d", len(tagged))
	}
	for tag, body := range tagged {
		switch tag {
		case "var":
			var idx int
			if err := json.Unmarshal(body, &idx); err != nil {
				return nil, err
			}
			return VarSort{Idx: idx}, nil
		case "obj":
			var objName string
			if err := json.Unmarshal(body, &objName); err != nil {
				return nil, err
			}
			return ObjSort{Name: Sym(objName)}, nil
		case "app":
			var app struct {
				Ctor string            `json:"ctor"`
				Args []json.RawMessage `json:"args"`
			}
			if err := json.Unmarshal(body, &app); err != nil {
				return nil, err
			}
			args, err := decodeSorts(app.Args)
			if err != nil {
				return nil, err
			}
			return AppSort{Ctor: Sym(app.Ctor), Args: args}, nil
		case "func":
			var fn struct {
				Args []json.RawMessage `json:"args"`
				Ret  json.RawMessage   `json:"ret"`
			}
			if err := json.Unmarshal(body, &fn); err != nil {
				return nil, err
			}
			args, err := decodeSorts(fn.Args)
			if err != nil {
				return nil, err
			}
			ret, err := decodeSort(fn.Ret)
			if err != nil {
				return nil, err
			}
			return FuncSort{Args: args, Ret: ret}, nil
		default:
			return nil, fmt.Errorf("unknown sort tag %q", tag)
		}
	}
	return nil, fmt.Errorf("empty sort object")
}

func decodeSorts(raws []json.RawMessage) ([]Sort, error) {
	sorts := make([]Sort, len(raws))
	for i, raw := range raws {
		s, err := decodeSort(raw)
		if err != nil {
			return nil, err
		}
		sorts[i] = s
	}
	return sorts, nil
}

var binOps = map[string]BinOp{
	"+": OpPlus, "-": OpMinus, "*": OpTimes, "/": OpDiv, "mod": OpMod,
}

var relOps = map[string]RelOp{
	"==": RelEq, "!=": RelNe, "<": RelLt, "<=": RelLe, ">": RelGt, ">=": RelGe,
}

func decodeExpr(raw json.RawMessage) (Expr, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("missing expression")
	}
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(raw, &tagged); err != nil {
		return nil, fmt.Errorf("expression is not a tagged object: %w", err)
	}
	if len(tagged) != 1 {
		return nil, fmt.Errorf("expression object must have exactly one tag, got %d", len(tagged))
	}
	for tag, body := range tagged {
		switch tag {
		case "var":
			var name string
			if err := json.Unmarshal(body, &name); err != nil {
				return nil, err
			}
			return EVar{S: Sym(name)}, nil
		case "int":
			var v int64
			if err := json.Unmarshal(body, &v); err != nil {
				return nil, err
			}
			return EInt{V: v}, nil
		case "str":
			var v string
			if err := json.Unmarshal(body, &v); err != nil {
				return nil, err
			}
			return EStr{V: v}, nil
		case "bool":
			var v bool
			if err := json.Unmarshal(body, &v); err != nil {
				return nil, err
			}
			return EBool{V: v}, nil
		case "bin":
			var bin struct {
				Op string          `json:"op"`
				L  json.RawMessage `json:"l"`
				R  json.RawMessage `json:"r"`
			}
			if err := json.Unmarshal(body, &bin); err != nil {
				return nil, err
			}
			op, ok := binOps[bin.Op]
			if !ok {
				return nil, fmt.Errorf("unknown binary operator %q", bin.Op)
			}
			l, r, err := decodeExprPair(bin.L, bin.R)
			if err != nil {
				return nil, err
			}
			return EBin{Op: op, L: l, R: r}, nil
		case "atom":
			var atom struct {
				Rel string          `json:"rel"`
				L   json.RawMessage `json:"l"`
				R   json.RawMessage `json:"r"`
			}
			if err := json.Unmarshal(body, &atom); err != nil {
				return nil, err
			}
			rel, ok := relOps[atom.Rel]
			if !ok {
				return nil, fmt.Errorf("unknown relation %q", atom.Rel)
			}
			l, r, err := decodeExprPair(atom.L, atom.R)
			if err != nil {
				return nil, err
			}
			return EAtom{Rel: rel, L: l, R: r}, nil
		case "not":
			sub, err := decodeExpr(body)
			if err != nil {
				return nil, err
			}
			return ENot{E: sub}, nil
		case "and":
			es, err := decodeExprList(body)
			if err != nil {
				return nil, err
			}
			return EAnd{Es: es}, nil
		case "or":
			es, err := decodeExprList(body)
			if err != nil {
				return nil, err
			}
			return EOr{Es: es}, nil
		case "imp", "iff":
			var pair struct {
				L json.RawMessage `json:"l"`
				R json.RawMessage `json:"r"`
			}
			if err := json.Unmarshal(body, &pair); err != nil {
				return nil, err
			}
			l, r, err := decodeExprPair(pair.L, pair.R)
			if err != nil {
				return nil, err
			}
			if tag == "imp" {
				return EImp{L: l, R: r}, nil
			}
			return EIff{L: l, R: r}, nil
		case "ite":
			var ite struct {
				Cond json.RawMessage `json:"cond"`
				Then json.RawMessage `json:"then"`
				Else json.RawMessage `json:"else"`
			}
			if err := json.Unmarshal(body, &ite); err != nil {
				return nil, err
			}
			cond, err := decodeExpr(ite.Cond)
			if err != nil {
				return nil, err
			}
			then, err := decodeExpr(ite.Then)
			if err != nil {
				return nil, err
			}
			els, err := decodeExpr(ite.Else)
			if err != nil {
				return nil, err
			}
			return EIte{Cond: cond, Then: then, Else: els}, nil
		case "app":
			var app struct {
				Fn   string            `json:"fn"`
				Args []json.RawMessage `json:"args"`
			}
			if err := json.Unmarshal(body, &app); err != nil {
				return nil, err
			}
			var args []Expr
			for _, rawArg := range app.Args {
				arg, err := decodeExpr(rawArg)
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
			}
			return EApp{Fn: Sym(app.Fn), Args: args}, nil
		default:
			return nil, fmt.Errorf("unknown expression tag %q", tag)
		}
	}
	return nil, fmt.Errorf("empty expression object")
}

func decodeExprPair(rawL, rawR json.RawMessage) (Expr, Expr, error) {
	l, err := decodeExpr(rawL)
	if err != nil {
		return nil, nil, err
	}
	r, err := decodeExpr(rawR)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

func decodeExprList(body json.RawMessage) ([]Expr, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(body, &raws); err != nil {
		return nil, err
	}
	es := make([]Expr, len(raws))
	for i, raw := range raws {
		e, err := decodeExpr(raw)
		if err != nil {
			return nil, err
		}
		es[i] = e
	}
	return es, nil
}
