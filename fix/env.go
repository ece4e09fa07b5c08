package fix

import (
	"fmt"
	"iter"

	"github.com/benbjohnson/immutable"
)

// BindID identifies one row of a query's shared binding table.
type BindID int

// Bind is a row of the binding table: a named sorted refinement.
type Bind struct {
	Sym Symbol
	SR  SortedReft
}

// BindEnv is the query-wide binding table, shared by all constraints. It is a
// read-only input to the prettifier.
type BindEnv struct {
	binds map[BindID]Bind
}

func NewBindEnv(binds map[BindID]Bind) BindEnv {
	return BindEnv{binds: binds}
}

func (be BindEnv) Len() int {
	return len(be.binds)
}

func (be BindEnv) Get(id BindID) (Bind, bool) {
	b, ok := be.binds[id]
	return b, ok
}

// Lookup resolves a binding identifier. A missing identifier is a broken
// invariant of the query itself, never a per-constraint condition, so it
// aborts rather than returning an error.
func (be BindEnv) Lookup(id BindID) Bind {
	b, ok := be.binds[id]
	if !ok {
		panic(fmt.Sprintf("bind id %d not present in binding table", id))
	}
	return b
}

// BindRecord is one raw (identifier, symbol, refinement) triple collected
// from a constraint's environment scope, before duplicate symbols have been
// consolidated.
type BindRecord struct {
	ID  BindID
	Sym Symbol
	SR  SortedReft
}

// EnvEntry is a consolidated binding: the refinement visible under a symbol
// plus every table identifier that contributed it.
type EnvEntry struct {
	IDs []BindID
	SR  SortedReft
}

// Env is a per-constraint binding environment: Symbol keys, no duplicates,
// persistent so the reduction passes can derive variants without copying.
// Iteration order is ascending by symbol, which keeps one run's output stable.
type Env struct {
	m *immutable.SortedMap[Symbol, EnvEntry]
}

func NewEnv() Env {
	return Env{m: immutable.NewSortedMap[Symbol, EnvEntry](symbolComparer{})}
}

func (e Env) Len() int {
	if e.m == nil {
		return 0
	}
	return e.m.Len()
}

func (e Env) Get(s Symbol) (EnvEntry, bool) {
	if e.m == nil {
		return EnvEntry{}, false
	}
	return e.m.Get(s)
}

func (e Env) Set(s Symbol, entry EnvEntry) Env {
	if e.m == nil {
		e = NewEnv()
	}
	return Env{m: e.m.Set(s, entry)}
}

// All iterates entries in ascending symbol order.
func (e Env) All() iter.Seq2[Symbol, EnvEntry] {
	return func(yield func(Symbol, EnvEntry) bool) {
		if e.m == nil {
			return
		}
		itr := e.m.Iterator()
		for {
			k, v, ok := itr.Next()
			if !ok {
				return
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// Union overlays other on top of e: keys present in other win, keys only in
// e survive. This is the fallback rule the pipeline uses to compose pass
// outputs, so a pass that returns a partial environment never loses bindings
// it did not touch.
func (e Env) Union(other Env) Env {
	out := e
	for sym, entry := range other.All() {
		out = out.Set(sym, entry)
	}
	return out
}

// Symbols returns the key set in ascending order.
func (e Env) Symbols() []Symbol {
	syms := make([]Symbol, 0, e.Len())
	for sym := range e.All() {
		syms = append(syms, sym)
	}
	return syms
}
