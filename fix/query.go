package fix

import (
	"fmt"
	"strings"
)

// Tag carries the solver's provenance markers for a constraint.
type Tag []int

func (t Tag) String() string {
	parts := make([]string, len(t))
	for i, n := range t {
		parts[i] = fmt.Sprint(n)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// SubC is a subtyping constraint: an obligation that Lhs entails Rhs within
// the environment named by EnvIDs. Every symbol free in Lhs/Rhs that should
// resolve in scope has a binding among EnvIDs; after display simplification
// that invariant is intentionally relaxed by elision.
type SubC struct {
	EnvIDs []BindID
	Lhs    SortedReft
	Rhs    SortedReft
	ID     *int
	Tag    Tag
	// Info is opaque metadata attached by the solver frontend; the
	// prettifier only ever prints it.
	Info any
}

// Axiom is a background fact available to the solver, named so the
// irrelevance pruner can reason about which symbols co-occur in it.
type Axiom struct {
	Name Symbol
	Body Expr
}

// Query is a whole verification query: constraints, the shared binding table
// and the axiom environment. The prettifier treats it as read-only and
// derives fresh structures per constraint.
type Query struct {
	Constraints []SubC
	Binds       BindEnv
	Axioms      []Axiom
}

// Validate checks the cheap well-formedness invariant a user-supplied query
// file can break: every binding identifier a constraint names must resolve in
// the binding table. Deeper violations (ill-scoped symbols) surface as panics
// inside the pipeline, per the contract that a partially wrong diagnostic is
// worse than none.
func (q *Query) Validate() error {
	for i, c := range q.Constraints {
		for _, id := range c.EnvIDs {
			if _, ok := q.Binds.Get(id); !ok {
				return fmt.Errorf("constraint %d references bind id %d which is not in the binding table", i, id)
			}
		}
	}
	return nil
}
