package solver

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/clp-framework/clp/pkg/clp"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
	unknown       = 0
)

// skeleton translates the propositional structure of a program into a
// logic circuit. Boolean variables map to literals, integer relations
// map to fresh unconstrained literals, so the encoding is an
// abstraction of the program: unsatisfiability of the skeleton proves
// unsatisfiability of the program, satisfiability proves nothing.
type skeleton struct {
	c    *logic.C
	lits map[clp.Symbol]z.Lit
}

// propositionalModel solves the program's propositional skeleton
// before any sampling. When the skeleton is unsatisfiable the second
// return is true and the program is contradictory as a whole. When it
// is satisfiable the returned model fixes one legal value per boolean
// variable, which the attempt generator uses to pin boolean domains.
func propositionalModel(p clp.Program) (map[clp.Symbol]clp.BooleanValue, bool) {
	sk := &skeleton{
		c:    logic.NewC(),
		lits: make(map[clp.Symbol]z.Lit),
	}
	conjuncts := conjunctsOf(p)
	roots := make([]z.Lit, 0, len(conjuncts))
	for _, c := range conjuncts {
		roots = append(roots, sk.constraint(c))
	}

	g := gini.New()
	sk.c.ToCnf(g)
	g.Assume(roots...)
	switch g.Solve() {
	case unsatisfiable:
		return nil, true
	case satisfiable:
		model := make(map[clp.Symbol]clp.BooleanValue, len(sk.lits))
		for sym, lit := range sk.lits {
			model[sym] = clp.BooleanValue(g.Value(lit))
		}
		return model, false
	}
	return nil, false
}

func (sk *skeleton) litOf(s clp.Symbol) z.Lit {
	if _, ok := sk.lits[s]; !ok {
		sk.lits[s] = sk.c.Lit()
	}
	return sk.lits[s]
}

func (sk *skeleton) constraint(c clp.Constraint) z.Lit {
	switch c := c.(type) {
	case clp.BoolConstraint:
		return sk.boolExpr(c.X)
	case clp.IntConstraint:
		// Opaque to the propositional abstraction.
		return sk.c.Lit()
	}
	return sk.c.Lit()
}

func (sk *skeleton) boolExpr(e clp.BoolExpr) z.Lit {
	switch e := e.(type) {
	case clp.BoolAnd:
		return sk.c.And(sk.boolExpr(e.A), sk.boolExpr(e.B))
	case clp.BoolOr:
		return sk.c.Or(sk.boolExpr(e.A), sk.boolExpr(e.B))
	case clp.BoolImplies:
		return sk.c.Or(sk.boolExpr(e.A).Not(), sk.boolExpr(e.B))
	case clp.BoolEquals:
		a, b := sk.boolExpr(e.A), sk.boolExpr(e.B)
		return sk.c.Or(sk.c.And(a, b), sk.c.And(a.Not(), b.Not()))
	case clp.BoolNot:
		return sk.boolExpr(e.X).Not()
	case clp.BoolParen:
		return sk.boolExpr(e.X)
	case clp.BoolVar:
		return sk.litOf(e.Name)
	case clp.BoolLit:
		if bool(e.Value) {
			return sk.c.T
		}
		return sk.c.F
	}
	return sk.c.Lit()
}
