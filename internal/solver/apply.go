package solver

import (
	"github.com/clp-framework/clp/pkg/clp"
)

// binding is the lookup view of an assignment sequence. Later entries
// for the same symbol do not shadow earlier ones; the first assignment
// of a symbol wins.
type binding map[clp.Symbol]clp.AssignedValue

func newBinding(assignments []clp.Assignment) binding {
	b := make(binding, len(assignments))
	for _, a := range assignments {
		if _, ok := b[a.Name]; !ok {
			b[a.Name] = a.Value
		}
	}
	return b
}

// applyProgram rewrites a program, replacing every variable leaf whose
// symbol is bound with the bound value. Unbound symbols and symbols
// bound to a value of the wrong kind are left untouched. The input
// tree is never mutated.
func applyProgram(p clp.Program, assignments []clp.Assignment) clp.Program {
	return newBinding(assignments).program(p)
}

func (b binding) program(p clp.Program) clp.Program {
	switch p := p.(type) {
	case clp.Solve:
		return clp.Solve{Goal: b.goal(p.Goal)}
	case clp.SolveAnd:
		return clp.SolveAnd{Goal: b.goal(p.Goal), Rest: b.program(p.Rest)}
	case clp.ConstrainAnd:
		return clp.ConstrainAnd{Constraint: b.constraint(p.Constraint), Rest: b.program(p.Rest)}
	}
	return p
}

func (b binding) goal(g clp.Goal) clp.Goal {
	return clp.Goal{Kind: g.Kind, Constraint: b.constraint(g.Constraint)}
}

func (b binding) constraint(c clp.Constraint) clp.Constraint {
	switch c := c.(type) {
	case clp.BoolConstraint:
		return clp.BoolConstraint{X: b.boolExpr(c.X)}
	case clp.IntConstraint:
		return clp.IntConstraint{X: b.intRel(c.X)}
	}
	return c
}

func (b binding) boolExpr(e clp.BoolExpr) clp.BoolExpr {
	switch e := e.(type) {
	case clp.BoolAnd:
		return clp.BoolAnd{A: b.boolExpr(e.A), B: b.boolExpr(e.B)}
	case clp.BoolOr:
		return clp.BoolOr{A: b.boolExpr(e.A), B: b.boolExpr(e.B)}
	case clp.BoolImplies:
		return clp.BoolImplies{A: b.boolExpr(e.A), B: b.boolExpr(e.B)}
	case clp.BoolEquals:
		return clp.BoolEquals{A: b.boolExpr(e.A), B: b.boolExpr(e.B)}
	case clp.BoolNot:
		return clp.BoolNot{X: b.boolExpr(e.X)}
	case clp.BoolParen:
		return clp.BoolParen{X: b.boolExpr(e.X)}
	case clp.BoolVar:
		if v, ok := b[e.Name].(clp.BooleanValue); ok {
			return clp.BoolLit{Value: v}
		}
		return e
	}
	return e
}

func (b binding) intExpr(e clp.IntExpr) clp.IntExpr {
	switch e := e.(type) {
	case clp.IntVar:
		if v, ok := b[e.Name].(clp.IntegerNumber); ok {
			return clp.IntLit{Value: v}
		}
		return e
	case clp.IntParen:
		return clp.IntParen{X: b.intExpr(e.X)}
	case clp.IntNegate:
		return clp.IntNegate{X: b.intExpr(e.X)}
	case clp.IntAdd:
		return clp.IntAdd{A: b.intExpr(e.A), B: b.intExpr(e.B)}
	case clp.IntMinus:
		return clp.IntMinus{A: b.intExpr(e.A), B: b.intExpr(e.B)}
	case clp.IntTimes:
		return clp.IntTimes{A: b.intExpr(e.A), B: b.intExpr(e.B)}
	case clp.IntDivide:
		return clp.IntDivide{A: b.intExpr(e.A), B: b.intExpr(e.B)}
	case clp.IntModulo:
		return clp.IntModulo{A: b.intExpr(e.A), B: b.intExpr(e.B)}
	}
	return e
}

func (b binding) intRel(r clp.IntRel) clp.IntRel {
	switch r := r.(type) {
	case clp.Equals:
		return clp.Equals{A: b.intExpr(r.A), B: b.intExpr(r.B)}
	case clp.Different:
		return clp.Different{A: b.intExpr(r.A), B: b.intExpr(r.B)}
	case clp.Greater:
		return clp.Greater{A: b.intExpr(r.A), B: b.intExpr(r.B)}
	case clp.Less:
		return clp.Less{A: b.intExpr(r.A), B: b.intExpr(r.B)}
	case clp.In:
		return clp.In{X: b.intExpr(r.X), Domain: b.intDomain(r.Domain)}
	}
	return r
}

// Substitution recurses into the bound expressions embedded in domain
// shapes so that no reachable symbol escapes it.
func (b binding) intDomain(d clp.IntDomain) clp.IntDomain {
	switch d := d.(type) {
	case clp.ClosedRange:
		return clp.ClosedRange{Low: b.intExpr(d.Low), High: b.intExpr(d.High)}
	case clp.OpenRange:
		return clp.OpenRange{Low: b.intExpr(d.Low), High: b.intExpr(d.High)}
	case clp.OpenClosedRange:
		return clp.OpenClosedRange{Low: b.intExpr(d.Low), High: b.intExpr(d.High)}
	case clp.ClosedOpenRange:
		return clp.ClosedOpenRange{Low: b.intExpr(d.Low), High: b.intExpr(d.High)}
	case clp.ExplicitSet:
		elements := make([]clp.IntExpr, len(d.Elements))
		for i, e := range d.Elements {
			elements[i] = b.intExpr(e)
		}
		return clp.ExplicitSet{Elements: elements}
	case clp.Union:
		return clp.Union{A: b.intDomain(d.A), B: b.intDomain(d.B)}
	case clp.Intersection:
		return clp.Intersection{A: b.intDomain(d.A), B: b.intDomain(d.B)}
	case clp.Difference:
		return clp.Difference{A: b.intDomain(d.A), B: b.intDomain(d.B)}
	case clp.Complement:
		return clp.Complement{X: b.intDomain(d.X)}
	}
	return d
}
