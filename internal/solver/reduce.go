package solver

import (
	"github.com/clp-framework/clp/pkg/clp"
)

// reduceProgram simplifies a program without changing its denoted
// value: constant arithmetic folds, boolean connectives short-circuit
// once an operand is concrete, integer relations with concrete sides
// collapse to boolean literals, and domain algebra over concrete
// bounds collapses to its simplest shape. Reduction is idempotent.
func reduceProgram(p clp.Program) clp.Program {
	switch p := p.(type) {
	case clp.Solve:
		return clp.Solve{Goal: reduceGoal(p.Goal)}
	case clp.SolveAnd:
		return clp.SolveAnd{Goal: reduceGoal(p.Goal), Rest: reduceProgram(p.Rest)}
	case clp.ConstrainAnd:
		return clp.ConstrainAnd{Constraint: reduceConstraint(p.Constraint), Rest: reduceProgram(p.Rest)}
	}
	return p
}

func reduceGoal(g clp.Goal) clp.Goal {
	return clp.Goal{Kind: g.Kind, Constraint: reduceConstraint(g.Constraint)}
}

func reduceConstraint(c clp.Constraint) clp.Constraint {
	switch c := c.(type) {
	case clp.BoolConstraint:
		return clp.BoolConstraint{X: reduceBool(c.X)}
	case clp.IntConstraint:
		r, v, concrete := reduceRel(c.X)
		if concrete {
			return clp.BoolConstraint{X: clp.BoolLit{Value: v}}
		}
		return clp.IntConstraint{X: r}
	}
	return c
}

func boolLit(e clp.BoolExpr) (clp.BooleanValue, bool) {
	l, ok := e.(clp.BoolLit)
	return l.Value, ok
}

func reduceBool(e clp.BoolExpr) clp.BoolExpr {
	switch e := e.(type) {
	case clp.BoolAnd:
		a := reduceBool(e.A)
		if v, ok := boolLit(a); ok && !bool(v) {
			return clp.BoolLit{Value: clp.False}
		}
		b := reduceBool(e.B)
		if v, ok := boolLit(a); ok && bool(v) {
			return b
		}
		if v, ok := boolLit(b); ok {
			if !bool(v) {
				return clp.BoolLit{Value: clp.False}
			}
			return a
		}
		return clp.BoolAnd{A: a, B: b}
	case clp.BoolOr:
		a := reduceBool(e.A)
		if v, ok := boolLit(a); ok && bool(v) {
			return clp.BoolLit{Value: clp.True}
		}
		b := reduceBool(e.B)
		if v, ok := boolLit(a); ok && !bool(v) {
			return b
		}
		if v, ok := boolLit(b); ok {
			if bool(v) {
				return clp.BoolLit{Value: clp.True}
			}
			return a
		}
		return clp.BoolOr{A: a, B: b}
	case clp.BoolImplies:
		a := reduceBool(e.A)
		if v, ok := boolLit(a); ok {
			if !bool(v) {
				return clp.BoolLit{Value: clp.True}
			}
			return reduceBool(e.B)
		}
		b := reduceBool(e.B)
		if v, ok := boolLit(b); ok {
			if bool(v) {
				return clp.BoolLit{Value: clp.True}
			}
			return clp.BoolNot{X: a}
		}
		return clp.BoolImplies{A: a, B: b}
	case clp.BoolEquals:
		a := reduceBool(e.A)
		b := reduceBool(e.B)
		av, aok := boolLit(a)
		bv, bok := boolLit(b)
		if aok && bok {
			return clp.BoolLit{Value: clp.BooleanValue(av == bv)}
		}
		return clp.BoolEquals{A: a, B: b}
	case clp.BoolNot:
		x := reduceBool(e.X)
		if v, ok := boolLit(x); ok {
			return clp.BoolLit{Value: clp.BooleanValue(!bool(v))}
		}
		return clp.BoolNot{X: x}
	case clp.BoolParen:
		return reduceBool(e.X)
	}
	return e
}

func intLit(e clp.IntExpr) (clp.IntegerNumber, bool) {
	l, ok := e.(clp.IntLit)
	return l.Value, ok
}

func reduceInt(e clp.IntExpr) clp.IntExpr {
	fold2 := func(a, b clp.IntExpr, op func(x, y clp.IntegerNumber) clp.IntegerNumber, rebuild func(a, b clp.IntExpr) clp.IntExpr) clp.IntExpr {
		ra, rb := reduceInt(a), reduceInt(b)
		av, aok := intLit(ra)
		bv, bok := intLit(rb)
		if aok && bok {
			return clp.IntLit{Value: op(av, bv)}
		}
		return rebuild(ra, rb)
	}
	switch e := e.(type) {
	case clp.IntParen:
		return reduceInt(e.X)
	case clp.IntNegate:
		x := reduceInt(e.X)
		if v, ok := intLit(x); ok {
			return clp.IntLit{Value: negInt(v)}
		}
		return clp.IntNegate{X: x}
	case clp.IntAdd:
		return fold2(e.A, e.B, addInt, func(a, b clp.IntExpr) clp.IntExpr { return clp.IntAdd{A: a, B: b} })
	case clp.IntMinus:
		return fold2(e.A, e.B, subInt, func(a, b clp.IntExpr) clp.IntExpr { return clp.IntMinus{A: a, B: b} })
	case clp.IntTimes:
		return fold2(e.A, e.B, mulInt, func(a, b clp.IntExpr) clp.IntExpr { return clp.IntTimes{A: a, B: b} })
	case clp.IntDivide:
		return fold2(e.A, e.B, divInt, func(a, b clp.IntExpr) clp.IntExpr { return clp.IntDivide{A: a, B: b} })
	case clp.IntModulo:
		return fold2(e.A, e.B, modInt, func(a, b clp.IntExpr) clp.IntExpr { return clp.IntModulo{A: a, B: b} })
	}
	return e
}

// evalInt reduces an integer expression to a concrete number. The
// second return is false when free variables remain.
func evalInt(e clp.IntExpr) (clp.IntegerNumber, bool) {
	return intLit(reduceInt(e))
}

// reduceRel simplifies an integer relation. When both sides (and, for
// In, the domain bounds) are concrete the relation folds to a boolean
// value, reported through the second and third returns.
func reduceRel(r clp.IntRel) (clp.IntRel, clp.BooleanValue, bool) {
	switch r := r.(type) {
	case clp.Equals:
		a, b := reduceInt(r.A), reduceInt(r.B)
		if av, ok := intLit(a); ok {
			if bv, ok := intLit(b); ok {
				return nil, clp.BooleanValue(av.Equal(bv)), true
			}
		}
		return clp.Equals{A: a, B: b}, clp.False, false
	case clp.Different:
		a, b := reduceInt(r.A), reduceInt(r.B)
		if av, ok := intLit(a); ok {
			if bv, ok := intLit(b); ok {
				return nil, clp.BooleanValue(!av.Equal(bv)), true
			}
		}
		return clp.Different{A: a, B: b}, clp.False, false
	case clp.Greater:
		a, b := reduceInt(r.A), reduceInt(r.B)
		if av, ok := intLit(a); ok {
			if bv, ok := intLit(b); ok {
				return nil, clp.BooleanValue(gtInt(av, bv)), true
			}
		}
		return clp.Greater{A: a, B: b}, clp.False, false
	case clp.Less:
		a, b := reduceInt(r.A), reduceInt(r.B)
		if av, ok := intLit(a); ok {
			if bv, ok := intLit(b); ok {
				return nil, clp.BooleanValue(ltInt(av, bv)), true
			}
		}
		return clp.Less{A: a, B: b}, clp.False, false
	case clp.In:
		x := reduceInt(r.X)
		d := reduceDomain(r.Domain)
		if xv, ok := intLit(x); ok {
			if m, ok := member(xv, d); ok {
				return nil, clp.BooleanValue(m), true
			}
		}
		return clp.In{X: x, Domain: d}, clp.False, false
	}
	return r, clp.False, false
}

// reduceDomain reduces the bound expressions embedded in a domain and
// collapses set algebra with provable outcomes: provably empty ranges,
// identities of union, intersection and difference with the empty
// domain, and double complement.
func reduceDomain(d clp.IntDomain) clp.IntDomain {
	bothLit := func(lo, hi clp.IntExpr) (clp.IntegerNumber, clp.IntegerNumber, bool) {
		lv, lok := intLit(lo)
		hv, hok := intLit(hi)
		return lv, hv, lok && hok
	}
	switch d := d.(type) {
	case clp.ClosedRange:
		lo, hi := reduceInt(d.Low), reduceInt(d.High)
		if lv, hv, ok := bothLit(lo, hi); ok && !leInt(lv, hv) {
			return clp.IntEmpty{}
		}
		return clp.ClosedRange{Low: lo, High: hi}
	case clp.OpenRange:
		lo, hi := reduceInt(d.Low), reduceInt(d.High)
		if lv, hv, ok := bothLit(lo, hi); ok && !ltInt(addInt(lv, clp.NewInt(1)), hv) {
			return clp.IntEmpty{}
		}
		return clp.OpenRange{Low: lo, High: hi}
	case clp.OpenClosedRange:
		lo, hi := reduceInt(d.Low), reduceInt(d.High)
		if lv, hv, ok := bothLit(lo, hi); ok && !leInt(addInt(lv, clp.NewInt(1)), hv) {
			return clp.IntEmpty{}
		}
		return clp.OpenClosedRange{Low: lo, High: hi}
	case clp.ClosedOpenRange:
		lo, hi := reduceInt(d.Low), reduceInt(d.High)
		if lv, hv, ok := bothLit(lo, hi); ok && !ltInt(lv, hv) {
			return clp.IntEmpty{}
		}
		return clp.ClosedOpenRange{Low: lo, High: hi}
	case clp.ExplicitSet:
		elements := make([]clp.IntExpr, 0, len(d.Elements))
		concrete := true
		for _, e := range d.Elements {
			r := reduceInt(e)
			if v, ok := intLit(r); ok {
				// NaN inhabits no domain, so concrete NaN
				// elements are dropped.
				if !v.IsNaN() {
					elements = append(elements, r)
				}
				continue
			}
			concrete = false
			elements = append(elements, r)
		}
		if concrete && len(elements) == 0 {
			return clp.IntEmpty{}
		}
		return clp.ExplicitSet{Elements: elements}
	case clp.Union:
		a, b := reduceDomain(d.A), reduceDomain(d.B)
		if _, ok := a.(clp.IntEmpty); ok {
			return b
		}
		if _, ok := b.(clp.IntEmpty); ok {
			return a
		}
		return clp.Union{A: a, B: b}
	case clp.Intersection:
		a, b := reduceDomain(d.A), reduceDomain(d.B)
		if _, ok := a.(clp.IntEmpty); ok {
			return clp.IntEmpty{}
		}
		if _, ok := b.(clp.IntEmpty); ok {
			return clp.IntEmpty{}
		}
		return clp.Intersection{A: a, B: b}
	case clp.Difference:
		a, b := reduceDomain(d.A), reduceDomain(d.B)
		if _, ok := a.(clp.IntEmpty); ok {
			return clp.IntEmpty{}
		}
		if _, ok := b.(clp.IntEmpty); ok {
			return a
		}
		return clp.Difference{A: a, B: b}
	case clp.Complement:
		x := reduceDomain(d.X)
		switch x := x.(type) {
		case clp.Complement:
			return x.X
		case clp.IntUniverse:
			return clp.IntEmpty{}
		case clp.IntEmpty:
			return clp.IntUniverse{}
		}
		return clp.Complement{X: x}
	}
	return d
}

// member tests set membership of a concrete value. The second return
// is false when a bound or element has not reduced to a concrete
// number, in which case membership is undecidable. NaN is a member of
// no domain, complements included.
func member(v clp.IntegerNumber, d clp.IntDomain) (bool, bool) {
	if v.IsNaN() {
		return false, true
	}
	switch d := d.(type) {
	case clp.IntUniverse:
		return true, true
	case clp.IntEmpty:
		return false, true
	case clp.ClosedRange:
		lo, lok := evalInt(d.Low)
		hi, hok := evalInt(d.High)
		return leInt(lo, v) && leInt(v, hi), lok && hok
	case clp.OpenRange:
		lo, lok := evalInt(d.Low)
		hi, hok := evalInt(d.High)
		return ltInt(lo, v) && ltInt(v, hi), lok && hok
	case clp.OpenClosedRange:
		lo, lok := evalInt(d.Low)
		hi, hok := evalInt(d.High)
		return ltInt(lo, v) && leInt(v, hi), lok && hok
	case clp.ClosedOpenRange:
		lo, lok := evalInt(d.Low)
		hi, hok := evalInt(d.High)
		return leInt(lo, v) && ltInt(v, hi), lok && hok
	case clp.ExplicitSet:
		for _, e := range d.Elements {
			ev, ok := evalInt(e)
			if !ok {
				return false, false
			}
			if ev.Equal(v) {
				return true, true
			}
		}
		return false, true
	case clp.Union:
		am, aok := member(v, d.A)
		bm, bok := member(v, d.B)
		// Decided membership on either side decides the union even
		// when the other side is undecidable.
		if (aok && am) || (bok && bm) {
			return true, true
		}
		return false, aok && bok
	case clp.Intersection:
		am, aok := member(v, d.A)
		bm, bok := member(v, d.B)
		if (aok && !am) || (bok && !bm) {
			return false, true
		}
		return am && bm, aok && bok
	case clp.Difference:
		am, aok := member(v, d.A)
		bm, bok := member(v, d.B)
		if (aok && !am) || (bok && bm) {
			return false, true
		}
		return am && !bm, aok && bok
	case clp.Complement:
		m, ok := member(v, d.X)
		return !m, ok
	}
	return false, false
}
