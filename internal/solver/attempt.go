package solver

import (
	"math"

	"github.com/clp-framework/clp/pkg/clp"
)

// conjunctsOf flattens the right-leaning program list into its
// constraint conjuncts, goal constraints included, in program order.
func conjunctsOf(p clp.Program) []clp.Constraint {
	var out []clp.Constraint
	for {
		switch n := p.(type) {
		case clp.Solve:
			return append(out, n.Goal.Constraint)
		case clp.SolveAnd:
			out = append(out, n.Goal.Constraint)
			p = n.Rest
		case clp.ConstrainAnd:
			out = append(out, n.Constraint)
			p = n.Rest
		default:
			return out
		}
	}
}

// goalsOf flattens the program list into its goals, in program order.
func goalsOf(p clp.Program) []clp.Goal {
	var out []clp.Goal
	for {
		switch n := p.(type) {
		case clp.Solve:
			return append(out, n.Goal)
		case clp.SolveAnd:
			out = append(out, n.Goal)
			p = n.Rest
		case clp.ConstrainAnd:
			p = n.Rest
		default:
			return out
		}
	}
}

// candidate is one free variable queued for sampling, with its domain
// narrowed by the conjuncts that constrain the bare variable directly.
type candidate struct {
	variable clp.Variable
	// pinned marks variables declared over a single-value domain
	// (an In conjunct naming a one-element set); they surface as
	// constants in the solution rather than search results.
	pinned bool
}

// narrow deduplicates the analyzer's output by symbol (first
// occurrence wins) and intersects each variable's synthesized
// Universe domain with every conjunct that constrains the bare
// variable: equalities pin it to a single value, orderings cut the
// universe to a half range, Different removes a point, In intersects
// with the named domain, and bare or negated boolean variables pin
// the boolean. Boolean variables covered by the propositional model
// are pinned to their model value. Variables with no such conjunct
// keep their Universe domain.
func narrow(p clp.Program, free []clp.Variable, model map[clp.Symbol]clp.BooleanValue) []candidate {
	index := make(map[clp.Symbol]int, len(free))
	var cands []candidate
	for _, v := range free {
		if _, ok := index[v.Name]; ok {
			continue
		}
		if _, ok := v.Domain.(clp.BoolUniverse); ok {
			if mv, ok := model[v.Name]; ok {
				v.Domain = clp.BoolSingle{Value: mv}
			}
		}
		index[v.Name] = len(cands)
		cands = append(cands, candidate{variable: v})
	}

	intersect := func(i int, d clp.IntDomain) {
		cur, ok := cands[i].variable.Domain.(clp.IntDomain)
		if !ok {
			return
		}
		if _, ok := cur.(clp.IntUniverse); ok {
			cands[i].variable.Domain = d
			return
		}
		cands[i].variable.Domain = clp.Intersection{A: cur, B: d}
	}
	pinBool := func(i int, v clp.BooleanValue) {
		switch cur := cands[i].variable.Domain.(type) {
		case clp.BoolUniverse:
			cands[i].variable.Domain = clp.BoolSingle{Value: v}
		case clp.BoolSingle:
			if cur.Value != v {
				cands[i].variable.Domain = clp.BoolEmpty{}
			}
		}
	}
	concreteSide := func(v clp.IntExpr, e clp.IntExpr) (int, bool) {
		x, ok := v.(clp.IntVar)
		if !ok {
			return 0, false
		}
		i, ok := index[x.Name]
		if !ok || len(e.Free()) != 0 {
			return 0, false
		}
		return i, true
	}
	minLit := clp.IntLit{Value: clp.NewInt(math.MinInt64)}
	maxLit := clp.IntLit{Value: clp.NewInt(math.MaxInt64)}

	for _, c := range conjunctsOf(p) {
		switch c := c.(type) {
		case clp.BoolConstraint:
			switch e := c.X.(type) {
			case clp.BoolVar:
				if i, ok := index[e.Name]; ok {
					pinBool(i, clp.True)
				}
			case clp.BoolNot:
				if v, ok := e.X.(clp.BoolVar); ok {
					if i, ok := index[v.Name]; ok {
						pinBool(i, clp.False)
					}
				}
			case clp.BoolEquals:
				if v, ok := e.A.(clp.BoolVar); ok {
					if l, lok := e.B.(clp.BoolLit); lok {
						if i, ok := index[v.Name]; ok {
							pinBool(i, l.Value)
						}
					}
				} else if v, ok := e.B.(clp.BoolVar); ok {
					if l, lok := e.A.(clp.BoolLit); lok {
						if i, ok := index[v.Name]; ok {
							pinBool(i, l.Value)
						}
					}
				}
			}
		case clp.IntConstraint:
			switch r := c.X.(type) {
			case clp.Equals:
				if i, ok := concreteSide(r.A, r.B); ok {
					intersect(i, clp.ExplicitSet{Elements: []clp.IntExpr{r.B}})
				} else if i, ok := concreteSide(r.B, r.A); ok {
					intersect(i, clp.ExplicitSet{Elements: []clp.IntExpr{r.A}})
				}
			case clp.Different:
				if i, ok := concreteSide(r.A, r.B); ok {
					intersect(i, clp.Complement{X: clp.ExplicitSet{Elements: []clp.IntExpr{r.B}}})
				} else if i, ok := concreteSide(r.B, r.A); ok {
					intersect(i, clp.Complement{X: clp.ExplicitSet{Elements: []clp.IntExpr{r.A}}})
				}
			case clp.Greater:
				if i, ok := concreteSide(r.A, r.B); ok {
					intersect(i, clp.OpenClosedRange{Low: r.B, High: maxLit})
				} else if i, ok := concreteSide(r.B, r.A); ok {
					intersect(i, clp.ClosedOpenRange{Low: minLit, High: r.A})
				}
			case clp.Less:
				if i, ok := concreteSide(r.A, r.B); ok {
					intersect(i, clp.ClosedOpenRange{Low: minLit, High: r.B})
				} else if i, ok := concreteSide(r.B, r.A); ok {
					intersect(i, clp.OpenClosedRange{Low: r.A, High: maxLit})
				}
			case clp.In:
				if x, ok := r.X.(clp.IntVar); ok {
					if i, ok := index[x.Name]; ok {
						intersect(i, r.Domain)
						if set, ok := r.Domain.(clp.ExplicitSet); ok && len(set.Elements) == 1 {
							cands[i].pinned = true
						}
					}
				}
			}
		}
	}
	return cands
}

// attempt is a candidate full assignment for one driver iteration.
type attempt struct {
	assignments []clp.Assignment
	pinned      map[clp.Symbol]bool
}

// generateAttempt samples every candidate in order. Assignments made
// earlier in the sequence are substituted into the domain bounds of
// later candidates, so chained equalities resolve in one pass.
// Generation is all or nothing: the first failed sample aborts it,
// and the failing symbol is returned.
func generateAttempt(cands []candidate) (attempt, clp.Symbol, bool) {
	att := attempt{pinned: make(map[clp.Symbol]bool, len(cands))}
	for _, cand := range cands {
		domain := cand.variable.Domain
		if d, ok := domain.(clp.IntDomain); ok {
			domain = newBinding(att.assignments).intDomain(d)
		}
		v, ok := sampleDomain(domain)
		if !ok {
			return attempt{}, cand.variable.Name, false
		}
		att.assignments = append(att.assignments, clp.Assignment{Name: cand.variable.Name, Value: v})
		if cand.pinned {
			att.pinned[cand.variable.Name] = true
		}
	}
	return att, "", true
}
