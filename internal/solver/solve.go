package solver

import (
	"context"
	"errors"
	"math"

	"github.com/clp-framework/clp/pkg/clp"
)

var ErrNoProgram = errors.New("no program provided")

// maxOptimiseRounds bounds the tighten-and-search loop that serves
// Minimise and Maximise goals. The loop's geometric step converges
// over the full 64-bit range well within this budget; exhausting it
// anyway surfaces as a stuck result, never as a false optimum.
const maxOptimiseRounds = 256

type Solver interface {
	Solve(context.Context) ([]clp.Solution, error)
}

type solver struct {
	program clp.Program
	tracer  clp.Tracer
	maxIter int
}

// Driver states. The search loop is an explicit state machine with a
// bounded step counter, so termination is auditable.
type searchState int

const (
	searching searchState = iota
	satisfied
	unsatisfied
	stuck
)

type searchResult struct {
	state searchState
	// order lists resolved symbols in first-assignment order;
	// bindings and pinned are keyed by those symbols.
	order    []clp.Symbol
	bindings map[clp.Symbol]clp.AssignedValue
	pinned   map[clp.Symbol]bool
	// failed and reason qualify the unsatisfied and stuck states.
	failed clp.Symbol
	reason string
}

// Solve runs the analyze, generate, apply, reduce loop over the
// configured program and assembles one Solution per resolved
// variable, or a single Unsatisfiable record. An error is returned
// only for host misuse: a missing program or one rejected by
// validation. Search failures are values, never errors.
func (s *solver) Solve(_ context.Context) ([]clp.Solution, error) {
	if s.program == nil {
		return nil, ErrNoProgram
	}
	if err := validate(s.program); err != nil {
		return nil, err
	}

	res := s.search(s.program)
	if res.state == satisfied {
		res = s.optimise(res)
	}
	if res.state != satisfied {
		return []clp.Solution{failureOf(res)}, nil
	}

	solutions := make([]clp.Solution, 0, len(res.order))
	for _, sym := range res.order {
		if res.pinned[sym] {
			solutions = append(solutions, clp.SolvedConstant{Name: sym, Value: res.bindings[sym]})
			continue
		}
		solutions = append(solutions, clp.SolvedVariable{Name: sym, Value: res.bindings[sym]})
	}
	return solutions, nil
}

func failureOf(res searchResult) clp.Solution {
	if res.state == stuck {
		return clp.Unsatisfiable{Reason: clp.ReasonStuck}
	}
	return clp.Unsatisfiable{Name: res.failed, Reason: res.reason}
}

// search drives one satisfaction run to a terminal state.
func (s *solver) search(p clp.Program) searchResult {
	bound := s.maxIter
	if bound <= 0 {
		bound = 8 + 2*len(p.Free())
	}
	res := searchResult{
		state:    searching,
		bindings: make(map[clp.Symbol]clp.AssignedValue),
		pinned:   make(map[clp.Symbol]bool),
	}

	// A contradictory propositional skeleton sinks the program
	// before any sampling; a satisfiable one yields the boolean
	// model the attempt generator pins boolean variables to.
	model, unsat := propositionalModel(p)
	if unsat {
		res.state = unsatisfied
		res.reason = clp.ReasonContradiction
		return res
	}

	cur := reduceProgram(p)
	for iter := 0; iter < bound && res.state == searching; iter++ {
		free := cur.Free()
		if len(free) == 0 {
			switch inspect(cur) {
			case conjunctionTrue:
				res.state = satisfied
			case conjunctionFalse:
				res.state = unsatisfied
				res.reason = clp.ReasonContradiction
			default:
				res.state = stuck
				res.reason = clp.ReasonStuck
			}
			continue
		}

		att, failed, ok := generateAttempt(narrow(cur, free, model))
		if !ok {
			res.state = unsatisfied
			res.failed = failed
			res.reason = clp.ReasonEmptyDomain
			continue
		}
		s.tracer.Trace(searchPosition{iteration: iter, free: free, assignments: att.assignments})
		for _, a := range att.assignments {
			if _, seen := res.bindings[a.Name]; seen {
				continue
			}
			res.order = append(res.order, a.Name)
			res.bindings[a.Name] = a.Value
			if att.pinned[a.Name] {
				res.pinned[a.Name] = true
			}
		}
		cur = reduceProgram(applyProgram(cur, att.assignments))
	}
	if res.state == searching {
		res.state = stuck
		res.reason = clp.ReasonStuck
	}
	return res
}

type conjunctionOutcome int

const (
	conjunctionTrue conjunctionOutcome = iota
	conjunctionFalse
	conjunctionResidual
)

// inspect classifies a fully-substituted, reduced conjunction: every
// conjunct a true literal, some conjunct a false literal, or residual
// structure that reduction could not discharge.
func inspect(p clp.Program) conjunctionOutcome {
	outcome := conjunctionTrue
	for _, c := range conjunctsOf(p) {
		b, ok := c.(clp.BoolConstraint)
		if !ok {
			outcome = conjunctionResidual
			continue
		}
		switch l, ok := b.X.(clp.BoolLit); {
		case !ok:
			outcome = conjunctionResidual
		case !bool(l.Value):
			return conjunctionFalse
		}
	}
	return outcome
}

// optimise serves Minimise and Maximise goals by re-running the whole
// search under successively tightened bound conjuncts against the
// best objective value found so far, until no strictly better
// solution exists. Goals are optimised in program order; each
// finished goal is pinned with an equality so later goals respect it.
func (s *solver) optimise(base searchResult) searchResult {
	program := s.program
	best := base
	for _, g := range goalsOf(s.program) {
		if g.Kind == clp.Satisfy {
			continue
		}
		free := g.Constraint.Free()
		if len(free) == 0 {
			continue
		}
		objective := free[0].Name
		bestVal, ok := best.bindings[objective].(clp.IntegerNumber)
		if !ok || bestVal.IsNaN() {
			continue
		}

		// The tightening bound advances geometrically: it starts
		// one past the incumbent, the step doubles on every
		// improvement and halves on every failed round. A failed
		// round at step one proves no strictly better solution
		// exists. If the round budget runs out before that proof
		// the result is reported as stuck, never as an optimum.
		step := int64(1)
		converged := false
		for round := 0; round < maxOptimiseRounds; round++ {
			var bound clp.IntegerNumber
			if g.Kind == clp.Minimise {
				bound = subInt(bestVal, clp.NewInt(step-1))
			} else {
				bound = addInt(bestVal, clp.NewInt(step-1))
			}
			if bound.IsNaN() {
				// Bound left the representable range, so no
				// solution lies at this step either.
				step /= 2
				continue
			}
			var tighter clp.IntRel
			if g.Kind == clp.Minimise {
				tighter = clp.Less{A: clp.IntVar{Name: objective}, B: clp.IntLit{Value: bound}}
			} else {
				tighter = clp.Greater{A: clp.IntVar{Name: objective}, B: clp.IntLit{Value: bound}}
			}
			r := s.search(clp.Conjoin(program, clp.IntConstraint{X: tighter}))
			v, vok := r.bindings[objective].(clp.IntegerNumber)
			improved := r.state == satisfied && vok && !v.IsNaN()
			if improved && g.Kind == clp.Minimise {
				improved = ltInt(v, bestVal)
			}
			if improved && g.Kind == clp.Maximise {
				improved = gtInt(v, bestVal)
			}
			if improved {
				best = r
				bestVal = v
				if step <= math.MaxInt64/2 {
					step *= 2
				}
				continue
			}
			if step == 1 {
				converged = true
				break
			}
			step /= 2
		}
		if !converged {
			best.state = stuck
			best.reason = clp.ReasonStuck
			return best
		}
		program = clp.Conjoin(program, clp.IntConstraint{X: clp.Equals{
			A: clp.IntVar{Name: objective},
			B: clp.IntLit{Value: bestVal},
		}})
	}
	return best
}

func NewSolver(options ...Option) (Solver, error) {
	s := solver{}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *solver) error

func WithProgram(p clp.Program) Option {
	return func(s *solver) error {
		s.program = p
		return nil
	}
}

func WithTracer(t clp.Tracer) Option {
	return func(s *solver) error {
		s.tracer = t
		return nil
	}
}

// WithMaxIterations overrides the size-proportional iteration bound
// that guards the search loop.
func WithMaxIterations(n int) Option {
	return func(s *solver) error {
		s.maxIter = n
		return nil
	}
}

var defaults = []Option{
	func(s *solver) error {
		if s.tracer == nil {
			s.tracer = DefaultTracer{}
		}
		return nil
	},
}
