package solver

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clp-framework/clp/pkg/clp"
)

func solve(t *testing.T, p clp.Program, options ...Option) []clp.Solution {
	t.Helper()
	s, err := NewSolver(append(options, WithProgram(p))...)
	require.NoError(t, err)
	solutions, err := s.Solve(context.Background())
	require.NoError(t, err)
	return solutions
}

func TestSolveEquation(t *testing.T) {
	p := satisfy(clp.IntConstraint{X: clp.Equals{A: clp.IntVar{Name: "x"}, B: lit(5)}})
	assert.Equal(t,
		[]clp.Solution{clp.SolvedVariable{Name: "x", Value: clp.NewInt(5)}},
		solve(t, p))
}

func TestSolveFalseConjunct(t *testing.T) {
	p := clp.ConstrainAnd{
		Constraint: clp.BoolConstraint{X: clp.BoolLit{Value: clp.False}},
		Rest:       satisfy(clp.IntConstraint{X: clp.Equals{A: clp.IntVar{Name: "x"}, B: lit(5)}}),
	}
	assert.Equal(t,
		[]clp.Solution{clp.Unsatisfiable{Reason: clp.ReasonContradiction}},
		solve(t, p))
}

func TestSolveEmptyDomain(t *testing.T) {
	p := satisfy(clp.IntConstraint{X: clp.In{X: clp.IntVar{Name: "x"}, Domain: clp.IntEmpty{}}})
	assert.Equal(t,
		[]clp.Solution{clp.Unsatisfiable{Name: "x", Reason: clp.ReasonEmptyDomain}},
		solve(t, p))
}

func TestSolveContradictoryBooleans(t *testing.T) {
	x := clp.BoolVar{Name: "x"}
	p := satisfy(clp.BoolConstraint{X: clp.BoolAnd{A: x, B: clp.BoolNot{X: x}}})
	assert.Equal(t,
		[]clp.Solution{clp.Unsatisfiable{Reason: clp.ReasonContradiction}},
		solve(t, p))
}

func TestSolveDisjunction(t *testing.T) {
	p := satisfy(clp.BoolConstraint{X: clp.BoolOr{A: clp.BoolVar{Name: "p"}, B: clp.BoolVar{Name: "q"}}})
	solutions := solve(t, p)
	require.Len(t, solutions, 2)

	values := make(map[clp.Symbol]clp.BooleanValue)
	for _, s := range solutions {
		v, ok := s.(clp.SolvedVariable)
		require.True(t, ok, "unexpected solution %#v", s)
		b, ok := v.Value.(clp.BooleanValue)
		require.True(t, ok)
		values[v.Name] = b
	}
	assert.True(t, bool(values["p"]) || bool(values["q"]))
}

func TestSolveChainedConstraints(t *testing.T) {
	x := clp.IntVar{Name: "x"}
	y := clp.IntVar{Name: "y"}
	p := clp.ConstrainAnd{
		Constraint: clp.IntConstraint{X: clp.Equals{A: x, B: lit(5)}},
		Rest:       satisfy(clp.IntConstraint{X: clp.In{X: y, Domain: clp.OpenClosedRange{Low: x, High: lit(7)}}}),
	}
	assert.Equal(t,
		[]clp.Solution{
			clp.SolvedVariable{Name: "x", Value: clp.NewInt(5)},
			clp.SolvedVariable{Name: "y", Value: clp.NewInt(6)},
		},
		solve(t, p))
}

// Membership of a one-element set leaves the variable no choice at
// all, which the solution records as a constant.
func TestSolveSingletonMembershipIsConstant(t *testing.T) {
	p := satisfy(clp.IntConstraint{X: clp.In{
		X:      clp.IntVar{Name: "x"},
		Domain: clp.ExplicitSet{Elements: []clp.IntExpr{lit(9)}},
	}})
	assert.Equal(t,
		[]clp.Solution{clp.SolvedConstant{Name: "x", Value: clp.NewInt(9)}},
		solve(t, p))
}

func TestSolveMinimise(t *testing.T) {
	x := clp.IntVar{Name: "x"}
	p := clp.ConstrainAnd{
		Constraint: clp.IntConstraint{X: clp.In{X: x, Domain: clp.ClosedRange{Low: lit(3), High: lit(10)}}},
		Rest:       clp.Solve{Goal: clp.Goal{Kind: clp.Minimise, Constraint: clp.IntConstraint{X: clp.Less{A: x, B: lit(100)}}}},
	}
	assert.Equal(t,
		[]clp.Solution{clp.SolvedVariable{Name: "x", Value: clp.NewInt(3)}},
		solve(t, p))
}

func TestSolveMaximise(t *testing.T) {
	x := clp.IntVar{Name: "x"}
	p := clp.ConstrainAnd{
		Constraint: clp.IntConstraint{X: clp.In{X: x, Domain: clp.ClosedRange{Low: lit(0), High: lit(5)}}},
		Rest:       clp.Solve{Goal: clp.Goal{Kind: clp.Maximise, Constraint: clp.IntConstraint{X: clp.Greater{A: x, B: lit(-1)}}}},
	}
	assert.Equal(t,
		[]clp.Solution{clp.SolvedVariable{Name: "x", Value: clp.NewInt(5)}},
		solve(t, p))
}

// The optimiser must reach the true optimum even when the objective's
// range is far wider than one step per round could cover.
func TestSolveMaximiseWideRange(t *testing.T) {
	x := clp.IntVar{Name: "x"}
	p := clp.ConstrainAnd{
		Constraint: clp.IntConstraint{X: clp.In{X: x, Domain: clp.ClosedRange{Low: lit(0), High: lit(100000)}}},
		Rest: clp.Solve{Goal: clp.Goal{
			Kind:       clp.Maximise,
			Constraint: clp.IntConstraint{X: clp.Greater{A: x, B: lit(-1)}},
		}},
	}
	assert.Equal(t,
		[]clp.Solution{clp.SolvedVariable{Name: "x", Value: clp.NewInt(100000)}},
		solve(t, p))
}

func TestSolveStuckOnExhaustedIterations(t *testing.T) {
	p := satisfy(clp.IntConstraint{X: clp.Equals{A: clp.IntVar{Name: "x"}, B: lit(5)}})
	assert.Equal(t,
		[]clp.Solution{clp.Unsatisfiable{Reason: clp.ReasonStuck}},
		solve(t, p, WithMaxIterations(1)))
}

func TestSolveRejectsMissingProgram(t *testing.T) {
	s, err := NewSolver()
	require.NoError(t, err)
	_, err = s.Solve(context.Background())
	assert.ErrorIs(t, err, ErrNoProgram)
}

func TestSolveRejectsUndeclaredBoundVariable(t *testing.T) {
	p := satisfy(clp.IntConstraint{X: clp.In{
		X:      clp.IntVar{Name: "x"},
		Domain: clp.ClosedRange{Low: clp.IntVar{Name: "lo"}, High: lit(9)},
	}})
	s, err := NewSolver(WithProgram(p))
	require.NoError(t, err)
	_, err = s.Solve(context.Background())
	var undeclared UndeclaredBoundVariable
	require.ErrorAs(t, err, &undeclared)
	assert.Equal(t, clp.Symbol("lo"), clp.Symbol(undeclared))
}

func TestLoggingTracerOutput(t *testing.T) {
	var buf bytes.Buffer
	p := satisfy(clp.IntConstraint{X: clp.Equals{A: clp.IntVar{Name: "x"}, B: lit(5)}})
	solve(t, p, WithTracer(LoggingTracer{Writer: &buf}))

	out := buf.String()
	assert.Contains(t, out, "Iteration 0")
	assert.Contains(t, out, "- x")
	assert.Contains(t, out, "- x = 5")
}

type recordingTracer struct {
	positions []clp.SearchPosition
}

func (r *recordingTracer) Trace(p clp.SearchPosition) {
	r.positions = append(r.positions, p)
}

func TestSolveTracesEachIteration(t *testing.T) {
	tracer := &recordingTracer{}
	p := satisfy(clp.IntConstraint{X: clp.Equals{A: clp.IntVar{Name: "x"}, B: lit(5)}})
	solve(t, p, WithTracer(tracer))

	require.NotEmpty(t, tracer.positions)
	first := tracer.positions[0]
	assert.Equal(t, 0, first.Iteration())
	require.Len(t, first.FreeVariables(), 1)
	assert.Equal(t, clp.Symbol("x"), first.FreeVariables()[0].Name)
	assert.Equal(t, []clp.Assignment{{Name: "x", Value: clp.NewInt(5)}}, first.Assignments())
}
