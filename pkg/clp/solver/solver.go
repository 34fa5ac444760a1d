// Package solver exposes the engine's narrow library surface: build a
// program as an in-memory tree with the types in pkg/clp, then call
// Solve for solutions or FreeVariables for the unresolved variables.
package solver

import (
	"context"

	isolver "github.com/clp-framework/clp/internal/solver"
	"github.com/clp-framework/clp/pkg/clp"
)

type Solver struct {
	tracer  clp.Tracer
	maxIter int
}

func New(options ...Option) (*Solver, error) {
	s := Solver{}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *Solver) error

func WithTracer(t clp.Tracer) Option {
	return func(s *Solver) error {
		s.tracer = t
		return nil
	}
}

// WithMaxIterations overrides the size-proportional bound on driver
// iterations.
func WithMaxIterations(n int) Option {
	return func(s *Solver) error {
		s.maxIter = n
		return nil
	}
}

var defaults = []Option{
	func(s *Solver) error {
		if s.tracer == nil {
			s.tracer = isolver.DefaultTracer{}
		}
		return nil
	},
}

// Solve produces one Solution per resolved variable of the program,
// or a single Unsatisfiable record when no solution exists. The error
// is non-nil only when the program itself is malformed.
func (s *Solver) Solve(ctx context.Context, program clp.Program) ([]clp.Solution, error) {
	engine, err := isolver.NewSolver(
		isolver.WithProgram(program),
		isolver.WithTracer(s.tracer),
		isolver.WithMaxIterations(s.maxIter),
	)
	if err != nil {
		return nil, err
	}
	return engine.Solve(ctx)
}

// FreeVariables returns the program's unresolved variables in
// left-to-right depth-first order, duplicates included.
func FreeVariables(program clp.Program) []clp.Variable {
	return program.Free()
}
