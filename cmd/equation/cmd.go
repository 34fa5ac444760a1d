package equation

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clp-framework/clp/pkg/clp"
	"github.com/clp-framework/clp/pkg/clp/solver"
)

func NewEquationCommand() *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "equation",
		Short: "Solves a sample system of integer constraints",
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(trace)
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "log every search iteration")
	return cmd
}

// The sample program:
//
//	x = 5
//	y in (x, 100]
//	maximise y
func program() clp.Program {
	x := clp.IntVar{Name: "x"}
	y := clp.IntVar{Name: "y"}
	return clp.ConstrainAnd{
		Constraint: clp.IntConstraint{X: clp.Equals{A: x, B: clp.IntLit{Value: clp.NewInt(5)}}},
		Rest: clp.ConstrainAnd{
			Constraint: clp.IntConstraint{X: clp.In{X: y, Domain: clp.OpenClosedRange{
				Low:  x,
				High: clp.IntLit{Value: clp.NewInt(100)},
			}}},
			Rest: clp.Solve{Goal: clp.Goal{
				Kind:       clp.Maximise,
				Constraint: clp.IntConstraint{X: clp.Greater{A: y, B: x}},
			}},
		},
	}
}

func solve(trace bool) error {
	var options []solver.Option
	if trace {
		options = append(options, solver.WithTracer(newLoggingTracer()))
	}
	s, err := solver.New(options...)
	if err != nil {
		return err
	}

	p := program()
	for _, v := range solver.FreeVariables(p) {
		fmt.Printf("free: %s\n", v.Name)
	}
	solutions, err := s.Solve(context.Background(), p)
	if err != nil {
		return err
	}
	for _, sol := range solutions {
		fmt.Println(sol)
	}
	return nil
}

func newLoggingTracer() clp.Tracer {
	return loggingTracer{}
}

type loggingTracer struct{}

func (loggingTracer) Trace(p clp.SearchPosition) {
	fmt.Fprintf(os.Stderr, "iteration %d: %d free, %d assigned\n",
		p.Iteration(), len(p.FreeVariables()), len(p.Assignments()))
}
