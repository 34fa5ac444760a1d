package solver

import (
	"fmt"
	"io"

	"github.com/clp-framework/clp/pkg/clp"
)

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ clp.SearchPosition) {
}

type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p clp.SearchPosition) {
	fmt.Fprintf(t.Writer, "---\nIteration %d\nFree:\n", p.Iteration())
	for _, v := range p.FreeVariables() {
		fmt.Fprintf(t.Writer, "- %s\n", v.Name)
	}
	fmt.Fprintf(t.Writer, "Attempt:\n")
	for _, a := range p.Assignments() {
		fmt.Fprintf(t.Writer, "- %s = %s\n", a.Name, a.Value)
	}
}

type searchPosition struct {
	iteration   int
	free        []clp.Variable
	assignments []clp.Assignment
}

func (p searchPosition) Iteration() int                { return p.iteration }
func (p searchPosition) FreeVariables() []clp.Variable { return p.free }
func (p searchPosition) Assignments() []clp.Assignment { return p.assignments }
