package solver

import (
	"fmt"

	"github.com/clp-framework/clp/pkg/clp"
)

// UndeclaredBoundVariable reports a variable that occurs only inside
// domain bounds. Such a variable can never be constrained by the
// program itself, so the enclosing domain could never be evaluated; it
// is a defect in the host-supplied program rather than an
// unsatisfiable one.
type UndeclaredBoundVariable clp.Symbol

func (e UndeclaredBoundVariable) Error() string {
	return fmt.Sprintf("variable %q occurs only inside a domain bound", clp.Symbol(e))
}

// validate rejects programs whose range bounds or explicit-set
// elements reference variables that never occur outside a domain
// bound. It runs before the driver starts, so this class of defect is
// never discovered mid-reduction.
func validate(p clp.Program) error {
	declared := make(map[clp.Symbol]bool)
	for _, c := range conjunctsOf(p) {
		switch c := c.(type) {
		case clp.BoolConstraint:
			for _, v := range c.X.Free() {
				declared[v.Name] = true
			}
		case clp.IntConstraint:
			switch r := c.X.(type) {
			case clp.In:
				for _, v := range r.X.Free() {
					declared[v.Name] = true
				}
			default:
				for _, v := range c.X.Free() {
					declared[v.Name] = true
				}
			}
		}
	}
	for _, c := range conjunctsOf(p) {
		r, ok := c.(clp.IntConstraint)
		if !ok {
			continue
		}
		in, ok := r.X.(clp.In)
		if !ok {
			continue
		}
		for _, v := range in.Domain.Free() {
			if !declared[v.Name] {
				return UndeclaredBoundVariable(v.Name)
			}
		}
	}
	return nil
}
