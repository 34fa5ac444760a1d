package root

import (
	"github.com/spf13/cobra"

	"github.com/clp-framework/clp/cmd/equation"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clp",
		Short: "clp is a constraint-logic-programming engine",
		Long: `A constraint-logic-programming engine written in Go.
Programs are trees of boolean and integer constraints over symbolic
variables; the engine produces a satisfying assignment or proves the
program unsatisfiable.`,
	}

	// add sub-commands
	rootCmd.AddCommand(equation.NewEquationCommand())

	return rootCmd
}
