package clp

import (
	"fmt"
	"strconv"
)

// Symbol values name the variables and bound constants that appear in
// a constraint program. Two symbols are the same variable exactly when
// their text is equal; the engine never renames a symbol.
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

// SymbolFromString returns a Symbol based on a provided string.
func SymbolFromString(s string) Symbol {
	return Symbol(s)
}

// AssignedValue is the set of concrete values a variable can take:
// a boolean or an integer number.
type AssignedValue interface {
	fmt.Stringer
	assignedValue()
}

// BooleanValue is the logic base type.
type BooleanValue bool

const (
	False BooleanValue = false
	True  BooleanValue = true
)

func (BooleanValue) assignedValue() {}

func (v BooleanValue) String() string {
	return strconv.FormatBool(bool(v))
}

// IntegerNumber is a signed 64-bit integer extended with NaN, the
// sentinel for undefined arithmetic results (division or modulo by
// zero, overflow). NaN is never equal to any value, including itself.
type IntegerNumber struct {
	nan bool
	v   int64
}

func NewInt(v int64) IntegerNumber {
	return IntegerNumber{v: v}
}

func NaN() IntegerNumber {
	return IntegerNumber{nan: true}
}

func (n IntegerNumber) IsNaN() bool {
	return n.nan
}

// Int64 returns the numeric payload. It is only meaningful when
// IsNaN is false.
func (n IntegerNumber) Int64() int64 {
	return n.v
}

// Equal reports numeric equality. It is false whenever either side is
// NaN, NaN against NaN included.
func (n IntegerNumber) Equal(o IntegerNumber) bool {
	if n.nan || o.nan {
		return false
	}
	return n.v == o.v
}

func (IntegerNumber) assignedValue() {}

func (n IntegerNumber) String() string {
	if n.nan {
		return "NaN"
	}
	return strconv.FormatInt(n.v, 10)
}

// Variable pairs a symbol with the declared set of values it may take.
type Variable struct {
	Name   Symbol
	Domain Domain
}

// Assignment pairs a symbol with the one concrete value chosen for it.
type Assignment struct {
	Name  Symbol
	Value AssignedValue
}

// Reasons reported inside Unsatisfiable solutions.
const (
	ReasonEmptyDomain   = "empty domain"
	ReasonContradiction = "contradiction"
	ReasonStuck         = "stuck"
)

// Solution is one record of a solve result: a resolved variable, a
// resolved constant, or a report that no solution exists.
type Solution interface {
	fmt.Stringer
	solution()
}

// Unsatisfiable reports that the program admits no solution. Name is
// the variable that made the search fail when one can be identified,
// or empty when the contradiction is not attributable to a single
// variable.
type Unsatisfiable struct {
	Name   Symbol
	Reason string
}

func (Unsatisfiable) solution() {}

func (u Unsatisfiable) String() string {
	if u.Name == "" {
		return fmt.Sprintf("unsatisfiable: %s", u.Reason)
	}
	return fmt.Sprintf("unsatisfiable: %s: %s", u.Name, u.Reason)
}

// SolvedVariable is a variable resolved by the search.
type SolvedVariable struct {
	Name  Symbol
	Value AssignedValue
}

func (SolvedVariable) solution() {}

func (s SolvedVariable) String() string {
	return fmt.Sprintf("%s = %s", s.Name, s.Value)
}

// SolvedConstant is a variable whose value was forced by the program
// rather than chosen by the search.
type SolvedConstant struct {
	Name  Symbol
	Value AssignedValue
}

func (SolvedConstant) solution() {}

func (s SolvedConstant) String() string {
	return fmt.Sprintf("%s = %s (constant)", s.Name, s.Value)
}
