package clp

// IntRel is the closed set of integer relations, each producing a
// boolean from integer operands.
type IntRel interface {
	intRel()
	Free() []Variable
}

type Equals struct {
	A, B IntExpr
}

type Different struct {
	A, B IntExpr
}

type Greater struct {
	A, B IntExpr
}

type Less struct {
	A, B IntExpr
}

// In holds when the expression evaluates to a member of the domain.
type In struct {
	X      IntExpr
	Domain IntDomain
}

func (Equals) intRel()    {}
func (Different) intRel() {}
func (Greater) intRel()   {}
func (Less) intRel()      {}
func (In) intRel()        {}

func (r Equals) Free() []Variable {
	return append(r.A.Free(), r.B.Free()...)
}

func (r Different) Free() []Variable {
	return append(r.A.Free(), r.B.Free()...)
}

func (r Greater) Free() []Variable {
	return append(r.A.Free(), r.B.Free()...)
}

func (r Less) Free() []Variable {
	return append(r.A.Free(), r.B.Free()...)
}

func (r In) Free() []Variable {
	return append(r.X.Free(), r.Domain.Free()...)
}

// Constraint is one conjunct of a program: either a propositional
// expression or an integer relation.
type Constraint interface {
	constraint()
	Free() []Variable
}

type BoolConstraint struct {
	X BoolExpr
}

type IntConstraint struct {
	X IntRel
}

func (BoolConstraint) constraint() {}
func (IntConstraint) constraint()  {}

func (c BoolConstraint) Free() []Variable {
	return c.X.Free()
}

func (c IntConstraint) Free() []Variable {
	return c.X.Free()
}

// GoalKind selects what the driver must produce from a constraint
// conjunction.
type GoalKind int

const (
	Satisfy GoalKind = iota
	Minimise
	Maximise
)

func (k GoalKind) String() string {
	switch k {
	case Minimise:
		return "minimise"
	case Maximise:
		return "maximise"
	default:
		return "satisfy"
	}
}

// Goal is a satisfaction goal over one constraint.
type Goal struct {
	Kind       GoalKind
	Constraint Constraint
}

func (g Goal) Free() []Variable {
	return g.Constraint.Free()
}

// Program is a whole constraint program: a right-leaning list of
// goals and constraints, all implicitly conjoined.
type Program interface {
	program()
	Free() []Variable
}

// Solve is the terminal program node holding the last goal.
type Solve struct {
	Goal Goal
}

// SolveAnd conjoins a goal with the rest of the program.
type SolveAnd struct {
	Goal Goal
	Rest Program
}

// ConstrainAnd conjoins a constraint with the rest of the program.
type ConstrainAnd struct {
	Constraint Constraint
	Rest       Program
}

func (Solve) program()        {}
func (SolveAnd) program()     {}
func (ConstrainAnd) program() {}

func (p Solve) Free() []Variable {
	return p.Goal.Free()
}

func (p SolveAnd) Free() []Variable {
	return append(p.Goal.Free(), p.Rest.Free()...)
}

func (p ConstrainAnd) Free() []Variable {
	return append(p.Constraint.Free(), p.Rest.Free()...)
}

// Conjoin prefixes a program with any number of extra constraints.
func Conjoin(p Program, constraints ...Constraint) Program {
	for i := len(constraints) - 1; i >= 0; i-- {
		p = ConstrainAnd{Constraint: constraints[i], Rest: p}
	}
	return p
}
