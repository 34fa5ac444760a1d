package clp

// Domain denotes the set of legal values a variable may take. A domain
// is a pure value: narrowing always builds a new domain. Integer
// domains carry unevaluated bound expressions, so a domain may itself
// reference free variables.
type Domain interface {
	domain()
	Free() []Variable
}

// BoolDomain is a set of boolean values.
type BoolDomain interface {
	Domain
	boolDomain()
}

// BoolUniverse admits both boolean values.
type BoolUniverse struct{}

// BoolEmpty admits no boolean value.
type BoolEmpty struct{}

// BoolSingle admits exactly one boolean value.
type BoolSingle struct {
	Value BooleanValue
}

func (BoolUniverse) domain()     {}
func (BoolEmpty) domain()        {}
func (BoolSingle) domain()       {}
func (BoolUniverse) boolDomain() {}
func (BoolEmpty) boolDomain()    {}
func (BoolSingle) boolDomain()   {}

func (BoolUniverse) Free() []Variable { return nil }
func (BoolEmpty) Free() []Variable    { return nil }
func (BoolSingle) Free() []Variable   { return nil }

// IntDomain is a set of integer numbers. NaN is a member of no
// integer domain, the complement of any domain included.
type IntDomain interface {
	Domain
	intDomain()
}

// IntUniverse admits every representable integer.
type IntUniverse struct{}

// IntEmpty admits no integer.
type IntEmpty struct{}

// ClosedRange admits every integer v with Low <= v <= High.
type ClosedRange struct {
	Low, High IntExpr
}

// OpenRange admits every integer v with Low < v < High.
type OpenRange struct {
	Low, High IntExpr
}

// OpenClosedRange admits every integer v with Low < v <= High.
type OpenClosedRange struct {
	Low, High IntExpr
}

// ClosedOpenRange admits every integer v with Low <= v < High.
type ClosedOpenRange struct {
	Low, High IntExpr
}

// ExplicitSet admits exactly the values its elements evaluate to,
// in the given order.
type ExplicitSet struct {
	Elements []IntExpr
}

// Union admits the values admitted by either operand.
type Union struct {
	A, B IntDomain
}

// Intersection admits the values admitted by both operands.
type Intersection struct {
	A, B IntDomain
}

// Difference admits the values admitted by A but not by B.
type Difference struct {
	A, B IntDomain
}

// Complement admits the representable integers not admitted by X.
type Complement struct {
	X IntDomain
}

func (IntUniverse) domain()     {}
func (IntEmpty) domain()        {}
func (ClosedRange) domain()     {}
func (OpenRange) domain()       {}
func (OpenClosedRange) domain() {}
func (ClosedOpenRange) domain() {}
func (ExplicitSet) domain()     {}
func (Union) domain()           {}
func (Intersection) domain()    {}
func (Difference) domain()      {}
func (Complement) domain()      {}

func (IntUniverse) intDomain()     {}
func (IntEmpty) intDomain()        {}
func (ClosedRange) intDomain()     {}
func (OpenRange) intDomain()       {}
func (OpenClosedRange) intDomain() {}
func (ClosedOpenRange) intDomain() {}
func (ExplicitSet) intDomain()     {}
func (Union) intDomain()           {}
func (Intersection) intDomain()    {}
func (Difference) intDomain()      {}
func (Complement) intDomain()      {}

func (IntUniverse) Free() []Variable { return nil }
func (IntEmpty) Free() []Variable    { return nil }

func (d ClosedRange) Free() []Variable {
	return append(d.Low.Free(), d.High.Free()...)
}

func (d OpenRange) Free() []Variable {
	return append(d.Low.Free(), d.High.Free()...)
}

func (d OpenClosedRange) Free() []Variable {
	return append(d.Low.Free(), d.High.Free()...)
}

func (d ClosedOpenRange) Free() []Variable {
	return append(d.Low.Free(), d.High.Free()...)
}

func (d ExplicitSet) Free() []Variable {
	var free []Variable
	for _, e := range d.Elements {
		free = append(free, e.Free()...)
	}
	return free
}

func (d Union) Free() []Variable {
	return append(d.A.Free(), d.B.Free()...)
}

func (d Intersection) Free() []Variable {
	return append(d.A.Free(), d.B.Free()...)
}

func (d Difference) Free() []Variable {
	return append(d.A.Free(), d.B.Free()...)
}

func (d Complement) Free() []Variable {
	return d.X.Free()
}
