package clp

// BoolExpr is the closed set of propositional expressions. Boolean
// values and operations are the base of a constraint program; every
// constraint ultimately produces a boolean.
type BoolExpr interface {
	boolExpr()
	// Free returns every variable referenced in the expression, in
	// left-to-right depth-first order, duplicates included. Each
	// occurrence is reported with a fresh Universe domain of its
	// value kind; the analysis is purely syntactic and consults no
	// declaration scope.
	Free() []Variable
}

type BoolAnd struct {
	A, B BoolExpr
}

type BoolOr struct {
	A, B BoolExpr
}

type BoolImplies struct {
	A, B BoolExpr
}

type BoolEquals struct {
	A, B BoolExpr
}

type BoolNot struct {
	X BoolExpr
}

type BoolParen struct {
	X BoolExpr
}

type BoolVar struct {
	Name Symbol
}

type BoolLit struct {
	Value BooleanValue
}

func (BoolAnd) boolExpr()     {}
func (BoolOr) boolExpr()      {}
func (BoolImplies) boolExpr() {}
func (BoolEquals) boolExpr()  {}
func (BoolNot) boolExpr()     {}
func (BoolParen) boolExpr()   {}
func (BoolVar) boolExpr()     {}
func (BoolLit) boolExpr()     {}

func (e BoolAnd) Free() []Variable {
	return append(e.A.Free(), e.B.Free()...)
}

func (e BoolOr) Free() []Variable {
	return append(e.A.Free(), e.B.Free()...)
}

func (e BoolImplies) Free() []Variable {
	return append(e.A.Free(), e.B.Free()...)
}

func (e BoolEquals) Free() []Variable {
	return append(e.A.Free(), e.B.Free()...)
}

func (e BoolNot) Free() []Variable {
	return e.X.Free()
}

func (e BoolParen) Free() []Variable {
	return e.X.Free()
}

func (e BoolVar) Free() []Variable {
	return []Variable{{Name: e.Name, Domain: BoolUniverse{}}}
}

func (BoolLit) Free() []Variable {
	return nil
}
