package clp

// IntExpr is the closed set of integer-valued expressions.
type IntExpr interface {
	intExpr()
	// Free returns every variable referenced in the expression, in
	// left-to-right depth-first order, duplicates included.
	Free() []Variable
}

type IntVar struct {
	Name Symbol
}

type IntLit struct {
	Value IntegerNumber
}

type IntParen struct {
	X IntExpr
}

type IntNegate struct {
	X IntExpr
}

type IntAdd struct {
	A, B IntExpr
}

type IntMinus struct {
	A, B IntExpr
}

type IntTimes struct {
	A, B IntExpr
}

type IntDivide struct {
	A, B IntExpr
}

type IntModulo struct {
	A, B IntExpr
}

func (IntVar) intExpr()    {}
func (IntLit) intExpr()    {}
func (IntParen) intExpr()  {}
func (IntNegate) intExpr() {}
func (IntAdd) intExpr()    {}
func (IntMinus) intExpr()  {}
func (IntTimes) intExpr()  {}
func (IntDivide) intExpr() {}
func (IntModulo) intExpr() {}

func (e IntVar) Free() []Variable {
	return []Variable{{Name: e.Name, Domain: IntUniverse{}}}
}

func (IntLit) Free() []Variable {
	return nil
}

func (e IntParen) Free() []Variable {
	return e.X.Free()
}

func (e IntNegate) Free() []Variable {
	return e.X.Free()
}

func (e IntAdd) Free() []Variable {
	return append(e.A.Free(), e.B.Free()...)
}

func (e IntMinus) Free() []Variable {
	return append(e.A.Free(), e.B.Free()...)
}

func (e IntTimes) Free() []Variable {
	return append(e.A.Free(), e.B.Free()...)
}

func (e IntDivide) Free() []Variable {
	return append(e.A.Free(), e.B.Free()...)
}

func (e IntModulo) Free() []Variable {
	return append(e.A.Free(), e.B.Free()...)
}
