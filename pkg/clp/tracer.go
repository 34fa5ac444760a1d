package clp

// SearchPosition describes one driver iteration as seen by a Tracer.
type SearchPosition interface {
	Iteration() int
	FreeVariables() []Variable
	Assignments() []Assignment
}

type Tracer interface {
	Trace(p SearchPosition)
}
