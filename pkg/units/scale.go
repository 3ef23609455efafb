package units

// Scale is implemented by zero-size marker types that name a Ratio at the
// type level.
type Scale interface {
	Ratio() Ratio
}

// One is the unscaled base ratio 1/1.
type One struct{}

func (One) Ratio() Ratio   { return Ratio{Num: 1, Den: 1} }
func (One) Symbol() string { return "" }

// Times is the scale of a product of an A-scaled and a B-scaled quantity.
type Times[A, B Scale] struct{}

func (Times[A, B]) Ratio() Ratio {
	var a A
	var b B
	return a.Ratio().Mul(b.Ratio())
}

// Per is the scale of an A-scaled quantity divided by a B-scaled one.
type Per[A, B Scale] struct{}

func (Per[A, B]) Ratio() Ratio {
	var a A
	var b B
	return a.Ratio().Div(b.Ratio())
}

// crossRatio returns the factor N/D such that a value at scale From equals
// value*N/D at scale To.
func crossRatio[From, To Scale]() Ratio {
	var from From
	var to To
	return from.Ratio().Div(to.Ratio())
}
