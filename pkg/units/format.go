package units

import "fmt"

// symboled is implemented by prefix scales
type symboled interface {
	Symbol() string
}

// Label renders the unit of a D/S tag. A single base axis at a prefix scale
// prints as a symbol ("km", "mg"); anything else prints the vector with the
// ratio appended when it is not 1, e.g. "m·s·g [×1000]" or "m^2 [×1/100]".
func Label[D Dimension, S Scale]() string {
	var d D
	var s S
	v := d.Vector()
	if p, ok := any(s).(symboled); ok {
		if a, ok := v.baseAxis(); ok {
			return p.Symbol() + a.Symbol()
		}
	}

	label := v.String()
	r := s.Ratio()
	switch {
	case r.IsOne():
		return label
	case r.Den == 1:
		return fmt.Sprintf("%s [×%d]", label, r.Num)
	default:
		return fmt.Sprintf("%s [×%d/%d]", label, r.Num, r.Den)
	}
}

// baseAxis reports the axis of v when v is exactly one base dimension.
func (v Vector) baseAxis() (Axis, bool) {
	axis := Axis(-1)
	for i, e := range v {
		switch {
		case e == 0:
		case e == 1 && axis < 0:
			axis = Axis(i)
		default:
			return 0, false
		}
	}
	return axis, axis >= 0
}

func (q Quantity[D, S, T]) String() string {
	return fmt.Sprintf("%v %s", q.value, Label[D, S]())
}
