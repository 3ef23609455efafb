package catalog

// Default returns the SI catalog: decimal prefixes from atto to exa, the
// seven base units with mass based on the gram, common mechanical derived
// dimensions, and exact int64 and approximate float64 storage.
func Default() *Catalog {
	cat := &Catalog{
		Prefixes: []Prefix{
			{Name: "Atto", Symbol: "a", Num: 1, Den: 1e18},
			{Name: "Femto", Symbol: "f", Num: 1, Den: 1e15},
			{Name: "Pico", Symbol: "p", Num: 1, Den: 1e12},
			{Name: "Nano", Symbol: "n", Num: 1, Den: 1e9},
			{Name: "Micro", Symbol: "u", Num: 1, Den: 1e6},
			{Name: "Milli", Symbol: "m", Num: 1, Den: 1e3},
			{Name: "Centi", Symbol: "c", Num: 1, Den: 100},
			{Name: "Deci", Symbol: "d", Num: 1, Den: 10},
			{Name: "Deca", Symbol: "da", Num: 10, Den: 1},
			{Name: "Hecto", Symbol: "h", Num: 100, Den: 1},
			{Name: "Kilo", Symbol: "k", Num: 1e3, Den: 1},
			{Name: "Mega", Symbol: "M", Num: 1e6, Den: 1},
			{Name: "Giga", Symbol: "G", Num: 1e9, Den: 1},
			{Name: "Tera", Symbol: "T", Num: 1e12, Den: 1},
			{Name: "Peta", Symbol: "P", Num: 1e15, Den: 1},
			{Name: "Exa", Symbol: "E", Num: 1e18, Den: 1},
		},
		BaseUnits: []BaseUnit{
			{Name: "Second", Symbol: "s", Axis: "time"},
			{Name: "Meter", Symbol: "m", Axis: "distance"},
			{Name: "Candela", Symbol: "cd", Axis: "luminance"},
			{Name: "Kelvin", Symbol: "K", Axis: "temperature"},
			{Name: "Radian", Symbol: "rad", Axis: "angle"},
			{Name: "Ampere", Symbol: "A", Axis: "current"},
			{Name: "Gram", Symbol: "g", Axis: "mass"},
		},
		Derived: []Derived{
			{Name: "Area", Expr: "Distance * Distance"},
			{Name: "Volume", Expr: "Area * Distance"},
			{Name: "Velocity", Expr: "Distance / Time"},
			{Name: "Acceleration", Expr: "Velocity / Time"},
			{Name: "Frequency", Expr: "Dimensionless / Time"},
			{Name: "AngularVelocity", Expr: "Angle / Time"},
			{Name: "Momentum", Expr: "Mass * Velocity"},
			{Name: "Force", Expr: "Mass * Acceleration"},
			{Name: "Energy", Expr: "Force * Distance"},
			{Name: "Power", Expr: "Energy / Time"},
			{Name: "Pressure", Expr: "Force / Area"},
			{Name: "Density", Expr: "Mass / Volume"},
			{Name: "Charge", Expr: "Current * Time"},
		},
		Storage: []Storage{
			{Package: "i", Type: "int64", Doc: "exact integer storage"},
			{Package: "f", Type: "float64", Doc: "approximate floating point storage"},
		},
	}
	if err := cat.Validate(); err != nil {
		panic("catalog: default catalog is invalid: " + err.Error())
	}
	return cat
}
