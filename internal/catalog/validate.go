package catalog

import (
	"fmt"
	"go/token"

	"github.com/quantica/units/pkg/units"
)

// reserved are identifiers of package units that generated prefix and
// derived names must not shadow
var reserved = map[string]bool{
	"Quantity": true, "Ratio": true, "Vector": true, "Axis": true,
	"Dimension": true, "Scale": true, "Number": true,
	"Prod": true, "Quot": true, "Times": true, "Per": true, "One": true,
	"New": true, "Mul": true, "Div": true, "Convert": true, "Label": true,
	"Unit": true, "GCD": true, "LCM": true, "NewRatio": true,
}

// storageTypes are the predeclared types accepted by units.Number
var storageTypes = map[string]bool{
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"uintptr": true, "float32": true, "float64": true,
}

// Validate checks the catalog and resolves derived expressions. It is called
// by Parse; call it again after editing a catalog in memory.
func (c *Catalog) Validate() error {
	if len(c.BaseUnits) == 0 || len(c.Storage) == 0 {
		return ErrEmpty
	}

	// names generated into package units
	coreNames := make(map[string]string)
	for i := 0; i < units.NumAxes; i++ {
		coreNames[MarkerName(units.Axis(i))] = "base dimension"
	}
	coreNames["Dimensionless"] = "base dimension"
	claim := func(kind, name string) error {
		if !token.IsIdentifier(name) || !token.IsExported(name) {
			return fmt.Errorf("%w: %s %q", ErrInvalidName, kind, name)
		}
		if reserved[name] {
			return fmt.Errorf("%w: %s %q is reserved", ErrDuplicateName, kind, name)
		}
		if prev, ok := coreNames[name]; ok {
			return fmt.Errorf("%w: %s %q already declared as %s", ErrDuplicateName, kind, name, prev)
		}
		coreNames[name] = kind
		return nil
	}

	for i := range c.Prefixes {
		p := &c.Prefixes[i]
		if err := claim("prefix", p.Name); err != nil {
			return err
		}
		if p.Num <= 0 || p.Den <= 0 {
			return fmt.Errorf("%w: %s is %d/%d", ErrInvalidRatio, p.Name, p.Num, p.Den)
		}
		r := p.Ratio()
		p.Num, p.Den = r.Num, r.Den
	}

	seenAxis := make(map[units.Axis]string)
	for i := range c.BaseUnits {
		b := &c.BaseUnits[i]
		axis, ok := units.ParseAxis(b.Axis)
		if !ok {
			return fmt.Errorf("%w: %q on base unit %s", ErrUnknownAxis, b.Axis, b.Name)
		}
		if prev, ok := seenAxis[axis]; ok {
			return fmt.Errorf("%w: %s and %s both use %s", ErrDuplicateAxis, prev, b.Name, axis)
		}
		seenAxis[axis] = b.Name
		b.axis = axis
		if b.Symbol == "" {
			b.Symbol = axis.Symbol()
		}
	}

	// names generated into each storage package
	unitNames := make(map[string]string)
	for _, u := range c.Units() {
		for _, name := range []string{u.Name, u.Plural} {
			if !token.IsIdentifier(name) || !token.IsExported(name) {
				return fmt.Errorf("%w: unit %q", ErrInvalidName, name)
			}
			if prev, ok := unitNames[name]; ok {
				return fmt.Errorf("%w: %q generated by both %s and %s", ErrDuplicateName, name, prev, u.Name)
			}
			unitNames[name] = u.Name
		}
	}

	vectors := map[string]units.Vector{"Dimensionless": {}}
	for i := 0; i < units.NumAxes; i++ {
		vectors[MarkerName(units.Axis(i))] = units.Unit(units.Axis(i))
	}
	lookup := func(name string) (units.Vector, bool) {
		v, ok := vectors[name]
		return v, ok
	}
	for i := range c.Derived {
		d := &c.Derived[i]
		if err := claim("derived dimension", d.Name); err != nil {
			return err
		}
		tree, err := ParseExpr(d.Expr)
		if err != nil {
			return fmt.Errorf("derived dimension %s: %w", d.Name, err)
		}
		v, err := Eval(tree, lookup)
		if err != nil {
			return fmt.Errorf("derived dimension %s: %w", d.Name, err)
		}
		d.tree, d.vector = tree, v
		vectors[d.Name] = v
	}

	packages := make(map[string]bool)
	for _, s := range c.Storage {
		if !token.IsIdentifier(s.Package) || token.IsExported(s.Package) {
			return fmt.Errorf("%w: storage package %q", ErrInvalidName, s.Package)
		}
		if packages[s.Package] {
			return fmt.Errorf("%w: storage package %q", ErrDuplicateName, s.Package)
		}
		packages[s.Package] = true
		if !storageTypes[s.Type] {
			return fmt.Errorf("%w: %q", ErrInvalidStorage, s.Type)
		}
	}
	return nil
}

// LegacyDivisions reports, for derived dimension d, every divisor whose
// exponents on the additive axes make the Quot vector differ from a
// physically uniform quotient.
func (c *Catalog) LegacyDivisions(d Derived) []string {
	if d.tree == nil {
		return nil
	}
	vectors := map[string]units.Vector{"Dimensionless": {}}
	for i := 0; i < units.NumAxes; i++ {
		vectors[MarkerName(units.Axis(i))] = units.Unit(units.Axis(i))
	}
	for _, other := range c.Derived {
		vectors[other.Name] = other.vector
	}
	lookup := func(name string) (units.Vector, bool) {
		v, ok := vectors[name]
		return v, ok
	}

	var out []string
	for _, div := range Divisors(d.tree) {
		v, err := Eval(div, lookup)
		if err != nil {
			continue
		}
		var one units.Vector
		if one.Div(v) != one.DivUniform(v) {
			out = append(out, div.String())
		}
	}
	return out
}
