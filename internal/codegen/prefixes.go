package codegen

import (
	"github.com/quantica/units/internal/catalog"
)

// GeneratePrefixes renders one Scale marker per catalog prefix
func (g *Generator) GeneratePrefixes(cat *catalog.Catalog) (string, error) {
	g.reset()

	g.writeLine(header)
	g.writeLine("")
	g.writeLine("package units")

	for _, p := range cat.Prefixes {
		r := p.Ratio()
		g.writeLine("")
		g.writeLine("// %s is the decimal prefix %s, %d/%d.", p.Name, p.Symbol, r.Num, r.Den)
		g.writeLine("type %s struct{}", p.Name)
		g.writeLine("")
		g.writeLine("func (%s) Ratio() Ratio { return Ratio{Num: %d, Den: %d} }", p.Name, r.Num, r.Den)
		g.writeLine("")
		g.writeLine("func (%s) Symbol() string { return %q }", p.Name, p.Symbol)
	}

	return g.source()
}

// GenerateDimensions renders one alias per derived dimension
func (g *Generator) GenerateDimensions(cat *catalog.Catalog) (string, error) {
	g.reset()

	g.writeLine(header)
	g.writeLine("")
	g.writeLine("package units")

	for _, d := range cat.Derived {
		g.writeLine("")
		if d.Doc != "" {
			g.writeLine("// %s is %s (%s).", d.Name, d.Doc, d.Vector())
		} else {
			g.writeLine("// %s has dimension %s.", d.Name, d.Vector())
		}
		g.writeLine("type %s = %s", d.Name, d.Tree().GoType(""))
	}

	return g.source()
}
