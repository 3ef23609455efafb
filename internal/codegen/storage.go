package codegen

import (
	"fmt"

	"github.com/quantica/units/internal/catalog"
)

// GenerateStorage renders the aliases and constructors of every catalog unit
// for one storage kind
func (g *Generator) GenerateStorage(cat *catalog.Catalog, s catalog.Storage) (string, error) {
	g.reset()

	doc := s.Doc
	if doc == "" {
		doc = "plain storage"
	}

	g.writeLine(header)
	g.writeLine("")
	g.writeLine("// Package %s holds every catalog unit with %s (%s).", s.Package, doc, s.Type)
	g.writeLine("package %s", s.Package)
	g.writeLine("")
	g.writeLine("import %q", g.opts.CoreImport)

	for _, u := range cat.Units() {
		quantity := fmt.Sprintf("units.Quantity[units.%s, units.%s, %s]", u.Dimension, u.Scale, s.Type)

		g.writeLine("")
		if u.Ratio.IsOne() {
			g.writeLine("// %s is the base unit of %s (%s).", u.Name, u.Axis, u.Symbol)
		} else {
			g.writeLine("// %s is %s, %s of the base unit.", u.Name, u.Symbol, u.Ratio)
		}
		g.writeLine("type %s = %s", u.Name, quantity)
		g.writeLine("")
		g.writeLine("// %s returns v %s.", u.Plural, u.Symbol)
		g.writeLine("func %s(v %s) %s { return units.New[units.%s, units.%s](v) }",
			u.Plural, s.Type, u.Name, u.Dimension, u.Scale)
	}

	return g.source()
}
