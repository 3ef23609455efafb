package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quantica/units/internal/catalog"
	"github.com/quantica/units/internal/cli/ui"
	"github.com/quantica/units/pkg/units"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <unit|dimension>",
		Short: "Show how a unit or derived dimension is generated",
		Long: `Show the generated Go types for one unit or derived dimension.

Names match unit names, constructor names and symbols, e.g.

  unitgen show Kilometer
  unitgen show km
  unitgen show Velocity`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(cmd)
			if err != nil {
				return err
			}
			name := args[0]

			for _, u := range p.cat.Units() {
				if u.Name == name || u.Plural == name || u.Symbol == name {
					showUnit(p, u)
					return nil
				}
			}
			for _, d := range p.cat.Derived {
				if d.Name == name {
					showDerived(p, d)
					return nil
				}
			}

			fmt.Fprint(p.errOut, ui.UnitNotFoundError(name, p.cfg.Catalog, ui.FindSimilar(name, knownNames(p.cat), nil), p.noColor))
			return silentError{fmt.Errorf("unknown unit %q", name)}
		},
	}
}

func showUnit(p *project, u catalog.UnitSpec) {
	ui.Header(p.out, u.Name, p.noColor)
	kv := ui.NewKeyValueTable(p.out, p.noColor)
	kv.AddRow("Symbol", u.Symbol)
	kv.AddRow("Dimension", fmt.Sprintf("units.%s (%s)", u.Dimension, units.Unit(u.Axis)))
	kv.AddRow("Scale", fmt.Sprintf("units.%s (%s of the base unit)", u.Scale, u.Ratio))
	for _, s := range p.cat.Storage {
		kv.AddRow(s.Package+"."+u.Name, fmt.Sprintf("units.Quantity[units.%s, units.%s, %s]", u.Dimension, u.Scale, s.Type))
		kv.AddRow(s.Package+"."+u.Plural, fmt.Sprintf("func(v %s) %s.%s", s.Type, s.Package, u.Name))
	}
	kv.Render()
}

func showDerived(p *project, d catalog.Derived) {
	ui.Header(p.out, d.Name, p.noColor)
	kv := ui.NewKeyValueTable(p.out, p.noColor)
	kv.AddRow("Expression", d.Expr)
	kv.AddRow("Go type", d.Tree().GoType("units."))
	kv.AddRow("Vector", d.Vector().String())
	if d.Doc != "" {
		kv.AddRow("Doc", d.Doc)
	}
	kv.Render()

	if divs := p.cat.LegacyDivisions(d); len(divs) > 0 {
		fmt.Fprint(p.out, ui.Warning(
			"dividing by "+strings.Join(divs, ", ")+" adds its exponents on axes other than time and distance instead of subtracting them",
			[]string{"Vector.DivUniform gives the uniform quotient for comparison"},
			p.noColor,
		))
	}
}

// knownNames lists everything show accepts, for suggestions
func knownNames(cat *catalog.Catalog) []string {
	var names []string
	for _, u := range cat.Units() {
		names = append(names, u.Name)
	}
	for _, d := range cat.Derived {
		names = append(names, d.Name)
	}
	return names
}
