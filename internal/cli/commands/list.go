package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quantica/units/internal/catalog"
	"github.com/quantica/units/internal/cli/ui"
	"github.com/quantica/units/pkg/units"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	var (
		storage   string
		dimension string
		derived   bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the units of the catalog",
		Long: `List every generated unit with its symbol, dimension and scale.

Examples:
  unitgen list
  unitgen list --storage f --dimension mass
  unitgen list --derived`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(cmd)
			if err != nil {
				return err
			}

			if derived {
				listDerived(p)
				return nil
			}

			s, err := findStorage(p.cat, storage)
			if err != nil {
				return err
			}

			var axis units.Axis
			if dimension != "" {
				a, ok := units.ParseAxis(dimension)
				if !ok {
					return fmt.Errorf("unknown dimension %q", dimension)
				}
				axis = a
			}

			table := ui.NewTable(p.out, []string{"Unit", "Symbol", "Constructor", "Dimension", "Ratio", "Type"}, &ui.TableOptions{NoColor: p.noColor})
			for _, u := range p.cat.Units() {
				if dimension != "" && u.Axis != axis {
					continue
				}
				table.AddRow(
					s.Package+"."+u.Name,
					u.Symbol,
					s.Package+"."+u.Plural,
					units.Unit(u.Axis).String(),
					u.Ratio.String(),
					s.Type,
				)
			}
			table.Render()
			fmt.Fprintf(p.out, "\n%d units\n", table.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&storage, "storage", "", "Storage package to list (default: the first in the catalog)")
	cmd.Flags().StringVar(&dimension, "dimension", "", "Only list units of one base dimension, e.g. distance")
	cmd.Flags().BoolVar(&derived, "derived", false, "List derived dimensions instead of units")

	return cmd
}

func listDerived(p *project) {
	table := ui.NewTable(p.out, []string{"Dimension", "Expression", "Vector"}, &ui.TableOptions{NoColor: p.noColor})
	for _, d := range p.cat.Derived {
		table.AddRow(d.Name, d.Tree().String(), d.Vector().String())
	}
	table.Render()
}

func findStorage(cat *catalog.Catalog, name string) (catalog.Storage, error) {
	if name == "" {
		return cat.Storage[0], nil
	}
	names := make([]string, 0, len(cat.Storage))
	for _, s := range cat.Storage {
		if s.Package == name || s.Type == name {
			return s, nil
		}
		names = append(names, s.Package)
	}
	return catalog.Storage{}, fmt.Errorf("unknown storage %q, the catalog has: %s", name, strings.Join(names, ", "))
}
