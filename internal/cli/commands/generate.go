package commands

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quantica/units/internal/cli/ui"
	"github.com/quantica/units/internal/codegen"
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	var (
		check  bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen", "g"},
		Short:   "Render the unit catalog as Go code",
		Long: `Render the unit catalog as Go code.

The core package (output in unitgen.yaml) receives the prefix scale markers
and derived dimension aliases. Each storage kind gets a sub-package of unit
aliases and constructors, e.g. i.Kilometer and i.Kilometers(5).

Examples:
  unitgen generate
  unitgen generate --check     # fail when generated files are out of date
  unitgen generate --dry-run   # list the files without writing them`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(cmd)
			if err != nil {
				return err
			}
			defer p.logger.Sync() //nolint:errcheck

			files, err := p.render()
			if err != nil {
				return err
			}
			root := p.cfg.OutputDir()

			switch {
			case check:
				stale, err := codegen.Stale(root, files)
				if err != nil {
					return err
				}
				if len(stale) > 0 {
					fmt.Fprint(p.errOut, ui.StaleError(stale, p.noColor))
					return silentError{fmt.Errorf("%d generated file(s) are stale", len(stale))}
				}
				ui.WriteSuccess(p.out, "generated code is up to date", p.noColor)

			case dryRun:
				table := ui.NewTable(p.out, []string{"File", "Bytes"}, &ui.TableOptions{NoColor: p.noColor})
				for _, name := range codegen.SortedNames(files) {
					table.AddRow(filepath.Join(root, filepath.FromSlash(name)), strconv.Itoa(len(files[name])))
				}
				table.Render()

			default:
				if err := codegen.Write(root, files); err != nil {
					return err
				}
				p.logger.Info("generated", zap.String("dir", root), zap.Int("files", len(files)))
				ui.WriteSuccess(p.out, fmt.Sprintf("generated %d files in %s", len(files), root), p.noColor)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Exit non-zero when generated files differ from the catalog")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List the files that would be written")
	cmd.MarkFlagsMutuallyExclusive("check", "dry-run")

	return cmd
}
