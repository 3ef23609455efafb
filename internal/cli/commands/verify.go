package commands

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quantica/units/internal/cli/ui"
	"github.com/quantica/units/internal/codegen"
	"github.com/quantica/units/internal/typecheck"
)

// NewVerifyCommand creates the verify command
func NewVerifyCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Type-check probes against the generated units",
		Long: `Type-check small programs against the generated units.

Each probe either must compile (adding two lengths, comparing kilometers
with meters) or must be rejected by the compiler (adding a length to a time,
bool storage). verify fails when any probe is treated the wrong way.

The probes import the generated packages from source, so run verify from
inside the module after unitgen generate.`,
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
			if stale, err := codegen.Stale(p.cfg.OutputDir(), files); err == nil && len(stale) > 0 {
				fmt.Fprint(p.errOut, ui.Warning("generated code is stale, probes check the files on disk", stale, p.noColor))
			}

			checker, err := typecheck.NewChecker(p.cfg.Dir)
			if err != nil {
				return err
			}
			probes := typecheck.ProbesFor(p.cfg.CoreImport(), p.cat)

			var results []typecheck.ProbeResult
			err = ui.WithProgress(p.errOut, fmt.Sprintf("checked %d probes", len(probes)), len(probes), p.noColor, func(bar *ui.ProgressBar) error {
				for _, probe := range probes {
					r, err := checker.Run([]typecheck.Probe{probe})
					if err != nil {
						return err
					}
					p.logger.Debug("probe checked",
						zap.String("probe", probe.Name),
						zap.Bool("rejected", r[0].Rejected),
						zap.Bool("passed", r[0].Passed))
					results = append(results, r...)
					bar.Add(1)
				}
				return nil
			})
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if !r.Passed {
					failed++
				}
			}

			if asJSON {
				data, err := json.MarshalIndent(results, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal results: %w", err)
				}
				fmt.Fprintln(p.out, string(data))
			} else {
				printResults(p, results)
			}

			if failed > 0 {
				return silentError{fmt.Errorf("%d of %d probes failed", failed, len(results))}
			}
			ui.WriteSuccess(p.out, fmt.Sprintf("all %d probes behaved as expected", len(results)), p.noColor)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print probe results as JSON")

	return cmd
}

func printResults(p *project, results []typecheck.ProbeResult) {
	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed, color.Bold)
	if p.noColor {
		pass.DisableColor()
		fail.DisableColor()
	}

	table := ui.NewTable(p.out, []string{"Probe", "Expect", "Code", "Result"}, &ui.TableOptions{NoColor: p.noColor})
	for _, r := range results {
		expect := "compile"
		if r.Probe.Reject {
			expect = "reject"
		}
		status := pass.Sprint("ok")
		if !r.Passed {
			status = fail.Sprint("FAIL")
		}
		table.AddRow(r.Probe.Name, expect, string(r.Probe.Code), status)
	}
	table.Render()

	for _, r := range results {
		if r.Passed {
			continue
		}
		fmt.Fprintln(p.out)
		fail.Fprintf(p.out, "%s: %s\n", r.Probe.Name, r.Reason)
		for i := range r.Diagnostics {
			fmt.Fprint(p.out, r.Diagnostics[i].Format())
		}
	}
}
