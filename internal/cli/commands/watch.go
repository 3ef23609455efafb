package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quantica/units/internal/catalog"
	"github.com/quantica/units/internal/codegen"
	"github.com/quantica/units/internal/watch"
)

// NewWatchCommand creates the watch command
func NewWatchCommand() *cobra.Command {
	var skipInitial bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever the catalog changes",
		Long: `Watch the catalog directory and regenerate on every change.

Writes to *.yaml and *.yml files are debounced (watch.debounce in
unitgen.yaml, 100ms by default). A catalog that fails to load is reported
and the previous generated code is left in place.

Examples:
  unitgen watch
  unitgen watch --log-level debug`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(cmd)
			if err != nil {
				return err
			}
			defer p.logger.Sync() //nolint:errcheck

			if !skipInitial {
				if err := regenerate(p); err != nil {
					return err
				}
			}

			catalogPath := p.cfg.CatalogPath()
			fw, err := watch.NewFileWatcher(watch.Options{
				Dirs:     []string{filepath.Dir(catalogPath)},
				Ignored:  p.cfg.Watch.Ignore,
				Debounce: p.cfg.Watch.Debounce,
				Logger:   p.logger,
			}, func(runID string, files []string) error {
				cat, err := catalog.Load(catalogPath)
				if err != nil {
					return err
				}
				p.cat = cat
				return regenerate(p)
			})
			if err != nil {
				return err
			}
			if err := fw.Start(); err != nil {
				return err
			}

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			banner := color.New(color.FgCyan, color.Bold)
			fmt.Fprintln(p.out)
			banner.Fprintln(p.out, "unitgen watch")
			fmt.Fprintf(p.out, "   Catalog: %s\n", catalogPath)
			fmt.Fprintf(p.out, "   Output:  %s\n", p.cfg.OutputDir())
			fmt.Fprintln(p.out)
			color.New(color.FgYellow).Fprintln(p.out, "Press Ctrl+C to stop")

			select {
			case <-sigChan:
			case <-cmd.Context().Done():
			}

			fmt.Fprintln(p.out, "\nShutting down...")
			return fw.Stop()
		},
	}

	cmd.Flags().BoolVar(&skipInitial, "skip-initial", false, "Do not generate once before watching")

	return cmd
}

// regenerate renders the loaded catalog and writes only when output changed
func regenerate(p *project) error {
	files, err := p.render()
	if err != nil {
		return err
	}
	root := p.cfg.OutputDir()

	stale, err := codegen.Stale(root, files)
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		p.logger.Info("generated code is up to date")
		return nil
	}

	changed := make(map[string]string, len(stale))
	for _, name := range stale {
		changed[name] = files[name]
	}
	if err := codegen.Write(root, changed); err != nil {
		return err
	}
	p.logger.Info("regenerated", zap.Strings("files", stale))
	return nil
}
