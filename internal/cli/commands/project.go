package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/quantica/units/internal/catalog"
	"github.com/quantica/units/internal/cli/config"
	"github.com/quantica/units/internal/cli/ui"
	"github.com/quantica/units/internal/codegen"
)

// project is the loaded configuration and catalog a command works on
type project struct {
	cfg     *config.Config
	cat     *catalog.Catalog
	logger  *zap.Logger
	noColor bool
	out     io.Writer
	errOut  io.Writer
}

// loadProject reads the config named by --config and the catalog it points
// to. Failures are printed with a hint and returned as silentError.
func loadProject(cmd *cobra.Command) (*project, error) {
	p, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Load(p.cfg.CatalogPath())
	if err != nil {
		fmt.Fprint(p.errOut, ui.CatalogError(p.cfg.CatalogPath(), err, p.noColor))
		return nil, silentError{err}
	}
	p.cat = cat

	p.logger.Debug("catalog loaded",
		zap.String("path", p.cfg.CatalogPath()),
		zap.Int("prefixes", len(cat.Prefixes)),
		zap.Int("base_units", len(cat.BaseUnits)),
		zap.Int("derived", len(cat.Derived)))

	return p, nil
}

// loadConfig reads the config and builds the logger
func loadConfig(cmd *cobra.Command) (*project, error) {
	configFile, _ := cmd.Flags().GetString("config")
	noColor, _ := cmd.Flags().GetBool("no-color")
	p := &project{
		noColor: noColor,
		out:     cmd.OutOrStdout(),
		errOut:  cmd.ErrOrStderr(),
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprint(p.errOut, ui.ConfigError(err.Error(), noColor))
		return nil, silentError{err}
	}
	p.cfg = cfg

	level := cfg.Level()
	if override, _ := cmd.Flags().GetString("log-level"); override != "" {
		level, err = zapcore.ParseLevel(override)
		if err != nil {
			return nil, fmt.Errorf("invalid --log-level: %w", err)
		}
	}
	p.logger = newLogger(p.errOut, level)

	return p, nil
}

// render generates every file for the loaded catalog
func (p *project) render() (map[string]string, error) {
	gen := codegen.NewGenerator(codegen.Options{
		CoreImport: p.cfg.CoreImport(),
		Logger:     p.logger,
	})
	return gen.Generate(p.cat)
}

// newLogger writes human-readable log lines to w
func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}
