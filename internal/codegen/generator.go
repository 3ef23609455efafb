// Package codegen renders a validated unit catalog as Go source: prefix
// scale markers and derived dimension aliases for package units, and one
// package of named unit aliases per storage kind.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"path"

	"go.uber.org/zap"

	"github.com/quantica/units/internal/catalog"
)

// Generated file names, relative to the output root
const (
	PrefixesFile   = "zz_generated_prefixes.go"
	DimensionsFile = "zz_generated_dimensions.go"
	UnitsFile      = "zz_generated_units.go"
)

const header = "// Code generated by unitgen. DO NOT EDIT."

// Options configures a Generator
type Options struct {
	// CoreImport is the import path of package units, which is also the
	// package the output root holds
	CoreImport string

	// Logger receives catalog warnings; nil disables logging
	Logger *zap.Logger
}

// Generator transforms a catalog into Go code
type Generator struct {
	buf    *bytes.Buffer
	indent int
	opts   Options
	logger *zap.Logger
}

// NewGenerator creates a new code generator
func NewGenerator(opts Options) *Generator {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		buf:    &bytes.Buffer{},
		opts:   opts,
		logger: logger,
	}
}

// Generate renders every file for cat, keyed by slash-separated path
// relative to the output root
func (g *Generator) Generate(cat *catalog.Catalog) (map[string]string, error) {
	if g.opts.CoreImport == "" {
		return nil, fmt.Errorf("codegen: core import path is required")
	}
	g.report(cat)

	files := make(map[string]string)

	prefixes, err := g.GeneratePrefixes(cat)
	if err != nil {
		return nil, fmt.Errorf("failed to generate prefixes: %w", err)
	}
	files[PrefixesFile] = prefixes

	dims, err := g.GenerateDimensions(cat)
	if err != nil {
		return nil, fmt.Errorf("failed to generate dimensions: %w", err)
	}
	files[DimensionsFile] = dims

	for _, s := range cat.Storage {
		code, err := g.GenerateStorage(cat, s)
		if err != nil {
			return nil, fmt.Errorf("failed to generate storage %s: %w", s.Package, err)
		}
		files[path.Join(s.Package, UnitsFile)] = code
	}

	g.logger.Debug("catalog rendered",
		zap.Int("files", len(files)),
		zap.Int("units", len(cat.Units())),
		zap.Int("storage_kinds", len(cat.Storage)))

	return files, nil
}

// report logs catalog entries whose behavior callers may not expect
func (g *Generator) report(cat *catalog.Catalog) {
	for _, d := range cat.Derived {
		if divs := cat.LegacyDivisions(d); len(divs) > 0 {
			g.logger.Warn("derived dimension divides by exponents on additive axes",
				zap.String("dimension", d.Name),
				zap.String("expr", d.Expr),
				zap.Strings("divisors", divs),
				zap.String("vector", d.Vector().String()))
		}
	}

	pairs := cat.OverflowingPrefixes()
	for _, p := range pairs {
		g.logger.Debug("prefix product overflows int64 scale",
			zap.String("left", p[0]), zap.String("right", p[1]))
	}
	if len(pairs) > 0 {
		g.logger.Info("some prefix products cannot be evaluated",
			zap.Int("pairs", len(pairs)))
	}
}

// reset clears the buffer before rendering a new file
func (g *Generator) reset() {
	g.buf.Reset()
	g.indent = 0
}

// writeLine writes a formatted line with proper indentation
func (g *Generator) writeLine(format string, args ...interface{}) {
	if format == "" {
		g.buf.WriteString("\n")
		return
	}

	for i := 0; i < g.indent; i++ {
		g.buf.WriteString("\t")
	}

	if len(args) > 0 {
		g.buf.WriteString(fmt.Sprintf(format, args...))
	} else {
		g.buf.WriteString(format)
	}
	g.buf.WriteString("\n")
}

// source gofmts the buffer
func (g *Generator) source() (string, error) {
	formatted, err := format.Source(g.buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("generated code does not parse: %w", err)
	}
	return string(formatted), nil
}
