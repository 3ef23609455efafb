// Package typecheck compiles small Go snippets against this module with
// go/types and reports whether they are accepted. It backs the negative
// compile tests: operations that must not build (adding a length to a
// time, comparing across dimensions, bool storage) are written as probes
// and verified to be rejected by the compiler.
package typecheck

import (
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
)

// Checker type-checks snippets as if they were files of a package in dir.
// dir must lie inside a module that can resolve the snippets' imports.
// Imported packages are loaded from source once and cached.
type Checker struct {
	dir  string
	fset *token.FileSet
	imp  types.Importer
}

// NewChecker creates a checker rooted at dir
func NewChecker(dir string) (*Checker, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve checker directory: %w", err)
	}
	fset := token.NewFileSet()
	from, ok := importer.ForCompiler(fset, "source", nil).(types.ImporterFrom)
	if !ok {
		return nil, errors.New("source importer cannot resolve imports from a directory")
	}
	return &Checker{
		dir:  abs,
		fset: fset,
		imp:  dirImporter{from: from, dir: abs},
	}, nil
}

// dirImporter resolves every import as if from a file in dir, independent of
// the process working directory
type dirImporter struct {
	from types.ImporterFrom
	dir  string
}

func (d dirImporter) Import(path string) (*types.Package, error) {
	return d.from.ImportFrom(path, d.dir, 0)
}

// Check parses and type-checks src as file name. Type errors are returned as
// diagnostics; a non-nil error means src is not valid Go syntax.
func (c *Checker) Check(name, src string) ([]Diagnostic, error) {
	filename := filepath.Join(c.dir, name)
	file, err := parser.ParseFile(c.fset, filename, src, parser.AllErrors)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	var diags []Diagnostic
	conf := types.Config{
		Importer: c.imp,
		Error: func(err error) {
			diags = append(diags, c.diagnostic(err))
		},
	}
	// errors are collected through conf.Error
	_, _ = conf.Check("probe", c.fset, []*ast.File{file}, nil)

	return diags, nil
}

func (c *Checker) diagnostic(err error) Diagnostic {
	d := Diagnostic{
		Code:     ErrTypeCheck,
		Severity: SeverityError,
		Message:  err.Error(),
	}
	var te types.Error
	if errors.As(err, &te) {
		pos := te.Fset.Position(te.Pos)
		d.Message = te.Msg
		d.Location = Location{File: filepath.Base(pos.Filename), Line: pos.Line, Column: pos.Column}
		if te.Soft {
			d.Severity = SeverityWarning
		}
	}
	return d
}
