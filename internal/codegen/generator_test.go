package codegen

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/quantica/units/internal/catalog"
)

const coreImport = "github.com/quantica/units/pkg/units"

func generate(t *testing.T, cat *catalog.Catalog) map[string]string {
	t.Helper()
	files, err := NewGenerator(Options{CoreImport: coreImport}).Generate(cat)
	require.NoError(t, err)
	return files
}

func TestGenerateFileSet(t *testing.T) {
	files := generate(t, catalog.Default())

	assert.Equal(t, []string{
		"f/" + UnitsFile,
		"i/" + UnitsFile,
		DimensionsFile,
		PrefixesFile,
	}, SortedNames(files))

	fset := token.NewFileSet()
	for name, src := range files {
		assert.True(t, strings.HasPrefix(src, header+"\n"), name)
		_, err := parser.ParseFile(fset, name, src, parser.AllErrors)
		assert.NoError(t, err, name)
	}
}

func TestGenerateRequiresCoreImport(t *testing.T) {
	_, err := NewGenerator(Options{}).Generate(catalog.Default())
	assert.Error(t, err)
}

func TestGeneratePrefixes(t *testing.T) {
	src := generate(t, catalog.Default())[PrefixesFile]

	assert.Contains(t, src, "package units\n")
	assert.Contains(t, src, "type Kilo struct{}")
	assert.Contains(t, src, "func (Kilo) Ratio() Ratio { return Ratio{Num: 1000, Den: 1} }")
	assert.Contains(t, src, `func (Micro) Symbol() string { return "u" }`)
	assert.Equal(t, 16, strings.Count(src, "struct{}"))
}

func TestGenerateDimensions(t *testing.T) {
	cat := &catalog.Catalog{
		BaseUnits: []catalog.BaseUnit{{Name: "Meter", Axis: "distance"}, {Name: "Second", Axis: "time"}},
		Derived: []catalog.Derived{
			{Name: "Velocity", Expr: "Distance / Time", Doc: "speed"},
			{Name: "Jerk", Expr: "Velocity / (Time * Time)"},
		},
		Storage: []catalog.Storage{{Package: "f", Type: "float64"}},
	}
	require.NoError(t, cat.Validate())

	src := generate(t, cat)[DimensionsFile]
	assert.Contains(t, src, "// Velocity is speed (s^-1·m).\ntype Velocity = Quot[Distance, Time]")
	assert.Contains(t, src, "type Jerk = Quot[Velocity, Prod[Time, Time]]")
}

func TestGenerateStorage(t *testing.T) {
	files := generate(t, catalog.Default())

	src := files["i/"+UnitsFile]
	assert.Contains(t, src, "package i\n")
	assert.Contains(t, src, `import "`+coreImport+`"`)
	assert.Contains(t, src, "type Kilogram = units.Quantity[units.Mass, units.Kilo, int64]")
	assert.Contains(t, src, "func Kilograms(v int64) Kilogram { return units.New[units.Mass, units.Kilo](v) }")
	assert.Contains(t, src, "// Second is the base unit of time (s).")

	src = files["f/"+UnitsFile]
	assert.Contains(t, src, "type Millimeter = units.Quantity[units.Distance, units.Milli, float64]")
	assert.Equal(t, 7*17, strings.Count(src, "\ntype "))
}

func TestGenerateMatchesCommittedOutput(t *testing.T) {
	cat, err := catalog.Load(filepath.Join("..", "..", "catalog.yaml"))
	require.NoError(t, err)

	stale, err := Stale(filepath.Join("..", "..", "pkg", "units"), generate(t, cat))
	require.NoError(t, err)
	assert.Empty(t, stale, "run unitgen generate")
}

func TestGenerateReportsCatalogWarnings(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	cat := catalog.Default()
	cat.Derived = append(cat.Derived, catalog.Derived{Name: "Specific", Expr: "Distance / Mass"})
	require.NoError(t, cat.Validate())

	_, err := NewGenerator(Options{CoreImport: coreImport, Logger: zap.New(core)}).Generate(cat)
	require.NoError(t, err)

	warned := logs.FilterMessage("derived dimension divides by exponents on additive axes").All()
	require.Len(t, warned, 1)
	assert.Equal(t, "Specific", warned[0].ContextMap()["dimension"])

	assert.Equal(t, 1, logs.FilterMessage("some prefix products cannot be evaluated").Len())
	assert.Equal(t, len(cat.OverflowingPrefixes()), logs.FilterMessage("prefix product overflows int64 scale").Len())
}
