package typecheck

import (
	"fmt"
	"path"
	"strings"

	"github.com/quantica/units/internal/catalog"
)

// Probe is a snippet the compiler must either accept or reject
type Probe struct {
	Name        string
	Description string
	Imports     []string
	Body        string
	Reject      bool
	Code        ErrorCode
}

// Source renders the probe as a complete Go file
func (p Probe) Source() string {
	var b strings.Builder
	b.WriteString("package probe\n\n")
	for _, imp := range p.Imports {
		fmt.Fprintf(&b, "import %q\n", imp)
	}
	b.WriteString("\nfunc probe() {\n")
	for _, line := range strings.Split(strings.TrimSpace(p.Body), "\n") {
		b.WriteString("\t" + strings.TrimSpace(line) + "\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// ProbeResult records how the compiler treated a probe
type ProbeResult struct {
	Probe       Probe
	Rejected    bool
	Passed      bool
	Diagnostics []Diagnostic
	Reason      string
}

// defectMarkers are go/types messages that mean the probe itself is broken:
// a rejection caused by them proves nothing about the units algebra
var defectMarkers = []string{
	"undefined:",
	"has no field or method",
	"imported and not used",
	"declared and not used",
	"could not import",
}

// Run checks every probe
func (c *Checker) Run(probes []Probe) ([]ProbeResult, error) {
	results := make([]ProbeResult, 0, len(probes))
	for _, p := range probes {
		diags, err := c.Check(p.Name+".go", p.Source())
		if err != nil {
			return nil, fmt.Errorf("probe %s: %w", p.Name, err)
		}
		results = append(results, evaluate(p, diags))
	}
	return results, nil
}

func evaluate(p Probe, diags []Diagnostic) ProbeResult {
	r := ProbeResult{Probe: p, Rejected: len(diags) > 0, Diagnostics: diags}

	for i := range r.Diagnostics {
		for _, marker := range defectMarkers {
			if strings.Contains(r.Diagnostics[i].Message, marker) {
				r.Reason = "probe is malformed: " + r.Diagnostics[i].Message
				return r
			}
		}
	}

	switch {
	case p.Reject && r.Rejected:
		for i := range r.Diagnostics {
			r.Diagnostics[i].Code = p.Code
		}
		r.Passed = true
	case p.Reject:
		r.Reason = "compiled, but must be rejected"
	case r.Rejected:
		r.Reason = "rejected, but must compile"
	default:
		r.Passed = true
	}
	return r
}

// DefaultProbes returns the probes that pin down the algebra of package
// units at coreImport
func DefaultProbes(coreImport string) []Probe {
	imports := []string{coreImport}
	probes := []Probe{
		{
			Name:        "add_same_unit",
			Description: "Add accepts operands of identical dimension and scale",
			Body: `a := units.New[units.Distance, units.Kilo](1.5)
				_ = a.Add(units.New[units.Distance, units.Kilo](2.0))`,
		},
		{
			Name:        "compare_across_scales",
			Description: "comparisons accept different scales of one dimension",
			Body: `km := units.New[units.Distance, units.Kilo](int64(1))
				m := units.New[units.Distance, units.One](int64(1000))
				_ = units.Equal(km, m) && units.LessEqual(m, km)`,
		},
		{
			Name:        "mul_result_type",
			Description: "Mul yields Prod and Times tags",
			Body: `var _ units.Quantity[units.Prod[units.Distance, units.Time], units.Times[units.One, units.One], float64] = units.Mul(units.New[units.Distance, units.One](2.0), units.New[units.Time, units.One](3.0))`,
		},
		{
			Name:        "div_result_type",
			Description: "Div yields Quot and Per tags; derived aliases are identical",
			Body: `var _ units.Quantity[units.Velocity, units.Per[units.Kilo, units.One], float64] = units.Div(units.New[units.Distance, units.Kilo](2.0), units.New[units.Time, units.One](3.0))`,
		},
		{
			Name:        "convert_scale",
			Description: "Convert changes only the scale",
			Body: `var _ units.Quantity[units.Distance, units.Milli, int64] = units.Convert[units.Milli](units.New[units.Distance, units.Kilo](int64(1)))`,
		},
		{
			Name:        "compound_assignment",
			Description: "compound assignment chains on a pointer",
			Body: `q := units.New[units.Mass, units.One](1.0)
				q.AddAssign(q).MulAssign(2)`,
		},
		{
			Name:        "commute_product",
			Description: "Commute reorders product factors without a runtime check",
			Body: `var _ units.Quantity[units.Prod[units.Time, units.Distance], units.Times[units.One, units.One], float64] = units.Commute(units.Mul(units.New[units.Distance, units.One](2.0), units.New[units.Time, units.One](3.0)))`,
		},
		{
			Name:        "add_across_dimensions",
			Description: "adding a length to a time",
			Body:        `_ = units.New[units.Distance, units.One](1.0).Add(units.New[units.Time, units.One](1.0))`,
			Reject:      true,
			Code:        ErrDimensionMismatch,
		},
		{
			Name:        "compare_across_dimensions",
			Description: "comparing a length with a mass",
			Body:        `_ = units.Less(units.New[units.Distance, units.One](1.0), units.New[units.Mass, units.One](1.0))`,
			Reject:      true,
			Code:        ErrDimensionMismatch,
		},
		{
			Name:        "compare_equal_vectors",
			Description: "m*m/m has the vector of a length but not its marker type",
			Body: `m := units.New[units.Distance, units.One](1.0)
				_ = units.Equal(units.Div(units.Mul(m, m), m), m)`,
			Reject: true,
			Code:   ErrDimensionMismatch,
		},
		{
			Name:        "assign_wrong_derived",
			Description: "a velocity is not an acceleration",
			Body:        `var _ units.Quantity[units.Acceleration, units.Per[units.One, units.One], float64] = units.Div(units.New[units.Distance, units.One](1.0), units.New[units.Time, units.One](1.0))`,
			Reject:      true,
			Code:        ErrDimensionMismatch,
		},
		{
			Name:        "convert_across_dimensions",
			Description: "Convert cannot change the dimension",
			Body:        `var _ units.Quantity[units.Time, units.One, float64] = units.Convert[units.One](units.New[units.Distance, units.Kilo](1.0))`,
			Reject:      true,
			Code:        ErrDimensionMismatch,
		},
		{
			Name:        "add_across_scales",
			Description: "adding kilometers to meters without Convert",
			Body:        `_ = units.New[units.Distance, units.Kilo](1.0).Add(units.New[units.Distance, units.One](1.0))`,
			Reject:      true,
			Code:        ErrScaleMismatch,
		},
		{
			Name:        "bool_storage",
			Description: "bool is not a Number",
			Body:        `_ = units.New[units.Distance, units.One](true)`,
			Reject:      true,
			Code:        ErrInvalidStorage,
		},
		{
			Name:        "string_storage",
			Description: "string is not a Number",
			Body:        `_ = units.New[units.Distance, units.One]("1")`,
			Reject:      true,
			Code:        ErrInvalidStorage,
		},
		{
			Name:        "compare_across_storage",
			Description: "float64 and int64 quantities do not mix",
			Body:        `_ = units.Equal(units.New[units.Distance, units.One](1.0), units.New[units.Distance, units.One](int64(1)))`,
			Reject:      true,
			Code:        ErrStorageMismatch,
		},
	}
	for i := range probes {
		probes[i].Imports = imports
	}
	return probes
}

// CatalogProbes returns probes over the generated storage packages of cat,
// whose core package is coreImport. They use the first two base units and,
// when the catalog has prefixes, the first prefix.
func CatalogProbes(coreImport string, cat *catalog.Catalog) []Probe {
	if len(cat.BaseUnits) < 2 {
		return nil
	}
	all := cat.Units()
	first, second := all[0], all[len(cat.Prefixes)+1]

	var probes []Probe
	for _, s := range cat.Storage {
		pkg := path.Join(coreImport, s.Package)
		probes = append(probes,
			Probe{
				Name:        s.Package + "_add_same_unit",
				Description: "catalog aliases of one unit add",
				Imports:     []string{pkg},
				Body:        fmt.Sprintf("_ = %[1]s.%[2]s(1).Add(%[1]s.%[2]s(2))", s.Package, first.Plural),
			},
			Probe{
				Name:        s.Package + "_add_across_dimensions",
				Description: "catalog aliases of different axes do not add",
				Imports:     []string{pkg},
				Body:        fmt.Sprintf("_ = %[1]s.%[2]s(1).Add(%[1]s.%[3]s(1))", s.Package, first.Plural, second.Plural),
				Reject:      true,
				Code:        ErrDimensionMismatch,
			},
		)
		if len(cat.Prefixes) > 0 {
			prefixed := all[1]
			probes = append(probes, Probe{
				Name:        s.Package + "_compare_prefixed",
				Description: "a prefixed unit compares with its base unit",
				Imports:     []string{coreImport, pkg},
				Body:        fmt.Sprintf("_ = units.Equal(%[1]s.%[2]s(1), %[1]s.%[3]s(1))", s.Package, prefixed.Plural, first.Plural),
			})
		}
	}
	return probes
}

// ProbesFor returns the probes that apply to cat. The default probes name
// Kilo, Milli, Velocity and Acceleration, so they run only when the
// catalog declares all four.
func ProbesFor(coreImport string, cat *catalog.Catalog) []Probe {
	names := make(map[string]bool)
	for _, p := range cat.Prefixes {
		names[p.Name] = true
	}
	for _, d := range cat.Derived {
		names[d.Name] = true
	}

	var probes []Probe
	if names["Kilo"] && names["Milli"] && names["Velocity"] && names["Acceleration"] {
		probes = append(probes, DefaultProbes(coreImport)...)
	}
	return append(probes, CatalogProbes(coreImport, cat)...)
}
