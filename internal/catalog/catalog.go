// Package catalog loads and validates the description of the generated
// unit catalog: decimal prefixes, one base unit per axis, named derived
// dimensions and the storage kinds to emit.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quantica/units/pkg/units"
)

// Catalog is the decoded catalog.yaml
type Catalog struct {
	Prefixes  []Prefix   `yaml:"prefixes"`
	BaseUnits []BaseUnit `yaml:"base_units"`
	Derived   []Derived  `yaml:"derived"`
	Storage   []Storage  `yaml:"storage"`
}

// Prefix is a named decimal scale applied to every base unit
type Prefix struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
	Num    int64  `yaml:"num"`
	Den    int64  `yaml:"den"`
}

// Ratio returns the prefix scale in lowest terms.
func (p Prefix) Ratio() units.Ratio {
	return units.NewRatio(p.Num, p.Den)
}

// BaseUnit is the unscaled unit of one axis
type BaseUnit struct {
	Name   string `yaml:"name"`
	Plural string `yaml:"plural,omitempty"`
	Symbol string `yaml:"symbol"`
	Axis   string `yaml:"axis"`

	axis units.Axis
}

// PluralName returns the constructor name, defaulting to Name+"s".
func (b BaseUnit) PluralName() string {
	if b.Plural != "" {
		return b.Plural
	}
	return b.Name + "s"
}

// Derived names a dimension built from other dimensions
type Derived struct {
	Name string `yaml:"name"`
	Expr string `yaml:"expr"`
	Doc  string `yaml:"doc,omitempty"`

	tree   Expr
	vector units.Vector
}

// Tree returns the parsed expression. Valid after Validate.
func (d Derived) Tree() Expr { return d.tree }

// Vector returns the evaluated exponents. Valid after Validate.
func (d Derived) Vector() units.Vector { return d.vector }

// Storage is one generated package of unit aliases over a numeric type
type Storage struct {
	Package string `yaml:"package"`
	Type    string `yaml:"type"`
	Doc     string `yaml:"doc,omitempty"`
}

// UnitSpec is one generated unit: a base unit at the base scale or at one
// of the prefixes
type UnitSpec struct {
	Name      string
	Plural    string
	Symbol    string
	Dimension string // marker type in package units
	Scale     string // marker type in package units
	Axis      units.Axis
	Ratio     units.Ratio
}

// Load reads and validates the catalog at path
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes a catalog document, rejecting unknown fields, and validates it
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cat Catalog
	if err := dec.Decode(&cat); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Marshal encodes the catalog back to YAML
func (c *Catalog) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Units lists every base unit at the base scale followed by each prefix, in
// declaration order.
func (c *Catalog) Units() []UnitSpec {
	out := make([]UnitSpec, 0, len(c.BaseUnits)*(len(c.Prefixes)+1))
	for _, b := range c.BaseUnits {
		out = append(out, UnitSpec{
			Name:      b.Name,
			Plural:    b.PluralName(),
			Symbol:    b.Symbol,
			Dimension: MarkerName(b.axis),
			Scale:     "One",
			Axis:      b.axis,
			Ratio:     units.NewRatio(1, 1),
		})
		for _, p := range c.Prefixes {
			out = append(out, UnitSpec{
				Name:      p.Name + strings.ToLower(b.Name),
				Plural:    p.Name + strings.ToLower(b.PluralName()),
				Symbol:    p.Symbol + b.Symbol,
				Dimension: MarkerName(b.axis),
				Scale:     p.Name,
				Axis:      b.axis,
				Ratio:     p.Ratio(),
			})
		}
	}
	return out
}

// OverflowingPrefixes returns the pairs of prefixes whose product cannot be
// represented as an int64 ratio. Quantities tagged Times of such a pair
// panic when their scale is evaluated.
func (c *Catalog) OverflowingPrefixes() [][2]string {
	var out [][2]string
	for i, a := range c.Prefixes {
		for _, b := range c.Prefixes[i:] {
			if _, err := a.Ratio().MulChecked(b.Ratio()); err != nil {
				out = append(out, [2]string{a.Name, b.Name})
			}
		}
	}
	return out
}

// MarkerName returns the dimension marker type for a base axis
func MarkerName(a units.Axis) string {
	name := a.String()
	return strings.ToUpper(name[:1]) + name[1:]
}
