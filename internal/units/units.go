// Package units defines the static unit registry: every supported unit of
// measurement, its aliases, its category, and the pure transforms to and from
// the category's base unit (meters for length, Celsius for temperature,
// kilograms for mass).
//
// The registry is built once as package-level data and never mutated, so it
// is safe to share across goroutines without synchronization.
package units

import (
	"math"
	"strings"
)

// Category groups units that are mutually convertible. The set is closed;
// adding a category means adding conversion transforms for every unit in it.
type Category int

// The unit categories, in fixed display order.
const (
	Length Category = iota
	Temperature
	Mass
)

// String returns the human-readable category name used in diagnostics
// and listings.
func (c Category) String() string {
	switch c {
	case Length:
		return "Length"
	case Temperature:
		return "Temperature"
	case Mass:
		return "Mass"
	default:
		return "Unknown"
	}
}

// Categories returns all categories in display order: Length, Temperature,
// Mass.
func Categories() []Category {
	return []Category{Length, Temperature, Mass}
}

// Unit describes one unit of measurement.
type Unit struct {
	// Name is the canonical symbol (e.g. "km"), unique across the registry
	// under case-insensitive comparison.
	Name string

	// Aliases are alternative spellings accepted by Lookup. They are
	// disjoint, case-insensitively, from every other unit's name and aliases.
	Aliases []string

	// Category is the unit's conversion group.
	Category Category

	// ToBase converts a quantity in this unit to the category's base unit.
	ToBase func(float64) float64

	// FromBase is the inverse of ToBase.
	FromBase func(float64) float64

	// Floor is the lowest physically valid input value expressed in this
	// unit's own scale. Units without a lower bound use negative infinity.
	Floor float64
}

// Matches reports whether input names this unit, comparing the canonical
// name and every alias case-insensitively.
func (u Unit) Matches(input string) bool {
	if strings.EqualFold(u.Name, input) {
		return true
	}
	for _, alias := range u.Aliases {
		if strings.EqualFold(alias, input) {
			return true
		}
	}
	return false
}

// identity is the transform pair for a category's base unit.
func identity(v float64) float64 { return v }

// linearUnit builds a descriptor for a unit related to its base by a constant
// factor (1 of this unit = factor base units).
func linearUnit(name string, aliases []string, category Category, factor float64) Unit {
	return Unit{
		Name:     name,
		Aliases:  aliases,
		Category: category,
		ToBase:   func(v float64) float64 { return v * factor },
		FromBase: func(v float64) float64 { return v / factor },
		Floor:    math.Inf(-1),
	}
}

// registry is the full unit table in declaration order. Declaration order is
// also the display order within each category.
var registry = []Unit{
	linearUnit("km", []string{"kilometer", "kilometers", "kilometre", "kilometres"}, Length, 1000),
	linearUnit("m", []string{"meter", "meters", "metre", "metres"}, Length, 1),
	linearUnit("cm", []string{"centimeter", "centimeters", "centimetre", "centimetres"}, Length, 0.01),
	linearUnit("mm", []string{"millimeter", "millimeters", "millimetre", "millimetres"}, Length, 0.001),
	linearUnit("mi", []string{"mile", "miles"}, Length, 1609.344),
	linearUnit("yd", []string{"yard", "yards"}, Length, 0.9144),
	linearUnit("ft", []string{"foot", "feet"}, Length, 0.3048),
	linearUnit("in", []string{"inch", "inches"}, Length, 0.0254),
	{
		Name:     "C",
		Aliases:  []string{"celsius", "centigrade"},
		Category: Temperature,
		ToBase:   identity,
		FromBase: identity,
		Floor:    -273.15,
	},
	{
		Name:     "F",
		Aliases:  []string{"fahrenheit"},
		Category: Temperature,
		ToBase:   func(v float64) float64 { return (v - 32) * 5 / 9 },
		FromBase: func(v float64) float64 { return v*9/5 + 32 },
		Floor:    -459.67,
	},
	{
		Name:     "K",
		Aliases:  []string{"kelvin"},
		Category: Temperature,
		ToBase:   func(v float64) float64 { return v - 273.15 },
		FromBase: func(v float64) float64 { return v + 273.15 },
		Floor:    0,
	},
	linearUnit("kg", []string{"kilogram", "kilograms"}, Mass, 1),
	linearUnit("g", []string{"gram", "grams"}, Mass, 0.001),
	linearUnit("mg", []string{"milligram", "milligrams"}, Mass, 0.000001),
	linearUnit("lb", []string{"pound", "pounds"}, Mass, 0.45359237),
	linearUnit("oz", []string{"ounce", "ounces"}, Mass, 0.028349523125),
	linearUnit("ton", []string{"tons", "tonne", "tonnes", "metric ton"}, Mass, 1000),
}

// Lookup resolves a unit name or alias to its descriptor. Matching is
// case-insensitive. Names and aliases are disjoint across the registry, so at
// most one unit can match; the second return value is false when none does.
func Lookup(input string) (Unit, bool) {
	for _, u := range registry {
		if u.Matches(input) {
			return u, true
		}
	}
	return Unit{}, false
}

// Group pairs a category with its units in declaration order.
type Group struct {
	Category Category
	Units    []Unit
}

// ByCategory returns every registered unit grouped by category, with groups
// in display order and units in declaration order.
func ByCategory() []Group {
	categories := Categories()
	groups := make([]Group, 0, len(categories))
	for _, c := range categories {
		g := Group{Category: c}
		for _, u := range registry {
			if u.Category == c {
				g.Units = append(g.Units, u)
			}
		}
		groups = append(groups, g)
	}
	return groups
}

// All returns a copy of the registry in declaration order.
func All() []Unit {
	return append([]Unit(nil), registry...)
}
