// Package convert implements the conversion engine. A conversion first checks
// that both units share a category, then applies the category-specific
// physical-validity check, then routes the value through the category's base
// unit. The engine is pure and stateless; each call is independent.
package convert

import (
	"fmt"

	"github.com/harrison/unitconv/internal/units"
)

// CategoryMismatchError reports an attempt to convert between units of
// different categories. It carries both descriptors for diagnostics.
type CategoryMismatchError struct {
	From units.Unit
	To   units.Unit
}

func (e *CategoryMismatchError) Error() string {
	return fmt.Sprintf("cannot convert between different unit categories: %s is a %s unit, %s is a %s unit",
		e.From.Name, e.From.Category, e.To.Name, e.To.Category)
}

// BelowAbsoluteZeroError reports a temperature input below the source unit's
// absolute zero. The threshold is the unit's own Floor, expressed in the
// unit's own scale.
type BelowAbsoluteZeroError struct {
	Unit  units.Unit
	Value float64
}

func (e *BelowAbsoluteZeroError) Error() string {
	return fmt.Sprintf("temperature below absolute zero: %v %s (minimum is %v %s)",
		e.Value, e.Unit.Name, e.Unit.Floor, e.Unit.Name)
}

// Warning is a non-fatal diagnostic raised during conversion. A conversion
// that raises warnings still produces a result.
type Warning struct {
	Message string
}

// Convert converts value from one unit to another through the category's base
// unit. It fails when the categories differ, or when a temperature input is
// below the source unit's absolute zero (the boundary itself is valid). A
// negative length raises a warning but the conversion proceeds; negative mass
// is not validated.
func Convert(value float64, from, to units.Unit) (float64, []Warning, error) {
	if from.Category != to.Category {
		return 0, nil, &CategoryMismatchError{From: from, To: to}
	}

	var warnings []Warning
	switch from.Category {
	case units.Length:
		if value < 0 {
			warnings = append(warnings, Warning{Message: "Negative length doesn't make physical sense"})
		}
	case units.Temperature:
		if value < from.Floor {
			return 0, nil, &BelowAbsoluteZeroError{Unit: from, Value: value}
		}
	case units.Mass:
		// Negative mass passes unchecked.
	}

	base := from.ToBase(value)
	return to.FromBase(base), warnings, nil
}
