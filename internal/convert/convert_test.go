package convert

import (
	"errors"
	"testing"

	"github.com/harrison/unitconv/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustLookup resolves a unit or fails the test
func mustLookup(t *testing.T, name string) units.Unit {
	t.Helper()
	u, ok := units.Lookup(name)
	require.True(t, ok, "unit %q not found", name)
	return u
}

func TestConversionScenarios(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		from  string
		to    string
		want  float64
		delta float64
	}{
		{"km to miles", 5.0, "km", "mi", 3.10686, 1e-5},
		{"celsius to fahrenheit boiling", 100.0, "C", "F", 212.0, 1e-5},
		{"celsius to fahrenheit freezing", 0.0, "C", "F", 32.0, 1e-5},
		{"kg to pounds", 10.0, "kg", "lb", 22.0462, 1e-4},
		{"mg to kg", 1000000.0, "mg", "kg", 1.0, 1e-5},
		{"kelvin to celsius", 273.15, "K", "C", 0.0, 1e-5},
		{"g to mg", 1.0, "g", "mg", 1000.0, 1e-5},
		{"feet to meters", 100.0, "ft", "m", 30.48, 1e-5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings, err := Convert(tt.value, mustLookup(t, tt.from), mustLookup(t, tt.to))
			require.NoError(t, err)
			assert.Empty(t, warnings)
			assert.InDelta(t, tt.want, got, tt.delta)
		})
	}
}

func TestIdentityConversion(t *testing.T) {
	for _, u := range units.All() {
		value := 100.0
		if u.Category == units.Temperature {
			// Stay above every temperature floor
			value = 50.0
		}
		got, _, err := Convert(value, u, u)
		require.NoError(t, err, "identity conversion failed for %s", u.Name)
		assert.InDelta(t, value, got, 1e-9, "identity conversion changed value for %s", u.Name)
	}
}

func TestCategoryMismatch(t *testing.T) {
	groups := units.ByCategory()
	for _, fromGroup := range groups {
		for _, toGroup := range groups {
			if fromGroup.Category == toGroup.Category {
				continue
			}
			from := fromGroup.Units[0]
			to := toGroup.Units[0]

			_, _, err := Convert(1.0, from, to)
			require.Error(t, err, "expected mismatch error for %s -> %s", from.Name, to.Name)

			var mismatch *CategoryMismatchError
			require.True(t, errors.As(err, &mismatch))
			assert.Equal(t, fromGroup.Category, mismatch.From.Category)
			assert.Equal(t, toGroup.Category, mismatch.To.Category)
		}
	}
}

func TestCategoryMismatchMessage(t *testing.T) {
	_, _, err := Convert(5.0, mustLookup(t, "km"), mustLookup(t, "kg"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "different unit categories")
	assert.Contains(t, err.Error(), "Length")
	assert.Contains(t, err.Error(), "Mass")
}

func TestAbsoluteZeroBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		from    string
		wantErr bool
	}{
		{"celsius at absolute zero", -273.15, "C", false},
		{"celsius below absolute zero", -273.16, "C", true},
		{"kelvin at absolute zero", 0, "K", false},
		{"kelvin below absolute zero", -0.01, "K", true},
		{"fahrenheit at absolute zero", -459.67, "F", false},
		{"fahrenheit below absolute zero", -459.68, "F", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := mustLookup(t, tt.from)
			_, _, err := Convert(tt.value, from, mustLookup(t, "K"))

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var belowZero *BelowAbsoluteZeroError
			require.True(t, errors.As(err, &belowZero))
			assert.Equal(t, from.Name, belowZero.Unit.Name)
			assert.Equal(t, tt.value, belowZero.Value)
			assert.Contains(t, err.Error(), "below absolute zero")
		})
	}
}

func TestAbsoluteZeroUsesInputUnitScale(t *testing.T) {
	// -300 is below absolute zero in Celsius but a valid Kelvin temperature
	_, _, err := Convert(-300, mustLookup(t, "C"), mustLookup(t, "K"))
	assert.Error(t, err)

	got, _, err := Convert(300, mustLookup(t, "K"), mustLookup(t, "C"))
	require.NoError(t, err)
	assert.InDelta(t, 26.85, got, 1e-9)
}

func TestNegativeLengthWarnsButConverts(t *testing.T) {
	got, warnings, err := Convert(-5.0, mustLookup(t, "m"), mustLookup(t, "ft"))
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "Negative length")
	assert.InDelta(t, -16.4042, got, 1e-4)
}

func TestNegativeMassNotValidated(t *testing.T) {
	got, warnings, err := Convert(-10.0, mustLookup(t, "kg"), mustLookup(t, "lb"))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.InDelta(t, -22.0462, got, 1e-4)
}

func TestZeroLengthNoWarning(t *testing.T) {
	_, warnings, err := Convert(0, mustLookup(t, "m"), mustLookup(t, "km"))
	require.NoError(t, err)
	assert.Empty(t, warnings)
}
