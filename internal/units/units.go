// Package units converts the quantities that appear in a mix design
// between the metric and imperial systems.
package units

import (
	"strings"

	"gomix/internal/errors"
)

// Quantity is a measurable kind with a fixed metric/imperial unit pair.
type Quantity string

const (
	Length   Quantity = "length"   // metres and feet
	Volume   Quantity = "volume"   // cubic metres and cubic feet
	Mass     Quantity = "mass"     // kilograms and pounds
	Pressure Quantity = "pressure" // MPa and psi
)

// Conversion factors in both directions. The reverse factors are the
// conventional rounded values, not computed inverses.
var (
	toImperial = map[Quantity]float64{
		Length:   3.28084,
		Volume:   35.3147,
		Mass:     2.20462,
		Pressure: 145.038,
	}
	toMetric = map[Quantity]float64{
		Length:   0.3048,
		Volume:   0.0283168,
		Mass:     0.453592,
		Pressure: 0.00689476,
	}
)

// Unit labels per quantity, metric first.
var unitLabels = map[Quantity][2]string{
	Length:   {"m", "ft"},
	Volume:   {"m3", "ft3"},
	Mass:     {"kg", "lb"},
	Pressure: {"MPa", "psi"},
}

// Quantities lists the convertible quantity kinds.
func Quantities() []Quantity {
	return []Quantity{Length, Volume, Mass, Pressure}
}

// ParseQuantity resolves a case-insensitive quantity name.
func ParseQuantity(s string) (Quantity, error) {
	q := Quantity(strings.ToLower(strings.TrimSpace(s)))
	switch q {
	case Length, Volume, Mass, Pressure:
		return q, nil
	}
	return "", errors.InvalidParameter("quantity", s)
}

// ToImperial converts a metric value of the quantity to its imperial unit.
func ToImperial(q Quantity, v float64) (float64, error) {
	factor, ok := toImperial[q]
	if !ok {
		return 0, errors.InvalidParameter("quantity", string(q))
	}
	return v * factor, nil
}

// ToMetric converts an imperial value of the quantity to its metric unit.
func ToMetric(q Quantity, v float64) (float64, error) {
	factor, ok := toMetric[q]
	if !ok {
		return 0, errors.InvalidParameter("quantity", string(q))
	}
	return v * factor, nil
}

// Labels returns the metric and imperial unit names for a quantity.
func Labels(q Quantity) (metric, imperial string) {
	pair := unitLabels[q]
	return pair[0], pair[1]
}
