package units

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleToImperial() {
	lb, _ := ToImperial(Mass, 50)
	fmt.Printf("%.4f lb\n", lb)
	// Output: 110.2310 lb
}

func TestToImperial(t *testing.T) {
	tests := []struct {
		quantity Quantity
		value    float64
		want     float64
	}{
		{Length, 1, 3.28084},
		{Length, 20, 65.6168},
		{Volume, 1, 35.3147},
		{Mass, 50, 110.231},
		{Pressure, 31.6, 4583.2008},
	}

	for _, tt := range tests {
		got, err := ToImperial(tt.quantity, tt.value)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9, "quantity %s", tt.quantity)
	}
}

func TestToMetric(t *testing.T) {
	tests := []struct {
		quantity Quantity
		value    float64
		want     float64
	}{
		{Length, 1, 0.3048},
		{Volume, 1, 0.0283168},
		{Mass, 110.231, 50.0003},
		{Pressure, 145.038, 1.0000022},
	}

	for _, tt := range tests {
		got, err := ToMetric(tt.quantity, tt.value)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-3, "quantity %s", tt.quantity)
	}
}

func TestRoundTripCloseToIdentity(t *testing.T) {
	// The reverse factors are rounded conventions, so a round trip is close
	// to but not exactly the identity.
	for _, q := range Quantities() {
		imp, err := ToImperial(q, 100)
		require.NoError(t, err)
		back, err := ToMetric(q, imp)
		require.NoError(t, err)
		assert.InDelta(t, 100, back, 0.05, "quantity %s", q)
	}
}

func TestParseQuantity(t *testing.T) {
	q, err := ParseQuantity("mass")
	require.NoError(t, err)
	assert.Equal(t, Mass, q)

	_, err = ParseQuantity("temperature")
	assert.Error(t, err)
}

func TestUnknownQuantity(t *testing.T) {
	_, err := ToImperial(Quantity("energy"), 1)
	assert.Error(t, err)

	_, err = ToMetric(Quantity("energy"), 1)
	assert.Error(t, err)
}

func TestLabels(t *testing.T) {
	metric, imperial := Labels(Pressure)
	assert.Equal(t, "MPa", metric)
	assert.Equal(t, "psi", imperial)
}
