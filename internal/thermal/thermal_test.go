package thermal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMildConditions(t *testing.T) {
	// The calculator's prefilled condition: cool concrete in warmer air.
	eff, err := Calculate(Input{ConcreteTemp: 20, AmbientTemp: 25, Humidity: 65})

	require.NoError(t, err)
	assert.InDelta(t, 1.25, eff.SettingTimeFactor, 1e-9)
	assert.InDelta(t, 1.0, eff.StrengthFactor, 1e-9)
	assert.InDelta(t, 0.02625, eff.EvaporationRate, 1e-9)
	assert.Equal(t, RiskLow, eff.Risk)
	assert.Empty(t, eff.Recommendations)
}

func TestCalculateHotConcrete(t *testing.T) {
	eff, err := Calculate(Input{ConcreteTemp: 38, AmbientTemp: 30, Humidity: 20})

	require.NoError(t, err)
	assert.InDelta(t, 0.6, eff.SettingTimeFactor, 1e-9)
	assert.InDelta(t, 0.88, eff.StrengthFactor, 1e-9)
	assert.InDelta(t, 0.112, eff.EvaporationRate, 1e-9)
	assert.Equal(t, RiskLow, eff.Risk)
	assert.Contains(t, eff.Recommendations, "Consider night placement")
	assert.Contains(t, eff.Recommendations, "Use curing compounds")
	assert.Len(t, eff.Recommendations, 5)
}

func TestCalculateColdConcrete(t *testing.T) {
	eff, err := Calculate(Input{ConcreteTemp: 5, AmbientTemp: 10, Humidity: 80})

	require.NoError(t, err)
	assert.InDelta(t, 1.25, eff.SettingTimeFactor, 1e-9)
	assert.InDelta(t, 0.9, eff.StrengthFactor, 1e-9)
	assert.Contains(t, eff.Recommendations, "Use hot water in the mix")
	assert.Len(t, eff.Recommendations, 3)
}

func TestCalculateEqualTemperatures(t *testing.T) {
	eff, err := Calculate(Input{ConcreteTemp: 25, AmbientTemp: 25, Humidity: 50})

	require.NoError(t, err)
	assert.InDelta(t, 1.0, eff.SettingTimeFactor, 1e-9)
	assert.InDelta(t, 0.05, eff.EvaporationRate, 1e-9)
}

func TestRiskBands(t *testing.T) {
	// Dry air and a large temperature spread push the estimate through the
	// moderate and high bands.
	eff, err := Calculate(Input{ConcreteTemp: 100, AmbientTemp: 0, Humidity: 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.6, eff.EvaporationRate, 1e-9)
	assert.Equal(t, RiskModerate, eff.Risk)

	eff, err = Calculate(Input{ConcreteTemp: 200, AmbientTemp: 0, Humidity: 0})
	require.NoError(t, err)
	assert.InDelta(t, 1.1, eff.EvaporationRate, 1e-9)
	assert.Equal(t, RiskHigh, eff.Risk)
	assert.Contains(t, eff.Recommendations, "Apply evaporation retarder")
}

func TestCalculateRejectsBadHumidity(t *testing.T) {
	_, err := Calculate(Input{ConcreteTemp: 20, AmbientTemp: 25, Humidity: -5})
	assert.Error(t, err)

	_, err = Calculate(Input{ConcreteTemp: 20, AmbientTemp: 25, Humidity: 150})
	assert.Error(t, err)
}

func TestEvaporationCurve(t *testing.T) {
	in := Input{ConcreteTemp: 30, Humidity: 50}

	rates := EvaporationCurve(in, 10, 30, 5)

	require.Len(t, rates, 5)
	// Warmer air shrinks the concrete-ambient spread, so the estimate falls.
	assert.InDelta(t, 0.1, rates[0], 1e-9)
	assert.InDelta(t, 0.05, rates[4], 1e-9)
	for i := 1; i < len(rates); i++ {
		assert.Less(t, rates[i], rates[i-1])
	}
}

func TestEvaporationCurveBadRange(t *testing.T) {
	assert.Nil(t, EvaporationCurve(Input{ConcreteTemp: 30, Humidity: 50}, 30, 10, 5))
	assert.Nil(t, EvaporationCurve(Input{ConcreteTemp: 30, Humidity: 50}, 10, 30, 0))
}
